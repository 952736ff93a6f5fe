package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

const (
	serviceName    = "llm-budget-advisor"
	serviceTitle   = "LLM Budget Advisor"
	serviceVersion = "1.0.0"
)

type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

type RootResponse struct {
	Service   string            `json:"service"`
	Status    string            `json:"status"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}

// Health возвращает статус сервиса.
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{Status: "healthy", Service: serviceName})
}

// Root возвращает название, версию и список endpoint'ов API.
func Root(c echo.Context) error {
	return c.JSON(http.StatusOK, RootResponse{
		Service: serviceTitle,
		Status:  "running",
		Version: serviceVersion,
		Endpoints: map[string]string{
			"summarize": "/api/summarize",
			"advice":    "/api/advice",
			"health":    "/health",
		},
	})
}
