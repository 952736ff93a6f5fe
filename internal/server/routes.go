package server

import (
	"github.com/labstack/echo/v4"

	"example.com/llm-budget-advisor/internal/handlers"
)

func registerRoutes(e *echo.Echo, advisorHandler *handlers.AdvisorHandler) {
	e.GET("/", handlers.Root)
	e.GET("/health", handlers.Health)

	api := e.Group("/api")
	api.POST("/summarize", advisorHandler.Summarize)
	api.POST("/advice", advisorHandler.Advise)
}
