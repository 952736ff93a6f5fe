package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"example.com/llm-budget-advisor/internal/finance"
	"example.com/llm-budget-advisor/internal/ollama"
	"example.com/llm-budget-advisor/internal/prompt"
)

const (
	questionMinLength = 5
	answerLogLimit    = 50
)

type AdvisorHandler struct {
	Client            ollama.Client
	SummarizeSampling ollama.SamplingConfig
	AdviceSampling    ollama.SamplingConfig
}

// NewAdvisorHandler создает обработчик операций суммаризации и советов.
func NewAdvisorHandler(client ollama.Client, summarize, advice ollama.SamplingConfig) *AdvisorHandler {
	return &AdvisorHandler{
		Client:            client,
		SummarizeSampling: summarize,
		AdviceSampling:    advice,
	}
}

type ExpenseItemRequest struct {
	Category string  `json:"category" validate:"required"`
	Amount   float64 `json:"amount" validate:"gt=0"`
}

type SummarizeRequest struct {
	Expenses []ExpenseItemRequest `json:"expenses" validate:"required,min=1,dive"`
	Budget   *float64             `json:"budget" validate:"omitempty,gt=0"`
}

type SummarizeResponse struct {
	Summary      string  `json:"summary"`
	TotalAmount  float64 `json:"total_amount"`
	ExpenseCount int     `json:"expense_count"`
}

type AdviceRequest struct {
	Question string               `json:"question" validate:"required,min=5,max=500"`
	Expenses []ExpenseItemRequest `json:"expenses" validate:"omitempty,min=1,dive"`
	Budget   *float64             `json:"budget" validate:"omitempty,gt=0"`
}

type AdviceResponse struct {
	Advice   string `json:"advice"`
	Question string `json:"question"`
}

// Summarize строит промпт по списку расходов, вызывает Ollama и
// возвращает сводку вместе с агрегатами.
func (h *AdvisorHandler) Summarize(c echo.Context) error {
	var req SummarizeRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "validation failed")
	}

	expenses, budget, err := toFinance(req.Expenses, req.Budget)
	if err != nil {
		return badRequest(c, err.Error())
	}

	total := expenses.Total()
	count := len(expenses)
	promptText := prompt.Summary(expenses, budget)

	requestID := uuid.NewString()
	slog.Info("summarizing expenses",
		slog.String("request_id", requestID),
		slog.String("total", finance.FormatAmount(total)),
		slog.Int("count", count))

	summary, err := h.Client.Generate(c.Request().Context(), promptText, h.SummarizeSampling)
	if err != nil {
		return h.inferenceError(c, requestID, "summarize", err)
	}

	slog.Info("summary generated",
		slog.String("request_id", requestID),
		slog.String("summary_prefix", logPrefix(summary, answerLogLimit)))

	return c.JSON(http.StatusOK, SummarizeResponse{
		Summary:      summary,
		TotalAmount:  total.InexactFloat64(),
		ExpenseCount: count,
	})
}

// Advise отвечает на вопрос пользователя, опционально учитывая его
// расходы и бюджет.
func (h *AdvisorHandler) Advise(c echo.Context) error {
	var req AdviceRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "validation failed")
	}

	question := strings.TrimSpace(req.Question)
	if len(question) < questionMinLength {
		return badRequest(c, "question must be at least 5 characters")
	}

	expenses, budget, err := toFinance(req.Expenses, req.Budget)
	if err != nil {
		return badRequest(c, err.Error())
	}

	promptText := prompt.Advice(question, expenses, budget)

	requestID := uuid.NewString()
	slog.Info("processing advice request",
		slog.String("request_id", requestID),
		slog.String("question_prefix", logPrefix(question, answerLogLimit)))

	advice, err := h.Client.Generate(c.Request().Context(), promptText, h.AdviceSampling)
	if err != nil {
		return h.inferenceError(c, requestID, "advice", err)
	}

	slog.Info("advice generated",
		slog.String("request_id", requestID),
		slog.String("advice_prefix", logPrefix(advice, answerLogLimit)))

	return c.JSON(http.StatusOK, AdviceResponse{
		Advice:   advice,
		Question: question,
	})
}

func toFinance(items []ExpenseItemRequest, budget *float64) (finance.ExpenseSet, *finance.Budget, error) {
	expenses := make(finance.ExpenseSet, 0, len(items))
	for _, item := range items {
		expense, err := finance.NewExpenseItem(item.Category, item.Amount)
		if err != nil {
			return nil, nil, err
		}
		expenses = append(expenses, expense)
	}

	if budget == nil {
		return expenses, nil, nil
	}

	validated, err := finance.NewBudget(*budget)
	if err != nil {
		return nil, nil, err
	}

	return expenses, &validated, nil
}

func (h *AdvisorHandler) inferenceError(c echo.Context, requestID, operation string, err error) error {
	attrs := []any{
		slog.String("request_id", requestID),
		slog.String("operation", operation),
		slog.String("error", err.Error()),
	}

	var reqErr *ollama.RequestError

	switch {
	case errors.Is(err, ollama.ErrUnreachable):
		slog.Error("ollama is unreachable", attrs...)
		return serviceUnavailable(c, "Unable to connect to Ollama service. Please ensure Ollama is running.")
	case errors.Is(err, ollama.ErrTimeout):
		slog.Error("ollama request timed out", attrs...)
		return gatewayTimeout(c, "Request to Ollama timed out. Please try again.")
	case errors.As(err, &reqErr):
		slog.Error("ollama request failed", attrs...)
		return badGateway(c, "Failed to communicate with Ollama: "+reqErr.Detail)
	case errors.Is(err, ollama.ErrEmptyResponse):
		slog.Error("ollama returned an empty response", attrs...)
		return serverError(c)
	default:
		slog.Error("unexpected inference failure", attrs...)
		return serverError(c)
	}
}
