package finance

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrValidation помечает ошибки проверки входных данных.
var ErrValidation = errors.New("validation failed")

type BudgetStatus string

const (
	StatusOver  BudgetStatus = "over"
	StatusUnder BudgetStatus = "under"
	StatusAt    BudgetStatus = "at"
)

type ExpenseItem struct {
	Category string
	Amount   decimal.Decimal
}

// NewExpenseItem создает статью расходов с проверкой категории и суммы.
func NewExpenseItem(category string, amount float64) (ExpenseItem, error) {
	trimmed := strings.TrimSpace(category)
	if trimmed == "" {
		return ExpenseItem{}, fmt.Errorf("%w: expense category is required", ErrValidation)
	}

	value := decimal.NewFromFloat(amount)
	if value.Sign() <= 0 {
		return ExpenseItem{}, fmt.Errorf("%w: expense amount must be positive", ErrValidation)
	}

	return ExpenseItem{Category: trimmed, Amount: value}, nil
}

// ExpenseSet хранит статьи расходов в порядке поступления.
type ExpenseSet []ExpenseItem

// Total возвращает сумму всех расходов.
func (s ExpenseSet) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range s {
		total = total.Add(item.Amount)
	}

	return total
}

type Budget struct {
	Amount decimal.Decimal
}

// NewBudget создает бюджет с проверкой знака.
func NewBudget(amount float64) (Budget, error) {
	value := decimal.NewFromFloat(amount)
	if value.Sign() <= 0 {
		return Budget{}, fmt.Errorf("%w: budget must be positive", ErrValidation)
	}

	return Budget{Amount: value}, nil
}

// Remaining возвращает остаток бюджета после вычета расходов.
func (b Budget) Remaining(total decimal.Decimal) decimal.Decimal {
	return b.Amount.Sub(total)
}

// Status сравнивает расходы с бюджетом по знаку остатка.
func (b Budget) Status(total decimal.Decimal) BudgetStatus {
	switch b.Remaining(total).Sign() {
	case -1:
		return StatusOver
	case 1:
		return StatusUnder
	default:
		return StatusAt
	}
}

// Describe возвращает текстовую форму статуса для промпта.
func (s BudgetStatus) Describe() string {
	switch s {
	case StatusOver:
		return "over budget"
	case StatusUnder:
		return "under budget"
	default:
		return "exactly at budget"
	}
}

// FormatAmount форматирует сумму как $X.XX.
func FormatAmount(value decimal.Decimal) string {
	return "$" + value.StringFixed(2)
}
