package finance

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

// TestNewExpenseItemRejectsInvalid проверяет валидацию статьи расходов.
func TestNewExpenseItemRejectsInvalid(t *testing.T) {
	if _, err := NewExpenseItem("Food", 0); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error for zero amount, got %v", err)
	}

	if _, err := NewExpenseItem("Food", -10.5); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error for negative amount, got %v", err)
	}

	if _, err := NewExpenseItem("  ", 10); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error for blank category, got %v", err)
	}

	item, err := NewExpenseItem(" Food ", 45.5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.Category != "Food" {
		t.Fatalf("expected trimmed category, got %q", item.Category)
	}
}

// TestNewBudgetRejectsNonPositive проверяет валидацию бюджета.
func TestNewBudgetRejectsNonPositive(t *testing.T) {
	if _, err := NewBudget(0); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error for zero budget, got %v", err)
	}

	if _, err := NewBudget(-1); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error for negative budget, got %v", err)
	}

	if _, err := NewBudget(100); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// TestExpenseSetTotal проверяет подсчет суммы расходов.
func TestExpenseSetTotal(t *testing.T) {
	set := ExpenseSet{
		mustItem(t, "Food", 45.50),
		mustItem(t, "Transport", 20.00),
	}

	if got := set.Total().StringFixed(2); got != "65.50" {
		t.Fatalf("expected total 65.50, got %s", got)
	}

	if got := ExpenseSet(nil).Total().StringFixed(2); got != "0.00" {
		t.Fatalf("expected empty total 0.00, got %s", got)
	}
}

// TestBudgetStatus проверяет статус бюджета по знаку остатка.
func TestBudgetStatus(t *testing.T) {
	budget, err := NewBudget(300)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cases := []struct {
		total  float64
		status BudgetStatus
	}{
		{300, StatusAt},
		{301, StatusOver},
		{299, StatusUnder},
	}

	for _, tc := range cases {
		if got := budget.Status(decimal.NewFromFloat(tc.total)); got != tc.status {
			t.Fatalf("total %v: expected %s, got %s", tc.total, tc.status, got)
		}
	}
}

// TestBudgetStatusDescribe проверяет текстовую форму статуса.
func TestBudgetStatusDescribe(t *testing.T) {
	cases := map[BudgetStatus]string{
		StatusOver:  "over budget",
		StatusUnder: "under budget",
		StatusAt:    "exactly at budget",
	}

	for status, want := range cases {
		if got := status.Describe(); got != want {
			t.Fatalf("expected %q, got %q", want, got)
		}
	}
}

// TestFormatAmount проверяет форматирование до двух знаков.
func TestFormatAmount(t *testing.T) {
	if got := FormatAmount(decimal.NewFromFloat(45.5)); got != "$45.50" {
		t.Fatalf("expected $45.50, got %s", got)
	}

	if got := FormatAmount(decimal.NewFromFloat(100)); got != "$100.00" {
		t.Fatalf("expected $100.00, got %s", got)
	}
}

func mustItem(t *testing.T, category string, amount float64) ExpenseItem {
	t.Helper()

	item, err := NewExpenseItem(category, amount)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	return item
}
