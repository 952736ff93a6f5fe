package prompt

import (
	"fmt"
	"strings"

	"example.com/llm-budget-advisor/internal/finance"
)

// Summary строит промпт для суммаризации расходов.
// Одинаковый вход дает побайтово одинаковый промпт.
func Summary(expenses finance.ExpenseSet, budget *finance.Budget) string {
	budgetLine := ""
	if budget != nil {
		budgetLine = fmt.Sprintf("Budget: %s\n\n", finance.FormatAmount(budget.Amount))
	}

	return fmt.Sprintf(`You are a helpful financial assistant. Analyze the following expenses and provide a clear, natural-language summary.

%sExpenses:
%s

Total: %s

Provide a concise summary in 1-2 sentences of plain text, without markdown formatting. Highlight the categories with the highest spending and any notable observations about the expenses.`,
		budgetLine, expenseListing(expenses), finance.FormatAmount(expenses.Total()))
}

// Advice строит промпт для совета по бюджетированию. Расходы и бюджет
// опциональны; бюджет без расходов не добавляет контекста.
func Advice(question string, expenses finance.ExpenseSet, budget *finance.Budget) string {
	if len(expenses) == 0 {
		return fmt.Sprintf(`You are a helpful financial advisor specializing in personal budgeting.

User Question: %s

Provide a concise, practical budgeting tip or advice in response. Keep your answer clear and actionable (2-3 sentences maximum). Focus on practical steps the user can take.`, question)
	}

	total := expenses.Total()

	var context strings.Builder
	context.WriteString("Their spending this period:\n")
	context.WriteString(expenseListing(expenses))
	context.WriteString("\n\nTotal spent: ")
	context.WriteString(finance.FormatAmount(total))

	instruction := "Take the spending above into account."
	if budget != nil {
		remaining := budget.Remaining(total)
		context.WriteString("\nBudget: ")
		context.WriteString(finance.FormatAmount(budget.Amount))
		context.WriteString("\nRemaining: ")
		context.WriteString(finance.FormatAmount(remaining))
		context.WriteString("\nStatus: ")
		context.WriteString(budget.Status(total).Describe())

		instruction = "Consider how the spending relates to the budget before answering."
	}

	return fmt.Sprintf(`You are a helpful financial advisor specializing in personal budgeting.

User Question: %s

%s

%s Provide a concise, practical budgeting tip or advice in response. Keep your answer clear and actionable (2-3 sentences maximum). Focus on practical steps the user can take.`,
		question, context.String(), instruction)
}

func expenseListing(expenses finance.ExpenseSet) string {
	lines := make([]string, 0, len(expenses))
	for _, item := range expenses {
		lines = append(lines, fmt.Sprintf("- %s: %s", item.Category, finance.FormatAmount(item.Amount)))
	}

	return strings.Join(lines, "\n")
}
