package dto

import (
	"github.com/kieltransportes011-pixel/controlfretev1-sub001/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateExpenseRequest defines the data needed to record a fund deduction.
type CreateExpenseRequest struct {
	Source      domain.Fund     `json:"source" binding:"required,oneof=COMPANY DRIVER RESERVE"`
	Value       decimal.Decimal `json:"value" binding:"required"`
	ExpenseDate string          `json:"expenseDate" binding:"required,dateymd"`
	Description string          `json:"description"`
}

// ExpenseResponse defines the data returned for an expense.
type ExpenseResponse struct {
	ExpenseID   string          `json:"expenseID"`
	Source      domain.Fund     `json:"source"`
	Value       decimal.Decimal `json:"value"`
	ExpenseDate string          `json:"expenseDate"` // "YYYY-MM-DD"
	Description string          `json:"description,omitempty"`
}

// ToExpenseResponse converts a domain.Expense to ExpenseResponse.
func ToExpenseResponse(e *domain.Expense) ExpenseResponse {
	return ExpenseResponse{
		ExpenseID:   e.ExpenseID,
		Source:      e.Source,
		Value:       e.Value,
		ExpenseDate: e.ExpenseDate.Format("2006-01-02"),
		Description: e.Description,
	}
}

// ListExpensesParams defines query parameters for listing expenses.
type ListExpensesParams struct {
	Year  int `form:"year" binding:"required"`
	Month int `form:"month" binding:"required,min=1,max=12"`
}

// ListExpensesResponse wraps the list of expenses.
type ListExpensesResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
}
