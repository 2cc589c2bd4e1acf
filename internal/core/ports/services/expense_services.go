package services

import (
	"context"
	"time"

	"github.com/kieltransportes011-pixel/controlfretev1-sub001/internal/core/domain"
	"github.com/kieltransportes011-pixel/controlfretev1-sub001/internal/dto"
)

// ExpenseSvcFacade manages fund deductions.
type ExpenseSvcFacade interface {
	// CreateExpense persists a new deduction against one of the funds.
	CreateExpense(ctx context.Context, req dto.CreateExpenseRequest, userID string) (*domain.Expense, error)

	// ListExpenses retrieves the caller's expenses for one month.
	ListExpenses(ctx context.Context, userID string, year int, month time.Month) ([]domain.Expense, error)

	// DeleteExpense removes one of the caller's expenses.
	DeleteExpense(ctx context.Context, expenseID string, userID string) error
}
