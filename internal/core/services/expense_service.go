package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/kieltransportes011-pixel/controlfretev1-sub001/internal/apperrors"
	"github.com/kieltransportes011-pixel/controlfretev1-sub001/internal/core/domain"
	portsrepo "github.com/kieltransportes011-pixel/controlfretev1-sub001/internal/core/ports/repositories"
	portssvc "github.com/kieltransportes011-pixel/controlfretev1-sub001/internal/core/ports/services"
	"github.com/kieltransportes011-pixel/controlfretev1-sub001/internal/dto"
	"github.com/google/uuid"
)

// expenseService implements the ExpenseSvcFacade interface.
type expenseService struct {
	BaseService
	expenseRepo portsrepo.ExpenseRepositoryFacade
}

// NewExpenseService creates a new expense service.
func NewExpenseService(repo portsrepo.ExpenseRepositoryFacade) portssvc.ExpenseSvcFacade {
	return &expenseService{expenseRepo: repo}
}

// Ensure expenseService implements the ExpenseSvcFacade interface.
var _ portssvc.ExpenseSvcFacade = (*expenseService)(nil)

func (s *expenseService) CreateExpense(ctx context.Context, req dto.CreateExpenseRequest, userID string) (*domain.Expense, error) {
	if !req.Value.IsPositive() {
		return nil, fmt.Errorf("%w: expense value must be positive", apperrors.ErrValidation)
	}

	now := time.Now()
	expense := domain.Expense{
		ExpenseID:   uuid.NewString(),
		OwnerUserID: userID,
		Source:      req.Source,
		Value:       req.Value,
		ExpenseDate: dto.ParseDateYMD(req.ExpenseDate),
		Description: req.Description,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.expenseRepo.SaveExpense(ctx, expense); err != nil {
		s.LogError(ctx, err, "Failed to save expense",
			slog.String("expense_id", expense.ExpenseID))
		return nil, err
	}

	s.LogInfo(ctx, "Expense created successfully",
		slog.String("expense_id", expense.ExpenseID),
		slog.String("source", string(expense.Source)))
	return &expense, nil
}

func (s *expenseService) ListExpenses(ctx context.Context, userID string, year int, month time.Month) ([]domain.Expense, error) {
	expenses, err := s.expenseRepo.ListExpensesByMonth(ctx, userID, year, month)
	if err != nil {
		s.LogError(ctx, err, "Failed to list expenses",
			slog.Int("year", year), slog.Int("month", int(month)))
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	if expenses == nil {
		return []domain.Expense{}, nil
	}
	return expenses, nil
}

func (s *expenseService) DeleteExpense(ctx context.Context, expenseID string, userID string) error {
	expense, err := s.expenseRepo.FindExpenseByID(ctx, expenseID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find expense by ID",
				slog.String("expense_id", expenseID))
		}
		return err
	}
	if expense.OwnerUserID != userID {
		return apperrors.ErrNotFound
	}

	if err := s.expenseRepo.DeleteExpense(ctx, expenseID); err != nil {
		s.LogError(ctx, err, "Failed to delete expense",
			slog.String("expense_id", expenseID))
		return err
	}

	s.LogInfo(ctx, "Expense deleted successfully",
		slog.String("expense_id", expenseID))
	return nil
}
