package expense

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Common errors
var (
	ErrExpenseNotFound = errors.New("expense not found")
	ErrInvalidInput    = errors.New("invalid input")
)

// Store is the persistence interface the service depends on
type Store interface {
	Create(ctx context.Context, e *Expense) error
	List(ctx context.Context) ([]*Expense, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

// Service handles expense business logic
type Service struct {
	store Store
}

// NewService creates a new expense service with store dependency injected
func NewService(store Store) *Service {
	return &Service{store: store}
}

// List retrieves all expenses, newest first
func (s *Service) List(ctx context.Context) ([]*Expense, error) {
	return s.store.List(ctx)
}

// Create logs a new expense
func (s *Service) Create(ctx context.Context, req *CreateExpenseRequest) (*Expense, error) {
	if req.Category == "" {
		return nil, fmt.Errorf("%w: category is required", ErrInvalidInput)
	}
	if !req.Category.IsValid() {
		return nil, fmt.Errorf("%w: unknown category %q", ErrInvalidInput, req.Category)
	}
	if req.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", ErrInvalidInput)
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: date must be a valid %s date", ErrInvalidInput, dateLayout)
	}

	e := &Expense{
		ID:          uuid.New(),
		Category:    req.Category,
		Amount:      req.Amount,
		Date:        date,
		Description: req.Description,
	}

	if err := s.store.Create(ctx, e); err != nil {
		return nil, err
	}

	return e, nil
}

// Delete removes an expense
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	found, err := s.store.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return ErrExpenseNotFound
	}
	return nil
}
