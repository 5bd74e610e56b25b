package expense

import (
	"context"
	"sort"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	expenses map[uuid.UUID]Expense
}

func newFakeStore() *fakeStore {
	return &fakeStore{expenses: make(map[uuid.UUID]Expense)}
}

func (f *fakeStore) Create(_ context.Context, e *Expense) error {
	f.expenses[e.ID] = *e
	return nil
}

func (f *fakeStore) List(_ context.Context) ([]*Expense, error) {
	var result []*Expense
	for _, e := range f.expenses {
		copied := e
		result = append(result, &copied)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date.After(result[j].Date) })
	return result, nil
}

func (f *fakeStore) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	if _, ok := f.expenses[id]; !ok {
		return false, nil
	}
	delete(f.expenses, id)
	return true, nil
}

func TestServiceCreate(t *testing.T) {
	t.Run("valid expense", func(t *testing.T) {
		svc := NewService(newFakeStore())

		desc := "Monthly office rent"
		e, err := svc.Create(context.Background(), &CreateExpenseRequest{
			Category:    CategoryRent,
			Amount:      3000,
			Date:        "2024-06-01",
			Description: &desc,
		})
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, e.ID)
		assert.Equal(t, CategoryRent, e.Category)
		assert.Equal(t, int64(3000), e.Amount)
		require.NotNil(t, e.Description)
	})

	t.Run("description is optional", func(t *testing.T) {
		svc := NewService(newFakeStore())

		e, err := svc.Create(context.Background(), &CreateExpenseRequest{
			Category: CategoryInternet,
			Amount:   500,
			Date:     "2024-06-07",
		})
		require.NoError(t, err)
		assert.Nil(t, e.Description)
	})

	t.Run("validation failures", func(t *testing.T) {
		tests := []struct {
			name string
			req  CreateExpenseRequest
		}{
			{"missing category", CreateExpenseRequest{Amount: 100, Date: "2024-06-01"}},
			{"unknown category", CreateExpenseRequest{Category: "Snacks", Amount: 100, Date: "2024-06-01"}},
			{"zero amount", CreateExpenseRequest{Category: CategoryWater, Amount: 0, Date: "2024-06-01"}},
			{"negative amount", CreateExpenseRequest{Category: CategoryWater, Amount: -50, Date: "2024-06-01"}},
			{"malformed date", CreateExpenseRequest{Category: CategoryWater, Amount: 100, Date: "01-06-2024"}},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				svc := NewService(newFakeStore())
				_, err := svc.Create(context.Background(), &tt.req)
				assert.ErrorIs(t, err, ErrInvalidInput)
			})
		}
	})
}

func TestServiceDelete(t *testing.T) {
	svc := NewService(newFakeStore())

	e, err := svc.Create(context.Background(), &CreateExpenseRequest{
		Category: CategoryRent,
		Amount:   3000,
		Date:     "2024-06-01",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), e.ID))

	expenses, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, expenses)

	// a second delete of the same id reports not found
	assert.ErrorIs(t, svc.Delete(context.Background(), e.ID), ErrExpenseNotFound)
}

func TestCategoryIsValid(t *testing.T) {
	for _, c := range Categories {
		assert.True(t, c.IsValid(), "category %q should be valid", c)
	}
	assert.False(t, Category("Snacks").IsValid())
	assert.False(t, Category("").IsValid())
	assert.False(t, Category("rent").IsValid(), "categories are case sensitive")
}
