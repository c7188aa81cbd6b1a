package repository

import (
	"context"

	"auto-pana/garaje/internal/kvstore"
	"auto-pana/garaje/internal/models"
)

// Expenses returns every logged expense, newest first.
func (r *Repository) Expenses(ctx context.Context) []models.Expense {
	var expenses []models.Expense
	r.getJSON(ctx, kvstore.KeyExpenses, &expenses)
	return expenses
}

// SaveExpenses overwrites the expense collection.
func (r *Repository) SaveExpenses(ctx context.Context, expenses []models.Expense) {
	r.setJSON(ctx, kvstore.KeyExpenses, expenses)
}

// AddExpense prepends an expense, assigning it an id.
func (r *Repository) AddExpense(ctx context.Context, expense models.Expense) {
	expense.ID = r.newID()
	r.SaveExpenses(ctx, append([]models.Expense{expense}, r.Expenses(ctx)...))
}

// DeleteExpense removes one expense.
func (r *Repository) DeleteExpense(ctx context.Context, id string) {
	expenses := r.Expenses(ctx)
	out := expenses[:0:0]
	for _, e := range expenses {
		if e.ID != id {
			out = append(out, e)
		}
	}
	r.SaveExpenses(ctx, out)
}

// CurrentMonthTotal sums the expenses dated in the current calendar month.
// Entries with unparseable dates are skipped.
func (r *Repository) CurrentMonthTotal(expenses []models.Expense) float64 {
	now := r.now()
	var total float64
	for _, e := range expenses {
		date, err := parseStoredDate(e.Date)
		if err != nil {
			continue
		}
		if date.Month() == now.Month() && date.Year() == now.Year() {
			total += e.Amount
		}
	}
	return total
}
