package domain

import "time"

// ExpenseRecord representa uma despesa operacional registrada no backend
type ExpenseRecord struct {
	ID          string    `json:"id"`
	ExpenseType string    `json:"expense_type"`
	Amount      float64   `json:"amount"`
	Currency    string    `json:"currency,omitempty"`
	ExpenseDate time.Time `json:"expense_date"`
	IsRecurring bool      `json:"is_recurring"`
}
