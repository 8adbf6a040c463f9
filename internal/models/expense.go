package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pocketquest/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Expense is a single ledger entry for money spent.
//
// Expenses are immutable once created, the only allowed mutation
// is deleting them.
type Expense struct {
	DefaultModel
	UserID    uuid.UUID       `gorm:"index"`
	Amount    decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Category  string
	Frequency types.Frequency
	Recurring bool
	Note      string
	Date      time.Time
}

func (e *Expense) BeforeSave(_ *gorm.DB) error {
	e.Category = strings.TrimSpace(e.Category)
	e.Note = strings.TrimSpace(e.Note)

	if !e.Amount.IsPositive() {
		return ErrAmountNotPositive
	}

	if e.Category == "" {
		return ErrCategoryMissing
	}

	if e.Date.IsZero() {
		e.Date = time.Now().In(time.UTC)
	} else {
		e.Date = e.Date.In(time.UTC)
	}

	return nil
}

func (e *Expense) AfterFind(_ *gorm.DB) error {
	e.Date = e.Date.In(time.UTC)
	return e.DefaultModel.AfterFind(nil)
}

// normalized returns the amount of the expense converted to the
// requested evaluation period. Non-recurring expenses always count
// at face value.
func (e Expense) normalized(period types.Period) decimal.Decimal {
	if !e.Recurring {
		return e.Amount
	}

	return types.Convert(e.Amount, e.Frequency, period)
}

// ExpensesInWindow returns all expenses of a user dated at or after the start time.
func ExpensesInWindow(db *gorm.DB, userID uuid.UUID, start time.Time) ([]Expense, error) {
	var expenses []Expense
	err := db.Where("user_id = ? AND date >= ?", userID, start).Find(&expenses).Error
	return expenses, err
}

// ExpenseTotal sums all expenses of a user for the period, normalizing
// recurring entries to the period with fixed conversion ratios.
func ExpenseTotal(db *gorm.DB, userID uuid.UUID, period types.Period) (decimal.Decimal, error) {
	return ExpenseTotalAt(db, userID, period, time.Now())
}

// ExpenseTotalAt is ExpenseTotal with the period window anchored at the
// given reference time.
func ExpenseTotalAt(db *gorm.DB, userID uuid.UUID, period types.Period, at time.Time) (decimal.Decimal, error) {
	expenses, err := ExpensesInWindow(db, userID, period.Start(at))
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, expense := range expenses {
		total = total.Add(expense.normalized(period))
	}

	return total, nil
}

// ExpenseCategoryTotals sums the expenses of a user for the period,
// grouped by category.
func ExpenseCategoryTotals(db *gorm.DB, userID uuid.UUID, period types.Period) (map[string]decimal.Decimal, error) {
	expenses, err := ExpensesInWindow(db, userID, period.Start(time.Now()))
	if err != nil {
		return nil, err
	}

	totals := make(map[string]decimal.Decimal)
	for _, expense := range expenses {
		totals[expense.Category] = totals[expense.Category].Add(expense.normalized(period))
	}

	return totals, nil
}

// ExpenseCount returns the number of ledger entries the user has logged overall.
func ExpenseCount(db *gorm.DB, userID uuid.UUID) (int64, error) {
	var count int64
	err := db.Model(&Expense{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

// DistinctExpenseDays counts the distinct calendar days with at least one
// expense dated at or after the start time.
func DistinctExpenseDays(db *gorm.DB, userID uuid.UUID, start time.Time) (int, error) {
	var count int64
	err := db.Model(&Expense{}).
		Where("user_id = ? AND date >= ?", userID, start).
		Distinct("date(date)").
		Count(&count).Error

	return int(count), err
}
