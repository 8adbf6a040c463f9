package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pocketquest/backend/internal/types"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// CategoryOverall is the sentinel category that matches the whole ledger
// instead of a single spending category.
const CategoryOverall = "overall"

// ThresholdList is a sorted set of alert thresholds in percent of the target
// amount.
type ThresholdList []int

// DefaultThresholds are used when a budget or limit is created without
// explicit thresholds.
func DefaultThresholds() ThresholdList {
	return ThresholdList{80, 90, 100}
}

func (t ThresholdList) normalize() ThresholdList {
	if len(t) == 0 {
		return DefaultThresholds()
	}

	sorted := make(ThresholdList, len(t))
	copy(sorted, t)
	slices.Sort(sorted)
	return sorted
}

// Budget is a spending target for a category (or the whole ledger) over a
// weekly or monthly period.
type Budget struct {
	DefaultModel
	UserID     uuid.UUID `gorm:"index"`
	Category   string
	Amount     decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Period     types.Period
	Thresholds ThresholdList `gorm:"serializer:json"`
}

func (b *Budget) BeforeSave(_ *gorm.DB) error {
	b.Category = strings.TrimSpace(b.Category)

	if b.Category == "" {
		return ErrCategoryMissing
	}

	if !b.Amount.IsPositive() {
		return ErrAmountNotPositive
	}

	switch b.Period {
	case types.PeriodWeekly, types.PeriodMonthly:
	default:
		return ErrBudgetPeriodInvalid
	}

	b.Thresholds = b.Thresholds.normalize()

	return nil
}

// Status reports how much of a target amount is spent for the current period.
//
// Percentage is clamped to 100 for display purposes. IsOver uses the
// unclamped comparison, so an over-spent budget reports percentage 100 and
// IsOver true at the same time.
type Status struct {
	Spent      decimal.Decimal `json:"spent" example:"670.21"`
	Remaining  decimal.Decimal `json:"remaining" example:"329.79"`
	Percentage float64         `json:"percentage" example:"67.02"`
	IsOver     bool            `json:"isOver" example:"false"`
}

// evaluate computes the spending status against a target amount, with the
// period window anchored at the given reference time.
//
// The overall sentinel sums the whole ledger with period normalization.
// A specific category sums the expenses of that category in the current
// window, converting recurring entries to the target period.
func evaluate(db *gorm.DB, userID uuid.UUID, category string, amount decimal.Decimal, period types.Period, at time.Time) (Status, error) {
	var spent decimal.Decimal

	if category == CategoryOverall {
		total, err := ExpenseTotalAt(db, userID, period, at)
		if err != nil {
			return Status{}, err
		}
		spent = total
	} else {
		var expenses []Expense
		err := db.Where("user_id = ? AND category = ? AND date >= ?", userID, category, period.Start(at)).
			Find(&expenses).Error
		if err != nil {
			return Status{}, err
		}

		spent = decimal.Zero
		for _, expense := range expenses {
			spent = spent.Add(expense.normalized(period))
		}
	}

	remaining := amount.Sub(spent)

	// A target of zero has no meaningful percentage. Treat it as fully
	// used so that thresholds fire instead of propagating a division
	// by zero.
	if !amount.IsPositive() {
		return Status{
			Spent:      spent,
			Remaining:  remaining,
			Percentage: 100,
			IsOver:     spent.IsPositive(),
		}, nil
	}

	percentage := spent.Div(amount).Mul(decimal.NewFromInt(100)).InexactFloat64()
	if percentage > 100 {
		percentage = 100
	}

	return Status{
		Spent:      spent,
		Remaining:  remaining,
		Percentage: percentage,
		IsOver:     spent.GreaterThan(amount),
	}, nil
}

// Status computes the spending status of the budget for the current period.
func (b Budget) Status(db *gorm.DB) (Status, error) {
	return b.StatusAt(db, time.Now())
}

// StatusAt computes the spending status with the period window anchored at
// the given reference time.
func (b Budget) StatusAt(db *gorm.DB, at time.Time) (Status, error) {
	return evaluate(db, b.UserID, b.Category, b.Amount, b.Period, at)
}

// Label is the human readable name of the budget used in notifications.
func (b Budget) Label() string {
	if b.Category == CategoryOverall {
		return "Overall Budget"
	}

	return b.Category
}

// OverallBudget returns the overall budget of a user for a period, if one
// exists.
func OverallBudget(db *gorm.DB, userID uuid.UUID, period types.Period) (Budget, bool) {
	var budget Budget
	err := db.Where("user_id = ? AND category = ? AND period = ?", userID, CategoryOverall, period).
		First(&budget).Error

	return budget, err == nil
}
