package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pocketquest/backend/internal/types"
	"gorm.io/gorm"

	"github.com/shopspring/decimal"
)

// SpendingLimit is a hard cap on spending for a category (or the whole
// ledger). Unlike budgets, limits support a daily granularity and can be
// toggled off without deleting them.
type SpendingLimit struct {
	DefaultModel
	UserID     uuid.UUID `gorm:"index"`
	Category   string
	Amount     decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Period     types.Period
	Thresholds ThresholdList `gorm:"serializer:json"`
	Enabled    bool
}

func (l *SpendingLimit) BeforeSave(_ *gorm.DB) error {
	l.Category = strings.TrimSpace(l.Category)

	if l.Category == "" {
		return ErrCategoryMissing
	}

	if !l.Amount.IsPositive() {
		return ErrAmountNotPositive
	}

	switch l.Period {
	case types.PeriodDaily, types.PeriodWeekly, types.PeriodMonthly:
	default:
		return ErrLimitPeriodInvalid
	}

	l.Thresholds = l.Thresholds.normalize()

	return nil
}

// Status computes the spending status of the limit for the current period.
func (l SpendingLimit) Status(db *gorm.DB) (Status, error) {
	return l.StatusAt(db, time.Now())
}

// StatusAt computes the spending status with the period window anchored at
// the given reference time.
func (l SpendingLimit) StatusAt(db *gorm.DB, at time.Time) (Status, error) {
	return evaluate(db, l.UserID, l.Category, l.Amount, l.Period, at)
}

// Label is the human readable name of the limit used in notifications.
func (l SpendingLimit) Label() string {
	if l.Category == CategoryOverall {
		return fmt.Sprintf("Overall %s limit", l.Period)
	}

	return fmt.Sprintf("%s (%s)", l.Category, l.Period)
}
