package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pocketquest/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Income is a single ledger entry for money received.
//
// Like expenses, income records are immutable once created.
type Income struct {
	DefaultModel
	UserID    uuid.UUID       `gorm:"index"`
	Amount    decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Source    string
	Frequency types.Frequency
	Note      string
	Date      time.Time
}

func (i *Income) BeforeSave(_ *gorm.DB) error {
	i.Source = strings.TrimSpace(i.Source)
	i.Note = strings.TrimSpace(i.Note)

	if !i.Amount.IsPositive() {
		return ErrAmountNotPositive
	}

	if i.Source == "" {
		return ErrSourceMissing
	}

	if i.Date.IsZero() {
		i.Date = time.Now().In(time.UTC)
	} else {
		i.Date = i.Date.In(time.UTC)
	}

	return nil
}

func (i *Income) AfterFind(_ *gorm.DB) error {
	i.Date = i.Date.In(time.UTC)
	return i.DefaultModel.AfterFind(nil)
}

// IncomeTotal sums all income of a user for the period. Recurring income is
// normalized to the period, one-time income always counts at face value.
func IncomeTotal(db *gorm.DB, userID uuid.UUID, period types.Period) (decimal.Decimal, error) {
	var incomes []Income
	err := db.Where("user_id = ? AND date >= ?", userID, period.Start(time.Now())).Find(&incomes).Error
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, income := range incomes {
		total = total.Add(types.Convert(income.Amount, income.Frequency, period))
	}

	return total, nil
}
