package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Notification records a threshold crossing for a budget or spending limit.
//
// The only mutation after creation is toggling the read flag.
type Notification struct {
	DefaultModel
	UserID      uuid.UUID `gorm:"index"`
	SourceID    uuid.UUID // ID of the budget or limit that crossed the threshold
	SourceLabel string    // Category label of the source at the time of crossing
	Threshold   int
	Spent       decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Amount      decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Read        bool
}
