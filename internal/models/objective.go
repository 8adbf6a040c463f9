package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/pocketquest/backend/internal/types"
	"gorm.io/gorm"
)

// Objective is a tracking goal that awards points when completed.
//
// Completion is a one-way transition: a completed objective is never
// re-evaluated or reset.
type Objective struct {
	DefaultModel
	UserID      uuid.UUID `gorm:"index"`
	Type        types.Period
	Title       string
	Description string
	Target      int
	Current     int
	Completed   bool
	Points      int
}

func (o *Objective) BeforeSave(_ *gorm.DB) error {
	o.Title = strings.TrimSpace(o.Title)
	o.Description = strings.TrimSpace(o.Description)

	if o.Title == "" {
		return ErrObjectiveTitleMissing
	}

	if o.Target <= 0 {
		return ErrObjectiveTargetInvalid
	}

	return nil
}
