package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
)

// Validation errors. All of them reject the write before any state changes.
var (
	ErrAmountNotPositive      = errors.New("the amount must be positive")
	ErrCategoryMissing        = errors.New("the category must be set")
	ErrBudgetPeriodInvalid    = errors.New("the period of a budget must be weekly or monthly")
	ErrLimitPeriodInvalid     = errors.New("the period of a spending limit must be daily, weekly or monthly")
	ErrSourceMissing          = errors.New("the source must be set")
	ErrObjectiveTitleMissing  = errors.New("the title must be set")
	ErrObjectiveTargetInvalid = errors.New("the target must be positive")
	ErrEmailNotUnique         = errors.New("a user with this email address already exists")
	ErrBadgeNameNotUnique     = errors.New("this badge has already been earned")
)
