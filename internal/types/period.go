// Package types implements special types for PocketQuest.
package types

import (
	"database/sql/driver"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// Period is an evaluation window for ledger totals, budgets and limits.
type Period string

const (
	PeriodDaily   Period = "daily"
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
	PeriodYearly  Period = "yearly"
	PeriodAllTime Period = "all-time"
)

var ErrInvalidPeriod = errors.New("the period must be one of: daily, weekly, monthly, yearly, all-time")

// ParsePeriod parses a string into a Period.
func ParsePeriod(s string) (Period, error) {
	p := Period(s)
	switch p {
	case PeriodDaily, PeriodWeekly, PeriodMonthly, PeriodYearly, PeriodAllTime:
		return p, nil
	}

	return "", ErrInvalidPeriod
}

// Start returns the first instant of the period the reference time is in.
// Weeks start on Sunday.
func (p Period) Start(now time.Time) time.Time {
	switch p {
	case PeriodDaily:
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	case PeriodWeekly:
		sunday := now.AddDate(0, 0, -int(now.Weekday()))
		return time.Date(sunday.Year(), sunday.Month(), sunday.Day(), 0, 0, 0, 0, now.Location())
	case PeriodMonthly:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	case PeriodYearly:
		return time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location())
	}

	// All-time starts at the zero instant
	return time.Time{}
}

// Scan reads the value from the database.
func (p *Period) Scan(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return ErrInvalidPeriod
	}

	*p = Period(s)
	return nil
}

// Value returns the value for the SQL driver to write to the database.
func (p Period) Value() (driver.Value, error) {
	return string(p), nil
}

// GormDataType defines the data type used by gorm for the type.
func (Period) GormDataType() string {
	return "text"
}

// Frequency is the recurrence of a single ledger entry.
type Frequency string

const (
	FrequencyOnce    Frequency = "one-time"
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
)

var ErrInvalidFrequency = errors.New("the frequency must be one of: one-time, daily, weekly, monthly")

// ParseFrequency parses a string into a Frequency.
func ParseFrequency(s string) (Frequency, error) {
	f := Frequency(s)
	switch f {
	case FrequencyOnce, FrequencyDaily, FrequencyWeekly, FrequencyMonthly:
		return f, nil
	}

	return "", ErrInvalidFrequency
}

// Scan reads the value from the database.
func (f *Frequency) Scan(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return ErrInvalidFrequency
	}

	*f = Frequency(s)
	return nil
}

// Value returns the value for the SQL driver to write to the database.
func (f Frequency) Value() (driver.Value, error) {
	return string(f), nil
}

// GormDataType defines the data type used by gorm for the type.
func (Frequency) GormDataType() string {
	return "text"
}

// Conversion ratios between recurrence frequencies and evaluation periods.
var (
	seven      = decimal.NewFromInt(7)
	thirty     = decimal.NewFromInt(30)
	four       = decimal.NewFromInt(4)
	twelve     = decimal.NewFromInt(12)
	fiftyTwo   = decimal.NewFromInt(52)
	daysOfYear = decimal.NewFromInt(365)
)

// Convert normalizes a recurring amount declared at one frequency to the
// equivalent amount for an evaluation period. One-time amounts and
// conversions without a defined ratio are returned at face value.
func Convert(amount decimal.Decimal, from Frequency, to Period) decimal.Decimal {
	if from == FrequencyOnce {
		return amount
	}

	switch to {
	case PeriodDaily:
		switch from {
		case FrequencyWeekly:
			return amount.Div(seven)
		case FrequencyMonthly:
			return amount.Div(thirty)
		}
	case PeriodWeekly:
		if from == FrequencyMonthly {
			return amount.Div(four)
		}
	case PeriodMonthly:
		if from == FrequencyWeekly {
			return amount.Mul(four)
		}
	case PeriodYearly:
		switch from {
		case FrequencyDaily:
			return amount.Mul(daysOfYear)
		case FrequencyWeekly:
			return amount.Mul(fiftyTwo)
		case FrequencyMonthly:
			return amount.Mul(twelve)
		}
	}

	return amount
}

// SameDay reports whether both times fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// DayBefore reports whether a falls on the calendar day directly before b.
func DayBefore(a, b time.Time) bool {
	return SameDay(a.AddDate(0, 0, 1), b)
}
