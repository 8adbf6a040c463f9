package gamification

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pocketquest/backend/internal/models"
	"github.com/shopspring/decimal"
)

// notificationCooldown is the window in which repeated crossings of the same
// threshold for the same source are suppressed. It prevents alert storms
// from many small transactions.
const notificationCooldown = time.Hour

// CheckBudgetThresholds re-evaluates every budget of the user that touches
// the category, plus any overall budget, and emits notifications for every
// threshold the current percentage has reached.
func (e *Engine) CheckBudgetThresholds(userID uuid.UUID, category string) error {
	var budgets []models.Budget
	err := e.db.Where("user_id = ? AND category IN ?", userID, []string{category, models.CategoryOverall}).
		Find(&budgets).Error
	if err != nil {
		return err
	}

	for _, budget := range budgets {
		status, err := budget.StatusAt(e.db, e.clock())
		if err != nil {
			return err
		}

		err = e.emitCrossings(budget.UserID, budget.ID, budget.Label(), "Budget Alert", budget.Thresholds, budget.Amount, status)
		if err != nil {
			return err
		}
	}

	return nil
}

// CheckLimitThresholds does the same for enabled spending limits.
func (e *Engine) CheckLimitThresholds(userID uuid.UUID, category string) error {
	var limits []models.SpendingLimit
	err := e.db.Where("user_id = ? AND enabled = ? AND category IN ?", userID, true, []string{category, models.CategoryOverall}).
		Find(&limits).Error
	if err != nil {
		return err
	}

	for _, limit := range limits {
		status, err := limit.StatusAt(e.db, e.clock())
		if err != nil {
			return err
		}

		err = e.emitCrossings(limit.UserID, limit.ID, limit.Label(), "Spending Limit Alert", limit.Thresholds, limit.Amount, status)
		if err != nil {
			return err
		}
	}

	return nil
}

// emitCrossings persists one notification per reached threshold, unless a
// notification for the same (source, threshold) pair was created within the
// cooldown window. The threshold match uses a tolerance of one percentage
// point.
//
// A best-effort push alert is fired alongside every persisted notification.
// Push failures never surface here.
func (e *Engine) emitCrossings(userID, sourceID uuid.UUID, label, title string, thresholds models.ThresholdList, amount decimal.Decimal, status models.Status) error {
	for _, threshold := range thresholds {
		if status.Percentage < float64(threshold) {
			continue
		}

		cutoff := e.clock().Add(-notificationCooldown)

		var recent int64
		err := e.db.Model(&models.Notification{}).
			Where("user_id = ? AND source_id = ? AND ABS(threshold - ?) < 1 AND created_at > ?", userID, sourceID, threshold, cutoff).
			Count(&recent).Error
		if err != nil {
			return err
		}

		if recent > 0 {
			continue
		}

		notification := models.Notification{
			UserID:      userID,
			SourceID:    sourceID,
			SourceLabel: label,
			Threshold:   threshold,
			Spent:       status.Spent,
			Amount:      amount,
		}

		err = e.db.Create(&notification).Error
		if err != nil {
			return err
		}

		if e.sink.Permitted() {
			body := fmt.Sprintf("You've reached %d%% of your %s", threshold, label)
			if status.Percentage >= 100 {
				body = fmt.Sprintf("You've exceeded your %s!", label)
			}

			e.sink.Fire(title, body, fmt.Sprintf("%s-%d", sourceID, threshold))
		}
	}

	return nil
}
