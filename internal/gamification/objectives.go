package gamification

import (
	"math"

	"github.com/google/uuid"
	"github.com/pocketquest/backend/internal/models"
	"github.com/pocketquest/backend/internal/types"
)

// Objectives seeded for every new user.
var seedObjectives = []models.Objective{
	{
		Type:        types.PeriodDaily,
		Title:       "Log Your First Expense",
		Description: "Track at least one expense today",
		Target:      1,
		Points:      10,
	},
	{
		Type:        types.PeriodDaily,
		Title:       "Track Multiple Expenses",
		Description: "Log at least 3 expenses today",
		Target:      3,
		Points:      20,
	},
	{
		Type:        types.PeriodWeekly,
		Title:       "Stay Within Budget",
		Description: "Keep expenses under 80% of weekly budget",
		Target:      80,
		Points:      50,
	},
}

func (e *Engine) seedObjectives(userID uuid.UUID) error {
	for _, seed := range seedObjectives {
		seed.UserID = userID
		err := e.db.Create(&seed).Error
		if err != nil {
			return err
		}
	}

	return nil
}

// CheckObjectives re-evaluates all pending objectives of a user against the
// ledger and budget state. Completion is terminal: a completed objective is
// skipped forever. Newly completed objectives award their points, and when
// the last pending objective completes, the "Goal Crusher" badge is awarded.
func (e *Engine) CheckObjectives(userID uuid.UUID) error {
	var objectives []models.Objective
	err := e.db.Where("user_id = ?", userID).Find(&objectives).Error
	if err != nil {
		return err
	}

	anyCompleted := false
	allCompleted := true

	for i := range objectives {
		objective := &objectives[i]
		if objective.Completed {
			continue
		}

		current, completed, err := e.evaluateObjective(objective)
		if err != nil {
			return err
		}

		objective.Current = current
		objective.Completed = completed

		err = e.db.Save(objective).Error
		if err != nil {
			return err
		}

		if completed {
			anyCompleted = true
			err = e.AddPoints(userID, objective.Points)
			if err != nil {
				return err
			}
		} else {
			allCompleted = false
		}
	}

	if anyCompleted && allCompleted {
		_, err = e.AwardBadge(userID, "Goal Crusher", "Completed all objectives", "target")
		if err != nil {
			return err
		}
	}

	return nil
}

// evaluateObjective computes the current counter and completion for a single
// pending objective.
func (e *Engine) evaluateObjective(objective *models.Objective) (int, bool, error) {
	now := e.clock()

	switch objective.Type {
	case types.PeriodDaily:
		// Number of ledger entries dated today
		var count int64
		err := e.db.Model(&models.Expense{}).
			Where("user_id = ? AND date >= ?", objective.UserID, types.PeriodDaily.Start(now)).
			Count(&count).Error
		if err != nil {
			return 0, false, err
		}

		return int(count), int(count) >= objective.Target, nil

	case types.PeriodWeekly:
		// With an overall weekly budget, the objective tracks the spent
		// percentage and completes when it stays at or under the target.
		budget, ok := models.OverallBudget(e.db, objective.UserID, types.PeriodWeekly)
		if ok {
			status, err := budget.StatusAt(e.db, now)
			if err != nil {
				return 0, false, err
			}

			// The counter is rounded for display, completion compares the
			// exact percentage so 80.4% does not pass an 80% target
			current := int(math.Round(status.Percentage))
			return current, status.Percentage <= float64(objective.Target), nil
		}

		// Without one, fall back to counting distinct logging days this week
		days, err := models.DistinctExpenseDays(e.db, objective.UserID, types.PeriodWeekly.Start(now))
		if err != nil {
			return 0, false, err
		}

		return days, days >= objective.Target, nil

	case types.PeriodMonthly:
		days, err := models.DistinctExpenseDays(e.db, objective.UserID, types.PeriodMonthly.Start(now))
		if err != nil {
			return 0, false, err
		}

		return days, days >= objective.Target, nil
	}

	// Unknown objective types never complete
	return objective.Current, false, nil
}
