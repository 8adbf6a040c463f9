// Package gamification implements the progress and unlock engine: point
// accrual, leveling, streaks, badges, rewards, objectives, cosmetic unlocks
// and the threshold notification gate.
package gamification

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/pocketquest/backend/internal/alert"
	"github.com/pocketquest/backend/internal/models"
	"github.com/pocketquest/backend/internal/types"
	"gorm.io/gorm"
)

// Points awarded for the act of logging an expense.
const pointsPerLog = 5

// Engine owns all gamification state transitions for user progress records.
//
// The randomness source is injected so that tests can seed it and assert
// membership instead of exact draws.
type Engine struct {
	db    *gorm.DB
	rng   *rand.Rand
	sink  alert.Sink
	clock func() time.Time
}

// New creates an engine on top of a database handle.
func New(db *gorm.DB, rng *rand.Rand, sink alert.Sink) *Engine {
	return &Engine{
		db:    db,
		rng:   rng,
		sink:  sink,
		clock: time.Now,
	}
}

// WithTx returns a copy of the engine that runs all statements on the given
// transaction handle.
func (e *Engine) WithTx(tx *gorm.DB) *Engine {
	return &Engine{
		db:    tx,
		rng:   e.rng,
		sink:  e.sink,
		clock: e.clock,
	}
}

// WithClock returns a copy of the engine using the given time source.
func (e *Engine) WithClock(clock func() time.Time) *Engine {
	return &Engine{
		db:    e.db,
		rng:   e.rng,
		sink:  e.sink,
		clock: clock,
	}
}

// ProvisionUser sets up the gamification state for a new user: the progress
// record, the default cosmetic unlocks and the initial objectives.
func (e *Engine) ProvisionUser(userID uuid.UUID) error {
	_, err := models.ProgressForUser(e.db, userID)
	if err != nil {
		return err
	}

	for _, id := range DefaultCosmeticIDs() {
		err = e.db.Create(&models.CosmeticUnlock{UserID: userID, CosmeticID: id}).Error
		if err != nil {
			return err
		}
	}

	return e.seedObjectives(userID)
}

// AddPoints adds points to the user's progress and recomputes the level.
//
// On a level-up, a single "Level N" badge is awarded for the new level, even
// when several levels were crossed in one call. Every 5th level issues a
// simulated gift card.
func (e *Engine) AddPoints(userID uuid.UUID, points int) error {
	progress, err := models.ProgressForUser(e.db, userID)
	if err != nil {
		return err
	}

	progress.Points += points

	newLevel := models.LevelForPoints(progress.Points)
	leveledUp := newLevel > progress.Level
	if leveledUp {
		progress.Level = newLevel
	}

	err = e.db.Save(&progress).Error
	if err != nil {
		return err
	}

	if !leveledUp {
		return nil
	}

	_, err = e.AwardBadge(userID, fmt.Sprintf("Level %d", newLevel), fmt.Sprintf("Reached level %d", newLevel), "trophy")
	if err != nil {
		return err
	}

	if reward := rewardForLevel(e.rng, userID, newLevel); reward != nil {
		err = e.db.Create(reward).Error
		if err != nil {
			return err
		}
	}

	return e.recalculateUnlocks(userID)
}

// UpdateStreak advances the consecutive-day logging streak.
//
// The comparison works on calendar days, not elapsed time: a second log on
// the same day is a no-op, a log on the following day increments the streak
// and anything else resets it to 1.
func (e *Engine) UpdateStreak(userID uuid.UUID) error {
	progress, err := models.ProgressForUser(e.db, userID)
	if err != nil {
		return err
	}

	now := e.clock()
	last := progress.LastLogDate

	if last != nil && types.SameDay(*last, now) {
		return nil
	}

	if last != nil && types.DayBefore(*last, now) {
		progress.Streak++
	} else {
		progress.Streak = 1
	}

	progress.LastLogDate = &now

	err = e.db.Save(&progress).Error
	if err != nil {
		return err
	}

	switch progress.Streak {
	case 7:
		_, err = e.AwardBadge(userID, "Week Warrior", "7-day logging streak", "flame")
	case 30:
		_, err = e.AwardBadge(userID, "Month Master", "30-day logging streak", "star")
	}

	return err
}

// AwardBadge awards a badge to the user. Badges are idempotent by name:
// awarding a name the user already has is a no-op and reports false.
//
// Badges in the special reward set also issue a gift card, and every new
// badge triggers a cosmetic unlock recomputation.
func (e *Engine) AwardBadge(userID uuid.UUID, name, description, icon string) (bool, error) {
	var count int64
	err := e.db.Model(&models.Badge{}).Where("user_id = ? AND name = ?", userID, name).Count(&count).Error
	if err != nil {
		return false, err
	}

	if count > 0 {
		return false, nil
	}

	badge := models.Badge{
		UserID:      userID,
		Name:        name,
		Description: description,
		Icon:        icon,
	}

	err = e.db.Create(&badge).Error
	if err != nil {
		return false, err
	}

	progress, err := models.ProgressForUser(e.db, userID)
	if err != nil {
		return false, err
	}

	if reward := rewardForBadge(e.rng, userID, name, progress.Level); reward != nil {
		err = e.db.Create(reward).Error
		if err != nil {
			return false, err
		}
	}

	return true, e.recalculateUnlocks(userID)
}

// OnExpenseLogged runs the progress pipeline after a new ledger entry, in
// fixed order: points for the log itself, streak update, objective
// re-evaluation, ledger size milestones.
func (e *Engine) OnExpenseLogged(userID uuid.UUID) error {
	err := e.AddPoints(userID, pointsPerLog)
	if err != nil {
		return err
	}

	err = e.UpdateStreak(userID)
	if err != nil {
		return err
	}

	err = e.CheckObjectives(userID)
	if err != nil {
		return err
	}

	return e.checkMilestones(userID)
}

// checkMilestones awards the ledger size badges.
func (e *Engine) checkMilestones(userID uuid.UUID) error {
	count, err := models.ExpenseCount(e.db, userID)
	if err != nil {
		return err
	}

	var name, description, icon string

	switch count {
	case 1:
		name, description, icon = "First Step", "Logged your first expense", "check"
	case 10:
		name, description, icon = "Getting Started", "Logged 10 expenses", "target"
	case 50:
		name, description, icon = "Dedicated Tracker", "Logged 50 expenses", "award"
	case 100:
		name, description, icon = "Century Club", "Logged 100 expenses", "trophy"
	default:
		return nil
	}

	_, err = e.AwardBadge(userID, name, description, icon)
	return err
}

// recalculateUnlocks unlocks every catalog cosmetic whose predicate is
// satisfied by the current level and badge set. Unlocks are monotonic and
// never revoked.
func (e *Engine) recalculateUnlocks(userID uuid.UUID) error {
	progress, err := models.ProgressForUser(e.db, userID)
	if err != nil {
		return err
	}

	names, err := models.BadgeNames(e.db, userID)
	if err != nil {
		return err
	}

	badges := make(map[string]bool, len(names))
	for _, name := range names {
		badges[name] = true
	}

	unlocked, err := models.UnlockedCosmeticIDs(e.db, userID)
	if err != nil {
		return err
	}

	for _, cosmetic := range Catalog() {
		if _, ok := unlocked[cosmetic.ID]; ok {
			continue
		}

		if !cosmetic.Satisfied(progress.Level, badges) {
			continue
		}

		err = e.db.Create(&models.CosmeticUnlock{UserID: userID, CosmeticID: cosmetic.ID}).Error
		if err != nil {
			return err
		}
	}

	return nil
}
