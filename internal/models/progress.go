package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Default avatar loadout for new users. These cosmetic ids must exist in the
// catalog and be unlocked from the start.
const (
	DefaultFace       = "face-classic-1"
	DefaultOutfit     = "outfit-casual"
	DefaultShoes      = "shoes-sneakers"
	DefaultHeaddress  = "headdress-none"
	DefaultBackground = "bg-simple"
)

// UserProgress is the authoritative gamification state of a single user.
//
// Points never decrease, the level is derived from the points and the streak
// counts consecutive calendar days with at least one logged expense.
type UserProgress struct {
	DefaultModel
	UserID      uuid.UUID `gorm:"uniqueIndex"`
	Points      int
	Level       int
	Streak      int
	LastLogDate *time.Time

	// The five selected avatar cosmetic slots
	SelectedFace       string
	SelectedOutfit     string
	SelectedShoes      string
	SelectedHeaddress  string
	SelectedBackground string
}

// LevelForPoints derives the level from a point total. Every 100 points are
// one level, everyone starts at level 1.
func LevelForPoints(points int) int {
	return points/100 + 1
}

// ProgressForUser returns the progress record of a user, lazily initializing
// it with sane defaults when it is missing. Missing or partially corrupt
// state is repaired instead of reported as an error.
func ProgressForUser(db *gorm.DB, userID uuid.UUID) (UserProgress, error) {
	var progress UserProgress
	err := db.Where("user_id = ?", userID).First(&progress).Error
	if err == nil {
		repairProgress(db, &progress)
		return progress, nil
	}

	progress = UserProgress{
		UserID:             userID,
		Points:             0,
		Level:              1,
		Streak:             0,
		SelectedFace:       DefaultFace,
		SelectedOutfit:     DefaultOutfit,
		SelectedShoes:      DefaultShoes,
		SelectedHeaddress:  DefaultHeaddress,
		SelectedBackground: DefaultBackground,
	}

	err = db.Create(&progress).Error
	if err != nil {
		return UserProgress{}, err
	}

	return progress, nil
}

// repairProgress resets fields that are missing from persisted state, e.g.
// after a schema change. Failures here must not fail the read.
func repairProgress(db *gorm.DB, progress *UserProgress) {
	changed := false

	if progress.Level < 1 {
		progress.Level = LevelForPoints(progress.Points)
		changed = true
	}

	if progress.SelectedFace == "" {
		progress.SelectedFace = DefaultFace
		progress.SelectedOutfit = DefaultOutfit
		progress.SelectedShoes = DefaultShoes
		progress.SelectedHeaddress = DefaultHeaddress
		progress.SelectedBackground = DefaultBackground
		changed = true
	}

	if changed {
		db.Save(progress)
	}
}

// Badge is earned once and immutable afterwards. The earned time is the
// CreatedAt timestamp.
type Badge struct {
	DefaultModel
	UserID      uuid.UUID `gorm:"index;uniqueIndex:badge_user_name"`
	Name        string    `gorm:"uniqueIndex:badge_user_name"`
	Description string
	Icon        string
}

// BadgeNames returns the names of all badges a user has earned.
func BadgeNames(db *gorm.DB, userID uuid.UUID) ([]string, error) {
	var names []string
	err := db.Model(&Badge{}).Where("user_id = ?", userID).Pluck("name", &names).Error
	return names, err
}

// Reward is a simulated gift card. No real value is ever issued.
type Reward struct {
	DefaultModel
	UserID   uuid.UUID `gorm:"index"`
	Name     string
	Provider string
	Value    int
	Code     string
	Reason   string
	Claimed  bool
}

// CosmeticUnlock marks a catalog cosmetic as unlocked for a user. Unlocks
// are monotonic, rows are never deleted.
type CosmeticUnlock struct {
	DefaultModel
	UserID     uuid.UUID `gorm:"index;uniqueIndex:cosmetic_user_item"`
	CosmeticID string    `gorm:"uniqueIndex:cosmetic_user_item"`
}

// UnlockedCosmeticIDs returns the ids of all cosmetics a user has unlocked.
func UnlockedCosmeticIDs(db *gorm.DB, userID uuid.UUID) (map[string]time.Time, error) {
	var unlocks []CosmeticUnlock
	err := db.Where("user_id = ?", userID).Find(&unlocks).Error
	if err != nil {
		return nil, err
	}

	ids := make(map[string]time.Time, len(unlocks))
	for _, unlock := range unlocks {
		ids[unlock.CosmeticID] = unlock.CreatedAt
	}

	return ids, nil
}
