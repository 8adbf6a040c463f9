package models_test

import (
	"github.com/pocketquest/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestLevelForPoints() {
	tests := []struct {
		points int
		level  int
	}{
		{0, 1},
		{99, 1},
		{100, 2},
		{250, 3},
		{1000, 11},
	}

	for _, tt := range tests {
		assert.Equal(suite.T(), tt.level, models.LevelForPoints(tt.points), "points: %d", tt.points)
	}
}

func (suite *TestSuiteStandard) TestProgressForUserLazyInit() {
	user := suite.createTestUser(models.User{})

	progress, err := models.ProgressForUser(models.DB, user.ID)
	require.Nil(suite.T(), err)

	assert.Equal(suite.T(), 0, progress.Points)
	assert.Equal(suite.T(), 1, progress.Level)
	assert.Equal(suite.T(), 0, progress.Streak)
	assert.Nil(suite.T(), progress.LastLogDate)
	assert.Equal(suite.T(), models.DefaultFace, progress.SelectedFace)
	assert.Equal(suite.T(), models.DefaultOutfit, progress.SelectedOutfit)
	assert.Equal(suite.T(), models.DefaultShoes, progress.SelectedShoes)
	assert.Equal(suite.T(), models.DefaultHeaddress, progress.SelectedHeaddress)
	assert.Equal(suite.T(), models.DefaultBackground, progress.SelectedBackground)

	// The second read returns the same record instead of creating a new one
	again, err := models.ProgressForUser(models.DB, user.ID)
	require.Nil(suite.T(), err)
	assert.Equal(suite.T(), progress.ID, again.ID)
}

func (suite *TestSuiteStandard) TestProgressRepair() {
	user := suite.createTestUser(models.User{})

	// Simulate a record from an older schema with missing fields
	err := models.DB.Create(&models.UserProgress{
		UserID: user.ID,
		Points: 250,
	}).Error
	require.Nil(suite.T(), err)

	progress, err := models.ProgressForUser(models.DB, user.ID)
	require.Nil(suite.T(), err)

	assert.Equal(suite.T(), 3, progress.Level)
	assert.Equal(suite.T(), models.DefaultFace, progress.SelectedFace)
	assert.Equal(suite.T(), models.DefaultBackground, progress.SelectedBackground)
}

func (suite *TestSuiteStandard) TestBadgeNameUniquePerUser() {
	user := suite.createTestUser(models.User{})
	other := suite.createTestUser(models.User{})

	err := models.DB.Create(&models.Badge{UserID: user.ID, Name: "First Step"}).Error
	require.Nil(suite.T(), err)

	err = models.DB.Create(&models.Badge{UserID: user.ID, Name: "First Step"}).Error
	assert.ErrorIs(suite.T(), err, models.ErrBadgeNameNotUnique)

	// A different user can earn the same badge
	err = models.DB.Create(&models.Badge{UserID: other.ID, Name: "First Step"}).Error
	assert.Nil(suite.T(), err)
}

func (suite *TestSuiteStandard) TestUnlockedCosmeticIDs() {
	user := suite.createTestUser(models.User{})

	require.Nil(suite.T(), models.DB.Create(&models.CosmeticUnlock{UserID: user.ID, CosmeticID: "face-classic-1"}).Error)
	require.Nil(suite.T(), models.DB.Create(&models.CosmeticUnlock{UserID: user.ID, CosmeticID: "outfit-casual"}).Error)

	unlocked, err := models.UnlockedCosmeticIDs(models.DB, user.ID)
	require.Nil(suite.T(), err)

	require.Len(suite.T(), unlocked, 2)
	assert.Contains(suite.T(), unlocked, "face-classic-1")
	assert.Contains(suite.T(), unlocked, "outfit-casual")
	assert.False(suite.T(), unlocked["face-classic-1"].IsZero())
}

func (suite *TestSuiteStandard) TestResourceNotFound() {
	var progress models.UserProgress
	err := models.DB.First(&progress, "points = ?", 9000).Error
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}
