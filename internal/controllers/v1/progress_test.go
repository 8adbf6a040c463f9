package v1_test

import (
	"net/http"

	v1 "github.com/pocketquest/backend/internal/controllers/v1"
	"github.com/pocketquest/backend/internal/gamification"
	"github.com/pocketquest/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestGetProgressDefaults() {
	suite.register("ash@example.com")

	recorder := suite.request(http.MethodGet, "/v1/progress", nil)
	require.Equal(suite.T(), http.StatusOK, recorder.Code)

	var progress v1.ProgressResponse
	suite.decode(recorder, &progress)

	assert.Equal(suite.T(), 0, progress.Points)
	assert.Equal(suite.T(), 1, progress.Level)
	assert.Equal(suite.T(), 0, progress.Streak)
	assert.Equal(suite.T(), models.DefaultFace, progress.Avatar.Face)
	assert.Equal(suite.T(), models.DefaultBackground, progress.Avatar.Background)
	assert.Empty(suite.T(), progress.Badges)
	assert.Empty(suite.T(), progress.Rewards)
}

func (suite *TestSuiteStandard) TestGetCosmetics() {
	suite.register("ash@example.com")

	recorder := suite.request(http.MethodGet, "/v1/progress/cosmetics", nil)
	require.Equal(suite.T(), http.StatusOK, recorder.Code)

	var list v1.CosmeticListResponse
	suite.decode(recorder, &list)

	assert.Len(suite.T(), list.Data, len(gamification.Catalog()))

	unlocked := 0
	for _, cosmetic := range list.Data {
		if cosmetic.Unlocked {
			unlocked++
			assert.NotNil(suite.T(), cosmetic.UnlockedAt)
		}
	}

	// Only the defaults are unlocked for a fresh account
	assert.Equal(suite.T(), len(gamification.DefaultCosmeticIDs()), unlocked)
}

func (suite *TestSuiteStandard) TestUpdateAvatarLocked() {
	suite.register("ash@example.com")

	// face-classic-2 requires level 3
	recorder := suite.request(http.MethodPatch, "/v1/progress/avatar", map[string]string{
		"face": "face-classic-2",
	})
	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)

	// Unknown ids and slot mismatches are rejected as well
	recorder = suite.request(http.MethodPatch, "/v1/progress/avatar", map[string]string{
		"face": "no-such-cosmetic",
	})
	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)

	recorder = suite.request(http.MethodPatch, "/v1/progress/avatar", map[string]string{
		"face": "outfit-casual",
	})
	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
}

func (suite *TestSuiteStandard) TestUpdateAvatarUnlocked() {
	user := suite.register("ash@example.com")

	// Reaching level 3 unlocks face-classic-2
	var record models.User
	require.Nil(suite.T(), models.DB.Where("email = ?", user.Email).First(&record).Error)

	var progress models.UserProgress
	require.Nil(suite.T(), models.DB.Where("user_id = ?", record.ID).First(&progress).Error)

	require.Nil(suite.T(), models.DB.Model(&progress).Updates(map[string]any{"points": 250, "level": 3}).Error)
	require.Nil(suite.T(), models.DB.Create(&models.CosmeticUnlock{UserID: record.ID, CosmeticID: "face-classic-2"}).Error)

	recorder := suite.request(http.MethodPatch, "/v1/progress/avatar", map[string]string{
		"face": "face-classic-2",
	})
	require.Equal(suite.T(), http.StatusOK, recorder.Code)

	var avatar v1.AvatarResponse
	suite.decode(recorder, &avatar)
	assert.Equal(suite.T(), "face-classic-2", avatar.Face)

	// Unset slots keep their selection
	assert.Equal(suite.T(), models.DefaultOutfit, avatar.Outfit)
}

func (suite *TestSuiteStandard) TestRewardClaim() {
	user := suite.register("ash@example.com")

	var record models.User
	require.Nil(suite.T(), models.DB.Where("email = ?", user.Email).First(&record).Error)

	reward := models.Reward{
		UserID:   record.ID,
		Name:     "Swiggy Gift Card",
		Provider: "Swiggy",
		Value:    25,
		Code:     "GC-TEST1234",
		Reason:   "Reached Level 5",
	}
	require.Nil(suite.T(), models.DB.Create(&reward).Error)

	recorder := suite.request(http.MethodPost, "/v1/rewards/"+reward.ID.String()+"/claim", nil)
	require.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response v1.RewardResponse
	suite.decode(recorder, &response)
	assert.True(suite.T(), response.Claimed)

	// Claiming twice fails
	recorder = suite.request(http.MethodPost, "/v1/rewards/"+reward.ID.String()+"/claim", nil)
	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
}

func (suite *TestSuiteStandard) TestNotificationReadFlow() {
	user := suite.register("ash@example.com")

	var record models.User
	require.Nil(suite.T(), models.DB.Where("email = ?", user.Email).First(&record).Error)

	for i := 0; i < 2; i++ {
		notification := models.Notification{
			UserID:      record.ID,
			SourceLabel: "groceries",
			Threshold:   80,
		}
		require.Nil(suite.T(), models.DB.Create(&notification).Error)
	}

	recorder := suite.request(http.MethodGet, "/v1/notifications/unread-count", nil)
	require.Equal(suite.T(), http.StatusOK, recorder.Code)

	var count v1.UnreadCountResponse
	suite.decode(recorder, &count)
	assert.Equal(suite.T(), int64(2), count.Count)

	recorder = suite.request(http.MethodPost, "/v1/notifications/read-all", nil)
	require.Equal(suite.T(), http.StatusNoContent, recorder.Code)

	recorder = suite.request(http.MethodGet, "/v1/notifications/unread-count", nil)
	require.Equal(suite.T(), http.StatusOK, recorder.Code)

	suite.decode(recorder, &count)
	assert.Equal(suite.T(), int64(0), count.Count)

	recorder = suite.request(http.MethodDelete, "/v1/notifications", nil)
	require.Equal(suite.T(), http.StatusNoContent, recorder.Code)

	recorder = suite.request(http.MethodGet, "/v1/notifications", nil)
	require.Equal(suite.T(), http.StatusOK, recorder.Code)

	var list v1.NotificationListResponse
	suite.decode(recorder, &list)
	assert.Empty(suite.T(), list.Data)
}

func (suite *TestSuiteStandard) TestObjectiveEndpoints() {
	suite.register("ash@example.com")

	// Registration seeds three objectives
	recorder := suite.request(http.MethodGet, "/v1/objectives", nil)
	require.Equal(suite.T(), http.StatusOK, recorder.Code)

	var list v1.ObjectiveListResponse
	suite.decode(recorder, &list)
	assert.Len(suite.T(), list.Data, 3)

	recorder = suite.request(http.MethodPost, "/v1/objectives", map[string]any{
		"type":   "monthly",
		"title":  "Log on 15 days",
		"target": 15,
		"points": 100,
	})
	require.Equal(suite.T(), http.StatusCreated, recorder.Code)

	var objective v1.ObjectiveResponse
	suite.decode(recorder, &objective)
	assert.Equal(suite.T(), "monthly", objective.Type)
	assert.False(suite.T(), objective.Completed)

	// Invalid objectives are rejected
	recorder = suite.request(http.MethodPost, "/v1/objectives", map[string]any{
		"type":   "monthly",
		"target": 15,
	})
	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)

	recorder = suite.request(http.MethodPost, "/v1/objectives", map[string]any{
		"type":  "monthly",
		"title": "No target",
	})
	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)

	recorder = suite.request(http.MethodDelete, "/v1/objectives/"+objective.ID, nil)
	assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)
}

func (suite *TestSuiteStandard) TestDashboard() {
	suite.register("ash@example.com")

	recorder := suite.request(http.MethodPost, "/v1/income", map[string]any{
		"amount": 2000,
		"source": "Salary",
	})
	require.Equal(suite.T(), http.StatusCreated, recorder.Code)

	for _, body := range []map[string]any{
		{"amount": 300, "category": "groceries"},
		{"amount": 200, "category": "travel"},
	} {
		recorder = suite.request(http.MethodPost, "/v1/expenses", body)
		require.Equal(suite.T(), http.StatusCreated, recorder.Code)
	}

	recorder = suite.request(http.MethodGet, "/v1/dashboard", nil)
	require.Equal(suite.T(), http.StatusOK, recorder.Code)

	var dashboard v1.DashboardResponse
	suite.decode(recorder, &dashboard)

	assert.Equal(suite.T(), "monthly", dashboard.Period)
	assert.Equal(suite.T(), "2000", dashboard.Income.String())
	assert.Equal(suite.T(), "500", dashboard.Spent.String())
	assert.Equal(suite.T(), "1500", dashboard.Net.String())

	require.Len(suite.T(), dashboard.Categories, 2)
	assert.Equal(suite.T(), "groceries", dashboard.Categories[0].Category)
	assert.Nil(suite.T(), dashboard.Budget)

	recorder = suite.request(http.MethodGet, "/v1/dashboard?period=fortnightly", nil)
	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
}

func (suite *TestSuiteStandard) TestDashboardWithOverallBudget() {
	suite.register("ash@example.com")

	recorder := suite.request(http.MethodPost, "/v1/budgets", map[string]any{
		"category": "overall",
		"amount":   1000,
		"period":   "monthly",
	})
	require.Equal(suite.T(), http.StatusCreated, recorder.Code)

	recorder = suite.request(http.MethodPost, "/v1/expenses", map[string]any{
		"amount":   250,
		"category": "groceries",
	})
	require.Equal(suite.T(), http.StatusCreated, recorder.Code)

	recorder = suite.request(http.MethodGet, "/v1/dashboard", nil)
	require.Equal(suite.T(), http.StatusOK, recorder.Code)

	var dashboard v1.DashboardResponse
	suite.decode(recorder, &dashboard)

	require.NotNil(suite.T(), dashboard.Budget)
	assert.Equal(suite.T(), float64(25), dashboard.Budget.Percentage)
}
