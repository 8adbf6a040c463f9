package gamification_test

import (
	"time"

	"github.com/pocketquest/backend/internal/models"
	"github.com/pocketquest/backend/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) notifications(userID interface{}) []models.Notification {
	var notifications []models.Notification
	require.Nil(suite.T(), models.DB.Where("user_id = ?", userID).Find(&notifications).Error)
	return notifications
}

func (suite *TestSuiteStandard) TestBudgetThresholds() {
	user := suite.createTestUser()

	budget := models.Budget{
		UserID:   user.ID,
		Category: "groceries",
		Amount:   decimal.NewFromInt(100),
		Period:   types.PeriodMonthly,
	}
	require.Nil(suite.T(), models.DB.Create(&budget).Error)

	// 85% spent reaches the 80 threshold, but not 90 or 100
	expense := models.Expense{
		UserID:   user.ID,
		Amount:   decimal.NewFromInt(85),
		Category: "groceries",
		Date:     time.Now(),
	}
	require.Nil(suite.T(), models.DB.Create(&expense).Error)

	require.Nil(suite.T(), suite.engine.CheckBudgetThresholds(user.ID, "groceries"))

	notifications := suite.notifications(user.ID)
	require.Len(suite.T(), notifications, 1)

	notification := notifications[0]
	assert.Equal(suite.T(), budget.ID, notification.SourceID)
	assert.Equal(suite.T(), "groceries", notification.SourceLabel)
	assert.Equal(suite.T(), 80, notification.Threshold)
	assert.True(suite.T(), notification.Spent.Equal(decimal.NewFromInt(85)))
	assert.True(suite.T(), notification.Amount.Equal(decimal.NewFromInt(100)))
	assert.False(suite.T(), notification.Read)
}

func (suite *TestSuiteStandard) TestBudgetThresholdsAllCrossed() {
	user := suite.createTestUser()

	budget := models.Budget{
		UserID:   user.ID,
		Category: models.CategoryOverall,
		Amount:   decimal.NewFromInt(100),
		Period:   types.PeriodMonthly,
	}
	require.Nil(suite.T(), models.DB.Create(&budget).Error)

	expense := models.Expense{
		UserID:   user.ID,
		Amount:   decimal.NewFromInt(150),
		Category: "travel",
		Date:     time.Now(),
	}
	require.Nil(suite.T(), models.DB.Create(&expense).Error)

	require.Nil(suite.T(), suite.engine.CheckBudgetThresholds(user.ID, "travel"))

	// One notification per crossed threshold
	assert.Len(suite.T(), suite.notifications(user.ID), 3)
}

func (suite *TestSuiteStandard) TestThresholdDeduplication() {
	user := suite.createTestUser()

	budget := models.Budget{
		UserID:   user.ID,
		Category: "groceries",
		Amount:   decimal.NewFromInt(100),
		Period:   types.PeriodMonthly,
	}
	require.Nil(suite.T(), models.DB.Create(&budget).Error)

	expense := models.Expense{
		UserID:   user.ID,
		Amount:   decimal.NewFromInt(85),
		Category: "groceries",
		Date:     time.Now(),
	}
	require.Nil(suite.T(), models.DB.Create(&expense).Error)

	require.Nil(suite.T(), suite.engine.CheckBudgetThresholds(user.ID, "groceries"))
	require.Len(suite.T(), suite.notifications(user.ID), 1)

	// A second check within the cooldown window does not create another
	// notification for the same threshold
	require.Nil(suite.T(), suite.engine.CheckBudgetThresholds(user.ID, "groceries"))
	assert.Len(suite.T(), suite.notifications(user.ID), 1)

	// After the cooldown, the same crossing alerts again
	later := suite.engine.WithClock(func() time.Time { return time.Now().Add(61 * time.Minute) })
	require.Nil(suite.T(), later.CheckBudgetThresholds(user.ID, "groceries"))
	assert.Len(suite.T(), suite.notifications(user.ID), 2)
}

func (suite *TestSuiteStandard) TestLimitThresholdsSkipDisabled() {
	user := suite.createTestUser()

	limit := models.SpendingLimit{
		UserID:   user.ID,
		Category: "coffee",
		Amount:   decimal.NewFromInt(10),
		Period:   types.PeriodDaily,
		Enabled:  false,
	}
	require.Nil(suite.T(), models.DB.Create(&limit).Error)

	expense := models.Expense{
		UserID:   user.ID,
		Amount:   decimal.NewFromInt(50),
		Category: "coffee",
		Date:     time.Now(),
	}
	require.Nil(suite.T(), models.DB.Create(&expense).Error)

	require.Nil(suite.T(), suite.engine.CheckLimitThresholds(user.ID, "coffee"))
	assert.Empty(suite.T(), suite.notifications(user.ID))

	// Enabling the limit makes the crossing alert
	require.Nil(suite.T(), models.DB.Model(&limit).Update("enabled", true).Error)
	require.Nil(suite.T(), suite.engine.CheckLimitThresholds(user.ID, "coffee"))
	assert.Len(suite.T(), suite.notifications(user.ID), 3)
}

func (suite *TestSuiteStandard) TestOverallSourcesMatchAnyCategory() {
	user := suite.createTestUser()

	budget := models.Budget{
		UserID:   user.ID,
		Category: models.CategoryOverall,
		Amount:   decimal.NewFromInt(100),
		Period:   types.PeriodMonthly,
	}
	require.Nil(suite.T(), models.DB.Create(&budget).Error)

	expense := models.Expense{
		UserID:   user.ID,
		Amount:   decimal.NewFromInt(90),
		Category: "anything",
		Date:     time.Now(),
	}
	require.Nil(suite.T(), models.DB.Create(&expense).Error)

	// The overall budget is checked regardless of the expense category
	require.Nil(suite.T(), suite.engine.CheckBudgetThresholds(user.ID, "anything"))
	assert.Len(suite.T(), suite.notifications(user.ID), 2)
}
