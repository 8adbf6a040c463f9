package models_test

import (
	"time"

	"github.com/pocketquest/backend/internal/models"
	"github.com/pocketquest/backend/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestExpenseValidation() {
	user := suite.createTestUser(models.User{})

	tests := []struct {
		name    string
		expense models.Expense
		err     error
	}{
		{
			"zero amount",
			models.Expense{UserID: user.ID, Category: "groceries"},
			models.ErrAmountNotPositive,
		},
		{
			"missing category",
			models.Expense{UserID: user.ID, Amount: decimal.NewFromInt(10)},
			models.ErrCategoryMissing,
		},
		{
			"whitespace category",
			models.Expense{UserID: user.ID, Amount: decimal.NewFromInt(10), Category: "   "},
			models.ErrCategoryMissing,
		},
		{
			"valid",
			models.Expense{UserID: user.ID, Amount: decimal.NewFromInt(10), Category: "groceries"},
			nil,
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			err := models.DB.Create(&tt.expense).Error
			assert.ErrorIs(suite.T(), err, tt.err)
		})
	}
}

func (suite *TestSuiteStandard) TestExpenseDefaultDate() {
	user := suite.createTestUser(models.User{})

	expense := suite.createTestExpense(models.Expense{
		UserID:   user.ID,
		Amount:   decimal.NewFromInt(10),
		Category: "groceries",
	})

	assert.False(suite.T(), expense.Date.IsZero())
	assert.WithinDuration(suite.T(), time.Now(), expense.Date, time.Minute)
}

func (suite *TestSuiteStandard) TestExpenseTrimWhitespace() {
	user := suite.createTestUser(models.User{})

	expense := suite.createTestExpense(models.Expense{
		UserID:   user.ID,
		Amount:   decimal.NewFromInt(10),
		Category: "  groceries  ",
		Note:     " Weekly shop\t",
	})

	assert.Equal(suite.T(), "groceries", expense.Category)
	assert.Equal(suite.T(), "Weekly shop", expense.Note)
}

func (suite *TestSuiteStandard) TestExpenseTotal() {
	user := suite.createTestUser(models.User{})

	suite.createTestExpense(models.Expense{
		UserID:   user.ID,
		Amount:   decimal.NewFromFloat(12.50),
		Category: "groceries",
		Date:     time.Now(),
	})
	suite.createTestExpense(models.Expense{
		UserID:   user.ID,
		Amount:   decimal.NewFromFloat(7.50),
		Category: "coffee",
		Date:     time.Now(),
	})

	// Expenses outside the window do not count
	suite.createTestExpense(models.Expense{
		UserID:   user.ID,
		Amount:   decimal.NewFromInt(999),
		Category: "travel",
		Date:     time.Now().AddDate(0, -2, 0),
	})

	total, err := models.ExpenseTotal(models.DB, user.ID, types.PeriodMonthly)
	require.Nil(suite.T(), err)
	assert.True(suite.T(), total.Equal(decimal.NewFromInt(20)), "total is %s", total)

	// The all-time window includes everything
	total, err = models.ExpenseTotal(models.DB, user.ID, types.PeriodAllTime)
	require.Nil(suite.T(), err)
	assert.True(suite.T(), total.Equal(decimal.NewFromInt(1019)), "total is %s", total)
}

func (suite *TestSuiteStandard) TestExpenseCategoryTotals() {
	user := suite.createTestUser(models.User{})

	suite.createTestExpense(models.Expense{
		UserID:   user.ID,
		Amount:   decimal.NewFromInt(10),
		Category: "groceries",
		Date:     time.Now(),
	})
	suite.createTestExpense(models.Expense{
		UserID:   user.ID,
		Amount:   decimal.NewFromInt(15),
		Category: "groceries",
		Date:     time.Now(),
	})
	suite.createTestExpense(models.Expense{
		UserID:   user.ID,
		Amount:   decimal.NewFromInt(30),
		Category: "travel",
		Date:     time.Now(),
	})

	totals, err := models.ExpenseCategoryTotals(models.DB, user.ID, types.PeriodMonthly)
	require.Nil(suite.T(), err)

	require.Len(suite.T(), totals, 2)
	assert.True(suite.T(), totals["groceries"].Equal(decimal.NewFromInt(25)))
	assert.True(suite.T(), totals["travel"].Equal(decimal.NewFromInt(30)))
}

func (suite *TestSuiteStandard) TestDistinctExpenseDays() {
	user := suite.createTestUser(models.User{})

	today := time.Now().UTC()

	// Two expenses today, one yesterday: two distinct days
	suite.createTestExpense(models.Expense{UserID: user.ID, Amount: decimal.NewFromInt(1), Category: "a", Date: today})
	suite.createTestExpense(models.Expense{UserID: user.ID, Amount: decimal.NewFromInt(2), Category: "b", Date: today})
	suite.createTestExpense(models.Expense{UserID: user.ID, Amount: decimal.NewFromInt(3), Category: "c", Date: today.AddDate(0, 0, -1)})

	days, err := models.DistinctExpenseDays(models.DB, user.ID, today.AddDate(0, 0, -7))
	require.Nil(suite.T(), err)
	assert.Equal(suite.T(), 2, days)
}

func (suite *TestSuiteStandard) TestIncomeValidation() {
	user := suite.createTestUser(models.User{})

	tests := []struct {
		name   string
		income models.Income
		err    error
	}{
		{
			"zero amount",
			models.Income{UserID: user.ID, Source: "Salary"},
			models.ErrAmountNotPositive,
		},
		{
			"missing source",
			models.Income{UserID: user.ID, Amount: decimal.NewFromInt(100)},
			models.ErrSourceMissing,
		},
		{
			"valid",
			models.Income{UserID: user.ID, Amount: decimal.NewFromInt(100), Source: "Salary"},
			nil,
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			err := models.DB.Create(&tt.income).Error
			assert.ErrorIs(suite.T(), err, tt.err)
		})
	}
}

func (suite *TestSuiteStandard) TestIncomeTotal() {
	user := suite.createTestUser(models.User{})

	// A monthly salary counts at a quarter in a weekly window
	suite.createTestIncome(models.Income{
		UserID:    user.ID,
		Amount:    decimal.NewFromInt(2400),
		Source:    "Salary",
		Frequency: types.FrequencyMonthly,
		Date:      time.Now(),
	})

	// One-time income counts at face value
	suite.createTestIncome(models.Income{
		UserID: user.ID,
		Amount: decimal.NewFromInt(50),
		Source: "Gift",
		Date:   time.Now(),
	})

	total, err := models.IncomeTotal(models.DB, user.ID, types.PeriodWeekly)
	require.Nil(suite.T(), err)
	assert.True(suite.T(), total.Equal(decimal.NewFromInt(650)), "total is %s", total)
}
