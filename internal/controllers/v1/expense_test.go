package v1_test

import (
	"net/http"

	v1 "github.com/pocketquest/backend/internal/controllers/v1"
	"github.com/pocketquest/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestCreateExpense() {
	suite.register("ash@example.com")

	recorder := suite.request(http.MethodPost, "/v1/expenses", map[string]any{
		"amount":   14.50,
		"category": "groceries",
		"note":     "Weekly shop",
	})
	require.Equal(suite.T(), http.StatusCreated, recorder.Code)

	var expense v1.ExpenseResponse
	suite.decode(recorder, &expense)

	assert.Equal(suite.T(), "groceries", expense.Category)
	assert.Equal(suite.T(), "one-time", expense.Frequency)
	assert.False(suite.T(), expense.Date.IsZero())

	// The progress pipeline ran: 5 points for the log, 10 for the
	// completed starter objective, and the First Step badge
	recorder = suite.request(http.MethodGet, "/v1/progress", nil)
	require.Equal(suite.T(), http.StatusOK, recorder.Code)

	var progress v1.ProgressResponse
	suite.decode(recorder, &progress)

	assert.Equal(suite.T(), 15, progress.Points)
	assert.Equal(suite.T(), 1, progress.Streak)

	names := make([]string, 0, len(progress.Badges))
	for _, badge := range progress.Badges {
		names = append(names, badge.Name)
	}
	assert.Contains(suite.T(), names, "First Step")
}

func (suite *TestSuiteStandard) TestCreateExpenseValidation() {
	suite.register("ash@example.com")

	tests := []struct {
		name string
		body map[string]any
	}{
		{"missing category", map[string]any{"amount": 10}},
		{"zero amount", map[string]any{"category": "groceries"}},
		{"negative amount", map[string]any{"amount": -5, "category": "groceries"}},
		{"invalid frequency", map[string]any{"amount": 10, "category": "groceries", "frequency": "yearly"}},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			recorder := suite.request(http.MethodPost, "/v1/expenses", tt.body)
			assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
		})
	}
}

func (suite *TestSuiteStandard) TestCreateExpenseEmitsNotification() {
	suite.register("ash@example.com")

	recorder := suite.request(http.MethodPost, "/v1/budgets", map[string]any{
		"category": "groceries",
		"amount":   100,
		"period":   "monthly",
	})
	require.Equal(suite.T(), http.StatusCreated, recorder.Code)

	recorder = suite.request(http.MethodPost, "/v1/expenses", map[string]any{
		"amount":   85,
		"category": "groceries",
	})
	require.Equal(suite.T(), http.StatusCreated, recorder.Code)

	recorder = suite.request(http.MethodGet, "/v1/notifications", nil)
	require.Equal(suite.T(), http.StatusOK, recorder.Code)

	var list v1.NotificationListResponse
	suite.decode(recorder, &list)

	require.Len(suite.T(), list.Data, 1)
	assert.Equal(suite.T(), 80, list.Data[0].Threshold)
	assert.Equal(suite.T(), "groceries", list.Data[0].SourceLabel)
	assert.False(suite.T(), list.Data[0].Read)
}

func (suite *TestSuiteStandard) TestListExpenses() {
	suite.register("ash@example.com")

	for _, body := range []map[string]any{
		{"amount": 10, "category": "groceries"},
		{"amount": 20, "category": "grocery-run"},
		{"amount": 30, "category": "travel"},
	} {
		recorder := suite.request(http.MethodPost, "/v1/expenses", body)
		require.Equal(suite.T(), http.StatusCreated, recorder.Code)
	}

	recorder := suite.request(http.MethodGet, "/v1/expenses", nil)
	require.Equal(suite.T(), http.StatusOK, recorder.Code)

	var list v1.ExpenseListResponse
	suite.decode(recorder, &list)
	assert.Len(suite.T(), list.Data, 3)
	assert.Equal(suite.T(), int64(3), list.Pagination.Total)

	// The category filter is a glob pattern
	recorder = suite.request(http.MethodGet, "/v1/expenses?category=grocer*", nil)
	require.Equal(suite.T(), http.StatusOK, recorder.Code)

	suite.decode(recorder, &list)
	assert.Len(suite.T(), list.Data, 2)

	recorder = suite.request(http.MethodGet, "/v1/expenses?category=travel", nil)
	require.Equal(suite.T(), http.StatusOK, recorder.Code)

	suite.decode(recorder, &list)
	assert.Len(suite.T(), list.Data, 1)
}

func (suite *TestSuiteStandard) TestListExpensesPagination() {
	suite.register("ash@example.com")

	for i := 0; i < 5; i++ {
		recorder := suite.request(http.MethodPost, "/v1/expenses", map[string]any{
			"amount":   1,
			"category": "misc",
		})
		require.Equal(suite.T(), http.StatusCreated, recorder.Code)
	}

	recorder := suite.request(http.MethodGet, "/v1/expenses?limit=2&offset=4", nil)
	require.Equal(suite.T(), http.StatusOK, recorder.Code)

	var list v1.ExpenseListResponse
	suite.decode(recorder, &list)

	assert.Len(suite.T(), list.Data, 1)
	assert.Equal(suite.T(), int64(5), list.Pagination.Total)
	assert.Equal(suite.T(), 4, list.Pagination.Offset)

	// A negative offset behaves like no offset
	recorder = suite.request(http.MethodGet, "/v1/expenses?offset=-1", nil)
	require.Equal(suite.T(), http.StatusOK, recorder.Code)

	suite.decode(recorder, &list)
	assert.Len(suite.T(), list.Data, 5)
}

func (suite *TestSuiteStandard) TestDeleteExpense() {
	suite.register("ash@example.com")

	recorder := suite.request(http.MethodPost, "/v1/expenses", map[string]any{
		"amount":   10,
		"category": "groceries",
	})
	require.Equal(suite.T(), http.StatusCreated, recorder.Code)

	var expense v1.ExpenseResponse
	suite.decode(recorder, &expense)

	recorder = suite.request(http.MethodDelete, "/v1/expenses/"+expense.ID, nil)
	assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)

	recorder = suite.request(http.MethodGet, "/v1/expenses/"+expense.ID, nil)
	assert.Equal(suite.T(), http.StatusNotFound, recorder.Code)

	// Progress earned from the expense is kept
	var progress models.UserProgress
	require.Nil(suite.T(), models.DB.First(&progress).Error)
	assert.Equal(suite.T(), 15, progress.Points)
}

func (suite *TestSuiteStandard) TestExpenseIsolatedPerUser() {
	suite.register("ash@example.com")

	recorder := suite.request(http.MethodPost, "/v1/expenses", map[string]any{
		"amount":   10,
		"category": "groceries",
	})
	require.Equal(suite.T(), http.StatusCreated, recorder.Code)

	var expense v1.ExpenseResponse
	suite.decode(recorder, &expense)

	// Another user cannot see or delete the expense
	suite.cookies = nil
	suite.register("misty@example.com")

	recorder = suite.request(http.MethodGet, "/v1/expenses/"+expense.ID, nil)
	assert.Equal(suite.T(), http.StatusNotFound, recorder.Code)

	recorder = suite.request(http.MethodDelete, "/v1/expenses/"+expense.ID, nil)
	assert.Equal(suite.T(), http.StatusNotFound, recorder.Code)

	recorder = suite.request(http.MethodGet, "/v1/expenses", nil)
	require.Equal(suite.T(), http.StatusOK, recorder.Code)

	var list v1.ExpenseListResponse
	suite.decode(recorder, &list)
	assert.Empty(suite.T(), list.Data)
}
