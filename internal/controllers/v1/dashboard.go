package v1

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"
	"github.com/pocketquest/backend/internal/httperror"
	"github.com/pocketquest/backend/internal/models"
	"github.com/pocketquest/backend/internal/types"
	"github.com/shopspring/decimal"
)

// CategorySpending is the spending of one category in the dashboard period.
type CategorySpending struct {
	Category string          `json:"category" example:"groceries"`
	Spent    decimal.Decimal `json:"spent" example:"123.45"`
}

// DashboardResponse summarizes the ledger for one period.
type DashboardResponse struct {
	Period     string             `json:"period" example:"monthly"`
	Income     decimal.Decimal    `json:"income" example:"2400"`
	Spent      decimal.Decimal    `json:"spent" example:"1765.23"`
	Net        decimal.Decimal    `json:"net" example:"634.77"`
	Categories []CategorySpending `json:"categories"`
	Budget     *models.Status     `json:"budget,omitempty"` // Status of the overall budget for the period, if one exists
}

// GetDashboard summarizes income, spending and the overall budget for a
// period.
//
//	@Summary		Dashboard
//	@Description	Returns income, spending per category and the overall budget status for a period
//	@Tags			Dashboard
//	@Produce		json
//	@Success		200	{object}	DashboardResponse
//	@Failure		400	{object}	httperror.Error
//	@Failure		401	{object}	httperror.Error
//	@Failure		500	{object}	httperror.Error
//	@Param			period	query	string	false	"The period to summarize. Defaults to monthly"
//	@Router			/v1/dashboard [get]
func GetDashboard(c *gin.Context) {
	period := types.PeriodMonthly
	if raw := c.Query("period"); raw != "" {
		parsed, err := types.ParsePeriod(raw)
		if err != nil {
			c.JSON(status(err), httperror.New(err))
			return
		}
		period = parsed
	}

	userID := currentUserID(c)

	income, err := models.IncomeTotal(models.DB, userID, period)
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	spent, err := models.ExpenseTotal(models.DB, userID, period)
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	totals, err := models.ExpenseCategoryTotals(models.DB, userID, period)
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	categories := make([]CategorySpending, 0, len(totals))
	for category, categorySpent := range totals {
		categories = append(categories, CategorySpending{Category: category, Spent: categorySpent})
	}

	// Largest spenders first, ties broken by name for a stable order.
	sort.Slice(categories, func(i, j int) bool {
		if categories[i].Spent.Equal(categories[j].Spent) {
			return categories[i].Category < categories[j].Category
		}
		return categories[i].Spent.GreaterThan(categories[j].Spent)
	})

	response := DashboardResponse{
		Period:     string(period),
		Income:     income,
		Spent:      spent,
		Net:        income.Sub(spent),
		Categories: categories,
	}

	if budget, ok := models.OverallBudget(models.DB, userID, period); ok {
		budgetStatus, err := budget.Status(models.DB)
		if err != nil {
			c.JSON(status(err), httperror.New(err))
			return
		}
		response.Budget = &budgetStatus
	}

	c.JSON(http.StatusOK, response)
}
