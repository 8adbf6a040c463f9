package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pocketquest/backend/internal/httperror"
	"github.com/pocketquest/backend/internal/httputil"
	"github.com/pocketquest/backend/internal/models"
	"github.com/pocketquest/backend/internal/types"
	"github.com/ryanuber/go-glob"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ExpenseEditable are the fields settable on creation. Ledger entries are
// immutable afterwards.
type ExpenseEditable struct {
	Amount    decimal.Decimal `json:"amount" example:"14.50"`
	Category  string          `json:"category" example:"groceries"`
	Frequency string          `json:"frequency" example:"one-time"`
	Recurring bool            `json:"recurring" example:"false"`
	Note      string          `json:"note" example:"Weekly shop"`
	Date      time.Time       `json:"date" example:"2026-03-20T14:42:00Z"`
}

func (e ExpenseEditable) model(userID uuid.UUID) (models.Expense, error) {
	frequency := types.FrequencyOnce
	if e.Frequency != "" {
		parsed, err := types.ParseFrequency(e.Frequency)
		if err != nil {
			return models.Expense{}, err
		}
		frequency = parsed
	}

	return models.Expense{
		UserID:    userID,
		Amount:    e.Amount,
		Category:  e.Category,
		Frequency: frequency,
		Recurring: e.Recurring,
		Note:      e.Note,
		Date:      e.Date,
	}, nil
}

// ExpenseQueryFilter are the supported query parameters for expense lists.
type ExpenseQueryFilter struct {
	Category string    `form:"category" filterField:"false"` // Category pattern, supports * wildcards
	From     time.Time `form:"from" filterField:"false"`     // Only entries at or after this time
	To       time.Time `form:"to" filterField:"false"`       // Only entries at or before this time
	Offset   int       `form:"offset" filterField:"false"`   // The offset of the first entry returned
	Limit    int       `form:"limit" filterField:"false"`    // Maximum number of entries, defaults to 50
}

// ExpenseResponse is the API representation of an expense.
type ExpenseResponse struct {
	ID        string          `json:"id" example:"053a2ca4-2d65-4264-9a27-1b8c2b6e9e3b"`
	Amount    decimal.Decimal `json:"amount" example:"14.50"`
	Category  string          `json:"category" example:"groceries"`
	Frequency string          `json:"frequency" example:"one-time"`
	Recurring bool            `json:"recurring" example:"false"`
	Note      string          `json:"note" example:"Weekly shop"`
	Date      time.Time       `json:"date" example:"2026-03-20T14:42:00Z"`
	CreatedAt time.Time       `json:"createdAt" example:"2026-03-20T14:42:12.32Z"`
}

func newExpenseResponse(expense models.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:        expense.ID.String(),
		Amount:    expense.Amount,
		Category:  expense.Category,
		Frequency: string(expense.Frequency),
		Recurring: expense.Recurring,
		Note:      expense.Note,
		Date:      expense.Date,
		CreatedAt: expense.CreatedAt,
	}
}

// ExpenseListResponse wraps a list of expenses with pagination data.
type ExpenseListResponse struct {
	Data       []ExpenseResponse `json:"data"`
	Pagination Pagination        `json:"pagination"`
}

// CreateExpense logs a new expense and runs the full follow-up pipeline in a
// single transaction: threshold notifications for budgets and limits, then
// points, streak, objectives and milestones.
//
//	@Summary		Create expense
//	@Description	Logs an expense and updates notifications and progress
//	@Tags			Expenses
//	@Accept			json
//	@Produce		json
//	@Success		201	{object}	ExpenseResponse
//	@Failure		400	{object}	httperror.Error
//	@Failure		401	{object}	httperror.Error
//	@Failure		500	{object}	httperror.Error
//	@Param			body	body	ExpenseEditable	true	"Expense"
//	@Router			/v1/expenses [post]
func CreateExpense(c *gin.Context) {
	var editable ExpenseEditable
	if err := httputil.BindData(c, &editable); err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	userID := currentUserID(c)

	expense, err := editable.model(userID)
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	err = models.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&expense).Error; err != nil {
			return err
		}

		en := engine.WithTx(tx)

		// Notifications first so that objective completion points do
		// not change what the user sees as the trigger of the alert.
		if err := en.CheckBudgetThresholds(userID, expense.Category); err != nil {
			return err
		}

		if err := en.CheckLimitThresholds(userID, expense.Category); err != nil {
			return err
		}

		return en.OnExpenseLogged(userID)
	})
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	c.JSON(http.StatusCreated, newExpenseResponse(expense))
}

// GetExpenses lists the expenses of the current user, newest first.
//
//	@Summary		List expenses
//	@Description	Returns the expenses of the logged in user
//	@Tags			Expenses
//	@Produce		json
//	@Success		200	{object}	ExpenseListResponse
//	@Failure		400	{object}	httperror.Error
//	@Failure		401	{object}	httperror.Error
//	@Failure		500	{object}	httperror.Error
//	@Param			category	query	string	false	"Category pattern, supports * wildcards"
//	@Param			from		query	string	false	"Only entries at or after this time"
//	@Param			to			query	string	false	"Only entries at or before this time"
//	@Param			offset		query	int		false	"The offset of the first entry returned. Defaults to 0"
//	@Param			limit		query	int		false	"Maximum number of entries. Defaults to 50"
//	@Router			/v1/expenses [get]
func GetExpenses(c *gin.Context) {
	var filter ExpenseQueryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(status(httputil.ErrInvalidBody), httperror.New(httputil.ErrInvalidBody))
		return
	}

	query := models.DB.Where("user_id = ?", currentUserID(c)).Order("date DESC, created_at DESC")

	if !filter.From.IsZero() {
		query = query.Where("date >= ?", filter.From)
	}

	if !filter.To.IsZero() {
		query = query.Where("date <= ?", filter.To)
	}

	var expenses []models.Expense
	if err := query.Find(&expenses).Error; err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	// The category filter is a glob pattern, this cannot be pushed into
	// the query.
	if filter.Category != "" {
		matched := make([]models.Expense, 0, len(expenses))
		for _, expense := range expenses {
			if glob.Glob(filter.Category, expense.Category) {
				matched = append(matched, expense)
			}
		}
		expenses = matched
	}

	total := int64(len(expenses))
	expenses = paginate(expenses, filter.Offset, filter.Limit)

	data := make([]ExpenseResponse, 0, len(expenses))
	for _, expense := range expenses {
		data = append(data, newExpenseResponse(expense))
	}

	c.JSON(http.StatusOK, ExpenseListResponse{
		Data: data,
		Pagination: Pagination{
			Count:  len(data),
			Offset: filter.Offset,
			Limit:  limitOrDefault(filter.Limit),
			Total:  total,
		},
	})
}

// GetExpense returns a single expense.
//
//	@Summary		Get expense
//	@Description	Returns a single expense by its ID
//	@Tags			Expenses
//	@Produce		json
//	@Success		200	{object}	ExpenseResponse
//	@Failure		400	{object}	httperror.Error
//	@Failure		401	{object}	httperror.Error
//	@Failure		404	{object}	httperror.Error
//	@Failure		500	{object}	httperror.Error
//	@Param			id	path	string	true	"ID formatted as string"
//	@Router			/v1/expenses/{id} [get]
func GetExpense(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	var expense models.Expense
	err = models.DB.Where("user_id = ?", currentUserID(c)).First(&expense, id.UUID).Error
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	c.JSON(http.StatusOK, newExpenseResponse(expense))
}

// DeleteExpense deletes an expense. Points, streaks and badges already earned
// from it are kept.
//
//	@Summary		Delete expense
//	@Description	Deletes an expense
//	@Tags			Expenses
//	@Success		204
//	@Failure		400	{object}	httperror.Error
//	@Failure		401	{object}	httperror.Error
//	@Failure		404	{object}	httperror.Error
//	@Failure		500	{object}	httperror.Error
//	@Param			id	path	string	true	"ID formatted as string"
//	@Router			/v1/expenses/{id} [delete]
func DeleteExpense(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	var expense models.Expense
	err = models.DB.Where("user_id = ?", currentUserID(c)).First(&expense, id.UUID).Error
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	err = models.DB.Delete(&expense).Error
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
