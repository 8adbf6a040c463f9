package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pocketquest/backend/internal/httperror"
	"github.com/pocketquest/backend/internal/httputil"
	"github.com/pocketquest/backend/internal/models"
	"github.com/pocketquest/backend/internal/types"
	"github.com/shopspring/decimal"
)

// BudgetEditable are the fields of a budget settable by requests.
type BudgetEditable struct {
	Category   string          `json:"category" example:"groceries"`
	Amount     decimal.Decimal `json:"amount" example:"400"`
	Period     string          `json:"period" example:"monthly"`
	Thresholds []int           `json:"thresholds" example:"80,90,100"`
}

func (b BudgetEditable) model(userID uuid.UUID) (models.Budget, error) {
	period := types.PeriodMonthly
	if b.Period != "" {
		parsed, err := types.ParsePeriod(b.Period)
		if err != nil {
			return models.Budget{}, err
		}
		period = parsed
	}

	return models.Budget{
		UserID:     userID,
		Category:   b.Category,
		Amount:     b.Amount,
		Period:     period,
		Thresholds: models.ThresholdList(b.Thresholds),
	}, nil
}

// BudgetResponse is the API representation of a budget, including its current
// spending status.
type BudgetResponse struct {
	ID         string          `json:"id" example:"7e38a193-9ed1-4296-b129-2d9f216ed4b5"`
	Category   string          `json:"category" example:"groceries"`
	Amount     decimal.Decimal `json:"amount" example:"400"`
	Period     string          `json:"period" example:"monthly"`
	Thresholds []int           `json:"thresholds" example:"80,90,100"`
	Status     models.Status   `json:"status"`
}

func newBudgetResponse(budget models.Budget, status models.Status) BudgetResponse {
	return BudgetResponse{
		ID:         budget.ID.String(),
		Category:   budget.Category,
		Amount:     budget.Amount,
		Period:     string(budget.Period),
		Thresholds: budget.Thresholds,
		Status:     status,
	}
}

// BudgetListResponse wraps a list of budgets.
type BudgetListResponse struct {
	Data []BudgetResponse `json:"data"`
}

// CreateBudget creates a budget for a category or the whole ledger.
//
//	@Summary		Create budget
//	@Description	Creates a budget. Use the category "overall" for the whole ledger
//	@Tags			Budgets
//	@Accept			json
//	@Produce		json
//	@Success		201	{object}	BudgetResponse
//	@Failure		400	{object}	httperror.Error
//	@Failure		401	{object}	httperror.Error
//	@Failure		500	{object}	httperror.Error
//	@Param			body	body	BudgetEditable	true	"Budget"
//	@Router			/v1/budgets [post]
func CreateBudget(c *gin.Context) {
	var editable BudgetEditable
	if err := httputil.BindData(c, &editable); err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	budget, err := editable.model(currentUserID(c))
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	err = models.DB.Create(&budget).Error
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	budgetStatus, err := budget.Status(models.DB)
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	c.JSON(http.StatusCreated, newBudgetResponse(budget, budgetStatus))
}

// GetBudgets lists the budgets of the current user with their spending
// status.
//
//	@Summary		List budgets
//	@Description	Returns the budgets of the logged in user with spending status
//	@Tags			Budgets
//	@Produce		json
//	@Success		200	{object}	BudgetListResponse
//	@Failure		401	{object}	httperror.Error
//	@Failure		500	{object}	httperror.Error
//	@Router			/v1/budgets [get]
func GetBudgets(c *gin.Context) {
	var budgets []models.Budget
	err := models.DB.Where("user_id = ?", currentUserID(c)).Order("created_at ASC").Find(&budgets).Error
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	data := make([]BudgetResponse, 0, len(budgets))
	for _, budget := range budgets {
		budgetStatus, err := budget.Status(models.DB)
		if err != nil {
			c.JSON(status(err), httperror.New(err))
			return
		}

		data = append(data, newBudgetResponse(budget, budgetStatus))
	}

	c.JSON(http.StatusOK, BudgetListResponse{Data: data})
}

// getBudget loads a budget of the current user by the ID URI parameter.
func getBudget(c *gin.Context) (models.Budget, error) {
	id, err := parseID(c)
	if err != nil {
		return models.Budget{}, err
	}

	var budget models.Budget
	err = models.DB.Where("user_id = ?", currentUserID(c)).First(&budget, id.UUID).Error
	return budget, err
}

// GetBudget returns a single budget with its spending status.
//
//	@Summary		Get budget
//	@Description	Returns a single budget by its ID
//	@Tags			Budgets
//	@Produce		json
//	@Success		200	{object}	BudgetResponse
//	@Failure		400	{object}	httperror.Error
//	@Failure		401	{object}	httperror.Error
//	@Failure		404	{object}	httperror.Error
//	@Failure		500	{object}	httperror.Error
//	@Param			id	path	string	true	"ID formatted as string"
//	@Router			/v1/budgets/{id} [get]
func GetBudget(c *gin.Context) {
	budget, err := getBudget(c)
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	budgetStatus, err := budget.Status(models.DB)
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	c.JSON(http.StatusOK, newBudgetResponse(budget, budgetStatus))
}

// UpdateBudget updates a budget. Only fields that are set in the request body
// are changed.
//
//	@Summary		Update budget
//	@Description	Updates an existing budget. Only values to be updated need to be specified
//	@Tags			Budgets
//	@Accept			json
//	@Produce		json
//	@Success		200	{object}	BudgetResponse
//	@Failure		400	{object}	httperror.Error
//	@Failure		401	{object}	httperror.Error
//	@Failure		404	{object}	httperror.Error
//	@Failure		500	{object}	httperror.Error
//	@Param			id		path	string			true	"ID formatted as string"
//	@Param			body	body	BudgetEditable	true	"Budget"
//	@Router			/v1/budgets/{id} [patch]
func UpdateBudget(c *gin.Context) {
	budget, err := getBudget(c)
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	updateFields, err := httputil.GetBodyFields(c, BudgetEditable{})
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	var editable BudgetEditable
	if err := httputil.BindData(c, &editable); err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	update, err := editable.model(budget.UserID)
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	err = models.DB.Model(&budget).Select("", updateFields...).Updates(update).Error
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	budgetStatus, err := budget.Status(models.DB)
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	c.JSON(http.StatusOK, newBudgetResponse(budget, budgetStatus))
}

// DeleteBudget deletes a budget. Notifications it already produced are kept.
//
//	@Summary		Delete budget
//	@Description	Deletes a budget
//	@Tags			Budgets
//	@Success		204
//	@Failure		400	{object}	httperror.Error
//	@Failure		401	{object}	httperror.Error
//	@Failure		404	{object}	httperror.Error
//	@Failure		500	{object}	httperror.Error
//	@Param			id	path	string	true	"ID formatted as string"
//	@Router			/v1/budgets/{id} [delete]
func DeleteBudget(c *gin.Context) {
	budget, err := getBudget(c)
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	err = models.DB.Delete(&budget).Error
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
