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
	"github.com/shopspring/decimal"
)

// IncomeEditable are the fields settable on creation.
type IncomeEditable struct {
	Amount    decimal.Decimal `json:"amount" example:"2400"`
	Source    string          `json:"source" example:"Salary"`
	Frequency string          `json:"frequency" example:"monthly"`
	Note      string          `json:"note" example:""`
	Date      time.Time       `json:"date" example:"2026-03-01T00:00:00Z"`
}

func (i IncomeEditable) model(userID uuid.UUID) (models.Income, error) {
	frequency := types.FrequencyOnce
	if i.Frequency != "" {
		parsed, err := types.ParseFrequency(i.Frequency)
		if err != nil {
			return models.Income{}, err
		}
		frequency = parsed
	}

	return models.Income{
		UserID:    userID,
		Amount:    i.Amount,
		Source:    i.Source,
		Frequency: frequency,
		Note:      i.Note,
		Date:      i.Date,
	}, nil
}

// IncomeResponse is the API representation of an income record.
type IncomeResponse struct {
	ID        string          `json:"id" example:"b3c9f5a1-4c18-49b4-9d2e-4f2b8b6d0c7a"`
	Amount    decimal.Decimal `json:"amount" example:"2400"`
	Source    string          `json:"source" example:"Salary"`
	Frequency string          `json:"frequency" example:"monthly"`
	Note      string          `json:"note" example:""`
	Date      time.Time       `json:"date" example:"2026-03-01T00:00:00Z"`
	CreatedAt time.Time       `json:"createdAt" example:"2026-03-01T09:12:00Z"`
}

func newIncomeResponse(income models.Income) IncomeResponse {
	return IncomeResponse{
		ID:        income.ID.String(),
		Amount:    income.Amount,
		Source:    income.Source,
		Frequency: string(income.Frequency),
		Note:      income.Note,
		Date:      income.Date,
		CreatedAt: income.CreatedAt,
	}
}

// IncomeListResponse wraps a list of income records with pagination data.
type IncomeListResponse struct {
	Data       []IncomeResponse `json:"data"`
	Pagination Pagination       `json:"pagination"`
}

// IncomeQueryFilter are the supported query parameters for income lists.
type IncomeQueryFilter struct {
	From   time.Time `form:"from" filterField:"false"`
	To     time.Time `form:"to" filterField:"false"`
	Offset int       `form:"offset" filterField:"false"`
	Limit  int       `form:"limit" filterField:"false"`
}

// CreateIncome logs a new income record.
//
//	@Summary		Create income
//	@Description	Logs an income record
//	@Tags			Income
//	@Accept			json
//	@Produce		json
//	@Success		201	{object}	IncomeResponse
//	@Failure		400	{object}	httperror.Error
//	@Failure		401	{object}	httperror.Error
//	@Failure		500	{object}	httperror.Error
//	@Param			body	body	IncomeEditable	true	"Income"
//	@Router			/v1/income [post]
func CreateIncome(c *gin.Context) {
	var editable IncomeEditable
	if err := httputil.BindData(c, &editable); err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	income, err := editable.model(currentUserID(c))
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	err = models.DB.Create(&income).Error
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	c.JSON(http.StatusCreated, newIncomeResponse(income))
}

// GetIncomes lists the income records of the current user, newest first.
//
//	@Summary		List income
//	@Description	Returns the income records of the logged in user
//	@Tags			Income
//	@Produce		json
//	@Success		200	{object}	IncomeListResponse
//	@Failure		400	{object}	httperror.Error
//	@Failure		401	{object}	httperror.Error
//	@Failure		500	{object}	httperror.Error
//	@Param			from	query	string	false	"Only entries at or after this time"
//	@Param			to		query	string	false	"Only entries at or before this time"
//	@Param			offset	query	int		false	"The offset of the first entry returned. Defaults to 0"
//	@Param			limit	query	int		false	"Maximum number of entries. Defaults to 50"
//	@Router			/v1/income [get]
func GetIncomes(c *gin.Context) {
	var filter IncomeQueryFilter
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

	var incomes []models.Income
	if err := query.Find(&incomes).Error; err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	total := int64(len(incomes))
	incomes = paginate(incomes, filter.Offset, filter.Limit)

	data := make([]IncomeResponse, 0, len(incomes))
	for _, income := range incomes {
		data = append(data, newIncomeResponse(income))
	}

	c.JSON(http.StatusOK, IncomeListResponse{
		Data: data,
		Pagination: Pagination{
			Count:  len(data),
			Offset: filter.Offset,
			Limit:  limitOrDefault(filter.Limit),
			Total:  total,
		},
	})
}

// GetIncome returns a single income record.
//
//	@Summary		Get income
//	@Description	Returns a single income record by its ID
//	@Tags			Income
//	@Produce		json
//	@Success		200	{object}	IncomeResponse
//	@Failure		400	{object}	httperror.Error
//	@Failure		401	{object}	httperror.Error
//	@Failure		404	{object}	httperror.Error
//	@Failure		500	{object}	httperror.Error
//	@Param			id	path	string	true	"ID formatted as string"
//	@Router			/v1/income/{id} [get]
func GetIncome(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	var income models.Income
	err = models.DB.Where("user_id = ?", currentUserID(c)).First(&income, id.UUID).Error
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	c.JSON(http.StatusOK, newIncomeResponse(income))
}

// DeleteIncome deletes an income record.
//
//	@Summary		Delete income
//	@Description	Deletes an income record
//	@Tags			Income
//	@Success		204
//	@Failure		400	{object}	httperror.Error
//	@Failure		401	{object}	httperror.Error
//	@Failure		404	{object}	httperror.Error
//	@Failure		500	{object}	httperror.Error
//	@Param			id	path	string	true	"ID formatted as string"
//	@Router			/v1/income/{id} [delete]
func DeleteIncome(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	var income models.Income
	err = models.DB.Where("user_id = ?", currentUserID(c)).First(&income, id.UUID).Error
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	err = models.DB.Delete(&income).Error
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
