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

// SpendingLimitEditable are the fields of a spending limit settable by
// requests. Enabled is a pointer so that PATCH requests can distinguish
// "disable" from "not set".
type SpendingLimitEditable struct {
	Category   string          `json:"category" example:"dining"`
	Amount     decimal.Decimal `json:"amount" example:"120"`
	Period     string          `json:"period" example:"weekly"`
	Thresholds []int           `json:"thresholds" example:"80,90,100"`
	Enabled    *bool           `json:"enabled" example:"true"`
}

func (l SpendingLimitEditable) model(userID uuid.UUID) (models.SpendingLimit, error) {
	period := types.PeriodMonthly
	if l.Period != "" {
		parsed, err := types.ParsePeriod(l.Period)
		if err != nil {
			return models.SpendingLimit{}, err
		}
		period = parsed
	}

	enabled := true
	if l.Enabled != nil {
		enabled = *l.Enabled
	}

	return models.SpendingLimit{
		UserID:     userID,
		Category:   l.Category,
		Amount:     l.Amount,
		Period:     period,
		Thresholds: models.ThresholdList(l.Thresholds),
		Enabled:    enabled,
	}, nil
}

// SpendingLimitResponse is the API representation of a spending limit,
// including its current spending status.
type SpendingLimitResponse struct {
	ID         string          `json:"id" example:"c51b9de6-f6f9-4f3e-9a2e-2e5f5a3b34a9"`
	Category   string          `json:"category" example:"dining"`
	Amount     decimal.Decimal `json:"amount" example:"120"`
	Period     string          `json:"period" example:"weekly"`
	Thresholds []int           `json:"thresholds" example:"80,90,100"`
	Enabled    bool            `json:"enabled" example:"true"`
	Status     models.Status   `json:"status"`
}

func newSpendingLimitResponse(limit models.SpendingLimit, status models.Status) SpendingLimitResponse {
	return SpendingLimitResponse{
		ID:         limit.ID.String(),
		Category:   limit.Category,
		Amount:     limit.Amount,
		Period:     string(limit.Period),
		Thresholds: limit.Thresholds,
		Enabled:    limit.Enabled,
		Status:     status,
	}
}

// SpendingLimitListResponse wraps a list of spending limits.
type SpendingLimitListResponse struct {
	Data []SpendingLimitResponse `json:"data"`
}

// CreateSpendingLimit creates a spending limit.
//
//	@Summary		Create spending limit
//	@Description	Creates a spending limit. Use the category "overall" for the whole ledger
//	@Tags			SpendingLimits
//	@Accept			json
//	@Produce		json
//	@Success		201	{object}	SpendingLimitResponse
//	@Failure		400	{object}	httperror.Error
//	@Failure		401	{object}	httperror.Error
//	@Failure		500	{object}	httperror.Error
//	@Param			body	body	SpendingLimitEditable	true	"SpendingLimit"
//	@Router			/v1/spending-limits [post]
func CreateSpendingLimit(c *gin.Context) {
	var editable SpendingLimitEditable
	if err := httputil.BindData(c, &editable); err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	limit, err := editable.model(currentUserID(c))
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	err = models.DB.Create(&limit).Error
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	limitStatus, err := limit.Status(models.DB)
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	c.JSON(http.StatusCreated, newSpendingLimitResponse(limit, limitStatus))
}

// GetSpendingLimits lists the spending limits of the current user with their
// spending status.
//
//	@Summary		List spending limits
//	@Description	Returns the spending limits of the logged in user with spending status
//	@Tags			SpendingLimits
//	@Produce		json
//	@Success		200	{object}	SpendingLimitListResponse
//	@Failure		401	{object}	httperror.Error
//	@Failure		500	{object}	httperror.Error
//	@Router			/v1/spending-limits [get]
func GetSpendingLimits(c *gin.Context) {
	var limits []models.SpendingLimit
	err := models.DB.Where("user_id = ?", currentUserID(c)).Order("created_at ASC").Find(&limits).Error
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	data := make([]SpendingLimitResponse, 0, len(limits))
	for _, limit := range limits {
		limitStatus, err := limit.Status(models.DB)
		if err != nil {
			c.JSON(status(err), httperror.New(err))
			return
		}

		data = append(data, newSpendingLimitResponse(limit, limitStatus))
	}

	c.JSON(http.StatusOK, SpendingLimitListResponse{Data: data})
}

func getSpendingLimit(c *gin.Context) (models.SpendingLimit, error) {
	id, err := parseID(c)
	if err != nil {
		return models.SpendingLimit{}, err
	}

	var limit models.SpendingLimit
	err = models.DB.Where("user_id = ?", currentUserID(c)).First(&limit, id.UUID).Error
	return limit, err
}

// GetSpendingLimit returns a single spending limit with its spending status.
//
//	@Summary		Get spending limit
//	@Description	Returns a single spending limit by its ID
//	@Tags			SpendingLimits
//	@Produce		json
//	@Success		200	{object}	SpendingLimitResponse
//	@Failure		400	{object}	httperror.Error
//	@Failure		401	{object}	httperror.Error
//	@Failure		404	{object}	httperror.Error
//	@Failure		500	{object}	httperror.Error
//	@Param			id	path	string	true	"ID formatted as string"
//	@Router			/v1/spending-limits/{id} [get]
func GetSpendingLimit(c *gin.Context) {
	limit, err := getSpendingLimit(c)
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	limitStatus, err := limit.Status(models.DB)
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	c.JSON(http.StatusOK, newSpendingLimitResponse(limit, limitStatus))
}

// UpdateSpendingLimit updates a spending limit. Only fields that are set in
// the request body are changed, which also covers toggling the limit on and
// off.
//
//	@Summary		Update spending limit
//	@Description	Updates an existing spending limit. Only values to be updated need to be specified
//	@Tags			SpendingLimits
//	@Accept			json
//	@Produce		json
//	@Success		200	{object}	SpendingLimitResponse
//	@Failure		400	{object}	httperror.Error
//	@Failure		401	{object}	httperror.Error
//	@Failure		404	{object}	httperror.Error
//	@Failure		500	{object}	httperror.Error
//	@Param			id		path	string					true	"ID formatted as string"
//	@Param			body	body	SpendingLimitEditable	true	"SpendingLimit"
//	@Router			/v1/spending-limits/{id} [patch]
func UpdateSpendingLimit(c *gin.Context) {
	limit, err := getSpendingLimit(c)
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	updateFields, err := httputil.GetBodyFields(c, SpendingLimitEditable{})
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	var editable SpendingLimitEditable
	if err := httputil.BindData(c, &editable); err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	update, err := editable.model(limit.UserID)
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	err = models.DB.Model(&limit).Select("", updateFields...).Updates(update).Error
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	limitStatus, err := limit.Status(models.DB)
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	c.JSON(http.StatusOK, newSpendingLimitResponse(limit, limitStatus))
}

// DeleteSpendingLimit deletes a spending limit. Notifications it already
// produced are kept.
//
//	@Summary		Delete spending limit
//	@Description	Deletes a spending limit
//	@Tags			SpendingLimits
//	@Success		204
//	@Failure		400	{object}	httperror.Error
//	@Failure		401	{object}	httperror.Error
//	@Failure		404	{object}	httperror.Error
//	@Failure		500	{object}	httperror.Error
//	@Param			id	path	string	true	"ID formatted as string"
//	@Router			/v1/spending-limits/{id} [delete]
func DeleteSpendingLimit(c *gin.Context) {
	limit, err := getSpendingLimit(c)
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	err = models.DB.Delete(&limit).Error
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
