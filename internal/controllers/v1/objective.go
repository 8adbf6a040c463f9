package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pocketquest/backend/internal/httperror"
	"github.com/pocketquest/backend/internal/httputil"
	"github.com/pocketquest/backend/internal/models"
	"github.com/pocketquest/backend/internal/types"
)

// ObjectiveEditable are the fields of an objective settable on creation.
type ObjectiveEditable struct {
	Type        string `json:"type" example:"daily"`
	Title       string `json:"title" example:"Log 3 expenses"`
	Description string `json:"description" example:"Log 3 expenses today"`
	Target      int    `json:"target" example:"3"`
	Points      int    `json:"points" example:"20"`
}

// ObjectiveResponse is the API representation of an objective.
type ObjectiveResponse struct {
	ID          string `json:"id" example:"e37b1f1d-11b0-4d2a-9b3e-6a19cc2c8a1f"`
	Type        string `json:"type" example:"daily"`
	Title       string `json:"title" example:"Log 3 expenses"`
	Description string `json:"description" example:"Log 3 expenses today"`
	Target      int    `json:"target" example:"3"`
	Current     int    `json:"current" example:"1"`
	Completed   bool   `json:"completed" example:"false"`
	Points      int    `json:"points" example:"20"`
}

func newObjectiveResponse(objective models.Objective) ObjectiveResponse {
	return ObjectiveResponse{
		ID:          objective.ID.String(),
		Type:        string(objective.Type),
		Title:       objective.Title,
		Description: objective.Description,
		Target:      objective.Target,
		Current:     objective.Current,
		Completed:   objective.Completed,
		Points:      objective.Points,
	}
}

// ObjectiveListResponse wraps a list of objectives.
type ObjectiveListResponse struct {
	Data []ObjectiveResponse `json:"data"`
}

// CreateObjective creates a custom objective.
//
//	@Summary		Create objective
//	@Description	Creates an objective that awards points on completion
//	@Tags			Objectives
//	@Accept			json
//	@Produce		json
//	@Success		201	{object}	ObjectiveResponse
//	@Failure		400	{object}	httperror.Error
//	@Failure		401	{object}	httperror.Error
//	@Failure		500	{object}	httperror.Error
//	@Param			body	body	ObjectiveEditable	true	"Objective"
//	@Router			/v1/objectives [post]
func CreateObjective(c *gin.Context) {
	var editable ObjectiveEditable
	if err := httputil.BindData(c, &editable); err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	objectiveType, err := types.ParsePeriod(editable.Type)
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	objective := models.Objective{
		UserID:      currentUserID(c),
		Type:        objectiveType,
		Title:       editable.Title,
		Description: editable.Description,
		Target:      editable.Target,
		Points:      editable.Points,
	}

	err = models.DB.Create(&objective).Error
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	c.JSON(http.StatusCreated, newObjectiveResponse(objective))
}

// GetObjectives lists the objectives of the current user. Progress counters
// are re-evaluated on read so the response is never stale.
//
//	@Summary		List objectives
//	@Description	Returns the objectives of the logged in user with current progress
//	@Tags			Objectives
//	@Produce		json
//	@Success		200	{object}	ObjectiveListResponse
//	@Failure		401	{object}	httperror.Error
//	@Failure		500	{object}	httperror.Error
//	@Router			/v1/objectives [get]
func GetObjectives(c *gin.Context) {
	userID := currentUserID(c)

	if err := engine.CheckObjectives(userID); err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	var objectives []models.Objective
	err := models.DB.Where("user_id = ?", userID).Order("created_at ASC").Find(&objectives).Error
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	data := make([]ObjectiveResponse, 0, len(objectives))
	for _, objective := range objectives {
		data = append(data, newObjectiveResponse(objective))
	}

	c.JSON(http.StatusOK, ObjectiveListResponse{Data: data})
}

// GetObjective returns a single objective.
//
//	@Summary		Get objective
//	@Description	Returns a single objective by its ID
//	@Tags			Objectives
//	@Produce		json
//	@Success		200	{object}	ObjectiveResponse
//	@Failure		400	{object}	httperror.Error
//	@Failure		401	{object}	httperror.Error
//	@Failure		404	{object}	httperror.Error
//	@Failure		500	{object}	httperror.Error
//	@Param			id	path	string	true	"ID formatted as string"
//	@Router			/v1/objectives/{id} [get]
func GetObjective(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	var objective models.Objective
	err = models.DB.Where("user_id = ?", currentUserID(c)).First(&objective, id.UUID).Error
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	c.JSON(http.StatusOK, newObjectiveResponse(objective))
}

// DeleteObjective deletes an objective. Points already awarded for its
// completion are kept.
//
//	@Summary		Delete objective
//	@Description	Deletes an objective
//	@Tags			Objectives
//	@Success		204
//	@Failure		400	{object}	httperror.Error
//	@Failure		401	{object}	httperror.Error
//	@Failure		404	{object}	httperror.Error
//	@Failure		500	{object}	httperror.Error
//	@Param			id	path	string	true	"ID formatted as string"
//	@Router			/v1/objectives/{id} [delete]
func DeleteObjective(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	var objective models.Objective
	err = models.DB.Where("user_id = ?", currentUserID(c)).First(&objective, id.UUID).Error
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	err = models.DB.Delete(&objective).Error
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
