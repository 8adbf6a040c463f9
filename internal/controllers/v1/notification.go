package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pocketquest/backend/internal/httperror"
	"github.com/pocketquest/backend/internal/httputil"
	"github.com/pocketquest/backend/internal/models"
	"github.com/shopspring/decimal"
)

// NotificationResponse is the API representation of a threshold notification.
type NotificationResponse struct {
	ID          string          `json:"id" example:"1a8f2e6b-17cb-47a3-9a17-5cd1e0c2ff12"`
	SourceID    string          `json:"sourceId" example:"7e38a193-9ed1-4296-b129-2d9f216ed4b5"`
	SourceLabel string          `json:"sourceLabel" example:"groceries"`
	Threshold   int             `json:"threshold" example:"90"`
	Spent       decimal.Decimal `json:"spent" example:"367.80"`
	Amount      decimal.Decimal `json:"amount" example:"400"`
	Read        bool            `json:"read" example:"false"`
	CreatedAt   time.Time       `json:"createdAt" example:"2026-03-20T14:42:12.32Z"`
}

func newNotificationResponse(notification models.Notification) NotificationResponse {
	return NotificationResponse{
		ID:          notification.ID.String(),
		SourceID:    notification.SourceID.String(),
		SourceLabel: notification.SourceLabel,
		Threshold:   notification.Threshold,
		Spent:       notification.Spent,
		Amount:      notification.Amount,
		Read:        notification.Read,
		CreatedAt:   notification.CreatedAt,
	}
}

// NotificationListResponse wraps a list of notifications.
type NotificationListResponse struct {
	Data []NotificationResponse `json:"data"`
}

// UnreadCountResponse reports the number of unread notifications.
type UnreadCountResponse struct {
	Count int64 `json:"count" example:"3"`
}

// NotificationQueryFilter are the supported query parameters for
// notification lists.
type NotificationQueryFilter struct {
	Unread bool `form:"unread" filterField:"false"` // Only unread notifications
}

// GetNotifications lists the notifications of the current user, newest
// first.
//
//	@Summary		List notifications
//	@Description	Returns the notifications of the logged in user
//	@Tags			Notifications
//	@Produce		json
//	@Success		200	{object}	NotificationListResponse
//	@Failure		401	{object}	httperror.Error
//	@Failure		500	{object}	httperror.Error
//	@Param			unread	query	bool	false	"Only unread notifications"
//	@Router			/v1/notifications [get]
func GetNotifications(c *gin.Context) {
	var filter NotificationQueryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(status(httputil.ErrInvalidBody), httperror.New(httputil.ErrInvalidBody))
		return
	}

	query := models.DB.Where("user_id = ?", currentUserID(c)).Order("created_at DESC")
	if filter.Unread {
		query = query.Where("read = ?", false)
	}

	var notifications []models.Notification
	if err := query.Find(&notifications).Error; err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	data := make([]NotificationResponse, 0, len(notifications))
	for _, notification := range notifications {
		data = append(data, newNotificationResponse(notification))
	}

	c.JSON(http.StatusOK, NotificationListResponse{Data: data})
}

// GetUnreadCount returns the number of unread notifications.
//
//	@Summary		Unread count
//	@Description	Returns the number of unread notifications
//	@Tags			Notifications
//	@Produce		json
//	@Success		200	{object}	UnreadCountResponse
//	@Failure		401	{object}	httperror.Error
//	@Failure		500	{object}	httperror.Error
//	@Router			/v1/notifications/unread-count [get]
func GetUnreadCount(c *gin.Context) {
	var count int64
	err := models.DB.Model(&models.Notification{}).
		Where("user_id = ? AND read = ?", currentUserID(c), false).
		Count(&count).Error
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	c.JSON(http.StatusOK, UnreadCountResponse{Count: count})
}

// ReadNotification marks a notification as read.
//
//	@Summary		Mark notification read
//	@Description	Marks a notification as read
//	@Tags			Notifications
//	@Produce		json
//	@Success		200	{object}	NotificationResponse
//	@Failure		400	{object}	httperror.Error
//	@Failure		401	{object}	httperror.Error
//	@Failure		404	{object}	httperror.Error
//	@Failure		500	{object}	httperror.Error
//	@Param			id	path	string	true	"ID formatted as string"
//	@Router			/v1/notifications/{id} [patch]
func ReadNotification(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	var notification models.Notification
	err = models.DB.Where("user_id = ?", currentUserID(c)).First(&notification, id.UUID).Error
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	notification.Read = true
	err = models.DB.Save(&notification).Error
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	c.JSON(http.StatusOK, newNotificationResponse(notification))
}

// ReadAllNotifications marks all notifications of the current user as read.
//
//	@Summary		Mark all notifications read
//	@Description	Marks all notifications of the logged in user as read
//	@Tags			Notifications
//	@Success		204
//	@Failure		401	{object}	httperror.Error
//	@Failure		500	{object}	httperror.Error
//	@Router			/v1/notifications/read-all [post]
func ReadAllNotifications(c *gin.Context) {
	err := models.DB.Model(&models.Notification{}).
		Where("user_id = ? AND read = ?", currentUserID(c), false).
		Update("read", true).Error
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// DeleteNotification deletes a notification.
//
//	@Summary		Delete notification
//	@Description	Deletes a notification
//	@Tags			Notifications
//	@Success		204
//	@Failure		400	{object}	httperror.Error
//	@Failure		401	{object}	httperror.Error
//	@Failure		404	{object}	httperror.Error
//	@Failure		500	{object}	httperror.Error
//	@Param			id	path	string	true	"ID formatted as string"
//	@Router			/v1/notifications/{id} [delete]
func DeleteNotification(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	var notification models.Notification
	err = models.DB.Where("user_id = ?", currentUserID(c)).First(&notification, id.UUID).Error
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	err = models.DB.Delete(&notification).Error
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// DeleteNotifications deletes all notifications of the current user.
//
//	@Summary		Clear notifications
//	@Description	Deletes all notifications of the logged in user
//	@Tags			Notifications
//	@Success		204
//	@Failure		401	{object}	httperror.Error
//	@Failure		500	{object}	httperror.Error
//	@Router			/v1/notifications [delete]
func DeleteNotifications(c *gin.Context) {
	err := models.DB.Where("user_id = ?", currentUserID(c)).Delete(&models.Notification{}).Error
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
