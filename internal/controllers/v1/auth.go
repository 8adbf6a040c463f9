package v1

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pocketquest/backend/internal/gamification"
	"github.com/pocketquest/backend/internal/httperror"
	"github.com/pocketquest/backend/internal/httputil"
	"github.com/pocketquest/backend/internal/models"
	"gorm.io/gorm"
)

// engine is set once by RegisterRoutes. All gamification state transitions
// run through it.
var engine *gamification.Engine

const sessionUserKey = "user"

// RegisterRoutes registers all API v1 routes on the passed group.
func RegisterRoutes(r *gin.RouterGroup, e *gamification.Engine) {
	engine = e

	auth := r.Group("/auth")
	{
		auth.OPTIONS("/register", httputil.OptionsPost)
		auth.POST("/register", Register)

		auth.OPTIONS("/login", httputil.OptionsPost)
		auth.POST("/login", Login)

		auth.OPTIONS("/logout", httputil.OptionsPost)
		auth.POST("/logout", Logout)

		auth.OPTIONS("/me", httputil.OptionsGetPatchDelete)
		auth.GET("/me", requireAuth, GetMe)
		auth.PATCH("/me", requireAuth, UpdateMe)
		auth.DELETE("/me", requireAuth, DeleteMe)
	}

	expenses := r.Group("/expenses", requireAuth)
	{
		expenses.OPTIONS("", httputil.OptionsGetPost)
		expenses.GET("", GetExpenses)
		expenses.POST("", CreateExpense)

		expenses.OPTIONS("/:id", httputil.OptionsGetDelete)
		expenses.GET("/:id", GetExpense)
		expenses.DELETE("/:id", DeleteExpense)
	}

	income := r.Group("/income", requireAuth)
	{
		income.OPTIONS("", httputil.OptionsGetPost)
		income.GET("", GetIncomes)
		income.POST("", CreateIncome)

		income.OPTIONS("/:id", httputil.OptionsGetDelete)
		income.GET("/:id", GetIncome)
		income.DELETE("/:id", DeleteIncome)
	}

	budgets := r.Group("/budgets", requireAuth)
	{
		budgets.OPTIONS("", httputil.OptionsGetPost)
		budgets.GET("", GetBudgets)
		budgets.POST("", CreateBudget)

		budgets.OPTIONS("/:id", httputil.OptionsGetPatchDelete)
		budgets.GET("/:id", GetBudget)
		budgets.PATCH("/:id", UpdateBudget)
		budgets.DELETE("/:id", DeleteBudget)
	}

	limits := r.Group("/spending-limits", requireAuth)
	{
		limits.OPTIONS("", httputil.OptionsGetPost)
		limits.GET("", GetSpendingLimits)
		limits.POST("", CreateSpendingLimit)

		limits.OPTIONS("/:id", httputil.OptionsGetPatchDelete)
		limits.GET("/:id", GetSpendingLimit)
		limits.PATCH("/:id", UpdateSpendingLimit)
		limits.DELETE("/:id", DeleteSpendingLimit)
	}

	notifications := r.Group("/notifications", requireAuth)
	{
		notifications.OPTIONS("", httputil.OptionsGetDelete)
		notifications.GET("", GetNotifications)
		notifications.DELETE("", DeleteNotifications)

		notifications.OPTIONS("/unread-count", httputil.OptionsGet)
		notifications.GET("/unread-count", GetUnreadCount)

		notifications.OPTIONS("/read-all", httputil.OptionsPost)
		notifications.POST("/read-all", ReadAllNotifications)

		notifications.OPTIONS("/:id", httputil.OptionsGetPatchDelete)
		notifications.PATCH("/:id", ReadNotification)
		notifications.DELETE("/:id", DeleteNotification)
	}

	objectives := r.Group("/objectives", requireAuth)
	{
		objectives.OPTIONS("", httputil.OptionsGetPost)
		objectives.GET("", GetObjectives)
		objectives.POST("", CreateObjective)

		objectives.OPTIONS("/:id", httputil.OptionsGetDelete)
		objectives.GET("/:id", GetObjective)
		objectives.DELETE("/:id", DeleteObjective)
	}

	progress := r.Group("/progress", requireAuth)
	{
		progress.OPTIONS("", httputil.OptionsGet)
		progress.GET("", GetProgress)

		progress.OPTIONS("/avatar", httputil.OptionsGetPatchDelete)
		progress.PATCH("/avatar", UpdateAvatar)

		progress.OPTIONS("/cosmetics", httputil.OptionsGet)
		progress.GET("/cosmetics", GetCosmetics)
	}

	rewards := r.Group("/rewards", requireAuth)
	{
		rewards.OPTIONS("", httputil.OptionsGet)
		rewards.GET("", GetRewards)

		rewards.OPTIONS("/:id/claim", httputil.OptionsPost)
		rewards.POST("/:id/claim", ClaimReward)
	}

	dashboard := r.Group("/dashboard", requireAuth)
	{
		dashboard.OPTIONS("", httputil.OptionsGet)
		dashboard.GET("", GetDashboard)
	}
}

// requireAuth aborts requests that do not carry a valid session.
func requireAuth(c *gin.Context) {
	session := sessions.Default(c)

	raw, ok := session.Get(sessionUserKey).(string)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, httperror.New(errNotAuthenticated))
		return
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, httperror.New(errNotAuthenticated))
		return
	}

	c.Set(string(contextUserID), id)
	c.Next()
}

type contextKey string

const contextUserID contextKey = "pocketquest-user-id"

// currentUserID returns the user ID that requireAuth stored on the context.
func currentUserID(c *gin.Context) uuid.UUID {
	return c.MustGet(string(contextUserID)).(uuid.UUID)
}

func startSession(c *gin.Context, userID uuid.UUID) error {
	session := sessions.Default(c)
	session.Set(sessionUserKey, userID.String())
	return session.Save()
}

func endSession(c *gin.Context) error {
	session := sessions.Default(c)
	session.Clear()
	session.Options(sessions.Options{MaxAge: -1})
	return session.Save()
}

// RegisterBody is the request body for account creation.
type RegisterBody struct {
	Email    string `json:"email" example:"ash@example.com"`
	Password string `json:"password" example:"correct horse battery staple"`
	Name     string `json:"name" example:"Ash"`
}

// LoginBody is the request body for logging in.
type LoginBody struct {
	Email    string `json:"email" example:"ash@example.com"`
	Password string `json:"password" example:"correct horse battery staple"`
}

// UserEditable are the fields of a user that can be changed after
// registration.
type UserEditable struct {
	Name  string `json:"name" example:"Ash"`
	Theme string `json:"theme" example:"dark"`
}

// UserResponse is the API representation of a user account.
type UserResponse struct {
	ID    string `json:"id" example:"9dbc6cb3-bbfa-40e1-9f2d-8d48d2b7f02c"`
	Email string `json:"email" example:"ash@example.com"`
	Name  string `json:"name" example:"Ash"`
	Theme string `json:"theme" example:"light"`
}

func newUserResponse(user models.User) UserResponse {
	return UserResponse{
		ID:    user.ID.String(),
		Email: user.Email,
		Name:  user.Name,
		Theme: user.Theme,
	}
}

// Register creates a new account and provisions its gamification state.
//
//	@Summary		Register
//	@Description	Creates a new user account and logs it in
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Success		201	{object}	UserResponse
//	@Failure		400	{object}	httperror.Error
//	@Failure		409	{object}	httperror.Error
//	@Failure		500	{object}	httperror.Error
//	@Param			body	body	RegisterBody	true	"Account"
//	@Router			/v1/auth/register [post]
func Register(c *gin.Context) {
	var body RegisterBody
	if err := httputil.BindData(c, &body); err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	user := models.User{
		Email: body.Email,
		Name:  body.Name,
	}

	if err := user.SetPassword(body.Password); err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	err := models.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}

		return engine.WithTx(tx).ProvisionUser(user.ID)
	})
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	if err := startSession(c, user.ID); err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	c.JSON(http.StatusCreated, newUserResponse(user))
}

// Login authenticates an account and starts a session.
//
//	@Summary		Login
//	@Description	Verifies credentials and starts a session
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Success		200	{object}	UserResponse
//	@Failure		400	{object}	httperror.Error
//	@Failure		401	{object}	httperror.Error
//	@Failure		500	{object}	httperror.Error
//	@Param			body	body	LoginBody	true	"Credentials"
//	@Router			/v1/auth/login [post]
func Login(c *gin.Context) {
	var body LoginBody
	if err := httputil.BindData(c, &body); err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	var user models.User
	err := models.DB.Where("email = ?", strings.ToLower(strings.TrimSpace(body.Email))).First(&user).Error
	if err != nil || !user.CheckPassword(body.Password) {
		// Do not leak whether the account exists
		c.JSON(status(errInvalidCredentials), httperror.New(errInvalidCredentials))
		return
	}

	if err := startSession(c, user.ID); err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	c.JSON(http.StatusOK, newUserResponse(user))
}

// Logout ends the current session.
//
//	@Summary		Logout
//	@Description	Ends the current session
//	@Tags			Auth
//	@Success		204
//	@Failure		500	{object}	httperror.Error
//	@Router			/v1/auth/logout [post]
func Logout(c *gin.Context) {
	if err := endSession(c); err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// GetMe returns the account of the current session.
//
//	@Summary		Get account
//	@Description	Returns the logged in user
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	UserResponse
//	@Failure		401	{object}	httperror.Error
//	@Failure		500	{object}	httperror.Error
//	@Router			/v1/auth/me [get]
func GetMe(c *gin.Context) {
	var user models.User
	err := models.DB.First(&user, currentUserID(c)).Error
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	c.JSON(http.StatusOK, newUserResponse(user))
}

// UpdateMe updates name and theme of the current account.
//
//	@Summary		Update account
//	@Description	Updates name and theme of the logged in user
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Success		200	{object}	UserResponse
//	@Failure		400	{object}	httperror.Error
//	@Failure		401	{object}	httperror.Error
//	@Failure		500	{object}	httperror.Error
//	@Param			body	body	UserEditable	true	"Account"
//	@Router			/v1/auth/me [patch]
func UpdateMe(c *gin.Context) {
	var user models.User
	err := models.DB.First(&user, currentUserID(c)).Error
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	updateFields, err := httputil.GetBodyFields(c, UserEditable{})
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	var body UserEditable
	if err := httputil.BindData(c, &body); err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	err = models.DB.Model(&user).Select("", updateFields...).Updates(models.User{
		Name:  body.Name,
		Theme: body.Theme,
	}).Error
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	c.JSON(http.StatusOK, newUserResponse(user))
}

// DeleteMe deletes the account and every resource it owns.
//
// This is irreversible, so the confirm query parameter has to be set.
//
//	@Summary		Delete account
//	@Description	Permanently deletes the account and all its data
//	@Tags			Auth
//	@Success		204
//	@Failure		400	{object}	httperror.Error
//	@Failure		401	{object}	httperror.Error
//	@Failure		500	{object}	httperror.Error
//	@Param			confirm	query	string	false	"Set to 'yes-please-delete-everything' to confirm"
//	@Router			/v1/auth/me [delete]
func DeleteMe(c *gin.Context) {
	if c.Query("confirm") != "yes-please-delete-everything" {
		c.JSON(status(errCleanupConfirmation), httperror.New(errCleanupConfirmation))
		return
	}

	userID := currentUserID(c)

	err := models.DB.Transaction(func(tx *gorm.DB) error {
		owned := []any{
			&models.Expense{},
			&models.Income{},
			&models.Budget{},
			&models.SpendingLimit{},
			&models.Notification{},
			&models.Objective{},
			&models.UserProgress{},
			&models.Badge{},
			&models.Reward{},
			&models.CosmeticUnlock{},
		}

		for _, model := range owned {
			if err := tx.Where("user_id = ?", userID).Delete(model).Error; err != nil {
				return err
			}
		}

		return tx.Delete(&models.User{}, userID).Error
	})
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	if err := endSession(c); err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
