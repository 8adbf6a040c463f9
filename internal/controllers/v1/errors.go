package v1

import (
	"errors"
	"net/http"

	"github.com/pocketquest/backend/internal/httputil"
	"github.com/pocketquest/backend/internal/models"
	"github.com/pocketquest/backend/internal/types"
)

// errors that are not defined by the models or httputil packages, but only
// relevant for request handling
var (
	errInvalidCredentials   = errors.New("the email or password is incorrect")
	errNotAuthenticated     = errors.New("you need to log in to access this resource")
	errCleanupConfirmation  = errors.New("the confirmation parameter must be set to 'yes-please-delete-everything'")
	errCosmeticNotUnlocked  = errors.New("you have not unlocked this cosmetic yet")
	errCosmeticUnknown      = errors.New("there is no cosmetic matching the ID you specified")
	errRewardAlreadyClaimed = errors.New("this reward has already been claimed")
)

// status determines the appropriate HTTP status code for an error.
func status(err error) int {
	switch {
	case errors.Is(err, models.ErrResourceNotFound):
		return http.StatusNotFound

	case errors.Is(err, errInvalidCredentials),
		errors.Is(err, errNotAuthenticated):
		return http.StatusUnauthorized

	case errors.Is(err, models.ErrEmailNotUnique):
		return http.StatusConflict

	case errors.Is(err, models.ErrAmountNotPositive),
		errors.Is(err, models.ErrCategoryMissing),
		errors.Is(err, models.ErrSourceMissing),
		errors.Is(err, models.ErrObjectiveTitleMissing),
		errors.Is(err, models.ErrObjectiveTargetInvalid),
		errors.Is(err, models.ErrBudgetPeriodInvalid),
		errors.Is(err, models.ErrLimitPeriodInvalid),
		errors.Is(err, types.ErrInvalidPeriod),
		errors.Is(err, types.ErrInvalidFrequency),
		errors.Is(err, httputil.ErrInvalidBody),
		errors.Is(err, httputil.ErrRequestBodyEmpty),
		errors.Is(err, httputil.ErrInvalidUUID),
		errors.Is(err, errCleanupConfirmation),
		errors.Is(err, errCosmeticNotUnlocked),
		errors.Is(err, errCosmeticUnknown),
		errors.Is(err, errRewardAlreadyClaimed):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}
