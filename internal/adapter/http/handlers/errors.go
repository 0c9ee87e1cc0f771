package handlers

import (
	"errors"
	"log"
	"net/http"

	request "startlabx/internal/adapter/http/dto/request"
	"startlabx/internal/domain/calculator"
	"startlabx/internal/domain/entities"
	"startlabx/internal/usecase"
	"startlabx/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request payload", http.StatusBadRequest)
	errUnauthorized   = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Authentication required", http.StatusUnauthorized)
)

// validationErrors are reported back with their own message.
var validationErrors = []error{
	usecase.ErrInvalidStartupID,
	usecase.ErrInvalidStartupName,
	usecase.ErrInvalidProfessionalID,
	usecase.ErrInvalidOfferID,
	usecase.ErrInvalidEntryID,
	usecase.ErrInvalidNotificationID,
	usecase.ErrInvalidEquityPercentage,
	usecase.ErrInvalidVestingPeriod,
	usecase.ErrInvalidCliffPeriod,
	usecase.ErrInvalidSalary,
	usecase.ErrInvalidStakeholder,
	usecase.ErrInvalidVestingWindow,
	usecase.ErrInvalidCliffMonths,
	calculator.ErrInvalidScheduleParameters,
	calculator.ErrInvalidInput,
	request.ErrInvalidDate,
}

func mapError(err error) *pkg.AppError {
	for _, target := range validationErrors {
		if errors.Is(err, target) {
			return pkg.NewDomainError("INVALID_REQUEST", target.Error(), err, http.StatusBadRequest)
		}
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidStatus):
		return pkg.NewDomainError("INVALID_STATUS", usecase.ErrInvalidStatus.Error(), err, http.StatusBadRequest)
	case errors.Is(err, calculator.ErrInvalidValuation):
		return pkg.NewDomainError("INVALID_VALUATION", "Valuation must be positive", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnauthenticated):
		return errUnauthorized
	case errors.Is(err, usecase.ErrForbidden):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "You are not allowed to perform this operation", http.StatusForbidden)
	case errors.Is(err, usecase.ErrStartupNotFound), errors.Is(err, entities.ErrStartupGone):
		return pkg.NewDomainErrorSimple("STARTUP_NOT_FOUND", "Startup not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOfferNotFound):
		return pkg.NewDomainErrorSimple("OFFER_NOT_FOUND", "Equity offer not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEntryNotFound):
		return pkg.NewDomainErrorSimple("ENTRY_NOT_FOUND", "Cap table entry not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNotificationNotFound):
		return pkg.NewDomainErrorSimple("NOTIFICATION_NOT_FOUND", "Notification not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrAllocationExceeded):
		return pkg.NewDomainErrorSimple("ALLOCATION_EXCEEDED", "Total equity allocation would exceed 100%", http.StatusConflict)
	case errors.Is(err, entities.ErrInvalidStateTransition):
		return pkg.NewDomainErrorSimple("INVALID_STATE_TRANSITION", "Offer is no longer pending", http.StatusConflict)
	case errors.Is(err, entities.ErrConcurrentModification):
		return pkg.NewDomainErrorSimple("CONCURRENT_MODIFICATION", "The cap table changed concurrently, retry the operation", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func writeError(c *gin.Context, err error) {
	appErr := mapError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		log.Printf("[http][handler] internal error path=%s err=%v", c.FullPath(), err)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func writeInvalidPayload(c *gin.Context) {
	c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
}
