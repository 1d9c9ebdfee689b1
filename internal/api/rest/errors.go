package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apierrors "github.com/artblock/gallery-reconciler/internal/api/shared/errors"
	"github.com/artblock/gallery-reconciler/internal/domain"
	"github.com/artblock/gallery-reconciler/internal/logger"
)

// respondBadRequest responds with a bad request error
func respondBadRequest(c *gin.Context, message string, details ...string) {
	c.JSON(http.StatusBadRequest, apierrors.NewBadRequestError(message, details...))
}

// respondValidationError responds with a validation error
func respondValidationError(c *gin.Context, message string) {
	c.JSON(http.StatusUnprocessableEntity, apierrors.NewValidationError(message))
}

// respondInternalError responds with an internal server error and logs it.
// Internal detail stays in the logs; clients get a generic message.
func respondInternalError(c *gin.Context, err error, fields ...zap.Field) {
	logger.ErrorCtx(c.Request.Context(), err, fields...)
	c.JSON(http.StatusInternalServerError, apierrors.NewInternalError("Internal server error"))
}

// respondDomainError translates the reconciliation error taxonomy to HTTP.
// Anything outside the taxonomy is an internal error and is logged, never
// surfaced.
func respondDomainError(c *gin.Context, err error) {
	var notActive *domain.GalleryNotActiveError
	var ambiguous *domain.ClaimAmbiguousError

	switch {
	case errors.Is(err, domain.ErrGalleryNotFound), errors.Is(err, domain.ErrCuratorNotFound):
		c.JSON(http.StatusNotFound, apierrors.NewNotFoundError(err.Error()))

	case errors.Is(err, domain.ErrNotAuthorized):
		c.JSON(http.StatusForbidden, apierrors.NewForbiddenError("Not authorized for this gallery"))

	case errors.Is(err, domain.ErrGalleryInvalid):
		c.JSON(http.StatusUnprocessableEntity, &apierrors.APIError{
			Code:    apierrors.ErrCodeGalleryInvalid,
			Message: err.Error(),
		})

	case errors.As(err, &notActive):
		c.JSON(http.StatusConflict, &apierrors.APIError{
			Code:    apierrors.ErrCodeGalleryNotActive,
			Message: notActive.Error(),
		})

	case errors.Is(err, domain.ErrNoRevenueAvailable):
		c.JSON(http.StatusConflict, &apierrors.APIError{
			Code:    apierrors.ErrCodeNoRevenue,
			Message: err.Error(),
		})

	case errors.As(err, &ambiguous):
		// The claim may have landed; the client must check history before
		// retrying.
		logger.WarnCtx(c.Request.Context(), "Claim outcome unknown", zap.Error(err))
		c.JSON(http.StatusGatewayTimeout, &apierrors.APIError{
			Code:    apierrors.ErrCodeClaimAmbiguous,
			Message: "Claim submission interrupted; verify claim history before retrying",
		})

	case errors.Is(err, domain.ErrLedgerUnavailable):
		c.JSON(http.StatusServiceUnavailable,
			apierrors.NewLedgerUnavailableError("Ledger temporarily unavailable, try again later"))

	case errors.Is(err, domain.ErrGalleryAlreadyExists):
		c.JSON(http.StatusConflict, apierrors.NewBadRequestError(err.Error()))

	default:
		respondInternalError(c, err)
	}
}
