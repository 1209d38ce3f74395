package utils

import (
	"errors"
	"net/http"

	"shareit/internal/shareiterrors"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the canonical error envelope returned by both tiers.
type ErrorResponse struct {
	Error       string `json:"error"`
	Description string `json:"description"`
}

// JSONError sends the error envelope with the given status.
func JSONError(c *gin.Context, status int, kind, description string) {
	c.JSON(status, ErrorResponse{Error: kind, Description: description})
}

// MapErrorToHTTP translates a domain error into an HTTP status and envelope
// kind. Unclassified errors map to a generic 500; their detail is logged, not
// leaked.
func MapErrorToHTTP(err error) (int, string, string) {
	switch {
	case errors.Is(err, shareiterrors.ErrUserNotFound),
		errors.Is(err, shareiterrors.ErrItemNotFound),
		errors.Is(err, shareiterrors.ErrBookingNotFound),
		errors.Is(err, shareiterrors.ErrRequestNotFound):
		return http.StatusNotFound, "Not Found", err.Error()
	case errors.Is(err, shareiterrors.ErrForbidden):
		return http.StatusForbidden, "Forbidden", err.Error()
	case errors.Is(err, shareiterrors.ErrEmailTaken),
		errors.Is(err, shareiterrors.ErrAlreadyProcessed):
		return http.StatusConflict, "Conflict", err.Error()
	case errors.Is(err, shareiterrors.ErrValidation),
		errors.Is(err, shareiterrors.ErrItemUnavailable),
		errors.Is(err, shareiterrors.ErrNoCompletedRental):
		return http.StatusBadRequest, "Bad Request", err.Error()
	default:
		return http.StatusInternalServerError, "Internal Server Error", "internal server error"
	}
}

// JSONDomainError maps err and sends the envelope in one step.
func JSONDomainError(c *gin.Context, err error) {
	status, kind, description := MapErrorToHTTP(err)
	JSONError(c, status, kind, description)
}
