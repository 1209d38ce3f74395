package utils

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// BindErrorDescription turns a gin binding failure into a caller-friendly
// message, surfacing the first failed field when the error came from the
// validator.
func BindErrorDescription(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return fmt.Sprintf("field '%s' failed on the '%s' rule", fe.Field(), fe.Tag())
	}
	return err.Error()
}

// HandleBindError sends a standardized envelope for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	JSONError(c, http.StatusBadRequest, "Bad Request", "invalid request payload: "+BindErrorDescription(err))
	Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	Info(handlerName+": "+message, ctx)
}
