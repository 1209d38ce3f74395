package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"shareit/utils"
)

// RequestIDMiddleware tags every request with an id so log lines from one
// request can be correlated.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-Id")
		if requestID == "" {
			requestID = utils.GenerateRequestID()
		}
		c.Set("requestID", requestID)
		c.Writer.Header().Set("X-Request-Id", requestID)
		c.Next()
	}
}

// RequestLoggerMiddleware logs method, path, status and latency for every
// request.
func RequestLoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		utils.Info("request completed", map[string]any{
			"requestID": c.GetString("requestID"),
			"method":    c.Request.Method,
			"path":      c.Request.URL.Path,
			"status":    c.Writer.Status(),
			"latency":   time.Since(start).String(),
		})
	}
}

// RequireUserID extracts the caller identity from the X-Sharer-User-Id
// header. Requests without a parsable header are rejected before they reach
// a handler.
func RequireUserID() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(utils.UserIDHeader)
		if raw == "" {
			utils.JSONError(c, http.StatusBadRequest, "Missing Header", "header '"+utils.UserIDHeader+"' is required")
			c.Abort()
			return
		}

		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Bad Request", "header '"+utils.UserIDHeader+"' must be an integer")
			c.Abort()
			return
		}

		utils.SetUserID(c, userID)
		c.Next()
	}
}
