package handler

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"shareit/internal/gateway/client"
	"shareit/utils"
)

// relay writes the upstream reply through unchanged. Transport failures are
// the only errors the gateway translates itself.
func relay(c *gin.Context, resp client.Response, err error) {
	if err != nil {
		var netErr net.Error
		if (errors.As(err, &netErr) && netErr.Timeout()) || errors.Is(err, context.DeadlineExceeded) {
			utils.JSONError(c, http.StatusGatewayTimeout, "Gateway Timeout", "upstream did not respond in time")
		} else {
			utils.JSONError(c, http.StatusBadGateway, "Bad Gateway", "upstream request failed")
		}
		utils.Error("gateway: upstream call failed", map[string]any{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
			"error":  err.Error(),
		})
		return
	}

	contentType := resp.ContentType
	if contentType == "" {
		contentType = "application/json"
	}
	c.Data(resp.Status, contentType, resp.Body)
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Bad Request", "path parameter '"+name+"' must be an integer")
		return 0, false
	}
	return id, true
}
