package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"shareit/internal/bookingService"
	"shareit/internal/itemService"
	"shareit/internal/repository"
	"shareit/internal/requestService"
	"shareit/internal/server"
	"shareit/internal/userService"
	bookinghandler "shareit/services/booking/handler"
	itemhandler "shareit/services/item/handler"
	requesthandler "shareit/services/request/handler"
	userhandler "shareit/services/user/handler"
	"shareit/utils"
)

// SetupTestRouter wires the full service stack against a mocked database.
func SetupTestRouter(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	gin.SetMode(gin.TestMode)

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	userRepo := repository.NewUserRepo(db)
	itemRepo := repository.NewItemRepo(db)
	bookingRepo := repository.NewBookingRepo(db)
	commentRepo := repository.NewCommentRepo(db)
	requestRepo := repository.NewRequestRepo(db)

	userSvc := user.NewUserService(userRepo)
	itemSvc := item.NewItemService(itemRepo, userRepo, commentRepo, bookingRepo)
	bookingSvc := booking.NewBookingService(bookingRepo, itemRepo, userRepo)
	requestSvc := request.NewRequestService(requestRepo, itemRepo, userRepo)

	router := server.SetupRouter(
		userhandler.NewUserHandler(userSvc),
		itemhandler.NewItemHandler(itemSvc),
		bookinghandler.NewBookingHandler(bookingSvc),
		requesthandler.NewRequestHandler(requestSvc),
	)
	return router, mock
}

// ExecuteRequest executes an HTTP request against the router, optionally
// with the identity header set.
func ExecuteRequest(t *testing.T, router *gin.Engine, method, url, userID string, body any) *httptest.ResponseRecorder {
	var payload []byte
	switch v := body.(type) {
	case nil:
	case string:
		payload = []byte(v)
	default:
		var err error
		payload, err = json.Marshal(v)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(method, url, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set(utils.UserIDHeader, userID)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// ParseBody unmarshals a JSON object response.
func ParseBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}
