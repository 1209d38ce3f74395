package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"shareit/internal/models"
	"shareit/internal/shareiterrors"
	"shareit/services/item/helpers"
	"shareit/utils"
)

// identityFromHeader mirrors the router middleware so handlers under test can
// read the caller id.
func identityFromHeader() gin.HandlerFunc {
	return func(c *gin.Context) {
		if raw := c.GetHeader(utils.UserIDHeader); raw != "" {
			if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
				utils.SetUserID(c, id)
			}
		}
		c.Next()
	}
}

func setupItemRouter(t *testing.T) (*gin.Engine, *MockItemServiceInterface) {
	ctrl := gomock.NewController(t)
	mockService := NewMockItemServiceInterface(ctrl)
	h := NewItemHandler(mockService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	items := router.Group("/items", identityFromHeader())
	items.POST("", h.CreateItemHandler)
	items.GET("", h.GetUserItemsHandler)
	items.GET("/search", h.SearchItemsHandler)
	items.GET("/:itemId", h.GetItemByIDHandler)
	items.PATCH("/:itemId", h.UpdateItemHandler)
	items.POST("/:itemId/comment", h.CreateCommentHandler)
	return router, mockService
}

func doAs(t *testing.T, router *gin.Engine, userID int64, method, url string, body any) *httptest.ResponseRecorder {
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
	req.Header.Set(utils.UserIDHeader, strconv.FormatInt(userID, 10))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateItemHandler(t *testing.T) {
	avail := true

	t.Run("created", func(t *testing.T) {
		router, mockService := setupItemRouter(t)
		mockService.EXPECT().
			CreateItem(gomock.Any(), int64(2), "drill", "a power drill", true, nil).
			Return(models.Item{ID: 10, Name: "drill", Description: "a power drill", Available: true, OwnerID: 2}, nil)

		w := doAs(t, router, 2, http.MethodPost, "/items",
			helpers.CreateItemRequest{Name: "drill", Description: "a power drill", Available: &avail})
		require.Equal(t, http.StatusCreated, w.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Equal(t, float64(10), resp["id"])
		require.Equal(t, true, resp["available"])
		require.Nil(t, resp["lastBooking"])
		require.Nil(t, resp["nextBooking"])
	})

	t.Run("missing_available_flag", func(t *testing.T) {
		router, _ := setupItemRouter(t)
		w := doAs(t, router, 2, http.MethodPost, "/items",
			helpers.CreateItemRequest{Name: "drill", Description: "a power drill"})
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown_owner", func(t *testing.T) {
		router, mockService := setupItemRouter(t)
		mockService.EXPECT().
			CreateItem(gomock.Any(), int64(99), "drill", "a power drill", true, nil).
			Return(models.Item{}, shareiterrors.ErrUserNotFound)

		w := doAs(t, router, 99, http.MethodPost, "/items",
			helpers.CreateItemRequest{Name: "drill", Description: "a power drill", Available: &avail})
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestUpdateItemHandler(t *testing.T) {
	t.Run("non_owner_forbidden", func(t *testing.T) {
		router, mockService := setupItemRouter(t)
		name := "hammer"
		mockService.EXPECT().
			UpdateItem(gomock.Any(), int64(7), int64(10), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(models.Item{}, shareiterrors.ErrForbidden)

		w := doAs(t, router, 7, http.MethodPatch, "/items/10", helpers.UpdateItemRequest{Name: &name})
		require.Equal(t, http.StatusForbidden, w.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Equal(t, "Forbidden", resp["error"])
	})

	t.Run("owner_patch", func(t *testing.T) {
		router, mockService := setupItemRouter(t)
		off := false
		mockService.EXPECT().
			UpdateItem(gomock.Any(), int64(2), int64(10), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(models.Item{ID: 10, Name: "drill", Available: false, OwnerID: 2}, nil)

		w := doAs(t, router, 2, http.MethodPatch, "/items/10", helpers.UpdateItemRequest{Available: &off})
		require.Equal(t, http.StatusOK, w.Code)
	})
}

func TestGetItemByIDHandler(t *testing.T) {
	router, mockService := setupItemRouter(t)
	mockService.EXPECT().GetItemByID(gomock.Any(), int64(10)).
		Return(
			models.Item{ID: 10, Name: "drill", Available: true, OwnerID: 2},
			[]models.Comment{{ID: 1, Text: "worked great", ItemID: 10, AuthorName: "bob"}},
			nil,
		)

	w := doAs(t, router, 4, http.MethodGet, "/items/10", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	comments := resp["comments"].([]any)
	require.Len(t, comments, 1)
	first := comments[0].(map[string]any)
	require.Equal(t, "bob", first["authorName"])
}

func TestSearchItemsHandler(t *testing.T) {
	router, mockService := setupItemRouter(t)
	mockService.EXPECT().SearchItems(gomock.Any(), "drill").
		Return([]models.Item{{ID: 10, Name: "drill", Available: true}}, nil)

	w := doAs(t, router, 4, http.MethodGet, "/items/search?text=drill", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
}

func TestCreateCommentHandler(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		router, mockService := setupItemRouter(t)
		mockService.EXPECT().CreateComment(gomock.Any(), int64(4), int64(10), "worked great").
			Return(models.Comment{ID: 1, Text: "worked great", ItemID: 10, AuthorID: 4, AuthorName: "bob"}, nil)

		w := doAs(t, router, 4, http.MethodPost, "/items/10/comment", helpers.CommentRequest{Text: "worked great"})
		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("no_completed_rental", func(t *testing.T) {
		router, mockService := setupItemRouter(t)
		mockService.EXPECT().CreateComment(gomock.Any(), int64(4), int64(10), "worked great").
			Return(models.Comment{}, shareiterrors.ErrNoCompletedRental)

		w := doAs(t, router, 4, http.MethodPost, "/items/10/comment", helpers.CommentRequest{Text: "worked great"})
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("blank_text", func(t *testing.T) {
		router, _ := setupItemRouter(t)
		w := doAs(t, router, 4, http.MethodPost, "/items/10/comment", helpers.CommentRequest{})
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}
