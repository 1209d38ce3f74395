package gateway

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"shareit/internal/gateway/client"
	"shareit/utils"
)

// upstreamCall captures what the gateway forwarded.
type upstreamCall struct {
	method string
	path   string
	query  string
	userID string
	body   []byte
}

func newGatewayUnderTest(t *testing.T, upstream http.HandlerFunc) (*gin.Engine, *upstreamCall) {
	gin.SetMode(gin.TestMode)

	captured := &upstreamCall{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured.method = r.Method
		captured.path = r.URL.Path
		captured.query = r.URL.RawQuery
		captured.userID = r.Header.Get(utils.UserIDHeader)
		captured.body, _ = io.ReadAll(r.Body)
		upstream(w, r)
	}))
	t.Cleanup(srv.Close)

	base := client.NewBaseClient(srv.URL, 2*time.Second)
	return SetupRouter(base), captured
}

func doGateway(t *testing.T, router *gin.Engine, method, url, userID string, body any) *httptest.ResponseRecorder {
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

func TestGatewayRelaysUpstreamVerbatim(t *testing.T) {
	router, captured := newGatewayUnderTest(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"error":"Conflict","description":"booking already decided"}`))
	})

	w := doGateway(t, router, http.MethodPatch, "/bookings/8?approved=true", "2", nil)

	require.Equal(t, http.StatusConflict, w.Code)
	require.JSONEq(t, `{"error":"Conflict","description":"booking already decided"}`, w.Body.String())
	require.Equal(t, http.MethodPatch, captured.method)
	require.Equal(t, "/bookings/8", captured.path)
	require.Equal(t, "approved=true", captured.query)
	require.Equal(t, "2", captured.userID)
}

func TestGatewayValidatesBeforeForwarding(t *testing.T) {
	tests := []struct {
		name   string
		method string
		url    string
		userID string
		body   any
	}{
		{
			name:   "malformed_email",
			method: http.MethodPost,
			url:    "/users",
			body:   map[string]string{"name": "alice", "email": "not-an-email"},
		},
		{
			name:   "missing_item_name",
			method: http.MethodPost,
			url:    "/items",
			userID: "2",
			body:   map[string]any{"description": "a power drill", "available": true},
		},
		{
			name:   "unknown_booking_state",
			method: http.MethodGet,
			url:    "/bookings?state=UNSUPPORTED_STATUS",
			userID: "4",
		},
		{
			name:   "negative_from",
			method: http.MethodGet,
			url:    "/requests/all?from=-1",
			userID: "4",
		},
		{
			name:   "zero_size",
			method: http.MethodGet,
			url:    "/requests/all?size=0",
			userID: "4",
		},
		{
			name:   "booking_end_before_start",
			method: http.MethodPost,
			url:    "/bookings",
			userID: "4",
			body: map[string]any{
				"itemId": 10,
				"start":  "2030-06-02T12:00:00",
				"end":    "2030-06-01T12:00:00",
			},
		},
		{
			name:   "booking_start_in_past",
			method: http.MethodPost,
			url:    "/bookings",
			userID: "4",
			body: map[string]any{
				"itemId": 10,
				"start":  "2020-06-01T12:00:00",
				"end":    "2030-06-01T12:00:00",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, captured := newGatewayUnderTest(t, func(w http.ResponseWriter, r *http.Request) {
				t.Fatal("request must not reach the upstream")
			})

			w := doGateway(t, router, tt.method, tt.url, tt.userID, tt.body)
			require.Equal(t, http.StatusBadRequest, w.Code)
			require.Empty(t, captured.method)
		})
	}
}

func TestGatewayRequiresUserIDHeader(t *testing.T) {
	router, captured := newGatewayUnderTest(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("request must not reach the upstream")
	})

	w := doGateway(t, router, http.MethodGet, "/items", "", nil)

	require.Equal(t, http.StatusBadRequest, w.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "Missing Header", resp["error"])
	require.Empty(t, captured.method)
}

func TestGatewayForwardsCreateUser(t *testing.T) {
	router, captured := newGatewayUnderTest(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":1,"name":"alice","email":"alice@example.com"}`))
	})

	w := doGateway(t, router, http.MethodPost, "/users", "",
		map[string]string{"name": "alice", "email": "alice@example.com"})

	require.Equal(t, http.StatusCreated, w.Code)
	require.Equal(t, "/users", captured.path)
	require.JSONEq(t, `{"name":"alice","email":"alice@example.com"}`, string(captured.body))
}

func TestGatewayUpstreamDown(t *testing.T) {
	gin.SetMode(gin.TestMode)

	// Point the client at a closed port.
	base := client.NewBaseClient("http://127.0.0.1:1", 500*time.Millisecond)
	router := SetupRouter(base)

	w := doGateway(t, router, http.MethodGet, "/users", "", nil)

	require.Equal(t, http.StatusBadGateway, w.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "Bad Gateway", resp["error"])
}
