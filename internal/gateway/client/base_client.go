package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Response is the raw upstream reply. The gateway relays status and body
// verbatim, so no decoding happens here.
type Response struct {
	Status      int
	ContentType string
	Body        []byte
}

// BaseClient wraps a tuned http.Client pointed at the main service.
type BaseClient struct {
	httpClient *http.Client
	baseURL    string
}

func NewBaseClient(baseURL string, timeout time.Duration) *BaseClient {
	return &BaseClient{
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 100,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		baseURL: baseURL,
	}
}

// Do performs one upstream call. userID, when non-nil, is forwarded on the
// X-Sharer-User-Id header; body, when non-nil, is sent as JSON.
func (b *BaseClient) Do(ctx context.Context, method, path string, query url.Values, userID *int64, body any) (Response, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return Response{}, fmt.Errorf("client: failed to encode request body - %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	target := b.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return Response{}, fmt.Errorf("client: failed to build request - %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if userID != nil {
		req.Header.Set("X-Sharer-User-Id", strconv.FormatInt(*userID, 10))
	}

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return Response{}, fmt.Errorf("client: request failed - %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return Response{}, fmt.Errorf("client: failed to read response body - %w", err)
	}

	return Response{
		Status:      resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        data,
	}, nil
}
