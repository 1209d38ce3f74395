package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	bookinghelpers "shareit/services/booking/helpers"
	itemhelpers "shareit/services/item/helpers"
	requesthelpers "shareit/services/request/helpers"
	userhelpers "shareit/services/user/helpers"
)

type UserClient struct {
	base *BaseClient
}

func NewUserClient(base *BaseClient) *UserClient {
	return &UserClient{base: base}
}

func (c *UserClient) CreateUser(ctx context.Context, req userhelpers.CreateUserRequest) (Response, error) {
	return c.base.Do(ctx, http.MethodPost, "/users", nil, nil, req)
}

func (c *UserClient) GetUserByID(ctx context.Context, userID int64) (Response, error) {
	return c.base.Do(ctx, http.MethodGet, "/users/"+strconv.FormatInt(userID, 10), nil, nil, nil)
}

func (c *UserClient) GetAllUsers(ctx context.Context) (Response, error) {
	return c.base.Do(ctx, http.MethodGet, "/users", nil, nil, nil)
}

func (c *UserClient) UpdateUser(ctx context.Context, userID int64, req userhelpers.UpdateUserRequest) (Response, error) {
	return c.base.Do(ctx, http.MethodPatch, "/users/"+strconv.FormatInt(userID, 10), nil, nil, req)
}

func (c *UserClient) DeleteUser(ctx context.Context, userID int64) (Response, error) {
	return c.base.Do(ctx, http.MethodDelete, "/users/"+strconv.FormatInt(userID, 10), nil, nil, nil)
}

type ItemClient struct {
	base *BaseClient
}

func NewItemClient(base *BaseClient) *ItemClient {
	return &ItemClient{base: base}
}

func (c *ItemClient) CreateItem(ctx context.Context, userID int64, req itemhelpers.CreateItemRequest) (Response, error) {
	return c.base.Do(ctx, http.MethodPost, "/items", nil, &userID, req)
}

func (c *ItemClient) UpdateItem(ctx context.Context, userID, itemID int64, req itemhelpers.UpdateItemRequest) (Response, error) {
	return c.base.Do(ctx, http.MethodPatch, "/items/"+strconv.FormatInt(itemID, 10), nil, &userID, req)
}

func (c *ItemClient) GetItemByID(ctx context.Context, userID, itemID int64) (Response, error) {
	return c.base.Do(ctx, http.MethodGet, "/items/"+strconv.FormatInt(itemID, 10), nil, &userID, nil)
}

func (c *ItemClient) GetUserItems(ctx context.Context, userID int64) (Response, error) {
	return c.base.Do(ctx, http.MethodGet, "/items", nil, &userID, nil)
}

func (c *ItemClient) SearchItems(ctx context.Context, userID int64, text string) (Response, error) {
	query := url.Values{"text": []string{text}}
	return c.base.Do(ctx, http.MethodGet, "/items/search", query, &userID, nil)
}

func (c *ItemClient) CreateComment(ctx context.Context, userID, itemID int64, req itemhelpers.CommentRequest) (Response, error) {
	return c.base.Do(ctx, http.MethodPost, "/items/"+strconv.FormatInt(itemID, 10)+"/comment", nil, &userID, req)
}

type BookingClient struct {
	base *BaseClient
}

func NewBookingClient(base *BaseClient) *BookingClient {
	return &BookingClient{base: base}
}

func (c *BookingClient) CreateBooking(ctx context.Context, userID int64, req bookinghelpers.BookingRequest) (Response, error) {
	return c.base.Do(ctx, http.MethodPost, "/bookings", nil, &userID, req)
}

func (c *BookingClient) ApproveBooking(ctx context.Context, userID, bookingID int64, approved bool) (Response, error) {
	query := url.Values{"approved": []string{strconv.FormatBool(approved)}}
	return c.base.Do(ctx, http.MethodPatch, "/bookings/"+strconv.FormatInt(bookingID, 10), query, &userID, nil)
}

func (c *BookingClient) GetBookingByID(ctx context.Context, userID, bookingID int64) (Response, error) {
	return c.base.Do(ctx, http.MethodGet, "/bookings/"+strconv.FormatInt(bookingID, 10), nil, &userID, nil)
}

func (c *BookingClient) GetUserBookings(ctx context.Context, userID int64, state string) (Response, error) {
	query := url.Values{"state": []string{state}}
	return c.base.Do(ctx, http.MethodGet, "/bookings", query, &userID, nil)
}

func (c *BookingClient) GetOwnerBookings(ctx context.Context, userID int64, state string) (Response, error) {
	query := url.Values{"state": []string{state}}
	return c.base.Do(ctx, http.MethodGet, "/bookings/owner", query, &userID, nil)
}

type RequestClient struct {
	base *BaseClient
}

func NewRequestClient(base *BaseClient) *RequestClient {
	return &RequestClient{base: base}
}

func (c *RequestClient) CreateRequest(ctx context.Context, userID int64, req requesthelpers.CreateRequestRequest) (Response, error) {
	return c.base.Do(ctx, http.MethodPost, "/requests", nil, &userID, req)
}

func (c *RequestClient) GetUserRequests(ctx context.Context, userID int64) (Response, error) {
	return c.base.Do(ctx, http.MethodGet, "/requests", nil, &userID, nil)
}

func (c *RequestClient) GetAllRequests(ctx context.Context, userID int64, from, size int) (Response, error) {
	query := url.Values{
		"from": []string{strconv.Itoa(from)},
		"size": []string{strconv.Itoa(size)},
	}
	return c.base.Do(ctx, http.MethodGet, "/requests/all", query, &userID, nil)
}

func (c *RequestClient) GetRequestByID(ctx context.Context, userID, requestID int64) (Response, error) {
	return c.base.Do(ctx, http.MethodGet, "/requests/"+strconv.FormatInt(requestID, 10), nil, &userID, nil)
}
