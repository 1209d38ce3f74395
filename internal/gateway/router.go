package gateway

import (
	"github.com/gin-gonic/gin"

	"shareit/internal/gateway/client"
	"shareit/internal/gateway/handler"
	"shareit/internal/server"
)

// SetupRouter wires the gateway surface. It mirrors the main service's route
// table; every handler validates and forwards.
func SetupRouter(base *client.BaseClient) *gin.Engine {
	userH := handler.NewUserGatewayHandler(client.NewUserClient(base))
	itemH := handler.NewItemGatewayHandler(client.NewItemClient(base))
	bookingH := handler.NewBookingGatewayHandler(client.NewBookingClient(base))
	requestH := handler.NewRequestGatewayHandler(client.NewRequestClient(base))

	router := gin.New()
	router.Use(gin.Recovery(), server.RequestIDMiddleware(), server.RequestLoggerMiddleware())

	users := router.Group("/users")
	{
		users.POST("", userH.CreateUserHandler)
		users.GET("", userH.GetAllUsersHandler)
		users.GET("/:userId", userH.GetUserByIDHandler)
		users.PATCH("/:userId", userH.UpdateUserHandler)
		users.DELETE("/:userId", userH.DeleteUserHandler)
	}

	items := router.Group("/items", server.RequireUserID())
	{
		items.POST("", itemH.CreateItemHandler)
		items.GET("", itemH.GetUserItemsHandler)
		items.GET("/search", itemH.SearchItemsHandler)
		items.GET("/:itemId", itemH.GetItemByIDHandler)
		items.PATCH("/:itemId", itemH.UpdateItemHandler)
		items.POST("/:itemId/comment", itemH.CreateCommentHandler)
	}

	bookings := router.Group("/bookings", server.RequireUserID())
	{
		bookings.POST("", bookingH.CreateBookingHandler)
		bookings.GET("", bookingH.GetUserBookingsHandler)
		bookings.GET("/owner", bookingH.GetOwnerBookingsHandler)
		bookings.GET("/:bookingId", bookingH.GetBookingByIDHandler)
		bookings.PATCH("/:bookingId", bookingH.ApproveBookingHandler)
	}

	requests := router.Group("/requests", server.RequireUserID())
	{
		requests.POST("", requestH.CreateRequestHandler)
		requests.GET("", requestH.GetUserRequestsHandler)
		requests.GET("/all", requestH.GetAllRequestsHandler)
		requests.GET("/:requestId", requestH.GetRequestByIDHandler)
	}

	return router
}
