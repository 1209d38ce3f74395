package server

import (
	"github.com/gin-gonic/gin"

	bookinghandler "shareit/services/booking/handler"
	itemhandler "shareit/services/item/handler"
	requesthandler "shareit/services/request/handler"
	userhandler "shareit/services/user/handler"
)

// SetupRouter wires the REST surface of the main service.
func SetupRouter(
	userH *userhandler.UserHandler,
	itemH *itemhandler.ItemHandler,
	bookingH *bookinghandler.BookingHandler,
	requestH *requesthandler.RequestHandler,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), RequestIDMiddleware(), RequestLoggerMiddleware())

	users := router.Group("/users")
	{
		users.POST("", userH.CreateUserHandler)
		users.GET("", userH.GetAllUsersHandler)
		users.GET("/:userId", userH.GetUserByIDHandler)
		users.PATCH("/:userId", userH.UpdateUserHandler)
		users.DELETE("/:userId", userH.DeleteUserHandler)
	}

	items := router.Group("/items", RequireUserID())
	{
		items.POST("", itemH.CreateItemHandler)
		items.GET("", itemH.GetUserItemsHandler)
		items.GET("/search", itemH.SearchItemsHandler)
		items.GET("/:itemId", itemH.GetItemByIDHandler)
		items.PATCH("/:itemId", itemH.UpdateItemHandler)
		items.POST("/:itemId/comment", itemH.CreateCommentHandler)
	}

	bookings := router.Group("/bookings", RequireUserID())
	{
		bookings.POST("", bookingH.CreateBookingHandler)
		bookings.GET("", bookingH.GetUserBookingsHandler)
		bookings.GET("/owner", bookingH.GetOwnerBookingsHandler)
		bookings.GET("/:bookingId", bookingH.GetBookingByIDHandler)
		bookings.PATCH("/:bookingId", bookingH.ApproveBookingHandler)
	}

	requests := router.Group("/requests", RequireUserID())
	{
		requests.POST("", requestH.CreateRequestHandler)
		requests.GET("", requestH.GetUserRequestsHandler)
		requests.GET("/all", requestH.GetAllRequestsHandler)
		requests.GET("/:requestId", requestH.GetRequestByIDHandler)
	}

	return router
}
