package main

import (
	"shareit/internal/bookingService"
	"shareit/internal/config"
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

func main() {
	cfg := config.LoadServer()

	db, err := repository.Open(cfg.DatabaseURL)
	if err != nil {
		utils.Fatal("failed to connect to database", map[string]any{"error": err.Error()})
	}
	defer db.Close()

	if err := repository.Migrate(db); err != nil {
		utils.Fatal("failed to run migrations", map[string]any{"error": err.Error()})
	}

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

	utils.Info("starting server", map[string]any{"port": cfg.Port})
	if err := router.Run(":" + cfg.Port); err != nil {
		utils.Fatal("server stopped", map[string]any{"error": err.Error()})
	}
}
