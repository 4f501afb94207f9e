package router

import (
	"database/sql"

	"hms_backend/internal/handlers"
	"hms_backend/internal/middleware"
	"hms_backend/internal/repositories"
	"hms_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// Config carries the runtime options the wiring depends on.
type Config struct {
	RoomDeletePolicy services.RoomDeletePolicy
}

// Setup initializes the routing for the application.
func Setup(engine *gin.Engine, db *sql.DB, cfg Config) {
	// Repositories
	authRepo := repositories.NewAuthRepository(db)
	itemRepo := repositories.NewItemRepository(db)
	roomRepo := repositories.NewRoomRepository(db)
	orderRepo := repositories.NewOrderRepository(db)
	billRepo := repositories.NewBillRepository(db)

	// Services
	authService := services.NewAuthService(authRepo, db)
	itemService := services.NewItemService(itemRepo, orderRepo, db)
	roomService := services.NewRoomService(roomRepo, orderRepo, db, cfg.RoomDeletePolicy)
	orderService := services.NewOrderService(orderRepo, roomRepo, itemRepo, db)
	billService := services.NewBillService(billRepo, orderRepo, roomRepo, db)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	itemHandler := handlers.NewItemHandler(itemService)
	roomHandler := handlers.NewRoomHandler(roomService)
	orderHandler := handlers.NewOrderHandler(orderService)
	billHandler := handlers.NewBillHandler(billService)

	apiV1 := engine.Group("/api/v1")

	SetupPublicAuthRoutes(apiV1, authHandler)

	authenticated := apiV1.Group("")
	authenticated.Use(middleware.AuthMiddleware())
	{
		SetupAuthenticatedAuthRoutes(authenticated, authHandler)
		SetupItemRoutes(authenticated, itemHandler)
		SetupRoomRoutes(authenticated, roomHandler)
		SetupOrderRoutes(authenticated, orderHandler)
		SetupBillRoutes(authenticated, billHandler)
	}
}
