package router

import (
	"hms_backend/internal/handlers"
	"hms_backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SetupPublicAuthRoutes sets up the authentication routes that require no token.
func SetupPublicAuthRoutes(apiGroup *gin.RouterGroup, authHandler *handlers.AuthHandler) {
	authRoutes := apiGroup.Group("/auth")
	{
		authRoutes.POST("/register", authHandler.Register)
		authRoutes.POST("/login", authHandler.Login)
	}
}

// SetupAuthenticatedAuthRoutes sets up the auth routes behind the token check.
func SetupAuthenticatedAuthRoutes(authenticatedGroup *gin.RouterGroup, authHandler *handlers.AuthHandler) {
	authRoutes := authenticatedGroup.Group("/auth")
	{
		authRoutes.GET("/me", authHandler.GetProfile)
	}
}

// SetupItemRoutes sets up the catalog item routes.
func SetupItemRoutes(authenticatedGroup *gin.RouterGroup, itemHandler *handlers.ItemHandler) {
	itemRoutes := authenticatedGroup.Group("/items")
	itemRoutes.Use(middleware.RoleAuthMiddleware("Admin", "Staff"))
	{
		itemRoutes.POST("", itemHandler.CreateItem)
		itemRoutes.GET("", itemHandler.GetItems)
		itemRoutes.GET("/:id", itemHandler.GetItemByID)
		itemRoutes.PUT("/:id", itemHandler.UpdateItem)
		itemRoutes.DELETE("/:id", itemHandler.DeleteItem)
	}
}

// SetupRoomRoutes sets up the room routes.
func SetupRoomRoutes(authenticatedGroup *gin.RouterGroup, roomHandler *handlers.RoomHandler) {
	roomRoutes := authenticatedGroup.Group("/rooms")
	roomRoutes.Use(middleware.RoleAuthMiddleware("Admin", "Staff"))
	{
		roomRoutes.POST("", roomHandler.CreateRoom)
		roomRoutes.GET("", roomHandler.GetRooms)
		roomRoutes.GET("/available", roomHandler.GetAvailableRooms)
		roomRoutes.GET("/:id", roomHandler.GetRoomByID)
		roomRoutes.PUT("/:id", roomHandler.UpdateRoom)
		roomRoutes.DELETE("/:id", roomHandler.DeleteRoom)
	}
}

// SetupOrderRoutes sets up the order and order detail routes.
func SetupOrderRoutes(authenticatedGroup *gin.RouterGroup, orderHandler *handlers.OrderHandler) {
	orderRoutes := authenticatedGroup.Group("/orders")
	orderRoutes.Use(middleware.RoleAuthMiddleware("Admin", "Staff"))
	{
		orderRoutes.POST("", orderHandler.OpenOrder)
		orderRoutes.GET("", orderHandler.GetOrders)
		orderRoutes.GET("/:id", orderHandler.GetOrderByID)
		orderRoutes.GET("/:id/total", orderHandler.GetOrderTotal)
		orderRoutes.DELETE("/:id", orderHandler.DeleteOrder)

		orderRoutes.POST("/:id/details", orderHandler.AddOrderDetail)
	}

	detailRoutes := authenticatedGroup.Group("/order-details")
	detailRoutes.Use(middleware.RoleAuthMiddleware("Admin", "Staff"))
	{
		detailRoutes.PUT("/:detail_id", orderHandler.UpdateOrderDetail)
		detailRoutes.DELETE("/:detail_id", orderHandler.RemoveOrderDetail)
	}
}

// SetupBillRoutes sets up the bill routes.
func SetupBillRoutes(authenticatedGroup *gin.RouterGroup, billHandler *handlers.BillHandler) {
	billRoutes := authenticatedGroup.Group("/bills")
	billRoutes.Use(middleware.RoleAuthMiddleware("Admin", "Staff"))
	{
		billRoutes.POST("", billHandler.CreateBill)
		billRoutes.GET("", billHandler.GetBills)
		billRoutes.GET("/:id", billHandler.GetBillByID)
		billRoutes.PUT("/:id", billHandler.UpdateBill)
		billRoutes.DELETE("/:id", billHandler.DeleteBill)
	}
}
