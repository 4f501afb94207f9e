package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"hms_backend/internal/models"
	"hms_backend/internal/services"
	"hms_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// OrderHandler holds the order service.
type OrderHandler struct {
	orderService services.OrderService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(os services.OrderService) *OrderHandler {
	return &OrderHandler{orderService: os}
}

// OpenOrder handles opening a new order against a room.
func (h *OrderHandler) OpenOrder(c *gin.Context) {
	var req services.OpenOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "OpenOrder: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	order, err := h.orderService.OpenOrder(req)
	if err != nil {
		utils.LogError(err, "OpenOrder: Error from orderService.OpenOrder")
		if errors.Is(err, services.ErrRoomNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Room not found.", err.Error()))
		} else if errors.Is(err, services.ErrRoomOccupied) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeConflict, "Room already has an active order.", err.Error()))
		} else if errors.Is(err, services.ErrValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to open order.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusCreated, order)
}

// GetOrders handles fetching orders with pagination and filters.
func (h *OrderHandler) GetOrders(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))

	filters := models.OrderFilters{
		Page:     page,
		PageSize: pageSize,
	}
	if roomIDStr := c.Query("room_id"); roomIDStr != "" {
		roomID, err := utils.StrToInt64(roomIDStr)
		if err != nil {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid room_id filter format.", err.Error()))
			return
		}
		filters.RoomID = &roomID
	}
	if status := c.Query("status"); status != "" {
		if !models.IsValidOrderStatus(status) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid status filter value.", "status must be Pending or Completed"))
			return
		}
		filters.Status = &status
	}

	orders, totalCount, err := h.orderService.GetOrders(filters)
	if err != nil {
		utils.LogError(err, "GetOrders: Error from orderService.GetOrders")
		if errors.Is(err, services.ErrValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch orders.", "Internal error"))
		}
		return
	}

	if orders == nil {
		orders = []models.Order{}
	}

	c.JSON(http.StatusOK, gin.H{
		"data":      orders,
		"total":     totalCount,
		"page":      page,
		"page_size": pageSize,
	})
}

// GetOrderByID handles fetching a single order, optionally with its details.
func (h *OrderHandler) GetOrderByID(c *gin.Context) {
	idStr := c.Param("id")
	orderID, err := utils.StrToInt64(idStr)
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid order ID format.", err.Error()))
		return
	}
	includeDetails := c.DefaultQuery("include_details", "true") == "true"

	order, err := h.orderService.GetOrderByID(orderID, includeDetails)
	if err != nil {
		utils.LogError(err, "GetOrderByID: Error from orderService.GetOrderByID for ID "+idStr)
		if errors.Is(err, services.ErrOrderNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Order not found.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch order.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, order)
}

// GetOrderTotal handles fetching the running total of an order.
func (h *OrderHandler) GetOrderTotal(c *gin.Context) {
	idStr := c.Param("id")
	orderID, err := utils.StrToInt64(idStr)
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid order ID format.", err.Error()))
		return
	}

	total, err := h.orderService.GetOrderTotal(orderID)
	if err != nil {
		utils.LogError(err, "GetOrderTotal: Error from orderService.GetOrderTotal for ID "+idStr)
		if errors.Is(err, services.ErrOrderNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Order not found.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch order total.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"order_id":     orderID,
		"total_amount": total,
	})
}

// AddOrderDetail handles adding a line item to an order.
func (h *OrderHandler) AddOrderDetail(c *gin.Context) {
	idStr := c.Param("id")
	orderID, err := utils.StrToInt64(idStr)
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid order ID format.", err.Error()))
		return
	}

	var req services.AddOrderDetailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "AddOrderDetail: Failed to bind JSON for order "+idStr)
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	detail, err := h.orderService.AddOrderDetail(orderID, req)
	if err != nil {
		utils.LogError(err, "AddOrderDetail: Error from orderService.AddOrderDetail for order "+idStr)
		if errors.Is(err, services.ErrOrderNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Order not found.", err.Error()))
		} else if errors.Is(err, services.ErrItemNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Item not found.", err.Error()))
		} else if errors.Is(err, services.ErrOrderCompleted) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeConflict, "Order is already completed.", err.Error()))
		} else if errors.Is(err, services.ErrValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to add order detail.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusCreated, detail)
}

// UpdateOrderDetail handles changing the quantity or rate of a line item.
func (h *OrderHandler) UpdateOrderDetail(c *gin.Context) {
	detailIDStr := c.Param("detail_id")
	detailID, err := utils.StrToInt64(detailIDStr)
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid order detail ID format.", err.Error()))
		return
	}

	var req services.UpdateOrderDetailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "UpdateOrderDetail: Failed to bind JSON for detail "+detailIDStr)
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	detail, err := h.orderService.UpdateOrderDetail(detailID, req)
	if err != nil {
		utils.LogError(err, "UpdateOrderDetail: Error from orderService.UpdateOrderDetail for detail "+detailIDStr)
		if errors.Is(err, services.ErrOrderDetailNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Order detail not found.", err.Error()))
		} else if errors.Is(err, services.ErrOrderCompleted) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeConflict, "Order is already completed.", err.Error()))
		} else if errors.Is(err, services.ErrValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to update order detail.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, detail)
}

// RemoveOrderDetail handles removing a line item from an order.
func (h *OrderHandler) RemoveOrderDetail(c *gin.Context) {
	detailIDStr := c.Param("detail_id")
	detailID, err := utils.StrToInt64(detailIDStr)
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid order detail ID format.", err.Error()))
		return
	}

	if err := h.orderService.RemoveOrderDetail(detailID); err != nil {
		utils.LogError(err, "RemoveOrderDetail: Error from orderService.RemoveOrderDetail for detail "+detailIDStr)
		if errors.Is(err, services.ErrOrderDetailNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Order detail not found.", err.Error()))
		} else if errors.Is(err, services.ErrOrderCompleted) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeConflict, "Order is already completed.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to remove order detail.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order detail removed successfully"})
}

// DeleteOrder handles deleting an order with no remaining details.
func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	idStr := c.Param("id")
	orderID, err := utils.StrToInt64(idStr)
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid order ID format.", err.Error()))
		return
	}

	if err := h.orderService.DeleteOrder(orderID); err != nil {
		utils.LogError(err, "DeleteOrder: Error from orderService.DeleteOrder for ID "+idStr)
		if errors.Is(err, services.ErrOrderNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Order not found.", err.Error()))
		} else if errors.Is(err, services.ErrOrderHasDetails) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeConflict, "Order still has line items.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to delete order.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order deleted successfully"})
}
