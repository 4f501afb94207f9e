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

// BillHandler holds the bill service.
type BillHandler struct {
	billService services.BillService
}

// NewBillHandler creates a new BillHandler.
func NewBillHandler(bs services.BillService) *BillHandler {
	return &BillHandler{billService: bs}
}

// CreateBill handles settling an order into a bill.
func (h *BillHandler) CreateBill(c *gin.Context) {
	var req services.CreateBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "CreateBill: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	bill, err := h.billService.CreateBill(req)
	if err != nil {
		utils.LogError(err, "CreateBill: Error from billService.CreateBill")
		if errors.Is(err, services.ErrOrderNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Order not found.", err.Error()))
		} else if errors.Is(err, services.ErrOrderCompleted) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeConflict, "Order is already completed.", err.Error()))
		} else if errors.Is(err, services.ErrBillExists) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeConflict, "A bill already exists for this order.", err.Error()))
		} else if errors.Is(err, services.ErrValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to create bill.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusCreated, bill)
}

// GetBills handles fetching bills with pagination and filters.
func (h *BillHandler) GetBills(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))

	filters := models.BillFilters{
		Page:     page,
		PageSize: pageSize,
	}
	if orderIDStr := c.Query("order_id"); orderIDStr != "" {
		orderID, err := utils.StrToInt64(orderIDStr)
		if err != nil {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid order_id filter format.", err.Error()))
			return
		}
		filters.OrderID = &orderID
	}

	bills, totalCount, err := h.billService.GetBills(filters)
	if err != nil {
		utils.LogError(err, "GetBills: Error from billService.GetBills")
		if errors.Is(err, services.ErrValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch bills.", "Internal error"))
		}
		return
	}

	if bills == nil {
		bills = []models.Bill{}
	}

	c.JSON(http.StatusOK, gin.H{
		"data":      bills,
		"total":     totalCount,
		"page":      page,
		"page_size": pageSize,
	})
}

// GetBillByID handles fetching a single bill by ID.
func (h *BillHandler) GetBillByID(c *gin.Context) {
	idStr := c.Param("id")
	billID, err := utils.StrToInt64(idStr)
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid bill ID format.", err.Error()))
		return
	}

	bill, err := h.billService.GetBillByID(billID)
	if err != nil {
		utils.LogError(err, "GetBillByID: Error from billService.GetBillByID for ID "+idStr)
		if errors.Is(err, services.ErrBillNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Bill not found.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch bill.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, bill)
}

// UpdateBill handles adjusting a bill's discount, tax or payment status.
func (h *BillHandler) UpdateBill(c *gin.Context) {
	idStr := c.Param("id")
	billID, err := utils.StrToInt64(idStr)
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid bill ID format.", err.Error()))
		return
	}

	var req services.UpdateBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "UpdateBill: Failed to bind JSON for ID "+idStr)
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	bill, err := h.billService.UpdateBill(billID, req)
	if err != nil {
		utils.LogError(err, "UpdateBill: Error from billService.UpdateBill for ID "+idStr)
		if errors.Is(err, services.ErrBillNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Bill not found.", err.Error()))
		} else if errors.Is(err, services.ErrValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to update bill.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, bill)
}

// DeleteBill handles deleting a bill record.
func (h *BillHandler) DeleteBill(c *gin.Context) {
	idStr := c.Param("id")
	billID, err := utils.StrToInt64(idStr)
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid bill ID format.", err.Error()))
		return
	}

	if err := h.billService.DeleteBill(billID); err != nil {
		utils.LogError(err, "DeleteBill: Error from billService.DeleteBill for ID "+idStr)
		if errors.Is(err, services.ErrBillNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Bill not found.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to delete bill.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Bill deleted successfully"})
}
