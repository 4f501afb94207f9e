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

// ItemHandler holds the item service.
type ItemHandler struct {
	itemService services.ItemService
}

// NewItemHandler creates a new ItemHandler.
func NewItemHandler(is services.ItemService) *ItemHandler {
	return &ItemHandler{itemService: is}
}

// CreateItem handles the creation of a new catalog item.
func (h *ItemHandler) CreateItem(c *gin.Context) {
	var req services.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "CreateItem: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	item, err := h.itemService.CreateItem(req)
	if err != nil {
		utils.LogError(err, "CreateItem: Error from itemService.CreateItem")
		if errors.Is(err, services.ErrItemNameExists) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeConflict, "Item name already exists.", err.Error()))
		} else if errors.Is(err, services.ErrValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to create item.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusCreated, item)
}

// GetItems handles fetching catalog items with pagination.
func (h *ItemHandler) GetItems(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	activeOnly := c.DefaultQuery("active_only", "false") == "true"

	filters := models.ItemFilters{
		ActiveOnly: activeOnly,
		Page:       page,
		PageSize:   pageSize,
	}

	items, totalCount, err := h.itemService.GetItems(filters)
	if err != nil {
		utils.LogError(err, "GetItems: Error from itemService.GetItems")
		if errors.Is(err, services.ErrValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch items.", "Internal error"))
		}
		return
	}

	if items == nil {
		items = []models.Item{}
	}

	c.JSON(http.StatusOK, gin.H{
		"data":      items,
		"total":     totalCount,
		"page":      page,
		"page_size": pageSize,
	})
}

// GetItemByID handles fetching a single catalog item by ID.
func (h *ItemHandler) GetItemByID(c *gin.Context) {
	idStr := c.Param("id")
	itemID, err := utils.StrToInt64(idStr)
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid item ID format.", err.Error()))
		return
	}

	item, err := h.itemService.GetItemByID(itemID)
	if err != nil {
		utils.LogError(err, "GetItemByID: Error from itemService.GetItemByID for ID "+idStr)
		if errors.Is(err, services.ErrItemNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Item not found.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch item.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, item)
}

// UpdateItem handles updating a catalog item.
func (h *ItemHandler) UpdateItem(c *gin.Context) {
	idStr := c.Param("id")
	itemID, err := utils.StrToInt64(idStr)
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid item ID format.", err.Error()))
		return
	}

	var req services.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "UpdateItem: Failed to bind JSON for ID "+idStr)
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	item, err := h.itemService.UpdateItem(itemID, req)
	if err != nil {
		utils.LogError(err, "UpdateItem: Error from itemService.UpdateItem for ID "+idStr)
		if errors.Is(err, services.ErrItemNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Item not found.", err.Error()))
		} else if errors.Is(err, services.ErrItemNameExists) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeConflict, "Item name already exists.", err.Error()))
		} else if errors.Is(err, services.ErrValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to update item.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, item)
}

// DeleteItem handles deleting a catalog item.
func (h *ItemHandler) DeleteItem(c *gin.Context) {
	idStr := c.Param("id")
	itemID, err := utils.StrToInt64(idStr)
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid item ID format.", err.Error()))
		return
	}

	if err := h.itemService.DeleteItem(itemID); err != nil {
		utils.LogError(err, "DeleteItem: Error from itemService.DeleteItem for ID "+idStr)
		if errors.Is(err, services.ErrItemNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Item not found.", err.Error()))
		} else if errors.Is(err, services.ErrItemInUse) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeConflict, "Item is referenced by existing order details.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to delete item.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Item deleted successfully"})
}
