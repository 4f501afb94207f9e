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

// RoomHandler holds the room service.
type RoomHandler struct {
	roomService services.RoomService
}

// NewRoomHandler creates a new RoomHandler.
func NewRoomHandler(rs services.RoomService) *RoomHandler {
	return &RoomHandler{roomService: rs}
}

// CreateRoom handles the creation of a new room.
func (h *RoomHandler) CreateRoom(c *gin.Context) {
	var req services.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "CreateRoom: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	room, err := h.roomService.CreateRoom(req)
	if err != nil {
		utils.LogError(err, "CreateRoom: Error from roomService.CreateRoom")
		if errors.Is(err, services.ErrRoomNameExists) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeConflict, "Room name already exists for this room type.", err.Error()))
		} else if errors.Is(err, services.ErrValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to create room.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusCreated, room)
}

// GetRooms handles fetching rooms with pagination.
func (h *RoomHandler) GetRooms(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))

	filters := models.RoomFilters{
		Page:     page,
		PageSize: pageSize,
	}

	rooms, totalCount, err := h.roomService.GetRooms(filters)
	if err != nil {
		utils.LogError(err, "GetRooms: Error from roomService.GetRooms")
		if errors.Is(err, services.ErrValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch rooms.", "Internal error"))
		}
		return
	}

	if rooms == nil {
		rooms = []models.Room{}
	}

	c.JSON(http.StatusOK, gin.H{
		"data":      rooms,
		"total":     totalCount,
		"page":      page,
		"page_size": pageSize,
	})
}

// GetAvailableRooms handles fetching rooms that can accept a new order.
func (h *RoomHandler) GetAvailableRooms(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))

	filters := models.RoomFilters{
		AvailableOnly: true,
		Page:          page,
		PageSize:      pageSize,
	}

	rooms, totalCount, err := h.roomService.GetRooms(filters)
	if err != nil {
		utils.LogError(err, "GetAvailableRooms: Error from roomService.GetRooms")
		if errors.Is(err, services.ErrValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch available rooms.", "Internal error"))
		}
		return
	}

	if rooms == nil {
		rooms = []models.Room{}
	}

	c.JSON(http.StatusOK, gin.H{
		"data":      rooms,
		"total":     totalCount,
		"page":      page,
		"page_size": pageSize,
	})
}

// GetRoomByID handles fetching a single room by ID.
func (h *RoomHandler) GetRoomByID(c *gin.Context) {
	idStr := c.Param("id")
	roomID, err := utils.StrToInt64(idStr)
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid room ID format.", err.Error()))
		return
	}

	room, err := h.roomService.GetRoomByID(roomID)
	if err != nil {
		utils.LogError(err, "GetRoomByID: Error from roomService.GetRoomByID for ID "+idStr)
		if errors.Is(err, services.ErrRoomNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Room not found.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch room.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, room)
}

// UpdateRoom handles updating a room's descriptive fields.
func (h *RoomHandler) UpdateRoom(c *gin.Context) {
	idStr := c.Param("id")
	roomID, err := utils.StrToInt64(idStr)
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid room ID format.", err.Error()))
		return
	}

	var req services.UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "UpdateRoom: Failed to bind JSON for ID "+idStr)
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	room, err := h.roomService.UpdateRoom(roomID, req)
	if err != nil {
		utils.LogError(err, "UpdateRoom: Error from roomService.UpdateRoom for ID "+idStr)
		if errors.Is(err, services.ErrRoomNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Room not found.", err.Error()))
		} else if errors.Is(err, services.ErrRoomNameExists) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeConflict, "Room name already exists for this room type.", err.Error()))
		} else if errors.Is(err, services.ErrValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to update room.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, room)
}

// DeleteRoom handles deleting a room.
func (h *RoomHandler) DeleteRoom(c *gin.Context) {
	idStr := c.Param("id")
	roomID, err := utils.StrToInt64(idStr)
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid room ID format.", err.Error()))
		return
	}

	if err := h.roomService.DeleteRoom(roomID); err != nil {
		utils.LogError(err, "DeleteRoom: Error from roomService.DeleteRoom for ID "+idStr)
		if errors.Is(err, services.ErrRoomNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Room not found.", err.Error()))
		} else if errors.Is(err, services.ErrRoomOccupied) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeConflict, "Room has an active order.", err.Error()))
		} else if errors.Is(err, services.ErrRoomHasOrders) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeConflict, "Room is referenced by existing orders.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to delete room.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Room deleted successfully"})
}
