package services

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"hms_backend/internal/models"
	"hms_backend/internal/repositories"
)

// --- Order DTOs ---

// OpenOrderRequest is used for opening a new order against a room.
type OpenOrderRequest struct {
	RoomID int64 `json:"room_id" binding:"required"`
}

// AddOrderDetailRequest is used for adding a line item to an order.
// Rate defaults to the item's catalog rate when not supplied.
type AddOrderDetailRequest struct {
	ItemID   int64    `json:"item_id" binding:"required"`
	Quantity int      `json:"quantity" binding:"required"`
	Rate     *float64 `json:"rate"`
}

// UpdateOrderDetailRequest is used for editing a line item. Nil fields are
// left unchanged.
type UpdateOrderDetailRequest struct {
	Quantity *int     `json:"quantity"`
	Rate     *float64 `json:"rate"`
}

// --- OrderService Interface ---
//
// Order status is read-only here: only bill creation completes an order.
type OrderService interface {
	OpenOrder(req OpenOrderRequest) (*models.Order, error)
	GetOrderByID(orderID int64, includeDetails bool) (*models.Order, error)
	GetOrders(filters models.OrderFilters) ([]models.Order, int, error)
	GetOrderTotal(orderID int64) (float64, error)
	AddOrderDetail(orderID int64, req AddOrderDetailRequest) (*models.OrderDetail, error)
	UpdateOrderDetail(detailID int64, req UpdateOrderDetailRequest) (*models.OrderDetail, error)
	RemoveOrderDetail(detailID int64) error
	DeleteOrder(orderID int64) error
}

// --- orderService Implementation ---
type orderService struct {
	orderRepo repositories.OrderRepository
	roomRepo  repositories.RoomRepository
	itemRepo  repositories.ItemRepository
	db        *sql.DB // For managing transactions
}

// NewOrderService creates a new instance of OrderService.
func NewOrderService(
	or repositories.OrderRepository,
	rr repositories.RoomRepository,
	ir repositories.ItemRepository,
	db *sql.DB,
) OrderService {
	return &orderService{
		orderRepo: or,
		roomRepo:  rr,
		itemRepo:  ir,
		db:        db,
	}
}

// OpenOrder creates a pending order and occupies the room in one
// transaction. The partial unique index on pending orders per room turns a
// concurrent double-open into a duplicate key error, reported as a conflict.
func (s *orderService) OpenOrder(req OpenOrderRequest) (*models.Order, error) {
	room, err := s.roomRepo.GetRoomByID(req.RoomID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to fetch room for order: %w", err)
	}
	if room.Status == models.RoomStatusRetired {
		return nil, ErrRoomNotFound
	}
	if room.Status == models.RoomStatusOccupied || room.ActiveOrderID != nil {
		return nil, ErrRoomOccupied
	}

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to start database transaction: %w", err)
	}
	defer tx.Rollback()

	order := models.Order{
		RoomID:      req.RoomID,
		Status:      models.OrderStatusPending,
		TotalAmount: 0,
		OrderTime:   time.Now(),
	}
	if _, err := s.orderRepo.CreateOrder(tx, &order); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, ErrRoomOccupied
		}
		return nil, fmt.Errorf("failed to create order record: %w", err)
	}

	if err := s.roomRepo.AttachOrder(tx, req.RoomID, order.ID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrRoomNotFound
		}
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, ErrRoomOccupied
		}
		return nil, fmt.Errorf("failed to attach order to room: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit order transaction: %w", err)
	}
	return &order, nil
}

func (s *orderService) GetOrderByID(orderID int64, includeDetails bool) (*models.Order, error) {
	order, err := s.orderRepo.GetOrderByID(orderID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to get order by ID: %w", err)
	}

	if includeDetails {
		details, err := s.orderRepo.GetOrderDetailsByOrderID(orderID)
		if err != nil {
			return nil, fmt.Errorf("failed to get order details for order ID %d: %w", orderID, err)
		}
		order.OrderDetails = details
	}
	return order, nil
}

func (s *orderService) GetOrders(filters models.OrderFilters) ([]models.Order, int, error) {
	if filters.Page < 1 || filters.PageSize < 1 {
		return nil, 0, fmt.Errorf("%w: page and page_size must be positive", ErrValidation)
	}
	if filters.Status != nil && *filters.Status != "" && !models.IsValidOrderStatus(*filters.Status) {
		return nil, 0, fmt.Errorf("%w: unknown order status %q", ErrValidation, *filters.Status)
	}
	orders, totalCount, err := s.orderRepo.GetOrders(filters)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get orders: %w", err)
	}
	return orders, totalCount, nil
}

// GetOrderTotal recomputes the total from the order's details. The result
// always matches the persisted total because every detail mutation updates
// both in the same transaction.
func (s *orderService) GetOrderTotal(orderID int64) (float64, error) {
	if _, err := s.orderRepo.GetOrderByID(orderID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return 0, ErrOrderNotFound
		}
		return 0, fmt.Errorf("failed to fetch order for total: %w", err)
	}
	total, err := s.orderRepo.SumDetailAmounts(s.db, orderID)
	if err != nil {
		return 0, fmt.Errorf("failed to compute order total: %w", err)
	}
	return total, nil
}

// pendingOrder fetches an order and rejects mutation of completed ones.
func (s *orderService) pendingOrder(orderID int64) (*models.Order, error) {
	order, err := s.orderRepo.GetOrderByID(orderID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to fetch order: %w", err)
	}
	if order.Status == models.OrderStatusCompleted {
		return nil, ErrOrderCompleted
	}
	return order, nil
}

// recomputeTotal re-derives the order total from its details and persists
// it, inside the caller's transaction.
func (s *orderService) recomputeTotal(tx *sql.Tx, orderID int64) error {
	total, err := s.orderRepo.SumDetailAmounts(tx, orderID)
	if err != nil {
		return fmt.Errorf("failed to recompute order total: %w", err)
	}
	if err := s.orderRepo.UpdateOrderTotal(tx, orderID, total, time.Now()); err != nil {
		return fmt.Errorf("failed to persist order total: %w", err)
	}
	return nil
}

func (s *orderService) AddOrderDetail(orderID int64, req AddOrderDetailRequest) (*models.OrderDetail, error) {
	if _, err := s.pendingOrder(orderID); err != nil {
		return nil, err
	}
	if req.Quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be greater than zero", ErrValidation)
	}

	item, err := s.itemRepo.GetItemByID(req.ItemID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to fetch item %d: %w", req.ItemID, err)
	}
	if !item.IsActive {
		return nil, fmt.Errorf("%w: item %q is not active", ErrValidation, item.ItemName)
	}

	rate := item.Rate // Rate is copied from the catalog at insertion time
	if req.Rate != nil {
		rate = *req.Rate
	}
	if rate <= 0 {
		return nil, fmt.Errorf("%w: rate must be greater than zero", ErrValidation)
	}

	detail := models.OrderDetail{
		OrderID:  orderID,
		ItemID:   req.ItemID,
		Quantity: req.Quantity,
		Rate:     rate,
		Amount:   rate * float64(req.Quantity),
	}

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := s.orderRepo.CreateOrderDetail(tx, &detail); err != nil {
		return nil, fmt.Errorf("failed to create order detail: %w", err)
	}
	if err := s.recomputeTotal(tx, orderID); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit order detail transaction: %w", err)
	}
	return &detail, nil
}

func (s *orderService) UpdateOrderDetail(detailID int64, req UpdateOrderDetailRequest) (*models.OrderDetail, error) {
	detail, err := s.orderRepo.GetOrderDetailByID(detailID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrOrderDetailNotFound
		}
		return nil, fmt.Errorf("failed to fetch order detail: %w", err)
	}
	if _, err := s.pendingOrder(detail.OrderID); err != nil {
		return nil, err
	}

	if req.Quantity != nil {
		detail.Quantity = *req.Quantity
	}
	if req.Rate != nil {
		detail.Rate = *req.Rate
	}
	if detail.Quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be greater than zero", ErrValidation)
	}
	if detail.Rate <= 0 {
		return nil, fmt.Errorf("%w: rate must be greater than zero", ErrValidation)
	}
	detail.Amount = detail.Rate * float64(detail.Quantity)

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	if err := s.orderRepo.UpdateOrderDetail(tx, detail); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrOrderDetailNotFound
		}
		return nil, fmt.Errorf("failed to update order detail: %w", err)
	}
	if err := s.recomputeTotal(tx, detail.OrderID); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit order detail transaction: %w", err)
	}
	return detail, nil
}

func (s *orderService) RemoveOrderDetail(detailID int64) error {
	detail, err := s.orderRepo.GetOrderDetailByID(detailID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrOrderDetailNotFound
		}
		return fmt.Errorf("failed to fetch order detail: %w", err)
	}
	if _, err := s.pendingOrder(detail.OrderID); err != nil {
		return err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := s.orderRepo.DeleteOrderDetail(tx, detailID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrOrderDetailNotFound
		}
		return fmt.Errorf("failed to delete order detail: %w", err)
	}
	if err := s.recomputeTotal(tx, detail.OrderID); err != nil {
		return err
	}

	return tx.Commit()
}

// DeleteOrder removes an order that has no remaining details. Deleting a
// still-pending order also frees its room, so the occupancy invariant holds.
func (s *orderService) DeleteOrder(orderID int64) error {
	order, err := s.orderRepo.GetOrderByID(orderID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrOrderNotFound
		}
		return fmt.Errorf("failed to fetch order for deletion: %w", err)
	}

	detailCount, err := s.orderRepo.CountDetailsByOrderID(orderID)
	if err != nil {
		return fmt.Errorf("failed to check order details: %w", err)
	}
	if detailCount > 0 {
		return ErrOrderHasDetails
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	if order.Status == models.OrderStatusPending {
		if err := s.roomRepo.DetachOrder(tx, order.RoomID); err != nil {
			return fmt.Errorf("failed to detach order from room: %w", err)
		}
	}
	if _, err := s.orderRepo.DeleteOrder(tx, orderID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrOrderNotFound
		}
		return fmt.Errorf("failed to delete order: %w", err)
	}

	return tx.Commit()
}
