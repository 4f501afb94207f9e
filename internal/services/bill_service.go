package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"hms_backend/internal/models"
	"hms_backend/internal/repositories"
	"hms_backend/pkg/utils"
)

const DefaultPaymentStatus = "Pending"

// --- Bill DTOs ---

// CreateBillRequest is used for closing an order with a bill.
type CreateBillRequest struct {
	OrderID        int64   `json:"order_id" binding:"required"`
	DiscountAmount float64 `json:"discount_amount"`
	TaxAmount      float64 `json:"tax_amount"`
	PaymentStatus  string  `json:"payment_status"`
}

// UpdateBillRequest is used for correcting a bill after the fact. The order
// linkage and the total snapshot cannot be changed; closing is
// one-directional and never re-opens the order or re-occupies the room.
type UpdateBillRequest struct {
	DiscountAmount *float64 `json:"discount_amount"`
	TaxAmount      *float64 `json:"tax_amount"`
	PaymentStatus  *string  `json:"payment_status"`
}

// --- BillService Interface ---
type BillService interface {
	CreateBill(req CreateBillRequest) (*models.Bill, error)
	GetBillByID(billID int64) (*models.Bill, error)
	GetBills(filters models.BillFilters) ([]models.Bill, int, error)
	UpdateBill(billID int64, req UpdateBillRequest) (*models.Bill, error)
	DeleteBill(billID int64) error
}

// --- billService Implementation ---
type billService struct {
	billRepo  repositories.BillRepository
	orderRepo repositories.OrderRepository
	roomRepo  repositories.RoomRepository
	db        *sql.DB // For managing transactions
}

// NewBillService creates a new instance of BillService.
func NewBillService(
	br repositories.BillRepository,
	or repositories.OrderRepository,
	rr repositories.RoomRepository,
	db *sql.DB,
) BillService {
	return &billService{
		billRepo:  br,
		orderRepo: or,
		roomRepo:  rr,
		db:        db,
	}
}

// CreateBill closes an order: it persists the bill, marks the order
// completed and frees the room as a single transaction. A bill can never
// exist for an order that is still pending, and a room is never left
// occupied for a completed order.
func (s *billService) CreateBill(req CreateBillRequest) (*models.Bill, error) {
	if req.DiscountAmount < 0 {
		return nil, fmt.Errorf("%w: discount amount cannot be negative", ErrValidation)
	}
	if req.TaxAmount < 0 {
		return nil, fmt.Errorf("%w: tax amount cannot be negative", ErrValidation)
	}

	order, err := s.orderRepo.GetOrderByID(req.OrderID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to fetch order for billing: %w", err)
	}
	if order.Status == models.OrderStatusCompleted {
		return nil, ErrOrderCompleted
	}

	if _, err := s.billRepo.GetBillByOrderID(req.OrderID); err == nil {
		return nil, ErrBillExists
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, fmt.Errorf("failed to check for existing bill: %w", err)
	}

	paymentStatus := strings.TrimSpace(req.PaymentStatus)
	if utils.IsEmpty(paymentStatus) {
		paymentStatus = DefaultPaymentStatus
	}

	bill := models.Bill{
		OrderID:        req.OrderID,
		TotalAmount:    order.TotalAmount, // Snapshotted at close time
		DiscountAmount: req.DiscountAmount,
		TaxAmount:      req.TaxAmount,
		FinalAmount:    order.TotalAmount - req.DiscountAmount + req.TaxAmount,
		PaymentStatus:  paymentStatus,
		BillTime:       time.Now(),
	}

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to start database transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := s.billRepo.CreateBill(tx, &bill); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, ErrBillExists
		}
		return nil, fmt.Errorf("failed to create bill record: %w", err)
	}
	if err := s.orderRepo.UpdateOrderStatus(tx, order.ID, models.OrderStatusCompleted, time.Now()); err != nil {
		return nil, fmt.Errorf("failed to complete order %d: %w", order.ID, err)
	}
	if err := s.roomRepo.DetachOrder(tx, order.RoomID); err != nil {
		return nil, fmt.Errorf("failed to free room %d: %w", order.RoomID, err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit billing transaction: %w", err)
	}
	return &bill, nil
}

func (s *billService) GetBillByID(billID int64) (*models.Bill, error) {
	bill, err := s.billRepo.GetBillByID(billID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrBillNotFound
		}
		return nil, fmt.Errorf("failed to get bill by ID: %w", err)
	}
	return bill, nil
}

func (s *billService) GetBills(filters models.BillFilters) ([]models.Bill, int, error) {
	if !utils.IsValidPagination(filters.Page, filters.PageSize) {
		return nil, 0, fmt.Errorf("%w: page and page_size must be positive", ErrValidation)
	}
	bills, totalCount, err := s.billRepo.GetBills(filters)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get bills: %w", err)
	}
	return bills, totalCount, nil
}

func (s *billService) UpdateBill(billID int64, req UpdateBillRequest) (*models.Bill, error) {
	bill, err := s.GetBillByID(billID)
	if err != nil {
		return nil, err
	}

	if req.DiscountAmount != nil {
		bill.DiscountAmount = *req.DiscountAmount
	}
	if req.TaxAmount != nil {
		bill.TaxAmount = *req.TaxAmount
	}
	if req.PaymentStatus != nil {
		bill.PaymentStatus = strings.TrimSpace(*req.PaymentStatus)
	}

	if bill.DiscountAmount < 0 {
		return nil, fmt.Errorf("%w: discount amount cannot be negative", ErrValidation)
	}
	if bill.TaxAmount < 0 {
		return nil, fmt.Errorf("%w: tax amount cannot be negative", ErrValidation)
	}
	if utils.IsEmpty(bill.PaymentStatus) {
		return nil, fmt.Errorf("%w: payment status is required", ErrValidation)
	}
	bill.FinalAmount = bill.TotalAmount - bill.DiscountAmount + bill.TaxAmount

	if err := s.billRepo.UpdateBill(s.db, bill); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrBillNotFound
		}
		return nil, fmt.Errorf("failed to update bill: %w", err)
	}
	return bill, nil
}

// DeleteBill removes the bill record only. The order stays completed and
// the room stays as it is.
func (s *billService) DeleteBill(billID int64) error {
	if _, err := s.billRepo.DeleteBill(s.db, billID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrBillNotFound
		}
		return fmt.Errorf("failed to delete bill: %w", err)
	}
	return nil
}
