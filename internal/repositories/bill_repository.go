package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"hms_backend/internal/models"
)

// BillRepository defines the interface for bill-related database operations.
// The bills.order_id unique constraint backs the at-most-one-bill-per-order
// invariant; its violation surfaces as ErrDuplicateKey.
type BillRepository interface {
	CreateBill(executor SQLExecutor, bill *models.Bill) (int64, error)
	GetBillByID(billID int64) (*models.Bill, error)
	GetBillByOrderID(orderID int64) (*models.Bill, error)
	GetBills(filters models.BillFilters) ([]models.Bill, int, error) // bills, total count, error
	UpdateBill(executor SQLExecutor, bill *models.Bill) error
	DeleteBill(executor SQLExecutor, billID int64) (int64, error)
}

type billRepository struct {
	db *sql.DB
}

// NewBillRepository creates a new instance of BillRepository.
func NewBillRepository(db *sql.DB) BillRepository {
	return &billRepository{db: db}
}

const billColumns = `id, order_id, total_amount, discount_amount, tax_amount, final_amount, payment_status, bill_time, created_at, updated_at`

func scanBill(row scanner) (*models.Bill, error) {
	bill := &models.Bill{}
	err := row.Scan(
		&bill.ID, &bill.OrderID, &bill.TotalAmount, &bill.DiscountAmount, &bill.TaxAmount,
		&bill.FinalAmount, &bill.PaymentStatus, &bill.BillTime, &bill.CreatedAt, &bill.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return bill, nil
}

func (r *billRepository) CreateBill(executor SQLExecutor, bill *models.Bill) (int64, error) {
	query := `INSERT INTO bills (order_id, total_amount, discount_amount, tax_amount, final_amount, payment_status, bill_time, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	          RETURNING id`

	if bill.BillTime.IsZero() {
		bill.BillTime = time.Now()
	}
	if bill.CreatedAt.IsZero() {
		bill.CreatedAt = time.Now()
	}
	if bill.UpdatedAt.IsZero() {
		bill.UpdatedAt = time.Now()
	}

	err := executor.QueryRow(query,
		bill.OrderID, bill.TotalAmount, bill.DiscountAmount, bill.TaxAmount,
		bill.FinalAmount, bill.PaymentStatus, bill.BillTime, bill.CreatedAt, bill.UpdatedAt,
	).Scan(&bill.ID)
	if err != nil {
		return 0, wrapWriteError(err, "creating bill")
	}
	return bill.ID, nil
}

func (r *billRepository) GetBillByID(billID int64) (*models.Bill, error) {
	query := `SELECT ` + billColumns + ` FROM bills WHERE id = $1`
	bill, err := scanBill(r.db.QueryRow(query, billID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting bill by ID %d: %v", ErrDatabaseError, billID, err)
	}
	return bill, nil
}

func (r *billRepository) GetBillByOrderID(orderID int64) (*models.Bill, error) {
	query := `SELECT ` + billColumns + ` FROM bills WHERE order_id = $1`
	bill, err := scanBill(r.db.QueryRow(query, orderID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting bill by order ID %d: %v", ErrDatabaseError, orderID, err)
	}
	return bill, nil
}

func (r *billRepository) GetBills(filters models.BillFilters) ([]models.Bill, int, error) {
	bills := []models.Bill{}
	totalCount := 0

	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT ` + billColumns + `, COUNT(*) OVER() as total_count FROM bills`)

	var args []interface{}
	argCounter := 1
	if filters.OrderID != nil {
		queryBuilder.WriteString(fmt.Sprintf(` WHERE order_id = $%d`, argCounter))
		args = append(args, *filters.OrderID)
		argCounter++
	}

	queryBuilder.WriteString(` ORDER BY id`)
	if filters.PageSize > 0 {
		queryBuilder.WriteString(fmt.Sprintf(` LIMIT $%d`, argCounter))
		args = append(args, filters.PageSize)
		argCounter++
		if filters.Page > 0 {
			queryBuilder.WriteString(fmt.Sprintf(` OFFSET $%d`, argCounter))
			args = append(args, (filters.Page-1)*filters.PageSize)
		}
	}

	rows, err := r.db.Query(queryBuilder.String(), args...)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: querying bills: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		var b models.Bill
		err := rows.Scan(
			&b.ID, &b.OrderID, &b.TotalAmount, &b.DiscountAmount, &b.TaxAmount,
			&b.FinalAmount, &b.PaymentStatus, &b.BillTime, &b.CreatedAt, &b.UpdatedAt,
			&totalCount,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: scanning bill: %v", ErrDatabaseError, err)
		}
		bills = append(bills, b)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%w: iterating bill rows: %v", ErrDatabaseError, err)
	}
	return bills, totalCount, nil
}

// UpdateBill corrects discount, tax, final amount and payment status.
// The order linkage and the total snapshot are immutable after creation.
func (r *billRepository) UpdateBill(executor SQLExecutor, bill *models.Bill) error {
	query := `UPDATE bills SET discount_amount = $1, tax_amount = $2, final_amount = $3, payment_status = $4, updated_at = $5 WHERE id = $6`
	result, err := executor.Exec(query, bill.DiscountAmount, bill.TaxAmount, bill.FinalAmount, bill.PaymentStatus, time.Now(), bill.ID)
	if err != nil {
		return fmt.Errorf("%w: updating bill ID %d: %v", ErrDatabaseError, bill.ID, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: getting rows affected for bill update ID %d: %v", ErrDatabaseError, bill.ID, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *billRepository) DeleteBill(executor SQLExecutor, billID int64) (int64, error) {
	query := `DELETE FROM bills WHERE id = $1`
	result, err := executor.Exec(query, billID)
	if err != nil {
		return 0, fmt.Errorf("%w: deleting bill ID %d: %v", ErrDatabaseError, billID, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: getting rows affected for deleting bill ID %d: %v", ErrDatabaseError, billID, err)
	}
	if rowsAffected == 0 {
		return 0, ErrNotFound
	}
	return rowsAffected, nil
}
