package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"hms_backend/internal/models"
)

// OrderRepository defines the interface for order and order-detail database
// operations. Write methods accept an SQLExecutor so services can run them
// inside a transaction together with room and bill writes.
type OrderRepository interface {
	// Order methods
	CreateOrder(executor SQLExecutor, order *models.Order) (int64, error)
	GetOrderByID(orderID int64) (*models.Order, error)
	GetOrders(filters models.OrderFilters) ([]models.Order, int, error) // orders, total count, error
	UpdateOrderStatus(executor SQLExecutor, orderID int64, newStatus models.OrderStatus, updatedAt time.Time) error
	UpdateOrderTotal(executor SQLExecutor, orderID int64, totalAmount float64, updatedAt time.Time) error
	DeleteOrder(executor SQLExecutor, orderID int64) (int64, error)
	CountOrdersByRoomID(roomID int64) (int, error)

	// OrderDetail methods
	CreateOrderDetail(executor SQLExecutor, detail *models.OrderDetail) (int64, error)
	GetOrderDetailByID(detailID int64) (*models.OrderDetail, error)
	GetOrderDetailsByOrderID(orderID int64) ([]models.OrderDetail, error)
	UpdateOrderDetail(executor SQLExecutor, detail *models.OrderDetail) error
	DeleteOrderDetail(executor SQLExecutor, detailID int64) (int64, error)
	// SumDetailAmounts recomputes the order total from its details. It takes
	// the executor so the recompute sees uncommitted detail writes of the
	// surrounding transaction.
	SumDetailAmounts(executor SQLExecutor, orderID int64) (float64, error)
	CountDetailsByOrderID(orderID int64) (int, error)
	CountDetailsByItemID(itemID int64) (int, error)
}

type orderRepository struct {
	db *sql.DB
}

// NewOrderRepository creates a new instance of OrderRepository.
func NewOrderRepository(db *sql.DB) OrderRepository {
	return &orderRepository{db: db}
}

// --- Order Methods ---

func (r *orderRepository) CreateOrder(executor SQLExecutor, order *models.Order) (int64, error) {
	query := `INSERT INTO orders (room_id, status, total_amount, order_time, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6)
	          RETURNING id`

	if order.OrderTime.IsZero() {
		order.OrderTime = time.Now()
	}
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now()
	}
	if order.UpdatedAt.IsZero() {
		order.UpdatedAt = time.Now()
	}

	err := executor.QueryRow(query,
		order.RoomID, order.Status, order.TotalAmount, order.OrderTime,
		order.CreatedAt, order.UpdatedAt,
	).Scan(&order.ID)
	if err != nil {
		return 0, wrapWriteError(err, "creating order")
	}
	return order.ID, nil
}

func (r *orderRepository) GetOrderByID(orderID int64) (*models.Order, error) {
	order := &models.Order{}
	query := `SELECT id, room_id, status, total_amount, order_time, created_at, updated_at
	          FROM orders
	          WHERE id = $1`
	err := r.db.QueryRow(query, orderID).Scan(
		&order.ID, &order.RoomID, &order.Status, &order.TotalAmount, &order.OrderTime,
		&order.CreatedAt, &order.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting order by ID %d: %v", ErrDatabaseError, orderID, err)
	}
	return order, nil
}

func (r *orderRepository) GetOrders(filters models.OrderFilters) ([]models.Order, int, error) {
	orders := []models.Order{}
	totalCount := 0

	var queryBuilder strings.Builder
	queryBuilder.WriteString(`
        SELECT o.id, o.room_id, o.status, o.total_amount, o.order_time, o.created_at, o.updated_at,
               r.room_name, r.room_type,
               COUNT(*) OVER() as total_count
        FROM orders o
        LEFT JOIN rooms r ON o.room_id = r.id
    `)

	var conditions []string
	var args []interface{}
	argCounter := 1

	if filters.RoomID != nil {
		conditions = append(conditions, fmt.Sprintf("o.room_id = $%d", argCounter))
		args = append(args, *filters.RoomID)
		argCounter++
	}
	if filters.Status != nil && *filters.Status != "" {
		conditions = append(conditions, fmt.Sprintf("o.status = $%d", argCounter))
		args = append(args, *filters.Status)
		argCounter++
	}

	if len(conditions) > 0 {
		queryBuilder.WriteString(" WHERE " + strings.Join(conditions, " AND "))
	}
	queryBuilder.WriteString(" ORDER BY o.id")

	if filters.PageSize > 0 {
		queryBuilder.WriteString(fmt.Sprintf(" LIMIT $%d", argCounter))
		args = append(args, filters.PageSize)
		argCounter++
		if filters.Page > 0 {
			queryBuilder.WriteString(fmt.Sprintf(" OFFSET $%d", argCounter))
			args = append(args, (filters.Page-1)*filters.PageSize)
		}
	}

	rows, err := r.db.Query(queryBuilder.String(), args...)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: querying orders: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		var o models.Order
		var roomName, roomType sql.NullString

		err := rows.Scan(
			&o.ID, &o.RoomID, &o.Status, &o.TotalAmount, &o.OrderTime,
			&o.CreatedAt, &o.UpdatedAt,
			&roomName, &roomType,
			&totalCount,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: scanning order: %v", ErrDatabaseError, err)
		}

		if roomName.Valid {
			o.Room = &models.Room{
				ID:       o.RoomID,
				RoomName: roomName.String,
				RoomType: roomType.String,
			}
		}
		orders = append(orders, o)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%w: iterating order rows: %v", ErrDatabaseError, err)
	}
	return orders, totalCount, nil
}

func (r *orderRepository) UpdateOrderStatus(executor SQLExecutor, orderID int64, newStatus models.OrderStatus, updatedAt time.Time) error {
	query := `UPDATE orders SET status = $1, updated_at = $2 WHERE id = $3`
	result, err := executor.Exec(query, newStatus, updatedAt, orderID)
	if err != nil {
		return wrapWriteError(err, fmt.Sprintf("updating order status for ID %d", orderID))
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: getting rows affected for order status update ID %d: %v", ErrDatabaseError, orderID, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *orderRepository) UpdateOrderTotal(executor SQLExecutor, orderID int64, totalAmount float64, updatedAt time.Time) error {
	query := `UPDATE orders SET total_amount = $1, updated_at = $2 WHERE id = $3`
	result, err := executor.Exec(query, totalAmount, updatedAt, orderID)
	if err != nil {
		return fmt.Errorf("%w: updating order total for ID %d: %v", ErrDatabaseError, orderID, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: getting rows affected for order total update ID %d: %v", ErrDatabaseError, orderID, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *orderRepository) DeleteOrder(executor SQLExecutor, orderID int64) (int64, error) {
	query := `DELETE FROM orders WHERE id = $1`
	result, err := executor.Exec(query, orderID)
	if err != nil {
		return 0, fmt.Errorf("%w: deleting order ID %d: %v", ErrDatabaseError, orderID, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: getting rows affected for deleting order ID %d: %v", ErrDatabaseError, orderID, err)
	}
	if rowsAffected == 0 {
		return 0, ErrNotFound
	}
	return rowsAffected, nil
}

func (r *orderRepository) CountOrdersByRoomID(roomID int64) (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM orders WHERE room_id = $1`, roomID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("%w: counting orders for room ID %d: %v", ErrDatabaseError, roomID, err)
	}
	return count, nil
}

// --- OrderDetail Methods ---

func (r *orderRepository) CreateOrderDetail(executor SQLExecutor, detail *models.OrderDetail) (int64, error) {
	query := `INSERT INTO order_details (order_id, item_id, quantity, rate, amount, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)
	          RETURNING id`
	if detail.CreatedAt.IsZero() {
		detail.CreatedAt = time.Now()
	}
	if detail.UpdatedAt.IsZero() {
		detail.UpdatedAt = time.Now()
	}

	err := executor.QueryRow(query,
		detail.OrderID, detail.ItemID, detail.Quantity, detail.Rate, detail.Amount,
		detail.CreatedAt, detail.UpdatedAt,
	).Scan(&detail.ID)
	if err != nil {
		return 0, wrapWriteError(err, "creating order detail")
	}
	return detail.ID, nil
}

func (r *orderRepository) GetOrderDetailByID(detailID int64) (*models.OrderDetail, error) {
	detail := &models.OrderDetail{}
	query := `SELECT id, order_id, item_id, quantity, rate, amount, created_at, updated_at
	          FROM order_details
	          WHERE id = $1`
	err := r.db.QueryRow(query, detailID).Scan(
		&detail.ID, &detail.OrderID, &detail.ItemID, &detail.Quantity, &detail.Rate, &detail.Amount,
		&detail.CreatedAt, &detail.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting order detail by ID %d: %v", ErrDatabaseError, detailID, err)
	}
	return detail, nil
}

func (r *orderRepository) GetOrderDetailsByOrderID(orderID int64) ([]models.OrderDetail, error) {
	details := []models.OrderDetail{}
	query := `SELECT od.id, od.order_id, od.item_id, od.quantity, od.rate, od.amount, od.created_at, od.updated_at,
	                 i.item_name, i.category
	          FROM order_details od
	          LEFT JOIN items i ON od.item_id = i.id
	          WHERE od.order_id = $1
	          ORDER BY od.id`

	rows, err := r.db.Query(query, orderID)
	if err != nil {
		return nil, fmt.Errorf("%w: querying order details for order ID %d: %v", ErrDatabaseError, orderID, err)
	}
	defer rows.Close()

	for rows.Next() {
		var d models.OrderDetail
		var itemName, category sql.NullString
		err := rows.Scan(
			&d.ID, &d.OrderID, &d.ItemID, &d.Quantity, &d.Rate, &d.Amount,
			&d.CreatedAt, &d.UpdatedAt,
			&itemName, &category,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanning order detail: %v", ErrDatabaseError, err)
		}
		if itemName.Valid {
			d.Item = &models.Item{
				ID:       d.ItemID,
				ItemName: itemName.String,
				Category: category.String,
			}
		}
		details = append(details, d)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating order detail rows: %v", ErrDatabaseError, err)
	}
	return details, nil
}

func (r *orderRepository) UpdateOrderDetail(executor SQLExecutor, detail *models.OrderDetail) error {
	query := `UPDATE order_details SET quantity = $1, rate = $2, amount = $3, updated_at = $4 WHERE id = $5`
	result, err := executor.Exec(query, detail.Quantity, detail.Rate, detail.Amount, time.Now(), detail.ID)
	if err != nil {
		return fmt.Errorf("%w: updating order detail ID %d: %v", ErrDatabaseError, detail.ID, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: getting rows affected for order detail update ID %d: %v", ErrDatabaseError, detail.ID, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *orderRepository) DeleteOrderDetail(executor SQLExecutor, detailID int64) (int64, error) {
	query := `DELETE FROM order_details WHERE id = $1`
	result, err := executor.Exec(query, detailID)
	if err != nil {
		return 0, fmt.Errorf("%w: deleting order detail ID %d: %v", ErrDatabaseError, detailID, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: getting rows affected for deleting order detail ID %d: %v", ErrDatabaseError, detailID, err)
	}
	if rowsAffected == 0 {
		return 0, ErrNotFound
	}
	return rowsAffected, nil
}

func (r *orderRepository) SumDetailAmounts(executor SQLExecutor, orderID int64) (float64, error) {
	var total float64
	err := executor.QueryRow(`SELECT COALESCE(SUM(amount), 0) FROM order_details WHERE order_id = $1`, orderID).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("%w: summing detail amounts for order ID %d: %v", ErrDatabaseError, orderID, err)
	}
	return total, nil
}

func (r *orderRepository) CountDetailsByOrderID(orderID int64) (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM order_details WHERE order_id = $1`, orderID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("%w: counting order details for order ID %d: %v", ErrDatabaseError, orderID, err)
	}
	return count, nil
}

func (r *orderRepository) CountDetailsByItemID(itemID int64) (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM order_details WHERE item_id = $1`, itemID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("%w: counting order details for item ID %d: %v", ErrDatabaseError, itemID, err)
	}
	return count, nil
}
