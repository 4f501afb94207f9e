package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"hms_backend/internal/models"
)

// ItemRepository defines the interface for catalog item database operations.
type ItemRepository interface {
	CreateItem(executor SQLExecutor, item *models.Item) (int64, error)
	GetItemByID(itemID int64) (*models.Item, error)
	// GetItemByName looks an item up by its case/whitespace-normalized name,
	// skipping excludeID.
	GetItemByName(itemName string, excludeID int64) (*models.Item, error)
	GetItems(filters models.ItemFilters) ([]models.Item, int, error) // items, total count, error
	UpdateItem(executor SQLExecutor, item *models.Item) error
	DeleteItem(executor SQLExecutor, itemID int64) (int64, error)
}

type itemRepository struct {
	db *sql.DB
}

// NewItemRepository creates a new instance of ItemRepository.
func NewItemRepository(db *sql.DB) ItemRepository {
	return &itemRepository{db: db}
}

const itemColumns = `id, item_name, category, rate, is_active, created_at, updated_at`

func scanItem(row scanner) (*models.Item, error) {
	item := &models.Item{}
	err := row.Scan(
		&item.ID, &item.ItemName, &item.Category, &item.Rate, &item.IsActive,
		&item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (r *itemRepository) CreateItem(executor SQLExecutor, item *models.Item) (int64, error) {
	query := `INSERT INTO items (item_name, category, rate, is_active, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6)
	          RETURNING id`

	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now()
	}
	if item.UpdatedAt.IsZero() {
		item.UpdatedAt = time.Now()
	}

	err := executor.QueryRow(query,
		item.ItemName, item.Category, item.Rate, item.IsActive,
		item.CreatedAt, item.UpdatedAt,
	).Scan(&item.ID)
	if err != nil {
		return 0, wrapWriteError(err, "creating item")
	}
	return item.ID, nil
}

func (r *itemRepository) GetItemByID(itemID int64) (*models.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = $1`
	item, err := scanItem(r.db.QueryRow(query, itemID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting item by ID %d: %v", ErrDatabaseError, itemID, err)
	}
	return item, nil
}

func (r *itemRepository) GetItemByName(itemName string, excludeID int64) (*models.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items
	          WHERE LOWER(TRIM(item_name)) = LOWER(TRIM($1)) AND id <> $2`
	item, err := scanItem(r.db.QueryRow(query, itemName, excludeID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting item by name: %v", ErrDatabaseError, err)
	}
	return item, nil
}

func (r *itemRepository) GetItems(filters models.ItemFilters) ([]models.Item, int, error) {
	items := []models.Item{}
	totalCount := 0

	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT ` + itemColumns + `, COUNT(*) OVER() as total_count FROM items`)

	var args []interface{}
	argCounter := 1
	if filters.ActiveOnly {
		queryBuilder.WriteString(fmt.Sprintf(` WHERE is_active = $%d`, argCounter))
		args = append(args, true)
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
		return nil, 0, fmt.Errorf("%w: querying items: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		var item models.Item
		err := rows.Scan(
			&item.ID, &item.ItemName, &item.Category, &item.Rate, &item.IsActive,
			&item.CreatedAt, &item.UpdatedAt,
			&totalCount,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: scanning item: %v", ErrDatabaseError, err)
		}
		items = append(items, item)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%w: iterating item rows: %v", ErrDatabaseError, err)
	}
	return items, totalCount, nil
}

func (r *itemRepository) UpdateItem(executor SQLExecutor, item *models.Item) error {
	query := `UPDATE items SET item_name = $1, category = $2, rate = $3, is_active = $4, updated_at = $5 WHERE id = $6`
	result, err := executor.Exec(query, item.ItemName, item.Category, item.Rate, item.IsActive, time.Now(), item.ID)
	if err != nil {
		return wrapWriteError(err, fmt.Sprintf("updating item ID %d", item.ID))
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: getting rows affected for item update ID %d: %v", ErrDatabaseError, item.ID, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *itemRepository) DeleteItem(executor SQLExecutor, itemID int64) (int64, error) {
	query := `DELETE FROM items WHERE id = $1`
	result, err := executor.Exec(query, itemID)
	if err != nil {
		return 0, fmt.Errorf("%w: deleting item ID %d: %v", ErrDatabaseError, itemID, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: getting rows affected for deleting item ID %d: %v", ErrDatabaseError, itemID, err)
	}
	if rowsAffected == 0 {
		return 0, ErrNotFound
	}
	return rowsAffected, nil
}
