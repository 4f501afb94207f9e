package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"hms_backend/internal/models"
	"hms_backend/internal/repositories"
	"hms_backend/pkg/utils"
)

const (
	MaxItemNameLength = 100
	MaxCategoryLength = 50
)

// --- Item DTOs ---

// CreateItemRequest is used for creating a new catalog item.
type CreateItemRequest struct {
	ItemName string  `json:"item_name" binding:"required"`
	Category string  `json:"category" binding:"required"`
	Rate     float64 `json:"rate" binding:"required"`
}

// UpdateItemRequest is used for updating an existing catalog item.
// Nil fields are left unchanged.
type UpdateItemRequest struct {
	ItemName *string  `json:"item_name"`
	Category *string  `json:"category"`
	Rate     *float64 `json:"rate"`
	IsActive *bool    `json:"is_active"`
}

// --- ItemService Interface ---
type ItemService interface {
	CreateItem(req CreateItemRequest) (*models.Item, error)
	GetItemByID(itemID int64) (*models.Item, error)
	GetItems(filters models.ItemFilters) ([]models.Item, int, error)
	UpdateItem(itemID int64, req UpdateItemRequest) (*models.Item, error)
	DeleteItem(itemID int64) error
}

// --- itemService Implementation ---
type itemService struct {
	itemRepo  repositories.ItemRepository
	orderRepo repositories.OrderRepository // for the delete-while-referenced guard
	db        *sql.DB
}

// NewItemService creates a new instance of ItemService.
func NewItemService(ir repositories.ItemRepository, or repositories.OrderRepository, db *sql.DB) ItemService {
	return &itemService{
		itemRepo:  ir,
		orderRepo: or,
		db:        db,
	}
}

func validateItemFields(itemName, category string, rate float64) error {
	if utils.IsEmpty(itemName) {
		return fmt.Errorf("%w: item name is required", ErrValidation)
	}
	if utils.ExceedsLength(itemName, MaxItemNameLength) {
		return fmt.Errorf("%w: item name cannot exceed %d characters", ErrValidation, MaxItemNameLength)
	}
	if utils.IsEmpty(category) {
		return fmt.Errorf("%w: item category is required", ErrValidation)
	}
	if utils.ExceedsLength(category, MaxCategoryLength) {
		return fmt.Errorf("%w: category cannot exceed %d characters", ErrValidation, MaxCategoryLength)
	}
	if !utils.IsPositive(rate) {
		return fmt.Errorf("%w: rate must be greater than zero", ErrValidation)
	}
	return nil
}

// checkItemNameUnique ensures no other item carries the same normalized name.
func (s *itemService) checkItemNameUnique(itemName string, excludeID int64) error {
	_, err := s.itemRepo.GetItemByName(utils.NormalizeName(itemName), excludeID)
	if err == nil {
		return ErrItemNameExists
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return fmt.Errorf("failed to check item name uniqueness: %w", err)
	}
	return nil
}

func (s *itemService) CreateItem(req CreateItemRequest) (*models.Item, error) {
	if err := validateItemFields(req.ItemName, req.Category, req.Rate); err != nil {
		return nil, err
	}
	if err := s.checkItemNameUnique(req.ItemName, 0); err != nil {
		return nil, err
	}

	item := models.Item{
		ItemName: strings.TrimSpace(req.ItemName),
		Category: strings.TrimSpace(req.Category),
		Rate:     req.Rate,
		IsActive: true, // Items are created active
	}

	_, err := s.itemRepo.CreateItem(s.db, &item)
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, ErrItemNameExists
		}
		return nil, fmt.Errorf("failed to create item: %w", err)
	}
	return &item, nil
}

func (s *itemService) GetItemByID(itemID int64) (*models.Item, error) {
	item, err := s.itemRepo.GetItemByID(itemID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to get item by ID: %w", err)
	}
	return item, nil
}

func (s *itemService) GetItems(filters models.ItemFilters) ([]models.Item, int, error) {
	if !utils.IsValidPagination(filters.Page, filters.PageSize) {
		return nil, 0, fmt.Errorf("%w: page and page_size must be positive", ErrValidation)
	}
	items, totalCount, err := s.itemRepo.GetItems(filters)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get items: %w", err)
	}
	return items, totalCount, nil
}

func (s *itemService) UpdateItem(itemID int64, req UpdateItemRequest) (*models.Item, error) {
	item, err := s.GetItemByID(itemID)
	if err != nil {
		return nil, err
	}

	if req.ItemName != nil {
		item.ItemName = strings.TrimSpace(*req.ItemName)
	}
	if req.Category != nil {
		item.Category = strings.TrimSpace(*req.Category)
	}
	if req.Rate != nil {
		item.Rate = *req.Rate
	}
	if req.IsActive != nil {
		item.IsActive = *req.IsActive
	}

	if err := validateItemFields(item.ItemName, item.Category, item.Rate); err != nil {
		return nil, err
	}
	if err := s.checkItemNameUnique(item.ItemName, itemID); err != nil {
		return nil, err
	}

	if err := s.itemRepo.UpdateItem(s.db, item); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, ErrItemNameExists
		}
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to update item: %w", err)
	}
	return item, nil
}

func (s *itemService) DeleteItem(itemID int64) error {
	if _, err := s.GetItemByID(itemID); err != nil {
		return err
	}

	refCount, err := s.orderRepo.CountDetailsByItemID(itemID)
	if err != nil {
		return fmt.Errorf("failed to check item references: %w", err)
	}
	if refCount > 0 {
		return ErrItemInUse
	}

	if _, err := s.itemRepo.DeleteItem(s.db, itemID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrItemNotFound
		}
		return fmt.Errorf("failed to delete item: %w", err)
	}
	return nil
}
