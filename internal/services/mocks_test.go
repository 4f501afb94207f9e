package services

import (
	"time"

	"hms_backend/internal/models"
	"hms_backend/internal/repositories"

	"github.com/stretchr/testify/mock"
)

// MockRoomRepository is a testify mock for repositories.RoomRepository.
type MockRoomRepository struct {
	mock.Mock
}

func (m *MockRoomRepository) CreateRoom(executor repositories.SQLExecutor, room *models.Room) (int64, error) {
	args := m.Called(executor, room)
	if id := args.Get(0).(int64); id != 0 {
		room.ID = id
	}
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRoomRepository) GetRoomByID(roomID int64) (*models.Room, error) {
	args := m.Called(roomID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Room), args.Error(1)
}

func (m *MockRoomRepository) GetRoomByTypeAndName(roomType, roomName string, excludeID int64) (*models.Room, error) {
	args := m.Called(roomType, roomName, excludeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Room), args.Error(1)
}

func (m *MockRoomRepository) GetRooms(filters models.RoomFilters) ([]models.Room, int, error) {
	args := m.Called(filters)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]models.Room), args.Int(1), args.Error(2)
}

func (m *MockRoomRepository) UpdateRoom(executor repositories.SQLExecutor, room *models.Room) error {
	args := m.Called(executor, room)
	return args.Error(0)
}

func (m *MockRoomRepository) DeleteRoom(executor repositories.SQLExecutor, roomID int64) error {
	args := m.Called(executor, roomID)
	return args.Error(0)
}

func (m *MockRoomRepository) RetireRoom(executor repositories.SQLExecutor, roomID int64) error {
	args := m.Called(executor, roomID)
	return args.Error(0)
}

func (m *MockRoomRepository) AttachOrder(executor repositories.SQLExecutor, roomID, orderID int64) error {
	args := m.Called(executor, roomID, orderID)
	return args.Error(0)
}

func (m *MockRoomRepository) DetachOrder(executor repositories.SQLExecutor, roomID int64) error {
	args := m.Called(executor, roomID)
	return args.Error(0)
}

// MockOrderRepository is a testify mock for repositories.OrderRepository.
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) CreateOrder(executor repositories.SQLExecutor, order *models.Order) (int64, error) {
	args := m.Called(executor, order)
	if id := args.Get(0).(int64); id != 0 {
		order.ID = id
	}
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) GetOrderByID(orderID int64) (*models.Order, error) {
	args := m.Called(orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockOrderRepository) GetOrders(filters models.OrderFilters) ([]models.Order, int, error) {
	args := m.Called(filters)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]models.Order), args.Int(1), args.Error(2)
}

func (m *MockOrderRepository) UpdateOrderStatus(executor repositories.SQLExecutor, orderID int64, newStatus models.OrderStatus, updatedAt time.Time) error {
	args := m.Called(executor, orderID, newStatus, updatedAt)
	return args.Error(0)
}

func (m *MockOrderRepository) UpdateOrderTotal(executor repositories.SQLExecutor, orderID int64, totalAmount float64, updatedAt time.Time) error {
	args := m.Called(executor, orderID, totalAmount, updatedAt)
	return args.Error(0)
}

func (m *MockOrderRepository) DeleteOrder(executor repositories.SQLExecutor, orderID int64) (int64, error) {
	args := m.Called(executor, orderID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) CountOrdersByRoomID(roomID int64) (int, error) {
	args := m.Called(roomID)
	return args.Int(0), args.Error(1)
}

func (m *MockOrderRepository) CreateOrderDetail(executor repositories.SQLExecutor, detail *models.OrderDetail) (int64, error) {
	args := m.Called(executor, detail)
	if id := args.Get(0).(int64); id != 0 {
		detail.ID = id
	}
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) GetOrderDetailByID(detailID int64) (*models.OrderDetail, error) {
	args := m.Called(detailID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.OrderDetail), args.Error(1)
}

func (m *MockOrderRepository) GetOrderDetailsByOrderID(orderID int64) ([]models.OrderDetail, error) {
	args := m.Called(orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.OrderDetail), args.Error(1)
}

func (m *MockOrderRepository) UpdateOrderDetail(executor repositories.SQLExecutor, detail *models.OrderDetail) error {
	args := m.Called(executor, detail)
	return args.Error(0)
}

func (m *MockOrderRepository) DeleteOrderDetail(executor repositories.SQLExecutor, detailID int64) (int64, error) {
	args := m.Called(executor, detailID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) SumDetailAmounts(executor repositories.SQLExecutor, orderID int64) (float64, error) {
	args := m.Called(executor, orderID)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockOrderRepository) CountDetailsByOrderID(orderID int64) (int, error) {
	args := m.Called(orderID)
	return args.Int(0), args.Error(1)
}

func (m *MockOrderRepository) CountDetailsByItemID(itemID int64) (int, error) {
	args := m.Called(itemID)
	return args.Int(0), args.Error(1)
}

// MockItemRepository is a testify mock for repositories.ItemRepository.
type MockItemRepository struct {
	mock.Mock
}

func (m *MockItemRepository) CreateItem(executor repositories.SQLExecutor, item *models.Item) (int64, error) {
	args := m.Called(executor, item)
	if id := args.Get(0).(int64); id != 0 {
		item.ID = id
	}
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockItemRepository) GetItemByID(itemID int64) (*models.Item, error) {
	args := m.Called(itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Item), args.Error(1)
}

func (m *MockItemRepository) GetItemByName(itemName string, excludeID int64) (*models.Item, error) {
	args := m.Called(itemName, excludeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Item), args.Error(1)
}

func (m *MockItemRepository) GetItems(filters models.ItemFilters) ([]models.Item, int, error) {
	args := m.Called(filters)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]models.Item), args.Int(1), args.Error(2)
}

func (m *MockItemRepository) UpdateItem(executor repositories.SQLExecutor, item *models.Item) error {
	args := m.Called(executor, item)
	return args.Error(0)
}

func (m *MockItemRepository) DeleteItem(executor repositories.SQLExecutor, itemID int64) (int64, error) {
	args := m.Called(executor, itemID)
	return args.Get(0).(int64), args.Error(1)
}

// MockBillRepository is a testify mock for repositories.BillRepository.
type MockBillRepository struct {
	mock.Mock
}

func (m *MockBillRepository) CreateBill(executor repositories.SQLExecutor, bill *models.Bill) (int64, error) {
	args := m.Called(executor, bill)
	if id := args.Get(0).(int64); id != 0 {
		bill.ID = id
	}
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBillRepository) GetBillByID(billID int64) (*models.Bill, error) {
	args := m.Called(billID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Bill), args.Error(1)
}

func (m *MockBillRepository) GetBillByOrderID(orderID int64) (*models.Bill, error) {
	args := m.Called(orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Bill), args.Error(1)
}

func (m *MockBillRepository) GetBills(filters models.BillFilters) ([]models.Bill, int, error) {
	args := m.Called(filters)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]models.Bill), args.Int(1), args.Error(2)
}

func (m *MockBillRepository) UpdateBill(executor repositories.SQLExecutor, bill *models.Bill) error {
	args := m.Called(executor, bill)
	return args.Error(0)
}

func (m *MockBillRepository) DeleteBill(executor repositories.SQLExecutor, billID int64) (int64, error) {
	args := m.Called(executor, billID)
	return args.Get(0).(int64), args.Error(1)
}

// MockAuthRepository is a testify mock for repositories.AuthRepository.
type MockAuthRepository struct {
	mock.Mock
}

func (m *MockAuthRepository) CreateUser(executor repositories.SQLExecutor, user *models.User, hashedPassword string) (int64, error) {
	args := m.Called(executor, user, hashedPassword)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAuthRepository) FindUserByUsername(username string) (*models.User, string, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*models.User), args.String(1), args.Error(2)
}

func (m *MockAuthRepository) FindUserByID(userID int64) (*models.User, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}
