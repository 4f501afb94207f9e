package services

import (
	"testing"

	"hms_backend/internal/models"
	"hms_backend/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newBillServiceForTest(t *testing.T) (BillService, *MockBillRepository, *MockOrderRepository, *MockRoomRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, dbMock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	billRepo := new(MockBillRepository)
	orderRepo := new(MockOrderRepository)
	roomRepo := new(MockRoomRepository)
	svc := NewBillService(billRepo, orderRepo, roomRepo, db)
	return svc, billRepo, orderRepo, roomRepo, dbMock
}

func TestCreateBill_ClosesOrderAndFreesRoom(t *testing.T) {
	svc, billRepo, orderRepo, roomRepo, dbMock := newBillServiceForTest(t)

	orderRepo.On("GetOrderByID", int64(10)).Return(&models.Order{
		ID: 10, RoomID: 1, Status: models.OrderStatusPending, TotalAmount: 40.00,
	}, nil)
	billRepo.On("GetBillByOrderID", int64(10)).Return(nil, repositories.ErrNotFound)

	dbMock.ExpectBegin()
	billRepo.On("CreateBill", mock.Anything, mock.MatchedBy(func(b *models.Bill) bool {
		return b.OrderID == 10 && b.TotalAmount == 40.00 && b.FinalAmount == 37.00 &&
			b.DiscountAmount == 5.00 && b.TaxAmount == 2.00
	})).Return(int64(20), nil)
	orderRepo.On("UpdateOrderStatus", mock.Anything, int64(10), models.OrderStatusCompleted, mock.AnythingOfType("time.Time")).Return(nil)
	roomRepo.On("DetachOrder", mock.Anything, int64(1)).Return(nil)
	dbMock.ExpectCommit()

	bill, err := svc.CreateBill(CreateBillRequest{OrderID: 10, DiscountAmount: 5.00, TaxAmount: 2.00})

	assert.NoError(t, err)
	assert.Equal(t, int64(20), bill.ID)
	assert.Equal(t, 40.00, bill.TotalAmount)
	assert.Equal(t, 37.00, bill.FinalAmount) // 40.00 - 5.00 + 2.00
	assert.Equal(t, DefaultPaymentStatus, bill.PaymentStatus)
	assert.NoError(t, dbMock.ExpectationsWereMet())
	billRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	roomRepo.AssertExpectations(t)
}

func TestCreateBill_OrderNotFound(t *testing.T) {
	svc, _, orderRepo, _, _ := newBillServiceForTest(t)

	orderRepo.On("GetOrderByID", int64(99)).Return(nil, repositories.ErrNotFound)

	_, err := svc.CreateBill(CreateBillRequest{OrderID: 99})
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestCreateBill_CompletedOrderRejected(t *testing.T) {
	svc, billRepo, orderRepo, _, _ := newBillServiceForTest(t)

	orderRepo.On("GetOrderByID", int64(10)).Return(&models.Order{ID: 10, Status: models.OrderStatusCompleted}, nil)

	_, err := svc.CreateBill(CreateBillRequest{OrderID: 10})

	assert.ErrorIs(t, err, ErrOrderCompleted)
	billRepo.AssertNotCalled(t, "CreateBill", mock.Anything, mock.Anything)
}

func TestCreateBill_SecondBillRejected(t *testing.T) {
	svc, billRepo, orderRepo, _, _ := newBillServiceForTest(t)

	orderRepo.On("GetOrderByID", int64(10)).Return(&models.Order{ID: 10, Status: models.OrderStatusPending, TotalAmount: 40.00}, nil)
	billRepo.On("GetBillByOrderID", int64(10)).Return(&models.Bill{ID: 20, OrderID: 10}, nil)

	_, err := svc.CreateBill(CreateBillRequest{OrderID: 10})
	assert.ErrorIs(t, err, ErrBillExists)
}

// The unique constraint on order_id backs up the pre-check under concurrency.
func TestCreateBill_ConcurrentDuplicateConflicts(t *testing.T) {
	svc, billRepo, orderRepo, _, dbMock := newBillServiceForTest(t)

	orderRepo.On("GetOrderByID", int64(10)).Return(&models.Order{ID: 10, RoomID: 1, Status: models.OrderStatusPending, TotalAmount: 40.00}, nil)
	billRepo.On("GetBillByOrderID", int64(10)).Return(nil, repositories.ErrNotFound)

	dbMock.ExpectBegin()
	billRepo.On("CreateBill", mock.Anything, mock.AnythingOfType("*models.Bill")).Return(int64(0), repositories.ErrDuplicateKey)
	dbMock.ExpectRollback()

	_, err := svc.CreateBill(CreateBillRequest{OrderID: 10})

	assert.ErrorIs(t, err, ErrBillExists)
	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestCreateBill_NegativeAdjustmentsRejected(t *testing.T) {
	svc, _, _, _, _ := newBillServiceForTest(t)

	_, err := svc.CreateBill(CreateBillRequest{OrderID: 10, DiscountAmount: -1.00})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.CreateBill(CreateBillRequest{OrderID: 10, TaxAmount: -0.50})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreateBill_ZeroTotalOrder(t *testing.T) {
	svc, billRepo, orderRepo, roomRepo, dbMock := newBillServiceForTest(t)

	orderRepo.On("GetOrderByID", int64(10)).Return(&models.Order{
		ID: 10, RoomID: 1, Status: models.OrderStatusPending, TotalAmount: 0,
	}, nil)
	billRepo.On("GetBillByOrderID", int64(10)).Return(nil, repositories.ErrNotFound)

	dbMock.ExpectBegin()
	billRepo.On("CreateBill", mock.Anything, mock.MatchedBy(func(b *models.Bill) bool {
		return b.TotalAmount == 0 && b.FinalAmount == 0
	})).Return(int64(21), nil)
	orderRepo.On("UpdateOrderStatus", mock.Anything, int64(10), models.OrderStatusCompleted, mock.AnythingOfType("time.Time")).Return(nil)
	roomRepo.On("DetachOrder", mock.Anything, int64(1)).Return(nil)
	dbMock.ExpectCommit()

	bill, err := svc.CreateBill(CreateBillRequest{OrderID: 10})

	assert.NoError(t, err)
	assert.Equal(t, 0.0, bill.FinalAmount)
}

func TestCreateBill_RoomDetachFailureRollsBack(t *testing.T) {
	svc, billRepo, orderRepo, roomRepo, dbMock := newBillServiceForTest(t)

	orderRepo.On("GetOrderByID", int64(10)).Return(&models.Order{
		ID: 10, RoomID: 1, Status: models.OrderStatusPending, TotalAmount: 40.00,
	}, nil)
	billRepo.On("GetBillByOrderID", int64(10)).Return(nil, repositories.ErrNotFound)

	dbMock.ExpectBegin()
	billRepo.On("CreateBill", mock.Anything, mock.AnythingOfType("*models.Bill")).Return(int64(20), nil)
	orderRepo.On("UpdateOrderStatus", mock.Anything, int64(10), models.OrderStatusCompleted, mock.AnythingOfType("time.Time")).Return(nil)
	roomRepo.On("DetachOrder", mock.Anything, int64(1)).Return(repositories.ErrDatabaseError)
	dbMock.ExpectRollback()

	_, err := svc.CreateBill(CreateBillRequest{OrderID: 10})

	assert.Error(t, err)
	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestUpdateBill_RecomputesFinalAmount(t *testing.T) {
	svc, billRepo, _, _, _ := newBillServiceForTest(t)

	billRepo.On("GetBillByID", int64(20)).Return(&models.Bill{
		ID: 20, OrderID: 10, TotalAmount: 40.00, DiscountAmount: 5.00, TaxAmount: 2.00,
		FinalAmount: 37.00, PaymentStatus: "Pending",
	}, nil)
	billRepo.On("UpdateBill", mock.Anything, mock.MatchedBy(func(b *models.Bill) bool {
		return b.DiscountAmount == 10.00 && b.FinalAmount == 32.00 && b.TotalAmount == 40.00
	})).Return(nil)

	discount := 10.00
	bill, err := svc.UpdateBill(20, UpdateBillRequest{DiscountAmount: &discount})

	assert.NoError(t, err)
	assert.Equal(t, 32.00, bill.FinalAmount) // 40.00 - 10.00 + 2.00
	billRepo.AssertExpectations(t)
}

func TestUpdateBill_NegativeDiscountRejected(t *testing.T) {
	svc, billRepo, _, _, _ := newBillServiceForTest(t)

	billRepo.On("GetBillByID", int64(20)).Return(&models.Bill{
		ID: 20, OrderID: 10, TotalAmount: 40.00, PaymentStatus: "Pending",
	}, nil)

	discount := -3.00
	_, err := svc.UpdateBill(20, UpdateBillRequest{DiscountAmount: &discount})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpdateBill_NotFound(t *testing.T) {
	svc, billRepo, _, _, _ := newBillServiceForTest(t)

	billRepo.On("GetBillByID", int64(99)).Return(nil, repositories.ErrNotFound)

	discount := 1.00
	_, err := svc.UpdateBill(99, UpdateBillRequest{DiscountAmount: &discount})
	assert.ErrorIs(t, err, ErrBillNotFound)
}

func TestDeleteBill_NotFound(t *testing.T) {
	svc, billRepo, _, _, _ := newBillServiceForTest(t)

	billRepo.On("DeleteBill", mock.Anything, int64(99)).Return(int64(0), repositories.ErrNotFound)

	err := svc.DeleteBill(99)
	assert.ErrorIs(t, err, ErrBillNotFound)
}

func TestGetBills_InvalidPagination(t *testing.T) {
	svc, _, _, _, _ := newBillServiceForTest(t)

	_, _, err := svc.GetBills(models.BillFilters{Page: 0, PageSize: 10})
	assert.ErrorIs(t, err, ErrValidation)
}
