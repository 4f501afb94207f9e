package services

import (
	"testing"

	"hms_backend/internal/models"
	"hms_backend/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func newAuthServiceForTest(t *testing.T) (AuthService, *MockAuthRepository) {
	t.Helper()
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	authRepo := new(MockAuthRepository)
	svc := NewAuthService(authRepo, db)
	return svc, authRepo
}

func TestRegisterUser_DefaultsToStaffRole(t *testing.T) {
	svc, authRepo := newAuthServiceForTest(t)

	authRepo.On("CreateUser", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
		return u.Username == "waiter1" && u.Role == "Staff" && u.IsActive
	}), mock.AnythingOfType("string")).Return(int64(1), nil)

	user, err := svc.RegisterUser(RegisterUserRequest{
		Username: "waiter1",
		Email:    "waiter1@example.com",
		Password: "longenough",
		FullName: "First Waiter",
	})

	assert.NoError(t, err)
	assert.Equal(t, "Staff", user.Role)
	assert.Equal(t, int64(1), user.ID)
	authRepo.AssertExpectations(t)
}

func TestRegisterUser_UnknownRoleRejected(t *testing.T) {
	svc, authRepo := newAuthServiceForTest(t)

	_, err := svc.RegisterUser(RegisterUserRequest{
		Username: "waiter1",
		Email:    "waiter1@example.com",
		Password: "longenough",
		FullName: "First Waiter",
		Role:     "Superuser",
	})

	assert.ErrorIs(t, err, ErrUnknownRole)
	authRepo.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything, mock.Anything)
}

func TestRegisterUser_ShortPasswordRejected(t *testing.T) {
	svc, _ := newAuthServiceForTest(t)

	_, err := svc.RegisterUser(RegisterUserRequest{
		Username: "waiter1",
		Email:    "waiter1@example.com",
		Password: "short",
		FullName: "First Waiter",
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestRegisterUser_DuplicateUsername(t *testing.T) {
	svc, authRepo := newAuthServiceForTest(t)

	authRepo.On("CreateUser", mock.Anything, mock.AnythingOfType("*models.User"), mock.AnythingOfType("string")).
		Return(int64(0), repositories.ErrDuplicateKey)

	_, err := svc.RegisterUser(RegisterUserRequest{
		Username: "waiter1",
		Email:    "waiter1@example.com",
		Password: "longenough",
		FullName: "First Waiter",
	})
	assert.ErrorIs(t, err, ErrUsernameExists)
}

func TestLoginUser_Success(t *testing.T) {
	svc, authRepo := newAuthServiceForTest(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("correct-password"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	authRepo.On("FindUserByUsername", "waiter1").Return(&models.User{
		ID: 1, Username: "waiter1", Role: "Staff", IsActive: true,
	}, string(hash), nil)

	resp, err := svc.LoginUser(LoginRequest{Username: "waiter1", Password: "correct-password"})

	assert.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "waiter1", resp.User.Username)
}

func TestLoginUser_WrongPassword(t *testing.T) {
	svc, authRepo := newAuthServiceForTest(t)

	hash, _ := bcrypt.GenerateFromPassword([]byte("correct-password"), bcrypt.MinCost)
	authRepo.On("FindUserByUsername", "waiter1").Return(&models.User{
		ID: 1, Username: "waiter1", Role: "Staff", IsActive: true,
	}, string(hash), nil)

	_, err := svc.LoginUser(LoginRequest{Username: "waiter1", Password: "wrong-password"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUser_UnknownUser(t *testing.T) {
	svc, authRepo := newAuthServiceForTest(t)

	authRepo.On("FindUserByUsername", "ghost").Return(nil, "", repositories.ErrNotFound)

	_, err := svc.LoginUser(LoginRequest{Username: "ghost", Password: "whatever"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUser_InactiveUserRejected(t *testing.T) {
	svc, authRepo := newAuthServiceForTest(t)

	hash, _ := bcrypt.GenerateFromPassword([]byte("correct-password"), bcrypt.MinCost)
	authRepo.On("FindUserByUsername", "waiter1").Return(&models.User{
		ID: 1, Username: "waiter1", Role: "Staff", IsActive: false,
	}, string(hash), nil)

	_, err := svc.LoginUser(LoginRequest{Username: "waiter1", Password: "correct-password"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestGetUserProfile_NotFound(t *testing.T) {
	svc, authRepo := newAuthServiceForTest(t)

	authRepo.On("FindUserByID", int64(99)).Return(nil, repositories.ErrNotFound)

	_, err := svc.GetUserProfile(99)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
