package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/OndrejKutil/budgeting-dashboard-sub000/internal/apperrors"
	"github.com/OndrejKutil/budgeting-dashboard-sub000/internal/core/domain"
	"github.com/OndrejKutil/budgeting-dashboard-sub000/internal/core/services"
	portssvc "github.com/OndrejKutil/budgeting-dashboard-sub000/internal/core/ports/services"
	"github.com/OndrejKutil/budgeting-dashboard-sub000/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockAccountRepository is a mock type for the AccountRepositoryFacade interface
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context, userID string) ([]domain.Account, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) DeactivateAccount(ctx context.Context, accountID string, now time.Time) error {
	args := m.Called(ctx, accountID, now)
	return args.Error(0)
}

// --- Test Suite Setup ---

type AccountServiceTestSuite struct {
	suite.Suite
	mockRepo *MockAccountRepository
	service  portssvc.AccountSvcFacade
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockAccountRepository)
	suite.service = services.NewAccountService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *AccountServiceTestSuite) TestCreateAccount_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	req := dto.CreateAccountRequest{
		Name:         "Main Checking",
		AccountType:  domain.AccountChecking,
		CurrencyCode: "CZK",
	}

	suite.mockRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(nil).Once()

	created, err := suite.service.CreateAccount(ctx, req, userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.NotEmpty(created.AccountID)
	suite.Equal(userID, created.UserID)
	suite.Equal(req.Name, created.Name)
	suite.Equal(req.AccountType, created.AccountType)
	suite.True(created.IsActive)
	suite.WithinDuration(time.Now(), created.CreatedAt, time.Second)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_SaveError() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{
		Name:         "Broken",
		AccountType:  domain.AccountCash,
		CurrencyCode: "EUR",
	}

	saveErr := fmt.Errorf("connection lost")
	suite.mockRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(saveErr).Once()

	created, err := suite.service.CreateAccount(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, saveErr)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestGetAccountByID_OwnershipEnforced() {
	ctx := context.Background()
	owner := uuid.NewString()
	stranger := uuid.NewString()
	account := &domain.Account{
		AccountID: uuid.NewString(),
		UserID:    owner,
		Name:      "Main Checking",
	}

	suite.mockRepo.On("FindAccountByID", ctx, account.AccountID).Return(account, nil).Twice()

	got, err := suite.service.GetAccountByID(ctx, account.AccountID, owner)
	suite.Require().NoError(err)
	suite.Equal(account.AccountID, got.AccountID)

	_, err = suite.service.GetAccountByID(ctx, account.AccountID, stranger)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestGetAccountByID_NotFound() {
	ctx := context.Background()
	accountID := uuid.NewString()

	suite.mockRepo.On("FindAccountByID", ctx, accountID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.GetAccountByID(ctx, accountID, uuid.NewString())
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestUpdateAccount_PartialUpdate() {
	ctx := context.Background()
	owner := uuid.NewString()
	account := &domain.Account{
		AccountID:    uuid.NewString(),
		UserID:       owner,
		Name:         "Old Name",
		AccountType:  domain.AccountChecking,
		CurrencyCode: "CZK",
	}
	newName := "New Name"

	suite.mockRepo.On("FindAccountByID", ctx, account.AccountID).Return(account, nil).Once()
	suite.mockRepo.On("UpdateAccount", ctx, mock.MatchedBy(func(a domain.Account) bool {
		return a.Name == newName && a.AccountType == domain.AccountChecking
	})).Return(nil).Once()

	updated, err := suite.service.UpdateAccount(ctx, account.AccountID, dto.UpdateAccountRequest{Name: &newName}, owner)

	suite.Require().NoError(err)
	suite.Equal(newName, updated.Name)
	suite.Equal("CZK", updated.CurrencyCode, "untouched fields must survive a partial update")
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestDeactivateAccount_Success() {
	ctx := context.Background()
	owner := uuid.NewString()
	account := &domain.Account{AccountID: uuid.NewString(), UserID: owner}

	suite.mockRepo.On("FindAccountByID", ctx, account.AccountID).Return(account, nil).Once()
	suite.mockRepo.On("DeactivateAccount", ctx, account.AccountID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	err := suite.service.DeactivateAccount(ctx, account.AccountID, owner)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
