package impl

import (
	"context"

	"fittrack/internal/domain/entity"
	"fittrack/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockAccountRepository is a mock implementation of repository.AccountRepository.
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Account), args.Error(1)
}

func (m *MockAccountRepository) FindByUsername(ctx context.Context, username string) (*entity.Account, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Account), args.Error(1)
}

func (m *MockAccountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Account), args.Error(1)
}

func (m *MockAccountRepository) Insert(ctx context.Context, account *entity.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) UpdateByUsername(ctx context.Context, oldUsername string, fields repository.AccountFields) (*entity.Account, error) {
	args := m.Called(ctx, oldUsername, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Account), args.Error(1)
}

func (m *MockAccountRepository) DeleteByUsername(ctx context.Context, username string) error {
	args := m.Called(ctx, username)
	return args.Error(0)
}

// MockPasswordHasher is a mock implementation of service.PasswordHasher.
type MockPasswordHasher struct {
	mock.Mock
}

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Check(password, hash string) bool {
	args := m.Called(password, hash)
	return args.Bool(0)
}

// MockSessionManager is a mock implementation of service.SessionManager.
type MockSessionManager struct {
	mock.Mock
}

func (m *MockSessionManager) Create(ctx context.Context, accountID uuid.UUID) (string, error) {
	args := m.Called(ctx, accountID)
	return args.String(0), args.Error(1)
}

func (m *MockSessionManager) Resolve(ctx context.Context, token string) (uuid.UUID, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockSessionManager) Destroy(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

// MockRecoveryNotifier is a mock implementation of service.RecoveryNotifier.
type MockRecoveryNotifier struct {
	mock.Mock
}

func (m *MockRecoveryNotifier) Send(ctx context.Context, address, subject, body string) error {
	args := m.Called(ctx, address, subject, body)
	return args.Error(0)
}
