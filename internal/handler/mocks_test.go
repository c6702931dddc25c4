package handler

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/FairSlots_Go/internal/domain"
)

// MockSessionService mocks session.Service
type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) Open(ctx context.Context, playerID string) (domain.Snapshot, error) {
	args := m.Called(ctx, playerID)
	return args.Get(0).(domain.Snapshot), args.Error(1)
}

func (m *MockSessionService) Snapshot(ctx context.Context, playerID string) (domain.Snapshot, error) {
	args := m.Called(ctx, playerID)
	return args.Get(0).(domain.Snapshot), args.Error(1)
}

func (m *MockSessionService) Spin(ctx context.Context, playerID string) (*domain.SpinResult, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SpinResult), args.Error(1)
}

func (m *MockSessionService) AdjustBet(ctx context.Context, playerID string, delta decimal.Decimal) (domain.Snapshot, error) {
	args := m.Called(ctx, playerID, delta)
	return args.Get(0).(domain.Snapshot), args.Error(1)
}

func (m *MockSessionService) SetMinBet(ctx context.Context, playerID string) (domain.Snapshot, error) {
	args := m.Called(ctx, playerID)
	return args.Get(0).(domain.Snapshot), args.Error(1)
}

func (m *MockSessionService) SetMaxBet(ctx context.Context, playerID string) (domain.Snapshot, error) {
	args := m.Called(ctx, playerID)
	return args.Get(0).(domain.Snapshot), args.Error(1)
}

func (m *MockSessionService) RearmJackpots(ctx context.Context, now time.Time) (int, error) {
	args := m.Called(ctx, now)
	return args.Int(0), args.Error(1)
}

func (m *MockSessionService) JackpotHistory(ctx context.Context, playerID string, limit int) ([]time.Time, error) {
	args := m.Called(ctx, playerID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]time.Time), args.Error(1)
}

func (m *MockSessionService) Paytable() []domain.Symbol {
	args := m.Called()
	return args.Get(0).([]domain.Symbol)
}

func (m *MockSessionService) Count() int {
	return m.Called().Int(0)
}

// MockPinger mocks the readiness dependency
type MockPinger struct {
	mock.Mock
}

func (m *MockPinger) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
