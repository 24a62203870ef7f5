package service

import (
	"context"
	"time"

	"eurojackpot/events"
	"eurojackpot/models"

	"github.com/stretchr/testify/mock"
)

// MockDrawRepository is a mock implementation of DrawRepository
type MockDrawRepository struct {
	mock.Mock
}

func (m *MockDrawRepository) Upsert(ctx context.Context, draws []models.Draw) (int, error) {
	args := m.Called(ctx, draws)
	return args.Int(0), args.Error(1)
}

func (m *MockDrawRepository) GetAll(ctx context.Context) ([]models.RawDraw, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.RawDraw), args.Error(1)
}

func (m *MockDrawRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockDrawRepository) LatestDate(ctx context.Context) (*time.Time, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*time.Time), args.Error(1)
}

func (m *MockDrawRepository) StoredDates(ctx context.Context, since, until time.Time) ([]time.Time, error) {
	args := m.Called(ctx, since, until)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]time.Time), args.Error(1)
}

// MockDrawSource is a mock implementation of DrawSource
type MockDrawSource struct {
	mock.Mock
}

func (m *MockDrawSource) LoadDraws(ctx context.Context) ([]models.RawDraw, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.RawDraw), args.Error(1)
}

func (m *MockDrawSource) Name() string {
	args := m.Called()
	return args.String(0)
}

// MockTicketService is a mock implementation of TicketService
type MockTicketService struct {
	mock.Mock
}

func (m *MockTicketService) GenerateTicket(ctx context.Context) (*models.GeneratedTicket, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.GeneratedTicket), args.Error(1)
}

func (m *MockTicketService) GenerateTicketWithStrategy(ctx context.Context, id models.StrategyID) (*models.GeneratedTicket, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.GeneratedTicket), args.Error(1)
}

// MockEventPublisher is a mock implementation of EventPublisher for testing
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(event events.Event) {
	m.Called(event)
}

// MockUnitOfWork is a mock implementation of UnitOfWork
type MockUnitOfWork struct {
	mock.Mock
}

func (m *MockUnitOfWork) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) Commit() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockUnitOfWork) Rollback() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockUnitOfWork) DrawRepository() DrawRepository {
	args := m.Called()
	return args.Get(0).(DrawRepository)
}

func (m *MockUnitOfWork) EventBus() EventPublisher {
	args := m.Called()
	return args.Get(0).(EventPublisher)
}

// MockUnitOfWorkFactory is a mock implementation of UnitOfWorkFactory
type MockUnitOfWorkFactory struct {
	mock.Mock
}

func (m *MockUnitOfWorkFactory) Create() UnitOfWork {
	args := m.Called()
	return args.Get(0).(UnitOfWork)
}
