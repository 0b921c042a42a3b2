package service

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/xonadon/xonadon-api/internal/domain"
)

// MockApartmentStore mocks the store.ApartmentStore interface
type MockApartmentStore struct {
	mock.Mock
}

func (m *MockApartmentStore) Create(ctx context.Context, apartment *domain.Apartment) error {
	args := m.Called(ctx, apartment)
	return args.Error(0)
}

func (m *MockApartmentStore) GetByID(ctx context.Context, id string) (*domain.Apartment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Apartment), args.Error(1)
}

func (m *MockApartmentStore) List(ctx context.Context) ([]*domain.Apartment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Apartment), args.Error(1)
}

func (m *MockApartmentStore) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockApartmentStore) AddRoom(ctx context.Context, apartmentID string, room domain.Room) error {
	args := m.Called(ctx, apartmentID, room)
	return args.Error(0)
}

func (m *MockApartmentStore) RemoveRoom(ctx context.Context, apartmentID, roomID string) error {
	args := m.Called(ctx, apartmentID, roomID)
	return args.Error(0)
}

// MockRecorder mocks the CalculationRecorder interface
type MockRecorder struct {
	mock.Mock
}

func (m *MockRecorder) ObserveCalculation(operation string, weather domain.Weather, err error) {
	m.Called(operation, weather, err)
}
