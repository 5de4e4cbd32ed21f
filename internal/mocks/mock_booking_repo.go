package mocks

import (
	"context"

	"github.com/NairoD34/bookmymovie/internal/domain"
)

type MockBookingRepo struct {
	domain.BookingRepository
	CreateFunc  func(ctx context.Context, booking *domain.Booking) error
	GetByIdFunc func(ctx context.Context, id int64) (*domain.Booking, error)
}

func (m *MockBookingRepo) Create(ctx context.Context, booking *domain.Booking) error {
	return m.CreateFunc(ctx, booking)
}

func (m *MockBookingRepo) GetById(ctx context.Context, id int64) (*domain.Booking, error) {
	return m.GetByIdFunc(ctx, id)
}
