package repository

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/NairoD34/bookmymovie/internal/domain"
)

// DefaultBookingLatency mirrors the processing delay of the persistence
// layer bookings would normally go through.
const DefaultBookingLatency = 800 * time.Millisecond

type MemoryBookingRepository struct {
	mu       sync.Mutex
	bookings map[int64]domain.Booking
	lastID   int64
	latency  time.Duration
}

type MemoryBookingOption func(*MemoryBookingRepository)

func WithBookingLatency(d time.Duration) MemoryBookingOption {
	return func(r *MemoryBookingRepository) {
		r.latency = d
	}
}

func NewMemoryBookingRepository(opts ...MemoryBookingOption) *MemoryBookingRepository {
	r := &MemoryBookingRepository{
		bookings: make(map[int64]domain.Booking),
		latency:  DefaultBookingLatency,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Create assigns the booking a creation-time derived identifier and a
// timestamp, then stores it. Identifiers stay strictly monotonic even when
// two bookings land on the same millisecond.
func (r *MemoryBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	if err := r.simulateProcessing(ctx); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()

	id := now.UnixMilli()
	if id <= r.lastID {
		id = r.lastID + 1
	}
	r.lastID = id

	booking.ID = id
	booking.CreatedAt = now

	r.bookings[id] = *booking

	return nil
}

func (r *MemoryBookingRepository) GetById(ctx context.Context, id int64) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	booking, ok := r.bookings[id]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}

	return &booking, nil
}

func (r *MemoryBookingRepository) simulateProcessing(ctx context.Context) error {
	timer := time.NewTimer(r.latency)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return domain.ErrFetchTimeout
		}
		return ctx.Err()
	case <-timer.C:
	}

	return nil
}
