package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// DefaultSeatPrice is the flat per-seat rate used when no rate is configured.
var DefaultSeatPrice = decimal.RequireFromString("12.50")

type BookingRequest struct {
	MovieID  int
	UserID   int
	Seats    []string
	Showtime string
}

type Booking struct {
	ID         int64
	MovieID    int
	UserID     int
	Seats      []string
	Showtime   string
	TotalPrice decimal.Decimal
	CreatedAt  time.Time
}

// NewBooking builds a booking from an already validated request. The total is
// always seat count times the rate in effect right now; the identifier and
// creation timestamp are assigned by the repository on Create.
func NewBooking(req BookingRequest, seatPrice decimal.Decimal) Booking {
	return Booking{
		MovieID:    req.MovieID,
		UserID:     req.UserID,
		Seats:      req.Seats,
		Showtime:   req.Showtime,
		TotalPrice: seatPrice.Mul(decimal.NewFromInt(int64(len(req.Seats)))),
	}
}

type BookingRepository interface {
	Create(ctx context.Context, booking *Booking) error
	GetById(ctx context.Context, id int64) (*Booking, error)
}
