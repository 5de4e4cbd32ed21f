package app

import (
	"context"
	"errors"
	"net/http"

	"github.com/NairoD34/bookmymovie/api"
	"github.com/NairoD34/bookmymovie/internal/domain"
)

func (app *application) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var input api.CreateBookingRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	seats := *input.Seats
	if len(seats) == 0 {
		// Accepted for now: the UI has no seat picker yet, so a zero-seat
		// booking with a zero total is a placeholder rather than an error.
		app.logger.Warn("booking created with empty seat list", "movieId", input.MovieId)
	}

	booking := domain.NewBooking(domain.BookingRequest{
		MovieID:  input.MovieId,
		UserID:   input.UserId,
		Seats:    seats,
		Showtime: input.Showtime,
	}, app.seatPrice)

	ctx, cancel := context.WithTimeout(r.Context(), app.config.booking.timeout)
	defer cancel()

	err = app.bookingRepo.Create(ctx, &booking)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrFetchTimeout):
			app.logError(r, err)
			app.errorResponse(w, r, http.StatusGatewayTimeout, ErrBookingTimeout)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusCreated, toBookingResponse(booking), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) GetBookingById(w http.ResponseWriter, r *http.Request, bookingId int64) {
	booking, err := app.bookingRepo.GetById(r.Context(), bookingId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusOK, toBookingResponse(*booking), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toBookingResponse(booking domain.Booking) api.BookingResponse {
	return api.BookingResponse{
		Id:         booking.ID,
		MovieId:    booking.MovieID,
		UserId:     booking.UserID,
		Seats:      booking.Seats,
		Showtime:   booking.Showtime,
		TotalPrice: booking.TotalPrice,
		CreatedAt:  booking.CreatedAt,
	}
}
