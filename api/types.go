package api

import (
	"time"

	"github.com/shopspring/decimal"
)

// ErrorResponse is the JSON envelope for every non-validation failure.
type ErrorResponse struct {
	Message   string    `json:"message"`
	RequestId string    `json:"requestId,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type ValidationIssue struct {
	Field string `json:"field"`
	Issue string `json:"issue"`
}

type ValidationErrorResponse struct {
	Message          string            `json:"message"`
	RequestId        string            `json:"requestId,omitempty"`
	Timestamp        time.Time         `json:"timestamp"`
	ValidationErrors []ValidationIssue `json:"validationErrors"`
}

type GetMoviesParams struct {
	Term     *string `validate:"omitempty,max=50"`
	Category *string `validate:"omitempty,category"`
}

type MovieSummary struct {
	Id          int     `json:"id"`
	Title       string  `json:"title"`
	Category    string  `json:"category"`
	Rating      float64 `json:"rating"`
	Stars       string  `json:"stars"`
	Description string  `json:"description"`
	Poster      string  `json:"poster"`
	Recommended bool    `json:"recommended"`
}

type MovieListResponse struct {
	Movies []MovieSummary `json:"movies"`
}

type MovieDetailResponse struct {
	Id          int     `json:"id"`
	Title       string  `json:"title"`
	Category    string  `json:"category"`
	Rating      float64 `json:"rating"`
	Stars       string  `json:"stars"`
	Description string  `json:"description"`
	Poster      string  `json:"poster"`
	Duration    int     `json:"duration"`
	Director    string  `json:"director"`
	Recommended bool    `json:"recommended"`
}

type CreateBookingRequest struct {
	MovieId  int       `json:"movieId" validate:"required,gt=0"`
	UserId   int       `json:"userId" validate:"omitempty,gt=0"`
	Seats    *[]string `json:"seats" validate:"required,dive,min=1"`
	Showtime string    `json:"showtime"`
}

type BookingResponse struct {
	Id         int64           `json:"id"`
	MovieId    int             `json:"movieId"`
	UserId     int             `json:"userId"`
	Seats      []string        `json:"seats"`
	Showtime   string          `json:"showtime"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
	CreatedAt  time.Time       `json:"createdAt"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginResponse struct {
	Email string `json:"email"`
	Token string `json:"token"`
	Role  string `json:"role"`
}

type SystemInfo struct {
	Version     string `json:"version"`
	Environment string `json:"environment"`
}

type HealthcheckResponse struct {
	Status     string     `json:"status"`
	SystemInfo SystemInfo `json:"systemInfo"`
}
