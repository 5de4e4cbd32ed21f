package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/NairoD34/bookmymovie/internal/domain"
	"github.com/NairoD34/bookmymovie/internal/repository"
	appvalidator "github.com/NairoD34/bookmymovie/internal/validator"
	"github.com/NairoD34/bookmymovie/internal/vcs"
)

var (
	version = vcs.Version()
)

type application struct {
	config    config
	logger    *slog.Logger
	validator *validator.Validate
	seatPrice decimal.Decimal

	movieRepo   domain.MovieRepository
	bookingRepo domain.BookingRepository
}

type config struct {
	port    int
	env     string
	catalog struct {
		url     string
		timeout time.Duration
	}
	booking struct {
		timeout time.Duration
	}
	seatPrice string
	auth      struct {
		secret       string
		demoPassword string
		tokenTTL     time.Duration
	}
	otelCollectorUrl string
}

func Run() error {
	var cfg config

	flag.IntVar(&cfg.port, "port", envInt("PORT", 3000), "server port")
	flag.StringVar(&cfg.env, "env", envString("ENV", "dev"), "Environment (dev|staging|prod)")

	flag.StringVar(&cfg.catalog.url, "catalog-url", envString("CATALOG_URL", ""), "Catalog API base URL (empty: built-in demo catalog)")
	flag.DurationVar(&cfg.catalog.timeout, "catalog-timeout", 5*time.Second, "Catalog fetch timeout")
	flag.DurationVar(&cfg.booking.timeout, "booking-timeout", 5*time.Second, "Booking creation timeout")

	flag.StringVar(&cfg.seatPrice, "seat-price", envString("SEAT_PRICE", "12.50"), "Flat price per seat")

	flag.StringVar(&cfg.auth.secret, "auth-secret", envString("AUTH_SECRET", ""), "HMAC secret for bearer tokens")
	flag.StringVar(&cfg.auth.demoPassword, "auth-demo-password", envString("AUTH_DEMO_PASSWORD", "change-me-123"), "Demo login password (stub, no real identity provider)")
	flag.DurationVar(&cfg.auth.tokenTTL, "auth-token-ttl", 24*time.Hour, "Bearer token lifetime")

	flag.StringVar(&cfg.otelCollectorUrl, "otel-collector-url", envString("OTEL_COLLECTOR_URL", ""), "OpenTelemetry collector URL")

	displayVersion := flag.Bool("version", false, "Display version and exit")

	flag.Parse()

	if *displayVersion {
		fmt.Printf("Version:\t%s\n", version)
		os.Exit(0)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	seatPrice, err := decimal.NewFromString(cfg.seatPrice)
	if err != nil {
		return fmt.Errorf("invalid seat price %q: %w", cfg.seatPrice, err)
	}

	app := &application{
		config:      cfg,
		logger:      logger,
		validator:   appvalidator.NewValidator(),
		seatPrice:   seatPrice,
		movieRepo:   newMovieRepository(cfg),
		bookingRepo: repository.NewMemoryBookingRepository(),
	}

	shutdownTelemetry, err := app.initTelemetry()
	if err != nil {
		return err
	}
	defer shutdownTelemetry(context.Background())

	return app.run()
}

// newMovieRepository selects the catalog source: a remote JSON API when a
// base URL is configured, the seeded in-memory catalog otherwise.
func newMovieRepository(cfg config) domain.MovieRepository {
	if cfg.catalog.url != "" {
		return repository.NewHTTPMovieRepository(cfg.catalog.url, cfg.catalog.timeout)
	}

	return repository.NewMemoryMovieRepository(repository.SeedCatalog())
}

func (app *application) run() error {
	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%d", app.config.port),
		Handler:      app.routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(app.logger.Handler(), slog.LevelDebug),
	}

	shutdownError := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		app.logger.Info("shutting down server", "signal", s.String())

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		err := srv.Shutdown(ctx)
		if err != nil {
			shutdownError <- err
		}

		shutdownError <- nil
	}()

	app.logger.Info("starting server", "addr", srv.Addr, "env", app.config.env)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdownError
	if err != nil {
		return err
	}

	app.logger.Info("stopped server", "addr", srv.Addr)

	return nil
}

func (app *application) routes() http.Handler {
	r := chi.NewRouter()

	r.NotFound(app.notFoundResponse)

	r.Use(middleware.Logger)
	r.Use(middleware.RequestID)
	r.Use(app.recoverPanic)

	r.Get("/health", app.GetHealth)

	r.Route("/movies", func(r chi.Router) {
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			app.GetMovies(w, r, getMoviesParams(r))
		})

		r.Get("/{movieId}", func(w http.ResponseWriter, r *http.Request) {
			movieId, err := readIDParam(r, "movieId")
			if err != nil {
				app.badRequestResponse(w, r, err)
				return
			}
			app.GetMovieById(w, r, movieId)
		})
	})

	r.Route("/bookings", func(r chi.Router) {
		r.Post("/", app.CreateBooking)

		r.With(app.requireAuthentication).Get("/{bookingId}", func(w http.ResponseWriter, r *http.Request) {
			bookingId, err := readIDParam(r, "bookingId")
			if err != nil {
				app.badRequestResponse(w, r, err)
				return
			}
			app.GetBookingById(w, r, int64(bookingId))
		})
	})

	r.Post("/auth/login", app.Login)

	return r
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}

	return n
}
