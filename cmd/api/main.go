package main

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/NairoD34/bookmymovie/internal/app"
)

func main() {
	// A .env file is optional; flags and real environment variables win.
	_ = godotenv.Load()

	err := app.Run()
	if err != nil {
		slog.Error("server terminated", "error", err)
		os.Exit(1)
	}
}
