package server

import (
	"testing"

	"meeting-minutes-be/internal/config"

	"github.com/gofiber/fiber/v2/middleware/cors"
)

// The middleware is built with AllowCredentials: true; fiber panics if
// the configured origin list is a wildcard, so the default origin must
// be a concrete one or the server cannot boot unconfigured.
func TestDefaultCorsConfigDoesNotPanic(t *testing.T) {
	cfg := config.Load()

	if cfg.App.CorsAllowedOrigins == "*" {
		t.Fatal("default CORS origin is a wildcard; cors.New panics with AllowCredentials")
	}

	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("cors.New panicked with the default config: %v", r)
		}
	}()
	cors.New(cors.Config{
		AllowOrigins:     cfg.App.CorsAllowedOrigins,
		AllowCredentials: true,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		ExposeHeaders:    "Content-Length, Content-Type, Authorization",
	})
}
