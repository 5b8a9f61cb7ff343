package config_test

import (
	"reflect"
	"testing"

	"github.com/sksagor/investment-tracker-backend/internal/config"
)

// TestLoad_CORSOrigins tests CORS origin configuration.
//
// WHY: The frontend origin differs between local development and a
// deployed instance; origins must be overridable without a rebuild.
func TestLoad_CORSOrigins(t *testing.T) {
	t.Run("defaults to localhost origins", func(t *testing.T) {
		cfg, err := config.Load()
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}

		want := []string{"http://localhost:3000", "http://localhost"}
		if !reflect.DeepEqual(cfg.CORS.AllowedOrigins, want) {
			t.Errorf("Expected origins %v, got %v", want, cfg.CORS.AllowedOrigins)
		}
	})

	t.Run("reads CORS_ALLOWED_ORIGINS from the environment", func(t *testing.T) {
		t.Setenv("CORS_ALLOWED_ORIGINS", "https://tracker.example.com, http://localhost:8080")

		cfg, err := config.Load()
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}

		want := []string{"https://tracker.example.com", "http://localhost:8080"}
		if !reflect.DeepEqual(cfg.CORS.AllowedOrigins, want) {
			t.Errorf("Expected origins %v, got %v", want, cfg.CORS.AllowedOrigins)
		}
	})
}
