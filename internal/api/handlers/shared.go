package handlers

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"

	"github.com/sksagor/investment-tracker-backend/internal/service"
)

// parseJSON decodes the request body into the target request type.
// Unknown fields are rejected so typos in payloads fail loudly.
func parseJSON[T any](r *http.Request) (T, error) {
	var req T

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(&req); err != nil {
		return req, fmt.Errorf("failed to decode request body: %w", err)
	}

	return req, nil
}

// round rounds monetary values to two decimal places for display.
// Stored and accumulated values stay unrounded.
func round(value float64) float64 {
	return math.Round(value*service.RoundingPrecision) / service.RoundingPrecision
}
