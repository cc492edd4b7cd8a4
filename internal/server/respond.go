package server

import (
	"encoding/json"
	"log"
	"math"
	"net/http"

	"StockScope/internal/analysis"
)

// safe converts a float to a JSON-serializable pointer; non-finite values
// (NaN, ±Inf) become nil, which serializes as null.
func safe(f float64) *float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

// opt converts an indicator value to a pointer; undefined values become nil.
func opt(v analysis.Value) *float64 {
	if !v.Valid {
		return nil
	}
	return safe(v.Val)
}

// nonZero maps a zero (unreported) value to nil.
func nonZero(f float64) *float64 {
	if f == 0 {
		return nil
	}
	return safe(f)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[WARN] write response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
