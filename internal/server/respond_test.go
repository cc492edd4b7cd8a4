package server

import (
	"math"
	"net/http/httptest"
	"strings"
	"testing"

	"StockScope/internal/analysis"
)

func TestSafe(t *testing.T) {
	if safe(math.NaN()) != nil {
		t.Error("NaN should map to nil")
	}
	if safe(math.Inf(1)) != nil || safe(math.Inf(-1)) != nil {
		t.Error("infinities should map to nil")
	}
	if v := safe(1.5); v == nil || *v != 1.5 {
		t.Error("finite values should pass through")
	}
}

func TestOpt(t *testing.T) {
	if opt(analysis.Value{}) != nil {
		t.Error("undefined value should map to nil")
	}
	if v := opt(analysis.Value{Val: 42, Valid: true}); v == nil || *v != 42 {
		t.Error("defined value should pass through")
	}
}

func TestNonZero(t *testing.T) {
	if nonZero(0) != nil {
		t.Error("zero should map to nil")
	}
	if v := nonZero(3.2); v == nil || *v != 3.2 {
		t.Error("non-zero should pass through")
	}
}

// Undefined indicators must serialize as JSON null, never NaN.
func TestWriteJSON_NullForUndefined(t *testing.T) {
	w := httptest.NewRecorder()
	writeJSON(w, 200, map[string]interface{}{"rsi": opt(analysis.Value{})})
	body := w.Body.String()
	if !strings.Contains(body, `"rsi":null`) {
		t.Errorf("expected null, got %s", body)
	}
	if strings.Contains(body, "NaN") {
		t.Errorf("NaN leaked into response: %s", body)
	}
}
