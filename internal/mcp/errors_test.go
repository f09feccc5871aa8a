package mcp

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"fmpmcp/internal/fmp"
)

func apiError(status int) error {
	return &fmp.APIError{Status: status, Endpoint: "stable/quote", Body: "{}"}
}

func TestBuildErrorEnvelopeTimeout(t *testing.T) {
	envelope := BuildErrorEnvelope(context.DeadlineExceeded, nil)
	detail := envelope["error"].(ErrorDetail)
	if detail.Code != "timeout" {
		t.Fatalf("expected timeout code, got %s", detail.Code)
	}
	if !detail.Retryable {
		t.Fatalf("expected retryable timeout")
	}
}

func TestBuildErrorEnvelopeCanceled(t *testing.T) {
	envelope := BuildErrorEnvelope(context.Canceled, nil)
	detail := envelope["error"].(ErrorDetail)
	if detail.Code != "canceled" {
		t.Fatalf("expected canceled code, got %s", detail.Code)
	}
}

func TestBuildErrorEnvelopeStatusCodes(t *testing.T) {
	cases := []struct {
		status    int
		code      string
		retryable bool
	}{
		{http.StatusUnauthorized, "unauthorized", false},
		{http.StatusPaymentRequired, "premium_endpoint", false},
		{http.StatusForbidden, "forbidden", false},
		{http.StatusNotFound, "not_found", false},
		{http.StatusTooManyRequests, "rate_limited", true},
		{http.StatusBadRequest, "invalid_request", false},
		{http.StatusInternalServerError, "upstream_error", true},
		{http.StatusBadGateway, "upstream_error", true},
	}
	for _, tc := range cases {
		envelope := BuildErrorEnvelope(apiError(tc.status), nil)
		detail := envelope["error"].(ErrorDetail)
		if detail.Code != tc.code {
			t.Fatalf("status %d: expected code %s, got %s", tc.status, tc.code, detail.Code)
		}
		if detail.Retryable != tc.retryable {
			t.Fatalf("status %d: expected retryable=%v", tc.status, tc.retryable)
		}
	}
}

func TestBuildErrorEnvelopeWrappedAPIError(t *testing.T) {
	err := fmt.Errorf("call failed: %w", apiError(http.StatusTooManyRequests))
	envelope := BuildErrorEnvelope(err, nil)
	detail := envelope["error"].(ErrorDetail)
	if detail.Code != "rate_limited" {
		t.Fatalf("expected wrapped error classified, got %s", detail.Code)
	}
}

func TestBuildErrorEnvelopeValidationMessage(t *testing.T) {
	envelope := BuildErrorEnvelope(errors.New("symbol is required"), nil)
	detail := envelope["error"].(ErrorDetail)
	if detail.Code != "invalid_request" {
		t.Fatalf("expected invalid_request code, got %s", detail.Code)
	}
}

func TestBuildErrorEnvelopeInternalFallback(t *testing.T) {
	envelope := BuildErrorEnvelope(errors.New("boom"), nil)
	detail := envelope["error"].(ErrorDetail)
	if detail.Code != "internal" {
		t.Fatalf("expected internal code, got %s", detail.Code)
	}
}

func TestBuildErrorEnvelopeDetails(t *testing.T) {
	envelope := BuildErrorEnvelope(errors.New("boom"), map[string]any{"endpoint": "stable/quote"})
	if envelope["details"] == nil {
		t.Fatalf("expected details preserved")
	}
}
