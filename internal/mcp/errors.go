package mcp

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"fmpmcp/internal/fmp"
)

type ErrorDetail struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	Hint      string `json:"hint,omitempty"`
	Retryable bool   `json:"retryable"`
}

type ErrorEnvelope struct {
	Error   ErrorDetail `json:"error"`
	Details any         `json:"details,omitempty"`
}

func BuildErrorEnvelope(err error, details any) map[string]any {
	envelope := ErrorEnvelope{Error: classifyError(err)}
	out := map[string]any{"error": envelope.Error}
	if details != nil {
		out["details"] = details
	}
	return out
}

func classifyError(err error) ErrorDetail {
	msg := ""
	if err != nil {
		msg = err.Error()
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrorDetail{Code: "timeout", Message: msg, Hint: "Increase the tool timeout or check network latency to the FMP API.", Retryable: true}
	}
	if errors.Is(err, context.Canceled) {
		return ErrorDetail{Code: "canceled", Message: msg, Hint: "Request was canceled before completion.", Retryable: true}
	}

	switch fmp.StatusOf(err) {
	case http.StatusUnauthorized:
		return ErrorDetail{Code: "unauthorized", Message: msg, Hint: "Check the FMP access token.", Retryable: false}
	case http.StatusPaymentRequired:
		return ErrorDetail{Code: "premium_endpoint", Message: msg, Hint: "This endpoint requires a higher FMP plan.", Retryable: false}
	case http.StatusForbidden:
		return ErrorDetail{Code: "forbidden", Message: msg, Hint: "The access token is not entitled to this endpoint.", Retryable: false}
	case http.StatusNotFound:
		return ErrorDetail{Code: "not_found", Message: msg, Hint: "Verify the symbol or endpoint path.", Retryable: false}
	case http.StatusTooManyRequests:
		return ErrorDetail{Code: "rate_limited", Message: msg, Hint: "FMP rate limit reached; retry with backoff.", Retryable: true}
	case http.StatusBadRequest:
		return ErrorDetail{Code: "invalid_request", Message: msg, Hint: "Fix request parameters.", Retryable: false}
	}
	if status := fmp.StatusOf(err); status >= 500 {
		return ErrorDetail{Code: "upstream_error", Message: msg, Hint: "FMP API error; retry later.", Retryable: true}
	}

	if isInvalidRequestMessage(msg) {
		return ErrorDetail{Code: "invalid_request", Message: msg, Hint: "Fix request parameters or schema.", Retryable: false}
	}

	return ErrorDetail{Code: "internal", Message: msg, Hint: "Check server logs for details.", Retryable: false}
}

func isInvalidRequestMessage(msg string) bool {
	lower := strings.ToLower(msg)
	if strings.Contains(lower, "required") || strings.Contains(lower, "invalid") || strings.Contains(lower, "missing") {
		return true
	}
	return false
}
