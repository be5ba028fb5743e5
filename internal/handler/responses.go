package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/osse101/Ycine_Go/internal/domain"
	"github.com/osse101/Ycine_Go/internal/logger"
	"github.com/osse101/Ycine_Go/internal/metrics"
)

// ErrorResponse is the body of every failed API call
type ErrorResponse struct {
	OK            bool   `json:"ok"`
	Error         string `json:"error"`
	DaysRemaining *int   `json:"daysRemaining,omitempty"`
}

// OKResponse acknowledges an operation with no other payload
type OKResponse struct {
	OK bool `json:"ok"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := getBuffer()
	defer putBuffer(buf)

	// Encode before writing headers so an encode failure can still become a 500
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error(LogMsgEncodeFailed, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error(LogMsgWriteFailed, "error", err)
	}
}

// respondError sends a JSON error response carrying a wire error code
func respondError(w http.ResponseWriter, status int, code string) {
	respondJSON(w, status, ErrorResponse{Error: code})
}

// mapServiceError maps a service error to an HTTP status and wire error code
func mapServiceError(err error) (int, string) {
	switch {
	case err == nil:
		return http.StatusInternalServerError, ErrCodeServerError
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, ErrCodeNoUser
	case errors.Is(err, domain.ErrVideoNotFound):
		return http.StatusNotFound, ErrCodeVideoNotFound
	case errors.Is(err, domain.ErrInviteNotFound):
		return http.StatusNotFound, ErrCodeNotFound
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrCodeBad
	case errors.Is(err, domain.ErrNotCompleted):
		return http.StatusForbidden, ErrCodeNotCompleted
	case errors.Is(err, domain.ErrAlreadyClaimed):
		return http.StatusConflict, ErrCodeAlreadyClaimed
	case errors.Is(err, domain.ErrInvalidAmount):
		return http.StatusBadRequest, ErrCodeInvalidAmount
	case errors.Is(err, domain.ErrNoLinkedPayment):
		return http.StatusForbidden, ErrCodeNoLinkedPayment
	case errors.Is(err, domain.ErrWithdrawWeekly):
		return http.StatusForbidden, ErrCodeWithdrawWeekly
	case errors.Is(err, domain.ErrCardAlreadyUsed):
		return http.StatusConflict, ErrCodeCardAlreadyUsed
	case errors.Is(err, domain.ErrNoToken):
		return http.StatusBadRequest, ErrCodeNoToken
	case errors.Is(err, domain.ErrPspError):
		return http.StatusBadGateway, ErrCodePspError
	}
	return http.StatusInternalServerError, ErrCodeServerError
}

// daysRemaining extracts the cooldown remediation data, if any
func daysRemaining(err error) (int, bool) {
	var ptr *domain.WithdrawCooldownError
	if errors.As(err, &ptr) && ptr != nil {
		return ptr.DaysRemaining, true
	}
	var val domain.WithdrawCooldownError
	if errors.As(err, &val) {
		return val.DaysRemaining, true
	}
	return 0, false
}

// respondServiceError logs the failure, records rule rejections and writes the
// mapped error response. operation labels the rejection metric.
func respondServiceError(w http.ResponseWriter, r *http.Request, operation string, err error) {
	log := logger.FromContext(r.Context())
	status, code := mapServiceError(err)

	resp := ErrorResponse{Error: code}
	if days, ok := daysRemaining(err); ok {
		resp.DaysRemaining = &days
	}

	if status >= http.StatusInternalServerError {
		log.Error(LogMsgRequestFailed, "operation", operation, "status", status, "error", err)
	} else {
		log.Warn(LogMsgRequestRejected, "operation", operation, "code", code, "error", err)
		metrics.RecordRejection(operation, code)
	}

	respondJSON(w, status, resp)
}

// money renders an amount as a JSON number with exactly two decimals
func money(d decimal.Decimal) json.Number {
	return json.Number(d.StringFixed(2))
}
