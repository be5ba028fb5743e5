package handler

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/osse101/Ycine_Go/internal/domain"
	"github.com/osse101/Ycine_Go/internal/metrics"
	"github.com/osse101/Ycine_Go/internal/withdrawal"
)

// WithdrawRequest is the body of POST /api/withdraw.
// Amount may be sent as a JSON number or a numeric string.
type WithdrawRequest struct {
	UserID string      `json:"userId" validate:"required"`
	Amount json.Number `json:"amount" validate:"required,amount"`
}

// WithdrawResponse reports the processed payout
type WithdrawResponse struct {
	OK      bool        `json:"ok"`
	Message string      `json:"message"`
	Net     json.Number `json:"net"`
	Fee     json.Number `json:"fee"`
}

// WithdrawalRecord is one entry of the withdrawal log
type WithdrawalRecord struct {
	ID        string      `json:"id"`
	UserID    string      `json:"userId"`
	Amount    json.Number `json:"amount"`
	Fee       json.Number `json:"fee"`
	Net       json.Number `json:"net"`
	PaymentID string      `json:"paymentId"`
	Status    string      `json:"status"`
	CreatedAt time.Time   `json:"createdAt"`
}

func toWithdrawalRecord(wd domain.Withdrawal) WithdrawalRecord {
	return WithdrawalRecord{
		ID:        wd.ID,
		UserID:    wd.UserID,
		Amount:    money(wd.Amount),
		Fee:       money(wd.Fee),
		Net:       money(wd.Net),
		PaymentID: wd.PaymentID,
		Status:    wd.Status,
		CreatedAt: wd.CreatedAt,
	}
}

// HandleWithdraw handles POST /api/withdraw
// @Summary Withdraw balance
// @Description Debits the gross amount and pays out net of the fee. One withdrawal per cooldown window.
// @Tags withdrawals
// @Accept json
// @Produce json
// @Param request body WithdrawRequest true "Withdrawal details"
// @Success 200 {object} WithdrawResponse
// @Failure 400 {object} ErrorResponse "bad or invalid_amount"
// @Failure 403 {object} ErrorResponse "no_linked_payment or withdraw_weekly with daysRemaining"
// @Failure 404 {object} ErrorResponse "no_user"
// @Router /api/withdraw [post]
func HandleWithdraw(svc withdrawal.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req WithdrawRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Withdraw"); err != nil {
			return
		}

		amount, err := decimal.NewFromString(strings.TrimSpace(req.Amount.String()))
		if err != nil {
			respondError(w, http.StatusBadRequest, ErrCodeBad)
			return
		}

		wd, err := svc.Withdraw(r.Context(), req.UserID, amount)
		if err != nil {
			respondServiceError(w, r, metrics.OperationWithdraw, err)
			return
		}

		respondJSON(w, http.StatusOK, WithdrawResponse{
			OK:      true,
			Message: MsgWithdrawProcessed,
			Net:     money(wd.Net),
			Fee:     money(wd.Fee),
		})
	}
}
