package handler

import (
	"encoding/json"
	"net/http"

	"github.com/osse101/Ycine_Go/internal/cardlink"
	"github.com/osse101/Ycine_Go/internal/catalog"
	"github.com/osse101/Ycine_Go/internal/logger"
	"github.com/osse101/Ycine_Go/internal/metrics"
	"github.com/osse101/Ycine_Go/internal/referral"
	"github.com/osse101/Ycine_Go/internal/withdrawal"
)

// AdminHandlers serves the API-key protected listings
type AdminHandlers struct {
	accounts    referral.Service
	withdrawals withdrawal.Service
	cards       cardlink.Service
	catalog     catalog.Service
}

// NewAdminHandlers creates new admin handlers
func NewAdminHandlers(accounts referral.Service, withdrawals withdrawal.Service, cards cardlink.Service, catalogSvc catalog.Service) *AdminHandlers {
	return &AdminHandlers{
		accounts:    accounts,
		withdrawals: withdrawals,
		cards:       cards,
		catalog:     catalogSvc,
	}
}

// AdminUser is one row of the account listing
type AdminUser struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Balance     json.Number `json:"balance"`
	TotalEarned json.Number `json:"totalEarned"`
}

// HandleListUsers handles GET /api/admin/users
// @Summary List accounts
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} AdminUser
// @Failure 401 {string} string "Unauthorized"
// @Router /api/admin/users [get]
func (h *AdminHandlers) HandleListUsers() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accounts, err := h.accounts.ListAccounts(r.Context())
		if err != nil {
			logger.FromContext(r.Context()).Error("Failed to list accounts", "error", err)
			respondError(w, http.StatusInternalServerError, ErrCodeServerError)
			return
		}

		resp := make([]AdminUser, 0, len(accounts))
		for _, acc := range accounts {
			resp = append(resp, AdminUser{
				ID:          acc.ID,
				Name:        acc.Name,
				Balance:     money(acc.Balance),
				TotalEarned: money(acc.TotalEarned),
			})
		}
		respondJSON(w, http.StatusOK, resp)
	}
}

// HandleListWithdrawals handles GET /api/admin/withdrawals
// @Summary List withdrawals
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} WithdrawalRecord
// @Failure 401 {string} string "Unauthorized"
// @Router /api/admin/withdrawals [get]
func (h *AdminHandlers) HandleListWithdrawals() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		records, err := h.withdrawals.ListWithdrawals(r.Context())
		if err != nil {
			logger.FromContext(r.Context()).Error("Failed to list withdrawals", "error", err)
			respondError(w, http.StatusInternalServerError, ErrCodeServerError)
			return
		}

		resp := make([]WithdrawalRecord, 0, len(records))
		for _, wd := range records {
			resp = append(resp, toWithdrawalRecord(wd))
		}
		respondJSON(w, http.StatusOK, resp)
	}
}

// HandleListPaymentLinks handles GET /api/admin/users/{id}/payment-links
// @Summary Payment link history for one account
// @Description Includes duplicate-card audit records
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Account id"
// @Success 200 {array} PaymentLinkView
// @Router /api/admin/users/{id}/payment-links [get]
func (h *AdminHandlers) HandleListPaymentLinks() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetPathParam(r, w, "id")
		if !ok {
			return
		}

		links, err := h.cards.ListPaymentLinks(r.Context(), id)
		if err != nil {
			respondServiceError(w, r, metrics.OperationAccount, err)
			return
		}

		resp := make([]*PaymentLinkView, 0, len(links))
		for i := range links {
			resp = append(resp, toPaymentLinkView(&links[i]))
		}
		respondJSON(w, http.StatusOK, resp)
	}
}

// HandleGetCacheStats handles GET /api/admin/cache/stats
// @Summary Catalog cache statistics
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} catalog.CacheStats
// @Router /api/admin/cache/stats [get]
func (h *AdminHandlers) HandleGetCacheStats() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, h.catalog.GetCacheStats())
	}
}

// HandleInvalidateCache handles POST /api/admin/cache/invalidate
// @Summary Drop cached catalog entries
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} OKResponse
// @Router /api/admin/cache/invalidate [post]
func (h *AdminHandlers) HandleInvalidateCache() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.catalog.InvalidateCache()
		logger.FromContext(r.Context()).Info("Catalog cache invalidated")
		respondJSON(w, http.StatusOK, OKResponse{OK: true})
	}
}
