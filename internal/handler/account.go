package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/osse101/Ycine_Go/internal/domain"
	"github.com/osse101/Ycine_Go/internal/logger"
	"github.com/osse101/Ycine_Go/internal/metrics"
	"github.com/osse101/Ycine_Go/internal/referral"
)

// AccountHandlers serves signup, login, invite lookup and profiles
type AccountHandlers struct {
	svc referral.Service
}

// NewAccountHandlers creates new account handlers
func NewAccountHandlers(svc referral.Service) *AccountHandlers {
	return &AccountHandlers{svc: svc}
}

// SignupRequest is the body of POST /api/signup
type SignupRequest struct {
	Name       string `json:"name" validate:"required,notblank,max=64"`
	InviteCode string `json:"inviteCode" validate:"max=32"`
}

// LoginRequest is the body of POST /api/login
type LoginRequest struct {
	Name string `json:"name" validate:"required,notblank,max=64"`
}

// UserSummary is the minimal profile returned on signup and login
type UserSummary struct {
	ID              string      `json:"id"`
	Name            string      `json:"name"`
	Balance         json.Number `json:"balance"`
	InviteCode      string      `json:"inviteCode"`
	LinkedPaymentID *string     `json:"linked_payment_id"`
	IsVerified      bool        `json:"is_verified"`
	Watched         []string    `json:"watched"`
}

// UserResponse wraps a UserSummary
type UserResponse struct {
	Success bool        `json:"success"`
	User    UserSummary `json:"user"`
}

// AccountProfile is the full account view
type AccountProfile struct {
	UserSummary
	TotalEarned  json.Number       `json:"totalEarned"`
	Level        domain.Level      `json:"level"`
	Invites      int               `json:"invites"`
	InviterID    *string           `json:"inviterId"`
	DailyCount   domain.DailyCount `json:"dailyCount"`
	LastWithdraw *time.Time        `json:"lastWithdraw"`
	CreatedAt    time.Time         `json:"createdAt"`
}

// ProfileResponse is returned by GET /api/account/{id}
type ProfileResponse struct {
	OK   bool           `json:"ok"`
	User AccountProfile `json:"user"`
}

// InviterSummary identifies the owner of an invite code
type InviterSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// InviteResponse is returned by GET /api/invite/{code}
type InviteResponse struct {
	OK      bool           `json:"ok"`
	Inviter InviterSummary `json:"inviter"`
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func toUserSummary(acc *domain.Account) UserSummary {
	watched := acc.Watched
	if watched == nil {
		watched = []string{}
	}
	return UserSummary{
		ID:              acc.ID,
		Name:            acc.Name,
		Balance:         money(acc.Balance),
		InviteCode:      acc.InviteCode,
		LinkedPaymentID: nullable(acc.LinkedPaymentID),
		IsVerified:      acc.IsVerified,
		Watched:         watched,
	}
}

func toAccountProfile(acc *domain.Account) AccountProfile {
	return AccountProfile{
		UserSummary:  toUserSummary(acc),
		TotalEarned:  money(acc.TotalEarned),
		Level:        acc.Level,
		Invites:      acc.Invites,
		InviterID:    nullable(acc.InviterID),
		DailyCount:   acc.DailyCount,
		LastWithdraw: acc.LastWithdraw,
		CreatedAt:    acc.CreatedAt,
	}
}

// HandleSignup handles POST /api/signup
// @Summary Sign up
// @Description Creates an account for name, or returns the existing one. An unknown invite code is ignored.
// @Tags account
// @Accept json
// @Produce json
// @Param request body SignupRequest true "Signup details"
// @Success 200 {object} UserResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/signup [post]
func (h *AccountHandlers) HandleSignup() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SignupRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Signup"); err != nil {
			return
		}

		acc, created, err := h.svc.Signup(r.Context(), req.Name, strings.TrimSpace(req.InviteCode))
		if err != nil {
			respondServiceError(w, r, metrics.OperationSignup, err)
			return
		}

		logger.FromContext(r.Context()).Debug("Signup handled", "user_id", acc.ID, "created", created)
		respondJSON(w, http.StatusOK, UserResponse{Success: true, User: toUserSummary(acc)})
	}
}

// HandleLogin handles POST /api/login
// @Summary Log in
// @Description Looks up an account by exact name
// @Tags account
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login details"
// @Success 200 {object} UserResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/login [post]
func (h *AccountHandlers) HandleLogin() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Login"); err != nil {
			return
		}

		acc, err := h.svc.Login(r.Context(), req.Name)
		if err != nil {
			if errors.Is(err, domain.ErrUserNotFound) {
				metrics.RecordRejection(metrics.OperationLogin, ErrCodeNotFound)
				respondError(w, http.StatusNotFound, ErrCodeNotFound)
				return
			}
			respondServiceError(w, r, metrics.OperationLogin, err)
			return
		}

		respondJSON(w, http.StatusOK, UserResponse{Success: true, User: toUserSummary(acc)})
	}
}

// HandleInviteInfo handles GET /api/invite/{code}
// @Summary Resolve invite code
// @Tags account
// @Produce json
// @Param code path string true "Invite code"
// @Success 200 {object} InviteResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/invite/{code} [get]
func (h *AccountHandlers) HandleInviteInfo() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		code, ok := GetPathParam(r, w, "code")
		if !ok {
			return
		}

		inviter, err := h.svc.InviteInfo(r.Context(), code)
		if err != nil {
			if errors.Is(err, domain.ErrInviteNotFound) || errors.Is(err, domain.ErrUserNotFound) {
				metrics.RecordRejection(metrics.OperationInvite, ErrCodeNotFound)
				respondError(w, http.StatusNotFound, ErrCodeNotFound)
				return
			}
			respondServiceError(w, r, metrics.OperationInvite, err)
			return
		}

		respondJSON(w, http.StatusOK, InviteResponse{
			OK:      true,
			Inviter: InviterSummary{ID: inviter.ID, Name: inviter.Name},
		})
	}
}

// HandleGetAccount handles GET /api/account/{id}
// @Summary Account profile
// @Tags account
// @Produce json
// @Param id path string true "Account id"
// @Success 200 {object} ProfileResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/account/{id} [get]
func (h *AccountHandlers) HandleGetAccount() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetPathParam(r, w, "id")
		if !ok {
			return
		}

		acc, err := h.svc.GetAccount(r.Context(), id)
		if err != nil {
			respondServiceError(w, r, metrics.OperationAccount, err)
			return
		}

		respondJSON(w, http.StatusOK, ProfileResponse{OK: true, User: toAccountProfile(acc)})
	}
}
