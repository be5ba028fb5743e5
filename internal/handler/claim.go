package handler

import (
	"encoding/json"
	"net/http"

	"github.com/osse101/Ycine_Go/internal/domain"
	"github.com/osse101/Ycine_Go/internal/metrics"
	"github.com/osse101/Ycine_Go/internal/reward"
)

// ClaimRequest is the body of POST /api/claim
type ClaimRequest struct {
	UserID  string `json:"userId" validate:"required"`
	VideoID string `json:"videoId" validate:"required"`
}

// ClaimResponse reports the credited reward
type ClaimResponse struct {
	OK          bool         `json:"ok"`
	Reward      json.Number  `json:"reward"`
	NewBalance  json.Number  `json:"newBalance"`
	PlatformNet json.Number  `json:"platformNet"`
	Level       domain.Level `json:"level"`
}

// HandleClaim handles POST /api/claim
// @Summary Claim a video reward
// @Description Credits the viewer once per completed video and pays the inviter commission
// @Tags videos
// @Accept json
// @Produce json
// @Param request body ClaimRequest true "Claim details"
// @Success 200 {object} ClaimResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse "not_completed"
// @Failure 404 {object} ErrorResponse "no_user or video_not_found"
// @Failure 409 {object} ErrorResponse "already_claimed"
// @Router /api/claim [post]
func HandleClaim(svc reward.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ClaimRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Claim"); err != nil {
			return
		}

		res, err := svc.Claim(r.Context(), req.UserID, req.VideoID)
		if err != nil {
			respondServiceError(w, r, metrics.OperationClaim, err)
			return
		}

		respondJSON(w, http.StatusOK, ClaimResponse{
			OK:          true,
			Reward:      money(res.Reward),
			NewBalance:  money(res.NewBalance),
			PlatformNet: money(res.PlatformNet),
			Level:       res.Level,
		})
	}
}
