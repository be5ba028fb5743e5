package handler

import (
	"math"
	"net/http"

	"github.com/osse101/Ycine_Go/internal/domain"
	"github.com/osse101/Ycine_Go/internal/logger"
	"github.com/osse101/Ycine_Go/internal/metrics"
	"github.com/osse101/Ycine_Go/internal/progress"
)

// ProgressRequest is the body of POST /api/progress.
// CurrentTime is in seconds; fractional values are floored and a missing value means 0.
type ProgressRequest struct {
	UserID      string   `json:"userId" validate:"required"`
	VideoID     string   `json:"videoId" validate:"required"`
	CurrentTime *float64 `json:"currentTime" validate:"omitempty,min=0"`
	Completed   bool     `json:"completed"`
}

// ProgressResponse echoes the stored progress record
type ProgressResponse struct {
	OK       bool                 `json:"ok"`
	Progress domain.VideoProgress `json:"progress"`
}

// HandleRecordProgress handles POST /api/progress
// @Summary Record playback progress
// @Description Overwrites the playback state for one video (last write wins)
// @Tags videos
// @Accept json
// @Produce json
// @Param request body ProgressRequest true "Progress report"
// @Success 200 {object} ProgressResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/progress [post]
func HandleRecordProgress(svc progress.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ProgressRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Record progress"); err != nil {
			return
		}

		currentTime := 0
		if req.CurrentTime != nil && *req.CurrentTime < math.MaxInt32 {
			currentTime = int(math.Floor(*req.CurrentTime))
		}

		LogRequestFields(logger.FromContext(r.Context()),
			"user_id", req.UserID, "video_id", req.VideoID, "current_time", currentTime, "completed", req.Completed)

		p, err := svc.RecordProgress(r.Context(), req.UserID, req.VideoID, currentTime, req.Completed)
		if err != nil {
			respondServiceError(w, r, metrics.OperationProgress, err)
			return
		}

		respondJSON(w, http.StatusOK, ProgressResponse{OK: true, Progress: *p})
	}
}
