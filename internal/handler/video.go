package handler

import (
	"encoding/json"
	"net/http"

	"github.com/osse101/Ycine_Go/internal/catalog"
	"github.com/osse101/Ycine_Go/internal/domain"
	"github.com/osse101/Ycine_Go/internal/logger"
)

// VideoResponse is one catalog entry as clients see it
type VideoResponse struct {
	ID        string      `json:"id"`
	Title     string      `json:"title"`
	Value     json.Number `json:"value"`
	Duration  int         `json:"duration"`
	Thumbnail string      `json:"thumbnail"`
	Src       string      `json:"src"`
}

func toVideoResponse(v domain.Video) VideoResponse {
	return VideoResponse{
		ID:        v.ID,
		Title:     v.Title,
		Value:     json.Number(v.Value.String()),
		Duration:  v.Duration,
		Thumbnail: v.Thumbnail,
		Src:       v.Src,
	}
}

// HandleListVideos handles GET /api/videos
// @Summary List videos
// @Description Returns the full video catalog
// @Tags videos
// @Produce json
// @Success 200 {array} VideoResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/videos [get]
func HandleListVideos(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		videos, err := svc.ListVideos(r.Context())
		if err != nil {
			logger.FromContext(r.Context()).Error("Failed to list videos", "error", err)
			respondError(w, http.StatusInternalServerError, ErrCodeServerError)
			return
		}

		resp := make([]VideoResponse, 0, len(videos))
		for _, v := range videos {
			resp = append(resp, toVideoResponse(v))
		}
		respondJSON(w, http.StatusOK, resp)
	}
}
