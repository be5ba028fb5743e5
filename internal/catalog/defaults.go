package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/osse101/Ycine_Go/internal/domain"
)

const sampleVideoSrc = "https://interactive-examples.mdn.mozilla.net/media/cc0-videos/flower.mp4"

// DefaultVideos is the seed catalog. The postgres backend seeds the same rows by migration.
func DefaultVideos() []domain.Video {
	return []domain.Video{
		{ID: "VID1", Title: "إعلان منتج X", Value: decimal.NewFromInt(1000), Duration: 20, Thumbnail: "/static/img/v1.jpg", Src: sampleVideoSrc},
		{ID: "VID2", Title: "إعلان خدمة Y", Value: decimal.NewFromInt(800), Duration: 15, Thumbnail: "/static/img/v2.jpg", Src: sampleVideoSrc},
		{ID: "VID3", Title: "إعلان تطبيق Z", Value: decimal.NewFromInt(600), Duration: 12, Thumbnail: "/static/img/v3.jpg", Src: sampleVideoSrc},
	}
}
