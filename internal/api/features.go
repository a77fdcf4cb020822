package api

import (
	"net/http"

	"github.com/trudesigns/studio/internal/feature"
)

// FeatureInfo is the frontend-facing description of one deliverable kind.
type FeatureInfo struct {
	Slug   string `json:"slug"`
	Title  string `json:"title"`
	Shape  string `json:"shape"`
	Images bool   `json:"images"`
}

func shapeName(s feature.Shape) string {
	switch s {
	case feature.ShapeSwatches:
		return "swatches"
	case feature.ShapeCalendar:
		return "calendar"
	default:
		return "markdown"
	}
}

// Features lists the available deliverable kinds for the feature picker.
func (h *Handler) Features(w http.ResponseWriter, _ *http.Request) {
	specs := feature.All()
	infos := make([]FeatureInfo, 0, len(specs))
	for _, s := range specs {
		infos = append(infos, FeatureInfo{
			Slug:   s.Slug,
			Title:  s.Title,
			Shape:  shapeName(s.Shape),
			Images: s.Images,
		})
	}
	JSON(w, http.StatusOK, infos)
}
