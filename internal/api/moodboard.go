package api

import (
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/trudesigns/studio/internal/domain"
	"github.com/trudesigns/studio/internal/prompt"
)

const moodboardImageCount = 3

// MoodboardRequest is the body of POST /api/moodboard.
type MoodboardRequest struct {
	Intake domain.Intake `json:"intake"`
}

// MoodboardResponse carries base64-encoded PNG images.
type MoodboardResponse struct {
	Images []string `json:"images"`
}

// Moodboard generates logo moodboard images for the AI Logo Sketch Kit.
// The frontend calls it separately from text generation so an image failure
// never costs the user the written kit.
func (h *Handler) Moodboard(w http.ResponseWriter, r *http.Request) {
	var req MoodboardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := prompt.Validate(&req.Intake); err != nil {
		WriteError(w, err)
		return
	}

	images, err := h.model.GenerateImages(r.Context(), prompt.Moodboard(&req.Intake), moodboardImageCount)
	if err != nil {
		slog.Warn("Moodboard generation failed", "error", err)
		WriteError(w, err)
		return
	}

	resp := MoodboardResponse{Images: make([]string, 0, len(images))}
	for _, img := range images {
		resp.Images = append(resp.Images, base64.StdEncoding.EncodeToString(img))
	}
	JSON(w, http.StatusOK, resp)
}
