package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/trudesigns/studio/internal/prompt"
)

// ParseBriefRequest is the body of POST /api/brief/parse.
type ParseBriefRequest struct {
	Brief string `json:"brief"`
}

// ParseBrief auto-fills the structured intake fields from a pasted
// free-form brief.
func (h *Handler) ParseBrief(w http.ResponseWriter, r *http.Request) {
	var req ParseBriefRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Brief) == "" {
		Error(w, http.StatusBadRequest, "paste a brief first so it can be parsed")
		return
	}

	system, user := prompt.BuildBrief(req.Brief)
	text, err := h.model.Complete(r.Context(), system, user)
	if err != nil {
		slog.Error("Brief parse call failed", "error", err)
		WriteError(w, err)
		return
	}

	JSON(w, http.StatusOK, prompt.ParseBriefResponse(text))
}
