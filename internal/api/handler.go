// Package api provides HTTP handlers for the studio API.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/trudesigns/studio/internal/export"
	"github.com/trudesigns/studio/internal/llm"
	"github.com/trudesigns/studio/internal/prompt"
	"github.com/trudesigns/studio/internal/store"
)

// ModelClient is the model API surface handlers depend on. Satisfied by
// *llm.Client; fakes stand in for it in tests.
type ModelClient interface {
	Complete(ctx context.Context, system, user string) (string, error)
	CompleteStream(ctx context.Context, system, user string, fn func(delta string) error) (string, error)
	GenerateImages(ctx context.Context, imagePrompt string, n int) ([][]byte, error)
}

// Handler provides common handler dependencies and utilities.
type Handler struct {
	repo  store.Repository
	model ModelClient
	isDev bool
}

// NewHandler creates a new Handler with common dependencies.
func NewHandler(repo store.Repository, model ModelClient, isDev bool) *Handler {
	return &Handler{repo: repo, model: model, isDev: isDev}
}

// JSON writes a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, `{"error": "failed to encode response"}`, http.StatusInternalServerError)
	}
}

// Error writes a JSON error response.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"error": message})
}

// WriteError maps pipeline errors onto HTTP responses: validation failures
// are the user's to fix (400), model failures are upstream (502), export
// failures are ours (500).
func WriteError(w http.ResponseWriter, err error) {
	var verr *prompt.ValidationError
	if errors.As(err, &verr) {
		JSON(w, http.StatusBadRequest, map[string]interface{}{
			"error":  verr.Error(),
			"fields": verr.Fields,
		})
		return
	}

	var serr *llm.ServiceError
	if errors.As(err, &serr) {
		Error(w, http.StatusBadGateway, serr.Error())
		return
	}

	var xerr *export.ExportError
	if errors.As(err, &xerr) {
		Error(w, http.StatusInternalServerError, xerr.Error())
		return
	}

	Error(w, http.StatusInternalServerError, err.Error())
}
