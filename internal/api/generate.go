package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/trudesigns/studio/internal/domain"
	"github.com/trudesigns/studio/internal/export"
	"github.com/trudesigns/studio/internal/feature"
	"github.com/trudesigns/studio/internal/identity"
	"github.com/trudesigns/studio/internal/present"
	"github.com/trudesigns/studio/internal/prompt"
)

// GenerateRequest is the body of POST /api/generate.
type GenerateRequest struct {
	Feature string        `json:"feature"`
	Intake  domain.Intake `json:"intake"`
}

// GenerateResponse carries the rendered deliverable back to the frontend.
type GenerateResponse struct {
	DocID       string           `json:"doc_id"`
	Feature     string           `json:"feature"`
	Title       string           `json:"title"`
	Rendered    present.Rendered `json:"rendered"`
	PDFURL      string           `json:"pdf_url,omitempty"`
	ExportError string           `json:"export_error,omitempty"`
}

// RegisterRoutes registers the studio API routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		r.Get("/features", h.Features)
		r.Post("/generate", h.Generate)
		r.Post("/brief/parse", h.ParseBrief)
		r.Post("/moodboard", h.Moodboard)
		r.Get("/documents", h.ListDocuments)
		r.Get("/documents/{docID}/pdf", h.DownloadPDF)
		r.Get("/export/zip", h.DownloadZIP)
	})
}

// Generate runs the full pipeline for one feature: validate the intake,
// build the prompt, call the model, present the response, and persist the
// deliverable with its PDF.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	userID := identity.UserIDFromContext(r.Context())
	if userID == "" {
		Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	spec, ok := feature.FromSlug(req.Feature)
	if !ok {
		Error(w, http.StatusBadRequest, "unknown feature: "+req.Feature)
		return
	}

	system, user, err := prompt.Build(spec, &req.Intake)
	if err != nil {
		WriteError(w, err)
		return
	}

	slog.Info("Generating deliverable", "feature", spec.Slug, "user_id", userID)
	text, err := h.model.Complete(r.Context(), system, user)
	if err != nil {
		slog.Error("Model call failed", "feature", spec.Slug, "error", err)
		WriteError(w, err)
		return
	}

	rendered := present.Render(spec, text)

	doc := &domain.Document{
		DocID:     uuid.NewString(),
		UserID:    userID,
		Feature:   spec.Slug,
		Title:     req.Intake.ClientName + " - " + spec.Title,
		Body:      rendered.Markdown,
		CreatedAt: time.Now(),
	}

	resp := GenerateResponse{
		DocID:    doc.DocID,
		Feature:  spec.Slug,
		Title:    doc.Title,
		Rendered: rendered,
	}

	// A failed export disables the download for this attempt but never
	// loses the rendered content.
	pdf, err := export.PDF(doc.Title, rendered.Markdown)
	if err != nil {
		slog.Warn("PDF export failed", "feature", spec.Slug, "error", err)
		resp.ExportError = err.Error()
	} else {
		doc.PDF = pdf
		resp.PDFURL = "/api/documents/" + doc.DocID + "/pdf"
	}

	if err := h.repo.SaveDocument(r.Context(), doc); err != nil {
		slog.Error("Failed to persist document", "doc_id", doc.DocID, "error", err)
		WriteError(w, err)
		return
	}

	JSON(w, http.StatusOK, resp)
}
