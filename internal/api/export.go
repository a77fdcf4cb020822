package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/trudesigns/studio/internal/export"
	"github.com/trudesigns/studio/internal/identity"
)

// ListDocuments returns metadata for the current user's deliverables,
// newest first. PDF bytes stay server-side; the frontend links to the
// download endpoints.
func (h *Handler) ListDocuments(w http.ResponseWriter, r *http.Request) {
	userID := identity.UserIDFromContext(r.Context())
	if userID == "" {
		Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	docs, err := h.repo.ListDocuments(r.Context(), userID)
	if err != nil {
		slog.Error("Failed to list documents", "user_id", userID, "error", err)
		WriteError(w, err)
		return
	}

	type docInfo struct {
		DocID     string `json:"doc_id"`
		Feature   string `json:"feature"`
		Title     string `json:"title"`
		CreatedAt int64  `json:"created_at"`
		HasPDF    bool   `json:"has_pdf"`
	}
	infos := make([]docInfo, 0, len(docs))
	for _, d := range docs {
		infos = append(infos, docInfo{
			DocID:     d.DocID,
			Feature:   d.Feature,
			Title:     d.Title,
			CreatedAt: d.CreatedAt.Unix(),
			HasPDF:    d.HasPDF(),
		})
	}
	JSON(w, http.StatusOK, infos)
}

// DownloadPDF streams one stored PDF.
func (h *Handler) DownloadPDF(w http.ResponseWriter, r *http.Request) {
	userID := identity.UserIDFromContext(r.Context())
	if userID == "" {
		Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	doc, err := h.repo.GetDocument(r.Context(), userID, chi.URLParam(r, "docID"))
	if err != nil {
		WriteError(w, err)
		return
	}
	if doc == nil || !doc.HasPDF() {
		Error(w, http.StatusNotFound, "document not found")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+doc.FileName()+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(doc.PDF)))
	if _, err := w.Write(doc.PDF); err != nil {
		slog.Debug("PDF download interrupted", "doc_id", doc.DocID, "error", err)
	}
}

// DownloadZIP bundles every stored PDF for the user into a project folder.
func (h *Handler) DownloadZIP(w http.ResponseWriter, r *http.Request) {
	userID := identity.UserIDFromContext(r.Context())
	if userID == "" {
		Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	docs, err := h.repo.ListDocuments(r.Context(), userID)
	if err != nil {
		WriteError(w, err)
		return
	}
	exportable := false
	for _, d := range docs {
		if d.HasPDF() {
			exportable = true
			break
		}
	}
	if !exportable {
		Error(w, http.StatusNotFound, "no documents with PDFs to export yet")
		return
	}

	archive, err := export.ProjectZIP(docs)
	if err != nil {
		slog.Error("Project ZIP export failed", "user_id", userID, "error", err)
		WriteError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", `attachment; filename="project.zip"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(archive)))
	if _, err := w.Write(archive); err != nil {
		slog.Debug("ZIP download interrupted", "user_id", userID, "error", err)
	}
}
