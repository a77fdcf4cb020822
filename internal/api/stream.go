package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"github.com/trudesigns/studio/internal/domain"
	"github.com/trudesigns/studio/internal/export"
	"github.com/trudesigns/studio/internal/feature"
	"github.com/trudesigns/studio/internal/identity"
	"github.com/trudesigns/studio/internal/present"
	"github.com/trudesigns/studio/internal/prompt"
)

// wsMessage is the envelope for streaming generation messages.
//
// Client → server: {"type":"generate","feature":...,"intake":{...}}
// Server → client: {"type":"delta","content":...} repeated, then one
// {"type":"done",...} or {"type":"error",...}.
type wsMessage struct {
	Type    string            `json:"type"`
	Feature string            `json:"feature,omitempty"`
	Intake  *domain.Intake    `json:"intake,omitempty"`
	Content string            `json:"content,omitempty"`
	Message string            `json:"message,omitempty"`
	Fields  []string          `json:"fields,omitempty"`
	DocID   string            `json:"doc_id,omitempty"`
	Render  *present.Rendered `json:"rendered,omitempty"`
	PDFURL  string            `json:"pdf_url,omitempty"`
}

const streamTimeout = 5 * time.Minute

// StreamGenerate serves /ws/generate: one generation request in, content
// deltas out as the model produces them, then a terminal done or error
// message. The finished deliverable is persisted exactly like the
// synchronous endpoint.
func (h *Handler) StreamGenerate(w http.ResponseWriter, r *http.Request) {
	userID := identity.UserIDFromContext(r.Context())
	if userID == "" {
		Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		InsecureSkipVerify: h.isDev,
	})
	if err != nil {
		slog.Debug("WebSocket accept failed", "error", err)
		return
	}
	defer conn.Close(websocket.StatusInternalError, "stream ended unexpectedly")

	ctx, cancel := context.WithTimeout(r.Context(), streamTimeout)
	defer cancel()

	var req wsMessage
	if _, data, err := conn.Read(ctx); err != nil {
		return
	} else if err := json.Unmarshal(data, &req); err != nil || req.Type != "generate" {
		h.wsSend(ctx, conn, wsMessage{Type: "error", Message: "expected a generate message"})
		conn.Close(websocket.StatusUnsupportedData, "bad request")
		return
	}

	spec, ok := feature.FromSlug(req.Feature)
	if !ok {
		h.wsSend(ctx, conn, wsMessage{Type: "error", Message: "unknown feature: " + req.Feature})
		conn.Close(websocket.StatusNormalClosure, "")
		return
	}

	intake := req.Intake
	if intake == nil {
		intake = &domain.Intake{}
	}
	system, user, err := prompt.Build(spec, intake)
	if err != nil {
		var fields []string
		var verr *prompt.ValidationError
		if errors.As(err, &verr) {
			fields = verr.Fields
		}
		h.wsSend(ctx, conn, wsMessage{Type: "error", Message: err.Error(), Fields: fields})
		conn.Close(websocket.StatusNormalClosure, "")
		return
	}

	slog.Info("Streaming deliverable", "feature", spec.Slug, "user_id", userID)
	text, err := h.model.CompleteStream(ctx, system, user, func(delta string) error {
		return h.wsSend(ctx, conn, wsMessage{Type: "delta", Content: delta})
	})
	if err != nil {
		slog.Error("Streaming model call failed", "feature", spec.Slug, "error", err)
		h.wsSend(ctx, conn, wsMessage{Type: "error", Message: err.Error()})
		conn.Close(websocket.StatusNormalClosure, "")
		return
	}

	rendered := present.Render(spec, text)
	doc := &domain.Document{
		DocID:     uuid.NewString(),
		UserID:    userID,
		Feature:   spec.Slug,
		Title:     intake.ClientName + " - " + spec.Title,
		Body:      rendered.Markdown,
		CreatedAt: time.Now(),
	}

	done := wsMessage{Type: "done", DocID: doc.DocID, Render: &rendered}
	if pdf, err := export.PDF(doc.Title, rendered.Markdown); err != nil {
		slog.Warn("PDF export failed", "feature", spec.Slug, "error", err)
	} else {
		doc.PDF = pdf
		done.PDFURL = "/api/documents/" + doc.DocID + "/pdf"
	}

	if err := h.repo.SaveDocument(ctx, doc); err != nil {
		slog.Error("Failed to persist streamed document", "doc_id", doc.DocID, "error", err)
		h.wsSend(ctx, conn, wsMessage{Type: "error", Message: "failed to save document"})
		conn.Close(websocket.StatusNormalClosure, "")
		return
	}

	h.wsSend(ctx, conn, done)
	conn.Close(websocket.StatusNormalClosure, "")
}

func (h *Handler) wsSend(ctx context.Context, conn *websocket.Conn, msg wsMessage) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	if err := conn.Write(ctx, websocket.MessageText, data); err != nil {
		slog.Debug("WebSocket write failed", "error", err)
		return err
	}
	return nil
}
