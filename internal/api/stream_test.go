package api

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/trudesigns/studio/internal/domain"
)

func dialStream(t *testing.T, ctx context.Context, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/generate"
	conn, _, err := websocket.Dial(ctx, url, nil)
	if err != nil {
		t.Fatalf("Failed to dial %s: %v", url, err)
	}
	t.Cleanup(func() { conn.Close(websocket.StatusNormalClosure, "") })
	return conn
}

func wsWriteMessage(t *testing.T, ctx context.Context, conn *websocket.Conn, msg wsMessage) {
	t.Helper()
	data, err := json.Marshal(msg)
	if err != nil {
		t.Fatal(err)
	}
	if err := conn.Write(ctx, websocket.MessageText, data); err != nil {
		t.Fatalf("Failed to write message: %v", err)
	}
}

func wsReadMessage(t *testing.T, ctx context.Context, conn *websocket.Conn) wsMessage {
	t.Helper()
	_, data, err := conn.Read(ctx)
	if err != nil {
		t.Fatalf("Failed to read message: %v", err)
	}
	var msg wsMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		t.Fatalf("Failed to decode message %q: %v", data, err)
	}
	return msg
}

func TestStreamGenerate(t *testing.T) {
	repo := newFakeRepo()
	model := &fakeModel{text: "## Brand Voice\n\nWarm and direct."}
	srv := newTestServer(t, repo, model)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	conn := dialStream(t, ctx, srv)
	intake := validIntake()
	wsWriteMessage(t, ctx, conn, wsMessage{Type: "generate", Feature: "brand-voice", Intake: &intake})

	var streamed strings.Builder
	var done wsMessage
	for {
		msg := wsReadMessage(t, ctx, conn)
		switch msg.Type {
		case "delta":
			streamed.WriteString(msg.Content)
		case "done":
			done = msg
		case "error":
			t.Fatalf("Unexpected error message: %q", msg.Message)
		default:
			t.Fatalf("Unexpected message type %q", msg.Type)
		}
		if done.Type == "done" {
			break
		}
	}

	if streamed.String() != model.text {
		t.Errorf("Expected deltas to accumulate to the full response, got %q", streamed.String())
	}
	if done.DocID == "" {
		t.Error("Expected done message to carry a document id")
	}
	if done.PDFURL == "" {
		t.Error("Expected done message to carry a PDF URL")
	}
	if done.Render == nil || done.Render.Markdown != model.text {
		t.Errorf("Expected rendered markdown in done message, got %+v", done.Render)
	}

	// The deliverable is persisted exactly like the synchronous endpoint.
	if len(repo.docs) != 1 {
		t.Fatalf("Expected one stored document, got %d", len(repo.docs))
	}
	if repo.docs[0].DocID != done.DocID {
		t.Errorf("Expected stored doc %q, got %q", done.DocID, repo.docs[0].DocID)
	}
	if !repo.docs[0].HasPDF() {
		t.Error("Expected stored document to carry PDF bytes")
	}
}

func TestStreamGenerateValidationError(t *testing.T) {
	repo := newFakeRepo()
	model := &fakeModel{text: "should never be returned"}
	srv := newTestServer(t, repo, model)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	conn := dialStream(t, ctx, srv)
	wsWriteMessage(t, ctx, conn, wsMessage{
		Type:    "generate",
		Feature: "style-guide",
		Intake:  &domain.Intake{ClientName: "Lume"}, // no descriptive fields
	})

	msg := wsReadMessage(t, ctx, conn)
	if msg.Type != "error" {
		t.Fatalf("Expected error message, got %q", msg.Type)
	}
	if len(msg.Fields) != 1 || msg.Fields[0] != "brief" {
		t.Errorf("Expected missing field [brief], got %v", msg.Fields)
	}
	if model.completeCalls() != 0 {
		t.Errorf("Expected zero model calls on validation failure, got %d", model.completeCalls())
	}
	if len(repo.docs) != 0 {
		t.Error("Expected no document persisted")
	}
}

func TestStreamGenerateUnknownFeature(t *testing.T) {
	srv := newTestServer(t, newFakeRepo(), &fakeModel{})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	conn := dialStream(t, ctx, srv)
	intake := validIntake()
	wsWriteMessage(t, ctx, conn, wsMessage{Type: "generate", Feature: "mind-reading", Intake: &intake})

	msg := wsReadMessage(t, ctx, conn)
	if msg.Type != "error" || !strings.Contains(msg.Message, "unknown feature") {
		t.Errorf("Expected unknown-feature error, got %+v", msg)
	}
}

func TestStreamGenerateRejectsUnexpectedFirstMessage(t *testing.T) {
	srv := newTestServer(t, newFakeRepo(), &fakeModel{})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	conn := dialStream(t, ctx, srv)
	wsWriteMessage(t, ctx, conn, wsMessage{Type: "ping"})

	msg := wsReadMessage(t, ctx, conn)
	if msg.Type != "error" || !strings.Contains(msg.Message, "expected a generate message") {
		t.Errorf("Expected protocol error, got %+v", msg)
	}
}
