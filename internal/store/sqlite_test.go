package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/trudesigns/studio/internal/domain"
)

func newTestStore(t *testing.T) Repository {
	t.Helper()
	repo, err := NewSQLite(filepath.Join(t.TempDir(), "studio.db"))
	if err != nil {
		t.Fatalf("NewSQLite failed: %v", err)
	}
	t.Cleanup(func() {
		if err := repo.Close(); err != nil {
			t.Errorf("Close failed: %v", err)
		}
	})
	return repo
}

func TestUserRoundTrip(t *testing.T) {
	repo := newTestStore(t)
	ctx := context.Background()

	got, err := repo.GetUser(ctx, "anon_missing")
	if err != nil {
		t.Fatalf("GetUser failed: %v", err)
	}
	if got != nil {
		t.Errorf("Expected nil for unknown user, got %+v", got)
	}

	now := time.Now().Truncate(time.Second)
	user := &domain.User{
		UserID:     "anon_abc",
		Username:   "studio-abc",
		LastSeenAt: now,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := repo.UpsertUser(ctx, user); err != nil {
		t.Fatalf("UpsertUser failed: %v", err)
	}

	got, err = repo.GetUser(ctx, "anon_abc")
	if err != nil {
		t.Fatalf("GetUser failed: %v", err)
	}
	if got == nil || got.Username != "studio-abc" || !got.CreatedAt.Equal(now) {
		t.Errorf("Unexpected user: %+v", got)
	}

	// Upsert again updates rather than duplicating.
	user.Username = "studio-renamed"
	if err := repo.UpsertUser(ctx, user); err != nil {
		t.Fatalf("UpsertUser failed: %v", err)
	}
	got, _ = repo.GetUser(ctx, "anon_abc")
	if got.Username != "studio-renamed" {
		t.Errorf("Expected updated username, got %q", got.Username)
	}
}

func TestDocumentRoundTrip(t *testing.T) {
	repo := newTestStore(t)
	ctx := context.Background()

	older := &domain.Document{
		DocID: "doc-1", UserID: "anon_abc", Feature: "style-guide",
		Title: "Lume - Brand Style Guide", Body: "## Guide",
		PDF: []byte("%PDF-1"), CreatedAt: time.Now().Add(-time.Hour),
	}
	newer := &domain.Document{
		DocID: "doc-2", UserID: "anon_abc", Feature: "color-palette",
		Title: "Lume - Color Palette", Body: "## Palette",
		CreatedAt: time.Now(),
	}
	other := &domain.Document{
		DocID: "doc-3", UserID: "anon_xyz", Feature: "brand-voice",
		Title: "Other - Brand Voice Guide", Body: "## Voice",
		CreatedAt: time.Now(),
	}
	for _, doc := range []*domain.Document{older, newer, other} {
		if err := repo.SaveDocument(ctx, doc); err != nil {
			t.Fatalf("SaveDocument(%s) failed: %v", doc.DocID, err)
		}
	}

	docs, err := repo.ListDocuments(ctx, "anon_abc")
	if err != nil {
		t.Fatalf("ListDocuments failed: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("Expected 2 documents, got %d", len(docs))
	}
	if docs[0].DocID != "doc-2" {
		t.Errorf("Expected newest first, got %s", docs[0].DocID)
	}

	got, err := repo.GetDocument(ctx, "anon_abc", "doc-1")
	if err != nil {
		t.Fatalf("GetDocument failed: %v", err)
	}
	if got == nil || string(got.PDF) != "%PDF-1" || got.Body != "## Guide" {
		t.Errorf("Unexpected document: %+v", got)
	}

	// Documents are owner-scoped.
	got, err = repo.GetDocument(ctx, "anon_abc", "doc-3")
	if err != nil {
		t.Fatalf("GetDocument failed: %v", err)
	}
	if got != nil {
		t.Errorf("Expected nil for another owner's document, got %+v", got)
	}
}

func TestDeleteDocumentsBefore(t *testing.T) {
	repo := newTestStore(t)
	ctx := context.Background()

	old := &domain.Document{
		DocID: "doc-old", UserID: "anon_abc", Feature: "style-guide",
		Title: "Old", Body: "old", CreatedAt: time.Now().Add(-48 * time.Hour),
	}
	fresh := &domain.Document{
		DocID: "doc-new", UserID: "anon_abc", Feature: "style-guide",
		Title: "New", Body: "new", CreatedAt: time.Now(),
	}
	for _, doc := range []*domain.Document{old, fresh} {
		if err := repo.SaveDocument(ctx, doc); err != nil {
			t.Fatalf("SaveDocument failed: %v", err)
		}
	}

	deleted, err := repo.DeleteDocumentsBefore(ctx, time.Now().Add(-24*time.Hour))
	if err != nil {
		t.Fatalf("DeleteDocumentsBefore failed: %v", err)
	}
	if deleted != 1 {
		t.Errorf("Expected 1 deletion, got %d", deleted)
	}

	docs, err := repo.ListDocuments(ctx, "anon_abc")
	if err != nil {
		t.Fatalf("ListDocuments failed: %v", err)
	}
	if len(docs) != 1 || docs[0].DocID != "doc-new" {
		t.Errorf("Expected only the fresh document, got %+v", docs)
	}
}
