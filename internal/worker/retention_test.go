package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/trudesigns/studio/internal/domain"
)

type sweepRepo struct {
	deleted int64
	cutoff  time.Time
	err     error
	swept   chan struct{}
}

func (r *sweepRepo) DeleteDocumentsBefore(_ context.Context, cutoff time.Time) (int64, error) {
	r.cutoff = cutoff
	if r.swept != nil {
		select {
		case r.swept <- struct{}{}:
		default:
		}
	}
	return r.deleted, r.err
}

func (r *sweepRepo) GetUser(context.Context, string) (*domain.User, error)   { return nil, nil }
func (r *sweepRepo) UpsertUser(context.Context, *domain.User) error          { return nil }
func (r *sweepRepo) SaveDocument(context.Context, *domain.Document) error    { return nil }
func (r *sweepRepo) GetDocument(context.Context, string, string) (*domain.Document, error) {
	return nil, nil
}
func (r *sweepRepo) ListDocuments(context.Context, string) ([]*domain.Document, error) {
	return nil, nil
}
func (r *sweepRepo) Ping(context.Context) error { return nil }
func (r *sweepRepo) Close() error               { return nil }

func TestSweepCutoff(t *testing.T) {
	repo := &sweepRepo{deleted: 3}
	ttl := 24 * time.Hour

	before := time.Now().Add(-ttl)
	sweep(context.Background(), repo, ttl)
	after := time.Now().Add(-ttl)

	if repo.cutoff.Before(before) || repo.cutoff.After(after) {
		t.Errorf("Expected cutoff near now-ttl, got %v", repo.cutoff)
	}
}

func TestStartRetentionSweepsAtStartup(t *testing.T) {
	repo := &sweepRepo{swept: make(chan struct{}, 1)}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	StartRetention(ctx, repo, 24*time.Hour)

	// Expired documents must not survive until the first tick.
	select {
	case <-repo.swept:
	case <-time.After(2 * time.Second):
		t.Fatal("Expected an immediate sweep at startup")
	}
}

func TestSweepSwallowsErrors(t *testing.T) {
	repo := &sweepRepo{err: errors.New("database is locked")}

	// Must not panic; the next tick retries.
	sweep(context.Background(), repo, time.Hour)
}
