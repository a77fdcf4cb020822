// Package worker hosts background maintenance loops.
package worker

import (
	"context"
	"log/slog"
	"time"

	"github.com/trudesigns/studio/internal/store"
)

const sweepInterval = 1 * time.Hour

// StartRetention launches the document retention sweep: documents older
// than ttl are pruned once at startup and then on every tick. The loop
// exits when ctx is canceled.
func StartRetention(ctx context.Context, repo store.Repository, ttl time.Duration) {
	go func() {
		ticker := time.NewTicker(sweepInterval)
		defer ticker.Stop()

		sweep(ctx, repo, ttl)
		for {
			select {
			case <-ctx.Done():
				slog.Info("Retention worker stopped")
				return
			case <-ticker.C:
				sweep(ctx, repo, ttl)
			}
		}
	}()
}

func sweep(ctx context.Context, repo store.Repository, ttl time.Duration) {
	cutoff := time.Now().Add(-ttl)
	deleted, err := repo.DeleteDocumentsBefore(ctx, cutoff)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		slog.Error("Retention sweep failed", "error", err)
		return
	}
	if deleted > 0 {
		slog.Info("Retention sweep complete", "documents_deleted", deleted, "cutoff", cutoff)
	}
}
