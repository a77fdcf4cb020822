// Package store provides data persistence interfaces and implementations.
package store

import (
	"context"
	"time"

	"github.com/trudesigns/studio/internal/domain"
)

// Repository defines the interface for persisting users and generated
// documents.
type Repository interface {
	// GetUser retrieves a user by their user ID. Returns (nil, nil) when
	// the user does not exist.
	GetUser(ctx context.Context, userID string) (*domain.User, error)

	// UpsertUser creates or updates a user record.
	UpsertUser(ctx context.Context, user *domain.User) error

	// SaveDocument persists a generated deliverable.
	SaveDocument(ctx context.Context, doc *domain.Document) error

	// GetDocument retrieves one document, scoped to its owner. Returns
	// (nil, nil) when not found.
	GetDocument(ctx context.Context, userID, docID string) (*domain.Document, error)

	// ListDocuments retrieves all documents for a user, newest first,
	// including PDF bytes.
	ListDocuments(ctx context.Context, userID string) ([]*domain.Document, error)

	// DeleteDocumentsBefore removes documents created before the cutoff
	// and reports how many were deleted.
	DeleteDocumentsBefore(ctx context.Context, cutoff time.Time) (int64, error)

	// Ping verifies database connectivity.
	Ping(ctx context.Context) error

	// Close closes the database connection.
	Close() error
}
