// Package store provides data persistence interfaces and implementations.
package store

import (
	"context"

	"github.com/personachat/personachat/internal/domain"
)

// Store defines the interface for persisting feedback records. The table is
// append-only: records are never updated or deleted.
type Store interface {
	// AppendFeedback inserts one record and assigns its ID.
	AppendFeedback(ctx context.Context, rec *domain.FeedbackRecord) error

	// AllFeedback returns every record in insertion order. A full scan is
	// fine here: volumes are interactive single-user feedback logs.
	AllFeedback(ctx context.Context) ([]*domain.FeedbackRecord, error)

	// Ping verifies database connectivity.
	Ping(ctx context.Context) error

	// Close closes the database connection.
	Close() error
}
