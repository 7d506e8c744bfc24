package persistence

import (
	"context"

	"github.com/amirhossein-jamali/portfolio-tracker/internal/domain/entity"
)

// HistoryRepository is the append-only transaction log
type HistoryRepository interface {
	// Append records an entry and assigns its ID
	Append(ctx context.Context, entry *entity.HistoryEntry) error

	// ListByUser returns all entries of a user, newest first
	ListByUser(ctx context.Context, userID uint64) ([]entity.HistoryEntry, error)
}
