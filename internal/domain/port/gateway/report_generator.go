package gateway

import (
	"context"

	"github.com/amirhossein-jamali/portfolio-tracker/internal/domain/entity"
)

// HistoryReportGenerator renders a user's history as a downloadable file
type HistoryReportGenerator interface {
	// Generate returns the file contents, its extension and its MIME type
	Generate(ctx context.Context, username string, entries []entity.HistoryEntry) (content []byte, extension string, contentType string, err error)
}
