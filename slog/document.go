package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/Achintya1800/lexdoc"
)

// Ensure LoggingDocumentService implements lexdoc.DocumentService at compile time.
var _ lexdoc.DocumentService = (*LoggingDocumentService)(nil)

// LoggingDocumentService wraps a DocumentService with structured logging
// of batch sizes and timings.
type LoggingDocumentService struct {
	next   lexdoc.DocumentService
	logger *slog.Logger
}

// NewLoggingDocumentService creates a new LoggingDocumentService.
func NewLoggingDocumentService(next lexdoc.DocumentService, logger *slog.Logger) *LoggingDocumentService {
	return &LoggingDocumentService{next: next, logger: logger}
}

// UpsertDocuments delegates to the wrapped service and logs the batch
// size and insert count.
func (s *LoggingDocumentService) UpsertDocuments(ctx context.Context, items []lexdoc.RawItem) (int, error) {
	begin := time.Now()
	inserted, err := s.next.UpsertDocuments(ctx, items)
	if err != nil {
		s.logger.Error("upsert documents",
			"items", len(items),
			"duration", time.Since(begin),
			"err", err.Error(),
		)
		return 0, err
	}

	s.logger.Info("upsert documents",
		"items", len(items),
		"inserted", inserted,
		"duration", time.Since(begin),
	)
	return inserted, nil
}

// FindDocuments delegates to the wrapped service and logs the result count.
func (s *LoggingDocumentService) FindDocuments(ctx context.Context, filter lexdoc.DocumentFilter) ([]*lexdoc.Document, error) {
	begin := time.Now()
	docs, err := s.next.FindDocuments(ctx, filter)
	if err != nil {
		s.logger.Error("find documents",
			"duration", time.Since(begin),
			"err", err.Error(),
		)
		return nil, err
	}

	s.logger.Info("find documents",
		"found", len(docs),
		"duration", time.Since(begin),
	)
	return docs, nil
}
