// Package mock provides function-field mock implementations of lexdoc
// interfaces for testing.
package mock

import (
	"context"

	"github.com/Achintya1800/lexdoc"
)

var _ lexdoc.DocumentService = (*DocumentService)(nil)

// DocumentService is a mock implementation of lexdoc.DocumentService.
type DocumentService struct {
	UpsertDocumentsFn func(ctx context.Context, items []lexdoc.RawItem) (int, error)
	FindDocumentsFn   func(ctx context.Context, filter lexdoc.DocumentFilter) ([]*lexdoc.Document, error)
}

func (s *DocumentService) UpsertDocuments(ctx context.Context, items []lexdoc.RawItem) (int, error) {
	return s.UpsertDocumentsFn(ctx, items)
}

func (s *DocumentService) FindDocuments(ctx context.Context, filter lexdoc.DocumentFilter) ([]*lexdoc.Document, error) {
	return s.FindDocumentsFn(ctx, filter)
}
