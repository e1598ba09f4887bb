package lexdoc

import (
	"context"
	"time"
)

// RawItem is a single listing entry as extracted from a fetched page,
// before it has been persisted. Title and at least one URL are required
// for the item to be considered valid; everything else is best-effort.
type RawItem struct {
	SerialNo      string     `json:"serialNo,omitempty"`
	Title         string     `json:"title"`
	DocURL        string     `json:"docUrl,omitempty"`
	DownloadURL   string     `json:"downloadUrl,omitempty"`
	FileSizeBytes *int64     `json:"fileSizeBytes,omitempty"`
	FileType      string     `json:"fileType,omitempty"`
	PublishedDate *time.Time `json:"publishedDate,omitempty"`
	UpdatedDate   *time.Time `json:"updatedDate,omitempty"`
	PageURL       string     `json:"pageUrl"`
	Category      string     `json:"category"`
}

// Validate returns an error if the item cannot be persisted.
func (it *RawItem) Validate() error {
	if it.Title == "" {
		return Errorf(EINVALID, "item title required")
	}
	if it.DocURL == "" && it.DownloadURL == "" {
		return Errorf(EINVALID, "item URL required")
	}
	return nil
}

// Document is a persisted listing entry. Documents are identified by a
// store-assigned ID, but their logical identity is the natural key
// (Title, DocURL). ContentHash is a digest over the fields that matter
// for change detection, not a security measure.
type Document struct {
	ID            string     `json:"id"`
	SerialNo      string     `json:"serialNo,omitempty"`
	Title         string     `json:"title"`
	DocURL        string     `json:"docUrl,omitempty"`
	DownloadURL   string     `json:"downloadUrl,omitempty"`
	FileSizeBytes *int64     `json:"fileSizeBytes,omitempty"`
	FileType      string     `json:"fileType,omitempty"`
	PublishedDate *time.Time `json:"publishedDate,omitempty"`
	UpdatedDate   *time.Time `json:"updatedDate,omitempty"`
	PageURL       string     `json:"pageUrl"`
	Category      string     `json:"category"`
	ContentHash   string     `json:"contentHash"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

// RankedDocument pairs a Document with its combined relevance+recency
// score for one query. Scores are normalized per query; the best lexical
// match scores 1.0 on the relevance component. Never persisted.
type RankedDocument struct {
	Document
	Score float64 `json:"score"`
}

// DocumentFilter restricts FindDocuments. All supplied filters are
// combined with AND. Documents with no published date never match a
// date bound.
type DocumentFilter struct {
	Categories []string   `json:"categories,omitempty"`
	DateFrom   *time.Time `json:"dateFrom,omitempty"`
	DateTo     *time.Time `json:"dateTo,omitempty"`

	Limit int `json:"limit,omitempty"`
}

// DocumentService represents a service for persisting and retrieving
// documents.
type DocumentService interface {
	// UpsertDocuments persists a batch of extracted items and returns the
	// number of newly inserted documents. Items matching an existing
	// document by natural key are updated in place when their content hash
	// differs and left untouched otherwise; updates are not counted.
	// The operation is idempotent.
	UpsertDocuments(ctx context.Context, items []RawItem) (int, error)

	// FindDocuments retrieves documents matching the filter. The result
	// order carries no meaning; ordering is the ranking engine's concern.
	FindDocuments(ctx context.Context, filter DocumentFilter) ([]*Document, error)
}
