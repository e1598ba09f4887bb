package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"strconv"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"

	"github.com/Achintya1800/lexdoc"
)

// Compile-time interface verification.
var _ lexdoc.DocumentService = (*DocumentService)(nil)

// DocumentService implements lexdoc.DocumentService using SQLite.
type DocumentService struct {
	db *DB
}

// NewDocumentService creates a new DocumentService.
func NewDocumentService(db *DB) *DocumentService {
	return &DocumentService{db: db}
}

// contentHash computes the change-detection digest of an item: an xxHash
// over the fields whose change should count as a new document version.
// SerialNo, FileType, PageURL and Category are deliberately excluded.
func contentHash(item lexdoc.RawItem) string {
	fields := []string{
		item.Title,
		item.DocURL,
		item.DownloadURL,
		formatSize(item.FileSizeBytes),
		formatDate(item.PublishedDate),
		formatDate(item.UpdatedDate),
	}
	h := xxhash.Sum64String(strings.Join(fields, "|"))
	b := make([]byte, 8)
	b[0] = byte(h >> 56)
	b[1] = byte(h >> 48)
	b[2] = byte(h >> 40)
	b[3] = byte(h >> 32)
	b[4] = byte(h >> 24)
	b[5] = byte(h >> 16)
	b[6] = byte(h >> 8)
	b[7] = byte(h)
	return hex.EncodeToString(b)
}

// UpsertDocuments persists a batch of extracted items inside a single
// short-lived transaction and returns how many were newly inserted.
// Items already stored with an identical content hash are left untouched;
// a differing hash refreshes every mutable field. A natural-key constraint
// violation (concurrent insert of the same key) degrades to an update.
func (s *DocumentService) UpsertDocuments(ctx context.Context, items []lexdoc.RawItem) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	inserted := 0
	now := time.Now().UTC()

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return 0, err
		}

		item.Title = strings.TrimSpace(item.Title)
		hash := contentHash(item)

		var id, storedHash string
		err := tx.QueryRowContext(ctx, `
			SELECT id, content_hash FROM documents WHERE title = ? AND doc_url IS ?
		`, item.Title, nullString(item.DocURL)).Scan(&id, &storedHash)

		switch {
		case err == sql.ErrNoRows:
			ok, insertErr := s.insert(ctx, tx, item, hash, now)
			if insertErr != nil {
				return 0, insertErr
			}
			if ok {
				inserted++
				continue
			}
			// Lost a natural-key race; fall through to the update path.
			if err := tx.QueryRowContext(ctx, `
				SELECT id, content_hash FROM documents WHERE title = ? AND doc_url IS ?
			`, item.Title, nullString(item.DocURL)).Scan(&id, &storedHash); err != nil {
				return 0, err
			}
			fallthrough
		case err == nil:
			if storedHash == hash {
				continue
			}
			if err := s.update(ctx, tx, id, item, hash, now); err != nil {
				return 0, err
			}
		default:
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return inserted, nil
}

// insert creates a new row for item. Returns false without error when the
// insert hit the natural-key unique constraint.
func (s *DocumentService) insert(ctx context.Context, tx *sql.Tx, item lexdoc.RawItem, hash string, now time.Time) (bool, error) {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO documents (id, serial_no, title, doc_url, download_url, file_type,
			file_size_bytes, published_date, updated_date, page_url, category,
			content_hash, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, uuid.New().String(), item.SerialNo, item.Title, nullString(item.DocURL), item.DownloadURL,
		item.FileType, nullSize(item.FileSizeBytes), nullDate(item.PublishedDate),
		nullDate(item.UpdatedDate), item.PageURL, item.Category, hash,
		now.Format(time.RFC3339), now.Format(time.RFC3339))

	if isUniqueConstraint(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// update overwrites all mutable fields of the row identified by id.
func (s *DocumentService) update(ctx context.Context, tx *sql.Tx, id string, item lexdoc.RawItem, hash string, now time.Time) error {
	_, err := tx.ExecContext(ctx, `
		UPDATE documents
		SET serial_no = ?, download_url = ?, file_type = ?, file_size_bytes = ?,
			published_date = ?, updated_date = ?, page_url = ?, category = ?,
			content_hash = ?, updated_at = ?
		WHERE id = ?
	`, item.SerialNo, item.DownloadURL, item.FileType, nullSize(item.FileSizeBytes),
		nullDate(item.PublishedDate), nullDate(item.UpdatedDate), item.PageURL,
		item.Category, hash, now.Format(time.RFC3339), id)
	return err
}

// FindDocuments retrieves documents matching the filter. All supplied
// filters are combined with AND; rows without a published date never
// match a date bound. The result order carries no meaning.
func (s *DocumentService) FindDocuments(ctx context.Context, filter lexdoc.DocumentFilter) ([]*lexdoc.Document, error) {
	var query strings.Builder
	var args []any

	query.WriteString(`SELECT id, serial_no, title, doc_url, download_url, file_type,
		file_size_bytes, published_date, updated_date, page_url, category,
		content_hash, created_at, updated_at FROM documents WHERE 1=1`)

	if len(filter.Categories) > 0 {
		query.WriteString(" AND category IN (")
		query.WriteString(strings.TrimSuffix(strings.Repeat("?,", len(filter.Categories)), ","))
		query.WriteString(")")
		for _, c := range filter.Categories {
			args = append(args, c)
		}
	}
	if filter.DateFrom != nil {
		query.WriteString(" AND published_date >= ?")
		args = append(args, filter.DateFrom.Format("2006-01-02"))
	}
	if filter.DateTo != nil {
		query.WriteString(" AND published_date <= ?")
		args = append(args, filter.DateTo.Format("2006-01-02"))
	}
	if filter.Limit > 0 {
		query.WriteString(" LIMIT ?")
		args = append(args, filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []*lexdoc.Document
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}

	return docs, rows.Err()
}

// scanDocument reads one documents row into a lexdoc.Document.
func scanDocument(rows *sql.Rows) (*lexdoc.Document, error) {
	var doc lexdoc.Document
	var docURL sql.NullString
	var size sql.NullInt64
	var published, updated sql.NullString
	var createdAt, updatedAt string

	if err := rows.Scan(&doc.ID, &doc.SerialNo, &doc.Title, &docURL, &doc.DownloadURL,
		&doc.FileType, &size, &published, &updated, &doc.PageURL, &doc.Category,
		&doc.ContentHash, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	doc.DocURL = docURL.String
	if size.Valid {
		doc.FileSizeBytes = &size.Int64
	}

	var err error
	if doc.PublishedDate, err = parseDateColumn(published, "published_date"); err != nil {
		return nil, err
	}
	if doc.UpdatedDate, err = parseDateColumn(updated, "updated_date"); err != nil {
		return nil, err
	}
	if doc.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
		return nil, err
	}
	if doc.UpdatedAt, err = parseRFC3339(updatedAt, "updated_at"); err != nil {
		return nil, err
	}

	return &doc, nil
}

// isUniqueConstraint reports whether err is a SQLite UNIQUE constraint
// violation.
func isUniqueConstraint(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint")
}

func formatSize(size *int64) string {
	if size == nil {
		return ""
	}
	return strconv.FormatInt(*size, 10)
}

func formatDate(d *time.Time) string {
	if d == nil {
		return ""
	}
	return d.Format("2006-01-02")
}
