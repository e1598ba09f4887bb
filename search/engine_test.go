package search_test

import (
	"context"
	"testing"
	"time"

	"github.com/Achintya1800/lexdoc"
	"github.com/Achintya1800/lexdoc/mock"
	"github.com/Achintya1800/lexdoc/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngine_Search(t *testing.T) {
	t.Parallel()

	t.Run("passes expanded categories and date window to the store", func(t *testing.T) {
		t.Parallel()

		var gotFilter lexdoc.DocumentFilter
		docs := &mock.DocumentService{
			FindDocumentsFn: func(ctx context.Context, filter lexdoc.DocumentFilter) ([]*lexdoc.Document, error) {
				gotFilter = filter
				return nil, nil
			},
		}

		engine := search.NewEngine(docs, lexdoc.ReferenceLocation())
		results, err := engine.Search(context.Background(), "latest updated rules since 2022", 10)
		require.NoError(t, err)
		assert.Empty(t, results)

		assert.ElementsMatch(t, []string{"Rules", "Updated Rules"}, gotFilter.Categories)
		require.NotNil(t, gotFilter.DateFrom)
		assert.Equal(t, "2022-01-01", gotFilter.DateFrom.Format("2006-01-02"))
		assert.Nil(t, gotFilter.DateTo)
	})

	t.Run("no categories means no category filter", func(t *testing.T) {
		t.Parallel()

		docs := &mock.DocumentService{
			FindDocumentsFn: func(ctx context.Context, filter lexdoc.DocumentFilter) ([]*lexdoc.Document, error) {
				assert.Nil(t, filter.Categories)
				return nil, nil
			},
		}

		engine := search.NewEngine(docs, lexdoc.ReferenceLocation())
		_, err := engine.Search(context.Background(), "aadhaar enrolment centres", 10)
		require.NoError(t, err)
	})

	t.Run("ranks the store's candidates", func(t *testing.T) {
		t.Parallel()

		published := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
		docs := &mock.DocumentService{
			FindDocumentsFn: func(ctx context.Context, filter lexdoc.DocumentFilter) ([]*lexdoc.Document, error) {
				return []*lexdoc.Document{
					{Title: "Aadhaar authentication regulations", Category: "Regulations", PublishedDate: &published},
					{Title: "Unrelated circular", Category: "Circulars", PublishedDate: &published},
				}, nil
			},
		}

		engine := search.NewEngine(docs, lexdoc.ReferenceLocation())
		results, err := engine.Search(context.Background(), "authentication", 10)
		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.Equal(t, "Aadhaar authentication regulations", results[0].Title)
	})

	t.Run("propagates store errors", func(t *testing.T) {
		t.Parallel()

		docs := &mock.DocumentService{
			FindDocumentsFn: func(ctx context.Context, filter lexdoc.DocumentFilter) ([]*lexdoc.Document, error) {
				return nil, lexdoc.Errorf(lexdoc.EUNAVAILABLE, "store offline")
			},
		}

		engine := search.NewEngine(docs, lexdoc.ReferenceLocation())
		_, err := engine.Search(context.Background(), "rules", 10)
		require.Error(t, err)
		assert.Equal(t, lexdoc.EUNAVAILABLE, lexdoc.ErrorCode(err))
	})
}
