package main

import (
	"fmt"

	"github.com/Achintya1800/lexdoc"
)

// Run executes the docs command.
func (c *DocsCmd) Run(deps *Dependencies) error {
	docs, err := deps.Documents.FindDocuments(deps.Ctx, lexdoc.DocumentFilter{
		Categories: c.Category,
		Limit:      c.Limit,
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", lexdoc.ErrorMessage(err))
		return err
	}

	if len(docs) == 0 {
		fmt.Fprintln(deps.Stdout, "No documents stored. Use 'lexdoc scrape' to ingest the listing pages.")
		return nil
	}

	fmt.Fprintf(deps.Stdout, "Documents (%d shown):\n\n", len(docs))
	for i, doc := range docs {
		meta := doc.Category
		if doc.PublishedDate != nil {
			meta += ", " + doc.PublishedDate.Format("2006-01-02")
		}
		url := doc.DocURL
		if url == "" {
			url = doc.DownloadURL
		}
		fmt.Fprintf(deps.Stdout, "  %d. %s (%s)\n     %s\n", i+1, doc.Title, meta, url)
	}

	return nil
}
