package main

import (
	"fmt"
	"strings"

	"github.com/Achintya1800/lexdoc"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	query := strings.Join(c.Query, " ")

	results, err := deps.Searcher.Search(deps.Ctx, query, c.TopK)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", lexdoc.ErrorMessage(err))
		return err
	}

	if len(results) == 0 {
		fmt.Fprintln(deps.Stdout, "No matching documents. Run 'lexdoc scrape' first if the database is empty.")
		return nil
	}

	fmt.Fprint(deps.Stdout, lexdoc.FormatResults(results))
	return nil
}
