package main

import (
	"fmt"

	"github.com/Achintya1800/lexdoc"
)

// Run executes the scrape command.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	result, err := deps.Scraper.Scrape(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", lexdoc.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Scraped %d/%d sources, %d new documents\n",
		result.Succeeded, result.Attempted, result.Inserted)
	return nil
}
