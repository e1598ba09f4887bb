package main

import (
	"fmt"

	lexhttp "github.com/Achintya1800/lexdoc/http"
)

// Run executes the serve command. It blocks until the context is
// canceled, typically by SIGINT or SIGTERM.
func (c *ServeCmd) Run(deps *Dependencies) error {
	server := lexhttp.NewServer()
	server.Addr = c.Addr
	server.Searcher = deps.Searcher
	server.Scraper = deps.Scraper
	server.Answerer = deps.Answerer

	if err := server.Open(); err != nil {
		return fmt.Errorf("failed to start server on %q: %w", c.Addr, err)
	}
	defer server.Close()

	fmt.Fprintf(deps.Stdout, "Listening on %s\n", server.URL())
	if deps.Answerer == nil {
		fmt.Fprintln(deps.Stderr, "GEMINI_API_KEY not set; POST /answer will return 503")
	}

	<-deps.Ctx.Done()
	fmt.Fprintln(deps.Stdout, "Shutting down")
	return nil
}
