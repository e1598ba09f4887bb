package main

import (
	"context"
	"io"
	"time"

	"github.com/Achintya1800/lexdoc"
	"github.com/Achintya1800/lexdoc/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	DB        *sqlite.DB
	Documents lexdoc.DocumentService
	Searcher  lexdoc.Searcher
	Scraper   lexdoc.Scraper
	Answerer  lexdoc.Answerer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Scrape ScrapeCmd `cmd:"" help:"Fetch the configured listing pages and store their documents"`
	Search SearchCmd `cmd:"" help:"Search stored documents with a ranked query"`
	Docs   DocsCmd   `cmd:"" help:"List stored documents"`
	Ask    AskCmd    `cmd:"" help:"Ask a question answered from stored documents"`
	Serve  ServeCmd  `cmd:"" help:"Run the HTTP API server"`
}

// ScrapeCmd is the "scrape" subcommand.
type ScrapeCmd struct {
	Delay time.Duration `default:"1s" help:"Politeness delay between page fetches"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query []string `arg:"" help:"Search query"`
	TopK  int      `short:"k" default:"10" help:"Number of results to return"`
}

// DocsCmd is the "docs" subcommand.
type DocsCmd struct {
	Category []string `short:"c" help:"Filter by category (repeatable)"`
	Limit    int      `default:"50" help:"Maximum documents to list"`
}

// AskCmd is the "ask" subcommand.
type AskCmd struct {
	Question []string `arg:"" help:"Question to answer from the stored documents"`
	TopK     int      `short:"k" default:"6" help:"Number of documents to ground the answer on"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr string `default:":8080" help:"Bind address for the HTTP API"`
}
