// Command lexdoc scrapes the UIDAI legal-document listings into a local
// SQLite database and answers ranked search queries over them.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/alecthomas/kong"
	"google.golang.org/genai"

	"github.com/Achintya1800/lexdoc"
	"github.com/Achintya1800/lexdoc/crawl"
	"github.com/Achintya1800/lexdoc/gemini"
	"github.com/Achintya1800/lexdoc/goquery"
	lexhttp "github.com/Achintya1800/lexdoc/http"
	"github.com/Achintya1800/lexdoc/search"
	lexslog "github.com/Achintya1800/lexdoc/slog"
	"github.com/Achintya1800/lexdoc/sqlite"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	DocumentService lexdoc.DocumentService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("lexdoc"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'lexdoc --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set LEXDOC_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	logger := slog.New(slog.NewTextHandler(stderr, nil))

	// Wire core services into dependencies
	m.DocumentService = sqlite.NewDocumentService(m.DB)
	deps.DB = m.DB
	deps.Documents = m.DocumentService
	deps.Searcher = search.NewEngine(m.DocumentService, lexdoc.ReferenceLocation())

	if cmd == "scrape" || cmd == "serve" {
		fetcher := lexslog.NewLoggingFetcher(lexhttp.NewFetcher(), logger)
		extractor := goquery.NewListingExtractor(lexdoc.ReferenceLocation())
		documents := lexslog.NewLoggingDocumentService(m.DocumentService, logger)

		pipeline := crawl.NewPipeline(fetcher, extractor, documents, cli.Scrape.Delay)
		pipeline.Log = func(format string, a ...any) {
			fmt.Fprintf(stderr, format+"\n", a...)
		}
		deps.Scraper = pipeline
	}

	if cmd == "ask" || cmd == "serve" {
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" && cmd == "ask" {
			fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
			return fmt.Errorf("GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
		}

		if apiKey != "" {
			client, err := genai.NewClient(ctx, &genai.ClientConfig{
				APIKey:  apiKey,
				Backend: genai.BackendGeminiAPI,
			})
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
				return fmt.Errorf("failed to connect to Gemini API: %w", err)
			}

			deps.Answerer = gemini.NewAnswerer(client, deps.Searcher, lexdoc.ReferenceLocation())
		}
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("LEXDOC_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "lexdoc.db"
	}
	dir := filepath.Join(home, ".lexdoc")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "lexdoc.db")
}
