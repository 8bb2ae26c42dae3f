package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/jbartnik/refdeck"
	"github.com/jbartnik/refdeck/bloom"
	"github.com/jbartnik/refdeck/goquery"
	refhttp "github.com/jbartnik/refdeck/http"
	logging "github.com/jbartnik/refdeck/slog"
	"github.com/jbartnik/refdeck/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Cache database path. Set before calling Run().
	DBPath string

	// SQLite database backing the local article cache.
	DB *sqlite.DB

	// Services for end-to-end testing.
	ArticleService refdeck.ArticleService
	SearchService  refdeck.SearchService
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
		kong.Name("refdeck"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'refdeck --help' to see available commands")
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

	// Open the local cache database.
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set REFDECK_DB to use a different cache path\n")
		return fmt.Errorf("failed to open cache at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	// Wire remote services and the cache into dependencies.
	client := refhttp.NewClient(cli.API)
	m.ArticleService = client
	m.SearchService = client

	deps.Articles = m.ArticleService
	deps.Search = m.SearchService
	deps.Synth = client
	deps.Categories = client
	deps.Digest = client
	deps.Quotes = client
	deps.Cache = sqlite.NewArticleCache(m.DB)

	if cli.Debug {
		logger := slog.New(slog.NewTextHandler(stderr, nil))
		deps.Search = logging.NewLoggingSearchService(deps.Search, logger)
		deps.Synth = logging.NewLoggingSynthesizer(deps.Synth, logger)
	}

	// Wire command-specific dependencies.
	if cmd == "save" {
		deps.Extractor = goquery.NewExtractor()

		// Seed the duplicate hint filter from cached URLs. Best effort;
		// the server remains the authority on duplicates.
		if urls, err := deps.Cache.URLs(ctx); err == nil {
			deps.Seen = bloom.FromURLs(urls)
		}
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("REFDECK_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "refdeck.db"
	}
	dir := filepath.Join(home, ".refdeck")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "refdeck.db")
}
