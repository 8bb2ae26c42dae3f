package main

import (
	"context"
	"io"
	"time"

	"github.com/jbartnik/refdeck"
	"github.com/jbartnik/refdeck/bloom"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx        context.Context
	Stdout     io.Writer
	Stderr     io.Writer
	Articles   refdeck.ArticleService
	Search     refdeck.SearchService
	Synth      refdeck.Synthesizer
	Categories refdeck.CategoryService
	Digest     refdeck.DigestService
	Quotes     refdeck.QuoteService
	Cache      refdeck.ArticleCache
	Extractor  refdeck.ContentExtractor
	Seen       *bloom.SeenURLs
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	API   string `env:"REFDECK_API" default:"http://localhost:8000" help:"Base URL of the bookmarks API"`
	Debug bool   `help:"Log remote calls to stderr"`

	List     ListCmd     `cmd:"" help:"List saved articles"`
	Search   SearchCmd   `cmd:"" help:"Search saved articles by meaning"`
	Save     SaveCmd     `cmd:"" help:"Save a new article"`
	Export   ExportCmd   `cmd:"" help:"Search, pick results, and export them as text"`
	Synth    SynthCmd    `cmd:"" help:"Search, pick results, and synthesize them around a focus topic"`
	Category CategoryCmd `cmd:"" help:"Manage digest categories"`
	Digest   DigestCmd   `cmd:"" help:"Inspect and trigger the curator digest"`
	Quotes   QuotesCmd   `cmd:"" help:"Inspect and backfill quote extraction"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Limit   int           `default:"50" help:"Maximum articles to return"`
	Offset  int           `help:"Paging offset"`
	Timeout time.Duration `default:"10s" help:"Give up on the listing after this long"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query string `arg:"" help:"Search query"`
	Limit int    `default:"10" help:"Maximum results"`
}

// SaveCmd is the "save" subcommand.
type SaveCmd struct {
	URL      string `arg:"" help:"Article URL"`
	Manual   bool   `short:"m" help:"Paste content instead of letting the server fetch it"`
	Title    string `help:"Article title (manual mode)"`
	Content  string `help:"Article content (manual mode)"`
	HTMLFile string `type:"existingfile" help:"Extract title and content from this HTML file (manual mode)"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Query  string `arg:"" optional:"" help:"Search query; export works on search results"`
	Pick   []int  `short:"p" help:"1-based result index to select (repeatable; picking twice deselects)"`
	Limit  int    `default:"10" help:"Maximum search results"`
	Output string `short:"o" help:"Write the export to this file instead of stdout"`
}

// SynthCmd is the "synth" subcommand.
type SynthCmd struct {
	Query   string `arg:"" optional:"" help:"Search query; synthesis works on search results"`
	Pick    []int  `short:"p" help:"1-based result index to select (repeatable; picking twice deselects)"`
	Focus   string `short:"f" help:"Focus topic for the synthesis"`
	Limit   int    `default:"10" help:"Maximum search results"`
	HTMLOut string `help:"Also write the synthesis as HTML to this file"`
}

// CategoryCmd groups the category subcommands.
type CategoryCmd struct {
	List    CategoryListCmd    `cmd:"" help:"List categories with matching statistics"`
	Create  CategoryCreateCmd  `cmd:"" help:"Create a category"`
	Update  CategoryUpdateCmd  `cmd:"" help:"Update a category's name or description"`
	Delete  CategoryDeleteCmd  `cmd:"" help:"Deactivate a category"`
	Preview CategoryPreviewCmd `cmd:"" help:"Preview what a category digest would contain"`
	Themes  CategoryThemesCmd  `cmd:"" help:"List themes discovered from past digests"`
}

// CategoryListCmd is the "category list" subcommand.
type CategoryListCmd struct{}

// CategoryCreateCmd is the "category create" subcommand.
type CategoryCreateCmd struct {
	Name        string `arg:"" help:"Category name"`
	Description string `help:"What the category should match"`
}

// CategoryUpdateCmd is the "category update" subcommand.
type CategoryUpdateCmd struct {
	ID          string  `arg:"" help:"Category ID"`
	Name        *string `help:"New name"`
	Description *string `help:"New description"`
}

// CategoryDeleteCmd is the "category delete" subcommand.
type CategoryDeleteCmd struct {
	ID string `arg:"" help:"Category ID"`
}

// CategoryPreviewCmd is the "category preview" subcommand.
type CategoryPreviewCmd struct {
	ID  string `arg:"" optional:"" help:"Category ID"`
	All bool   `help:"Preview every category"`
}

// CategoryThemesCmd is the "category themes" subcommand.
type CategoryThemesCmd struct{}

// DigestCmd groups the digest subcommands.
type DigestCmd struct {
	Status  DigestStatusCmd  `cmd:"" help:"Show digest configuration and content counts"`
	Preview DigestPreviewCmd `cmd:"" help:"Build the next digest without sending it"`
	Send    DigestSendCmd    `cmd:"" help:"Send a digest email now"`
}

// DigestStatusCmd is the "digest status" subcommand.
type DigestStatusCmd struct{}

// DigestPreviewCmd is the "digest preview" subcommand.
type DigestPreviewCmd struct{}

// DigestSendCmd is the "digest send" subcommand.
type DigestSendCmd struct{}

// QuotesCmd groups the quotes subcommands.
type QuotesCmd struct {
	Status   QuotesStatusCmd   `cmd:"" help:"Show which articles still lack extracted quotes"`
	Backfill QuotesBackfillCmd `cmd:"" help:"Start background quote extraction"`
}

// QuotesStatusCmd is the "quotes status" subcommand.
type QuotesStatusCmd struct{}

// QuotesBackfillCmd is the "quotes backfill" subcommand.
type QuotesBackfillCmd struct {
	Limit int `default:"10" help:"Articles to process in this run"`
}
