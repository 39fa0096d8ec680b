package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/glosario"
	"github.com/fwojciec/glosario/catalog"
	"github.com/fwojciec/glosario/search"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx         context.Context
	Stdin       io.Reader
	Stdout      io.Writer
	Stderr      io.Writer
	Logger      *slog.Logger
	Glossary    *catalog.Glossary
	Index       *search.Index
	Preferences glosario.PreferenceService

	// SourceDir is the watched directory for browse --watch.
	// Empty when terms are served over HTTP.
	SourceDir string

	// Debounce is the quiet period for interactive search and reloads.
	Debounce time.Duration
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config  string `help:"Path to TOML config file" env:"GLOSARIO_CONFIG"`
	Source  string `help:"Directory or base URL holding <domain>.json files" env:"GLOSARIO_SOURCE"`
	DB      string `name:"db" help:"Preferences database path" env:"GLOSARIO_DB"`
	Verbose bool   `short:"v" help:"Enable debug logging"`

	Domains DomainsCmd `cmd:"" help:"List glossary domains"`
	Search  SearchCmd  `cmd:"" help:"Search terms across all domains"`
	Domain  DomainCmd  `cmd:"" help:"List the terms of one domain"`
	Export  ExportCmd  `cmd:"" help:"Export terms as TBX or HTML"`
	Theme   ThemeCmd   `cmd:"" help:"Show or set the display theme"`
	Browse  BrowseCmd  `cmd:"" help:"Search interactively, one query per line"`
}

// DomainsCmd is the "domains" subcommand.
type DomainsCmd struct{}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query string `arg:"" help:"Text to find in formal terms, colloquial terms or definitions"`
	JSON  bool   `help:"Print results as JSON"`
}

// DomainCmd is the "domain" subcommand.
type DomainCmd struct {
	Name string `arg:"" help:"Domain identifier (see 'glosario domains')"`
	JSON bool   `help:"Print results as JSON"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Format string `short:"f" enum:"tbx,html" default:"tbx" help:"Output format (tbx, html)"`
	Domain string `short:"d" help:"Export only this domain"`
	Output string `short:"o" default:"-" help:"Output file, or - for stdout"`
}

// ThemeCmd is the "theme" subcommand.
type ThemeCmd struct {
	Value  string `arg:"" optional:"" help:"Theme to store (light, dark)"`
	Toggle bool   `help:"Switch to the other theme"`
}

// BrowseCmd is the "browse" subcommand.
type BrowseCmd struct {
	Watch bool `short:"w" help:"Reload when source files change (directory sources only)"`
}
