package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/glosario"
	"github.com/fwojciec/glosario/catalog"
	"github.com/fwojciec/glosario/fs"
	glosariohttp "github.com/fwojciec/glosario/http"
	"github.com/fwojciec/glosario/search"
	glosarioslog "github.com/fwojciec/glosario/slog"
	"github.com/fwojciec/glosario/sqlite"
	"golang.org/x/time/rate"
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
	// Config file path. Overridden by --config.
	ConfigPath string

	// Database path. Overridden by --db or the config file.
	DBPath string

	// Input for interactive commands.
	Stdin io.Reader

	// SQLite database used by the preference service.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		ConfigPath: defaultConfigPath(),
		Stdin:      os.Stdin,
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
		Stdin:  m.Stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("glosario"),
		kong.Description("Browse and search a bilingual glossary partitioned by domain"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'glosario --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]

	configPath := m.ConfigPath
	if cli.Config != "" {
		configPath = cli.Config
	}
	cfg, err := LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to read config %q: %w", configPath, err)
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	deps.Debounce = cfg.Debounce()

	if cmd == "theme" || (cmd == "export" && cli.Export.Format == "html") {
		dbPath := firstNonEmpty(cli.DB, cfg.DB, m.DBPath)
		if dbPath == "" {
			dbPath = defaultDBPath()
		}
		m.DB = sqlite.NewDB(dbPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set GLOSARIO_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", dbPath, err)
		}
		defer m.Close()
		deps.Preferences = sqlite.NewPreferenceService(m.DB)
	}

	if cmd != "domains" && cmd != "theme" {
		source := firstNonEmpty(cli.Source, cfg.Source, defaultSource)
		fetcher := newSourceFetcher(source, cfg)
		if !isURL(source) {
			deps.SourceDir = source
		}

		loader := &catalog.Loader{
			Sources:     glosarioslog.NewLoggingSourceFetcher(fetcher, deps.Logger),
			Concurrency: cfg.Concurrency,
			RetryDelays: cfg.RetryDelays(),
			Logger:      deps.Logger,
		}
		deps.Index = search.NewIndex(search.WithDelay(deps.Debounce))
		deps.Glossary = catalog.NewGlossary(glosarioslog.NewLoggingCatalogLoader(loader, deps.Logger), deps.Index)
	}

	return kongCtx.Run(deps)
}

// newSourceFetcher returns an HTTP fetcher for URLs and a directory
// fetcher otherwise.
func newSourceFetcher(source string, cfg Config) glosario.SourceFetcher {
	if !isURL(source) {
		return fs.NewSourceFetcher(source)
	}
	var opts []glosariohttp.Option
	if cfg.RequestsPerSecond > 0 {
		opts = append(opts, glosariohttp.WithRateLimiter(rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), 1)))
	}
	return glosariohttp.NewSourceFetcher(source, opts...)
}

func isURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
