package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/plss"
	"github.com/fwojciec/plss/gjson"
	plsshttp "github.com/fwojciec/plss/http"
	"github.com/fwojciec/plss/link"
	"github.com/fwojciec/plss/locate"
	plssslog "github.com/fwojciec/plss/slog"
	"github.com/fwojciec/plss/sqlite"
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
	// Database path. Overrides the configured path when set.
	DBPath string

	// Config holds the loaded configuration after Run parses arguments.
	Config *Config

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	WellService     plss.WellService
	PropertyService plss.PropertyService
	DocumentService plss.DocumentService
}

// NewMain returns a new instance of Main.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// commandsWithDB are the commands that read or write the database.
var commandsWithDB = map[string]bool{
	"import":   true,
	"link":     true,
	"relink":   true,
	"backfill": true,
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
		kong.Name("plss"),
		kong.Description("Resolve PLSS legal descriptions to sections, coordinates, wells and properties."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'plss --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	dbPath := cli.DB
	if dbPath == "" {
		dbPath = m.DBPath
	}
	cfg, err := LoadConfig(cli.Config, map[string]string{
		"db_path":   dbPath,
		"log.level": cli.LogLevel,
	})
	if err != nil {
		return err
	}
	m.Config = cfg

	logger, err := newLogger(stderr, cfg.Log)
	if err != nil {
		return err
	}
	deps.Logger = logger

	var locator plss.WellLocator
	if cfg.GIS.URL != "" {
		locator = plssslog.NewLoggingWellLocator(plsshttp.NewWellLocator(cfg.GIS.URL,
			plsshttp.WithTimeout(cfg.GIS.Timeout),
			plsshttp.WithRateLimit(cfg.GIS.RPS),
		), logger)
	}
	resolver := &locate.Resolver{GIS: locator, Logger: logger}
	deps.Resolver = resolver

	cmd := strings.Fields(kongCtx.Command())[0]
	if !commandsWithDB[cmd] {
		return kongCtx.Run(deps)
	}

	if dir := filepath.Dir(cfg.DBPath); dir != "." {
		_ = os.MkdirAll(dir, 0755)
	}
	m.DB = sqlite.NewDB(cfg.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set PLSS_DB_PATH or --db to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", cfg.DBPath, err)
	}
	defer m.Close()

	m.WellService = plssslog.NewLoggingWellService(sqlite.NewWellService(m.DB), logger)
	m.PropertyService = sqlite.NewPropertyService(m.DB)
	m.DocumentService = plssslog.NewLoggingDocumentService(sqlite.NewDocumentService(m.DB), logger)

	extractor := gjson.NewExtractor()

	deps.DB = m.DB
	deps.Wells = m.WellService
	deps.Properties = m.PropertyService
	deps.Documents = m.DocumentService
	linker := &link.Linker{
		Properties: m.PropertyService,
		Wells:      m.WellService,
		Documents:  m.DocumentService,
		Extractor:  extractor,
		Logger:     logger,
	}
	deps.Linker = linker
	deps.Relinker = linker
	deps.Backfiller = &locate.Backfiller{
		Documents: m.DocumentService,
		Extractor: extractor,
		Resolver:  resolver,
		Logger:    logger,
	}

	return kongCtx.Run(deps)
}

// newLogger builds the stderr logger from the log configuration.
func newLogger(w io.Writer, cfg LogConfig) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		return nil, plss.Errorf(plss.EINVALID, "invalid log level %q", cfg.Level)
	}
	opts := &slog.HandlerOptions{Level: level}
	switch strings.ToLower(cfg.Format) {
	case "", "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, plss.Errorf(plss.EINVALID, "invalid log format %q", cfg.Format)
	}
}
