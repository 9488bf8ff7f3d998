package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/plss"
	"github.com/fwojciec/plss/link"
	"github.com/fwojciec/plss/locate"
	"github.com/fwojciec/plss/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx        context.Context
	Stdout     io.Writer
	Stderr     io.Writer
	Logger     *slog.Logger
	DB         *sqlite.DB
	Wells      plss.WellService
	Properties plss.PropertyService
	Documents  plss.DocumentService
	Resolver   plss.CoordinateResolver
	Linker     plss.EntityLinker
	Relinker   Relinker
	Backfiller *locate.Backfiller
}

// Relinker links every stored document.
type Relinker interface {
	RelinkAll(ctx context.Context) (*link.Summary, error)
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	DB       string `help:"Database path (overrides config and PLSS_DB_PATH)"`
	Config   string `type:"path" help:"YAML config file"`
	LogLevel string `help:"Log level (debug, info, warn, error)"`

	Parse     ParseCmd     `cmd:"" help:"Print every TRS reference found in a legal description"`
	Neighbors NeighborsCmd `cmd:"" help:"List the sections around a section"`
	Path      PathCmd      `cmd:"" help:"Trace a horizontal wellbore between two sections"`
	Locate    LocateCmd    `cmd:"" help:"Resolve the best available coordinate"`
	Import    ImportCmd    `cmd:"" help:"Load wells, properties or documents from a JSON array"`
	Link      LinkCmd      `cmd:"" help:"Link a stored document to its property and well"`
	Relink    RelinkCmd    `cmd:"" help:"Link every stored document"`
	Backfill  BackfillCmd  `cmd:"" help:"Resolve and store coordinates for every document"`
}

// ParseCmd is the "parse" subcommand.
type ParseCmd struct {
	Text []string `arg:"" help:"Legal description text"`
}

// NeighborsCmd is the "neighbors" subcommand.
type NeighborsCmd struct {
	TRS    string `arg:"" help:"Section, e.g. S14-T5N-R4W"`
	Radius int    `short:"r" default:"1" help:"Radius in sections"`
}

// PathCmd is the "path" subcommand.
type PathCmd struct {
	Surface string `arg:"" help:"Surface-hole section"`
	Bottom  string `arg:"" help:"Bottom-hole section"`
}

// LocateCmd is the "locate" subcommand.
type LocateCmd struct {
	API      string `help:"Well API number"`
	Section  string `help:"Section number"`
	Township string `help:"Township, e.g. 5N"`
	Range    string `help:"Range, e.g. 4W"`
	County   string `help:"County name"`
	Meridian string `help:"Meridian (IM or CM)"`
}

// ImportCmd is the "import" subcommand.
type ImportCmd struct {
	Kind            string `arg:"" enum:"wells,properties,documents" help:"Record kind (wells, properties, documents)"`
	File            string `arg:"" type:"existingfile" help:"JSON file holding an array of records"`
	AllowDuplicates bool   `help:"Import documents whose payload is already stored"`
}

// LinkCmd is the "link" subcommand.
type LinkCmd struct {
	ID string `arg:"" help:"Document ID"`
}

// RelinkCmd is the "relink" subcommand.
type RelinkCmd struct{}

// BackfillCmd is the "backfill" subcommand.
type BackfillCmd struct{}
