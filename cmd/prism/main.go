package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/prism-dashboard/cards/internal/actions"
	"github.com/prism-dashboard/cards/internal/config"
	"github.com/prism-dashboard/cards/internal/logging"
	"github.com/prism-dashboard/cards/internal/models"
	"github.com/prism-dashboard/cards/internal/output"
	"github.com/prism-dashboard/cards/internal/resolver"
	"github.com/prism-dashboard/cards/internal/snapshot"
)

// Version info (set during build)
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("prism", flag.ContinueOnError)
	fs.SetOutput(stderr)
	envFile := fs.String("env", ".env", "optional .env file with PRISM_* settings")
	dashboardPath := fs.String("dashboard", "", "dashboard YAML (overrides PRISM_DASHBOARD)")
	statesPath := fs.String("states", "", "state snapshot, .json or .msgpack (overrides PRISM_STATES)")
	format := fs.String("format", "", "output format: json or msgpack (overrides PRISM_FORMAT)")
	stub := fs.String("stub", "", "print a starter dashboard for a card type and exit")
	schema := fs.String("schema", "", "print the editor form fields for a card type and exit")
	showVersion := fs.Bool("version", false, "print version and exit")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *showVersion {
		fmt.Fprintf(stdout, "prism %s (built %s)\n", Version, BuildTime)
		return 0
	}

	fail := color.New(color.FgRed).FprintfFunc()

	if *stub != "" || *schema != "" {
		var (
			data []byte
			err  error
		)
		if *stub != "" {
			data, err = config.StubDashboardYAML(models.CardType(*stub))
		} else {
			data, err = config.FormSchemaYAML(models.CardType(*schema))
		}
		if err == nil {
			_, err = stdout.Write(data)
		}
		if err != nil {
			fail(stderr, "%v\n", err)
			return 1
		}
		return 0
	}

	cfg, err := config.LoadConfig(*envFile, "")
	if err != nil {
		fail(stderr, "Failed to load configuration: %v\n", err)
		return 1
	}
	if *dashboardPath != "" {
		cfg.DashboardPath = *dashboardPath
	}
	if *statesPath != "" {
		cfg.StatesPath = *statesPath
	}
	if *format != "" {
		cfg.Format = *format
	}
	if err := cfg.Check(); err != nil {
		fail(stderr, "Invalid configuration: %v\n", err)
		return 1
	}

	runID := uuid.New().String()
	log := logging.New(stderr, "Resolve "+runID[:8], logging.ParseLevel(cfg.LogLevel))
	defer func() { _ = log.Sync() }()

	dash, err := config.ParseDashboard(cfg.DashboardPath)
	if err != nil {
		fail(stderr, "Failed to read dashboard %s: %v\n", cfg.DashboardPath, err)
		return 1
	}
	cards, err := config.AcceptDashboard(dash)
	if err != nil {
		fail(stderr, "Invalid dashboard: %v\n", err)
		return 1
	}

	snap, err := snapshot.Load(cfg.StatesPath)
	if err != nil {
		fail(stderr, "Failed to load states %s: %v\n", cfg.StatesPath, err)
		return 1
	}
	log.Infof("loaded %d cards and %d entities", len(cards), len(snap))

	reg := resolver.NewRegistry(resolver.New(resolver.WithLogger(log)))

	doc := &output.Document{RunID: runID, Title: dash.Title}
	for i, card := range cards {
		view, err := reg.Resolve(card, snap)
		if err != nil {
			// Validation admits only registered types, so this is a wiring bug.
			fail(stderr, "card %d: %v\n", i, err)
			return 1
		}
		doc.Cards = append(doc.Cards, output.Card{
			Index:   i,
			Type:    card.Type,
			View:    view,
			Actions: actions.Available(card),
		})
	}

	enc, err := output.NewEncoder(cfg.Format, cfg.Pretty)
	if err != nil {
		fail(stderr, "%v\n", err)
		return 1
	}
	if err := enc.Encode(stdout, doc); err != nil {
		fail(stderr, "Failed to write output: %v\n", err)
		return 1
	}
	return 0
}
