package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/docxtext/internal/app"
)

const dirDefault = "."

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	var (
		dir          string
		manifestPath string
		configPath   string
		envFiles     string
		dryRun       bool
		verbose      bool
		strictPerms  bool
		showVersion  bool
	)

	flag.StringVar(&dir, "dir", dirDefault, "Directory containing .docx files; sidecar .txt files are written next to them")
	flag.StringVar(&manifestPath, "manifest", "", "Optional path for a JSON manifest of the run")
	flag.StringVar(&configPath, "config", os.Getenv("DOCXTEXT_CONFIG"), "Optional YAML or JSON config file")
	flag.StringVar(&envFiles, "env", ".env", "Comma-separated dotenv files to load; missing files are ignored")
	flag.BoolVar(&dryRun, "dry-run", false, "Extract and report without writing sidecar files")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.BoolVar(&strictPerms, "strictPerms", false, "Write sidecar files with 0600 permissions")
	flag.BoolVar(&showVersion, "version", false, "Print version and exit")
	flag.Parse()

	if showVersion {
		fmt.Printf("docxtext %s (commit %s, built %s)\n", app.BuildVersion, app.BuildCommit, app.BuildDate)
		return
	}

	if err := app.LoadEnvFiles(strings.Split(envFiles, ",")...); err != nil {
		log.Error().Err(err).Msg("load env files")
		os.Exit(1)
	}

	// Precedence: flags > env > config file > defaults.
	var cfg app.Config
	if strings.TrimSpace(configPath) != "" {
		fc, err := app.LoadConfigFile(configPath)
		if err != nil {
			log.Error().Err(err).Str("path", configPath).Msg("load config file")
			os.Exit(1)
		}
		app.ApplyFileConfig(&cfg, fc)
	}
	app.ApplyEnvOverrides(&cfg)
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "dir":
			cfg.Dir = dir
		case "manifest":
			cfg.ManifestPath = manifestPath
		case "dry-run":
			cfg.DryRun = dryRun
		case "v":
			cfg.Verbose = verbose
		case "strictPerms":
			cfg.StrictPerms = strictPerms
		}
	})
	if strings.TrimSpace(cfg.Dir) == "" {
		cfg.Dir = dirDefault
	}

	if cfg.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	if err := run(cfg); err != nil {
		log.Error().Err(err).Msg("run failed")
		os.Exit(1)
	}
}

// run executes one batch. Per-file failures are logged by the app and do
// not make run fail.
func run(cfg app.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	a, err := app.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("init app: %w", err)
	}
	defer a.Close()

	results, err := a.Run(ctx)
	failed := 0
	for _, r := range results {
		if r.Outcome.Failed() {
			failed++
		}
	}
	log.Debug().Int("files", len(results)).Int("failed", failed).Msg("batch finished")
	return err
}
