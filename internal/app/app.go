package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/docxtext/internal/docx"
	"github.com/hyperifyio/docxtext/internal/extract"
	"github.com/hyperifyio/docxtext/internal/sidecar"
)

// InputPattern selects the documents processed in the source directory.
const InputPattern = "*.docx"

type App struct {
	cfg       Config
	log       zerolog.Logger
	extractor extract.Extractor
	writer    *sidecar.Writer
}

// New validates cfg and prepares an App.
func New(_ context.Context, cfg Config) (*App, error) {
	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}
	logger := log.Logger
	if cfg.Logger != nil {
		logger = *cfg.Logger
	}
	return &App{
		cfg:       cfg,
		log:       logger,
		extractor: extract.HeuristicExtractor{},
		writer:    &sidecar.Writer{StrictPerms: cfg.StrictPerms},
	}, nil
}

func (a *App) Close() {
	// nothing yet
}

// Run processes every matched document in order, one at a time. Per-file
// failures are reported in the returned results and never stop the batch.
// The error is non-nil only when ctx is cancelled between files or the
// manifest cannot be written.
func (a *App) Run(ctx context.Context) ([]FileResult, error) {
	dir := a.cfg.Dir
	inputs := a.matchInputs(dir)
	a.log.Info().Str("dir", dir).Int("count", len(inputs)).
		Msgf("found %d %s files in %s", len(inputs), InputPattern, dir)

	results := make([]FileResult, 0, len(inputs))
	for _, in := range inputs {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		results = append(results, a.processFile(in))
	}

	if a.cfg.ManifestPath != "" {
		if err := a.writeManifest(results); err != nil {
			return results, fmt.Errorf("write manifest: %w", err)
		}
		a.log.Debug().Str("out", a.cfg.ManifestPath).Msg("wrote manifest")
	}
	return results, nil
}

// matchInputs lists InputPattern matches in dir, sorted by name. Names
// starting with '.' are not matched, as with a shell glob. A directory that
// does not exist matches nothing.
func (a *App) matchInputs(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			a.log.Warn().Err(err).Str("dir", dir).Msg("cannot list directory")
		}
		return nil
	}
	var out []string
	for _, e := range entries {
		name := e.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		if ok, _ := filepath.Match(InputPattern, name); ok {
			out = append(out, filepath.Join(dir, name))
		}
	}
	sort.Strings(out)
	return out
}

// processFile handles one document. The archive is closed inside
// docx.ReadDocumentXML before any output is written.
func (a *App) processFile(in string) FileResult {
	name := filepath.Base(in)
	res := FileResult{Input: in, Output: sidecar.PathFor(a.cfg.Dir, in)}

	body, err := docx.ReadDocumentXML(in)
	if err != nil {
		res.Outcome = outcomeFor(err)
		if res.Outcome == OutcomeEntryMissing {
			a.log.Warn().Str("file", name).Msgf("skipped %s: no %s", name, docx.DocumentEntry)
			return res
		}
		res.Err = err
		a.log.Error().Str("file", name).Str("kind", string(res.Outcome)).Err(err).
			Msgf("error processing %s", name)
		return res
	}

	res.Text = a.extractor.Extract(body)

	if a.cfg.DryRun {
		res.Outcome = OutcomeWouldWrite
		a.log.Info().Str("file", name).Str("out", res.Output).Int("chars", len(res.Text)).
			Msgf("would extract %s -> %s", name, res.Output)
		return res
	}

	if err := a.writer.Write(res.Output, res.Text); err != nil {
		res.Outcome = OutcomeWrite
		res.Err = fmt.Errorf("write %s: %w", res.Output, err)
		a.log.Error().Str("file", name).Str("kind", string(res.Outcome)).Err(res.Err).
			Msgf("error processing %s", name)
		return res
	}
	res.Outcome = OutcomeWritten
	a.log.Info().Str("file", name).Str("out", res.Output).
		Msgf("extracted %s -> %s", name, res.Output)
	return res
}
