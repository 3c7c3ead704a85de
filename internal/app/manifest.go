package app

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"
)

// manifestEntry records what happened to one input.
type manifestEntry struct {
	Input   string `json:"input"`
	Output  string `json:"output,omitempty"`
	Outcome string `json:"outcome"`
	Error   string `json:"error,omitempty"`
	SHA256  string `json:"sha256,omitempty"`
	Chars   int    `json:"chars,omitempty"`
}

// manifestMeta captures run details that aid reproducibility.
type manifestMeta struct {
	Dir         string    `json:"dir"`
	DryRun      bool      `json:"dry_run"`
	Version     string    `json:"version"`
	Commit      string    `json:"commit"`
	GeneratedAt time.Time `json:"generated_at"`
}

type manifest struct {
	Meta    manifestMeta    `json:"meta"`
	Entries []manifestEntry `json:"entries"`
}

// computeSHA256Hex returns a lowercase hex-encoded SHA-256 of text.
func computeSHA256Hex(text string) string {
	h := sha256.Sum256([]byte(text))
	return hex.EncodeToString(h[:])
}

// buildManifestEntries converts results; digests are only recorded for
// text that was (or would have been) written.
func buildManifestEntries(results []FileResult) []manifestEntry {
	out := make([]manifestEntry, 0, len(results))
	for _, r := range results {
		e := manifestEntry{Input: r.Input, Outcome: string(r.Outcome)}
		if r.Err != nil {
			e.Error = r.Err.Error()
		}
		if r.Outcome == OutcomeWritten || r.Outcome == OutcomeWouldWrite {
			e.Output = r.Output
			e.SHA256 = computeSHA256Hex(r.Text)
			e.Chars = len([]rune(r.Text))
		}
		out = append(out, e)
	}
	return out
}

func (a *App) writeManifest(results []FileResult) error {
	m := manifest{
		Meta: manifestMeta{
			Dir:         a.cfg.Dir,
			DryRun:      a.cfg.DryRun,
			Version:     BuildVersion,
			Commit:      BuildCommit,
			GeneratedAt: time.Now().UTC(),
		},
		Entries: buildManifestEntries(results),
	}
	b, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return a.writer.Write(a.cfg.ManifestPath, string(b)+"\n")
}
