package app

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestBuildManifestEntries_DigestsOnlyWrittenText(t *testing.T) {
	results := []FileResult{
		{Input: "a.docx", Output: "a.docx.txt", Outcome: OutcomeWritten, Text: "héllo"},
		{Input: "b.docx", Output: "b.docx.txt", Outcome: OutcomeEntryMissing},
		{Input: "c.docx", Output: "c.docx.txt", Outcome: OutcomeArchiveOpen, Err: errors.New("zip: not a valid zip file")},
	}
	entries := buildManifestEntries(results)
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries; got %d", len(entries))
	}
	if entries[0].Chars != 5 || entries[0].SHA256 != computeSHA256Hex("héllo") {
		t.Fatalf("unexpected written entry: %+v", entries[0])
	}
	if entries[1].SHA256 != "" || entries[1].Output != "" {
		t.Fatalf("skipped entry should carry no digest: %+v", entries[1])
	}
	if entries[2].Error == "" || entries[2].Outcome != "archive-open" {
		t.Fatalf("failed entry should carry its error: %+v", entries[2])
	}
}

func TestRun_WritesManifest(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	writeDocx(t, filepath.Join(dir, "m.docx"), []byte(helloBody))
	manifestPath := filepath.Join(t.TempDir(), "run.json")

	a, _ := newTestApp(t, Config{Dir: dir, ManifestPath: manifestPath})
	if _, err := a.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	b, err := os.ReadFile(manifestPath)
	if err != nil {
		t.Fatalf("read manifest: %v", err)
	}
	var m manifest
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatalf("decode manifest: %v", err)
	}
	if m.Meta.Dir != dir || m.Meta.Version != BuildVersion {
		t.Fatalf("unexpected meta: %+v", m.Meta)
	}
	if len(m.Entries) != 1 || m.Entries[0].Outcome != "written" || m.Entries[0].Chars != len("Hello World") {
		t.Fatalf("unexpected entries: %+v", m.Entries)
	}
}
