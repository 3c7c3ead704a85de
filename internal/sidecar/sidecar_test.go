package sidecar

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestPathFor_AppendsSuffixToFullName(t *testing.T) {
	got := PathFor("/data/docs", "/elsewhere/Report.Final.docx")
	want := filepath.Join("/data/docs", "Report.Final.docx.txt")
	if got != want {
		t.Fatalf("PathFor = %q, want %q", got, want)
	}
}

func TestWriter_WritesAndOverwrites(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	p := filepath.Join(dir, "a.docx.txt")
	w := &Writer{}

	if err := w.Write(p, "first version that is longer"); err != nil {
		t.Fatalf("write 1: %v", err)
	}
	if err := w.Write(p, "second"); err != nil {
		t.Fatalf("write 2: %v", err)
	}
	b, err := os.ReadFile(p)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(b) != "second" {
		t.Fatalf("content = %q, want %q", b, "second")
	}
	assertNoTempFiles(t, dir)
}

func TestWriter_EmptyText(t *testing.T) {
	p := filepath.Join(t.TempDir(), "empty.docx.txt")
	if err := (&Writer{}).Write(p, ""); err != nil {
		t.Fatalf("write: %v", err)
	}
	info, err := os.Stat(p)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Size() != 0 {
		t.Fatalf("size = %d, want 0", info.Size())
	}
}

func TestWriter_Perms(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix permissions")
	}
	t.Parallel()
	dir := t.TempDir()
	tests := []struct {
		strict bool
		want   os.FileMode
	}{
		{false, 0o644},
		{true, 0o600},
	}
	for _, tt := range tests {
		p := filepath.Join(dir, "perm.docx.txt")
		if err := (&Writer{StrictPerms: tt.strict}).Write(p, "x"); err != nil {
			t.Fatalf("write: %v", err)
		}
		info, err := os.Stat(p)
		if err != nil {
			t.Fatalf("stat: %v", err)
		}
		if got := info.Mode() & 0o777; got != tt.want {
			t.Fatalf("strict=%v mode = %o, want %o", tt.strict, got, tt.want)
		}
	}
}

func TestWriter_FailureLeavesPreviousFile(t *testing.T) {
	dir := t.TempDir()
	// A directory at the target path makes the rename fail after the temp
	// file has been written.
	target := filepath.Join(dir, "blocked.docx.txt")
	if err := os.Mkdir(target, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(target, "keep"), []byte("k"), 0o644); err != nil {
		t.Fatalf("write keep: %v", err)
	}
	if err := (&Writer{}).Write(target, "text"); err == nil {
		t.Fatalf("expected error writing over a non-empty directory")
	}
	if info, err := os.Stat(target); err != nil || !info.IsDir() {
		t.Fatalf("target directory should be untouched, err=%v", err)
	}
	assertNoTempFiles(t, dir)
}

func TestWriter_MissingDir(t *testing.T) {
	p := filepath.Join(t.TempDir(), "missing", "x.docx.txt")
	if err := (&Writer{}).Write(p, "x"); err == nil {
		t.Fatalf("expected error for missing directory")
	}
}

func assertNoTempFiles(t *testing.T, dir string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("readdir: %v", err)
	}
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".tmp") {
			t.Fatalf("leftover temp file %s", e.Name())
		}
	}
}
