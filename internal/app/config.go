package app

import "github.com/rs/zerolog"

// Config holds runtime configuration for a batch run.
type Config struct {
	// Dir is the source directory scanned for *.docx files. Sidecar files
	// are written to the same directory.
	Dir string

	// ManifestPath, when set, receives a JSON record of the run.
	ManifestPath string

	// Behavior
	DryRun      bool
	Verbose     bool
	StrictPerms bool

	// Logger receives progress lines. Nil means the global zerolog logger.
	Logger *zerolog.Logger
}
