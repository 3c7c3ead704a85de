package app

import (
	"os"
	"strings"
)

// ApplyEnvOverrides overrides cfg fields with environment variables that are
// set. It runs after the config file is applied so env wins over the file;
// explicitly passed flags are applied afterwards by the caller.
func ApplyEnvOverrides(cfg *Config) {
	if cfg == nil {
		return
	}

	if v := strings.TrimSpace(os.Getenv("SOURCE_DIR")); v != "" {
		cfg.Dir = v
	}
	if v := strings.TrimSpace(os.Getenv("MANIFEST_PATH")); v != "" {
		cfg.ManifestPath = v
	}

	setBool(&cfg.DryRun, "DRY_RUN")
	setBool(&cfg.Verbose, "VERBOSE")
	setBool(&cfg.StrictPerms, "OUTPUT_STRICT_PERMS")
}

// setBool assigns dst when envKey holds a recognized truthy or falsey value.
func setBool(dst *bool, envKey string) {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(envKey))) {
	case "1", "true", "yes", "on":
		*dst = true
	case "0", "false", "no", "off":
		*dst = false
	}
}
