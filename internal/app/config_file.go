package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	yaml "gopkg.in/yaml.v3"
)

// FileConfig is the YAML/JSON configuration file schema. Pointer booleans
// distinguish "absent" from an explicit false.
type FileConfig struct {
	Dir         string `yaml:"dir" json:"dir"`
	Manifest    string `yaml:"manifest" json:"manifest"`
	DryRun      *bool  `yaml:"dryRun" json:"dryRun"`
	Verbose     *bool  `yaml:"verbose" json:"verbose"`
	StrictPerms *bool  `yaml:"strictPerms" json:"strictPerms"`
}

// LoadConfigFile reads YAML or JSON into FileConfig, chosen by extension.
// Unknown extensions are tried as YAML, then JSON.
func LoadConfigFile(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse yaml: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse json: %w", err)
		}
	default:
		if err := yaml.Unmarshal(b, &fc); err != nil {
			if jerr := json.Unmarshal(b, &fc); jerr != nil {
				return fc, fmt.Errorf("parse config: %v (yaml) / %v (json)", err, jerr)
			}
		}
	}
	return fc, nil
}

// ApplyFileConfig copies every value present in fc into cfg.
func ApplyFileConfig(cfg *Config, fc FileConfig) {
	if cfg == nil {
		return
	}
	if s := strings.TrimSpace(fc.Dir); s != "" {
		cfg.Dir = s
	}
	if s := strings.TrimSpace(fc.Manifest); s != "" {
		cfg.ManifestPath = s
	}
	if fc.DryRun != nil {
		cfg.DryRun = *fc.DryRun
	}
	if fc.Verbose != nil {
		cfg.Verbose = *fc.Verbose
	}
	if fc.StrictPerms != nil {
		cfg.StrictPerms = *fc.StrictPerms
	}
}

// ValidateConfig checks required settings.
func ValidateConfig(cfg Config) error {
	if strings.TrimSpace(cfg.Dir) == "" {
		return errors.New("config: source directory is required (-dir or SOURCE_DIR)")
	}
	if m := strings.TrimSpace(cfg.ManifestPath); m != "" && strings.HasSuffix(strings.ToLower(m), ".docx") {
		return errors.New("config: manifest path must not be a .docx file")
	}
	return nil
}
