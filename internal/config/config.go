// Package config holds the tool configuration: persistent settings from a
// JSON config file merged with environment variables and CLI flag overrides,
// plus the optional .review-config proposal-id file.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
)

// Config represents the review-helper configuration.
type Config struct {
	// Format is the output document format: html or markdown.
	Format string `json:"format"`
	// Type selects the full report or the condensed summary variant.
	Type string `json:"type"`
	// CacheDir is where cloned repositories are kept between runs.
	CacheDir string `json:"cacheDir"`
	// RepoURL is the hosting service base used for commit and per-line deep
	// links in the generated document.
	RepoURL string `json:"repoUrl,omitempty"`
	// RedactSecrets scrubs credential-looking strings from embedded diffs.
	RedactSecrets bool `json:"redactSecrets"`
}

// Default returns a Config with all defaults applied.
func Default() Config {
	return Config{
		Format:   "html",
		Type:     "full",
		CacheDir: ".repo-cache",
	}
}

// ConfigPath returns the full path to the config file.
func ConfigPath() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "review-helper", "config.json"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".config", "review-helper", "config.json"), nil
}

// LoadFile loads config from the config file. Returns zero Config and nil
// error if the file doesn't exist.
func LoadFile() (Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return Config{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg, nil
}

// Load builds the effective config by merging: defaults <- file <- env <-
// overrides. The overrides map comes from CLI flags; only non-empty values
// should be set.
func Load(overrides map[string]string) (Config, error) {
	cfg := Default()

	fileCfg, err := LoadFile()
	if err != nil {
		return Config{}, err
	}
	mergeFile(&cfg, fileCfg)
	mergeEnv(&cfg)
	mergeOverrides(&cfg, overrides)

	return cfg, nil
}

func mergeFile(dst *Config, src Config) {
	if src.Format != "" {
		dst.Format = src.Format
	}
	if src.Type != "" {
		dst.Type = src.Type
	}
	if src.CacheDir != "" {
		dst.CacheDir = src.CacheDir
	}
	if src.RepoURL != "" {
		dst.RepoURL = src.RepoURL
	}
	dst.RedactSecrets = dst.RedactSecrets || src.RedactSecrets
}

func mergeEnv(cfg *Config) {
	if v := os.Getenv("REVIEW_HELPER_FORMAT"); v != "" {
		cfg.Format = v
	}
	if v := os.Getenv("REVIEW_HELPER_TYPE"); v != "" {
		cfg.Type = v
	}
	if v := os.Getenv("REVIEW_HELPER_CACHE_DIR"); v != "" {
		cfg.CacheDir = v
	}
	if v := os.Getenv("REVIEW_HELPER_REPO_URL"); v != "" {
		cfg.RepoURL = v
	}
}

func mergeOverrides(cfg *Config, overrides map[string]string) {
	if overrides == nil {
		return
	}
	if v, ok := overrides["format"]; ok && v != "" {
		cfg.Format = v
	}
	if v, ok := overrides["type"]; ok && v != "" {
		cfg.Type = v
	}
	if v, ok := overrides["cacheDir"]; ok && v != "" {
		cfg.CacheDir = v
	}
	if v, ok := overrides["repoUrl"]; ok && v != "" {
		cfg.RepoURL = v
	}
	if v, ok := overrides["redactSecrets"]; ok && v == "true" {
		cfg.RedactSecrets = true
	}
}

var proposalIDRe = regexp.MustCompile(`ID := (\d+)`)

// ProposalFile is the local file optionally carrying the proposal identifier.
const ProposalFile = ".review-config"

// ProposalID reads the proposal identifier from the file at path (typically
// [ProposalFile] in the working directory). It returns "" when the file is
// absent or contains no `ID := <digits>` line.
func ProposalID(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	if m := proposalIDRe.FindSubmatch(data); m != nil {
		return string(m[1])
	}
	return ""
}
