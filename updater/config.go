// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package updater

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.astrophena.name/copyright-updater/years"

	"gopkg.in/yaml.v3"
)

// defaultConfigNames are the config file names looked up at the
// repository root when the -config flag is not passed.
var defaultConfigNames = []string{".copyright-updater.yaml", ".copyright-updater.yml"}

var errNoConfig = errors.New("no configuration file found")

// Config controls which header is expected and which part of the
// history is considered.
type Config struct {
	// Pattern locates the copyright header.
	Pattern *years.Pattern
	// IgnoreCommitsBefore truncates the history; files whose last change
	// predates it are not checked. Zero means no cutoff.
	IgnoreCommitsBefore time.Time
	// LicenseFile is the repository-relative path of the license file,
	// which is expected to carry the year of the repository's newest
	// commit instead of its own last change.
	LicenseFile string
}

type rawConfig struct {
	Pattern             string     `yaml:"pattern"`
	IgnoreCommitsBefore *time.Time `yaml:"ignore_commits_before"`
	LicenseFile         string     `yaml:"license_file"`
}

// LoadConfig reads and validates a YAML configuration file.
func LoadConfig(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parseConfig(b)
}

func parseConfig(b []byte) (*Config, error) {
	var raw rawConfig
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil {
		return nil, err
	}

	if raw.Pattern == "" {
		return nil, errors.New("missing `pattern` in config")
	}
	pattern, err := years.Compile(raw.Pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid `pattern`: %w", err)
	}

	cfg := &Config{
		Pattern:     pattern,
		LicenseFile: raw.LicenseFile,
	}
	if raw.IgnoreCommitsBefore != nil {
		// YAML timestamps without a zone decode as UTC, which is also
		// what this tool assumes for bare dates.
		cfg.IgnoreCommitsBefore = *raw.IgnoreCommitsBefore
	}
	if cfg.LicenseFile == "" {
		cfg.LicenseFile = "LICENSE"
	}
	return cfg, nil
}

// findConfig returns the explicitly requested config path, or the first
// default config name that exists at the repository root.
func findConfig(flagValue, root string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	for _, name := range defaultConfigNames {
		path := filepath.Join(root, name)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w: searched for %s in %s",
		errNoConfig, strings.Join(defaultConfigNames, ", "), root)
}
