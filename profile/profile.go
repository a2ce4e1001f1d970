// Package profile loads report profiles, the file based defaults of a statistics run.
package profile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/ChainSafe/mips-stats/renderer"
	"github.com/ChainSafe/mips-stats/stats"
	"gopkg.in/yaml.v3"
)

// Profile represents the configuration for a statistics run.
type Profile struct {
	HumanReadable    bool   `yaml:"human_readable"`
	Mode             string `yaml:"mode"`
	Format           string `yaml:"format"`
	ReportOutputPath string `yaml:"report_output_path"`
	LogLevel         string `yaml:"log_level"`
}

// LoadProfile loads a report profile from a YAML file.
func LoadProfile(filename string) (*Profile, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open profile: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	var profile Profile
	dec := yaml.NewDecoder(file)
	dec.KnownFields(true)
	if err := dec.Decode(&profile); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse profile: %w", err)
	}
	if err := profile.Validate(); err != nil {
		return nil, fmt.Errorf("invalid profile %s: %w", filename, err)
	}
	return &profile, nil
}

// Validate checks the mode and format names.
func (p *Profile) Validate() error {
	if _, err := stats.ParseMode(p.Mode); err != nil {
		return err
	}
	if p.Format != "" && !slices.Contains(renderer.Formats, p.Format) {
		return fmt.Errorf("%w: %s", renderer.ErrUnknownFormat, p.Format)
	}
	return nil
}

// StatsMode returns the parsed mode. It must only be called on a validated profile.
func (p *Profile) StatsMode() stats.Mode {
	mode, _ := stats.ParseMode(p.Mode)
	return mode
}
