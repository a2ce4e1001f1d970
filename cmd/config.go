package cmd

import (
	"fmt"

	"github.com/ChainSafe/mips-stats/profile"
	"github.com/ChainSafe/mips-stats/stats"
	"github.com/urfave/cli/v2"
)

// Config is the resolved configuration of one statistics run.
type Config struct {
	HumanReadable    bool
	Mode             stats.Mode
	Format           string
	ReportOutputPath string
	LogLevel         string
	Input            string
}

// resolveConfig merges the optional profile file with the command line. Flags win.
func resolveConfig(ctx *cli.Context, mode stats.Mode) (*Config, error) {
	prof := &profile.Profile{}
	if path := ctx.Path(ConfigFlag.Name); path != "" {
		var err error
		prof, err = profile.LoadProfile(path)
		if err != nil {
			return nil, fmt.Errorf("error loading profile: %w", err)
		}
	}

	cfg := &Config{
		HumanReadable:    prof.HumanReadable || ctx.Bool(HumanReadableFlag.Name),
		Mode:             prof.StatsMode(),
		Format:           prof.Format,
		ReportOutputPath: prof.ReportOutputPath,
		LogLevel:         prof.LogLevel,
		Input:            ctx.Args().First(),
	}
	if mode != stats.ModeNone {
		cfg.Mode = mode
	}
	if ctx.IsSet(FormatFlag.Name) || cfg.Format == "" {
		cfg.Format = ctx.String(FormatFlag.Name)
	}
	if ctx.IsSet(ReportOutputPathFlag.Name) {
		cfg.ReportOutputPath = ctx.Path(ReportOutputPathFlag.Name)
	}
	if ctx.IsSet(LogLevelFlag.Name) || cfg.LogLevel == "" {
		cfg.LogLevel = ctx.String(LogLevelFlag.Name)
	}
	return cfg, nil
}
