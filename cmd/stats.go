// Package cmd defines all the commands for the cli
package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ChainSafe/mips-stats/common/log"
	"github.com/ChainSafe/mips-stats/input"
	"github.com/ChainSafe/mips-stats/instruction"
	"github.com/ChainSafe/mips-stats/renderer"
	"github.com/ChainSafe/mips-stats/stats"
	"github.com/kr/pretty"
	"github.com/urfave/cli/v2"
)

var (
	HumanReadableFlag = &cli.BoolFlag{
		Name:  "u",
		Usage: "print column headers and human readable register names",
	}
	FormatFlag = &cli.StringFlag{
		Name:  "format",
		Usage: "format of the output. Options: text, json, yaml, table",
		Value: "text",
	}
	ReportOutputPathFlag = &cli.PathFlag{
		Name:     "report-output-path",
		Usage:    "output file path for report. Default: stdout",
		Required: false,
	}
	ConfigFlag = &cli.PathFlag{
		Name:     "config",
		Usage:    "Path to a YAML report profile",
		Required: false,
	}
	LogLevelFlag = &cli.StringFlag{
		Name:  "log-level",
		Usage: "log level. Options: trace, debug, info, warn, error",
		Value: "info",
	}
)

// modeFlags returns the -i, -o and -r flags bound to selector.
func modeFlags(selector *modeSelector) []cli.Flag {
	flag := func(name, usage string, mode stats.Mode) cli.Flag {
		return &cli.GenericFlag{
			Name:  name,
			Usage: usage,
			Value: &modeFlagValue{mode: mode, selector: selector},
		}
	}
	return []cli.Flag{
		flag("i", "print instruction format statistics", stats.ModeFormats),
		flag("o", "print opcode statistics", stats.ModeOpcodes),
		flag("r", "print register usage statistics", stats.ModeRegisters),
	}
}

// NewApp builds the command line application. Every call gets its own mode selector.
func NewApp() *cli.App {
	selector := &modeSelector{}

	app := cli.NewApp()
	app.Name = "mips-stats"
	app.Usage = "MIPS Instruction Statistics"
	app.Description = "Reads 0x-prefixed hexadecimal MIPS words, one per line, and reports format, opcode or register usage"
	app.ArgsUsage = "[trace file, default stdin]"
	app.Flags = append([]cli.Flag{HumanReadableFlag}, modeFlags(selector)...)
	app.Flags = append(app.Flags, FormatFlag, ReportOutputPathFlag, ConfigFlag, LogLevelFlag)
	app.Action = func(ctx *cli.Context) error {
		return ReportStatistics(ctx, selector.Mode())
	}
	app.Commands = []*cli.Command{
		DecodeCommand,
	}
	return app
}

// ReportStatistics reads the whole trace, decodes it and writes the selected table.
// Without a mode the trace is still read and decoded but nothing is written.
func ReportStatistics(ctx *cli.Context, mode stats.Mode) error {
	cfg, err := resolveConfig(ctx, mode)
	if err != nil {
		return err
	}
	if err := initLogging(cfg.LogLevel); err != nil {
		return err
	}
	log.Root.Debug().Msg(pretty.Sprintf("configuration:\n%# v", cfg))

	rendererInstance, err := renderer.New(cfg.Format, cfg.HumanReadable)
	if err != nil {
		return err
	}

	words, err := readWords(ctx, cfg.Input)
	if err != nil {
		return fmt.Errorf("error reading instructions: %w", err)
	}
	instrs := instruction.DecodeAll(words)
	log.Decoder.Debug().Int("words", len(words)).Msg("decoded instructions")

	table, err := stats.Compute(cfg.Mode, instrs, stats.Options{HumanReadable: cfg.HumanReadable})
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}
	if table == nil {
		log.Report.Debug().Msg("no statistics mode selected")
		return nil
	}

	log.Report.Debug().Str("mode", cfg.Mode.String()).Str("format", rendererInstance.Format()).Msg("writing report")
	if err := writeReport(table, rendererInstance, ctx.App.Writer, cfg.ReportOutputPath); err != nil {
		return fmt.Errorf("unable to write report: %w", err)
	}
	return nil
}

func initLogging(level string) error {
	lvl, err := log.ParseLogLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	log.Init(log.Options{LogLevel: lvl})
	return nil
}

// readWords reads path, or the app reader when path is empty or `-`.
func readWords(ctx *cli.Context, path string) ([]instruction.Word, error) {
	if path == "" || path == "-" {
		return input.NewReader(ctx.App.Reader).ReadAll()
	}
	return input.ReadFile(path)
}

// writeReport outputs the table with the given renderer, to outputPath or stdout.
func writeReport(table *stats.Table, r renderer.Renderer, stdout io.Writer, outputPath string) error {
	output := stdout
	if outputPath != "" {
		absPath, err := filepath.Abs(outputPath)
		if err != nil {
			return fmt.Errorf("unable to determine absolute path: %w", err)
		}
		file, err := os.OpenFile(absPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
		if err != nil {
			return fmt.Errorf("unable to open output file: %w", err)
		}
		defer func() {
			_ = file.Close()
		}()
		output = file
	}
	return r.Render(table, output)
}
