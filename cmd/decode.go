package cmd

import (
	"fmt"
	"strings"

	"github.com/ChainSafe/mips-stats/common/log"
	"github.com/ChainSafe/mips-stats/instruction"
	"github.com/urfave/cli/v2"
)

func CreateDecodeCommand(action cli.ActionFunc) *cli.Command {
	return &cli.Command{
		Name:        "decode",
		Usage:       "Prints every decoded instruction of a trace",
		Description: "Prints the format and fields of every instruction word, one per line",
		ArgsUsage:   "[trace file, default stdin]",
		Action:      action,
	}
}

var DecodeCommand = CreateDecodeCommand(DecodeInstructions)

func DecodeInstructions(ctx *cli.Context) error {
	if err := initLogging(ctx.String(LogLevelFlag.Name)); err != nil {
		return err
	}

	words, err := readWords(ctx, ctx.Args().First())
	if err != nil {
		return fmt.Errorf("error reading instructions: %w", err)
	}
	log.Decoder.Debug().Int("words", len(words)).Msg("decoding instructions")

	var listing strings.Builder
	for _, ins := range instruction.DecodeAll(words) {
		listing.WriteString(ins.String())
		listing.WriteString("\n")
	}
	_, err = ctx.App.Writer.Write([]byte(listing.String()))
	return err
}
