package main

import (
	"context"
	"os"

	"github.com/ChainSafe/mips-stats/cmd"
	"github.com/ChainSafe/mips-stats/common/log"
)

func main() {
	app := cmd.NewApp()
	err := app.RunContext(context.Background(), os.Args)
	if err != nil {
		log.Root.Fatal().Err(err).Msg("mips-stats failed")
	}
}
