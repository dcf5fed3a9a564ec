package cmd

import (
	"github.com/urfave/cli/v2"
)

const version = "1.0.0"

// NewApp builds the command line application. Without a command it runs the
// fixed 100/500/1000 demonstration.
func NewApp() *cli.App {
	return &cli.App{
		Name:                 "quadratic",
		Usage:                "watch a bubble sort grow with the square of its input",
		Version:              version,
		Flags:                globalFlags(),
		Action:               demo,
		After:                teardown,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			CmdBench(),
			CmdSort(),
		},
	}
}
