package cmd

import (
	"github.com/urfave/cli/v2"

	"quadratic/src/bench"
)

func CmdBench() *cli.Command {
	return &cli.Command{
		Name:      "bench",
		Action:    runBench,
		Category:  "DEMO",
		Usage:     "time bubble sort on random inputs of growing size",
		ArgsUsage: "",
		Description: `
Sorts one random list of integers per input size and prints how long each
sort took. Doubling the size roughly quadruples the time.

Examples:
$ quadratic bench
$ quadratic bench -n 1000 -n 2000 -n 4000 --stats
# Reproducible input
$ quadratic bench --seed 42`,
		Flags: []cli.Flag{
			&cli.IntSliceFlag{
				Name:    "size",
				Aliases: []string{"n"},
				Usage:   "input size to time, repeatable (default: 100, 500, 1000)",
			},
			&cli.IntFlag{
				Name:  "max",
				Value: 1000,
				Usage: "largest generated value (inclusive)",
			},
			&cli.Int64Flag{
				Name:    "seed",
				EnvVars: []string{"QUADRATIC_SEED"},
				Usage:   "random seed, 0 seeds from the clock",
			},
			&cli.BoolFlag{
				Name:  "early-exit",
				Usage: "stop sorting after a pass without swaps",
			},
			&cli.BoolFlag{
				Name:  "stats",
				Usage: "also print comparison and swap counts",
			},
		},
	}
}

func demo(c *cli.Context) error {
	return demonstrate(c, bench.DefaultConfig(), false)
}

func runBench(c *cli.Context) error {
	cfg := bench.DefaultConfig()
	if c.IsSet("size") {
		cfg.Sizes = c.IntSlice("size")
	}
	cfg.MaxValue = c.Int("max")
	cfg.Seed = c.Int64("seed")
	cfg.EarlyExit = c.Bool("early-exit")
	return demonstrate(c, cfg, c.Bool("stats"))
}

func demonstrate(c *cli.Context, cfg bench.Config, stats bool) error {
	if err := setup(c, 0); err != nil {
		return err
	}
	w := c.App.Writer

	bench.PrintIntro(w)
	results, err := bench.Run(cfg)
	if err != nil {
		return err
	}
	bench.PrintTable(w, results, stats)
	bench.PrintSummary(w, bench.SummarySizes)
	return nil
}
