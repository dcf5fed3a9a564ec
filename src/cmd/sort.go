package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"

	"quadratic/src/sort"
)

func CmdSort() *cli.Command {
	return &cli.Command{
		Name:      "sort",
		Action:    sortArgs,
		Category:  "TOOL",
		Usage:     "bubble sort the given values",
		ArgsUsage: "VALUE [VALUE ...]",
		Description: `
Values that parse as numbers are sorted numerically, anything else as text.
Numbers and text cannot be mixed.

Examples:
$ quadratic sort 5 3 8 1
1 3 5 8
$ quadratic sort pear apple fig
apple fig pear`,
	}
}

func sortArgs(c *cli.Context) error {
	if err := setup(c, 1); err != nil {
		return err
	}

	args := c.Args().Slice()
	values := make([]interface{}, len(args))
	for i, arg := range args {
		if f, err := strconv.ParseFloat(arg, 64); err == nil {
			values[i] = f
		} else {
			values[i] = arg
		}
	}

	sorted, err := sort.Values(values)
	if err != nil {
		return err
	}
	logger.Debugf("sorted %d values", len(sorted))

	out := make([]string, len(sorted))
	for i, v := range sorted {
		out[i] = fmt.Sprint(v)
	}
	fmt.Fprintln(c.App.Writer, strings.Join(out, " "))
	return nil
}
