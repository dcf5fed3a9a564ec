package main

import (
	"os"

	"quadratic/src/cmd"
	"quadratic/src/utils"
)

var logger = utils.GetLogger("quadratic")

func main() {
	if err := cmd.NewApp().Run(os.Args); err != nil {
		logger.Fatal(err)
	}
}
