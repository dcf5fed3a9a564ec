package cmd

import (
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"strconv"

	"github.com/google/gops/agent"
	"github.com/pkg/errors"
	"github.com/pyroscope-io/client/pyroscope"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"quadratic/src/utils"
)

var logger = utils.GetLogger("quadratic")

var profiler *pyroscope.Profiler

func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"debug"},
			Usage:   "enable debug log",
		},
		&cli.BoolFlag{
			Name:  "quiet",
			Usage: "show warning and errors only",
		},
		&cli.BoolFlag{
			Name:  "trace",
			Usage: "enable trace log",
		},
		&cli.BoolFlag{
			Name:  "no-color",
			Usage: "disable colors",
		},
		&cli.BoolFlag{
			Name:  "agent",
			Usage: "start pprof and gops agents on localhost",
		},
		&cli.StringFlag{
			Name:  "pyroscope",
			Usage: "pyroscope address",
		},
	}
}

func setup(c *cli.Context, n int) error {
	if c.NArg() < n {
		var argsUsage string
		if c.Command != nil {
			argsUsage = c.Command.ArgsUsage
		}
		return errors.Errorf("this command requires at least %d arguments\nUSAGE:\n   %s %s [command options] %s",
			n, c.App.Name, commandName(c), argsUsage)
	}

	if c.Bool("trace") {
		utils.SetLogLevel(logrus.TraceLevel)
	} else if c.Bool("verbose") {
		utils.SetLogLevel(logrus.DebugLevel)
	} else if c.Bool("quiet") {
		utils.SetLogLevel(logrus.WarnLevel)
	} else {
		utils.SetLogLevel(logrus.InfoLevel)
	}
	if c.Bool("no-color") {
		utils.DisableLogColor()
	}

	if c.Bool("agent") {
		go func() {
			for port := 6060; port < 6100; port++ {
				_ = http.ListenAndServe(fmt.Sprintf("127.0.0.1:%d", port), nil)
			}
		}()
		go func() {
			for port := 6070; port < 6100; port++ {
				if err := agent.Listen(agent.Options{Addr: fmt.Sprintf("127.0.0.1:%d", port)}); err == nil {
					logger.Debugf("gops agent listening on 127.0.0.1:%d", port)
					return
				}
			}
		}()
	}

	if c.IsSet("pyroscope") && profiler == nil {
		tags := make(map[string]string)
		if hostname, err := os.Hostname(); err == nil {
			tags["hostname"] = hostname
		}
		tags["pid"] = strconv.Itoa(os.Getpid())
		tags["version"] = c.App.Version

		p, err := pyroscope.Start(pyroscope.Config{
			ApplicationName: fmt.Sprintf("%s.%s", c.App.Name, commandName(c)),
			ServerAddress:   c.String("pyroscope"),
			Logger:          logger,
			Tags:            tags,
			AuthToken:       os.Getenv("PYROSCOPE_AUTH_TOKEN"),
			ProfileTypes:    pyroscope.DefaultProfileTypes,
		})
		if err != nil {
			logger.Errorf("start pyroscope agent: %v", err)
		} else {
			profiler = p
		}
	}
	return nil
}

func teardown(c *cli.Context) error {
	if profiler != nil {
		profiler.Stop()
		profiler = nil
	}
	return nil
}

func commandName(c *cli.Context) string {
	if c.Command == nil || c.Command.Name == "" || c.Command.Name == c.App.Name {
		return "bench"
	}
	return c.Command.Name
}
