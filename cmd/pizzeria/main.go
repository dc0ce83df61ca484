// Command pizzeria runs the ordering service and its operator tools.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "pizzeria",
		Usage: "pizza ordering service",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to a YAML config file",
				EnvVars: []string{"PIZZERIA_CONFIG"},
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "override the configured log level",
			},
		},
		Commands: []*cli.Command{
			serveCommand(),
			promotionsCommand(),
			simulateCommand(),
		},
	}
}
