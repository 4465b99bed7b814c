package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
	"weike.sh/nodeagent/pkg/cmd"
)

const usage = `nodeagent manages per-container memory isolation on a
compute node through the cgroups memory controller. It is driven by the
container manager's lifecycle hooks: prestart, postcomplete, reacquire
and teardown.`

func main() {
	app := cli.NewApp()
	app.Name = "nodeagent"
	app.Usage = usage

	app.Commands = []cli.Command{
		cmd.Prestart,
		cmd.Postcomplete,
		cmd.Reacquire,
		cmd.Teardown,
	}

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "debug",
			Usage: "print nodeagent debug logs",
		},
		cli.StringFlag{
			Name:  "config",
			Usage: "node configuration file (defaults to $NODEAGENT_CONFIG)",
		},
	}

	app.Before = func(ctx *cli.Context) error {
		if ctx.Bool("debug") {
			log.SetLevel(log.DebugLevel)
		}

		log.SetOutput(os.Stdout)
		log.SetFormatter(&prefixed.TextFormatter{
			ForceColors:     true,
			ForceFormatting: true,
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})

		return nil
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
