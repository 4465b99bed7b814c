package container

import "github.com/urfave/cli"

var Flags = []cli.Flag{
	cli.StringFlag{
		Name:  "id",
		Usage: "Unique container id; derived from the name when omitted",
	},
	cli.StringFlag{
		Name:  "name,n",
		Usage: "Assign a name to the container",
	},
	cli.StringFlag{
		Name:  "memory,m",
		Usage: "Declared memory allocation, e.g. 2048M or 2GB (plain numbers are MB)",
	},
	cli.BoolFlag{
		Name:  "opportunistic",
		Usage: "Run the container best-effort; its memory is reclaimed first",
	},
	cli.IntFlag{
		Name:  "pid",
		Usage: "Container process to attach to the prepared cgroup",
	},
}
