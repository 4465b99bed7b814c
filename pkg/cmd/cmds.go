package cmd

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"
	"weike.sh/nodeagent/pkg/cgroups"
	"weike.sh/nodeagent/pkg/config"
	"weike.sh/nodeagent/pkg/container"
	"weike.sh/nodeagent/pkg/resources"
)

// newMemoryHandler loads the node config and bootstraps the memory
// handler; every subcommand runs in a fresh process, so bootstrap
// happens once per invocation.
func newMemoryHandler(ctx *cli.Context) (*resources.MemoryHandler, error) {
	conf, err := config.LoadNode(ctx.GlobalString("config"))
	if err != nil {
		return nil, err
	}

	handler := resources.NewMemoryHandler(cgroups.NewFsDriver(conf.CgroupsPrefix))
	if _, err := handler.Bootstrap(conf); err != nil {
		return nil, err
	}

	return handler, nil
}

var Prestart = cli.Command{
	Name: "prestart",
	Usage: "Create and configure the memory cgroup for a container, " +
		"then attach its process",
	Flags: container.Flags,
	Action: func(ctx *cli.Context) error {
		handler, err := newMemoryHandler(ctx)
		if err != nil {
			return err
		}

		c, err := container.NewContainer(ctx)
		if err != nil {
			return err
		}

		ops, err := handler.PreStart(c)
		if err != nil {
			return err
		}
		log.Infof("prepared memory cgroup %s for container %s (%s, %dMB)",
			c.Uuid, c.Name, c.ExecutionType, c.MemoryMB)

		if c.Pid <= 0 {
			for _, op := range ops {
				log.Infof("deferred privileged operation: %s %s", op.Type, op.Arg)
			}
			return nil
		}
		return resources.NewExecutor().Execute(ops, c.Pid)
	},
}

var Postcomplete = cli.Command{
	Name:  "postcomplete",
	Usage: "Remove a completed container's memory cgroup",
	Flags: []cli.Flag{
		cli.StringFlag{
			Name:  "id",
			Usage: "Unique container id",
		},
	},
	Action: func(ctx *cli.Context) error {
		containerId := ctx.String("id")
		if containerId == "" {
			return fmt.Errorf("the container id is required")
		}

		handler, err := newMemoryHandler(ctx)
		if err != nil {
			return err
		}

		if _, err := handler.PostComplete(containerId); err != nil {
			return err
		}
		log.Infof("removed memory cgroup of container %s", containerId)
		return nil
	},
}

var Reacquire = cli.Command{
	Name:  "reacquire",
	Usage: "Reattach to a container that was running before an agent restart",
	Flags: []cli.Flag{
		cli.StringFlag{
			Name:  "id",
			Usage: "Unique container id",
		},
	},
	Action: func(ctx *cli.Context) error {
		containerId := ctx.String("id")
		if containerId == "" {
			return fmt.Errorf("the container id is required")
		}

		handler, err := newMemoryHandler(ctx)
		if err != nil {
			return err
		}

		_, err = handler.ReacquireContainer(containerId)
		return err
	},
}

var Teardown = cli.Command{
	Name:  "teardown",
	Usage: "Release node-level memory controller state at agent shutdown",
	Action: func(ctx *cli.Context) error {
		handler, err := newMemoryHandler(ctx)
		if err != nil {
			return err
		}

		_, err = handler.Teardown()
		return err
	},
}
