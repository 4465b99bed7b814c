package resources

import (
	"weike.sh/nodeagent/pkg/config"
	"weike.sh/nodeagent/pkg/container"
)

// ResourceHandler is the lifecycle hook surface a per-controller resource
// handler exposes to the node's container manager. Each hook may return
// deferred privileged operations for the caller to execute; the handler
// never performs privileged work itself.
//
// Bootstrap must be called exactly once, before any other hook. The
// caller serializes PreStart/PostComplete per container id; hooks for
// distinct containers may run concurrently since handler state is
// immutable after Bootstrap.
type ResourceHandler interface {
	// Bootstrap validates and captures node configuration and prepares
	// the underlying controller.
	Bootstrap(conf *config.Node) ([]*PrivilegedOperation, error)

	// ReacquireContainer is invoked for containers that were already
	// running when the agent restarted.
	ReacquireContainer(containerId string) ([]*PrivilegedOperation, error)

	// PreStart prepares the controller for a container about to launch.
	PreStart(c *container.Container) ([]*PrivilegedOperation, error)

	// PostComplete releases controller state after a container's
	// process has exited.
	PostComplete(containerId string) ([]*PrivilegedOperation, error)

	// Teardown releases node-level controller state at agent shutdown.
	Teardown() ([]*PrivilegedOperation, error)
}
