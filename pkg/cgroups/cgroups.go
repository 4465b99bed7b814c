package cgroups

// Controller names a cgroup controller (subsystem) managed by a Driver.
type Controller string

const (
	// Memory is the only controller this node agent manages.
	Memory Controller = "memory"
)

// Parameter files of the memory controller.
const (
	ParamMemoryHardLimit  = "memory.limit_in_bytes"
	ParamMemorySoftLimit  = "memory.soft_limit_in_bytes"
	ParamMemorySwappiness = "memory.swappiness"
)

// Driver exposes the cgroupfs primitives consumed by resource handlers.
// All calls block on kernel filesystem I/O and surface failures as-is;
// retry policy belongs to the caller.
type Driver interface {
	// InitializeController ensures the controller's root group for this
	// agent exists. It is idempotent and fails if the controller is not
	// mounted on this node.
	InitializeController(controller Controller) error

	// CreateGroup creates the named subgroup; it fails if the group
	// already exists.
	CreateGroup(controller Controller, groupId string) error

	// UpdateParam writes one named kernel parameter of the group.
	UpdateParam(controller Controller, groupId, param, value string) error

	// DeleteGroup removes the named subgroup; it fails if processes are
	// still attached or the group is missing.
	DeleteGroup(controller Controller, groupId string) error

	// TasksPath resolves the file a privileged executor writes pids
	// into to attach processes to the group.
	TasksPath(controller Controller, groupId string) (string, error)
}
