package resources

import (
	"fmt"
	"strconv"

	log "github.com/sirupsen/logrus"
	"weike.sh/nodeagent/pkg/cgroups"
	"weike.sh/nodeagent/pkg/config"
	"weike.sh/nodeagent/pkg/container"
)

// Opportunistic containers get no soft-limit protection and maximal
// swap tendency, so the kernel reclaims from them first in favor of
// guaranteed work.
const (
	opportunisticSoftLimitMB = 0
	opportunisticSwappiness  = 100
)

// memoryLimits holds the config-derived parameters captured by
// Bootstrap. It is never mutated afterwards, so concurrent PreStart
// calls for distinct containers can read it without locking.
type memoryLimits struct {
	swappiness        int
	softLimitFraction float64
}

// MemoryHandler enforces per-container memory isolation through the
// cgroups memory controller. The kernel enforces the hard limit
// synchronously, which is why Bootstrap refuses to run alongside the
// polling memory health checkers.
type MemoryHandler struct {
	driver cgroups.Driver
	limits *memoryLimits
}

var _ ResourceHandler = (*MemoryHandler)(nil)

func NewMemoryHandler(driver cgroups.Driver) *MemoryHandler {
	return &MemoryHandler{driver: driver}
}

func (h *MemoryHandler) Bootstrap(conf *config.Node) ([]*PrivilegedOperation, error) {
	if conf.PmemCheckEnabled || conf.VmemCheckEnabled {
		return nil, &ConfigConflictError{
			Keys: []string{config.KeyPmemCheckEnabled, config.KeyVmemCheckEnabled},
		}
	}

	if err := h.driver.InitializeController(cgroups.Memory); err != nil {
		return nil, &DriverError{Op: "initialize the memory controller", Err: err}
	}

	if conf.Swappiness < 0 || conf.Swappiness > 100 {
		return nil, &RangeError{
			Key:    config.KeySwappiness,
			Value:  strconv.Itoa(conf.Swappiness),
			Bounds: "0 and 100",
		}
	}

	if conf.SoftLimitPercentage < 0.0 || conf.SoftLimitPercentage > 100.0 {
		return nil, &RangeError{
			Key:    config.KeySoftLimitPercentage,
			Value:  fmt.Sprintf("%g", conf.SoftLimitPercentage),
			Bounds: "0.0 and 100.0",
		}
	}

	h.limits = &memoryLimits{
		swappiness:        conf.Swappiness,
		softLimitFraction: conf.SoftLimitPercentage / 100.0,
	}

	return nil, nil
}

// ReacquireContainer relies on the container manager's restart contract:
// the memory cgroup created by PreStart is assumed to have survived the
// agent restart, so nothing is recomputed here.
func (h *MemoryHandler) ReacquireContainer(containerId string) ([]*PrivilegedOperation, error) {
	return nil, nil
}

func (h *MemoryHandler) PreStart(c *container.Container) (ops []*PrivilegedOperation, err error) {
	if h.limits == nil {
		return nil, fmt.Errorf("memory handler is not bootstrapped")
	}

	cgroupId := c.Uuid
	hardLimitMB := c.MemoryMB

	if derr := h.driver.CreateGroup(cgroups.Memory, cgroupId); derr != nil {
		return nil, &DriverError{Op: "create the memory cgroup", Err: derr}
	}

	// A partially configured cgroup must never survive a failed
	// PreStart; the cleanup error only gets logged so the original
	// failure is what propagates.
	defer func() {
		if err == nil {
			return
		}
		log.Warnf("could not configure memory cgroup for container %s: %v",
			cgroupId, err)
		if derr := h.driver.DeleteGroup(cgroups.Memory, cgroupId); derr != nil {
			log.Warnf("failed to clean up memory cgroup %s: %v", cgroupId, derr)
		}
	}()

	softLimitMB := int64(float64(hardLimitMB) * h.limits.softLimitFraction)
	swappiness := h.limits.swappiness
	if c.ExecutionType == container.Opportunistic {
		softLimitMB = opportunisticSoftLimitMB
		swappiness = opportunisticSwappiness
	}

	params := []struct {
		name  string
		value string
	}{
		{cgroups.ParamMemoryHardLimit, fmt.Sprintf("%dM", hardLimitMB)},
		{cgroups.ParamMemorySoftLimit, fmt.Sprintf("%dM", softLimitMB)},
		{cgroups.ParamMemorySwappiness, strconv.Itoa(swappiness)},
	}
	for _, param := range params {
		if derr := h.driver.UpdateParam(cgroups.Memory, cgroupId,
			param.name, param.value); derr != nil {
			return nil, &DriverError{
				Op:  fmt.Sprintf("set %s to %s", param.name, param.value),
				Err: derr,
			}
		}
	}

	tasksPath, derr := h.driver.TasksPath(cgroups.Memory, cgroupId)
	if derr != nil {
		return nil, &DriverError{Op: "resolve the cgroup tasks path", Err: derr}
	}

	return []*PrivilegedOperation{NewAddPidOperation(tasksPath)}, nil
}

func (h *MemoryHandler) PostComplete(containerId string) ([]*PrivilegedOperation, error) {
	if err := h.driver.DeleteGroup(cgroups.Memory, containerId); err != nil {
		return nil, &DriverError{Op: "delete the memory cgroup", Err: err}
	}
	return nil, nil
}

// Teardown has no node-level state to release for the memory
// controller; it exists for symmetry with other resource handlers.
func (h *MemoryHandler) Teardown() ([]*PrivilegedOperation, error) {
	return nil, nil
}
