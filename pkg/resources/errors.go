package resources

import (
	"fmt"
	"strings"
)

// ConfigConflictError reports mutually exclusive enforcement mechanisms
// enabled at the same time.
type ConfigConflictError struct {
	Keys []string
}

func (e *ConfigConflictError) Error() string {
	return fmt.Sprintf("the physical/virtual memory health checkers and "+
		"the cgroups memory controller are enabled together; to use the "+
		"cgroups memory controller, set %s to false",
		strings.Join(e.Keys, " and "))
}

// RangeError reports a configuration value outside its allowed bounds.
type RangeError struct {
	Key    string
	Value  string
	Bounds string
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("illegal value '%s' for %s: must be between %s",
		e.Value, e.Key, e.Bounds)
}

// DriverError wraps a failure from the cgroup driver.
type DriverError struct {
	Op  string
	Err error
}

func (e *DriverError) Error() string {
	return fmt.Sprintf("cgroup driver failed to %s: %v", e.Op, e.Err)
}

func (e *DriverError) Unwrap() error {
	return e.Err
}
