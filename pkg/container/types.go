package container

// ExecutionType is a container's priority class. It decides how
// aggressively the kernel may reclaim the container's memory.
type ExecutionType string

const (
	// Guaranteed containers keep their declared allocation protected.
	Guaranteed ExecutionType = "guaranteed"
	// Opportunistic containers run best-effort and are preempted or
	// swapped first under contention.
	Opportunistic ExecutionType = "opportunistic"
)

type Container struct {
	Uuid          string        `json:"Uuid"`
	Name          string        `json:"Name"`
	MemoryMB      int64         `json:"MemoryMB"`
	ExecutionType ExecutionType `json:"ExecutionType"`
	Pid           int           `json:"Pid"`
	CreateTime    string        `json:"CreateTime"`
}
