package resources

import (
	"fmt"
	"io/ioutil"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
	"weike.sh/nodeagent/util"
)

// OperationType tags a deferred privileged operation.
type OperationType string

const (
	// AddPidToCGroup attaches a process to a cgroup's task list.
	AddPidToCGroup OperationType = "add-pid-to-cgroup"
)

// CGroupTasksArgPrefix prefixes the resolved tasks-file path in an
// AddPidToCGroup operation's argument.
const CGroupTasksArgPrefix = "--tasks-file="

// PrivilegedOperation describes one operation a resource handler defers
// to the privileged executor. Handlers only compute these; executing
// them needs elevated privileges the handlers don't hold.
type PrivilegedOperation struct {
	Type OperationType `json:"Type"`
	Arg  string        `json:"Arg"`
}

func NewAddPidOperation(tasksPath string) *PrivilegedOperation {
	return &PrivilegedOperation{
		Type: AddPidToCGroup,
		Arg:  CGroupTasksArgPrefix + tasksPath,
	}
}

// Executor runs deferred privileged operations on behalf of the
// container manager. It must run with enough privilege to write the
// cgroupfs task files.
type Executor struct{}

func NewExecutor() *Executor {
	return &Executor{}
}

// Execute runs the given operations in order for the container process
// pid. The first failure aborts the sequence.
func (e *Executor) Execute(ops []*PrivilegedOperation, pid int) error {
	for _, op := range ops {
		switch op.Type {
		case AddPidToCGroup:
			tasksPath := strings.TrimPrefix(op.Arg, CGroupTasksArgPrefix)
			if exist, _ := util.FileOrDirExists(tasksPath); !exist {
				return fmt.Errorf("cgroup tasks file %s does not exist",
					tasksPath)
			}
			log.Debugf("attaching process %d to %s", pid, tasksPath)
			confValue := []byte(strconv.Itoa(pid))
			if err := ioutil.WriteFile(tasksPath, confValue, 0644); err != nil {
				return fmt.Errorf("failed to attach process %d to "+
					"cgroup tasks file %s: %v", pid, tasksPath, err)
			}
		default:
			return fmt.Errorf("unknown privileged operation %s", op.Type)
		}
	}

	return nil
}
