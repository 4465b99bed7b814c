package cgroups

import (
	"fmt"
	"io/ioutil"
	"os"
	"path"
	"strings"

	log "github.com/sirupsen/logrus"
)

const (
	cgroupFsType   = "cgroup"
	tasksFile      = "tasks"
	cgroupInfoFile = "/proc/self/cgroup"
	mountInfoFile  = "/proc/self/mountinfo"
)

// FsDriver manages cgroup-v1 groups under a per-agent hierarchy prefix,
// e.g. /sys/fs/cgroup/memory/<prefix>/<groupId>.
type FsDriver struct {
	prefix string
	// controller -> mountpoint, filled by InitializeController.
	mounts map[Controller]string
}

func NewFsDriver(prefix string) *FsDriver {
	return &FsDriver{
		prefix: prefix,
		mounts: make(map[Controller]string),
	}
}

func (d *FsDriver) InitializeController(controller Controller) error {
	if !controllerIsMounted(string(controller)) {
		return fmt.Errorf("cgroup controller %s is not mounted "+
			"on this node", controller)
	}

	mntPoint, err := getControllerMountPoint(string(controller))
	if err != nil {
		return err
	}

	rootGroup := path.Join(mntPoint, d.prefix)
	if err := os.MkdirAll(rootGroup, 0755); err != nil {
		return fmt.Errorf("failed to create root group %s: %v",
			rootGroup, err)
	}

	d.mounts[controller] = mntPoint
	return nil
}

func (d *FsDriver) CreateGroup(controller Controller, groupId string) error {
	groupPath, err := d.groupPath(controller, groupId)
	if err != nil {
		return err
	}

	log.Debugf("creating cgroup %s", groupPath)
	if err := os.Mkdir(groupPath, 0755); err != nil {
		return fmt.Errorf("failed to create cgroup %s: %v", groupPath, err)
	}

	return nil
}

func (d *FsDriver) UpdateParam(controller Controller, groupId, param, value string) error {
	groupPath, err := d.groupPath(controller, groupId)
	if err != nil {
		return err
	}

	confFile := path.Join(groupPath, param)
	log.Debugf("set %s => %s", confFile, value)
	if err := ioutil.WriteFile(confFile, []byte(value), 0644); err != nil {
		return fmt.Errorf("failed to set %s to %s: %v", param, value, err)
	}

	return nil
}

func (d *FsDriver) DeleteGroup(controller Controller, groupId string) error {
	groupPath, err := d.groupPath(controller, groupId)
	if err != nil {
		return err
	}

	// notes: regular files inside a cgroup directory can't be unlinked;
	// removing the directory itself is how a group is deleted, and the
	// kernel refuses while processes are still attached.
	log.Debugf("removing cgroup %s", groupPath)
	if err := os.Remove(groupPath); err != nil {
		return fmt.Errorf("failed to remove cgroup %s: %v", groupPath, err)
	}

	return nil
}

func (d *FsDriver) TasksPath(controller Controller, groupId string) (string, error) {
	groupPath, err := d.groupPath(controller, groupId)
	if err != nil {
		return "", err
	}
	return path.Join(groupPath, tasksFile), nil
}

func (d *FsDriver) groupPath(controller Controller, groupId string) (string, error) {
	mntPoint, ok := d.mounts[controller]
	if !ok {
		return "", fmt.Errorf("cgroup controller %s is not initialized",
			controller)
	}
	return path.Join(mntPoint, d.prefix, groupId), nil
}

func controllerIsMounted(controller string) bool {
	contentsBytes, err := ioutil.ReadFile(cgroupInfoFile)
	if err != nil {
		return false
	}
	return parseControllerEnabled(contentsBytes, controller)
}

func getControllerMountPoint(controller string) (string, error) {
	contentsBytes, err := ioutil.ReadFile(mountInfoFile)
	if err != nil {
		return "", err
	}
	return parseControllerMountPoint(contentsBytes, controller)
}

// parseControllerEnabled scans /proc/self/cgroup contents, whose lines
// look like "8:memory:/user.slice".
func parseControllerEnabled(contents []byte, controller string) bool {
	for _, cgroupInfo := range strings.Split(string(contents), "\n") {
		fields := strings.Split(cgroupInfo, ":")
		if len(fields) < 2 {
			continue
		}
		for _, name := range strings.Split(fields[1], ",") {
			if name == controller {
				return true
			}
		}
	}

	return false
}

// parseControllerMountPoint scans /proc/self/mountinfo contents for the
// cgroupfs mountpoint of the given controller.
func parseControllerMountPoint(contents []byte, controller string) (string, error) {
	for _, mntInfo := range strings.Split(string(contents), "\n") {
		mntFields := strings.Split(mntInfo, " ")
		if len(mntFields) < 10 {
			continue
		}
		if mntFields[8] == cgroupFsType && mntFields[9] == cgroupFsType {
			for _, opt := range strings.Split(path.Base(mntFields[4]), ",") {
				if opt == controller {
					return mntFields[4], nil
				}
			}
		}
	}

	return "", fmt.Errorf("controller %s not mounted", controller)
}
