package cgroups

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sampleMountInfo = []byte(`25 30 0:23 / /sys/fs/cgroup rw,nosuid,nodev,noexec shared:9 - tmpfs tmpfs ro,mode=755
33 25 0:29 / /sys/fs/cgroup/memory rw,nosuid,nodev,noexec,relatime shared:15 - cgroup cgroup rw,memory
34 25 0:30 / /sys/fs/cgroup/cpu,cpuacct rw,nosuid,nodev,noexec,relatime shared:16 - cgroup cgroup rw,cpu,cpuacct
35 30 0:31 / /proc rw,nosuid,nodev,noexec,relatime shared:17 - proc proc rw
`)

var sampleCgroupInfo = []byte(`10:memory:/user.slice
4:cpu,cpuacct:/
1:name=systemd:/user.slice/user-0.slice
`)

func TestParseControllerMountPoint(t *testing.T) {
	mntPoint, err := parseControllerMountPoint(sampleMountInfo, "memory")
	require.NoError(t, err)
	assert.Equal(t, "/sys/fs/cgroup/memory", mntPoint)

	mntPoint, err = parseControllerMountPoint(sampleMountInfo, "cpuacct")
	require.NoError(t, err)
	assert.Equal(t, "/sys/fs/cgroup/cpu,cpuacct", mntPoint)

	_, err = parseControllerMountPoint(sampleMountInfo, "blkio")
	require.Error(t, err)
}

func TestParseControllerEnabled(t *testing.T) {
	assert.True(t, parseControllerEnabled(sampleCgroupInfo, "memory"))
	assert.True(t, parseControllerEnabled(sampleCgroupInfo, "cpuacct"))
	assert.False(t, parseControllerEnabled(sampleCgroupInfo, "blkio"))
	assert.False(t, parseControllerEnabled(nil, "memory"))
}

func TestFsDriverPathsRequireInitialization(t *testing.T) {
	driver := NewFsDriver("nodeagent")

	_, err := driver.TasksPath(Memory, "C1")
	require.Error(t, err)

	// mountpoints are discovered by InitializeController; fake one in
	// to exercise path resolution without a cgroupfs.
	driver.mounts[Memory] = "/sys/fs/cgroup/memory"
	tasksPath, err := driver.TasksPath(Memory, "C1")
	require.NoError(t, err)
	assert.Equal(t, "/sys/fs/cgroup/memory/nodeagent/C1/tasks", tasksPath)
}
