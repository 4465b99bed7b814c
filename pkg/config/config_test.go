package config

import (
	"io/ioutil"
	"path"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadNodeDefaults(t *testing.T) {
	conf, err := LoadNode("")
	require.NoError(t, err)

	assert.False(t, conf.PmemCheckEnabled)
	assert.False(t, conf.VmemCheckEnabled)
	assert.Equal(t, 0, conf.Swappiness)
	assert.Equal(t, 90.0, conf.SoftLimitPercentage)
	assert.Equal(t, "nodeagent", conf.CgroupsPrefix)
}

func TestLoadNodeFileOverridesDefaults(t *testing.T) {
	confFile := path.Join(t.TempDir(), "nodeagent.yaml")
	contents := []byte("memory-cgroups-swappiness: 60\npmem-check-enabled: true\n")
	require.NoError(t, ioutil.WriteFile(confFile, contents, 0644))

	conf, err := LoadNode(confFile)
	require.NoError(t, err)

	assert.True(t, conf.PmemCheckEnabled)
	assert.Equal(t, 60, conf.Swappiness)
	// untouched keys keep their defaults
	assert.False(t, conf.VmemCheckEnabled)
	assert.Equal(t, 90.0, conf.SoftLimitPercentage)
	assert.Equal(t, "nodeagent", conf.CgroupsPrefix)
}

func TestLoadNodeMissingFile(t *testing.T) {
	_, err := LoadNode(path.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
