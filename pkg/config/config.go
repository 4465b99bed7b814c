package config

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

// Recognized configuration keys.
const (
	KeyPmemCheckEnabled    = "pmem-check-enabled"
	KeyVmemCheckEnabled    = "vmem-check-enabled"
	KeySwappiness          = "memory-cgroups-swappiness"
	KeySoftLimitPercentage = "memory-cgroups-soft-limit-percentage"
	KeyCgroupsPrefix       = "cgroups-hierarchy-prefix"
)

// EnvConfigPath names the environment variable pointing at an optional
// node configuration file, overridable per-invocation with --config.
const EnvConfigPath = "NODEAGENT_CONFIG"

//go:embed config.default.yaml
var defaultConfig []byte

// Node is the node agent's configuration. Values loaded from a config
// file override the embedded defaults key by key.
type Node struct {
	// The polling physical/virtual memory health checkers; both must
	// stay disabled while the cgroups memory controller is in use.
	PmemCheckEnabled bool `koanf:"pmem-check-enabled"`
	VmemCheckEnabled bool `koanf:"vmem-check-enabled"`

	// Swappiness applied to every guaranteed container's cgroup, 0-100.
	Swappiness int `koanf:"memory-cgroups-swappiness"`

	// Percentage of a container's hard memory limit used as its soft
	// limit, 0.0-100.0.
	SoftLimitPercentage float64 `koanf:"memory-cgroups-soft-limit-percentage"`

	// Directory under each controller's mountpoint holding this
	// agent's cgroups.
	CgroupsPrefix string `koanf:"cgroups-hierarchy-prefix"`
}

// LoadNode loads the node configuration from the embedded defaults plus
// an optional YAML file. An empty path falls back to $NODEAGENT_CONFIG.
func LoadNode(path string) (*Node, error) {
	k := koanf.New(".")

	if err := k.Load(rawbytes.Provider(defaultConfig), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("failed to load default config: %v", err)
	}

	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %v",
				path, err)
		}
	}

	conf := &Node{}
	if err := k.Unmarshal("", conf); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %v", err)
	}

	return conf, nil
}
