package container

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Pallinder/go-randomdata"
	"github.com/c2h5oh/datasize"
	"github.com/urfave/cli"
	"weike.sh/nodeagent/util"
)

func NewContainer(ctx *cli.Context) (*Container, error) {
	name := ctx.String("name")
	if name == "" {
		// generate a random name if necessary.
		name = strings.ToLower(randomdata.SillyName())
	}

	uuid := ctx.String("id")
	if uuid == "" {
		uuid = util.Sha256Sum(name)[:12]
	}

	memoryMB, err := parseMemoryMB(ctx.String("memory"))
	if err != nil {
		return nil, err
	}

	execType := Guaranteed
	if ctx.Bool("opportunistic") {
		execType = Opportunistic
	}

	return &Container{
		Uuid:          uuid,
		Name:          name,
		MemoryMB:      memoryMB,
		ExecutionType: execType,
		Pid:           ctx.Int("pid"),
		CreateTime:    time.Now().Format("2006-01-02 15:04:05"),
	}, nil
}

// parseMemoryMB accepts plain numbers (megabytes) as well as
// human-readable sizes like 2048M or 2G.
func parseMemoryMB(arg string) (int64, error) {
	if arg == "" {
		return 0, fmt.Errorf("the container memory allocation is required")
	}

	memoryMB, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		var size datasize.ByteSize
		if err := size.UnmarshalText([]byte(arg)); err != nil {
			return 0, fmt.Errorf("invalid memory allocation %s: %v", arg, err)
		}
		memoryMB = int64(size / datasize.MB)
	}

	if memoryMB <= 0 {
		return 0, fmt.Errorf("the memory allocation %s must be at least 1MB", arg)
	}

	return memoryMB, nil
}
