//go:build linux

package sandbox

import (
	"fmt"
	"os"

	"github.com/landlock-lsm/go-landlock/landlock"
	"github.com/landlock-lsm/go-landlock/landlock/syscall"
)

var abiConfigs = [...]landlock.Config{
	1: landlock.V1,
	2: landlock.V2,
	3: landlock.V3,
	4: landlock.V4,
	5: landlock.V5,
	6: landlock.V6,
}

func (c *config) enforce() error {
	llc := abiConfigs[c.abi]
	if c.bestEffort {
		llc = llc.BestEffort()
	} else {
		supported, err := syscall.LandlockGetABIVersion()
		if err != nil {
			return fmt.Errorf("%w: %v", ErrLandlockUnavailable, err)
		}
		if supported < c.abi {
			return fmt.Errorf("%w: requested ABI %d, supported %d", ErrABINotSupported, c.abi, supported)
		}
	}

	rules, err := c.rules()
	if err != nil {
		return err
	}

	if err := llc.RestrictPaths(rules...); err != nil {
		return fmt.Errorf("landlock restrict paths failed: %w", err)
	}
	return nil
}

func (c *config) rules() ([]landlock.Rule, error) {
	rules := make([]landlock.Rule, 0, len(c.paths))
	for _, p := range c.paths {
		info, err := os.Stat(p)
		if err != nil {
			if os.IsNotExist(err) && c.ignoreIfMissing {
				continue
			}
			return nil, fmt.Errorf("filesystem path %q: %w", p, err)
		}

		if info.IsDir() {
			rules = append(rules, landlock.RODirs(p))
		} else {
			rules = append(rules, landlock.ROFiles(p))
		}
	}
	return rules, nil
}
