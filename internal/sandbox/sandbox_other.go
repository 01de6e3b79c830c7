//go:build !linux

package sandbox

func (c *config) enforce() error {
	if c.bestEffort {
		return nil
	}
	return ErrLandlockUnavailable
}
