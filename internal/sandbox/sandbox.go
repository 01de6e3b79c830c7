// Package sandbox confines the reverbose process to read-only access on the
// files it was asked to load, using Landlock on Linux.
//
// Restrictions apply to the whole process and cannot be lifted once enforced,
// so a Sandbox is enforced at most once. Option errors are recorded by New and
// reported by the first Enforce call.
//
//	sb := sandbox.New(sandbox.WithBestEffort(), sandbox.WithReadOnly(docPath))
//	if err := sb.Enforce(); err != nil {
//		return err
//	}
package sandbox

import (
	"errors"
	"fmt"
	"sync"
)

// ErrLandlockUnavailable indicates that Landlock is not supported by the kernel
// or the platform, or cannot be queried.
var ErrLandlockUnavailable = errors.New("landlock is unavailable")

// ErrABINotSupported indicates that the requested ABI is not available on the
// running kernel.
var ErrABINotSupported = errors.New("requested landlock ABI is not supported")

// ErrInvalidOption indicates that an option was malformed or incomplete.
var ErrInvalidOption = errors.New("invalid sandbox option")

const maxABIVersion = 6

// Option configures a Sandbox. Returning an error records the first failure.
type Option func(*config) error

type config struct {
	abi             int
	bestEffort      bool
	ignoreIfMissing bool
	paths           []string
}

// Sandbox holds a Landlock policy for the current process.
type Sandbox struct {
	cfg    config
	optErr error

	once sync.Once
	err  error
}

// New creates a Sandbox configured by opts. Nil options are skipped.
func New(opts ...Option) *Sandbox {
	s := &Sandbox{cfg: config{abi: maxABIVersion}}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&s.cfg); err != nil && s.optErr == nil {
			s.optErr = err
		}
	}
	return s
}

// Enforce restricts the current process to the configured paths. Subsequent
// calls return the first result.
func (s *Sandbox) Enforce() error {
	s.once.Do(func() {
		if s.optErr != nil {
			s.err = s.optErr
			return
		}
		s.err = s.cfg.enforce()
	})
	return s.err
}

// Paths returns the paths the sandbox grants read access to.
func (s *Sandbox) Paths() []string {
	return append([]string(nil), s.cfg.paths...)
}

// WithABI selects the Landlock ABI version (1-6).
func WithABI(version int) Option {
	return func(cfg *config) error {
		if version < 1 || version > maxABIVersion {
			return fmt.Errorf("%w: unsupported ABI version %d", ErrInvalidOption, version)
		}
		cfg.abi = version
		return nil
	}
}

// WithBestEffort downgrades to whatever the kernel supports, and skips
// enforcement entirely where Landlock is unavailable.
func WithBestEffort() Option {
	return func(cfg *config) error {
		cfg.bestEffort = true
		return nil
	}
}

// WithIgnoreIfMissing ignores paths that do not exist at enforcement time.
func WithIgnoreIfMissing() Option {
	return func(cfg *config) error {
		cfg.ignoreIfMissing = true
		return nil
	}
}

// WithReadOnly grants read access to paths. Directories grant read access to
// everything beneath them.
func WithReadOnly(paths ...string) Option {
	return func(cfg *config) error {
		for _, p := range paths {
			if p == "" {
				return fmt.Errorf("%w: read-only rule requires a path", ErrInvalidOption)
			}
		}
		cfg.paths = append(cfg.paths, paths...)
		return nil
	}
}
