package sandbox

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestInvalidOptionErrors(t *testing.T) {
	cases := map[string]Option{
		"empty path":   WithReadOnly("/etc", ""),
		"abi too low":  WithABI(0),
		"abi too high": WithABI(maxABIVersion + 1),
	}

	for name, opt := range cases {
		t.Run(name, func(t *testing.T) {
			sb := New(opt)
			if err := sb.Enforce(); !errors.Is(err, ErrInvalidOption) {
				t.Fatalf("expected ErrInvalidOption, got %v", err)
			}
		})
	}
}

func TestFirstOptionErrorWins(t *testing.T) {
	sb := New(nil, WithABI(9), WithReadOnly(""))
	err := sb.Enforce()
	if !errors.Is(err, ErrInvalidOption) || err.Error() != "invalid sandbox option: unsupported ABI version 9" {
		t.Fatalf("err = %v", err)
	}
	if again := sb.Enforce(); again != err {
		t.Fatalf("second Enforce returned %v", again)
	}
}

func TestPaths(t *testing.T) {
	sb := New(WithReadOnly("/a"), WithReadOnly("/b", "/c"))
	if diff := cmp.Diff([]string{"/a", "/b", "/c"}, sb.Paths()); diff != "" {
		t.Fatalf("paths mismatch (-want +got):\n%s", diff)
	}
}
