//go:build linux

package sandbox

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadOnlyEnforcement(t *testing.T) {
	dir := t.TempDir()
	allowed := filepath.Join(dir, "allowed.json")
	denied := filepath.Join(dir, "denied.txt")
	for _, p := range []string{allowed, denied} {
		if err := os.WriteFile(p, []byte("data"), 0o644); err != nil {
			t.Fatalf("seed %s: %v", p, err)
		}
	}

	cmd := exec.Command(os.Args[0], "-test.run=TestHelperProcess", "--")
	cmd.Env = append(os.Environ(),
		"SANDBOX_HELPER=1",
		"SANDBOX_ALLOWED="+allowed,
		"SANDBOX_DENIED="+denied,
	)

	out, err := cmd.CombinedOutput()
	output := string(out)
	if strings.Contains(output, "SKIP:") {
		t.Skip(strings.TrimSpace(output))
	}
	if err != nil {
		t.Fatalf("helper failed: %v\n%s", err, output)
	}
}

func TestMissingPath(t *testing.T) {
	cfg := config{abi: 1, paths: []string{filepath.Join(t.TempDir(), "missing")}}
	if _, err := cfg.rules(); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}

	cfg.ignoreIfMissing = true
	rules, err := cfg.rules()
	if err != nil || len(rules) != 0 {
		t.Fatalf("rules = %v, %v", rules, err)
	}
}

func TestHelperProcess(t *testing.T) {
	if os.Getenv("SANDBOX_HELPER") != "1" {
		return
	}

	allowed, denied := os.Getenv("SANDBOX_ALLOWED"), os.Getenv("SANDBOX_DENIED")
	if err := New(WithABI(1), WithReadOnly(allowed)).Enforce(); err != nil {
		if errors.Is(err, ErrLandlockUnavailable) || errors.Is(err, ErrABINotSupported) {
			fmt.Println("SKIP:", err)
			os.Exit(0)
		}
		fmt.Println("enforce:", err)
		os.Exit(1)
	}

	if _, err := os.ReadFile(allowed); err != nil {
		fmt.Println("read allowed:", err)
		os.Exit(1)
	}
	if _, err := os.ReadFile(denied); err == nil {
		fmt.Println("read outside the sandbox succeeded")
		os.Exit(1)
	}
	os.Exit(0)
}
