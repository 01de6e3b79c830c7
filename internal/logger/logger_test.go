package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestInitAndGetLogger(t *testing.T) {
	var buf bytes.Buffer
	if err := Init("debug", &buf); err != nil {
		t.Fatalf("Init: %v", err)
	}
	t.Cleanup(func() { _ = Init("info", nil) })

	if logrus.GetLevel() != logrus.DebugLevel {
		t.Fatalf("level = %v", logrus.GetLevel())
	}

	GetLogger("match").Debug("compiled pattern")
	out := buf.String()
	if !strings.Contains(out, "match") || !strings.Contains(out, "compiled pattern") {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestInitRejectsUnknownLevel(t *testing.T) {
	if err := Init("chatty", nil); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}

func TestGetLoggerPadsPrefix(t *testing.T) {
	long := GetLogger("a-rather-long-prefix")
	short := GetLogger("cmd")

	if got := long.Data["prefix"]; got != "a-rather-long-prefix" {
		t.Fatalf("long prefix = %q", got)
	}
	if got := short.Data["prefix"].(string); len(got) != len("a-rather-long-prefix") || strings.TrimSpace(got) != "cmd" {
		t.Fatalf("short prefix = %q", got)
	}
}
