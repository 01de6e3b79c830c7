// Package logger configures logrus for the reverbose command.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
)

const timestampFormat = "2006-01-02 15:04:05"

var (
	mu        sync.Mutex
	prefixLen = 7
)

// Init sets the level and output of the standard logger. level is any name
// logrus understands ("info", "debug", ...).
func Init(level string, out io.Writer) error {
	lvl, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	if out == nil {
		out = os.Stderr
	}

	logrus.SetLevel(lvl)
	logrus.SetOutput(out)
	logrus.SetFormatter(&prefixed.TextFormatter{
		FullTimestamp:    true,
		QuoteEmptyFields: true,
		TimestampFormat:  timestampFormat,
	})
	return nil
}

// GetLogger returns an entry tagged with prefix. Prefixes are padded to the
// longest one seen so far so that messages line up.
func GetLogger(prefix string) *logrus.Entry {
	mu.Lock()
	if len(prefix) > prefixLen {
		prefixLen = len(prefix)
	}
	width := prefixLen
	mu.Unlock()

	return logrus.WithField("prefix", fmt.Sprintf("%-*s", width, prefix))
}
