package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"go.dw1.io/reverbose/internal/logger"
	"go.dw1.io/reverbose/internal/sandbox"
	"go.dw1.io/reverbose/internal/subject"
	"go.dw1.io/reverbose/verbose"
)

// errNoMatch makes the process exit with status 1 without logging.
var errNoMatch = errors.New("no match")

type rootOptions struct {
	engine   string
	logLevel string
	sandbox  bool
	log      *logrus.Entry
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "reverbose",
		Short:         "Render and run readable regular expressions",
		Long:          `Renders pattern documents to regular expressions and runs them against text with a pluggable engine.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := logger.Init(opts.logLevel, cmd.ErrOrStderr()); err != nil {
				return err
			}
			opts.log = logger.GetLogger(cmd.Name())

			if !opts.sandbox {
				return nil
			}
			paths := readablePaths(cmd, args)
			if err := sandbox.New(sandbox.WithBestEffort(), sandbox.WithReadOnly(paths...)).Enforce(); err != nil {
				return fmt.Errorf("sandbox: %w", err)
			}
			opts.log.WithField("paths", paths).Debug("Sandbox enforced")
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.engine, "engine", "auto", "Regex engine (auto, pcre, re2)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "Log level")
	cmd.PersistentFlags().BoolVar(&opts.sandbox, "sandbox", false, "Restrict the process to reading DOC and --file (Linux Landlock)")

	cmd.AddCommand(
		newRenderCmd(opts),
		newMatchCmd(opts),
		newReplaceCmd(opts),
		newSplitCmd(opts),
	)
	return cmd
}

func (o *rootOptions) selectEngine() (verbose.Engine, error) {
	switch strings.ToLower(o.engine) {
	case "", "auto":
		return verbose.DefaultEngine, nil
	case "pcre", "regexp2":
		return verbose.PCREEngine, nil
	case "re2":
		return verbose.RE2Engine, nil
	}
	return nil, fmt.Errorf("unknown engine %q", o.engine)
}

// compile loads the document named by doc and compiles it with the selected
// engine and flags.
func (o *rootOptions) compile(cmd *cobra.Command, doc string, flags verbose.Flags) (*verbose.Regexp, error) {
	p, err := loadPattern(cmd, doc)
	if err != nil {
		return nil, err
	}

	engine, err := o.selectEngine()
	if err != nil {
		return nil, err
	}

	re, err := p.Compile(verbose.WithEngine(engine), verbose.WithFlags(flags))
	if err != nil {
		return nil, err
	}

	o.log.WithField("engine", o.engine).Debugf("Compiled %q", re)
	return re, nil
}

// isDocPath reports whether a DOC argument names a file.
func isDocPath(doc string) bool {
	return doc != "-" && !strings.HasPrefix(strings.TrimSpace(doc), "{")
}

// readablePaths lists the files a command will open: a DOC path and --file.
func readablePaths(cmd *cobra.Command, args []string) []string {
	var paths []string
	if len(args) > 0 && isDocPath(args[0]) {
		paths = append(paths, args[0])
	}
	if f := cmd.Flags().Lookup("file"); f != nil && f.Value.String() != "" {
		paths = append(paths, f.Value.String())
	}
	return paths
}

func loadPattern(cmd *cobra.Command, doc string) (verbose.Pattern, error) {
	var data []byte
	switch {
	case doc == "-":
		b, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return verbose.Pattern{}, fmt.Errorf("read document: %w", err)
		}
		data = b
	case !isDocPath(doc):
		data = []byte(doc)
	default:
		text, err := subject.Load(doc)
		if err != nil {
			return verbose.Pattern{}, fmt.Errorf("read document: %w", err)
		}
		data = []byte(text)
	}

	return verbose.ParseDocument(data)
}

// subjectFlags are shared by the commands that run a pattern against text.
type subjectFlags struct {
	file string
}

func (s *subjectFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&s.file, "file", "f", "", "Read the subject from a file")
}

// text returns the subject from --file, the positional argument at idx, or
// standard input, in that order.
func (s *subjectFlags) text(cmd *cobra.Command, args []string, idx int, log *logrus.Entry) (string, error) {
	if s.file != "" {
		f, err := subject.Open(s.file)
		if err != nil {
			return "", fmt.Errorf("read subject: %w", err)
		}
		defer f.Close()

		log.WithFields(logrus.Fields{"bytes": f.Len(), "mapped": f.Mapped()}).Debugf("Loaded %s", f.Name())
		return f.Text()
	}
	if idx < len(args) {
		return args[idx], nil
	}

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read subject: %w", err)
	}
	return string(data), nil
}
