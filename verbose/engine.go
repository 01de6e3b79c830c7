package verbose

import (
	"github.com/wasilibs/go-re2"

	"go.dw1.io/reverbose/regexp"
)

// Flags are engine modifiers chosen at compile time. They are never stored
// on a Pattern.
type Flags = regexp.Flags

const (
	IgnoreCase = regexp.IgnoreCase
	Multiline  = regexp.Multiline
	DotAll     = regexp.DotAll
	NoFlags    = regexp.None
)

// Matcher is a compiled pattern as produced by an Engine. The method set is
// the string half of the standard library's *regexp.Regexp, which the
// engines below all provide.
type Matcher interface {
	String() string
	MatchString(s string) bool
	FindStringSubmatchIndex(s string) []int
	FindAllStringSubmatchIndex(s string, n int) [][]int
	ReplaceAllString(src, repl string) string
	Split(s string, n int) []string
	SubexpNames() []string
	NumSubexp() int
}

// Engine compiles rendered patterns.
type Engine interface {
	Compile(pattern string, flags Flags) (Matcher, error)
}

// EngineFunc adapts a function to Engine.
type EngineFunc func(pattern string, flags Flags) (Matcher, error)

// Compile calls fn.
func (fn EngineFunc) Compile(pattern string, flags Flags) (Matcher, error) {
	return fn(pattern, flags)
}

var (
	// DefaultEngine compiles with coregex and falls back to regexp2 when the
	// pattern needs PCRE-only syntax such as lookbehind or backreferences.
	DefaultEngine Engine = EngineFunc(func(pattern string, flags Flags) (Matcher, error) {
		re, err := regexp.CompileFlags(pattern, flags)
		if err != nil {
			return nil, err
		}
		return re, nil
	})

	// PCREEngine always compiles with regexp2.
	PCREEngine Engine = EngineFunc(func(pattern string, flags Flags) (Matcher, error) {
		re, err := regexp.CompilePCRE(pattern, flags)
		if err != nil {
			return nil, err
		}
		return re, nil
	})

	// RE2Engine compiles with RE2 itself through wasilibs/go-re2. It rejects
	// lookaround, backreferences and comments.
	RE2Engine Engine = EngineFunc(func(pattern string, flags Flags) (Matcher, error) {
		re, err := re2.Compile(flags.Inline() + pattern)
		if err != nil {
			return nil, err
		}
		return re, nil
	})
)

// Option configures Compile.
type Option func(*config)

type config struct {
	engine Engine
	flags  Flags
}

// WithEngine selects the engine that compiles and runs the pattern.
func WithEngine(e Engine) Option {
	return func(c *config) {
		c.engine = e
	}
}

// WithFlags sets the engine modifiers.
func WithFlags(f Flags) Option {
	return func(c *config) {
		c.flags = f
	}
}
