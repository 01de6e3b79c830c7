package verbose

import (
	"iter"
)

// Regexp is a Pattern compiled by an Engine. Every matching method forwards
// to the engine; results are exposed as the engine reported them.
type Regexp struct {
	pattern Pattern
	source  string
	flags   Flags

	search handle
	prefix handle
	full   handle
}

type handle struct {
	m     Matcher
	names []string
}

func newHandle(m Matcher) handle {
	return handle{m: m, names: m.SubexpNames()}
}

// Compile renders t and compiles it. The engine also compiles the anchored
// forms \A(?:p) and \A(?:p)\z that back Match and FullMatch.
//
// Construction failures are returned as ErrConfiguration; an engine
// rejection is returned as *PatternSyntaxError.
func Compile(t Term, opts ...Option) (*Regexp, error) {
	p := New(t)
	if err := p.Err(); err != nil {
		return nil, err
	}

	cfg := config{engine: DefaultEngine}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.engine == nil {
		return nil, configErrorf("nil engine")
	}

	source := p.String()
	re := &Regexp{pattern: p, source: source, flags: cfg.flags}

	forms := []struct {
		dst  *handle
		expr string
	}{
		{&re.search, source},
		{&re.prefix, `\A(?:` + source + `)`},
		{&re.full, `\A(?:` + source + `)\z`},
	}
	for _, form := range forms {
		m, err := cfg.engine.Compile(form.expr, cfg.flags)
		if err != nil {
			return nil, &PatternSyntaxError{Pattern: form.expr, Err: err}
		}
		*form.dst = newHandle(m)
	}

	return re, nil
}

// MustCompile is like Compile but panics on error.
func MustCompile(t Term, opts ...Option) *Regexp {
	re, err := Compile(t, opts...)
	if err != nil {
		panic(err)
	}
	return re
}

// Compile compiles p. See the package-level Compile.
func (p Pattern) Compile(opts ...Option) (*Regexp, error) {
	return Compile(p, opts...)
}

// Pattern returns the pattern r was compiled from.
func (r *Regexp) Pattern() Pattern { return r.pattern }

// String returns the rendered pattern, without flags or anchoring.
func (r *Regexp) String() string { return r.source }

// Flags returns the modifiers r was compiled with.
func (r *Regexp) Flags() Flags { return r.flags }

// Matcher returns the engine's compiled handle for the unanchored pattern.
func (r *Regexp) Matcher() Matcher { return r.search.m }

// MatchString reports whether s contains a match.
func (r *Regexp) MatchString(s string) bool {
	return r.search.m.MatchString(s)
}

// Search returns the leftmost match in s.
func (r *Regexp) Search(s string) (Match, bool) {
	return r.search.find(s)
}

// Match returns the match starting at the beginning of s.
func (r *Regexp) Match(s string) (Match, bool) {
	return r.prefix.find(s)
}

// FullMatch returns the match spanning all of s.
func (r *Regexp) FullMatch(s string) (Match, bool) {
	return r.full.find(s)
}

// FindAll returns successive non-overlapping matches, at most n when n >= 0.
func (r *Regexp) FindAll(s string, n int) []Match {
	all := r.search.m.FindAllStringSubmatchIndex(s, n)
	if all == nil {
		return nil
	}

	out := make([]Match, len(all))
	for i, idx := range all {
		out[i] = Match{subject: s, index: idx, names: r.search.names}
	}
	return out
}

// All iterates over every match in s.
func (r *Regexp) All(s string) iter.Seq[Match] {
	return func(yield func(Match) bool) {
		for _, m := range r.FindAll(s, -1) {
			if !yield(m) {
				return
			}
		}
	}
}

// Substitute replaces every match in src with repl, where $1 and ${name}
// expand to submatches.
func (r *Regexp) Substitute(src, repl string) string {
	return r.search.m.ReplaceAllString(src, repl)
}

// SubstituteCount is Substitute that also reports how many matches were
// replaced.
func (r *Regexp) SubstituteCount(src, repl string) (string, int) {
	n := len(r.search.m.FindAllStringSubmatchIndex(src, -1))
	if n == 0 {
		return src, 0
	}
	return r.search.m.ReplaceAllString(src, repl), n
}

// Split slices s around the matches; n limits the number of substrings as in
// the standard library.
func (r *Regexp) Split(s string, n int) []string {
	return r.search.m.Split(s, n)
}

// NumSubexp returns the number of capturing groups.
func (r *Regexp) NumSubexp() int {
	return r.search.m.NumSubexp()
}

// SubexpNames returns the group names as reported by the engine.
func (r *Regexp) SubexpNames() []string {
	return append([]string(nil), r.search.names...)
}

func (h handle) find(s string) (Match, bool) {
	idx := h.m.FindStringSubmatchIndex(s)
	if idx == nil {
		return Match{}, false
	}
	return Match{subject: s, index: idx, names: h.names}, true
}
