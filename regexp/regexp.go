package regexp

import (
	"strconv"

	"github.com/coregx/coregex"
	"github.com/dlclark/regexp2"
)

// Backend identifies the engine that executes a compiled Regexp.
type Backend uint8

const (
	// BackendCore is coregex, used for RE2-compatible patterns.
	BackendCore Backend = iota
	// BackendPCRE is regexp2, used for patterns with PCRE-only syntax.
	BackendPCRE
)

func (b Backend) String() string {
	if b == BackendPCRE {
		return "regexp2"
	}

	return "coregex"
}

// Regexp is a compiled regular expression that delegates to either coregex
// (fast, RE2-compatible) or regexp2 (PCRE-compatible) depending on the
// pattern features detected at compile time.
type Regexp struct {
	pattern string
	flags   Flags
	core    *coregex.Regex
	pcre    *regexp2.Regexp
}

// Compile parses a regular expression and returns a compiled Regexp.
func Compile(pattern string) (*Regexp, error) {
	return CompileFlags(pattern, None)
}

// CompileFlags is like Compile but applies the modifier flags. Patterns that
// require PCRE/Perl-only features are compiled with regexp2; everything else
// uses coregex for speed.
func CompileFlags(pattern string, flags Flags) (*Regexp, error) {
	if _, ok := pcreFeature(pattern); ok {
		return CompilePCRE(pattern, flags)
	}

	re, err := coregex.Compile(flags.Inline() + pattern)
	if err != nil {
		return nil, err
	}

	return &Regexp{pattern: pattern, flags: flags, core: re}, nil
}

// CompilePCRE compiles pattern with regexp2 regardless of its features.
func CompilePCRE(pattern string, flags Flags) (*Regexp, error) {
	re, err := regexp2.Compile(pattern, flags.pcreOptions())
	if err != nil {
		return nil, err
	}

	return &Regexp{pattern: pattern, flags: flags, pcre: re}, nil
}

// MustCompile is like Compile but panics if the expression cannot be parsed.
func MustCompile(pattern string) *Regexp {
	re, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return re
}

// MatchString reports whether the string s matches the regular expression
// pattern. This mirrors regexp.MatchString.
func MatchString(pattern, s string) (bool, error) {
	re, err := Compile(pattern)
	if err != nil {
		return false, err
	}
	return re.MatchString(s), nil
}

// QuoteMeta escapes all regular expression metacharacters in s.
func QuoteMeta(s string) string {
	return coregex.QuoteMeta(s)
}

// PCREFeature returns the first PCRE-only construct found in pattern, if any.
// A pattern with such a construct is always compiled by regexp2.
func PCREFeature(pattern string) (string, bool) {
	return pcreFeature(pattern)
}

// String returns the source pattern used to compile the Regexp, without the
// modifier flags.
func (r *Regexp) String() string {
	return r.pattern
}

// Flags returns the modifier flags the Regexp was compiled with.
func (r *Regexp) Flags() Flags {
	return r.flags
}

// Backend reports which engine executes r.
func (r *Regexp) Backend() Backend {
	if r.pcre != nil {
		return BackendPCRE
	}

	return BackendCore
}

// MatchString reports whether the string s contains any match of the Regexp.
func (r *Regexp) MatchString(s string) bool {
	if r.core != nil {
		return r.core.MatchString(s)
	}

	matched, err := r.pcre.MatchString(s)
	return err == nil && matched
}

// FindString returns the leftmost match of the Regexp in s.
func (r *Regexp) FindString(s string) string {
	if r.core != nil {
		return r.core.FindString(s)
	}

	m, err := r.pcre.FindStringMatch(s)
	if err != nil || m == nil {
		return ""
	}

	return m.String()
}

// FindStringIndex returns a two-element slice with the start and end index of
// the leftmost match in s.
func (r *Regexp) FindStringIndex(s string) []int {
	if r.core != nil {
		return r.core.FindStringIndex(s)
	}

	m, err := r.pcre.FindStringMatch(s)
	if err != nil || m == nil {
		return nil
	}

	start, end := newRuneIndex(s).span(m.Index, m.Length)
	return []int{start, end}
}

// FindStringSubmatch returns the leftmost match of the Regexp in s and its
// submatches as strings.
func (r *Regexp) FindStringSubmatch(s string) []string {
	if r.core != nil {
		return r.core.FindStringSubmatch(s)
	}

	m, err := r.pcre.FindStringMatch(s)
	if err != nil || m == nil {
		return nil
	}

	return groupsToStrings(m.Groups())
}

// FindStringSubmatchIndex returns the index pairs identifying the leftmost
// match of the Regexp in s and its submatches.
func (r *Regexp) FindStringSubmatchIndex(s string) []int {
	if r.core != nil {
		return r.core.FindStringSubmatchIndex(s)
	}

	m, err := r.pcre.FindStringMatch(s)
	if err != nil || m == nil {
		return nil
	}

	return groupsToIndexes(newRuneIndex(s), m.Groups())
}

// FindAllString returns a slice of all successive matches of the Regexp in s.
func (r *Regexp) FindAllString(s string, n int) []string {
	if r.core != nil {
		return r.core.FindAllString(s, n)
	}

	var out []string
	r.eachPCRE(s, n, func(m *regexp2.Match) {
		out = append(out, m.String())
	})
	return out
}

// FindAllStringIndex returns a slice of all successive match indices of the
// Regexp in s.
func (r *Regexp) FindAllStringIndex(s string, n int) [][]int {
	if r.core != nil {
		return r.core.FindAllStringIndex(s, n)
	}

	var out [][]int
	idx := newRuneIndex(s)
	r.eachPCRE(s, n, func(m *regexp2.Match) {
		start, end := idx.span(m.Index, m.Length)
		out = append(out, []int{start, end})
	})
	return out
}

// FindAllStringSubmatch returns a slice of all successive matches of the
// Regexp in s and their submatches.
func (r *Regexp) FindAllStringSubmatch(s string, n int) [][]string {
	if r.core != nil {
		return r.core.FindAllStringSubmatch(s, n)
	}

	var out [][]string
	r.eachPCRE(s, n, func(m *regexp2.Match) {
		out = append(out, groupsToStrings(m.Groups()))
	})
	return out
}

// FindAllStringSubmatchIndex returns a slice of all successive match index
// pairs of the Regexp in s and their submatches.
func (r *Regexp) FindAllStringSubmatchIndex(s string, n int) [][]int {
	if r.core != nil {
		return r.core.FindAllStringSubmatchIndex(s, n)
	}

	var out [][]int
	idx := newRuneIndex(s)
	r.eachPCRE(s, n, func(m *regexp2.Match) {
		out = append(out, groupsToIndexes(idx, m.Groups()))
	})
	return out
}

// ReplaceAllString returns a copy of src, replacing matches of the Regexp with
// repl. Inside repl, $1 and ${name} refer to submatches on both backends.
func (r *Regexp) ReplaceAllString(src, repl string) string {
	if r.core != nil {
		return r.core.ReplaceAllString(src, repl)
	}

	replaced, err := r.pcre.Replace(src, repl, -1, -1)
	if err != nil {
		return src
	}

	return replaced
}

// Split slices s into substrings separated by the Regexp.
func (r *Regexp) Split(s string, n int) []string {
	if r.core != nil {
		return r.core.Split(s, n)
	}

	if n == 0 {
		return nil
	}

	var parts []string
	last := 0
	count := 0

	idx := newRuneIndex(s)
	m, err := r.pcre.FindStringMatch(s)
	for err == nil && m != nil {
		if n > 0 && count+1 >= n {
			break
		}

		start, end := idx.span(m.Index, m.Length)
		parts = append(parts, s[last:start])
		last = end
		count++

		m, err = r.pcre.FindNextMatch(m)
	}

	return append(parts, s[last:])
}

// NumSubexp returns the number of parenthesized subexpressions in this Regexp.
func (r *Regexp) NumSubexp() int {
	if r.core != nil {
		return r.core.NumSubexp()
	}

	return maxGroupNumber(r.pcre)
}

// SubexpNames returns the names of the parenthesized subexpressions in this
// Regexp. The name for the first sub-expression is names[1]. Unnamed groups
// have an empty name on both backends.
func (r *Regexp) SubexpNames() []string {
	if r.core != nil {
		return r.core.SubexpNames()
	}

	max := maxGroupNumber(r.pcre)
	names := make([]string, max+1)
	for i := 1; i <= max; i++ {
		name := r.pcre.GroupNameFromNumber(i)
		if name != strconv.Itoa(i) {
			names[i] = name
		}
	}

	return names
}

// Longest switches the underlying engine to leftmost-longest matching when
// supported. coregex provides this directly; regexp2 is already PCRE-style and
// does not change behavior here.
func (r *Regexp) Longest() {
	if r.core != nil {
		r.core.Longest()
	}
}

// eachPCRE walks successive regexp2 matches, stopping after n when n >= 0.
func (r *Regexp) eachPCRE(s string, n int, fn func(m *regexp2.Match)) {
	count := 0
	m, err := r.pcre.FindStringMatch(s)
	for err == nil && m != nil {
		if n >= 0 && count >= n {
			return
		}

		fn(m)
		count++
		m, err = r.pcre.FindNextMatch(m)
	}
}

func maxGroupNumber(re *regexp2.Regexp) int {
	max := 0
	for _, v := range re.GetGroupNumbers() {
		if v > max {
			max = v
		}
	}
	return max
}
