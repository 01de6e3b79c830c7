package regexp

import (
	"strings"
	"unicode/utf8"

	"github.com/dlclark/regexp2"
)

// pcreMarkers lists substrings that only PCRE2 understands, based on
// pcre2syntax. \A and \z are absent on purpose: RE2 accepts both.
//
// Ref: https://pcre2project.github.io/pcre2/doc/pcre2syntax/
var pcreMarkers = []string{
	// Perl-style lookarounds and their verbose spellings
	"(?=", "(?!", "(?<=", "(?<!",
	"(*pla:", "(*positive_lookahead:",
	"(*nla:", "(*negative_lookahead:",
	"(*plb:", "(*positive_lookbehind:",
	"(*nlb:", "(*negative_lookbehind:",
	"(?*", "(*napla:", "(*non_atomic_positive_lookahead:",
	"(?<*", "(*naplb:", "(*non_atomic_positive_lookbehind:",
	"(*scan_substring:", "(*scs:",
	"(*script_run:", "(*sr:", "(*atomic_script_run:", "(*asr:",

	// Backtracking control verbs and option settings
	"(*ACCEPT)", "(*FAIL)", "(*F)", "(*MARK:", "(*:", "(*COMMIT)", "(*PRUNE)", "(*SKIP)", "(*THEN)",
	"(*LIMIT_DEPTH=", "(*LIMIT_HEAP=", "(*LIMIT_MATCH=", "(*CASELESS_RESTRICT)", "(*NOTEMPTY)", "(*NOTEMPTY_ATSTART)",
	"(*NO_AUTO_POSSESS)", "(*NO_DOTSTAR_ANCHOR)", "(*NO_JIT)", "(*NO_START_OPT)", "(*TURKISH_CASING)", "(*UTF)", "(*UCP)",
	"(*CR)", "(*LF)", "(*CRLF)", "(*ANYCRLF)", "(*ANY)", "(*NUL)",
	"(*BSR_ANYCRLF)", "(*BSR_UNICODE)",

	// Atomic, branch reset, conditional and comment groups
	"(?>", "(*atomic:", "(?|", "(?(DEFINE)", "(?(", "(?#",

	// Recursion, subroutine calls and extended classes
	"(?R)", "(?P>", "(?&", "(?[",

	// Escapes Go does not know
	`(?C`, `\C`, `\h`, `\H`, `\V`, `\R`, `\X`, `\N`, `\K`, `\e`, `\o{`,

	// \v is a vertical tab to RE2 but vertical whitespace to PCRE2
	`\v`,

	// Named backreferences
	`(?P=`, `\g`, `\k<`, `\k'`, `\k{`,

	// Anchors RE2 lacks
	`\Z`, `\G`,
}

// pcreFeature returns the first PCRE-only construct in pattern.
func pcreFeature(pattern string) (string, bool) {
	for _, v := range pcreMarkers {
		if strings.Contains(pattern, v) {
			return v, true
		}
	}

	if ref, ok := numericBackref(pattern); ok {
		return ref, true
	}

	// Go accepts (?P<name>...), and since 1.22 (?<name>...), but coregex
	// follows the older syntax package, so only the P form stays on it.
	if !strings.Contains(pattern, "(?P<") {
		for _, v := range []string{"(?<", "(?'"} {
			if strings.Contains(pattern, v) {
				return v, true
			}
		}
	}

	return "", false
}

// numericBackref finds an unescaped \1 .. \9.
func numericBackref(pattern string) (string, bool) {
	escaped := false
	for i := 0; i < len(pattern); i++ {
		if pattern[i] != '\\' {
			escaped = false
			continue
		}

		if !escaped && i+1 < len(pattern) {
			next := pattern[i+1]
			if next >= '1' && next <= '9' {
				return pattern[i : i+2], true
			}
		}
		escaped = !escaped
	}

	return "", false
}

func groupsToStrings(groups []regexp2.Group) []string {
	out := make([]string, len(groups))
	for i, g := range groups {
		if len(g.Captures) == 0 {
			continue
		}
		out[i] = g.String()
	}
	return out
}

func groupsToIndexes(idx *runeIndex, groups []regexp2.Group) []int {
	out := make([]int, 0, len(groups)*2)
	for _, g := range groups {
		if len(g.Captures) == 0 {
			out = append(out, -1, -1)
			continue
		}
		start, end := idx.span(g.Index, g.Length)
		out = append(out, start, end)
	}
	return out
}

// runeIndex converts regexp2's rune offsets into byte offsets of one subject.
// The offset table is built at most once per subject; ASCII subjects need
// none.
type runeIndex struct {
	s     string
	ascii bool
	offs  []int
}

func newRuneIndex(s string) *runeIndex {
	ascii := true
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			ascii = false
			break
		}
	}
	return &runeIndex{s: s, ascii: ascii}
}

func (x *runeIndex) span(startRune, length int) (int, int) {
	if startRune < 0 || length < 0 {
		return -1, -1
	}
	return x.offset(startRune), x.offset(startRune + length)
}

func (x *runeIndex) offset(r int) int {
	if r <= 0 {
		return 0
	}
	if x.ascii {
		return min(r, len(x.s))
	}

	if x.offs == nil {
		x.offs = make([]int, 0, utf8.RuneCountInString(x.s))
		for i := range x.s {
			x.offs = append(x.offs, i)
		}
	}
	if r >= len(x.offs) {
		return len(x.s)
	}
	return x.offs[r]
}
