package regexp

import (
	"strings"

	"github.com/dlclark/regexp2"
)

// Flags are engine-level modifiers applied when a pattern is compiled.
type Flags uint8

const (
	// IgnoreCase matches letters case-insensitively.
	IgnoreCase Flags = 1 << iota
	// Multiline lets ^ and $ match at line boundaries.
	Multiline
	// DotAll lets . match a newline.
	DotAll

	// None is the zero set of flags.
	None Flags = 0
)

var flagNames = []struct {
	flag   Flags
	name   string
	inline byte
}{
	{IgnoreCase, "IgnoreCase", 'i'},
	{Multiline, "Multiline", 'm'},
	{DotAll, "DotAll", 's'},
}

// Inline returns the RE2 inline modifier group for f, e.g. "(?is)". The empty
// string is returned when no flags are set.
func (f Flags) Inline() string {
	if f == None {
		return ""
	}

	var b strings.Builder
	b.WriteString("(?")
	for _, n := range flagNames {
		if f&n.flag != 0 {
			b.WriteByte(n.inline)
		}
	}
	b.WriteByte(')')

	return b.String()
}

// String returns the flag names joined by "|".
func (f Flags) String() string {
	if f == None {
		return "None"
	}

	names := make([]string, 0, len(flagNames))
	for _, n := range flagNames {
		if f&n.flag != 0 {
			names = append(names, n.name)
		}
	}

	return strings.Join(names, "|")
}

// ParseFlags maps inline letters (as accepted by [Flags.Inline]) back to
// Flags. Unknown letters are reported through ok.
func ParseFlags(letters string) (f Flags, ok bool) {
	ok = true
	for i := 0; i < len(letters); i++ {
		found := false
		for _, n := range flagNames {
			if letters[i] == n.inline {
				f |= n.flag
				found = true
				break
			}
		}
		if !found {
			ok = false
		}
	}

	return f, ok
}

// pcreOptions maps f onto regexp2 options. RE2 compatibility is always on so
// that (?P<name>...) groups parse the same way on both backends.
func (f Flags) pcreOptions() regexp2.RegexOptions {
	opts := regexp2.RE2
	if f&IgnoreCase != 0 {
		opts |= regexp2.IgnoreCase
	}
	if f&Multiline != 0 {
		opts |= regexp2.Multiline
	}
	if f&DotAll != 0 {
		opts |= regexp2.Singleline
	}

	return opts
}
