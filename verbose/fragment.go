package verbose

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"go.dw1.io/reverbose/regexp"
)

// Fragment is one irreducible piece of pattern syntax. Fragments are values:
// constructors copy their inputs and nothing mutates a Fragment afterwards,
// so they may be shared freely.
//
// A Fragment that failed validation still renders, but carries the failure in
// Err and poisons every Pattern it is composed into.
type Fragment struct {
	kind  Kind
	text  string
	items []string
	min   int
	max   int
	lazy  bool
	subs  []Pattern
	err   error
}

func atom(k Kind) Fragment { return Fragment{kind: k} }

// Literal matches text exactly; every metacharacter is escaped.
func Literal(text string) Fragment {
	return Fragment{kind: KindLiteral, text: text}
}

// Raw inserts text verbatim. The engine decides whether it is valid syntax.
func Raw(text string) Fragment {
	return Fragment{kind: KindRaw, text: text}
}

// Escape renders a backslash followed by ch, e.g. Escape("t") is `\t`.
// Leading backslashes in ch are dropped.
func Escape(ch string) Fragment {
	ch = strings.TrimLeft(ch, `\`)
	f := Fragment{kind: KindEscape, text: ch}
	if ch == "" {
		f.err = configErrorf("%s: nothing to escape", KindEscape)
	}
	return f
}

// BackReference matches the text captured earlier by the named group.
func BackReference(name string) Fragment {
	f := Fragment{kind: KindBackReference, text: name}
	if name == "" {
		f.err = configErrorf("%s: empty group name", KindBackReference)
	}
	return f
}

// Comment is ignored by the engine.
func Comment(text string) Fragment {
	return Fragment{kind: KindComment, text: text}
}

// Set matches one character from members, e.g. Set("a-z", "_").
func Set(members ...string) Fragment {
	return set(KindSet, members)
}

// NotSet matches one character not in members.
func NotSet(members ...string) Fragment {
	return set(KindNotSet, members)
}

func set(k Kind, members []string) Fragment {
	f := Fragment{kind: k, items: append([]string(nil), members...)}
	if len(members) == 0 {
		f.err = configErrorf("%s: empty member list", k)
	}
	return f
}

// Group is a capturing group around body.
func Group(body ...Term) Fragment {
	return group(KindGroup, "", body)
}

// NamedGroup is a capturing group whose submatch is also reachable by name.
func NamedGroup(name string, body ...Term) Fragment {
	f := group(KindNamedGroup, name, body)
	if name == "" && f.err == nil {
		f.err = configErrorf("%s: empty group name", KindNamedGroup)
	}
	return f
}

// NonCapturingGroup groups body without capturing it.
func NonCapturingGroup(body ...Term) Fragment {
	return group(KindNonCapturingGroup, "", body)
}

// LookAhead asserts that body matches next without consuming it.
func LookAhead(body ...Term) Fragment {
	return group(KindLookAhead, "", body)
}

// NegativeLookAhead asserts that body does not match next.
func NegativeLookAhead(body ...Term) Fragment {
	return group(KindNegativeLookAhead, "", body)
}

// LookBehind asserts that body matches just before the current position.
func LookBehind(body ...Term) Fragment {
	return group(KindLookBehind, "", body)
}

// NegativeLookBehind asserts that body does not match just before the
// current position.
func NegativeLookBehind(body ...Term) Fragment {
	return group(KindNegativeLookBehind, "", body)
}

func group(k Kind, name string, body []Term) Fragment {
	p := New(body...)
	return Fragment{kind: k, text: name, subs: []Pattern{p}, err: p.Err()}
}

// Alternation matches any one of alts, joined with "|" and not grouped.
func Alternation(alts ...Term) Fragment {
	return alternation(KindAlternation, alts)
}

// NonCapturingAlternation is Alternation wrapped in a non-capturing group.
func NonCapturingAlternation(alts ...Term) Fragment {
	return alternation(KindNonCapturingAlternation, alts)
}

// AnyOf matches any one of the literal words.
func AnyOf(words ...string) Fragment {
	alts := make([]Term, len(words))
	for i, w := range words {
		alts[i] = Literal(w)
	}
	return NonCapturingAlternation(alts...)
}

func alternation(k Kind, alts []Term) Fragment {
	f := Fragment{kind: k, subs: make([]Pattern, len(alts))}
	if len(alts) == 0 {
		f.err = configErrorf("%s: empty alternative list", k)
	}
	for i, alt := range alts {
		f.subs[i] = New(alt)
		if err := f.subs[i].Err(); err != nil && f.err == nil {
			f.err = err
		}
	}
	return f
}

// ZeroOrOne repeats target zero or one time. Without a target it applies to
// the fragment that precedes it in the pattern.
func ZeroOrOne(target ...Term) Fragment {
	return quantifier(KindZeroOrOne, target)
}

// ZeroOrMore repeats target any number of times. Without a target it applies
// to the fragment that precedes it in the pattern.
func ZeroOrMore(target ...Term) Fragment {
	return quantifier(KindZeroOrMore, target)
}

// AllOrNone is ZeroOrMore.
func AllOrNone(target ...Term) Fragment {
	return ZeroOrMore(target...)
}

// OneOrMore repeats target at least once. Without a target it applies to the
// fragment that precedes it in the pattern.
func OneOrMore(target ...Term) Fragment {
	return quantifier(KindOneOrMore, target)
}

// Repeat repeats target between n and m times. A negative m leaves the upper
// bound open; m == n repeats exactly n times.
func Repeat(n, m int, target ...Term) Fragment {
	f := quantifier(KindRepeat, target)
	f.min, f.max = n, m
	if m < 0 {
		f.max = -1
	}
	switch {
	case f.err != nil:
	case n < 0:
		f.err = configErrorf("%s: negative minimum %d", KindRepeat, n)
	case m >= 0 && m < n:
		f.err = configErrorf("%s: maximum %d below minimum %d", KindRepeat, m, n)
	}
	return f
}

// Lazy makes quantifier q match as few repetitions as possible.
func Lazy(q Fragment) Fragment {
	if !q.kind.IsQuantifier() {
		q.err = configErrorf("Lazy: %s is not a quantifier", q.kind)
		return q
	}
	q.lazy = true
	return q
}

func quantifier(k Kind, target []Term) Fragment {
	f := Fragment{kind: k}
	if len(target) == 0 {
		return f
	}

	p := New(target...)
	f.subs = []Pattern{p}
	f.err = p.Err()
	if f.err == nil && len(p.frags) == 0 {
		f.err = configErrorf("%s: empty target", k)
	}
	return f
}

// Kind returns the fragment's discriminant.
func (f Fragment) Kind() Kind { return f.kind }

// Text returns the literal parameter: the text of Literal, Raw, Escape and
// Comment, or the group name of NamedGroup and BackReference.
func (f Fragment) Text() string { return f.text }

// Err returns the validation failure recorded at construction, if any.
func (f Fragment) Err() error { return f.err }

// Then composes f with terms into a new Pattern.
func (f Fragment) Then(terms ...Term) Pattern {
	return New(append([]Term{f}, terms...)...)
}

// String renders f as pattern syntax.
func (f Fragment) String() string {
	var b strings.Builder
	f.render(&b)
	return b.String()
}

// GoString renders f as a constructor call, e.g. Literal("cat").
func (f Fragment) GoString() string {
	var b strings.Builder
	f.debug(&b)
	return b.String()
}

// bare reports whether f is a quantifier without its own target.
func (f Fragment) bare() bool {
	return f.kind.IsQuantifier() && len(f.subs) == 0
}

func (f Fragment) render(b *strings.Builder) {
	info := kinds[f.kind]

	switch {
	case f.kind.isAtom():
		b.WriteString(info.syntax)
	case f.kind == KindLiteral:
		b.WriteString(regexp.QuoteMeta(f.text))
	case f.kind == KindRaw:
		b.WriteString(f.text)
	case f.kind == KindEscape:
		b.WriteString(info.syntax)
		b.WriteString(f.text)
	case f.kind == KindBackReference:
		b.WriteString(info.syntax)
		b.WriteString(f.text)
		b.WriteByte('>')
	case f.kind == KindComment:
		b.WriteString(info.syntax)
		b.WriteString(f.text)
		b.WriteByte(')')
	case f.kind.isSet():
		b.WriteString(info.syntax)
		for _, m := range f.items {
			b.WriteString(m)
		}
		b.WriteByte(']')
	case f.kind.isGroup():
		b.WriteString(info.syntax)
		if f.kind == KindNamedGroup {
			b.WriteString(f.text)
			b.WriteByte('>')
		}
		f.subs[0].render(b)
		b.WriteByte(')')
	case f.kind.isAlternation():
		b.WriteString(info.syntax)
		for i, alt := range f.subs {
			if i > 0 {
				b.WriteByte('|')
			}
			alt.render(b)
		}
		if info.syntax != "" {
			b.WriteByte(')')
		}
	case f.kind.IsQuantifier():
		if len(f.subs) > 0 {
			target := f.subs[0]
			if target.atomic() {
				target.render(b)
			} else {
				b.WriteString("(?:")
				target.render(b)
				b.WriteByte(')')
			}
		}
		f.renderSuffix(b)
	}
}

func (f Fragment) renderSuffix(b *strings.Builder) {
	if f.kind == KindRepeat {
		b.WriteByte('{')
		b.WriteString(strconv.Itoa(f.min))
		if f.max != f.min {
			b.WriteByte(',')
			if f.max >= 0 {
				b.WriteString(strconv.Itoa(f.max))
			}
		}
		b.WriteByte('}')
	} else {
		b.WriteString(kinds[f.kind].syntax)
	}
	if f.lazy {
		b.WriteByte('?')
	}
}

// atomic reports whether a quantifier suffix placed after f applies to the
// whole of f.
func (f Fragment) atomic() bool {
	switch {
	case kinds[f.kind].atomic:
		return true
	case f.kind == KindEscape:
		return utf8.RuneCountInString(f.text) == 1
	case f.kind != KindLiteral && f.kind != KindRaw:
		return false
	}

	s := f.String()
	if strings.HasPrefix(s, `\`) {
		s = s[1:]
	}
	return utf8.RuneCountInString(s) == 1
}

func (f Fragment) debug(b *strings.Builder) {
	name := f.kind.String()
	if f.lazy {
		b.WriteString("Lazy(")
	}
	b.WriteString(name)

	switch {
	case f.kind.isAtom():
	case f.kind.isText():
		b.WriteByte('(')
		b.WriteString(strconv.Quote(f.text))
		b.WriteByte(')')
	case f.kind.isSet():
		b.WriteByte('(')
		for i, m := range f.items {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(strconv.Quote(m))
		}
		b.WriteByte(')')
	case f.kind.isGroup():
		b.WriteByte('(')
		if f.kind == KindNamedGroup {
			b.WriteString(strconv.Quote(f.text))
			if len(f.subs[0].frags) > 0 {
				b.WriteString(", ")
			}
		}
		f.subs[0].debugList(b)
		b.WriteByte(')')
	case f.kind.isAlternation():
		b.WriteByte('(')
		for i, alt := range f.subs {
			if i > 0 {
				b.WriteString(", ")
			}
			alt.debugTerm(b)
		}
		b.WriteByte(')')
	case f.kind.IsQuantifier():
		b.WriteByte('(')
		if f.kind == KindRepeat {
			b.WriteString(strconv.Itoa(f.min))
			b.WriteString(", ")
			b.WriteString(strconv.Itoa(f.max))
			if len(f.subs) > 0 {
				b.WriteString(", ")
			}
		}
		if len(f.subs) > 0 {
			f.subs[0].debugList(b)
		}
		b.WriteByte(')')
	}

	if f.lazy {
		b.WriteByte(')')
	}
}

func (f Fragment) equal(o Fragment) bool {
	if f.kind != o.kind || f.text != o.text || f.min != o.min || f.max != o.max || f.lazy != o.lazy {
		return false
	}
	if len(f.items) != len(o.items) || len(f.subs) != len(o.subs) {
		return false
	}
	for i := range f.items {
		if f.items[i] != o.items[i] {
			return false
		}
	}
	for i := range f.subs {
		if !f.subs[i].Equal(o.subs[i]) {
			return false
		}
	}
	return true
}
