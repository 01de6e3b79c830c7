package verbose

import (
	"errors"
	"strings"

	"go.dw1.io/reverbose/internal/structhash"
)

// Term is either a Fragment or a Pattern. Composition treats a Fragment as a
// one-element Pattern.
type Term interface {
	fragments() []Fragment
	termErr() error
}

var (
	_ Term = Fragment{}
	_ Term = Pattern{}
)

// Pattern is an immutable, ordered sequence of fragments. The zero value is
// the empty pattern.
//
// Every composition returns a new Pattern with its own backing array, so a
// Pattern may be shared and extended from several places without one holder
// observing another's additions.
type Pattern struct {
	frags []Fragment
	err   error
}

// Key is the canonical structural encoding of a Pattern. Patterns are equal
// exactly when their keys are, so Key works as a map key where Pattern itself
// (which holds slices) cannot.
type Key string

// New composes terms, in order, into a Pattern.
func New(terms ...Term) Pattern {
	n := 0
	for _, t := range terms {
		if frags, err := operand(t); err == nil {
			n += len(frags)
		}
	}

	p := Pattern{frags: make([]Fragment, 0, n)}
	for i, t := range terms {
		frags, err := operand(t)
		if err != nil {
			p.record(configErrorf("operand %d: %v", i, err))
			continue
		}
		p.record(t.termErr())
		p.frags = append(p.frags, frags...)
	}
	return p
}

// Concat returns a followed by b.
func Concat(a, b Term) Pattern {
	return New(a, b)
}

// Join is New for operands whose type is only known at run time. Fragment,
// Pattern and non-nil pointers to either are accepted; anything else is
// recorded as a configuration error naming its type.
func Join(operands ...any) Pattern {
	terms := make([]Term, 0, len(operands))
	var first error
	for i, op := range operands {
		var t Term
		switch v := op.(type) {
		case Fragment:
			t = v
		case Pattern:
			t = v
		case *Fragment:
			if v != nil {
				t = *v
			}
		case *Pattern:
			if v != nil {
				t = *v
			}
		}
		if t == nil {
			if first == nil {
				first = configErrorf("operand %d: cannot concatenate %T", i, op)
			}
			continue
		}
		if first == nil {
			first = t.termErr()
		}
		terms = append(terms, t)
	}

	p := New(terms...)
	if first != nil {
		p.err = first
	}
	return p
}

func operand(t Term) ([]Fragment, error) {
	switch v := t.(type) {
	case nil:
		return nil, errNilOperand
	case *Pattern:
		if v == nil {
			return nil, errNilOperand
		}
	case *Fragment:
		if v == nil {
			return nil, errNilOperand
		}
	}

	frags := t.fragments()
	for _, f := range frags {
		if f.kind == KindInvalid || f.kind >= kindCount {
			return nil, errZeroFragment
		}
	}
	return frags, nil
}

var (
	errNilOperand   = errors.New("nil operand")
	errZeroFragment = errors.New("zero Fragment")
)

func (p *Pattern) record(err error) {
	if p.err == nil {
		p.err = err
	}
}

func (f Fragment) fragments() []Fragment { return []Fragment{f} }
func (f Fragment) termErr() error        { return f.err }
func (p Pattern) fragments() []Fragment  { return p.frags }
func (p Pattern) termErr() error         { return p.err }

// Then returns p followed by terms. p is unchanged.
func (p Pattern) Then(terms ...Term) Pattern {
	return New(append([]Term{p}, terms...)...)
}

// Err returns the first construction failure of any fragment or operand, or
// a quantifier that has nothing before it to repeat.
func (p Pattern) Err() error {
	if p.err != nil {
		return p.err
	}

	for i, f := range p.frags {
		if !f.bare() {
			continue
		}
		if i == 0 {
			return configErrorf("%s has no preceding fragment to repeat", f.kind)
		}
		if prev := p.frags[i-1]; prev.kind.IsQuantifier() {
			return configErrorf("%s directly follows %s; use Lazy for a lazy quantifier", f.kind, prev.kind)
		}
	}
	return nil
}

// Len returns the number of top-level fragments.
func (p Pattern) Len() int { return len(p.frags) }

// Fragments returns a copy of the top-level fragments.
func (p Pattern) Fragments() []Fragment {
	return append([]Fragment(nil), p.frags...)
}

// String renders the pattern: every fragment's syntax, in order, with no
// separators.
func (p Pattern) String() string {
	var b strings.Builder
	p.render(&b)
	return b.String()
}

// GoString renders a constructor-call view of the pattern, e.g.
// Pattern(LineStart, Literal("cat"), ZeroOrOne(Whitespace)).
func (p Pattern) GoString() string {
	var b strings.Builder
	b.WriteString("Pattern(")
	p.debugList(&b)
	b.WriteByte(')')
	return b.String()
}

// Equal reports whether p and o hold the same fragments in the same order
// with the same parameters. Two patterns can render identically and still
// differ.
func (p Pattern) Equal(o Pattern) bool {
	if len(p.frags) != len(o.frags) {
		return false
	}
	for i := range p.frags {
		if !p.frags[i].equal(o.frags[i]) {
			return false
		}
	}
	return true
}

// Hash returns a stable structural hash; equal patterns hash identically.
func (p Pattern) Hash() uint64 {
	h := structhash.New()
	p.encode(h)
	return h.Sum64()
}

// Key returns the canonical structural encoding of p.
func (p Pattern) Key() Key {
	h := structhash.New()
	p.encode(h)
	return Key(h.Bytes())
}

// render writes each fragment in order. A fragment that a following bare
// quantifier repeats is grouped when the suffix would otherwise bind to its
// last atom only.
func (p Pattern) render(b *strings.Builder) {
	for i, f := range p.frags {
		if i+1 < len(p.frags) && p.frags[i+1].bare() && !f.atomic() {
			b.WriteString("(?:")
			f.render(b)
			b.WriteByte(')')
			continue
		}
		f.render(b)
	}
}

func (p Pattern) debugList(b *strings.Builder) {
	for i, f := range p.frags {
		if i > 0 {
			b.WriteString(", ")
		}
		f.debug(b)
	}
}

// debugTerm writes a single fragment bare and anything else as Pattern(...).
func (p Pattern) debugTerm(b *strings.Builder) {
	if len(p.frags) == 1 {
		p.frags[0].debug(b)
		return
	}
	b.WriteString(p.GoString())
}

func (p Pattern) atomic() bool {
	return len(p.frags) == 1 && p.frags[0].atomic()
}

func (p Pattern) encode(h *structhash.Hasher) {
	h.Open(len(p.frags))
	for _, f := range p.frags {
		f.encode(h)
	}
	h.Close()
}

func (f Fragment) encode(h *structhash.Hasher) {
	h.WriteTag(byte(f.kind))
	h.WriteString(f.text)
	h.WriteInt(f.min)
	h.WriteInt(f.max)
	if f.lazy {
		h.WriteTag(1)
	} else {
		h.WriteTag(0)
	}

	h.Open(len(f.items))
	for _, item := range f.items {
		h.WriteString(item)
	}
	h.Close()

	h.Open(len(f.subs))
	for _, sub := range f.subs {
		sub.encode(h)
	}
	h.Close()
}
