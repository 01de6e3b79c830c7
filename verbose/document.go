package verbose

import (
	"fmt"

	"go.dw1.io/reverbose/internal/cast"
	"go.dw1.io/reverbose/json"
)

// document is the JSON shape of a Pattern:
//
//	{"words":[{"word":"LineStart"},{"word":"Repeat","min":2,"max":4,"of":[{"word":"AnyDigit"}]}]}
type document struct {
	Words []word `json:"words"`
}

// word is one Fragment. Scalar parameters are decoded loosely so that
// hand-written documents may say "min":"2".
type word struct {
	Word         string   `json:"word"`
	Text         any      `json:"text,omitempty"`
	Name         any      `json:"name,omitempty"`
	Items        []any    `json:"items,omitempty"`
	Min          any      `json:"min,omitempty"`
	Max          any      `json:"max,omitempty"`
	Lazy         bool     `json:"lazy,omitempty"`
	Of           []word   `json:"of,omitempty"`
	Alternatives [][]word `json:"alternatives,omitempty"`
}

// MarshalJSON encodes p as a pattern document. Patterns that failed
// validation cannot be encoded.
func (p Pattern) MarshalJSON() ([]byte, error) {
	if err := p.Err(); err != nil {
		return nil, err
	}
	return json.Marshal(document{Words: encodeWords(p)})
}

// UnmarshalJSON replaces *p with the pattern decoded from data.
func (p *Pattern) UnmarshalJSON(data []byte) error {
	decoded, err := ParseDocument(data)
	if err != nil {
		return err
	}
	*p = decoded
	return nil
}

// ParseDocument decodes a pattern document. Unknown words and malformed
// parameters are reported as ErrConfiguration.
func ParseDocument(data []byte) (Pattern, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Pattern{}, configErrorf("decode document: %v", err)
	}

	p, err := decodeWords(doc.Words)
	if err != nil {
		return Pattern{}, err
	}
	if err := p.Err(); err != nil {
		return Pattern{}, err
	}
	return p, nil
}

func encodeWords(p Pattern) []word {
	out := make([]word, len(p.frags))
	for i, f := range p.frags {
		out[i] = encodeWord(f)
	}
	return out
}

func encodeWord(f Fragment) word {
	w := word{Word: f.kind.String(), Lazy: f.lazy}

	switch {
	case f.kind == KindBackReference:
		w.Name = f.text
	case f.kind.isText():
		w.Text = f.text
	case f.kind.isSet():
		w.Items = make([]any, len(f.items))
		for i, item := range f.items {
			w.Items[i] = item
		}
	case f.kind.isGroup():
		if f.kind == KindNamedGroup {
			w.Name = f.text
		}
		w.Of = encodeWords(f.subs[0])
	case f.kind.isAlternation():
		w.Alternatives = make([][]word, len(f.subs))
		for i, alt := range f.subs {
			w.Alternatives[i] = encodeWords(alt)
		}
	case f.kind.IsQuantifier():
		if f.kind == KindRepeat {
			w.Min, w.Max = f.min, f.max
		}
		if len(f.subs) > 0 {
			w.Of = encodeWords(f.subs[0])
		}
	}

	return w
}

func decodeWords(words []word) (Pattern, error) {
	terms := make([]Term, len(words))
	for i, w := range words {
		f, err := decodeWord(w)
		if err != nil {
			return Pattern{}, fmt.Errorf("word %d: %w", i, err)
		}
		terms[i] = f
	}
	return New(terms...), nil
}

func decodeWord(w word) (Fragment, error) {
	k, ok := ParseKind(w.Word)
	if !ok {
		return Fragment{}, configErrorf("unknown word %q", w.Word)
	}

	of, err := decodeWords(w.Of)
	if err != nil {
		return Fragment{}, err
	}

	var f Fragment
	switch {
	case k.isAtom():
		f = atom(k)
	case k == KindBackReference:
		name, err := stringParam(k, "name", w.Name)
		if err != nil {
			return Fragment{}, err
		}
		f = BackReference(name)
	case k.isText():
		text, err := stringParam(k, "text", w.Text)
		if err != nil {
			return Fragment{}, err
		}
		f = textFragment(k, text)
	case k.isSet():
		items, err := cast.Strings(w.Items)
		if err != nil {
			return Fragment{}, configErrorf("%s: items: %v", k, err)
		}
		f = set(k, items)
	case k == KindNamedGroup:
		name, err := stringParam(k, "name", w.Name)
		if err != nil {
			return Fragment{}, err
		}
		f = NamedGroup(name, of)
	case k.isGroup():
		f = group(k, "", []Term{of})
	case k.isAlternation():
		alts := make([]Term, len(w.Alternatives))
		for i, words := range w.Alternatives {
			alt, err := decodeWords(words)
			if err != nil {
				return Fragment{}, fmt.Errorf("alternative %d: %w", i, err)
			}
			alts[i] = alt
		}
		f = alternation(k, alts)
	case k.IsQuantifier():
		var target []Term
		if len(w.Of) > 0 {
			target = []Term{of}
		}
		if k == KindRepeat {
			n, m, err := repeatBounds(w.Min, w.Max)
			if err != nil {
				return Fragment{}, err
			}
			f = Repeat(n, m, target...)
		} else {
			f = quantifier(k, target)
		}
	}

	if w.Lazy {
		f = Lazy(f)
	}
	return f, f.err
}

func textFragment(k Kind, text string) Fragment {
	switch k {
	case KindLiteral:
		return Literal(text)
	case KindEscape:
		return Escape(text)
	case KindComment:
		return Comment(text)
	}
	return Raw(text)
}

func stringParam(k Kind, field string, v any) (string, error) {
	s, err := cast.String(v)
	if err != nil {
		return "", configErrorf("%s: %s: %v", k, field, err)
	}
	return s, nil
}

// repeatBounds decodes Repeat bounds. A missing max repeats exactly min times.
func repeatBounds(minV, maxV any) (int, int, error) {
	n, err := cast.Int(minV)
	if err != nil {
		return 0, 0, configErrorf("%s: min: %v", KindRepeat, err)
	}
	if maxV == nil {
		return n, n, nil
	}

	m, err := cast.Int(maxV)
	if err != nil {
		return 0, 0, configErrorf("%s: max: %v", KindRepeat, err)
	}
	return n, m, nil
}
