package verbose

// Kind identifies the syntax construct a Fragment renders.
type Kind uint8

const (
	KindInvalid Kind = iota

	KindLineStart
	KindLineEnd
	KindStringStart
	KindStringEnd
	KindWordBoundary
	KindNonWordBoundary
	KindAnyDigit
	KindAnyNonDigit
	KindAnyWord
	KindAnyNonWord
	KindWhitespace
	KindNonWhitespace
	KindAny
	KindPeriod
	KindQuestionMark

	KindLiteral
	KindRaw
	KindEscape
	KindBackReference
	KindComment

	KindSet
	KindNotSet

	KindGroup
	KindNamedGroup
	KindNonCapturingGroup
	KindLookAhead
	KindNegativeLookAhead
	KindLookBehind
	KindNegativeLookBehind

	KindAlternation
	KindNonCapturingAlternation

	KindZeroOrOne
	KindZeroOrMore
	KindOneOrMore
	KindRepeat

	kindCount
)

type kindInfo struct {
	name   string
	syntax string // fixed rendering for atoms, opening for groups, suffix for quantifiers
	atomic bool   // can be quantified without wrapping
}

var kinds = [kindCount]kindInfo{
	KindInvalid: {name: "Invalid"},

	KindLineStart:       {name: "LineStart", syntax: "^"},
	KindLineEnd:         {name: "LineEnd", syntax: "$"},
	KindStringStart:     {name: "StringStart", syntax: `\A`},
	KindStringEnd:       {name: "StringEnd", syntax: `\z`},
	KindWordBoundary:    {name: "WordBoundary", syntax: `\b`},
	KindNonWordBoundary: {name: "NonWordBoundary", syntax: `\B`},
	KindAnyDigit:        {name: "AnyDigit", syntax: `\d`, atomic: true},
	KindAnyNonDigit:     {name: "AnyNonDigit", syntax: `\D`, atomic: true},
	KindAnyWord:         {name: "AnyWord", syntax: `\w`, atomic: true},
	KindAnyNonWord:      {name: "AnyNonWord", syntax: `\W`, atomic: true},
	KindWhitespace:      {name: "Whitespace", syntax: `\s`, atomic: true},
	KindNonWhitespace:   {name: "NonWhitespace", syntax: `\S`, atomic: true},
	KindAny:             {name: "Any", syntax: ".", atomic: true},
	KindPeriod:          {name: "Period", syntax: `\.`, atomic: true},
	KindQuestionMark:    {name: "QuestionMark", syntax: `\?`, atomic: true},

	KindLiteral:       {name: "Literal"},
	KindRaw:           {name: "Raw"},
	KindEscape:        {name: "Escape", syntax: `\`},
	KindBackReference: {name: "BackReference", syntax: `\k<`, atomic: true},
	KindComment:       {name: "Comment", syntax: "(?#"},

	KindSet:    {name: "Set", syntax: "[", atomic: true},
	KindNotSet: {name: "NotSet", syntax: "[^", atomic: true},

	KindGroup:              {name: "Group", syntax: "(", atomic: true},
	KindNamedGroup:         {name: "NamedGroup", syntax: "(?P<", atomic: true},
	KindNonCapturingGroup:  {name: "NonCapturingGroup", syntax: "(?:", atomic: true},
	KindLookAhead:          {name: "LookAhead", syntax: "(?="},
	KindNegativeLookAhead:  {name: "NegativeLookAhead", syntax: "(?!"},
	KindLookBehind:         {name: "LookBehind", syntax: "(?<="},
	KindNegativeLookBehind: {name: "NegativeLookBehind", syntax: "(?<!"},

	KindAlternation:             {name: "Alternation"},
	KindNonCapturingAlternation: {name: "NonCapturingAlternation", syntax: "(?:", atomic: true},

	KindZeroOrOne:  {name: "ZeroOrOne", syntax: "?"},
	KindZeroOrMore: {name: "ZeroOrMore", syntax: "*"},
	KindOneOrMore:  {name: "OneOrMore", syntax: "+"},
	KindRepeat:     {name: "Repeat"},
}

var kindsByName = func() map[string]Kind {
	m := make(map[string]Kind, kindCount)
	for k := KindLineStart; k < kindCount; k++ {
		m[kinds[k].name] = k
	}
	return m
}()

// String returns the catalog name of k.
func (k Kind) String() string {
	if k >= kindCount {
		return "Invalid"
	}
	return kinds[k].name
}

// IsQuantifier reports whether k repeats its target.
func (k Kind) IsQuantifier() bool {
	return k >= KindZeroOrOne && k <= KindRepeat
}

// ParseKind looks a kind up by its catalog name.
func ParseKind(name string) (Kind, bool) {
	k, ok := kindsByName[name]
	return k, ok
}

func (k Kind) isAtom() bool {
	return k >= KindLineStart && k <= KindQuestionMark
}

func (k Kind) isText() bool {
	return k >= KindLiteral && k <= KindComment
}

func (k Kind) isSet() bool {
	return k == KindSet || k == KindNotSet
}

func (k Kind) isGroup() bool {
	return k >= KindGroup && k <= KindNegativeLookBehind
}

func (k Kind) isAlternation() bool {
	return k == KindAlternation || k == KindNonCapturingAlternation
}
