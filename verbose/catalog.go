package verbose

// Pre-defined words. They are plain values set once at package
// initialisation and must not be reassigned; [Word] returns the same values
// from the kind table and ignores any rebinding.
var (
	LineStart       = atom(KindLineStart)
	LineEnd         = atom(KindLineEnd)
	StringStart     = atom(KindStringStart)
	StringEnd       = atom(KindStringEnd)
	WordBoundary    = atom(KindWordBoundary)
	NonWordBoundary = atom(KindNonWordBoundary)
	AnyDigit        = atom(KindAnyDigit)
	AnyNonDigit     = atom(KindAnyNonDigit)
	AnyWord         = atom(KindAnyWord)
	AnyNonWord      = atom(KindAnyNonWord)
	Whitespace      = atom(KindWhitespace)
	NonWhitespace   = atom(KindNonWhitespace)
	Any             = atom(KindAny)
	Period          = atom(KindPeriod)
	QuestionMark    = atom(KindQuestionMark)

	// WordBoundaryStart and WordBoundaryEnd read better at either end of a
	// word; both are WordBoundary.
	WordBoundaryStart = WordBoundary
	WordBoundaryEnd   = WordBoundary

	// Quantifiers that apply to whatever precedes them in the pattern.
	ZeroOrOneOfPrevious  = ZeroOrOne()
	ZeroOrMoreOfPrevious = ZeroOrMore()
	OneOrMoreOfPrevious  = OneOrMore()
)

// Word returns the pre-defined word for an anchor or class kind. Quantifier
// kinds yield their no-target form. ok is false for every other kind.
func Word(k Kind) (f Fragment, ok bool) {
	switch {
	case k.isAtom():
		return atom(k), true
	case k == KindZeroOrOne || k == KindZeroOrMore || k == KindOneOrMore:
		return quantifier(k, nil), true
	}
	return Fragment{}, false
}
