// Package verbose builds regular expressions out of named words.
//
// Words are [Fragment] values: anchors and classes from the catalog
// ([LineStart], [AnyDigit], [Whitespace], ...) and constructors for everything
// that takes parameters ([Literal], [Group], [NonCapturingAlternation],
// [OneOrMore], ...). Composing fragments yields a [Pattern], an immutable
// ordered sequence that renders to pattern syntax by concatenating its
// fragments:
//
//	date := verbose.New(
//		verbose.LineStart,
//		verbose.NamedGroup("year", verbose.Repeat(4, 4, verbose.AnyDigit)),
//		verbose.Literal("-"),
//		verbose.NamedGroup("month", verbose.Repeat(2, 2, verbose.AnyDigit)),
//	)
//	date.String()   // ^(?P<year>\d{4})-(?P<month>\d{2})
//	date.GoString() // Pattern(LineStart, NamedGroup("year", Repeat(4, 4, AnyDigit)), ...)
//
// Patterns compare and hash structurally, so [Pattern.Key] can index a map.
//
// Matching is delegated to an [Engine]. [Compile] uses [DefaultEngine]
// (coregex, falling back to regexp2 for PCRE-only syntax) unless another one
// is injected with [WithEngine]. Modifier flags are passed at compile time
// through [WithFlags] and are not part of the Pattern.
//
// Construction errors do not panic: they are recorded on the Fragment or
// Pattern, surfaced by Err, and returned by Compile as [ErrConfiguration].
// An engine rejecting the rendered text yields a [*PatternSyntaxError].
package verbose
