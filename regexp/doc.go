// Package regexp selects the fastest regex engine available for a pattern.
//
// By default it compiles patterns with coregex (an accelerated RE2-compatible
// engine). When the pattern requires PCRE/Perl features that RE2/coregex
// cannot execute (lookaround, backreferences, comments, atomic groups), the
// package falls back to [regexp2].
//
// Modifier [Flags] are supplied at compile time. For coregex they become an
// inline group prefix; for regexp2 they map onto [regexp2.RegexOptions].
//
// Only the string-oriented half of the standard library surface is provided.
package regexp
