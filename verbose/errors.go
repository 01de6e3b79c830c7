package verbose

import (
	"errors"
	"fmt"
)

// ErrConfiguration indicates a structurally invalid fragment or pattern, such
// as an empty alternation or a quantifier with nothing to repeat.
//
// It is wrapped by every construction-time failure.
var ErrConfiguration = errors.New("invalid pattern configuration")

// ErrPatternSyntax indicates that the engine rejected a rendered pattern.
//
// [PatternSyntaxError] matches it through errors.Is.
var ErrPatternSyntax = errors.New("pattern rejected by engine")

// PatternSyntaxError carries the engine's compile error unmodified along with
// the rendered pattern it refused.
type PatternSyntaxError struct {
	Pattern string
	Err     error
}

func (e *PatternSyntaxError) Error() string {
	return fmt.Sprintf("%v: %q: %v", ErrPatternSyntax, e.Pattern, e.Err)
}

// Unwrap returns the engine error.
func (e *PatternSyntaxError) Unwrap() error { return e.Err }

// Is reports whether target is ErrPatternSyntax.
func (e *PatternSyntaxError) Is(target error) bool { return target == ErrPatternSyntax }

func configErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrConfiguration}, args...)...)
}
