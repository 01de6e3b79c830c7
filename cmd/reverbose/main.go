// Command reverbose renders and runs pattern documents.
//
// A pattern document is the JSON form of a verbose.Pattern:
//
//	{"words":[{"word":"LineStart"},{"word":"OneOrMore","of":[{"word":"AnyDigit"}]}]}
//
// DOC arguments name a document file, "-" for standard input, or the document
// text itself when it starts with "{".
package main

import (
	"errors"
	"os"

	"go.dw1.io/reverbose/internal/logger"
)

func main() {
	err := newRootCmd().Execute()
	switch {
	case err == nil:
	case errors.Is(err, errNoMatch):
		os.Exit(1)
	default:
		logger.GetLogger("reverbose").WithError(err).Error("Failed")
		os.Exit(2)
	}
}
