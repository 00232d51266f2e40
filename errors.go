package lessonclean

import (
	"errors"

	"github.com/jamesainslie/go-lessonclean/document"
)

// Sentinel errors for conditions callers may need to handle differently.
var (
	// ErrShape indicates a document root that holds no list of units.
	ErrShape = document.ErrShape

	// ErrConfiguration indicates an allowlist table that cannot clean
	// the document.
	ErrConfiguration = errors.New("lessonclean: invalid configuration")
)
