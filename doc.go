// Package lessonclean sanitizes typing-lesson datasets so that every
// lesson string can be typed with the keys introduced so far.
//
// # Quick Start
//
//	root, err := document.Load("units.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	c, err := lessonclean.New(allowlist.Builtin())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	cleaned, led, err := c.Clean(root)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("replaced %d characters\n", led.Count())
//
// # Pipeline
//
// Every string beneath a unit's "subunits" member goes through two
// stages. Normalization rewrites typographic and full-width punctuation
// to ASCII (see package normalize). Enforcement then replaces each
// character outside the unit's allowlist with a random allowed character
// (see package enforce). Units are numbered from 1 in document order and
// that number selects the allowlist. Members other than "subunits" are
// copied unchanged.
//
// # Document Shapes
//
// A document may be a list of units, an object holding the list under
// "main", or a single unit object. The cleaned document has the same
// shape.
//
// # Thread Safety
//
// Cleaner is safe for concurrent use. Each call to Clean builds its own
// ledger.
package lessonclean
