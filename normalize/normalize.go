// Package normalize rewrites typographic and full-width Unicode punctuation
// and spacing to the ASCII characters found on a standard keyboard.
package normalize

import (
	"strings"
)

const (
	// Ellipsis expands to three full stops before any table entry applies.
	Ellipsis = '\u2026'

	// BacktickCutoff is the last unit index in which a back-tick is
	// rewritten to a straight single quote. Later units teach the key.
	BacktickCutoff = 24
)

// Mapping rewrites a single rune. An empty To removes the rune.
type Mapping struct {
	From rune
	To   string
}

// Table lists every single-rune normalization. No To value is itself a
// From value, so entries may be applied in any order.
var Table = []Mapping{
	// Curly and typographic quotes
	{'\u2019', "'"}, // ’
	{'\u2018', "'"}, // ‘
	{'\u2032', "'"}, // ′
	{'\u02BC', "'"}, // ʼ
	{'\u00B4', "'"}, // ´
	{'\uFF07', "'"}, // ＇
	{'\u201C', `"`}, // “
	{'\u201D', `"`}, // ”
	{'\u2033', `"`}, // ″
	{'\uFF02', `"`}, // ＂

	// Dashes and minus variants
	{'\u2013', "-"}, // en dash
	{'\u2014', "-"}, // em dash
	{'\u2212', "-"}, // minus sign
	{'\u2011', "-"}, // non-breaking hyphen
	{'\uFF0D', "-"}, // fullwidth hyphen-minus

	// No-break space and the U+2000 space family
	{'\u00A0', " "},
	{'\u2000', " "},
	{'\u2001', " "},
	{'\u2002', " "},
	{'\u2003', " "},
	{'\u2004', " "},
	{'\u2005', " "},
	{'\u2006', " "},
	{'\u2007', " "},
	{'\u2008', " "},
	{'\u2009', " "},
	{'\u200A', " "},

	// Zero-width and format characters
	{'\u200B', ""}, // zero width space
	{'\uFEFF', ""}, // zero width no-break space
	{'\u2060', ""}, // word joiner

	// Full-width punctuation
	{'\uFF01', "!"}, {'\uFF03', "#"}, {'\uFF04', "$"}, {'\uFF05', "%"},
	{'\uFF06', "&"}, {'\uFF08', "("}, {'\uFF09', ")"}, {'\uFF0A', "*"},
	{'\uFF0B', "+"}, {'\uFF0C', ","}, {'\uFF0E', "."}, {'\uFF0F', "/"},
	{'\uFF1A', ":"}, {'\uFF1B', ";"}, {'\uFF1D', "="}, {'\uFF20', "@"},
	{'\uFF3B', "["}, {'\uFF3D', "]"}, {'\uFF5B', "{"}, {'\uFF5D', "}"},
	{'\uFF40', "`"}, {'\uFF3E', "^"}, {'\uFF3C', `\`}, {'\uFF3F', "_"},
	{'\uFF5E', "~"},
}

// Each replacer performs every stage in a single pass. The early-unit
// replacer folds the back-tick rule into the table, including the
// full-width back-tick that the table would otherwise turn into "`".
var (
	keepBacktick = newReplacer(false)
	foldBacktick = newReplacer(true)
)

func newReplacer(fold bool) *strings.Replacer {
	pairs := make([]string, 0, 2*(len(Table)+2))
	pairs = append(pairs, string(Ellipsis), "...")
	for _, m := range Table {
		to := m.To
		if fold && to == "`" {
			to = "'"
		}
		pairs = append(pairs, string(m.From), to)
	}
	if fold {
		pairs = append(pairs, "`", "'")
	}
	return strings.NewReplacer(pairs...)
}

// Normalize rewrites text for the given 1-based unit index:
//   - the ellipsis becomes "..."
//   - every Table entry is applied
//   - for units up to BacktickCutoff, "`" becomes "'"
func Normalize(text string, unit int) string {
	if text == "" {
		return text
	}
	if unit <= BacktickCutoff {
		return foldBacktick.Replace(text)
	}
	return keepBacktick.Replace(text)
}
