// Package enforce replaces characters that a unit's allowlist does not
// permit with characters drawn at random from that allowlist.
package enforce

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"unicode"

	"github.com/jamesainslie/go-lessonclean/allowlist"
)

// ErrEmptyAllowlist indicates a disallowed character with no allowed
// character to replace it with.
var ErrEmptyAllowlist = errors.New("enforce: empty allowlist")

// Drawer picks one rune from a non-empty alphabet.
type Drawer interface {
	Draw(alphabet []rune) (rune, error)
}

// DrawerFunc adapts a function to the Drawer interface.
type DrawerFunc func(alphabet []rune) (rune, error)

// Draw calls f(alphabet).
func (f DrawerFunc) Draw(alphabet []rune) (rune, error) { return f(alphabet) }

// CryptoDrawer draws uniformly using crypto/rand so that substitutions
// cannot be predicted from earlier output. It is safe for concurrent use.
type CryptoDrawer struct{}

// Draw returns a uniformly chosen member of alphabet.
func (CryptoDrawer) Draw(alphabet []rune) (rune, error) {
	if len(alphabet) == 0 {
		return 0, ErrEmptyAllowlist
	}
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(alphabet))))
	if err != nil {
		return 0, fmt.Errorf("drawing replacement: %w", err)
	}
	return alphabet[n.Int64()], nil
}

// Replacement records one substituted character.
type Replacement struct {
	From rune
	To   rune
}

func (r Replacement) String() string {
	return fmt.Sprintf("%q -> %q", r.From, r.To)
}

// Enforce returns text with every rune that is neither whitespace nor in
// allowed replaced by a draw from allowed, along with the substitutions
// in the order they were made. The result has as many runes as text.
// Whitespace is the Unicode White_Space property as reported by
// unicode.IsSpace; the C0 separators U+001C..U+001F are not whitespace.
func Enforce(text string, allowed allowlist.Set, d Drawer) (string, []Replacement, error) {
	if text == "" {
		return text, nil, nil
	}

	var (
		b    strings.Builder
		reps []Replacement
	)
	b.Grow(len(text))

	for _, r := range text {
		if unicode.IsSpace(r) || allowed.Contains(r) {
			b.WriteRune(r)
			continue
		}
		if allowed.Empty() {
			return "", nil, fmt.Errorf("%w: cannot replace %q", ErrEmptyAllowlist, r)
		}

		repl, err := d.Draw(allowed.Runes())
		if err != nil {
			return "", nil, err
		}
		b.WriteRune(repl)
		reps = append(reps, Replacement{From: r, To: repl})
	}

	return b.String(), reps, nil
}
