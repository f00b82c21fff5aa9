// pkg/password/pools.go

package password

import "strings"

// Canonical character classes. These tables are process-wide constants and
// are never mutated; filtering always returns a copy.
const (
	Uppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Lowercase = "abcdefghijklmnopqrstuvwxyz"
	Digits    = "0123456789"
	Symbols   = "!@#$%^&*()_+-=[]{}|;:,.<>?"
)

// Ambiguous holds characters that are easy to misread (zero vs capital O,
// one vs lowercase L, etc.). They are only removed when a caller opts in.
const Ambiguous = "0O1lI|`"

// FilterAmbiguous returns set with every ambiguous character removed,
// preserving the relative order of the remaining characters.
func FilterAmbiguous(set string) string {
	var b strings.Builder
	b.Grow(len(set))
	for i := 0; i < len(set); i++ {
		if !strings.ContainsRune(Ambiguous, rune(set[i])) {
			b.WriteByte(set[i])
		}
	}
	return b.String()
}

// IsSymbol reports whether c belongs to the canonical symbol class.
// Membership is always checked against the unfiltered set, regardless of
// any ambiguous-character filtering used during generation.
func IsSymbol(c rune) bool {
	return strings.ContainsRune(Symbols, c)
}
