// Package quoting decides whether identifiers need double-quoting in
// generated scripts. Pure functions, deterministic for identical inputs;
// every renderer goes through here.
package quoting

import "strings"

// Mode selects the quoting strategy.
type Mode int

const (
	// Always wraps the identifier in double quotes unconditionally,
	// doubling any embedded quote.
	Always Mode = iota

	// WhenNecessary wraps only identifiers that are unsafe to emit bare.
	WhenNecessary
)

// Quote renders an identifier for script output.
//
// Under WhenNecessary an identifier is safe when it matches
// ^[A-Za-z_][0-9A-Za-z_$]*$ and either is used as a qualified part (after a
// dot) or is not a reserved word. Reserved-word membership alone does not
// force quoting when the identifier is qualified.
func Quote(ident string, mode Mode, qualified bool) string {
	if mode == WhenNecessary && isSafe(ident, qualified) {
		return ident
	}
	return `"` + strings.ReplaceAll(ident, `"`, `""`) + `"`
}

// QualifiedName renders parent.local with each part quoted per mode.
// When parent is empty only the local part is rendered.
func QualifiedName(parent, local string, mode Mode) string {
	if parent == "" {
		return Quote(local, mode, false)
	}
	return Quote(parent, mode, false) + "." + Quote(local, mode, true)
}

func isSafe(ident string, qualified bool) bool {
	if !matchesSafePattern(ident) {
		return false
	}
	return qualified || !IsReserved(ident)
}

// matchesSafePattern reports whether ident matches ^[A-Za-z_][0-9A-Za-z_$]*$.
// Hand-rolled instead of regexp: this runs for every identifier in every
// rendered script.
func matchesSafePattern(ident string) bool {
	if len(ident) == 0 {
		return false
	}
	c := ident[0]
	if !(c == '_' || (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')) {
		return false
	}
	for i := 1; i < len(ident); i++ {
		c = ident[i]
		if c == '_' || c == '$' ||
			(c >= '0' && c <= '9') ||
			(c >= 'A' && c <= 'Z') ||
			(c >= 'a' && c <= 'z') {
			continue
		}
		return false
	}
	return true
}

// IsReserved reports whether ident is a Redshift reserved word
// (case-insensitive).
func IsReserved(ident string) bool {
	_, ok := reservedWords[strings.ToUpper(ident)]
	return ok
}
