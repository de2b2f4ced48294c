package config

import "strings"

// FilterIdentifier rewrites name into one legal in the target
// language using IdentifierSubstitutions (spec.md §6). It returns the
// filtered name and false if name contains a character with no table
// entry (the caller should raise a shape-mismatch diagnostic in that
// case, since silently dropping the character would break
// injectivity).
func FilterIdentifier(name string) (string, bool) {
	var b strings.Builder
	for _, r := range name {
		if r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			continue
		}
		sub, ok := IdentifierSubstitutions[r]
		if !ok {
			return "", false
		}
		b.WriteString(sub)
	}
	return b.String(), true
}
