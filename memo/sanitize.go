package memo

import "strings"

// sanitizeSegment converts an arbitrary string into a safe filesystem
// segment by replacing each reserved character with '_'. The substitution is
// one-to-one: character count is preserved so collisions stay predictable.
func sanitizeSegment(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case '/', '\\', '?', '%', '*', ':', '|', '"', '<', '>':
			b.WriteByte('_')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
