package api

import "strings"

// URLJoin joins URL fragments so that adjacent non-empty fragments are
// separated by exactly one slash. Empty fragments are skipped and
// fragments are otherwise treated as opaque strings.
func URLJoin(parts ...string) string {
	var b strings.Builder
	prev := ""
	for _, part := range parts {
		if part == "" {
			continue
		}
		if prev == "" {
			b.WriteString(part)
			prev = part
			continue
		}
		switch {
		case strings.HasSuffix(prev, "/") && strings.HasPrefix(part, "/"):
			part = part[1:]
		case !strings.HasSuffix(prev, "/") && !strings.HasPrefix(part, "/"):
			b.WriteString("/")
		}
		b.WriteString(part)
		prev = part
	}
	return b.String()
}
