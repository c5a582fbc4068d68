package httpx

import "strings"

// splitOnce splits s on the first occurrence of sep, trimming surrounding
// whitespace from both halves. If sep is absent, the second half is "".
func splitOnce(s string, sep byte) (before, after string) {
	if i := strings.IndexByte(s, sep); i >= 0 {
		return strings.TrimSpace(s[:i]), strings.TrimSpace(s[i+1:])
	}
	return strings.TrimSpace(s), ""
}

// splitNonEmpty splits s on sep and drops empty-after-trim segments.
func splitNonEmpty(s string, sep byte) []string {
	var out []string
	for _, part := range strings.Split(s, string(sep)) {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
