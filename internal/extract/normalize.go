package extract

import "strings"

// NormalizeModelJSON repairs a raw model reply into something that should
// parse as JSON. It strips Markdown code fences the model was told not to
// emit (but sometimes does anyway), then keeps only the first well-formed
// looking bracket span: first '[' to last ']' for an array of
// transactions, else first '{' to last '}' for a single object. If no
// bracket pair is found, the trimmed text is returned unchanged and the
// caller's JSON parse surfaces the failure.
//
// This is a best-effort repair, not a guarantee; malformed interior JSON
// still fails downstream. It is a pure function so it can be fuzzed on
// its own.
func NormalizeModelJSON(raw string) string {
	s := strings.TrimSpace(raw)

	if strings.HasPrefix(s, "```") {
		// Drop the opening fence line ("```" or "```json").
		if idx := strings.Index(s, "\n"); idx != -1 {
			s = s[idx+1:]
		} else {
			s = strings.TrimPrefix(s, "```json")
			s = strings.TrimPrefix(s, "```")
		}
		if idx := strings.LastIndex(s, "```"); idx != -1 {
			s = s[:idx]
		}
		s = strings.TrimSpace(s)
	}

	if payload, ok := bracketSpan(s, '[', ']'); ok {
		return payload
	}
	if payload, ok := bracketSpan(s, '{', '}'); ok {
		return payload
	}
	return s
}

// bracketSpan returns the substring from the first open to the last close
// bracket, inclusive, when both exist in that order.
func bracketSpan(s string, open, close byte) (string, bool) {
	first := strings.IndexByte(s, open)
	last := strings.LastIndexByte(s, close)
	if first == -1 || last == -1 || last <= first {
		return "", false
	}
	return strings.TrimSpace(s[first : last+1]), true
}
