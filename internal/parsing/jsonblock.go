// Package parsing recovers structured records from free-form AI provider
// output. Providers routinely wrap JSON in prose or markdown fences, use
// inconsistent key names, and sometimes return nothing usable; every entry
// point here degrades to a best-effort default instead of returning an error,
// because the orchestrator treats an empty result as its fallback trigger.
package parsing

import "strings"

// ExtractJSONBlock locates the first structurally balanced JSON object or
// array inside free-form text. It respects string literals and escapes, so
// braces inside quoted values do not unbalance the scan. Returns the raw
// substring and whether one was found.
func ExtractJSONBlock(raw string) (string, bool) {
	start := -1
	for i, r := range raw {
		if r == '{' || r == '[' {
			start = i
			break
		}
	}
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(raw); i++ {
		c := raw[i]

		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			inString = true
		case '{', '[':
			depth++
		case '}', ']':
			depth--
			if depth == 0 {
				return raw[start : i+1], true
			}
		}
	}

	return "", false
}

// ExtractJSONArray behaves like ExtractJSONBlock but only matches arrays.
// Used for listing responses where a lone object is not a valid result.
func ExtractJSONArray(raw string) (string, bool) {
	idx := strings.IndexByte(raw, '[')
	if idx < 0 {
		return "", false
	}
	block, ok := ExtractJSONBlock(raw[idx:])
	if !ok || !strings.HasPrefix(block, "[") {
		return "", false
	}
	return block, true
}
