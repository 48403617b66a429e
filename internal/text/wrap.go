// Package text holds small string helpers shared by the figure layer.
package text

import "strings"

// Wrap inserts line breaks so every line lands between min and max runes,
// preferring sentence ends (". "), then clause ends (": "), then the last
// space inside the window. Text without any break point is returned as is.
func Wrap(s string, minLen, maxLen int) string {
	if maxLen <= 0 || len(s) < maxLen {
		return s
	}
	if minLen < 0 {
		minLen = 0
	}

	start, stop := minLen, maxLen
	remaining := len(s)

	for remaining > maxLen {
		if start >= len(s) {
			break
		}
		if stop > len(s) {
			stop = len(s)
		}
		window := s[start:stop]

		var pos int
		switch {
		case strings.Contains(window, ". "):
			pos = start + strings.Index(window, ". ") + 1
		case strings.Contains(window, ": "):
			pos = start + strings.Index(window, ": ") + 1
		case strings.Contains(window, " "):
			pos = start + strings.LastIndex(window, " ")
		default:
			return s
		}

		s = s[:pos] + "\n" + s[pos+1:]
		remaining = len(s) - pos
		start = pos + 1 + minLen
		stop = pos + 1 + maxLen
	}
	return s
}
