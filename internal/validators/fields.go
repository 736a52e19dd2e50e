package validators

import "strings"

// HasLineBreak reports whether s contains a carriage return or a newline.
func HasLineBreak(s string) bool {
	return strings.ContainsAny(s, "\r\n")
}

// FirstEmpty returns the index of the first empty value, or -1.
func FirstEmpty(values ...string) int {
	for i, v := range values {
		if v == "" {
			return i
		}
	}
	return -1
}
