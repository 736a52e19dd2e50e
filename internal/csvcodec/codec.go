// Package csvcodec holds the field encoding used by the reservation store file
// and the JSON string escaping used when those fields go back out over HTTP.
//
// Every stored value is wrapped in double quotes and embedded quotes are doubled.
// No other character is escaped, so values must not carry raw line breaks: the
// store reads one record per physical line.
package csvcodec

import "strings"

const (
	quote     = '"'
	separator = ','
)

// EncodeField quotes s for the store file, doubling embedded quotes.
func EncodeField(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	writeField(&b, s)
	return b.String()
}

// EncodeRecord encodes each field and joins them with commas.
// The result carries no trailing newline.
func EncodeRecord(fields ...string) string {
	n := len(fields)
	for _, f := range fields {
		n += len(f) + 2
	}

	var b strings.Builder
	b.Grow(n)
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(separator)
		}
		writeField(&b, f)
	}
	return b.String()
}

func writeField(b *strings.Builder, s string) {
	b.WriteByte(quote)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == quote {
			b.WriteByte(quote)
		}
		b.WriteByte(c)
	}
	b.WriteByte(quote)
}

// JSONEscape escapes s for use inside a JSON string literal.
// Only backslash, double quote, \n, \r and \t are escaped; all other bytes
// pass through unchanged.
func JSONEscape(s string) string {
	if !strings.ContainsAny(s, "\\\"\n\r\t") {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 8)
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}
