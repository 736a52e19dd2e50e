package csvcodec

import "strings"

// DecodeLine splits one encoded line into its fields.
//
// Commas outside quotes separate fields. Inside a quoted span a doubled quote
// decodes to a single quote and a lone quote closes the span. Text outside
// quotes is kept as is, which is how the unquoted header line decodes to its
// column names. An unterminated quoted span runs to the end of the line.
// DecodeLine never fails; callers decide what a short result means.
func DecodeLine(line string) []string {
	fields := make([]string, 0, 6)

	var cur strings.Builder
	inQuotes := false
	for i := 0; i < len(line); i++ {
		c := line[i]
		if inQuotes {
			if c != quote {
				cur.WriteByte(c)
				continue
			}
			if i+1 < len(line) && line[i+1] == quote {
				cur.WriteByte(quote)
				i++
				continue
			}
			inQuotes = false
			continue
		}

		switch c {
		case quote:
			inQuotes = true
		case separator:
			fields = append(fields, cur.String())
			cur.Reset()
		default:
			cur.WriteByte(c)
		}
	}
	return append(fields, cur.String())
}
