package ctable

import (
	"strings"
)

const (
	octalDigits     = "01234567"
	firstPrintable  = 0x20
	lastPrintable   = 0x7e
	escapedQuestion = `\077`
)

// QuoteC returns value as a double-quoted C string literal.
//
// Backslashes and double quotes are escaped, common control characters use their
// named escapes and every other byte outside printable ASCII becomes a three-digit
// octal escape, so the literal is pure ASCII and decodes to the original bytes.
// A '?' following a '?' is escaped to keep trigraphs from forming.
//
// Only escapes shared by C and Go are produced, which makes strconv.Unquote an
// exact decoder. A NUL byte cannot live inside a NUL-terminated string and fails
// with a *LiteralEncodingError.
func QuoteC(value string) (string, error) {
	var builder strings.Builder

	builder.Grow(len(value) + 2)
	builder.WriteByte('"')

	previousQuestion := false

	for offset := range len(value) {
		char := value[offset]
		question := false

		switch char {
		case 0:
			return "", &LiteralEncodingError{Value: value, Offset: offset}
		case '"', '\\':
			builder.WriteByte('\\')
			builder.WriteByte(char)
		case '\a':
			builder.WriteString(`\a`)
		case '\b':
			builder.WriteString(`\b`)
		case '\f':
			builder.WriteString(`\f`)
		case '\n':
			builder.WriteString(`\n`)
		case '\r':
			builder.WriteString(`\r`)
		case '\t':
			builder.WriteString(`\t`)
		case '\v':
			builder.WriteString(`\v`)
		case '?':
			if previousQuestion {
				builder.WriteString(escapedQuestion)
			} else {
				builder.WriteByte(char)

				question = true
			}
		default:
			if char < firstPrintable || char > lastPrintable {
				writeOctal(&builder, char)
			} else {
				builder.WriteByte(char)
			}
		}

		previousQuestion = question
	}

	builder.WriteByte('"')

	return builder.String(), nil
}

func writeOctal(builder *strings.Builder, char byte) {
	builder.WriteByte('\\')
	builder.WriteByte(octalDigits[char>>6])
	builder.WriteByte(octalDigits[(char>>3)&7])
	builder.WriteByte(octalDigits[char&7])
}
