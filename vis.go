package kui

import (
	"fmt"
	"strings"
)

// visEncode renders raw bytes in a printable visual form: control
// characters become \^X, backslash and whitespace become \ooo octal
// escapes, and bytes outside printable ASCII are octal as well.
func visEncode(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '\\' || c == ' ' || c == '\t' || c == '\n' || c == '\v' || c == '\f' || c == '\r':
			fmt.Fprintf(&b, "\\%03o", c)
		case c < 32 || c == 127:
			b.WriteByte('\\')
			b.WriteByte('^')
			b.WriteByte(c ^ 0x40)
		case c > 127:
			fmt.Fprintf(&b, "\\%03o", c)
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// visDecode is the inverse of visEncode. It also accepts the \E and \s
// shorthands for escape and space so hand-written replay strings stay
// short.
func visDecode(s string) (string, error) {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' {
			b.WriteByte(c)
			continue
		}
		i++
		if i == len(s) {
			return "", fmt.Errorf("trailing backslash")
		}
		switch c = s[i]; {
		case c == '^':
			i++
			if i == len(s) {
				return "", fmt.Errorf("incomplete \\^ escape")
			}
			b.WriteByte(s[i] ^ 0x40)
		case c >= '0' && c <= '7':
			if i+2 >= len(s) || !isOctal(s[i+1]) || !isOctal(s[i+2]) {
				return "", fmt.Errorf("invalid octal escape in %q", s)
			}
			b.WriteByte((c-'0')<<6 | (s[i+1]-'0')<<3 | (s[i+2] - '0'))
			i += 2
		case c == 'E':
			b.WriteByte(0x1b)
		case c == 's':
			b.WriteByte(' ')
		case c == '\\':
			b.WriteByte('\\')
		default:
			return "", fmt.Errorf("unknown escape \\%c", c)
		}
	}
	return b.String(), nil
}

func isOctal(c byte) bool { return c >= '0' && c <= '7' }

// VisKeys renders a key sequence for diagnostics. Raw bytes use the
// visual encoding; symbolic keys render as their bracketed name.
func VisKeys(keys []KeyCode) string {
	var b strings.Builder
	for _, k := range keys {
		if k.IsRawByte() {
			b.WriteString(visEncode(string([]byte{byte(k)})))
		} else {
			fmt.Fprintf(&b, "[%s]", k)
		}
	}
	return b.String()
}

// ParseVisKeys decodes a visual-encoded byte string into raw byte key
// codes, so recorded streams can be replayed through the pipeline.
func ParseVisKeys(s string) ([]KeyCode, error) {
	raw, err := visDecode(s)
	if err != nil {
		return nil, err
	}
	keys := make([]KeyCode, len(raw))
	for i := 0; i < len(raw); i++ {
		if raw[i] == 0 {
			return nil, fmt.Errorf("%w: NUL byte at %d", ErrInvalidKey, i)
		}
		keys[i] = KeyCode(raw[i])
	}
	return keys, nil
}
