package kui

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// DecodeKeys parses the textual key syntax into a key sequence.
//
// Plain characters stand for their own byte: "abc" decodes to the three
// bytes a, b, c. Angle-bracket groups name keys that have no literal
// spelling: "<Esc>", "<F5>", "<Up>". "<C-x>" is the control form of x,
// and "<C-?>" is DEL. "<Lt>" spells a literal '<'. Byte values can be
// given in hex as "<0x1b>". Names are case-insensitive.
func DecodeKeys(text string) ([]KeyCode, error) {
	if text == "" {
		return nil, fmt.Errorf("empty key sequence")
	}
	var keys []KeyCode
	for i := 0; i < len(text); {
		if text[i] == '<' {
			end := strings.IndexByte(text[i:], '>')
			if end < 0 {
				return nil, fmt.Errorf("unterminated key group at %q", text[i:])
			}
			name := text[i+1 : i+end]
			k, err := decodeKeyName(name)
			if err != nil {
				return nil, err
			}
			keys = append(keys, k)
			i += end + 1
			continue
		}
		r, size := utf8.DecodeRuneInString(text[i:])
		if r == utf8.RuneError && size == 1 {
			return nil, fmt.Errorf("invalid UTF-8 at byte %d", i)
		}
		if r > 255 {
			return nil, fmt.Errorf("character %q is not a single byte", r)
		}
		if r == 0 {
			return nil, fmt.Errorf("NUL is not a valid key")
		}
		keys = append(keys, KeyCode(r))
		i += size
	}
	return keys, nil
}

func decodeKeyName(name string) (KeyCode, error) {
	if name == "" {
		return 0, fmt.Errorf("empty key group <>")
	}
	lower := strings.ToLower(name)
	if k, ok := keyNames[lower]; ok {
		return k, nil
	}
	if len(lower) == 3 && lower[0] == 'c' && lower[1] == '-' {
		c := lower[2]
		if c == '?' {
			return 127, nil
		}
		if c >= 'a' && c <= 'z' {
			return KeyCode(c & 0x1f), nil
		}
		if c > '@' && c <= '_' {
			return KeyCode(c & 0x1f), nil
		}
		return 0, fmt.Errorf("invalid control key <%s>", name)
	}
	if strings.HasPrefix(lower, "0x") {
		n, err := strconv.ParseUint(lower[2:], 16, 8)
		if err != nil || n == 0 {
			return 0, fmt.Errorf("invalid byte value <%s>", name)
		}
		return KeyCode(n), nil
	}
	return 0, fmt.Errorf("unknown key name <%s>", name)
}

// EncodeKeys renders a key sequence back into the textual syntax. The
// result decodes to the same sequence, so diagnostics stay copyable
// into mapping files.
func EncodeKeys(keys []KeyCode) string {
	var b strings.Builder
	for _, k := range keys {
		switch {
		case k.IsSymbolic():
			b.WriteByte('<')
			b.WriteString(symbolicNames[k-KeyBase])
			b.WriteByte('>')
		case k == '<':
			b.WriteString("<Lt>")
		case k > 32 && k < 127:
			b.WriteByte(byte(k))
		case k == 32:
			b.WriteString("<Space>")
		case k == 9:
			b.WriteString("<Tab>")
		case k == 13:
			b.WriteString("<CR>")
		case k == 10:
			b.WriteString("<NL>")
		case k >= 1 && k <= 26:
			fmt.Fprintf(&b, "<C-%c>", 'a'+rune(k)-1)
		case k == 127:
			b.WriteString("<C-?>")
		case k.IsRawByte():
			fmt.Fprintf(&b, "<0x%02x>", int(k))
		default:
			fmt.Fprintf(&b, "<KeyCode(%d)>", int(k))
		}
	}
	return b.String()
}
