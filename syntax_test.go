package kui

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeKeys(t *testing.T) {
	testCases := []struct {
		text     string
		expected []KeyCode
	}{
		{"a", []KeyCode{'a'}},
		{"abc", []KeyCode{'a', 'b', 'c'}},
		{"jj", []KeyCode{'j', 'j'}},
		{" ", []KeyCode{32}},
		{"<Esc>", []KeyCode{KeyEsc}},
		{"<esc>", []KeyCode{KeyEsc}},
		{"<ESCAPE>", []KeyCode{KeyEsc}},
		{"<Up><Down><Left><Right>", []KeyCode{KeyUp, KeyDown, KeyLeft, KeyRight}},
		{"<Home><End>", []KeyCode{KeyHome, KeyEnd}},
		{"<PageUp><PgDn>", []KeyCode{KeyPageUp, KeyPageDown}},
		{"<Del><Ins><BS>", []KeyCode{KeyDelete, KeyInsert, KeyBackspace}},
		{"<F1>", []KeyCode{KeyF1}},
		{"<F12>", []KeyCode{KeyF12}},
		{"<C-a>", []KeyCode{1}},
		{"<C-z>", []KeyCode{26}},
		{"<C-?>", []KeyCode{127}},
		{"<CR>", []KeyCode{13}},
		{"<Enter>", []KeyCode{13}},
		{"<NL>", []KeyCode{10}},
		{"<Tab>", []KeyCode{9}},
		{"<Space>", []KeyCode{32}},
		{"<Lt>", []KeyCode{'<'}},
		{"<Gt>", []KeyCode{'>'}},
		{"<0x1b>", []KeyCode{27}},
		{"<0xff>", []KeyCode{255}},
		{"quit<CR>", []KeyCode{'q', 'u', 'i', 't', 13}},
		{"<Esc>x", []KeyCode{KeyEsc, 'x'}},
	}
	for _, c := range testCases {
		t.Run(c.text, func(t *testing.T) {
			keys, err := DecodeKeys(c.text)
			require.NoError(t, err)
			require.Equal(t, c.expected, keys)
		})
	}
}

func TestDecodeKeysErrors(t *testing.T) {
	testCases := []string{
		"",
		"<",
		"<>",
		"<Bogus>",
		"<C-1>",
		"<0x00>",
		"<0xzz>",
		"<Esc",
		"\x00",
		"€",
		"\xff",
	}
	for _, text := range testCases {
		t.Run(text, func(t *testing.T) {
			_, err := DecodeKeys(text)
			require.Error(t, err)
		})
	}
}

func TestEncodeKeys(t *testing.T) {
	testCases := []struct {
		keys     []KeyCode
		expected string
	}{
		{[]KeyCode{'a', 'b'}, "ab"},
		{[]KeyCode{KeyEsc}, "<Esc>"},
		{[]KeyCode{KeyF5}, "<F5>"},
		{[]KeyCode{1}, "<C-a>"},
		{[]KeyCode{9}, "<Tab>"},
		{[]KeyCode{10}, "<NL>"},
		{[]KeyCode{13}, "<CR>"},
		{[]KeyCode{27}, "<0x1b>"},
		{[]KeyCode{32}, "<Space>"},
		{[]KeyCode{'<'}, "<Lt>"},
		{[]KeyCode{127}, "<C-?>"},
		{[]KeyCode{200}, "<0xc8>"},
		{[]KeyCode{'q', 13, KeyUp}, "q<CR><Up>"},
	}
	for _, c := range testCases {
		t.Run(c.expected, func(t *testing.T) {
			require.Equal(t, c.expected, EncodeKeys(c.keys))
		})
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	sequences := [][]KeyCode{
		{'a', 'b', 'c'},
		{KeyEsc, KeyUp, KeyF12},
		{1, 26, 127, 9, 13, 32},
		{'<', '>', 200, 255},
	}
	for _, keys := range sequences {
		encoded := EncodeKeys(keys)
		decoded, err := DecodeKeys(encoded)
		require.NoError(t, err, "decoding %q", encoded)
		require.Equal(t, keys, decoded, "round trip through %q", encoded)
	}
}
