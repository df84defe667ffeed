package kui

import "fmt"

// KeyCode identifies a single logical key. Codes 1 through 255 are raw
// bytes as read from the terminal. Codes at KeyBase and above are
// symbolic keys produced by the terminal map set. Zero is reserved: it
// is the idle result of a timed read and never a valid key.
type KeyCode int

// KeyBase is the first symbolic key code. Everything below it (except
// zero) is a raw byte.
const KeyBase KeyCode = 256

const (
	KeyEsc KeyCode = KeyBase + iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyDelete
	KeyInsert
	KeyBackspace
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	keyMax
)

// Control-key aliases for the raw bytes 1..26.
const (
	KeyCtrlA KeyCode = iota + 1
	KeyCtrlB
	KeyCtrlC
	KeyCtrlD
	KeyCtrlE
	KeyCtrlF
	KeyCtrlG
	KeyCtrlH
	KeyCtrlI
	KeyCtrlJ
	KeyCtrlK
	KeyCtrlL
	KeyCtrlM
	KeyCtrlN
	KeyCtrlO
	KeyCtrlP
	KeyCtrlQ
	KeyCtrlR
	KeyCtrlS
	KeyCtrlT
	KeyCtrlU
	KeyCtrlV
	KeyCtrlW
	KeyCtrlX
	KeyCtrlY
	KeyCtrlZ
)

var symbolicNames = [...]string{
	"Esc",
	"Up",
	"Down",
	"Left",
	"Right",
	"Home",
	"End",
	"PageUp",
	"PageDown",
	"Delete",
	"Insert",
	"Backspace",
	"F1",
	"F2",
	"F3",
	"F4",
	"F5",
	"F6",
	"F7",
	"F8",
	"F9",
	"F10",
	"F11",
	"F12",
}

// IsRawByte reports whether k is a raw terminal byte.
func (k KeyCode) IsRawByte() bool {
	return k >= 1 && k <= 255
}

// IsSymbolic reports whether k is a symbolic key.
func (k KeyCode) IsSymbolic() bool {
	return k >= KeyBase && k < keyMax
}

// String returns a human-readable name for the key.
func (k KeyCode) String() string {
	switch {
	case k.IsSymbolic():
		return symbolicNames[k-KeyBase]
	case k >= 1 && k <= 26:
		return fmt.Sprintf("Ctrl-%c", 'a'+rune(k)-1)
	case k == 27:
		return "^["
	case k == 32:
		return "Space"
	case k > 32 && k < 127:
		return string(rune(k))
	case k == 127:
		return "^?"
	case k.IsRawByte():
		return fmt.Sprintf("0x%02x", int(k))
	default:
		return fmt.Sprintf("KeyCode(%d)", int(k))
	}
}

// keyNames maps lowercase key names, as used inside <...> groups of the
// textual key syntax, to their codes. Raw-byte names and symbolic names
// share the table.
var keyNames = map[string]KeyCode{
	"esc":       KeyEsc,
	"escape":    KeyEsc,
	"up":        KeyUp,
	"down":      KeyDown,
	"left":      KeyLeft,
	"right":     KeyRight,
	"home":      KeyHome,
	"end":       KeyEnd,
	"pageup":    KeyPageUp,
	"pgup":      KeyPageUp,
	"pagedown":  KeyPageDown,
	"pgdn":      KeyPageDown,
	"delete":    KeyDelete,
	"del":       KeyDelete,
	"insert":    KeyInsert,
	"ins":       KeyInsert,
	"backspace": KeyBackspace,
	"bs":        KeyBackspace,
	"f1":        KeyF1,
	"f2":        KeyF2,
	"f3":        KeyF3,
	"f4":        KeyF4,
	"f5":        KeyF5,
	"f6":        KeyF6,
	"f7":        KeyF7,
	"f8":        KeyF8,
	"f9":        KeyF9,
	"f10":       KeyF10,
	"f11":       KeyF11,
	"f12":       KeyF12,
	"cr":        13,
	"enter":     13,
	"return":    13,
	"nl":        10,
	"tab":       9,
	"space":     32,
	"lt":        '<',
	"gt":        '>',
}
