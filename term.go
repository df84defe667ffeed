package kui

// terminalSeqs lists the escape sequences the built-in terminal map set
// decodes, keyed by the bytes a terminal emits. Both the CSI and SS3
// spellings are present for keys that terminals disagree on, along with
// the vt100 numeric forms for home and end.
var terminalSeqs = map[string]KeyCode{
	// Arrow keys.
	"\x1b[A": KeyUp,
	"\x1b[B": KeyDown,
	"\x1b[C": KeyRight,
	"\x1b[D": KeyLeft,
	"\x1bOA": KeyUp,
	"\x1bOB": KeyDown,
	"\x1bOC": KeyRight,
	"\x1bOD": KeyLeft,

	// Arrow keys with a modifier held.
	"\x1b[1;2A":  KeyUp,
	"\x1b[1;2B":  KeyDown,
	"\x1b[1;2C":  KeyRight,
	"\x1b[1;2D":  KeyLeft,
	"\x1b[1;5A":  KeyUp,
	"\x1b[1;5B":  KeyDown,
	"\x1b[1;5C":  KeyRight,
	"\x1b[1;5D":  KeyLeft,
	"\x1b\x1b[A": KeyUp,
	"\x1b\x1b[B": KeyDown,
	"\x1b\x1b[C": KeyRight,
	"\x1b\x1b[D": KeyLeft,

	// Home and end.
	"\x1b[H":  KeyHome,
	"\x1b[F":  KeyEnd,
	"\x1bOH":  KeyHome,
	"\x1bOF":  KeyEnd,
	"\x1b[1~": KeyHome,
	"\x1b[4~": KeyEnd,
	"\x1b[7~": KeyHome,
	"\x1b[8~": KeyEnd,

	// Editing and paging keys.
	"\x1b[2~": KeyInsert,
	"\x1b[3~": KeyDelete,
	"\x1b[5~": KeyPageUp,
	"\x1b[6~": KeyPageDown,

	// Function keys, SS3 and CSI forms.
	"\x1bOP":   KeyF1,
	"\x1bOQ":   KeyF2,
	"\x1bOR":   KeyF3,
	"\x1bOS":   KeyF4,
	"\x1b[11~": KeyF1,
	"\x1b[12~": KeyF2,
	"\x1b[13~": KeyF3,
	"\x1b[14~": KeyF4,
	"\x1b[15~": KeyF5,
	"\x1b[17~": KeyF6,
	"\x1b[18~": KeyF7,
	"\x1b[19~": KeyF8,
	"\x1b[20~": KeyF9,
	"\x1b[21~": KeyF10,
	"\x1b[23~": KeyF11,
	"\x1b[24~": KeyF12,

	// A lone escape. The short terminal timeout is what separates it
	// from the start of a sequence.
	"\x1b": KeyEsc,

	// DEL, which most terminals send for the backspace key.
	"\x7f": KeyBackspace,
}

// TerminalMapSet returns a map set translating terminal escape
// sequences into symbolic keys. The manager installs it on the terminal
// stage; WithTerminalMapSet can substitute a different table.
func TerminalMapSet() *MapSet {
	ms := NewMapSet()
	for seq, key := range terminalSeqs {
		trigger := make([]KeyCode, len(seq))
		for i := 0; i < len(seq); i++ {
			trigger[i] = KeyCode(seq[i])
		}
		if err := ms.RegisterKeys(trigger, []KeyCode{key}); err != nil {
			panic(err)
		}
	}
	return ms
}
