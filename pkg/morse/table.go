// Package morse decodes the gaze event stream into text. Up excursions are
// dots, down excursions are dashes; holds convert to control actions and
// neutral holds complete letters and submit text.
package morse

// Symbol is a single Morse element.
type Symbol rune

const (
	// Dot is emitted for an up gaze.
	Dot Symbol = '.'
	// Dash is emitted for a down gaze.
	Dash Symbol = '-'
)

// Sequence is an in-progress run of symbols not yet resolved to a character.
type Sequence []Symbol

func (s Sequence) String() string {
	buf := make([]rune, len(s))
	for i, sym := range s {
		buf[i] = rune(sym)
	}
	return string(buf)
}

// Command is a named control action bound to a symbol sequence that is not a
// character.
type Command string

// CommandClearAll wipes all accumulated text.
const CommandClearAll Command = "CLEAR_ALL"

// Code maps international Morse sequences to characters.
var Code = map[string]string{
	// Letters
	".-": "A", "-...": "B", "-.-.": "C", "-..": "D", ".": "E",
	"..-.": "F", "--.": "G", "....": "H", "..": "I", ".---": "J",
	"-.-": "K", ".-..": "L", "--": "M", "-.": "N", "---": "O",
	".--.": "P", "--.-": "Q", ".-.": "R", "...": "S", "-": "T",
	"..-": "U", "...-": "V", ".--": "W", "-..-": "X", "-.--": "Y",
	"--..": "Z",
	// Digits
	".----": "1", "..---": "2", "...--": "3", "....-": "4", ".....": "5",
	"-....": "6", "--...": "7", "---..": "8", "----.": "9", "-----": "0",
}

// Commands maps sequences with no character binding to control actions.
var Commands = map[string]Command{
	"......": CommandClearAll, // six dots
}
