package graliffer

import "fmt"

// WordKind discriminates the typed readings of a cell's text.
type WordKind int

// A word is an opcode, or an operand: literal, address, or pointer.
const (
	WordLiteral WordKind = iota
	WordAddress
	WordPointer
	WordOpcode
)

func (k WordKind) String() string {
	switch k {
	case WordLiteral:
		return "literal"
	case WordAddress:
		return "address"
	case WordPointer:
		return "pointer"
	case WordOpcode:
		return "opcode"
	}
	return "invalid word kind"
}

// A Word is the typed classification of one cell's text at the moment it is
// read. Classification is a pure function of the text and the static opcode
// table: the same text always classifies the same way until overwritten.
// What a word *means* is decided later, by the opcode slot that consumes it.
type Word struct {
	Kind WordKind
	Text string

	// Pos is the designated position of an address or pointer word.
	Pos Position

	op *opcodeDef
}

// Classify types a cell's text. Resolution order: exact opcode mnemonic,
// address syntax "@XY", pointer syntax "&XY", then literal. Text that starts
// a reserved prefix but carries an invalid position fails with a
// MalformedWordError; blank text is the empty literal, which only the
// engine's skip logic consumes.
func Classify(text string) (Word, error) {
	if op, ok := opcodes[text]; ok {
		return Word{Kind: WordOpcode, Text: text, op: op}, nil
	}
	switch {
	case len(text) > 0 && text[0] == '@':
		p, err := ParsePosition(text[1:])
		if err != nil {
			return Word{}, MalformedWordError{Text: text, Reason: err}
		}
		return Word{Kind: WordAddress, Text: text, Pos: p}, nil
	case len(text) > 0 && text[0] == '&':
		p, err := ParsePosition(text[1:])
		if err != nil {
			return Word{}, MalformedWordError{Text: text, Reason: err}
		}
		return Word{Kind: WordPointer, Text: text, Pos: p}, nil
	}
	return Word{Kind: WordLiteral, Text: text}, nil
}

func (w Word) String() string {
	return fmt.Sprintf("%v(%q)", w.Kind, w.Text)
}
