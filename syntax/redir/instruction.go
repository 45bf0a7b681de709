// Package redir holds the redirection instruction vocabulary and the
// failure classes an executor reports when a redirection cannot be set up.
package redir

import (
	"strconv"

	"github.com/siadat/bashast/erroring"
)

// Instruction says what a redirection does. It is an enumeration, not a
// bitmask; its predicates are answered from the instructions table.
type Instruction uint8

const (
	illegal Instruction = iota

	OutputDirection       // >
	InputDirection        // <
	InputADirection       // &<
	AppendingTo           // >>
	ReadingUntil          // <<
	ReadingString         // <<<
	DuplicatingInput      // <&
	DuplicatingOutput     // >&
	DeblankReadingUntil   // <<-
	CloseThis             // <&-
	ErrAndOut             // &>
	InputOutput           // <>
	OutputForce           // >|
	DuplicatingInputWord  // <& word
	DuplicatingOutputWord // >& word
	MoveInput             // <&n-
	MoveOutput            // >&n-
	MoveInputWord         // <&word-
	MoveOutputWord        // >&word-
	AppendErrAndOut       // &>>

	instructionEnd
)

const (
	First = OutputDirection
	Last  = AppendErrAndOut
)

type instructionInfo struct {
	name      string
	op        string
	clobber   bool
	output    bool
	input     bool
	write     bool
	translate bool
}

var instructions = [...]instructionInfo{
	OutputDirection:       {name: "OutputDirection", op: ">", clobber: true, output: true, write: true},
	InputDirection:        {name: "InputDirection", op: "<", input: true},
	InputADirection:       {name: "InputADirection", op: "&<", input: true},
	AppendingTo:           {name: "AppendingTo", op: ">>", write: true},
	ReadingUntil:          {name: "ReadingUntil", op: "<<"},
	ReadingString:         {name: "ReadingString", op: "<<<"},
	DuplicatingInput:      {name: "DuplicatingInput", op: "<&"},
	DuplicatingOutput:     {name: "DuplicatingOutput", op: ">&"},
	DeblankReadingUntil:   {name: "DeblankReadingUntil", op: "<<-"},
	CloseThis:             {name: "CloseThis", op: "<&"},
	ErrAndOut:             {name: "ErrAndOut", op: "&>", clobber: true, output: true, write: true},
	InputOutput:           {name: "InputOutput", op: "<>", output: true, input: true, write: true},
	OutputForce:           {name: "OutputForce", op: ">|", write: true},
	DuplicatingInputWord:  {name: "DuplicatingInputWord", op: "<&", translate: true},
	DuplicatingOutputWord: {name: "DuplicatingOutputWord", op: ">&", translate: true},
	MoveInput:             {name: "MoveInput", op: "<&"},
	MoveOutput:            {name: "MoveOutput", op: ">&"},
	MoveInputWord:         {name: "MoveInputWord", op: "<&", translate: true},
	MoveOutputWord:        {name: "MoveOutputWord", op: ">&", translate: true},
	AppendErrAndOut:       {name: "AppendErrAndOut", op: "&>>", output: true, write: true},
}

func (i Instruction) info() instructionInfo {
	if !i.Valid() {
		return instructionInfo{}
	}
	return instructions[i]
}

func (i Instruction) Valid() bool {
	return First <= i && i <= Last
}

// Clobbers reports whether the destination file is truncated (subject to
// noclobber).
func (i Instruction) Clobbers() bool { return i.info().clobber }

func (i Instruction) IsOutput() bool { return i.info().output }

func (i Instruction) IsInput() bool { return i.info().input }

// IsWrite reports whether the destination is opened for writing.
func (i Instruction) IsWrite() bool { return i.info().write }

// IsTranslate reports whether the redirectee is a word that must be
// expanded before it can be resolved to a descriptor.
func (i Instruction) IsTranslate() bool { return i.info().translate }

// HereDoc reports whether the instruction reads inline text.
func (i Instruction) HereDoc() bool {
	switch i {
	case ReadingUntil, DeblankReadingUntil, ReadingString:
		return true
	}
	return false
}

// Moves reports whether the source descriptor is closed after it is
// duplicated (the trailing "-" forms).
func (i Instruction) Moves() bool {
	switch i {
	case MoveInput, MoveOutput, MoveInputWord, MoveOutputWord:
		return true
	}
	return false
}

// DefaultFd is the descriptor redirected when the source names none.
func (i Instruction) DefaultFd() int {
	switch i {
	case InputDirection, InputADirection, ReadingUntil, ReadingString,
		DuplicatingInput, DeblankReadingUntil, CloseThis, InputOutput,
		DuplicatingInputWord, MoveInput, MoveInputWord:
		return 0
	}
	return 1
}

// Op is the operator text the instruction is written with. CloseThis and
// the move forms need a trailing "-" which the printer adds.
func (i Instruction) Op() string { return i.info().op }

func (i Instruction) String() string {
	if !i.Valid() {
		return "Instruction(" + strconv.Itoa(int(i)) + ")"
	}
	return instructions[i].name
}

func InstructionFromUint(raw uint64) (Instruction, error) {
	var i = Instruction(raw)
	if raw > uint64(Last) || !i.Valid() {
		return illegal, erroring.VocabularyError{Table: "RedirectionInstruction", Raw: raw}
	}
	return i, nil
}

func ParseInstruction(name string) (Instruction, error) {
	for i := First; i <= Last; i++ {
		if instructions[i].name == name {
			return i, nil
		}
	}
	return illegal, erroring.VocabularyError{Table: "RedirectionInstruction", Raw: name}
}
