// Package ast declares the node types of a shell syntax tree. A parser
// builds these values once and hands them to an executor or translator;
// nodes are plain values and are not modified after construction.
package ast

import (
	"strconv"

	"github.com/siadat/bashast/erroring"
	"github.com/siadat/bashast/syntax/flags"
)

type Node interface {
	node()
}

// CommandType is the discriminant of a Command. Each variant struct reports
// a fixed CommandType from its Type method.
type CommandType int

const (
	CommandFor CommandType = iota + 1
	CommandCase
	CommandWhile
	CommandIf
	CommandSimple
	CommandSelect
	CommandConnection
	CommandFunctionDef
	CommandUntil
	CommandGroup
	CommandArith
	CommandCond
	CommandArithFor
	CommandSubshell
	CommandCoproc
)

var commandTypes = [...]string{
	CommandFor:         "For",
	CommandCase:        "Case",
	CommandWhile:       "While",
	CommandIf:          "If",
	CommandSimple:      "Simple",
	CommandSelect:      "Select",
	CommandConnection:  "Connection",
	CommandFunctionDef: "FunctionDef",
	CommandUntil:       "Until",
	CommandGroup:       "Group",
	CommandArith:       "Arith",
	CommandCond:        "Cond",
	CommandArithFor:    "ArithFor",
	CommandSubshell:    "Subshell",
	CommandCoproc:      "Coproc",
}

func (t CommandType) Valid() bool {
	return CommandFor <= t && t <= CommandCoproc
}

func (t CommandType) String() string {
	if !t.Valid() {
		return "CommandType(" + strconv.Itoa(int(t)) + ")"
	}
	return commandTypes[t]
}

func CommandTypeFromUint(raw uint64) (CommandType, error) {
	if raw == 0 || raw > uint64(CommandCoproc) {
		return 0, erroring.VocabularyError{Table: "CommandType", Raw: raw}
	}
	return CommandType(raw), nil
}

func ParseCommandType(name string) (CommandType, error) {
	for t := CommandFor; t <= CommandCoproc; t++ {
		if commandTypes[t] == name {
			return t, nil
		}
	}
	return 0, erroring.VocabularyError{Table: "CommandType", Raw: name}
}

// CommandTypes lists every CommandType in declaration order.
func CommandTypes() []CommandType {
	var all []CommandType
	for t := CommandFor; t <= CommandCoproc; t++ {
		all = append(all, t)
	}
	return all
}

// Command is implemented by every executable node. The set of
// implementations is closed: one struct per CommandType.
type Command interface {
	Node
	Type() CommandType
	Base() CommandBase
	command()
}

// CommandBase holds what every command carries. Line is 1-based; zero
// means the line is unknown.
type CommandBase struct {
	Flags     flags.CommandFlags
	Line      int
	Redirects []Redirect
}

func (b CommandBase) Base() CommandBase { return b }
