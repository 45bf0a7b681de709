package ast

import (
	"github.com/siadat/bashast/syntax/flags"
	"github.com/siadat/bashast/syntax/token"
)

// Connection joins two commands with ;, &, &&, ||, |, |& or a newline.
// Second is nil when a terminator (;, & or newline) ends the list.
type Connection struct {
	CommandBase
	First     Command
	Second    Command
	Connector token.Token
}

func NewConnection(base CommandBase, first Command, connector token.Token, second Command) (Connection, error) {
	return checked(Connection{CommandBase: base, First: first, Second: second, Connector: connector})
}

// Pattern is one clause of a case command. Patterns is never empty;
// Action is nil for an empty clause such as "a) ;;".
type Pattern struct {
	Patterns []Word
	Action   Command
	Flags    flags.CasePatternFlag
}

func NewPattern(patterns []Word, action Command, f flags.CasePatternFlag) (Pattern, error) {
	return checked(Pattern{Patterns: patterns, Action: action, Flags: f})
}

// First returns the first pattern word. It reports false for a Pattern
// built without the constructor and holding no patterns.
func (p Pattern) First() (Word, bool) {
	if len(p.Patterns) == 0 {
		return Word{}, false
	}
	return p.Patterns[0], true
}

type Case struct {
	CommandBase
	Word    Word
	Clauses []Pattern
}

func NewCase(base CommandBase, word Word, clauses ...Pattern) (Case, error) {
	return checked(Case{CommandBase: base, Word: word, Clauses: clauses})
}

// For is "for Name in Words; do Action; done". Words is nil when the list
// is omitted and "$@" is implied.
type For struct {
	CommandBase
	Name   Word
	Words  []Word
	Action Command
}

type Select struct {
	CommandBase
	Name   Word
	Words  []Word
	Action Command
}

type While struct {
	CommandBase
	Test   Command
	Action Command
}

type Until struct {
	CommandBase
	Test   Command
	Action Command
}

// If has an optional Else; elif chains nest another If in Else.
type If struct {
	CommandBase
	Test Command
	Then Command
	Else Command
}

type Simple struct {
	CommandBase
	Words []Word
}

// NewSimple assembles a simple command from parsed elements, keeping the
// words in order and collecting every redirection onto the command.
func NewSimple(base CommandBase, elements ...Element) (Simple, error) {
	var s = Simple{CommandBase: base}
	s.Redirects = append([]Redirect(nil), base.Redirects...)
	for _, e := range elements {
		if e.Word != nil {
			s.Words = append(s.Words, *e.Word)
		}
		s.Redirects = append(s.Redirects, e.Redirects...)
	}
	return checked(s)
}

// Argv returns the command's words as plain text.
func (s Simple) Argv() []string {
	var argv = make([]string, 0, len(s.Words))
	for _, w := range s.Words {
		argv = append(argv, w.Text)
	}
	return argv
}

type FunctionDef struct {
	CommandBase
	Name       Word
	Body       Command
	SourceFile string
}

// Group is "{ Body; }".
type Group struct {
	CommandBase
	Body Command
}

// Subshell is "( Body )".
type Subshell struct {
	CommandBase
	Body Command
}

// Arith is "(( Exp ))".
type Arith struct {
	CommandBase
	Exp []Word
}

// Cond is one node of a [[ ... ]] expression. Kind holds exactly one
// Conditional tag which decides the fields in use:
//
//	And, Or   Left, Right
//	Unary     Op, Left
//	Binary    Op, Left, Right
//	Term      Op (the operand word)
//	Expr      Left (a parenthesized subexpression)
type Cond struct {
	CommandBase
	Kind  flags.Conditional
	Op    *Word
	Left  *Cond
	Right *Cond
}

// ArithFor is "for (( Init; Test; Step )); do Action; done".
type ArithFor struct {
	CommandBase
	Init   []Word
	Test   []Word
	Step   []Word
	Action Command
}

type Coproc struct {
	CommandBase
	Name string
	Body Command
}

func (Connection) Type() CommandType  { return CommandConnection }
func (Case) Type() CommandType        { return CommandCase }
func (For) Type() CommandType         { return CommandFor }
func (Select) Type() CommandType      { return CommandSelect }
func (While) Type() CommandType       { return CommandWhile }
func (Until) Type() CommandType       { return CommandUntil }
func (If) Type() CommandType          { return CommandIf }
func (Simple) Type() CommandType      { return CommandSimple }
func (FunctionDef) Type() CommandType { return CommandFunctionDef }
func (Group) Type() CommandType       { return CommandGroup }
func (Subshell) Type() CommandType    { return CommandSubshell }
func (Arith) Type() CommandType       { return CommandArith }
func (Cond) Type() CommandType        { return CommandCond }
func (ArithFor) Type() CommandType    { return CommandArithFor }
func (Coproc) Type() CommandType      { return CommandCoproc }

func (Connection) command()  {}
func (Case) command()        {}
func (For) command()         {}
func (Select) command()      {}
func (While) command()       {}
func (Until) command()       {}
func (If) command()          {}
func (Simple) command()      {}
func (FunctionDef) command() {}
func (Group) command()       {}
func (Subshell) command()    {}
func (Arith) command()       {}
func (Cond) command()        {}
func (ArithFor) command()    {}
func (Coproc) command()      {}

func (Connection) node()  {}
func (Case) node()        {}
func (Pattern) node()     {}
func (For) node()         {}
func (Select) node()      {}
func (While) node()       {}
func (Until) node()       {}
func (If) node()          {}
func (Simple) node()      {}
func (FunctionDef) node() {}
func (Group) node()       {}
func (Subshell) node()    {}
func (Arith) node()       {}
func (Cond) node()        {}
func (ArithFor) node()    {}
func (Coproc) node()      {}
