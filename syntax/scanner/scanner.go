// Package scanner splits shell source into words, operators and reserved
// words. Characters are classified with the charclass table and operators
// and keywords come from the token tables. It does not build commands.
package scanner

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/siadat/bashast/syntax/ast"
	"github.com/siadat/bashast/syntax/charclass"
	"github.com/siadat/bashast/syntax/flags"
	"github.com/siadat/bashast/syntax/token"
)

// Like the command-string scanner it grew out of, this one returns blanks
// and comments as tokens. Skipping them is the caller's choice.

type Pos int

type Kind int

const (
	ILLEGAL Kind = iota
	EOF
	BLANK
	COMMENT
	WORD
	OPERATOR
	RESERVED
)

var kinds = [...]string{
	ILLEGAL:  "ILLEGAL",
	EOF:      "EOF",
	BLANK:    "BLANK",
	COMMENT:  "COMMENT",
	WORD:     "WORD",
	OPERATOR: "OPERATOR",
	RESERVED: "RESERVED",
}

func (k Kind) String() string {
	if 0 <= k && int(k) < len(kinds) {
		return kinds[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

type Token struct {
	Typ Kind
	Lit string
	Pos Pos

	// Op is set for OPERATOR tokens, Reserved for RESERVED tokens and
	// Flags for WORD tokens.
	Op       token.Token
	Reserved token.ReservedWord
	Flags    flags.WordFlags
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q)", t.Typ, t.Lit)
}

// Word returns the token text as a syntax word.
func (t Token) Word() ast.Word {
	return ast.NewWord(t.Lit, t.Flags)
}

var redirectionOps = map[token.Token]bool{
	token.RANGLE:              true,
	token.LANGLE:              true,
	token.GREATER_GREATER:     true,
	token.LESS_LESS:           true,
	token.LESS_LESS_MINUS:     true,
	token.LESS_LESS_LESS:      true,
	token.LESS_AND:            true,
	token.GREATER_AND:         true,
	token.AND_GREATER:         true,
	token.AND_GREATER_GREATER: true,
	token.LESS_GREATER:        true,
	token.GREATER_BAR:         true,
}

type Scanner struct {
	src          []byte
	currByte     byte
	position     int
	readPosition int

	commandStart bool
	redirTarget  bool
	inCond       bool
	// pendingIn counts down to the word that may be "in" after for,
	// select or case.
	pendingIn int

	skipWhitespace bool
	debug          bool
	debugOut       io.Writer
}

func NewScanner(src io.Reader) *Scanner {
	var s, err = io.ReadAll(src)
	if err != nil {
		panic(err)
	}
	var scanner = &Scanner{
		src:          s,
		commandStart: true,
		debugOut:     os.Stderr,
	}
	scanner.readByte()
	return scanner
}

// SetSkipWhitespace makes NextToken drop BLANK and COMMENT tokens.
func (s *Scanner) SetSkipWhitespace(v bool) {
	s.skipWhitespace = v
}

func (s *Scanner) SetDebug(v bool) {
	s.debug = v
}

func (s *Scanner) SetDebugOutput(w io.Writer) {
	s.debugOut = w
}

func (s *Scanner) readByte() {
	if s.readPosition >= len(s.src) {
		s.currByte = 0
	} else {
		s.currByte = s.src[s.readPosition]
	}
	s.position = s.readPosition
	s.readPosition += 1
}

func (s *Scanner) atEnd() bool {
	return s.position >= len(s.src)
}

func (s *Scanner) NextToken() (Token, error) {
	for {
		var t, err = s.nextToken()
		if s.debug {
			fmt.Fprintf(s.debugOut, "[debug] %d %s\n", t.Pos, t)
		}
		if err != nil {
			return t, err
		}
		if s.skipWhitespace && (t.Typ == BLANK || t.Typ == COMMENT) {
			continue
		}
		return t, nil
	}
}

// All scans the remaining input, stopping before EOF.
func (s *Scanner) All() ([]Token, error) {
	var tokens []Token
	for {
		var t, err = s.NextToken()
		if err != nil {
			return tokens, err
		}
		if t.Typ == EOF {
			return tokens, nil
		}
		tokens = append(tokens, t)
	}
}

func (s *Scanner) nextToken() (Token, error) {
	var pos = Pos(s.position)
	switch {
	case s.atEnd():
		return Token{Typ: EOF, Pos: pos}, nil
	case charclass.Is(s.currByte, charclass.Blank):
		return s.readBlank(), nil
	case s.currByte == '#':
		return s.readComment(), nil
	case s.currByte == '\n':
		s.readByte()
		s.commandStart = true
		return Token{Typ: OPERATOR, Lit: "\n", Pos: pos, Op: token.NEWLINE}, nil
	case charclass.Is(s.currByte, charclass.ShellMeta):
		return s.readOperator()
	default:
		return s.readWord()
	}
}

func (s *Scanner) readBlank() Token {
	var position = s.position
	for !s.atEnd() && charclass.Is(s.currByte, charclass.Blank) {
		s.readByte()
	}
	return Token{Typ: BLANK, Lit: string(s.src[position:s.position]), Pos: Pos(position)}
}

func (s *Scanner) readComment() Token {
	var position = s.position
	for !s.atEnd() && s.currByte != '\n' {
		s.readByte()
	}
	return Token{Typ: COMMENT, Lit: string(s.src[position:s.position]), Pos: Pos(position)}
}

// readOperator takes the longest operator the token table knows.
func (s *Scanner) readOperator() (Token, error) {
	var position = s.position
	var op, n = token.ILLEGAL, 0
	for l := 1; l <= 3 && position+l <= len(s.src); l++ {
		if tok, err := token.Lookup(string(s.src[position : position+l])); err == nil {
			op, n = tok, l
		}
	}
	if n == 0 {
		s.readByte()
		return Token{Typ: ILLEGAL, Lit: string(s.src[position:s.position]), Pos: Pos(position)},
			s.newError(position, "unexpected character %q", s.src[position])
	}
	for i := 0; i < n; i++ {
		s.readByte()
	}

	switch {
	case redirectionOps[op]:
		s.redirTarget = true
	case op == token.RPAREN:
		s.commandStart = false
	default:
		s.commandStart = true
	}
	return Token{Typ: OPERATOR, Lit: string(s.src[position:s.position]), Pos: Pos(position), Op: op}, nil
}

func (s *Scanner) readWord() (Token, error) {
	var position = s.position
	var f flags.WordFlags
	var assignment = s.commandStart && !s.redirTarget

	for !s.atEnd() && !charclass.Is(s.currByte, charclass.ShellBreak) {
		switch s.currByte {
		case '\\':
			f |= flags.WordQuoted
			s.readByte()
			if !s.atEnd() {
				s.readByte()
			}
		case '\'':
			f |= flags.WordQuoted
			if err := s.skipQuoted('\'', false, "single quote"); err != nil {
				return s.illegal(position), err
			}
		case '"':
			f |= flags.WordQuoted
			if err := s.readDoubleQuoted(&f); err != nil {
				return s.illegal(position), err
			}
		case '`':
			if err := s.skipQuoted('`', true, "back quote"); err != nil {
				return s.illegal(position), err
			}
		case '$':
			f |= flags.WordHasDollar
			if err := s.readDollar(&f); err != nil {
				return s.illegal(position), err
			}
		case '=':
			s.readByte()
			if assignment && isAssignmentPrefix(string(s.src[position:s.position])) {
				f |= flags.WordAssignment
				if s.currByte == '(' {
					f |= flags.WordCompAssign
					if err := s.skipBalanced('(', ')', "compound assignment"); err != nil {
						return s.illegal(position), err
					}
				}
			}
		default:
			s.readByte()
		}
	}

	var t = Token{Typ: WORD, Lit: string(s.src[position:s.position]), Pos: Pos(position), Flags: f}
	s.classifyWord(&t)
	return t, nil
}

// classifyWord turns keywords into RESERVED tokens and tracks where the
// next command may start.
func (s *Scanner) classifyWord(t *Token) {
	var plain = !t.Flags.Has(flags.WordQuoted)

	if s.redirTarget {
		s.redirTarget = false
		return
	}

	if s.pendingIn > 0 {
		s.pendingIn--
		if s.pendingIn == 0 && plain && t.Lit == token.IN.Literal() {
			t.Typ, t.Reserved = RESERVED, token.IN
			return
		}
	}

	if s.inCond && plain && t.Lit == token.COND_END.Literal() {
		s.inCond = false
		s.commandStart = false
		t.Typ, t.Reserved = RESERVED, token.COND_END
		return
	}

	if s.commandStart && plain {
		if rw, err := token.LookupReserved(t.Lit); err == nil {
			t.Typ, t.Reserved = RESERVED, rw
			switch rw {
			case token.FOR, token.SELECT, token.CASE:
				s.commandStart = false
				s.pendingIn = 2
			case token.FUNCTION, token.IN:
				s.commandStart = false
			case token.COND_START:
				s.commandStart = false
				s.inCond = true
			default:
				s.commandStart = true
			}
			return
		}
	}

	if s.commandStart && t.Flags.Has(flags.WordAssignment) {
		return
	}
	s.commandStart = false
}

func (s *Scanner) readDollar(f *flags.WordFlags) error {
	s.readByte()
	switch s.currByte {
	case '(':
		return s.skipBalanced('(', ')', "command substitution")
	case '{':
		return s.skipBalanced('{', '}', "parameter expansion")
	case '\'':
		*f |= flags.WordQuoted
		return s.skipQuoted('\'', true, "ANSI-C quote")
	case '"':
		*f |= flags.WordQuoted
		return s.skipQuoted('"', true, "locale quote")
	}
	return nil
}

// readDoubleQuoted is skipQuoted for '"' that also notes unescaped
// expansions.
func (s *Scanner) readDoubleQuoted(f *flags.WordFlags) error {
	var position = s.position
	s.readByte()
	for !s.atEnd() && s.currByte != '"' {
		switch {
		case s.currByte == '\\':
			s.readByte()
			if s.atEnd() {
				continue
			}
		case s.currByte == '$':
			*f |= flags.WordHasDollar
		}
		s.readByte()
	}
	if s.atEnd() {
		return s.newError(position, "unterminated double quote")
	}
	s.readByte()
	return nil
}

// skipQuoted moves past a quoted run starting at the current byte,
// honoring backslashes when escapes is set.
func (s *Scanner) skipQuoted(quote byte, escapes bool, what string) error {
	var position = s.position
	s.readByte()
	for !s.atEnd() && s.currByte != quote {
		if escapes && s.currByte == '\\' {
			s.readByte()
			if s.atEnd() {
				break
			}
		}
		s.readByte()
	}
	if s.atEnd() {
		return s.newError(position, "unterminated %s", what)
	}
	s.readByte()
	return nil
}

func (s *Scanner) skipBalanced(open, close byte, what string) error {
	var position = s.position
	var depth = 0
	for !s.atEnd() {
		switch s.currByte {
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				s.readByte()
				return nil
			}
		case '\\':
			s.readByte()
			if s.atEnd() {
				continue
			}
		case '\'':
			if err := s.skipQuoted('\'', false, "single quote"); err != nil {
				return err
			}
			continue
		case '"':
			if err := s.skipQuoted('"', true, "double quote"); err != nil {
				return err
			}
			continue
		}
		s.readByte()
	}
	return s.newError(position, "unterminated %s", what)
}

func (s *Scanner) illegal(position int) Token {
	return Token{Typ: ILLEGAL, Lit: string(s.src[position:s.position]), Pos: Pos(position)}
}

// isAssignmentPrefix reports whether lit, ending in '=', is "name=",
// "name+=" or "name[subscript]=".
func isAssignmentPrefix(lit string) bool {
	var name = strings.TrimSuffix(lit, "=")
	name = strings.TrimSuffix(name, "+")
	if i := strings.IndexByte(name, '['); i > 0 && strings.HasSuffix(name, "]") {
		name = name[:i]
	}
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		var ch = name[i]
		var letter = 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_'
		if !letter && (i == 0 || ch < '0' || ch > '9') {
			return false
		}
	}
	return true
}

// MarkAt returns the source line holding pos with a marker under it.
func (s *Scanner) MarkAt(pos Pos) string {
	var start = strings.LastIndexByte(string(s.src[:pos]), '\n') + 1
	var end = len(s.src)
	if i := strings.IndexByte(string(s.src[pos:]), '\n'); i >= 0 {
		end = int(pos) + i
	}
	return fmt.Sprintf("%s\n%s^", s.src[start:end], strings.Repeat(" ", int(pos)-start))
}

type Error struct {
	Pos Pos
	err error
}

func (e Error) Error() string {
	return fmt.Sprintf("%d: %s", e.Pos, e.err)
}

func (e Error) Unwrap() error {
	return e.err
}

func (s *Scanner) newError(position int, f string, args ...any) error {
	return Error{Pos: Pos(position), err: fmt.Errorf(f, args...)}
}
