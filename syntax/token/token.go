package token

import (
	"strconv"

	"github.com/siadat/bashast/erroring"
)

// Token is a shell operator literal.
type Token int

const (
	ILLEGAL Token = iota
	EOF

	operator_beg
	TIMEIGN             // --
	TIMEOPT             // -p
	AND_AND             // &&
	OR_OR               // ||
	GREATER_GREATER     // >>
	LESS_LESS           // <<
	LESS_AND            // <&
	GREATER_AND         // >&
	SEMI_SEMI           // ;;
	SEMI_AND            // ;&
	SEMI_SEMI_AND       // ;;&
	LESS_LESS_MINUS     // <<-
	LESS_LESS_LESS      // <<<
	AND_GREATER         // &>
	AND_GREATER_GREATER // &>>
	LESS_GREATER        // <>
	GREATER_BAR         // >|
	BAR_AND             // |&
	RANGLE              // >
	LANGLE              // <
	MINUS               // -
	SEMICOLON           // ;
	LPAREN              // (
	RPAREN              // )
	VBAR                // |
	AMPERSAND           // &
	NEWLINE             // \n
	EQUAL               // =
	operator_end
)

var tokens = [...]string{
	TIMEIGN:             "--",
	TIMEOPT:             "-p",
	AND_AND:             "&&",
	OR_OR:               "||",
	GREATER_GREATER:     ">>",
	LESS_LESS:           "<<",
	LESS_AND:            "<&",
	GREATER_AND:         ">&",
	SEMI_SEMI:           ";;",
	SEMI_AND:            ";&",
	SEMI_SEMI_AND:       ";;&",
	LESS_LESS_MINUS:     "<<-",
	LESS_LESS_LESS:      "<<<",
	AND_GREATER:         "&>",
	AND_GREATER_GREATER: "&>>",
	LESS_GREATER:        "<>",
	GREATER_BAR:         ">|",
	BAR_AND:             "|&",
	RANGLE:              ">",
	LANGLE:              "<",
	MINUS:               "-",
	SEMICOLON:           ";",
	LPAREN:              "(",
	RPAREN:              ")",
	VBAR:                "|",
	AMPERSAND:           "&",
	NEWLINE:             "\n",
	EQUAL:               "=",
}

var names = [...]string{
	ILLEGAL:             "ILLEGAL",
	EOF:                 "EOF",
	TIMEIGN:             "TIMEIGN",
	TIMEOPT:             "TIMEOPT",
	AND_AND:             "AND_AND",
	OR_OR:               "OR_OR",
	GREATER_GREATER:     "GREATER_GREATER",
	LESS_LESS:           "LESS_LESS",
	LESS_AND:            "LESS_AND",
	GREATER_AND:         "GREATER_AND",
	SEMI_SEMI:           "SEMI_SEMI",
	SEMI_AND:            "SEMI_AND",
	SEMI_SEMI_AND:       "SEMI_SEMI_AND",
	LESS_LESS_MINUS:     "LESS_LESS_MINUS",
	LESS_LESS_LESS:      "LESS_LESS_LESS",
	AND_GREATER:         "AND_GREATER",
	AND_GREATER_GREATER: "AND_GREATER_GREATER",
	LESS_GREATER:        "LESS_GREATER",
	GREATER_BAR:         "GREATER_BAR",
	BAR_AND:             "BAR_AND",
	RANGLE:              "RANGLE",
	LANGLE:              "LANGLE",
	MINUS:               "MINUS",
	SEMICOLON:           "SEMICOLON",
	LPAREN:              "LPAREN",
	RPAREN:              "RPAREN",
	VBAR:                "VBAR",
	AMPERSAND:           "AMPERSAND",
	NEWLINE:             "NEWLINE",
	EQUAL:               "EQUAL",
}

var literals map[string]Token
var byName map[string]Token

func init() {
	literals = make(map[string]Token, operator_end-operator_beg)
	byName = make(map[string]Token, len(names))
	for tok := operator_beg + 1; tok < operator_end; tok++ {
		literals[tokens[tok]] = tok
	}
	for tok, name := range names {
		if name != "" {
			byName[name] = Token(tok)
		}
	}
}

// Precedence orders the operators that join two commands. Higher binds
// tighter; anything that is not a connector has LowestPrecedence.
type Precedence int

var LowestPrecedence Precedence = 0
var Precedences = map[Token]Precedence{
	SEMICOLON: 1,
	NEWLINE:   1,
	AMPERSAND: 1,

	AND_AND: 2,
	OR_OR:   2,

	VBAR:    3,
	BAR_AND: 3,
}

func (tok Token) Precedence() Precedence {
	if p, ok := Precedences[tok]; ok {
		return p
	}
	return LowestPrecedence
}

// IsConnector reports whether tok can join two commands into a list or
// pipeline.
func (tok Token) IsConnector() bool {
	return tok.Precedence() != LowestPrecedence
}

// IsTerminator reports whether tok may end a list with nothing after it.
func (tok Token) IsTerminator() bool {
	return tok == SEMICOLON || tok == NEWLINE || tok == AMPERSAND
}

func (tok Token) IsOperator() bool {
	return operator_beg < tok && tok < operator_end
}

func (tok Token) Valid() bool {
	return tok == EOF || tok.IsOperator()
}

// Literal is the source text of the operator. EOF has none.
func (tok Token) Literal() string {
	if !tok.IsOperator() {
		return ""
	}
	return tokens[tok]
}

func (tok Token) String() string {
	var s = ""
	if 0 <= tok && tok < Token(len(names)) {
		s = names[tok]
	}
	if s == "" {
		s = "token(" + strconv.Itoa(int(tok)) + ")"
	}
	return s
}

// Lookup maps operator text to its Token.
func Lookup(lit string) (Token, error) {
	if tok, ok := literals[lit]; ok {
		return tok, nil
	}
	return ILLEGAL, erroring.VocabularyError{Table: "Token", Raw: lit}
}

// ByName maps a token name such as "AND_AND" back to its Token.
func ByName(name string) (Token, error) {
	if tok, ok := byName[name]; ok && tok != ILLEGAL {
		return tok, nil
	}
	return ILLEGAL, erroring.VocabularyError{Table: "Token", Raw: name}
}

func FromUint(raw uint64) (Token, error) {
	if raw >= uint64(operator_end) || !Token(raw).Valid() {
		return ILLEGAL, erroring.VocabularyError{Table: "Token", Raw: raw}
	}
	return Token(raw), nil
}

// All lists every valid token in declaration order.
func All() []Token {
	var all = []Token{EOF}
	for tok := operator_beg + 1; tok < operator_end; tok++ {
		all = append(all, tok)
	}
	return all
}
