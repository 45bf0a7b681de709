package token

import (
	"strconv"

	"github.com/siadat/bashast/erroring"
)

// ReservedWord is a keyword. Keywords are only recognized as the first word
// of a command.
type ReservedWord int

const (
	NotReserved ReservedWord = iota

	IF
	THEN
	ELSE
	ELIF
	FI
	CASE
	ESAC
	FOR
	SELECT
	WHILE
	UNTIL
	DO
	DONE
	IN
	FUNCTION
	TIME
	LCURLY     // {
	RCURLY     // }
	BANG       // !
	COND_START // [[
	COND_END   // ]]
	COPROC

	reserved_end
)

var reservedWords = [...]struct {
	name string
	lit  string
}{
	IF:         {"IF", "if"},
	THEN:       {"THEN", "then"},
	ELSE:       {"ELSE", "else"},
	ELIF:       {"ELIF", "elif"},
	FI:         {"FI", "fi"},
	CASE:       {"CASE", "case"},
	ESAC:       {"ESAC", "esac"},
	FOR:        {"FOR", "for"},
	SELECT:     {"SELECT", "select"},
	WHILE:      {"WHILE", "while"},
	UNTIL:      {"UNTIL", "until"},
	DO:         {"DO", "do"},
	DONE:       {"DONE", "done"},
	IN:         {"IN", "in"},
	FUNCTION:   {"FUNCTION", "function"},
	TIME:       {"TIME", "time"},
	LCURLY:     {"LCURLY", "{"},
	RCURLY:     {"RCURLY", "}"},
	BANG:       {"BANG", "!"},
	COND_START: {"COND_START", "[["},
	COND_END:   {"COND_END", "]]"},
	COPROC:     {"COPROC", "coproc"},
}

var keywords map[string]ReservedWord

func init() {
	keywords = make(map[string]ReservedWord, reserved_end)
	for rw := IF; rw < reserved_end; rw++ {
		keywords[reservedWords[rw].lit] = rw
	}
}

func (rw ReservedWord) Valid() bool {
	return IF <= rw && rw < reserved_end
}

func (rw ReservedWord) Literal() string {
	if !rw.Valid() {
		return ""
	}
	return reservedWords[rw].lit
}

func (rw ReservedWord) String() string {
	if !rw.Valid() {
		return "reserved(" + strconv.Itoa(int(rw)) + ")"
	}
	return reservedWords[rw].name
}

// LookupReserved maps keyword text to its ReservedWord.
func LookupReserved(lit string) (ReservedWord, error) {
	if rw, ok := keywords[lit]; ok {
		return rw, nil
	}
	return NotReserved, erroring.VocabularyError{Table: "ReservedWord", Raw: lit}
}

// IsReserved reports whether lit would be a keyword in command position.
func IsReserved(lit string) bool {
	var _, ok = keywords[lit]
	return ok
}

func ReservedFromUint(raw uint64) (ReservedWord, error) {
	if raw >= uint64(reserved_end) || !ReservedWord(raw).Valid() {
		return NotReserved, erroring.VocabularyError{Table: "ReservedWord", Raw: raw}
	}
	return ReservedWord(raw), nil
}

// AllReserved lists every keyword in declaration order.
func AllReserved() []ReservedWord {
	var all []ReservedWord
	for rw := IF; rw < reserved_end; rw++ {
		all = append(all, rw)
	}
	return all
}
