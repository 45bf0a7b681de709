// Package charclass classifies input bytes the way a shell lexer needs:
// which bytes break words, start expansions, quote, glob and so on.
package charclass

import (
	"strings"

	"github.com/siadat/bashast/erroring"
)

// Flag is a set of character classes. Values match bash's syntax.h.
type Flag uint16

const (
	Word         Flag = 0x0000 // plain word constituent
	ShellMeta    Flag = 0x0001 // shell meta character
	ShellBreak   Flag = 0x0002 // shell break character
	BackQuote    Flag = 0x0004 // back quote
	Quote        Flag = 0x0008 // shell quote character
	Special      Flag = 0x0010 // special character that needs quoting
	Expansion    Flag = 0x0020 // starts a shell expansion
	BackslashDQ  Flag = 0x0040 // backslash-quotable inside double quotes
	BackslashDoc Flag = 0x0080 // backslash-quotable inside a here document
	Glob         Flag = 0x0100 // globbing character
	ExtGlob      Flag = 0x0200 // extended globbing pattern character
	ExtQuote     Flag = 0x0400 // quote character inside extended quoting
	SpecialVar   Flag = 0x0800 // single-character special variable
	SubstOp      Flag = 0x1000 // parameter substitution operator
	Blank        Flag = 0x2000 // whitespace that separates words
)

const (
	CtlEsc = '\001'
	CtlNul = '\177'
)

// The character sets below are the inputs to the table.
const (
	MetaChars     = "()<>;&|"
	BreakChars    = "()<>;&| \t\n"
	QuoteChars    = "\"`'"
	ExpChars      = "$<>"
	DQuoteEscapes = "\\`$\"\n"
	DocEscapes    = "\\`$"
	GlobChars     = "*?[]^"
	ExtGlobChars  = "@*+?!"
	SpecialVars   = "@*#?-$!"
	SubstOps      = "-=?+"
	BlankChars    = " \t"
)

var names = []struct {
	flag Flag
	name string
}{
	{ShellMeta, "ShellMeta"},
	{ShellBreak, "ShellBreak"},
	{BackQuote, "BackQuote"},
	{Quote, "Quote"},
	{Special, "Special"},
	{Expansion, "Expansion"},
	{BackslashDQ, "BackslashDQ"},
	{BackslashDoc, "BackslashDoc"},
	{Glob, "Glob"},
	{ExtGlob, "ExtGlob"},
	{ExtQuote, "ExtQuote"},
	{SpecialVar, "SpecialVar"},
	{SubstOp, "SubstOp"},
	{Blank, "Blank"},
}

const allFlags Flag = 0x3fff

// table is indexed by input byte.
var table [256]Flag

func init() {
	var add = func(chars string, f Flag) {
		for i := 0; i < len(chars); i++ {
			table[chars[i]] |= f
		}
	}
	add(MetaChars, ShellMeta)
	add(BreakChars, ShellBreak)
	add("`", BackQuote)
	add(QuoteChars, Quote)
	add(string([]byte{CtlEsc, CtlNul}), Special)
	add(ExpChars, Expansion)
	add(DQuoteEscapes, BackslashDQ)
	add(DocEscapes, BackslashDoc)
	add(GlobChars, Glob)
	add(ExtGlobChars, ExtGlob)
	add(QuoteChars+"\\", ExtQuote)
	add(SpecialVars, SpecialVar)
	add(SubstOps, SubstOp)
	add(BlankChars, Blank)
}

// Of returns the classes of c.
func Of(c byte) Flag {
	return table[c]
}

// Is reports whether c belongs to every class in f.
func Is(c byte, f Flag) bool {
	return table[c]&f == f
}

// Table returns a copy of the whole syntax table.
func Table() [256]Flag {
	return table
}

func (f Flag) Has(g Flag) bool       { return f&g == g }
func (f Flag) Union(g Flag) Flag     { return f | g }
func (f Flag) Intersect(g Flag) Flag { return f & g }
func (f Flag) Without(g Flag) Flag   { return f &^ g }

func (f Flag) String() string {
	if f == Word {
		return "Word"
	}
	var s = ""
	for _, n := range names {
		if f&n.flag != 0 {
			if s != "" {
				s += "|"
			}
			s += n.name
		}
	}
	return s
}

func FromUint(raw uint64) (Flag, error) {
	if raw&^uint64(allFlags) != 0 {
		return 0, erroring.VocabularyError{Table: "CharacterFlag", Raw: raw}
	}
	return Flag(raw), nil
}

// Parse reads the "A|B" form String produces. "Word" on its own, "0" and
// "" all mean no class.
func Parse(s string) (Flag, error) {
	var f Flag
	s = strings.TrimSpace(s)
	if s == "" || s == "0" || s == "Word" {
		return Word, nil
	}
	for _, part := range strings.Split(s, "|") {
		part = strings.TrimSpace(part)
		var found = false
		for _, n := range names {
			if n.name == part {
				f |= n.flag
				found = true
				break
			}
		}
		if !found {
			return 0, erroring.VocabularyError{Table: "CharacterFlag", Raw: part}
		}
	}
	return f, nil
}
