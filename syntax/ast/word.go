package ast

import (
	"strconv"

	"github.com/siadat/bashast/syntax/flags"
	"github.com/siadat/bashast/syntax/redir"
)

// Word is one shell word as written, with the annotations gathered while
// parsing and expanding it.
type Word struct {
	Text  string
	Flags flags.WordFlags
}

func NewWord(text string, f flags.WordFlags) Word {
	return Word{Text: text, Flags: f}
}

// WithFlags returns a copy of w with f set, later flags winning over
// contradictory earlier ones.
func (w Word) WithFlags(f flags.WordFlags) Word {
	return Word{Text: w.Text, Flags: w.Flags.Set(f)}
}

func (w Word) String() string { return w.Text }

// Redirectee is either side of a redirection: a file descriptor (Fd), a
// word naming a file or variable (Word), or a descriptor the parser found
// out of range (BadFd).
type Redirectee interface {
	redirectee()
	String() string
}

type Fd struct {
	N int
}

// BadFd keeps the text of a descriptor number that did not fit.
type BadFd struct {
	Text string
}

func (Fd) redirectee()    {}
func (Word) redirectee()  {}
func (BadFd) redirectee() {}

func (fd Fd) String() string    { return strconv.Itoa(fd.N) }
func (fd BadFd) String() string { return fd.Text }

// Redirect is one I/O redirection.
type Redirect struct {
	Redirector  Redirectee
	Flags       flags.RedirectionFlags
	Instruction redir.Instruction
	Redirectee  Redirectee

	// HereDocEOF is the delimiter from <<EOF. Nil when the redirection is
	// not a here document; the delimiter itself may be empty (<<'').
	HereDocEOF *string
}

func NewRedirect(redirector Redirectee, f flags.RedirectionFlags, ins redir.Instruction, redirectee Redirectee) (Redirect, error) {
	var r = Redirect{
		Redirector:  redirector,
		Flags:       f,
		Instruction: ins,
		Redirectee:  redirectee,
	}
	return checked(r)
}

// NewHereDoc builds a here-document redirection. body is the document
// text; eof is the delimiter word as written.
func NewHereDoc(redirector Redirectee, f flags.RedirectionFlags, ins redir.Instruction, body Word, eof string) (Redirect, error) {
	var r = Redirect{
		Redirector:  redirector,
		Flags:       f,
		Instruction: ins,
		Redirectee:  body,
		HereDocEOF:  &eof,
	}
	return checked(r)
}

// HereDocDelimiter returns the here-document delimiter, if any.
func (r Redirect) HereDocDelimiter() (string, bool) {
	if r.HereDocEOF == nil {
		return "", false
	}
	return *r.HereDocEOF, true
}

// Element is one slot of a simple command: a word, redirections, or both.
type Element struct {
	Word      *Word
	Redirects []Redirect
}

func NewElement(word *Word, redirects ...Redirect) (Element, error) {
	var e = Element{Word: word, Redirects: redirects}
	return checked(e)
}

func (Word) node()     {}
func (Redirect) node() {}
func (Element) node()  {}
