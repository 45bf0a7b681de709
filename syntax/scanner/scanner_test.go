package scanner_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/siadat/bashast/syntax/flags"
	"github.com/siadat/bashast/syntax/scanner"
	"github.com/siadat/bashast/syntax/token"
)

const IgnorePos = -1

func word(lit string, f flags.WordFlags) scanner.Token {
	return scanner.Token{Typ: scanner.WORD, Lit: lit, Pos: IgnorePos, Flags: f}
}

func op(lit string, tok token.Token) scanner.Token {
	return scanner.Token{Typ: scanner.OPERATOR, Lit: lit, Pos: IgnorePos, Op: tok}
}

func rsv(lit string, rw token.ReservedWord) scanner.Token {
	return scanner.Token{Typ: scanner.RESERVED, Lit: lit, Pos: IgnorePos, Reserved: rw}
}

func TestScanner(tt *testing.T) {
	var testCases = []struct {
		skipWhitespace bool
		src            string
		want           []scanner.Token
	}{
		{
			src: `echo  hi # note`,
			want: []scanner.Token{
				{Typ: scanner.WORD, Lit: `echo`, Pos: 0},
				{Typ: scanner.BLANK, Lit: `  `, Pos: 4},
				{Typ: scanner.WORD, Lit: `hi`, Pos: 6},
				{Typ: scanner.BLANK, Lit: ` `, Pos: 8},
				{Typ: scanner.COMMENT, Lit: `# note`, Pos: 9},
			},
		},
		{
			skipWhitespace: true,
			src:            `a=1 b+=2 echo "$x" 'y' \z > out 2>&1`,
			want: []scanner.Token{
				word(`a=1`, flags.WordAssignment),
				word(`b+=2`, flags.WordAssignment),
				word(`echo`, 0),
				word(`"$x"`, flags.WordQuoted|flags.WordHasDollar),
				word(`'y'`, flags.WordQuoted),
				word(`\z`, flags.WordQuoted),
				op(`>`, token.RANGLE),
				word(`out`, 0),
				word(`2`, 0),
				op(`>&`, token.GREATER_AND),
				word(`1`, 0),
			},
		},
		{
			skipWhitespace: true,
			src:            `if true; then echo $(ls | wc -l); fi`,
			want: []scanner.Token{
				rsv(`if`, token.IF),
				word(`true`, 0),
				op(`;`, token.SEMICOLON),
				rsv(`then`, token.THEN),
				word(`echo`, 0),
				word(`$(ls | wc -l)`, flags.WordHasDollar),
				op(`;`, token.SEMICOLON),
				rsv(`fi`, token.FI),
			},
		},
		{
			skipWhitespace: true,
			src:            "for i in a b; do x=(1 2) cmd; done\n",
			want: []scanner.Token{
				rsv(`for`, token.FOR),
				word(`i`, 0),
				rsv(`in`, token.IN),
				word(`a`, 0),
				word(`b`, 0),
				op(`;`, token.SEMICOLON),
				rsv(`do`, token.DO),
				word(`x=(1 2)`, flags.WordAssignment|flags.WordCompAssign),
				word(`cmd`, 0),
				op(`;`, token.SEMICOLON),
				rsv(`done`, token.DONE),
				op("\n", token.NEWLINE),
			},
		},
		{
			skipWhitespace: true,
			src:            `[[ -f x ]] && a || b |& c &`,
			want: []scanner.Token{
				rsv(`[[`, token.COND_START),
				word(`-f`, 0),
				word(`x`, 0),
				rsv(`]]`, token.COND_END),
				op(`&&`, token.AND_AND),
				word(`a`, 0),
				op(`||`, token.OR_OR),
				word(`b`, 0),
				op(`|&`, token.BAR_AND),
				word(`c`, 0),
				op(`&`, token.AMPERSAND),
			},
		},
		{
			skipWhitespace: true,
			src:            `case $x in a|b) y;; *) z;;& esac`,
			want: []scanner.Token{
				rsv(`case`, token.CASE),
				word(`$x`, flags.WordHasDollar),
				rsv(`in`, token.IN),
				word(`a`, 0),
				op(`|`, token.VBAR),
				word(`b`, 0),
				op(`)`, token.RPAREN),
				word(`y`, 0),
				op(`;;`, token.SEMI_SEMI),
				word(`*`, 0),
				op(`)`, token.RPAREN),
				word(`z`, 0),
				op(`;;&`, token.SEMI_SEMI_AND),
				rsv(`esac`, token.ESAC),
			},
		},
		{
			skipWhitespace: true,
			src:            `{ echo if; } &>> log <<< "$in"`,
			want: []scanner.Token{
				rsv(`{`, token.LCURLY),
				word(`echo`, 0),
				word(`if`, 0),
				op(`;`, token.SEMICOLON),
				rsv(`}`, token.RCURLY),
				op(`&>>`, token.AND_GREATER_GREATER),
				word(`log`, 0),
				op(`<<<`, token.LESS_LESS_LESS),
				word(`"$in"`, flags.WordQuoted|flags.WordHasDollar),
			},
		},
	}

	for _, tc := range testCases {
		var src = tc.src
		var s = scanner.NewScanner(strings.NewReader(src))
		s.SetSkipWhitespace(tc.skipWhitespace)
		var got, err = s.All()

		var cmpOpt = cmp.FilterValues(func(p1, p2 scanner.Pos) bool { return p1 == IgnorePos || p2 == IgnorePos || p1 == p2 }, cmp.Ignore())

		if diff := cmp.Diff((error)(nil), err); diff != "" {
			tt.Fatalf("case error failed to match src=%q\n-want\n+got\ndiff:\n%s", src, diff)
		}
		if diff := cmp.Diff(tc.want, got, cmpOpt); diff != "" {
			tt.Fatalf("case failed src=%q\n-want\n+got\ndiff:\n%s", src, diff)
		}
	}
}

func TestScannerErrors(tt *testing.T) {
	var testCases = []struct {
		src  string
		want string
	}{
		{`echo 'oops`, "5: unterminated single quote"},
		{`echo "oops`, "5: unterminated double quote"},
		{`echo $(ls`, "6: unterminated command substitution"},
		{`echo ${x`, "6: unterminated parameter expansion"},
		{`echo $(\`, "6: unterminated command substitution"},
		{`echo ${\`, "6: unterminated parameter expansion"},
		{`a=(\`, "2: unterminated compound assignment"},
	}

	for _, tc := range testCases {
		var _, err = scanner.NewScanner(strings.NewReader(tc.src)).All()
		var scanErr scanner.Error
		if !errors.As(err, &scanErr) {
			tt.Fatalf("src=%q: expected scanner.Error, got %v", tc.src, err)
		}
		if diff := cmp.Diff(tc.want, err.Error()); diff != "" {
			tt.Fatalf("src=%q (-want +got):\n%s", tc.src, diff)
		}
	}
}

func TestIllegalTokenStopsAtEnd(tt *testing.T) {
	var testCases = []struct {
		src  string
		want string
	}{
		{`echo $(\`, `$(\`},
		{`echo ${\`, `${\`},
		{`echo $(ls \`, `$(ls \`},
	}

	for _, tc := range testCases {
		var s = scanner.NewScanner(strings.NewReader(tc.src))
		s.SetSkipWhitespace(true)
		if _, err := s.NextToken(); err != nil {
			tt.Fatal(err)
		}
		var got, err = s.NextToken()
		if err == nil {
			tt.Fatalf("src=%q: expected an error", tc.src)
		}
		if diff := cmp.Diff(scanner.Token{Typ: scanner.ILLEGAL, Lit: tc.want, Pos: 5}, got); diff != "" {
			tt.Fatalf("src=%q (-want +got):\n%s", tc.src, diff)
		}
	}
}

func TestWordAndMark(tt *testing.T) {
	var s = scanner.NewScanner(strings.NewReader("ls\nFOO=\"a b\" env"))
	s.SetSkipWhitespace(true)
	var tokens, err = s.All()
	if err != nil {
		tt.Fatal(err)
	}
	var assignment = tokens[2]
	if diff := cmp.Diff("FOO=\"a b\"", assignment.Word().Text); diff != "" {
		tt.Fatalf("(-want +got):\n%s", diff)
	}
	if !assignment.Word().Flags.Has(flags.WordAssignment | flags.WordQuoted) {
		tt.Fatalf("want an assignment, got %s", assignment.Word().Flags)
	}
	if diff := cmp.Diff("FOO=\"a b\" env\n^", s.MarkAt(assignment.Pos)); diff != "" {
		tt.Fatalf("(-want +got):\n%s", diff)
	}
}

func TestDebug(tt *testing.T) {
	var s = scanner.NewScanner(strings.NewReader("a"))
	var debug bytes.Buffer
	s.SetDebug(true)
	s.SetDebugOutput(&debug)
	if _, err := s.All(); err != nil {
		tt.Fatal(err)
	}
	if diff := cmp.Diff("[debug] 0 WORD(\"a\")\n[debug] 1 EOF(\"\")\n", debug.String()); diff != "" {
		tt.Fatalf("(-want +got):\n%s", diff)
	}
}
