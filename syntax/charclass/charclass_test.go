package charclass_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/siadat/bashast/syntax/charclass"
)

func TestOf(tt *testing.T) {
	var testCases = []struct {
		c    byte
		want charclass.Flag
	}{
		{'a', charclass.Word},
		{'0', charclass.Word},
		{' ', charclass.ShellBreak | charclass.Blank},
		{'\t', charclass.ShellBreak | charclass.Blank},
		{'\n', charclass.ShellBreak | charclass.BackslashDQ},
		{'|', charclass.ShellMeta | charclass.ShellBreak},
		{'<', charclass.ShellMeta | charclass.ShellBreak | charclass.Expansion},
		{'$', charclass.Expansion | charclass.BackslashDQ | charclass.BackslashDoc | charclass.SpecialVar},
		{'`', charclass.BackQuote | charclass.Quote | charclass.BackslashDQ | charclass.BackslashDoc | charclass.ExtQuote},
		{'\'', charclass.Quote | charclass.ExtQuote},
		{'\\', charclass.BackslashDQ | charclass.BackslashDoc | charclass.ExtQuote},
		{'*', charclass.Glob | charclass.ExtGlob | charclass.SpecialVar},
		{'[', charclass.Glob},
		{'+', charclass.ExtGlob | charclass.SubstOp},
		{'-', charclass.SpecialVar | charclass.SubstOp},
		{'=', charclass.SubstOp},
		{charclass.CtlEsc, charclass.Special},
		{charclass.CtlNul, charclass.Special},
		{0xff, charclass.Word},
	}
	for _, tc := range testCases {
		if got := charclass.Of(tc.c); got != tc.want {
			tt.Fatalf("Of(%q) = %s, want %s", tc.c, got, tc.want)
		}
	}
}

func TestIs(tt *testing.T) {
	if !charclass.Is('&', charclass.ShellMeta|charclass.ShellBreak) {
		tt.Fatalf("& is meta and break")
	}
	if charclass.Is(' ', charclass.ShellMeta) {
		tt.Fatalf("space is not meta")
	}
	var table = charclass.Table()
	table['a'] = charclass.Glob
	if charclass.Of('a') != charclass.Word {
		tt.Fatalf("Table must return a copy")
	}
}

func TestString(tt *testing.T) {
	if diff := cmp.Diff("ShellMeta|ShellBreak", charclass.Of(';').String()); diff != "" {
		tt.Fatalf("(-want +got):\n%s", diff)
	}
	if diff := cmp.Diff("Word", charclass.Of('x').String()); diff != "" {
		tt.Fatalf("(-want +got):\n%s", diff)
	}
}

func TestFromUintAndParse(tt *testing.T) {
	if _, err := charclass.FromUint(0x4000); err == nil {
		tt.Fatalf("0x4000 is outside the table")
	}
	if f, err := charclass.FromUint(0x2002); err != nil || f != charclass.Blank|charclass.ShellBreak {
		tt.Fatalf("got (%s, %v)", f, err)
	}
	if f, err := charclass.Parse("ExtGlob"); err != nil || f != charclass.ExtGlob {
		tt.Fatalf("got (%s, %v)", f, err)
	}
	if _, err := charclass.Parse("Sparkly"); err == nil {
		tt.Fatalf("expected error")
	}
	if _, err := charclass.Parse("Quote|Sparkly"); err == nil || !strings.Contains(err.Error(), "Sparkly") {
		tt.Fatalf("expected error naming Sparkly, got %v", err)
	}
	if f, err := charclass.Parse(" ShellMeta | ShellBreak "); err != nil || f != charclass.ShellMeta|charclass.ShellBreak {
		tt.Fatalf("got (%s, %v)", f, err)
	}
}

func TestParseReadsString(tt *testing.T) {
	for c := 0; c < 256; c++ {
		var want = charclass.Of(byte(c))
		var got, err = charclass.Parse(want.String())
		if err != nil {
			tt.Fatalf("%q: %v", c, err)
		}
		if got != want {
			tt.Fatalf("%q: Parse(%q) = %s, want %s", c, want.String(), got, want)
		}
	}
}
