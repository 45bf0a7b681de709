package flags_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/siadat/bashast/erroring"
	"github.com/siadat/bashast/syntax/flags"
)

func TestBitPositions(tt *testing.T) {
	var testCases = []struct {
		got  uint64
		want uint64
	}{
		{uint64(flags.WordHasDollar), 0x1},
		{uint64(flags.WordNoGlob), 0x20},
		{uint64(flags.WordHasCtlEsc), 0x200000},
		{uint64(flags.WordComplete), 0x8000000},
		{uint64(flags.ParamComplete), 0x10},
		{uint64(flags.SubshellResetTrap), 0x80},
		{uint64(flags.CmdCommandBuiltin), 0x800},
		{uint64(flags.CmdStdPath), 0x4000},
		{uint64(flags.RedirCloseOnExecOff), 0x20},
		{uint64(flags.RedirVarAssign), 0x80},
		{uint64(flags.CondAnd), 0x1},
		{uint64(flags.CondExpr), 0x20},
		{uint64(flags.CaseTestNext), 0x2},
	}
	for ti, tc := range testCases {
		if tc.got != tc.want {
			tt.Fatalf("test case %d: got %#x, want %#x", ti, tc.got, tc.want)
		}
	}
}

func TestWordFlagsAlgebra(tt *testing.T) {
	var a, b, c = flags.WordQuoted, flags.WordHasDollar, flags.WordNoGlob
	var ab = a | b

	if !ab.Has(a) || !ab.Has(b) {
		tt.Fatalf("%s should have %s and %s", ab, a, b)
	}
	if ab.Has(c) {
		tt.Fatalf("%s should not have %s", ab, c)
	}
	if flags.WordFlags(0).Has(a) {
		tt.Fatalf("zero value should have no flags")
	}
	if got := ab.Intersect(b | c); got != b {
		tt.Fatalf("intersect: got %s, want %s", got, b)
	}
	if got := ab.Without(a); got != b {
		tt.Fatalf("without: got %s, want %s", got, b)
	}
	if got := a.Union(b); got != ab {
		tt.Fatalf("union: got %s, want %s", got, ab)
	}
	// De Morgan over the difference operator.
	var x = a | b | c
	if x.Without(a|b) != x.Without(a).Without(b) {
		tt.Fatalf("difference is not distributive over union")
	}
	if x.Without(x) != 0 {
		tt.Fatalf("x \\ x should be empty")
	}
}

func TestAllTablesAlgebra(tt *testing.T) {
	var check = func(name string, ab, a, b, c bool) {
		if !ab || !a || b || c {
			tt.Fatalf("%s: unexpected membership", name)
		}
	}
	var cf = flags.CmdInvertReturn | flags.CmdAmpersand
	check("CommandFlags", cf.Has(flags.CmdAmpersand), cf.Has(flags.CmdInvertReturn), cf.Has(flags.CmdNoFork), flags.CommandFlags(0).Has(flags.CmdNoFork))

	var sf = flags.SubshellAsync | flags.SubshellPipe
	check("SubshellFlags", sf.Has(flags.SubshellAsync), sf.Has(flags.SubshellPipe), sf.Has(flags.SubshellFork), flags.SubshellFlags(0).Has(flags.SubshellFork))

	var rf = flags.RedirActive | flags.RedirUser
	check("RedirectionFlags", rf.Has(flags.RedirActive), rf.Has(flags.RedirUser), rf.Has(flags.RedirSaveFd), flags.RedirectionFlags(0).Has(flags.RedirSaveFd))

	var pf = flags.ParamNoComSub | flags.ParamComplete
	check("ParamFlags", pf.Has(flags.ParamNoComSub), pf.Has(flags.ParamComplete), pf.Has(flags.ParamIgnUnbound), flags.ParamFlags(0).Has(flags.ParamIgnUnbound))

	var co = flags.CondBinary | flags.CondTerm
	check("Conditional", co.Has(flags.CondBinary), co.Has(flags.CondTerm), co.Has(flags.CondOr), flags.Conditional(0).Has(flags.CondOr))
}

func TestString(tt *testing.T) {
	var testCases = []struct {
		got  string
		want string
	}{
		{(flags.WordQuoted | flags.WordHasDollar).String(), "HasDollar|Quoted"},
		{flags.WordFlags(0).String(), "0"},
		{flags.WordFlags(0x10000000).String(), "0x10000000"},
		{(flags.CmdTimePipeline | flags.CmdTimePosix).String(), "TimePipeline|TimePosix"},
		{flags.RedirCloseOnExecOn.String(), "CloseOnExecOn"},
		{(flags.CaseFallThrough | flags.CaseTestNext).String(), "FallThrough|TestNext"},
		{flags.SubshellComSub.String(), "ComSub"},
		{flags.CondUnary.String(), "Unary"},
	}
	for ti, tc := range testCases {
		if diff := cmp.Diff(tc.want, tc.got); diff != "" {
			tt.Fatalf("test case %d (-want +got):\n%s", ti, diff)
		}
	}
}

func TestParse(tt *testing.T) {
	var got, err = flags.ParseWordFlags("Quoted | HasDollar")
	if err != nil {
		tt.Fatal(err)
	}
	if got != flags.WordQuoted|flags.WordHasDollar {
		tt.Fatalf("got %s", got)
	}

	if got, err := flags.ParseCommandFlags(""); err != nil || got != 0 {
		tt.Fatalf("empty string: got (%s, %v)", got, err)
	}

	_, err = flags.ParseWordFlags("Quoted|Shouted")
	var vocab erroring.VocabularyError
	if !errors.As(err, &vocab) {
		tt.Fatalf("expected VocabularyError, got %v", err)
	}
	if diff := cmp.Diff(erroring.VocabularyError{Table: "WordFlags", Raw: "Shouted"}, vocab); diff != "" {
		tt.Fatalf("(-want +got):\n%s", diff)
	}
}

func TestFromUint(tt *testing.T) {
	if got, err := flags.WordFlagsFromUint(0x8000003); err != nil || got != flags.WordComplete|flags.WordQuoted|flags.WordHasDollar {
		tt.Fatalf("got (%s, %v)", got, err)
	}

	var testCases = []struct {
		table string
		err   error
	}{
		{"WordFlags", second(flags.WordFlagsFromUint(0x10000000))},
		{"ParamFlags", second(flags.ParamFlagsFromUint(0x20))},
		{"CommandFlags", second(flags.CommandFlagsFromUint(0x8000))},
		{"SubshellFlags", second(flags.SubshellFlagsFromUint(0x100))},
		{"RedirectionFlags", second(flags.RedirectionFlagsFromUint(0x100))},
		{"Conditional", second(flags.ConditionalFromUint(0x40))},
		{"CasePatternFlag", second(flags.CasePatternFlagFromUint(0x4))},
	}
	for _, tc := range testCases {
		var vocab erroring.VocabularyError
		if !errors.As(tc.err, &vocab) {
			tt.Fatalf("%s: expected VocabularyError, got %v", tc.table, tc.err)
		}
		if vocab.Table != tc.table {
			tt.Fatalf("got table %q, want %q", vocab.Table, tc.table)
		}
	}
}

func second[T any](_ T, err error) error {
	return err
}

func TestWordFlagsSetLaterWins(tt *testing.T) {
	var testCases = []struct {
		start flags.WordFlags
		set   flags.WordFlags
		want  flags.WordFlags
	}{
		{flags.WordNoSplit | flags.WordQuoted, flags.WordSplitSpace, flags.WordSplitSpace | flags.WordQuoted},
		{flags.WordSplitSpace, flags.WordNoSplit, flags.WordNoSplit},
		{flags.WordTildeExp, flags.WordNoTilde, flags.WordNoTilde},
		{flags.WordAssignArray, flags.WordAssignAssoc, flags.WordAssignAssoc},
		{flags.WordNoGlob, flags.WordNoBrace, flags.WordNoGlob | flags.WordNoBrace},
	}
	for ti, tc := range testCases {
		if got := tc.start.Set(tc.set); got != tc.want {
			tt.Fatalf("test case %d: %s.Set(%s) = %s, want %s", ti, tc.start, tc.set, got, tc.want)
		}
	}
}

func TestWordFlagsParam(tt *testing.T) {
	var w = flags.WordNoComSub | flags.WordComplete | flags.WordQuoted | flags.WordAssignRhs
	var want = flags.ParamNoComSub | flags.ParamComplete | flags.ParamAssignRhs
	if got := w.Param(); got != want {
		tt.Fatalf("got %s, want %s", got, want)
	}
	if got := flags.WordQuoted.Param(); got != 0 {
		tt.Fatalf("got %s, want 0", got)
	}
}
