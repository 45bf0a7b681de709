package redir_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/siadat/bashast/erroring"
	"github.com/siadat/bashast/syntax/redir"
)

type predicates struct {
	Clobbers, Output, Input, Write, Translate bool
}

func TestPredicateMembership(tt *testing.T) {
	var clobbers = set(redir.OutputDirection, redir.ErrAndOut)
	var output = set(redir.OutputDirection, redir.InputOutput, redir.ErrAndOut, redir.AppendErrAndOut)
	var input = set(redir.InputDirection, redir.InputADirection, redir.InputOutput)
	var write = set(redir.OutputDirection, redir.InputOutput, redir.ErrAndOut, redir.AppendingTo, redir.AppendErrAndOut, redir.OutputForce)
	var translate = set(redir.DuplicatingInputWord, redir.DuplicatingOutputWord, redir.MoveInputWord, redir.MoveOutputWord)

	var count = 0
	for i := redir.First; i <= redir.Last; i++ {
		count++
		var want = predicates{clobbers[i], output[i], input[i], write[i], translate[i]}
		var got = predicates{i.Clobbers(), i.IsOutput(), i.IsInput(), i.IsWrite(), i.IsTranslate()}
		if diff := cmp.Diff(want, got); diff != "" {
			tt.Fatalf("%s (-want +got):\n%s", i, diff)
		}
	}
	if count != 20 {
		tt.Fatalf("got %d instructions, want 20", count)
	}
}

func TestErrAndOut(tt *testing.T) {
	var i = redir.ErrAndOut
	var want = predicates{Clobbers: true, Output: true, Input: false, Write: true, Translate: false}
	var got = predicates{i.Clobbers(), i.IsOutput(), i.IsInput(), i.IsWrite(), i.IsTranslate()}
	if diff := cmp.Diff(want, got); diff != "" {
		tt.Fatalf("(-want +got):\n%s", diff)
	}
}

func TestInvalidInstructionHasNoPredicates(tt *testing.T) {
	var i = redir.Instruction(0)
	if i.Valid() || i.Clobbers() || i.IsOutput() || i.IsInput() || i.IsWrite() || i.IsTranslate() {
		tt.Fatalf("zero instruction should be invalid with every predicate false")
	}
	if diff := cmp.Diff("Instruction(0)", i.String()); diff != "" {
		tt.Fatalf("(-want +got):\n%s", diff)
	}
}

func TestInstructionLookup(tt *testing.T) {
	var got, err = redir.ParseInstruction("AppendingTo")
	if err != nil || got != redir.AppendingTo {
		tt.Fatalf("got (%s, %v)", got, err)
	}
	if got, err := redir.InstructionFromUint(20); err != nil || got != redir.AppendErrAndOut {
		tt.Fatalf("got (%s, %v)", got, err)
	}

	for _, raw := range []uint64{0, 21, 256 + 1} {
		var _, err = redir.InstructionFromUint(raw)
		var vocab erroring.VocabularyError
		if !errors.As(err, &vocab) || vocab.Table != "RedirectionInstruction" || vocab.Raw != raw {
			tt.Fatalf("raw %d: got %v", raw, err)
		}
	}
	if _, err := redir.ParseInstruction("Teleport"); err == nil {
		tt.Fatalf("expected error for unknown name")
	}
}

func TestOpsAndDefaults(tt *testing.T) {
	var testCases = []struct {
		ins     redir.Instruction
		op      string
		fd      int
		heredoc bool
		moves   bool
	}{
		{redir.OutputDirection, ">", 1, false, false},
		{redir.InputDirection, "<", 0, false, false},
		{redir.AppendingTo, ">>", 1, false, false},
		{redir.ReadingUntil, "<<", 0, true, false},
		{redir.DeblankReadingUntil, "<<-", 0, true, false},
		{redir.ReadingString, "<<<", 0, true, false},
		{redir.ErrAndOut, "&>", 1, false, false},
		{redir.AppendErrAndOut, "&>>", 1, false, false},
		{redir.InputOutput, "<>", 0, false, false},
		{redir.OutputForce, ">|", 1, false, false},
		{redir.MoveOutputWord, ">&", 1, false, true},
		{redir.MoveInput, "<&", 0, false, true},
	}
	for _, tc := range testCases {
		if tc.ins.Op() != tc.op || tc.ins.DefaultFd() != tc.fd || tc.ins.HereDoc() != tc.heredoc || tc.ins.Moves() != tc.moves {
			tt.Fatalf("%s: got op=%q fd=%d heredoc=%v moves=%v", tc.ins, tc.ins.Op(), tc.ins.DefaultFd(), tc.ins.HereDoc(), tc.ins.Moves())
		}
	}
}

func TestFailure(tt *testing.T) {
	var testCases = []struct {
		err  redir.FailureError
		want string
	}{
		{redir.FailureError{Kind: redir.AmbiguousRedirect, Target: "$files"}, "$files: ambiguous redirect"},
		{redir.FailureError{Kind: redir.NoClobberRedirect, Target: "out.log"}, "out.log: cannot overwrite existing file"},
		{redir.FailureError{Kind: redir.RestrictedRedirect, Target: "/etc/passwd"}, "/etc/passwd: restricted: cannot redirect output"},
		{redir.FailureError{Kind: redir.HereDocRedirect}, "cannot create temp file for here-document"},
		{redir.FailureError{Kind: redir.BadVarRedirect, Target: "fd"}, "fd: cannot assign fd to variable"},
	}
	for ti, tc := range testCases {
		if diff := cmp.Diff(tc.want, tc.err.Error()); diff != "" {
			tt.Fatalf("test case %d (-want +got):\n%s", ti, diff)
		}
	}

	if f, err := redir.ParseFailure("BadVarRedirect"); err != nil || f != redir.BadVarRedirect {
		tt.Fatalf("got (%s, %v)", f, err)
	}
	if _, err := redir.FailureFromUint(6); err == nil {
		tt.Fatalf("expected error for 6")
	}
	if f, err := redir.FailureFromUint(1); err != nil || f != redir.AmbiguousRedirect {
		tt.Fatalf("got (%s, %v)", f, err)
	}
}

func set(is ...redir.Instruction) map[redir.Instruction]bool {
	var m = make(map[redir.Instruction]bool)
	for _, i := range is {
		m[i] = true
	}
	return m
}
