package erroring_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/siadat/bashast/erroring"
)

func TestErrorMessages(tt *testing.T) {
	var testCases = []struct {
		err  error
		want string
	}{
		{erroring.VocabularyError{Table: "ReservedWord", Raw: "iff"}, `invalid ReservedWord value "iff"`},
		{erroring.VocabularyError{Table: "WordFlags", Raw: uint64(0x10000000)}, `invalid WordFlags value 0x10000000`},
		{erroring.VocabularyError{Table: "CommandType", Raw: 99}, `invalid CommandType value 99`},
		{erroring.NewStructural("Pattern", "%d patterns", 0), `malformed Pattern: 0 patterns`},
	}

	for ti, tc := range testCases {
		if diff := cmp.Diff(tc.want, tc.err.Error()); diff != "" {
			tt.Fatalf("test case %d (-want +got):\n%s", ti, diff)
		}
	}
}

func TestErrorsAs(tt *testing.T) {
	var wrapped = fmt.Errorf("decoding: %w", erroring.NewStructural("Connection", "first command is missing"))

	var structural erroring.StructuralError
	if !errors.As(wrapped, &structural) {
		tt.Fatalf("errors.As did not find StructuralError in %v", wrapped)
	}
	if structural.Node != "Connection" {
		tt.Fatalf("got node %q", structural.Node)
	}

	var vocab erroring.VocabularyError
	if errors.As(wrapped, &vocab) {
		tt.Fatalf("errors.As matched VocabularyError in %v", wrapped)
	}
}

func TestCallAndRecover(tt *testing.T) {
	var got, err = erroring.CallAndRecover[erroring.Error](func() int {
		return 7
	})
	if err != nil || got != 7 {
		tt.Fatalf("got (%d, %v), want (7, nil)", got, err)
	}

	_, err = erroring.CallAndRecover[erroring.Error](func() int {
		panic(erroring.VocabularyError{Table: "Token", Raw: "&&&"})
	})
	var vocab erroring.VocabularyError
	if !errors.As(err, &vocab) || vocab.Raw != "&&&" {
		tt.Fatalf("got %v, want VocabularyError for &&&", err)
	}

	_, err = erroring.CallAndRecover[erroring.Error](func() int {
		panic("boom")
	})
	if err == nil {
		tt.Fatalf("expected an error for a foreign panic value")
	}
	if diff := cmp.Diff("unexpected error of type string: boom", err.Error()); diff != "" {
		tt.Fatalf("(-want +got):\n%s", diff)
	}
}
