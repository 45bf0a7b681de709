package redir

import (
	"fmt"
	"strconv"

	"github.com/siadat/bashast/erroring"
)

// Failure classifies why a redirection could not be performed.
type Failure uint8

const (
	AmbiguousRedirect Failure = iota + 1
	NoClobberRedirect
	RestrictedRedirect
	HereDocRedirect
	BadVarRedirect
)

var failures = [...]struct {
	name    string
	message string
}{
	AmbiguousRedirect:  {"AmbiguousRedirect", "ambiguous redirect"},
	NoClobberRedirect:  {"NoClobberRedirect", "cannot overwrite existing file"},
	RestrictedRedirect: {"RestrictedRedirect", "restricted: cannot redirect output"},
	HereDocRedirect:    {"HereDocRedirect", "cannot create temp file for here-document"},
	BadVarRedirect:     {"BadVarRedirect", "cannot assign fd to variable"},
}

func (f Failure) Valid() bool {
	return AmbiguousRedirect <= f && f <= BadVarRedirect
}

func (f Failure) String() string {
	if !f.Valid() {
		return "Failure(" + strconv.Itoa(int(f)) + ")"
	}
	return failures[f].name
}

func (f Failure) Message() string {
	if !f.Valid() {
		return "redirection error"
	}
	return failures[f].message
}

func FailureFromUint(raw uint64) (Failure, error) {
	if raw == 0 || raw > uint64(BadVarRedirect) {
		return 0, erroring.VocabularyError{Table: "RedirectionError", Raw: raw}
	}
	return Failure(raw), nil
}

func ParseFailure(name string) (Failure, error) {
	for f := AmbiguousRedirect; f <= BadVarRedirect; f++ {
		if failures[f].name == name {
			return f, nil
		}
	}
	return 0, erroring.VocabularyError{Table: "RedirectionError", Raw: name}
}

// FailureError is what an executor returns when a redirection fails. Target
// is the word or descriptor text the user wrote.
type FailureError struct {
	Kind   Failure
	Target string
}

func (e FailureError) Error() string {
	if e.Target == "" {
		return e.Kind.Message()
	}
	return fmt.Sprintf("%s: %s", e.Target, e.Kind.Message())
}
