package erroring

import (
	"fmt"
)

// Error is implemented by every error kind this module raises. It exists so
// CallAndRecover[erroring.Error] can catch either kind in one place.
type Error interface {
	error
	bashast()
}

// VocabularyError reports a raw value that is outside a closed table.
type VocabularyError struct {
	Table string
	Raw   any
}

func (e VocabularyError) Error() string {
	switch raw := e.Raw.(type) {
	case string:
		return fmt.Sprintf("invalid %s value %q", e.Table, raw)
	case uint64:
		return fmt.Sprintf("invalid %s value %#x", e.Table, raw)
	default:
		return fmt.Sprintf("invalid %s value %v", e.Table, raw)
	}
}

func (VocabularyError) bashast() {}

// StructuralError reports a node whose shape is malformed: a missing child,
// an empty required list or a union holding the wrong variant.
type StructuralError struct {
	Node   string
	Reason string
}

func (e StructuralError) Error() string {
	return fmt.Sprintf("malformed %s: %s", e.Node, e.Reason)
}

func (StructuralError) bashast() {}

func NewStructural(node string, f string, args ...any) StructuralError {
	return StructuralError{Node: node, Reason: fmt.Sprintf(f, args...)}
}
