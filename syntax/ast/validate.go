package ast

import (
	"fmt"

	"github.com/siadat/bashast/erroring"
	"github.com/siadat/bashast/syntax/flags"
)

// Validate checks the structural shape of node and everything below it:
// required children are present, required lists are non-empty and every
// union holds a legal variant. It does not judge shell semantics.
func Validate(node Node) error {
	var _, err = erroring.CallAndRecover[erroring.StructuralError](func() struct{} {
		validate(node)
		return struct{}{}
	})
	return err
}

func checked[T Node](node T) (T, error) {
	if err := Validate(node); err != nil {
		var zero T
		return zero, err
	}
	return node, nil
}

func fail(node Node, f string, args ...any) {
	panic(erroring.NewStructural(kind(node), f, args...))
}

func kind(node Node) string {
	if cmd, ok := node.(Command); ok {
		return cmd.Type().String()
	}
	switch node.(type) {
	case Word:
		return "Word"
	case Redirect:
		return "Redirect"
	case Element:
		return "Element"
	case Pattern:
		return "Pattern"
	}
	return fmt.Sprintf("%T", node)
}

func validate(node Node) {
	switch node := node.(type) {
	case nil:
		panic(erroring.NewStructural("Node", "node is nil"))
	case Word:
		// NoOp
	case Redirect:
		if !node.Instruction.Valid() {
			fail(node, "invalid instruction %s", node.Instruction)
		}
		validateRedirectee(node, "redirector", node.Redirector)
		validateRedirectee(node, "redirectee", node.Redirectee)
	case Element:
		if node.Word == nil && len(node.Redirects) == 0 {
			fail(node, "element has neither a word nor a redirection")
		}
		for _, r := range node.Redirects {
			validate(r)
		}
	case Pattern:
		if len(node.Patterns) == 0 {
			fail(node, "clause has no patterns")
		}
		if node.Flags.Has(flags.CaseFallThrough | flags.CaseTestNext) {
			fail(node, "clause has both ;& and ;;& terminators")
		}
		if node.Action != nil {
			validate(node.Action)
		}
	case Command:
		validateCommand(node)
	default:
		panic(erroring.NewStructural(kind(node), "unsupported node type"))
	}
}

func validateRedirectee(node Redirect, side string, r Redirectee) {
	switch r := r.(type) {
	case nil:
		fail(node, "%s is missing", side)
	case Fd:
		if r.N < 0 {
			fail(node, "%s descriptor %d is negative; use BadFd for out of range descriptors", side, r.N)
		}
	case BadFd:
		if r.Text == "" {
			fail(node, "%s out of range descriptor has no text", side)
		}
	case Word:
		// NoOp
	}
}

func require(node Command, name string, child Command) {
	if child == nil {
		fail(node, "%s is missing", name)
	}
	validate(child)
}

func validateCommand(node Command) {
	for _, r := range node.Base().Redirects {
		validate(r)
	}
	if node.Base().Line < 0 {
		fail(node, "negative line number %d", node.Base().Line)
	}

	switch node := node.(type) {
	case Connection:
		if !node.Connector.IsConnector() {
			fail(node, "%s cannot join two commands", node.Connector)
		}
		require(node, "first command", node.First)
		if node.Second == nil {
			if !node.Connector.IsTerminator() {
				fail(node, "second command is missing after %s", node.Connector)
			}
		} else {
			validate(node.Second)
		}
	case Case:
		for _, clause := range node.Clauses {
			validate(clause)
		}
	case For:
		validateLoop(node, node.Name, node.Words, node.Action)
	case Select:
		validateLoop(node, node.Name, node.Words, node.Action)
	case While:
		require(node, "test", node.Test)
		require(node, "action", node.Action)
	case Until:
		require(node, "test", node.Test)
		require(node, "action", node.Action)
	case If:
		require(node, "test", node.Test)
		require(node, "then branch", node.Then)
		if node.Else != nil {
			validate(node.Else)
		}
	case Simple:
		if len(node.Words) == 0 && len(node.Redirects) == 0 {
			fail(node, "simple command has neither words nor redirections")
		}
	case FunctionDef:
		if node.Name.Text == "" {
			fail(node, "function has no name")
		}
		require(node, "body", node.Body)
	case Group:
		require(node, "body", node.Body)
	case Subshell:
		require(node, "body", node.Body)
	case Coproc:
		require(node, "body", node.Body)
	case Arith:
		if len(node.Exp) == 0 {
			fail(node, "arithmetic command has no expression")
		}
	case ArithFor:
		require(node, "action", node.Action)
	case Cond:
		validateCond(node)
	default:
		panic(erroring.NewStructural(node.Type().String(), "unsupported command type"))
	}
}

func validateLoop(node Command, name Word, words []Word, action Command) {
	if name.Text == "" {
		fail(node, "loop variable has no name")
	}
	require(node, "action", action)
}

func validateCond(node Cond) {
	var needOp, needLeft, needRight bool
	switch node.Kind {
	case flags.CondAnd, flags.CondOr:
		needLeft, needRight = true, true
	case flags.CondUnary:
		needOp, needLeft = true, true
	case flags.CondBinary:
		needOp, needLeft, needRight = true, true, true
	case flags.CondTerm:
		needOp = true
	case flags.CondExpr:
		needLeft = true
	default:
		fail(node, "kind %s is not a single conditional tag", node.Kind)
	}
	if needOp && node.Op == nil {
		fail(node, "%s node has no operator word", node.Kind)
	}
	if needLeft {
		if node.Left == nil {
			fail(node, "%s node has no left operand", node.Kind)
		}
		validate(*node.Left)
	}
	if needRight {
		if node.Right == nil {
			fail(node, "%s node has no right operand", node.Kind)
		}
		validate(*node.Right)
	}
}
