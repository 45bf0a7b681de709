package ast

// Walk visits node and its descendants depth-first. If fn returns false
// the children of that node are skipped. Nil children are not visited.
func Walk(node Node, fn func(Node) bool) {
	if node == nil || !fn(node) {
		return
	}

	var walkCmd = func(c Command) {
		if c != nil {
			Walk(c, fn)
		}
	}
	var walkWords = func(words []Word) {
		for _, w := range words {
			Walk(w, fn)
		}
	}

	switch node := node.(type) {
	case Element:
		if node.Word != nil {
			Walk(*node.Word, fn)
		}
		for _, r := range node.Redirects {
			Walk(r, fn)
		}
		return
	case Pattern:
		walkWords(node.Patterns)
		walkCmd(node.Action)
		return
	case Connection:
		walkCmd(node.First)
		walkCmd(node.Second)
	case Case:
		Walk(node.Word, fn)
		for _, clause := range node.Clauses {
			Walk(clause, fn)
		}
	case For:
		Walk(node.Name, fn)
		walkWords(node.Words)
		walkCmd(node.Action)
	case Select:
		Walk(node.Name, fn)
		walkWords(node.Words)
		walkCmd(node.Action)
	case While:
		walkCmd(node.Test)
		walkCmd(node.Action)
	case Until:
		walkCmd(node.Test)
		walkCmd(node.Action)
	case If:
		walkCmd(node.Test)
		walkCmd(node.Then)
		walkCmd(node.Else)
	case Simple:
		walkWords(node.Words)
	case FunctionDef:
		Walk(node.Name, fn)
		walkCmd(node.Body)
	case Group:
		walkCmd(node.Body)
	case Subshell:
		walkCmd(node.Body)
	case Coproc:
		walkCmd(node.Body)
	case Arith:
		walkWords(node.Exp)
	case ArithFor:
		walkWords(node.Init)
		walkWords(node.Test)
		walkWords(node.Step)
		walkCmd(node.Action)
	case Cond:
		if node.Op != nil {
			Walk(*node.Op, fn)
		}
		if node.Left != nil {
			Walk(*node.Left, fn)
		}
		if node.Right != nil {
			Walk(*node.Right, fn)
		}
	default:
		return
	}

	for _, r := range node.(Command).Base().Redirects {
		Walk(r, fn)
	}
}
