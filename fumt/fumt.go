package fumt

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/siadat/bashast/erroring"
	"github.com/siadat/bashast/syntax/ast"
	"github.com/siadat/bashast/syntax/flags"
	"github.com/siadat/bashast/syntax/redir"
	"github.com/siadat/bashast/syntax/token"
)

// Prints a command tree as shell source. Words are written as they appear
// in the tree, so quoting is whatever the parser recorded.

type formater struct {
	indentLevel int
	indentStr   string
	heredocs    []string
	debug       bool
	debugOut    io.Writer
}

func NewFormater() *formater {
	return &formater{indentStr: "\t", debugOut: os.Stderr}
}

func (ft *formater) SetDebug(v bool) {
	ft.debug = v
}

func (ft *formater) SetDebugOutput(w io.Writer) {
	ft.debugOut = w
}

// SetIndent sets the string used for one level of indentation.
func (ft *formater) SetIndent(s string) {
	ft.indentStr = s
}

// Format validates cmd and writes it to out followed by a newline.
func (ft *formater) Format(cmd ast.Command, out io.Writer) error {
	if err := ast.Validate(cmd); err != nil {
		return err
	}

	ft.indentLevel = 0
	ft.heredocs = nil
	var src, err = erroring.CallAndRecover[Error](func() string {
		var s = ft.format(cmd)
		return s + ft.newline()
	})
	if err != nil {
		return err
	}
	_, err = io.WriteString(out, src)
	return err
}

// FormatNode renders a single node without validating it. Here-document
// bodies are appended after the node text.
func (ft *formater) FormatNode(node ast.Node) (string, error) {
	ft.heredocs = nil
	return erroring.CallAndRecover[Error](func() string {
		var s string
		switch node := node.(type) {
		case ast.Word:
			s = node.Text
		case ast.Redirect:
			s = ft.redirect(node)
		case ast.Element:
			var parts []string
			if node.Word != nil {
				parts = append(parts, node.Word.Text)
			}
			for _, r := range node.Redirects {
				parts = append(parts, ft.redirect(r))
			}
			s = strings.Join(parts, " ")
		case ast.Command:
			s = ft.format(node)
		default:
			panic(ft.newError("cannot format %T", node))
		}
		if len(ft.heredocs) > 0 {
			s += ft.newline()
			s = strings.TrimSuffix(s, "\n")
		}
		return s
	})
}

func (ft *formater) format(cmd ast.Command) string {
	if ft.debug {
		fmt.Fprintf(ft.debugOut, "[debug] format %s at level %d\n", cmd.Type(), ft.indentLevel)
	}

	var b strings.Builder
	var base = cmd.Base()
	if base.Flags.Has(flags.CmdTimePipeline) {
		if base.Flags.Has(flags.CmdTimePosix) {
			b.WriteString("time -p ")
		} else {
			b.WriteString("time ")
		}
	}
	if base.Flags.Has(flags.CmdInvertReturn) {
		b.WriteString("! ")
	}

	b.WriteString(ft.command(cmd))

	for _, r := range base.Redirects {
		b.WriteString(" ")
		b.WriteString(ft.redirect(r))
	}
	if base.Flags.Has(flags.CmdAmpersand) {
		b.WriteString(" &")
	}
	return b.String()
}

func (ft *formater) command(cmd ast.Command) string {
	var b strings.Builder
	switch cmd := cmd.(type) {
	case ast.Simple:
		b.WriteString(words(cmd.Words))
	case ast.Connection:
		b.WriteString(ft.operand(cmd.First, cmd.Connector, false))
		switch cmd.Connector {
		case token.SEMICOLON:
			b.WriteString(";")
		case token.NEWLINE:
			if cmd.Second != nil {
				b.WriteString(ft.newline())
				b.WriteString(ft.indent())
			}
		default:
			b.WriteString(" " + cmd.Connector.Literal())
		}
		if cmd.Second != nil {
			if cmd.Connector != token.NEWLINE {
				b.WriteString(" ")
			}
			b.WriteString(ft.operand(cmd.Second, cmd.Connector, true))
		}
	case ast.Case:
		b.WriteString("case " + cmd.Word.Text + " in")
		ft.indentLevel++
		for _, clause := range cmd.Clauses {
			b.WriteString(ft.newline())
			b.WriteString(ft.indent() + patterns(clause.Patterns) + ")")
			ft.indentLevel++
			if clause.Action != nil {
				b.WriteString(ft.newline())
				b.WriteString(ft.indent() + ft.format(clause.Action))
			}
			b.WriteString(ft.newline())
			b.WriteString(ft.indent() + terminator(clause.Flags))
			ft.indentLevel--
		}
		ft.indentLevel--
		b.WriteString(ft.newline())
		b.WriteString(ft.indent() + "esac")
	case ast.For:
		b.WriteString(ft.loopHead("for", cmd.Name, cmd.Words))
		b.WriteString(ft.doDone(cmd.Action))
	case ast.Select:
		b.WriteString(ft.loopHead("select", cmd.Name, cmd.Words))
		b.WriteString(ft.doDone(cmd.Action))
	case ast.While:
		b.WriteString("while " + ft.format(cmd.Test))
		b.WriteString(ft.doDone(cmd.Action))
	case ast.Until:
		b.WriteString("until " + ft.format(cmd.Test))
		b.WriteString(ft.doDone(cmd.Action))
	case ast.ArithFor:
		b.WriteString(fmt.Sprintf("for ((%s; %s; %s))", words(cmd.Init), words(cmd.Test), words(cmd.Step)))
		b.WriteString(ft.doDone(cmd.Action))
	case ast.If:
		b.WriteString(ft.ifChain("if", cmd))
		b.WriteString(ft.newline())
		b.WriteString(ft.indent() + "fi")
	case ast.Group:
		b.WriteString("{")
		b.WriteString(ft.newline())
		b.WriteString(ft.block(cmd.Body))
		b.WriteString(ft.newline())
		b.WriteString(ft.indent() + "}")
	case ast.Subshell:
		b.WriteString("( " + ft.format(cmd.Body) + " )")
	case ast.FunctionDef:
		b.WriteString(cmd.Name.Text + "() ")
		b.WriteString(ft.format(cmd.Body))
	case ast.Arith:
		b.WriteString("((" + words(cmd.Exp) + "))")
	case ast.Cond:
		b.WriteString("[[ " + ft.cond(cmd) + " ]]")
	case ast.Coproc:
		if cmd.Name == "" || cmd.Name == "COPROC" {
			b.WriteString("coproc " + ft.format(cmd.Body))
		} else {
			b.WriteString("coproc " + cmd.Name + " " + ft.format(cmd.Body))
		}
	default:
		panic(ft.newError("unsupported command type %s", cmd.Type()))
	}
	return b.String()
}

// operand prints one side of a connection, wrapping it in braces when it
// would otherwise regroup with its neighbours. Lists and pipelines are
// associative, so only a right-nested && or || chain needs braces at equal
// precedence.
func (ft *formater) operand(cmd ast.Command, parent token.Token, right bool) string {
	var conn, ok = cmd.(ast.Connection)
	if !ok {
		return ft.format(cmd)
	}
	var child, outer = conn.Connector.Precedence(), parent.Precedence()
	var andOr = parent == token.AND_AND || parent == token.OR_OR
	if child > outer || (child == outer && !(right && andOr)) {
		return ft.format(cmd)
	}
	var s = ft.format(cmd)
	if conn.Second == nil && (conn.Connector == token.SEMICOLON || conn.Connector == token.AMPERSAND) {
		return "{ " + s + " }"
	}
	return "{ " + s + "; }"
}

func (ft *formater) loopHead(keyword string, name ast.Word, list []ast.Word) string {
	if list == nil {
		return keyword + " " + name.Text
	}
	return keyword + " " + name.Text + " in " + words(list)
}

func (ft *formater) doDone(action ast.Command) string {
	var b strings.Builder
	b.WriteString("; do")
	b.WriteString(ft.newline())
	b.WriteString(ft.block(action))
	b.WriteString(ft.newline())
	b.WriteString(ft.indent() + "done")
	return b.String()
}

func (ft *formater) ifChain(keyword string, cmd ast.If) string {
	var b strings.Builder
	b.WriteString(keyword + " " + ft.format(cmd.Test) + "; then")
	b.WriteString(ft.newline())
	b.WriteString(ft.block(cmd.Then))
	if cmd.Else == nil {
		return b.String()
	}
	b.WriteString(ft.newline())
	if elif, ok := cmd.Else.(ast.If); ok && isPlain(elif.CommandBase) {
		b.WriteString(ft.indent() + ft.ifChain("elif", elif))
		return b.String()
	}
	b.WriteString(ft.indent() + "else")
	b.WriteString(ft.newline())
	b.WriteString(ft.block(cmd.Else))
	return b.String()
}

func isPlain(base ast.CommandBase) bool {
	return base.Flags == 0 && len(base.Redirects) == 0
}

func (ft *formater) block(cmd ast.Command) string {
	ft.indentLevel++
	defer func() { ft.indentLevel-- }()
	var s = ft.indent()
	return s + ft.format(cmd)
}

func (ft *formater) cond(c ast.Cond) string {
	switch c.Kind {
	case flags.CondTerm:
		return c.Op.Text
	case flags.CondUnary:
		return c.Op.Text + " " + ft.cond(*c.Left)
	case flags.CondBinary:
		return ft.cond(*c.Left) + " " + c.Op.Text + " " + ft.cond(*c.Right)
	case flags.CondAnd:
		return ft.cond(*c.Left) + " && " + ft.cond(*c.Right)
	case flags.CondOr:
		return ft.cond(*c.Left) + " || " + ft.cond(*c.Right)
	case flags.CondExpr:
		return "( " + ft.cond(*c.Left) + " )"
	default:
		panic(ft.newError("unsupported conditional kind %s", c.Kind))
	}
}

func (ft *formater) redirect(r ast.Redirect) string {
	var ins = r.Instruction
	var b strings.Builder

	switch source := r.Redirector.(type) {
	case ast.Fd:
		if source.N != ins.DefaultFd() && ins != redir.ErrAndOut && ins != redir.AppendErrAndOut {
			b.WriteString(source.String())
		}
	case ast.BadFd:
		b.WriteString(source.Text)
	case ast.Word:
		b.WriteString("{" + source.Text + "}")
	}

	b.WriteString(ins.Op())

	switch {
	case ins == redir.CloseThis:
		b.WriteString("-")
	case ins.HereDoc() && ins != redir.ReadingString:
		var eof, _ = r.HereDocDelimiter()
		b.WriteString(eof)
		var body = r.Redirectee.String()
		if body != "" && !strings.HasSuffix(body, "\n") {
			body += "\n"
		}
		ft.heredocs = append(ft.heredocs, body+eof+"\n")
	case ins == redir.DuplicatingInput || ins == redir.DuplicatingOutput || ins.IsTranslate() || ins.Moves():
		b.WriteString(r.Redirectee.String())
		if ins.Moves() {
			b.WriteString("-")
		}
	default:
		b.WriteString(" " + r.Redirectee.String())
	}
	return b.String()
}

func terminator(f flags.CasePatternFlag) string {
	switch {
	case f.Has(flags.CaseFallThrough):
		return token.SEMI_AND.Literal()
	case f.Has(flags.CaseTestNext):
		return token.SEMI_SEMI_AND.Literal()
	default:
		return token.SEMI_SEMI.Literal()
	}
}

func patterns(ws []ast.Word) string {
	var parts = make([]string, 0, len(ws))
	for _, w := range ws {
		parts = append(parts, w.Text)
	}
	return strings.Join(parts, "|")
}

func words(ws []ast.Word) string {
	var parts = make([]string, 0, len(ws))
	for _, w := range ws {
		parts = append(parts, w.Text)
	}
	return strings.Join(parts, " ")
}

// newline ends the current line and emits any here-document bodies that
// were started on it.
func (ft *formater) newline() string {
	var s = "\n" + strings.Join(ft.heredocs, "")
	ft.heredocs = nil
	return s
}

func (ft *formater) indent() string {
	return strings.Repeat(ft.indentStr, ft.indentLevel)
}

type Error struct {
	err error
}

func (i Error) Error() string {
	return i.err.Error()
}

func (ft *formater) newError(f string, args ...any) error {
	return Error{fmt.Errorf(f, args...)}
}
