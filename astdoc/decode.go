package astdoc

import (
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/siadat/bashast/erroring"
	"github.com/siadat/bashast/syntax/ast"
	"github.com/siadat/bashast/syntax/flags"
	"github.com/siadat/bashast/syntax/redir"
	"github.com/siadat/bashast/syntax/token"
)

// Decode reads one command document from r.
func Decode(r io.Reader, f Format) (ast.Command, error) {
	var doc Doc
	switch f {
	case YAML:
		var dec = yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decoding yaml: %w", err)
		}
	case TOML:
		var meta, err = toml.NewDecoder(r).Decode(&doc)
		if err != nil {
			return nil, fmt.Errorf("decoding toml: %w", err)
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("decoding toml: unknown key %q", undecoded[0].String())
		}
	default:
		return nil, erroring.VocabularyError{Table: "Format", Raw: int(f)}
	}
	return FromDoc(doc)
}

// FromDoc builds the command a document describes.
func FromDoc(doc Doc) (ast.Command, error) {
	return erroring.CallAndRecover[erroring.Error](func() ast.Command {
		return command(&doc)
	})
}

// must unwraps a constructor result. Errors from constructors are always
// erroring.Error values, so CallAndRecover hands them back unchanged.
func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func missing(node string, field string) {
	panic(erroring.NewStructural(node, "%s is missing", field))
}

func command(doc *Doc) ast.Command {
	var typ = must(ast.ParseCommandType(doc.Type))
	var base = ast.CommandBase{
		Flags: must(flags.ParseCommandFlags(doc.Flags)),
		Line:  doc.Line,
	}
	for _, r := range doc.Redirects {
		base.Redirects = append(base.Redirects, redirect(r))
	}

	var cmd ast.Command
	switch typ {
	case ast.CommandConnection:
		if doc.First == nil {
			missing(typ.String(), "first")
		}
		cmd = must(ast.NewConnection(base, command(doc.First), must(token.ByName(doc.Connector)), optional(doc.Second)))
	case ast.CommandCase:
		if doc.Subject == nil {
			missing(typ.String(), "subject")
		}
		var clauses []ast.Pattern
		for _, c := range doc.Clauses {
			clauses = append(clauses, must(ast.NewPattern(words(c.Patterns), optional(c.Action), must(flags.ParseCasePatternFlag(c.Flags)))))
		}
		cmd = must(ast.NewCase(base, word(*doc.Subject), clauses...))
	case ast.CommandSimple:
		var elements []ast.Element
		for _, w := range words(doc.Words) {
			var w = w
			elements = append(elements, must(ast.NewElement(&w)))
		}
		cmd = must(ast.NewSimple(base, elements...))
	case ast.CommandFor:
		cmd = ast.For{CommandBase: base, Name: name(typ, doc), Words: loopWords(typ, doc), Action: optional(doc.Action)}
	case ast.CommandSelect:
		cmd = ast.Select{CommandBase: base, Name: name(typ, doc), Words: loopWords(typ, doc), Action: optional(doc.Action)}
	case ast.CommandWhile:
		cmd = ast.While{CommandBase: base, Test: optional(doc.Test), Action: optional(doc.Action)}
	case ast.CommandUntil:
		cmd = ast.Until{CommandBase: base, Test: optional(doc.Test), Action: optional(doc.Action)}
	case ast.CommandIf:
		cmd = ast.If{CommandBase: base, Test: optional(doc.Test), Then: optional(doc.Then), Else: optional(doc.Else)}
	case ast.CommandFunctionDef:
		cmd = ast.FunctionDef{CommandBase: base, Name: name(typ, doc), Body: optional(doc.Body), SourceFile: doc.SourceFile}
	case ast.CommandGroup:
		cmd = ast.Group{CommandBase: base, Body: optional(doc.Body)}
	case ast.CommandSubshell:
		cmd = ast.Subshell{CommandBase: base, Body: optional(doc.Body)}
	case ast.CommandCoproc:
		var coprocName string
		if doc.Name != nil {
			coprocName = doc.Name.Text
		}
		cmd = ast.Coproc{CommandBase: base, Name: coprocName, Body: optional(doc.Body)}
	case ast.CommandArith:
		cmd = ast.Arith{CommandBase: base, Exp: words(doc.Exp)}
	case ast.CommandArithFor:
		cmd = ast.ArithFor{CommandBase: base, Init: words(doc.Init), Test: words(doc.TestExp), Step: words(doc.Step), Action: optional(doc.Action)}
	case ast.CommandCond:
		cmd = cond(doc, base)
	}

	if err := ast.Validate(cmd); err != nil {
		panic(err)
	}
	return cmd
}

func optional(doc *Doc) ast.Command {
	if doc == nil {
		return nil
	}
	return command(doc)
}

func name(typ ast.CommandType, doc *Doc) ast.Word {
	if doc.Name == nil {
		missing(typ.String(), "name")
	}
	return word(*doc.Name)
}

func cond(doc *Doc, base ast.CommandBase) ast.Cond {
	var c = ast.Cond{
		CommandBase: base,
		Kind:        must(flags.ParseConditional(doc.Kind)),
	}
	if doc.Op != nil {
		var op = word(*doc.Op)
		c.Op = &op
	}
	for _, side := range []struct {
		doc *Doc
		dst **ast.Cond
	}{{doc.Left, &c.Left}, {doc.Right, &c.Right}} {
		if side.doc == nil {
			continue
		}
		var operand, ok = command(side.doc).(ast.Cond)
		if !ok {
			panic(erroring.NewStructural("Cond", "operand must be a Cond, got %s", side.doc.Type))
		}
		*side.dst = &operand
	}
	return c
}

func word(w WordDoc) ast.Word {
	return ast.NewWord(w.Text, must(flags.ParseWordFlags(w.Flags)))
}

func words(ws []WordDoc) []ast.Word {
	if len(ws) == 0 {
		return nil
	}
	var ret = make([]ast.Word, 0, len(ws))
	for _, w := range ws {
		ret = append(ret, word(w))
	}
	return ret
}

// loopWords keeps an explicit empty list apart from an omitted one.
func loopWords(typ ast.CommandType, doc *Doc) []ast.Word {
	if !doc.EmptyList {
		return words(doc.Words)
	}
	if len(doc.Words) > 0 {
		panic(erroring.NewStructural(typ.String(), "empty_list set with %d words", len(doc.Words)))
	}
	return []ast.Word{}
}

func redirect(r RedirectDoc) ast.Redirect {
	var ins = must(redir.ParseInstruction(r.Instruction))
	var rflags = must(flags.ParseRedirectionFlags(r.Flags))
	var from, to = redirectee("redirector", r.Redirector), redirectee("redirectee", r.Redirectee)
	if r.HereDocEOF != nil {
		var body, ok = to.(ast.Word)
		if !ok {
			panic(erroring.NewStructural("Redirect", "here document body must be a word"))
		}
		return must(ast.NewHereDoc(from, rflags, ins, body, *r.HereDocEOF))
	}
	return must(ast.NewRedirect(from, rflags, ins, to))
}

func redirectee(side string, r RedirecteeDoc) ast.Redirectee {
	var set = 0
	var ret ast.Redirectee
	if r.Fd != nil {
		set++
		ret = ast.Fd{N: *r.Fd}
	}
	if r.Word != nil {
		set++
		ret = word(*r.Word)
	}
	if r.BadFd != "" {
		set++
		ret = ast.BadFd{Text: r.BadFd}
	}
	if set != 1 {
		panic(erroring.NewStructural("Redirect", "%s must hold exactly one of fd, word or bad_fd; got %d", side, set))
	}
	return ret
}
