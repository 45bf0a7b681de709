package astdoc

import (
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/siadat/bashast/syntax/ast"
)

// Encode writes cmd to w as a document in format f.
func Encode(w io.Writer, cmd ast.Command, f Format) error {
	if err := ast.Validate(cmd); err != nil {
		return err
	}
	var doc = ToDoc(cmd)
	switch f {
	case YAML:
		var enc = yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()
	case TOML:
		if err := toml.NewEncoder(w).Encode(doc); err != nil {
			return fmt.Errorf("encoding toml: %w", err)
		}
		return nil
	}
	return fmt.Errorf("unsupported format %s", f)
}

type stringer interface {
	String() string
}

// flagText leaves zero flag sets out of the document.
func flagText[T interface {
	comparable
	stringer
}](f T) string {
	var zero T
	if f == zero {
		return ""
	}
	return f.String()
}

// ToDoc converts a command into its document form. A nil command gives nil.
func ToDoc(cmd ast.Command) *Doc {
	if cmd == nil {
		return nil
	}
	var base = cmd.Base()
	var doc = &Doc{
		Type:  cmd.Type().String(),
		Line:  base.Line,
		Flags: flagText(base.Flags),
	}
	for _, r := range base.Redirects {
		doc.Redirects = append(doc.Redirects, redirectDoc(r))
	}

	switch cmd := cmd.(type) {
	case ast.Connection:
		doc.First = ToDoc(cmd.First)
		doc.Connector = cmd.Connector.String()
		doc.Second = ToDoc(cmd.Second)
	case ast.Case:
		doc.Subject = wordDoc(cmd.Word)
		for _, p := range cmd.Clauses {
			doc.Clauses = append(doc.Clauses, ClauseDoc{
				Patterns: wordDocs(p.Patterns),
				Action:   ToDoc(p.Action),
				Flags:    flagText(p.Flags),
			})
		}
	case ast.Simple:
		doc.Words = wordDocs(cmd.Words)
	case ast.For:
		doc.Name = wordDoc(cmd.Name)
		doc.Words = wordDocs(cmd.Words)
		doc.EmptyList = cmd.Words != nil && len(cmd.Words) == 0
		doc.Action = ToDoc(cmd.Action)
	case ast.Select:
		doc.Name = wordDoc(cmd.Name)
		doc.Words = wordDocs(cmd.Words)
		doc.EmptyList = cmd.Words != nil && len(cmd.Words) == 0
		doc.Action = ToDoc(cmd.Action)
	case ast.While:
		doc.Test = ToDoc(cmd.Test)
		doc.Action = ToDoc(cmd.Action)
	case ast.Until:
		doc.Test = ToDoc(cmd.Test)
		doc.Action = ToDoc(cmd.Action)
	case ast.If:
		doc.Test = ToDoc(cmd.Test)
		doc.Then = ToDoc(cmd.Then)
		doc.Else = ToDoc(cmd.Else)
	case ast.FunctionDef:
		doc.Name = wordDoc(cmd.Name)
		doc.Body = ToDoc(cmd.Body)
		doc.SourceFile = cmd.SourceFile
	case ast.Group:
		doc.Body = ToDoc(cmd.Body)
	case ast.Subshell:
		doc.Body = ToDoc(cmd.Body)
	case ast.Coproc:
		if cmd.Name != "" {
			doc.Name = &WordDoc{Text: cmd.Name}
		}
		doc.Body = ToDoc(cmd.Body)
	case ast.Arith:
		doc.Exp = wordDocs(cmd.Exp)
	case ast.ArithFor:
		doc.Init = wordDocs(cmd.Init)
		doc.TestExp = wordDocs(cmd.Test)
		doc.Step = wordDocs(cmd.Step)
		doc.Action = ToDoc(cmd.Action)
	case ast.Cond:
		doc.Kind = flagText(cmd.Kind)
		if cmd.Op != nil {
			doc.Op = wordDoc(*cmd.Op)
		}
		if cmd.Left != nil {
			doc.Left = ToDoc(*cmd.Left)
		}
		if cmd.Right != nil {
			doc.Right = ToDoc(*cmd.Right)
		}
	}
	return doc
}

func wordDoc(w ast.Word) *WordDoc {
	return &WordDoc{Text: w.Text, Flags: flagText(w.Flags)}
}

func wordDocs(ws []ast.Word) []WordDoc {
	if len(ws) == 0 {
		return nil
	}
	var ret = make([]WordDoc, 0, len(ws))
	for _, w := range ws {
		ret = append(ret, *wordDoc(w))
	}
	return ret
}

func redirectDoc(r ast.Redirect) RedirectDoc {
	return RedirectDoc{
		Redirector:  redirecteeDoc(r.Redirector),
		Flags:       flagText(r.Flags),
		Instruction: r.Instruction.String(),
		Redirectee:  redirecteeDoc(r.Redirectee),
		HereDocEOF:  r.HereDocEOF,
	}
}

func redirecteeDoc(r ast.Redirectee) RedirecteeDoc {
	switch r := r.(type) {
	case ast.Fd:
		var n = r.N
		return RedirecteeDoc{Fd: &n}
	case ast.Word:
		return RedirecteeDoc{Word: wordDoc(r)}
	case ast.BadFd:
		return RedirecteeDoc{BadFd: r.Text}
	}
	return RedirecteeDoc{}
}
