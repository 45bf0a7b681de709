package main

import (
	"fmt"
	"io"
	"math/bits"

	"gopkg.in/yaml.v3"

	"github.com/siadat/bashast/syntax/ast"
	"github.com/siadat/bashast/syntax/charclass"
	"github.com/siadat/bashast/syntax/flags"
	"github.com/siadat/bashast/syntax/redir"
	"github.com/siadat/bashast/syntax/scanner"
	"github.com/siadat/bashast/syntax/token"
)

type entry struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value"`
	Text  string `yaml:"text,omitempty"`
}

type table struct {
	Name    string  `yaml:"table"`
	Kind    string  `yaml:"kind"`
	Entries []entry `yaml:"entries"`
}

// bitTable collects the named bits of a flag type by probing every bit
// position through its FromUint constructor.
func bitTable[T fmt.Stringer](name string, width int, fromUint func(uint64) (T, error)) table {
	var t = table{Name: name, Kind: "bitset"}
	for i := 0; i < width; i++ {
		var raw = uint64(1) << i
		var v, err = fromUint(raw)
		if err != nil {
			continue
		}
		t.Entries = append(t.Entries, entry{Name: v.String(), Value: fmt.Sprintf("%#x", raw)})
	}
	return t
}

func enumEntry[T fmt.Stringer](v T, raw uint64, text string) entry {
	return entry{Name: v.String(), Value: fmt.Sprint(raw), Text: text}
}

func vocabularyTables() []table {
	var tables = []table{
		bitTable("WordFlags", 32, flags.WordFlagsFromUint),
		bitTable("ParamFlags", 8, flags.ParamFlagsFromUint),
		bitTable("CommandFlags", 16, flags.CommandFlagsFromUint),
		bitTable("SubshellFlags", 8, flags.SubshellFlagsFromUint),
		bitTable("RedirectionFlags", 8, flags.RedirectionFlagsFromUint),
		bitTable("Conditional", 8, flags.ConditionalFromUint),
		bitTable("CasePatternFlag", 8, flags.CasePatternFlagFromUint),
		bitTable("CharacterFlag", 16, charclass.FromUint),
	}

	var instructions = table{Name: "RedirectionInstruction", Kind: "enum"}
	for i := redir.First; i <= redir.Last; i++ {
		instructions.Entries = append(instructions.Entries, enumEntry(i, uint64(i), i.Op()))
	}

	var failures = table{Name: "RedirectionError", Kind: "enum"}
	for raw := uint64(1); ; raw++ {
		var f, err = redir.FailureFromUint(raw)
		if err != nil {
			break
		}
		failures.Entries = append(failures.Entries, enumEntry(f, raw, f.Message()))
	}

	var commandTypes = table{Name: "CommandType", Kind: "enum"}
	for _, t := range ast.CommandTypes() {
		commandTypes.Entries = append(commandTypes.Entries, enumEntry(t, uint64(t), ""))
	}

	var tokens = table{Name: "Token", Kind: "enum"}
	for _, tok := range token.All() {
		tokens.Entries = append(tokens.Entries, enumEntry(tok, uint64(tok), tok.Literal()))
	}

	var reserved = table{Name: "ReservedWord", Kind: "enum"}
	for _, rw := range token.AllReserved() {
		reserved.Entries = append(reserved.Entries, enumEntry(rw, uint64(rw), rw.Literal()))
	}

	return append(tables, instructions, failures, commandTypes, tokens, reserved)
}

func writeTables(w io.Writer, only string) error {
	var tables = vocabularyTables()
	if only != "" {
		var found []table
		for _, t := range tables {
			if t.Name == only {
				found = append(found, t)
			}
		}
		if len(found) == 0 {
			return fmt.Errorf("no table named %q", only)
		}
		tables = found
	}
	return writeYAML(w, tables)
}

func writeYAML(w io.Writer, v any) error {
	var enc = yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

type lexedToken struct {
	Kind  string `yaml:"kind"`
	Text  string `yaml:"text"`
	Name  string `yaml:"name,omitempty"`
	Flags string `yaml:"flags,omitempty"`
}

func lexed(tokens []scanner.Token) []lexedToken {
	var ret = make([]lexedToken, 0, len(tokens))
	for _, t := range tokens {
		var l = lexedToken{Kind: t.Typ.String(), Text: t.Lit}
		switch t.Typ {
		case scanner.OPERATOR:
			l.Name = t.Op.String()
		case scanner.RESERVED:
			l.Name = t.Reserved.String()
		case scanner.WORD:
			if t.Flags != 0 {
				l.Flags = t.Flags.String()
			}
		}
		ret = append(ret, l)
	}
	return ret
}

type classified struct {
	Char    string `yaml:"char"`
	Classes string `yaml:"classes"`
	Bits    int    `yaml:"bits"`
}

func classify(s string) []classified {
	var ret = make([]classified, 0, len(s))
	for i := 0; i < len(s); i++ {
		var f = charclass.Of(s[i])
		ret = append(ret, classified{
			Char:    fmt.Sprintf("%q", s[i]),
			Classes: f.String(),
			Bits:    bits.OnesCount16(uint16(f)),
		})
	}
	return ret
}
