// Package astdoc reads and writes command trees as YAML or TOML documents.
// Decoding goes through the ast constructors, so a document that decodes is
// a structurally valid tree.
package astdoc

import (
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/siadat/bashast/erroring"
)

// Doc is the document form of any command. Which fields are meaningful
// depends on Type; the rest must be left empty.
type Doc struct {
	Type      string        `yaml:"type" toml:"type"`
	Line      int           `yaml:"line,omitempty" toml:"line,omitempty"`
	Flags     string        `yaml:"flags,omitempty" toml:"flags,omitempty"`
	Redirects []RedirectDoc `yaml:"redirects,omitempty" toml:"redirects,omitempty"`

	// Simple, For, Select
	Words []WordDoc `yaml:"words,omitempty" toml:"words,omitempty"`
	// For, Select: "in" followed by no words. Without it an empty Words
	// means the list is omitted and "$@" is implied.
	EmptyList bool `yaml:"empty_list,omitempty" toml:"empty_list,omitempty"`
	// For, Select and FunctionDef take a word; Coproc uses its text.
	Name *WordDoc `yaml:"name,omitempty" toml:"name,omitempty"`

	// Connection
	First     *Doc   `yaml:"first,omitempty" toml:"first,omitempty"`
	Connector string `yaml:"connector,omitempty" toml:"connector,omitempty"`
	Second    *Doc   `yaml:"second,omitempty" toml:"second,omitempty"`

	// Case
	Subject *WordDoc    `yaml:"subject,omitempty" toml:"subject,omitempty"`
	Clauses []ClauseDoc `yaml:"clauses,omitempty" toml:"clauses,omitempty"`

	// While, Until, If
	Test *Doc `yaml:"test,omitempty" toml:"test,omitempty"`
	Then *Doc `yaml:"then,omitempty" toml:"then,omitempty"`
	Else *Doc `yaml:"else,omitempty" toml:"else,omitempty"`

	// For, Select, While, Until, ArithFor
	Action *Doc `yaml:"action,omitempty" toml:"action,omitempty"`
	// FunctionDef, Group, Subshell, Coproc
	Body       *Doc   `yaml:"body,omitempty" toml:"body,omitempty"`
	SourceFile string `yaml:"source_file,omitempty" toml:"source_file,omitempty"`

	// Arith, ArithFor
	Exp     []WordDoc `yaml:"exp,omitempty" toml:"exp,omitempty"`
	Init    []WordDoc `yaml:"init,omitempty" toml:"init,omitempty"`
	TestExp []WordDoc `yaml:"test_exp,omitempty" toml:"test_exp,omitempty"`
	Step    []WordDoc `yaml:"step,omitempty" toml:"step,omitempty"`

	// Cond
	Kind  string   `yaml:"kind,omitempty" toml:"kind,omitempty"`
	Op    *WordDoc `yaml:"op,omitempty" toml:"op,omitempty"`
	Left  *Doc     `yaml:"left,omitempty" toml:"left,omitempty"`
	Right *Doc     `yaml:"right,omitempty" toml:"right,omitempty"`
}

type WordDoc struct {
	Text  string `yaml:"text" toml:"text"`
	Flags string `yaml:"flags,omitempty" toml:"flags,omitempty"`
}

// UnmarshalYAML accepts a bare scalar as a word without flags.
func (w *WordDoc) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		*w = WordDoc{Text: value.Value}
		return nil
	}
	type plain WordDoc
	return value.Decode((*plain)(w))
}

func (w WordDoc) MarshalYAML() (interface{}, error) {
	if w.Flags == "" {
		return w.Text, nil
	}
	type plain WordDoc
	return plain(w), nil
}

// RedirecteeDoc holds exactly one of its fields.
type RedirecteeDoc struct {
	Fd    *int     `yaml:"fd,omitempty" toml:"fd"`
	Word  *WordDoc `yaml:"word,omitempty" toml:"word,omitempty"`
	BadFd string   `yaml:"bad_fd,omitempty" toml:"bad_fd,omitempty"`
}

type RedirectDoc struct {
	Redirector  RedirecteeDoc `yaml:"redirector" toml:"redirector"`
	Flags       string        `yaml:"flags,omitempty" toml:"flags,omitempty"`
	Instruction string        `yaml:"instruction" toml:"instruction"`
	Redirectee  RedirecteeDoc `yaml:"redirectee" toml:"redirectee"`
	HereDocEOF  *string       `yaml:"heredoc_eof,omitempty" toml:"heredoc_eof,omitempty"`
}

type ClauseDoc struct {
	Patterns []WordDoc `yaml:"patterns" toml:"patterns"`
	Action   *Doc      `yaml:"action,omitempty" toml:"action,omitempty"`
	Flags    string    `yaml:"flags,omitempty" toml:"flags,omitempty"`
}

type Format int

const (
	YAML Format = iota
	TOML
)

func (f Format) String() string {
	switch f {
	case YAML:
		return "yaml"
	case TOML:
		return "toml"
	default:
		return "unknown"
	}
}

func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "yaml", "yml":
		return YAML, nil
	case "toml":
		return TOML, nil
	}
	return 0, erroring.VocabularyError{Table: "Format", Raw: s}
}

// FormatFromPath picks the format from a file extension, defaulting to YAML.
func FormatFromPath(path string) Format {
	if f, err := ParseFormat(strings.TrimPrefix(filepath.Ext(path), ".")); err == nil {
		return f
	}
	return YAML
}
