package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/siadat/bashast/astdoc"
	"github.com/siadat/bashast/erroring"
	"github.com/siadat/bashast/fumt"
	"github.com/siadat/bashast/syntax/ast"
	"github.com/siadat/bashast/syntax/scanner"
)

var fileFlag = &cli.StringFlag{
	Name:     "file",
	Aliases:  []string{"f"},
	Usage:    "path to a YAML or TOML command tree, - for stdin",
	Required: true,
}

var formatFlag = &cli.StringFlag{
	Name:  "format",
	Usage: "document format: yaml or toml (default: from the file extension)",
}

func main() {
	var app = &cli.App{
		Name:  "shast",
		Usage: "inspect and print shell command trees",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name: "debug",
			},
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "disable colored diagnostics",
			},
		},
		Before: func(cmdCtx *cli.Context) error {
			if cmdCtx.Bool("no-color") {
				color.NoColor = true
			}
			if cmdCtx.Bool("debug") {
				erroring.TraceOutput = os.Stderr
			}
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:  "fmt",
				Usage: "print a command tree as shell source",
				Flags: []cli.Flag{
					fileFlag,
					formatFlag,
					&cli.StringFlag{
						Name:  "indent",
						Usage: "indentation for one nesting level",
						Value: "\t",
					},
				},
				Action: func(cmdCtx *cli.Context) error {
					var cmd, err = readTree(cmdCtx)
					if err != nil {
						return err
					}

					var formater = fumt.NewFormater()
					formater.SetDebug(cmdCtx.Bool("debug"))
					formater.SetIndent(cmdCtx.String("indent"))
					return formater.Format(cmd, os.Stdout)
				},
			},
			{
				Name:  "check",
				Usage: "validate a command tree document",
				Flags: []cli.Flag{fileFlag, formatFlag},
				Action: func(cmdCtx *cli.Context) error {
					var cmd, err = readTree(cmdCtx)
					if err != nil {
						return err
					}

					var nodes = 0
					ast.Walk(cmd, func(ast.Node) bool {
						nodes++
						return true
					})
					color.New(color.FgGreen).Fprintf(os.Stdout, "ok")
					fmt.Fprintf(os.Stdout, ": %s, %d nodes\n", cmd.Type(), nodes)
					return nil
				},
			},
			{
				Name:  "convert",
				Usage: "rewrite a command tree document in another format",
				Flags: []cli.Flag{
					fileFlag,
					formatFlag,
					&cli.StringFlag{
						Name:     "to",
						Usage:    "output format: yaml or toml",
						Required: true,
					},
				},
				Action: func(cmdCtx *cli.Context) error {
					var cmd, err = readTree(cmdCtx)
					if err != nil {
						return err
					}
					var to, parseErr = astdoc.ParseFormat(cmdCtx.String("to"))
					if parseErr != nil {
						return parseErr
					}
					return astdoc.Encode(os.Stdout, cmd, to)
				},
			},
			{
				Name:  "tables",
				Usage: "dump the vocabulary tables as YAML",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "table",
						Usage: "only dump the named table, e.g. WordFlags",
					},
				},
				Action: func(cmdCtx *cli.Context) error {
					return writeTables(os.Stdout, cmdCtx.String("table"))
				},
			},
			{
				Name:      "lex",
				Usage:     "split shell source into words, operators and reserved words",
				ArgsUsage: "[source]",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "file",
						Aliases: []string{"f"},
						Usage:   "read the source from a file instead of the arguments",
					},
					&cli.BoolFlag{
						Name:  "blanks",
						Usage: "keep blank and comment tokens",
					},
				},
				Action: func(cmdCtx *cli.Context) error {
					var src = strings.Join(cmdCtx.Args().Slice(), " ")
					if path := cmdCtx.String("file"); path != "" {
						var byts, readErr = os.ReadFile(path)
						if readErr != nil {
							return readErr
						}
						src = string(byts)
					}

					var s = scanner.NewScanner(strings.NewReader(src))
					s.SetDebug(cmdCtx.Bool("debug"))
					s.SetSkipWhitespace(!cmdCtx.Bool("blanks"))
					var tokens, err = s.All()
					if err != nil {
						var scanErr scanner.Error
						if errors.As(err, &scanErr) {
							fmt.Fprintln(os.Stderr, s.MarkAt(scanErr.Pos))
						}
						return err
					}
					return writeYAML(os.Stdout, lexed(tokens))
				},
			},
			{
				Name:      "classify",
				Usage:     "show the character classes of every byte of the arguments",
				ArgsUsage: "text...",
				Action: func(cmdCtx *cli.Context) error {
					if cmdCtx.NArg() == 0 {
						return fmt.Errorf("classify needs at least one argument")
					}
					return writeYAML(os.Stdout, classify(strings.Join(cmdCtx.Args().Slice(), " ")))
				},
			},
		},
	}
	if err := app.Run(os.Args); err != nil {
		color.New(color.FgRed, color.Bold).Fprintf(os.Stderr, "error: ")
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
}

func readTree(cmdCtx *cli.Context) (ast.Command, error) {
	var path = cmdCtx.String("file")
	var byts []byte
	var readErr error
	if path == "-" {
		byts, readErr = io.ReadAll(os.Stdin)
	} else {
		byts, readErr = os.ReadFile(path)
	}
	if readErr != nil {
		return nil, readErr
	}

	var format = astdoc.FormatFromPath(path)
	if name := cmdCtx.String("format"); name != "" {
		var parsed, err = astdoc.ParseFormat(name)
		if err != nil {
			return nil, err
		}
		format = parsed
	}
	if cmdCtx.Bool("debug") {
		color.New(color.FgYellow).Fprintf(os.Stderr, "[debug] reading %s as %s\n", path, format)
	}
	return astdoc.Decode(bytes.NewReader(byts), format)
}
