// Package repl implements the interactive read-eval-print loop (spec.md
// §6, C7). Shaped after sx's cmd/main.go repl() loop (prompt, read, parse,
// execute, print-or-report, repeat on error instead of aborting) and its
// registration-table pattern for wiring builtins into the root
// environment, adapted to read lines via github.com/chzyer/readline
// instead of an s-expression reader, and to spec.md's errors-as-values
// model instead of Go's (object, error) return convention.
package repl

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/chzyer/readline"

	"go.lithp.dev/lithp/internal/grammar"
	"go.lithp.dev/lithp/value"
	"go.lithp.dev/lithp/value/builtin"
	"go.lithp.dev/lithp/value/eval"
	"go.lithp.dev/lithp/value/reader"
)

// Version is the banner string printed at startup.
const Version = "0.1.0"

// registry is the (name, implementation) registration table the root
// environment is built from, mirroring sx's builtinsA/syntaxes tables in
// cmd/main.go.
var registry = []struct {
	name string
	fn   value.BuiltinFn
}{
	{"list", builtin.List},
	{"head", builtin.Head},
	{"tail", builtin.Tail},
	{"join", builtin.Join},
	{"cons", builtin.Cons},
	{"len", builtin.Len},
	{"eval", eval.EvalBuiltin},
	{"+", builtin.Add},
	{"-", builtin.Sub},
	{"*", builtin.Mul},
	{"/", builtin.Div},
	{"def", builtin.Def},
	{"=", builtin.Put},
	{"\\", builtin.Lambda},
}

// RootEnv builds the global environment with every builtin bound under its
// registered name (spec.md §4.4).
func RootEnv() *value.Env {
	root := value.MakeRootEnv()
	for _, reg := range registry {
		root.Def(value.Symbol(reg.name), value.MakeBuiltin(reg.name, reg.fn))
	}
	return root
}

// Options configures a Run invocation.
type Options struct {
	In     io.Reader
	Out    io.Writer
	Prompt string
	Log    *slog.Logger
}

// Run drives the REPL: read a line, parse it with grammar.Parser's fixed
// productions, lift the result into a value, evaluate it in env, and print
// the result — looping until EOF (spec.md §6). g is not consulted while
// parsing. A parse or evaluation error is reported and the loop continues;
// it never aborts the session.
func Run(g *grammar.Grammar, env *value.Env, opts Options) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          opts.Prompt,
		Stdin:           io.NopCloser(opts.In),
		Stdout:          opts.Out,
		HistoryLimit:    1000,
		InterruptPrompt: "^C",
		EOFPrompt:       "",
	})
	if err != nil {
		return fmt.Errorf("initialize line editor: %w", err)
	}
	defer rl.Close()

	parser := grammar.NewParser()
	for {
		line, err := rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				continue
			}
			if err == io.EOF {
				return nil
			}
			return err
		}
		if line == "" {
			continue
		}

		node, perr := parser.Parse(line)
		if perr != nil {
			fmt.Fprintln(opts.Out, perr)
			continue
		}

		obj := reader.Read(node)
		result := eval.Eval(env, obj)
		value.Println(opts.Out, result)
	}
}
