// Command lithp is the interactive interpreter's entry point (spec.md §6).
// Shaped after sx's repo-level cmd/main.go (a thin main that wires a
// reader, a root environment, and a repl loop together) and
// ardnew-aenv/cli.CLI's use of github.com/alecthomas/kong for flag parsing,
// reduced to the handful of flags this interpreter actually needs.
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"go.lithp.dev/lithp/internal/grammar"
	"go.lithp.dev/lithp/internal/logging"
	"go.lithp.dev/lithp/internal/repl"
)

// CLI is the top-level set of flags the interpreter accepts.
type CLI struct {
	Grammar string `default:"grammar.txt" help:"Path to the grammar file describing the input language." name:"grammar"`
	Debug   bool   `help:"Enable debug-level diagnostic logging." name:"debug"`
	Prompt  string `default:"lithp> " help:"REPL prompt string." name:"prompt"`
}

func main() {
	var cli CLI
	kong.Parse(&cli,
		kong.Name("lithp"),
		kong.Description("An interactive interpreter for a small Lisp-family expression language."),
		kong.UsageOnError(),
	)

	log := logging.New(os.Stderr, cli.Debug)

	g, err := grammar.Load(cli.Grammar)
	if err != nil {
		log.Error("failed to load grammar", "path", cli.Grammar, "error", err)
		os.Exit(1)
	}

	fmt.Printf("Lithp Version %s\n", repl.Version)
	fmt.Println("Press Ctrl+d to Exit\n")

	env := repl.RootEnv()
	if err := repl.Run(g, env, repl.Options{
		In:     os.Stdin,
		Out:    os.Stdout,
		Prompt: cli.Prompt,
		Log:    log,
	}); err != nil {
		log.Error("repl exited with error", "error", err)
		os.Exit(1)
	}
}
