package grammar_test

import (
	"os"
	"path/filepath"
	"testing"

	"go.lithp.dev/lithp/internal/grammar"
)

func TestLoadValidGrammar(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "grammar.txt")
	src := "number : /-?[0-9]+/ ;\n" +
		"symbol : /[a-zA-Z0-9_+\\-*\\/\\\\=<>!&]+/ ;\n" +
		"sexpr  : '(' <expr>* ')' ;\n" +
		"qexpr  : '{' <expr>* '}' ;\n" +
		"expr   : <number> | <symbol> | <sexpr> | <qexpr> ;\n" +
		"lithp  : /^/ <expr>* /$/ ;\n"
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := grammar.Load(path); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := grammar.Load(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Error("expected an error for a missing grammar file")
	}
}

func TestLoadIncompleteGrammar(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "grammar.txt")
	if err := os.WriteFile(path, []byte("number : /-?[0-9]+/ ;\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := grammar.Load(path); err == nil {
		t.Error("expected an error for a grammar missing productions")
	}
}
