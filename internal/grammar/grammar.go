package grammar

import (
	"fmt"
	"os"
	"strings"
)

// requiredProductions are the six named productions spec.md §6 requires
// grammar.txt to define: number, symbol, sexpr, qexpr, expr, and the start
// symbol (named for the language, "lithp").
var requiredProductions = []string{"number", "symbol", "sexpr", "qexpr", "expr", "lithp"}

// Grammar is the loaded, validated grammar.txt source. The actual
// productions are fixed in Parser (spec.md treats the grammar engine as an
// external collaborator whose contract, not whose implementation, matters
// here); Load exists so that a missing or malformed grammar.txt fails
// startup exactly as spec.md §6 requires ("non-zero [exit code] if the
// grammar file cannot be loaded at startup").
type Grammar struct {
	source string
}

// Load reads and validates the grammar file at path.
func Load(path string) (*Grammar, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load grammar: %w", err)
	}
	g := &Grammar{source: string(data)}
	if err := g.validate(); err != nil {
		return nil, fmt.Errorf("load grammar: %w", err)
	}
	return g, nil
}

func (g *Grammar) validate() error {
	var missing []string
	for _, name := range requiredProductions {
		if !hasProduction(g.source, name) {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("grammar.txt is missing production(s): %s", strings.Join(missing, ", "))
	}
	return nil
}

// hasProduction reports whether the grammar source defines a production
// named name, i.e. contains a line of the form "name : ...".
func hasProduction(source, name string) bool {
	for _, line := range strings.Split(source, "\n") {
		line = strings.TrimSpace(line)
		field, _, found := strings.Cut(line, ":")
		if found && strings.TrimSpace(field) == name {
			return true
		}
	}
	return false
}
