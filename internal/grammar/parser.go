package grammar

import "fmt"

// ParseError is returned when a line does not match the grammar. Its
// message is the parser's diagnostic, which the REPL driver prints
// verbatim on a failed parse (spec.md §4.7).
type ParseError struct {
	msg string
}

func (e *ParseError) Error() string { return e.msg }

// Parser turns one line of input text into the Node tree value/reader
// consumes. It implements the six productions named in spec.md §6:
// number, symbol, sexpr, qexpr, expr, and the start symbol (here named
// "lithp", matching grammar.txt).
type Parser struct{}

// NewParser creates a Parser. There is no per-call state to configure: the
// production rules are fixed by spec.md, not data-driven from grammar.txt
// (see Grammar.validate for what grammar.txt is actually used for).
func NewParser() *Parser { return &Parser{} }

// Parse parses one line of input and returns its root node, tagged ">".
func (p *Parser) Parse(line string) (*Node, error) {
	lx := newLexer(line)
	root := &Node{Tag: RootTag}

	for {
		ws := lx.skipSpace()
		if ws {
			root.Children = append(root.Children, &Node{Tag: RegexTag})
		}
		tok, err := lx.next()
		if err != nil {
			return nil, &ParseError{msg: err.Error()}
		}
		if tok.kind == tokEOF {
			break
		}
		lx.pos = tok.pos // rewind so parseExpr can consume it uniformly
		child, err := p.parseExpr(lx)
		if err != nil {
			return nil, err
		}
		root.Children = append(root.Children, child)
	}
	return root, nil
}

func (p *Parser) parseExpr(lx *lexer) (*Node, error) {
	tok, err := lx.next()
	if err != nil {
		return nil, &ParseError{msg: err.Error()}
	}
	switch tok.kind {
	case tokNumber:
		return &Node{Tag: "number", Contents: tok.text}, nil
	case tokSymbol:
		return &Node{Tag: "symbol", Contents: tok.text}, nil
	case tokLParen:
		return p.parseBracketed(lx, tok, "sexpr", "(", ")")
	case tokLBrace:
		return p.parseBracketed(lx, tok, "qexpr", "{", "}")
	case tokEOF:
		return nil, &ParseError{msg: "unexpected end of input, expected an expression"}
	default:
		return nil, &ParseError{msg: fmt.Sprintf(
			"unexpected %v at position %d, expected a number, symbol, '(' or '{'", tok.kind, tok.pos)}
	}
}

// parseBracketed parses the common shape of sexpr/qexpr: an open bracket,
// zero or more expressions (each possibly preceded by whitespace, recorded
// as a "regex" node to mirror the original grammar engine's implicit
// whitespace rule), and a matching close bracket.
func (p *Parser) parseBracketed(lx *lexer, open token, tag, openLit, closeLit string) (*Node, error) {
	node := &Node{Tag: tag, Children: []*Node{{Tag: "char", Contents: openLit}}}
	for {
		ws := lx.skipSpace()
		if ws {
			node.Children = append(node.Children, &Node{Tag: RegexTag})
		}
		if lx.pos >= len(lx.input) {
			return nil, &ParseError{msg: fmt.Sprintf(
				"unexpected end of input, expected '%s' to close '%s' opened at position %d",
				closeLit, openLit, open.pos)}
		}
		if lx.input[lx.pos] == rune(closeLit[0]) {
			lx.pos++
			node.Children = append(node.Children, &Node{Tag: "char", Contents: closeLit})
			return node, nil
		}
		child, err := p.parseExpr(lx)
		if err != nil {
			return nil, err
		}
		node.Children = append(node.Children, child)
	}
}
