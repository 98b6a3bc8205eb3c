package parser

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/alecthomas/participle/v2"
	"github.com/fatih/color"

	"github.com/fieldcarve/fieldcarve/expr"
)

var (
	builderOnce sync.Once
	builder     *participle.Parser[exprNode]
	builderErr  error
)

func buildParser() (*participle.Parser[exprNode], error) {
	builderOnce.Do(func() {
		builder, builderErr = participle.Build[exprNode](
			participle.Lexer(fieldLexer),
			participle.Elide("Whitespace"),
			participle.UseLookahead(3),
		)
	})
	return builder, builderErr
}

// Parse reads one s-expression field definition from r and compiles it
// into a finalized expr.Graph.
func Parse(r io.Reader) (*expr.Graph, error) {
	source, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("parser: read input: %w", err)
	}

	p, err := buildParser()
	if err != nil {
		return nil, fmt.Errorf("parser: build grammar: %w", err)
	}

	ast, err := p.ParseString("", string(source))
	if err != nil {
		return nil, err
	}

	g := expr.NewGraph()
	root, err := compile(g, ast)
	if err != nil {
		return nil, err
	}
	g.SetRoot(root)
	if err := g.Finalize(); err != nil {
		return nil, err
	}
	return g, nil
}

// FormatParseError renders a caret-pointing message for a participle
// syntax error against its original source text, for CLI display.
func FormatParseError(source string, err error) string {
	pe, ok := err.(participle.Error)
	if !ok {
		return color.RedString("error: %s", err)
	}

	pos := pe.Position()
	lines := strings.Split(source, "\n")
	if pos.Line <= 0 || pos.Line > len(lines) {
		return color.RedString("syntax error at unknown location: %s", err)
	}

	line := lines[pos.Line-1]
	caret := strings.Repeat(" ", pos.Column-1) + "^"

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", color.RedString("syntax error at line %d, column %d:", pos.Line, pos.Column))
	fmt.Fprintln(&b, line)
	fmt.Fprintln(&b, color.HiRedString(caret))
	fmt.Fprintf(&b, "-> %s\n", pe.Message())
	return b.String()
}
