package parser

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// fieldLexer tokenizes the s-expression grammar: signed float literals,
// bare identifiers (operator names and x/y/z), and parens.
var fieldLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		{"Float", `-?[0-9]+(\.[0-9]+)?`, nil},
		{"Ident", `[a-zA-Z_][a-zA-Z0-9_]*`, nil},
		{"Punctuation", `[()]`, nil},
		{"Whitespace", `[ \t\r\n]+`, nil},
	},
})

// exprNode is one grammar production: a numeric literal, a bare identifier
// (a variable reference), or a parenthesized operator call.
type exprNode struct {
	Number *float64 `  @Float`
	Ident  *string  `| @Ident`
	Call   *callNode `| "(" @@ ")"`
}

// callNode is `(op arg...)`: an operator name followed by one or more
// operand expressions.
type callNode struct {
	Op   string       `@Ident`
	Args []*exprNode `@@+`
}
