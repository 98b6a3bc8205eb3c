package parser_test

import (
	"strings"
	"testing"

	"github.com/fieldcarve/fieldcarve/expr"
	"github.com/fieldcarve/fieldcarve/parser"
	"github.com/stretchr/testify/require"
)

func TestParseSphereExpression(t *testing.T) {
	g, err := parser.Parse(strings.NewReader(`(sub (add (add (square x) (square y)) (square z)) 0.25)`))
	require.NoError(t, err)
	require.True(t, g.Finalized())

	root, ok := g.Root()
	require.True(t, ok)
	require.Equal(t, expr.OpSub, g.Node(root).Op)
}

func TestParseMinOfHalfPlanesAllocatesOneChoice(t *testing.T) {
	g, err := parser.Parse(strings.NewReader(`(min x y)`))
	require.NoError(t, err)
	require.Equal(t, 1, g.NumChoices())
}

func TestParseRejectsUnknownIdentifier(t *testing.T) {
	_, err := parser.Parse(strings.NewReader(`(add x w)`))
	require.ErrorIs(t, err, parser.ErrUnknownIdentifier)
}

func TestParseRejectsUnknownOperator(t *testing.T) {
	_, err := parser.Parse(strings.NewReader(`(frobnicate x y)`))
	require.ErrorIs(t, err, parser.ErrUnknownOperator)
}

func TestParseRejectsWrongArity(t *testing.T) {
	_, err := parser.Parse(strings.NewReader(`(add x)`))
	var arityErr *parser.ArityError
	require.ErrorAs(t, err, &arityErr)
	require.Equal(t, "add", arityErr.Op)
	require.Equal(t, 2, arityErr.Want)
	require.Equal(t, 1, arityErr.Got)
}

func TestParseRejectsMalformedSyntax(t *testing.T) {
	_, err := parser.Parse(strings.NewReader(`(add x y`))
	require.Error(t, err)

	msg := parser.FormatParseError(`(add x y`, err)
	require.Contains(t, msg, "syntax error")
}
