package parser

import "github.com/fieldcarve/fieldcarve/expr"

// compile lowers one parsed exprNode into Stage0, appending nodes to g
// and returning the index of the node this subexpression compiled to.
func compile(g *expr.Graph, n *exprNode) (expr.NodeIndex, error) {
	switch {
	case n.Number != nil:
		return g.Const(*n.Number), nil

	case n.Ident != nil:
		switch *n.Ident {
		case "x":
			return g.VarNode(expr.VarX), nil
		case "y":
			return g.VarNode(expr.VarY), nil
		case "z":
			return g.VarNode(expr.VarZ), nil
		default:
			return 0, &identifierError{name: *n.Ident}
		}

	default:
		return compileCall(g, n.Call)
	}
}

// identifierError names the offending identifier while still unwrapping
// to ErrUnknownIdentifier for errors.Is callers.
type identifierError struct{ name string }

func (e *identifierError) Error() string { return ErrUnknownIdentifier.Error() + ": " + e.name }
func (e *identifierError) Unwrap() error { return ErrUnknownIdentifier }

type operatorError struct{ name string }

func (e *operatorError) Error() string { return ErrUnknownOperator.Error() + ": " + e.name }
func (e *operatorError) Unwrap() error { return ErrUnknownOperator }

func compileCall(g *expr.Graph, c *callNode) (expr.NodeIndex, error) {
	args := make([]expr.NodeIndex, len(c.Args))
	for i, a := range c.Args {
		idx, err := compile(g, a)
		if err != nil {
			return 0, err
		}
		args[i] = idx
	}

	unary := func(f func(expr.NodeIndex) expr.NodeIndex) (expr.NodeIndex, error) {
		if len(args) != 1 {
			return 0, &ArityError{Op: c.Op, Want: 1, Got: len(args)}
		}
		return f(args[0]), nil
	}
	binary := func(f func(a, b expr.NodeIndex) expr.NodeIndex) (expr.NodeIndex, error) {
		if len(args) != 2 {
			return 0, &ArityError{Op: c.Op, Want: 2, Got: len(args)}
		}
		return f(args[0], args[1]), nil
	}
	choice := func(f func(a, b expr.NodeIndex) (expr.NodeIndex, expr.ChoiceIndex)) (expr.NodeIndex, error) {
		if len(args) != 2 {
			return 0, &ArityError{Op: c.Op, Want: 2, Got: len(args)}
		}
		idx, _ := f(args[0], args[1])
		return idx, nil
	}

	switch c.Op {
	case "neg":
		return unary(g.Neg)
	case "abs":
		return unary(g.Abs)
	case "recip":
		return unary(g.Recip)
	case "sqrt":
		return unary(g.Sqrt)
	case "square":
		return unary(g.Square)
	case "sin":
		return unary(g.Sin)
	case "cos":
		return unary(g.Cos)
	case "add":
		return binary(g.Add)
	case "sub":
		return binary(g.Sub)
	case "mul":
		return binary(g.Mul)
	case "div":
		return binary(g.Div)
	case "min":
		return choice(g.Min)
	case "max":
		return choice(g.Max)
	default:
		return 0, &operatorError{name: c.Op}
	}
}
