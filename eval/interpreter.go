package eval

import (
	"math"

	"github.com/fieldcarve/fieldcarve/expr"
	"github.com/fieldcarve/fieldcarve/tape"
)

// Interpreter is a tape-interpreting Backend bound to a single tape.Tape. It
// evaluates by running straight through the tape's register file in
// order, since every instruction's operands are already at smaller
// register indices.
type Interpreter struct {
	tape *tape.Tape
}

// NewInterpreter binds t to a new Interpreter.
func NewInterpreter(t *tape.Tape) (*Interpreter, error) {
	if t == nil {
		return nil, ErrNilTape
	}
	return &Interpreter{tape: t}, nil
}

var _ Backend = (*Interpreter)(nil)

func (in *Interpreter) varValue(slot expr.Var, x, y, z float64) float64 {
	switch slot {
	case expr.VarX:
		return x
	case expr.VarY:
		return y
	case expr.VarZ:
		return z
	default:
		return 0
	}
}

// EvalFloat evaluates the tape at a single point.
func (in *Interpreter) EvalFloat(x, y, z float64) (float64, error) {
	regs := make([]float64, in.tape.Len())
	for r, instr := range in.tape.Instrs {
		var v float64
		switch instr.Op {
		case expr.OpConst:
			v = instr.Imm
		case expr.OpVar:
			v = in.varValue(instr.VarSlot, x, y, z)
		case expr.OpNeg:
			v = -regs[instr.X]
		case expr.OpAbs:
			v = math.Abs(regs[instr.X])
		case expr.OpRecip:
			v = 1 / regs[instr.X]
		case expr.OpSqrt:
			v = math.Sqrt(regs[instr.X])
		case expr.OpSquare:
			v = regs[instr.X] * regs[instr.X]
		case expr.OpSin:
			v = math.Sin(regs[instr.X])
		case expr.OpCos:
			v = math.Cos(regs[instr.X])
		case expr.OpAdd:
			v = regs[instr.X] + regs[instr.Y]
		case expr.OpSub:
			v = regs[instr.X] - regs[instr.Y]
		case expr.OpMul:
			v = regs[instr.X] * regs[instr.Y]
		case expr.OpDiv:
			v = regs[instr.X] / regs[instr.Y]
		case expr.OpMin:
			v = math.Min(regs[instr.X], regs[instr.Y])
		case expr.OpMax:
			v = math.Max(regs[instr.X], regs[instr.Y])
		}
		regs[r] = v
	}
	return regs[in.tape.Out], nil
}

// EvalArray evaluates the tape at ArraySize points, one register file
// pass per lane's instruction rather than one full pass per point — the
// instruction dispatch is amortized across the batch.
func (in *Interpreter) EvalArray(x, y, z [ArraySize]float64) ([ArraySize]float64, error) {
	var regs [ArraySize][]float64
	n := in.tape.Len()
	for i := range regs {
		regs[i] = make([]float64, n)
	}

	for r, instr := range in.tape.Instrs {
		for lane := 0; lane < ArraySize; lane++ {
			var v float64
			switch instr.Op {
			case expr.OpConst:
				v = instr.Imm
			case expr.OpVar:
				v = in.varValue(instr.VarSlot, x[lane], y[lane], z[lane])
			case expr.OpNeg:
				v = -regs[lane][instr.X]
			case expr.OpAbs:
				v = math.Abs(regs[lane][instr.X])
			case expr.OpRecip:
				v = 1 / regs[lane][instr.X]
			case expr.OpSqrt:
				v = math.Sqrt(regs[lane][instr.X])
			case expr.OpSquare:
				v = regs[lane][instr.X] * regs[lane][instr.X]
			case expr.OpSin:
				v = math.Sin(regs[lane][instr.X])
			case expr.OpCos:
				v = math.Cos(regs[lane][instr.X])
			case expr.OpAdd:
				v = regs[lane][instr.X] + regs[lane][instr.Y]
			case expr.OpSub:
				v = regs[lane][instr.X] - regs[lane][instr.Y]
			case expr.OpMul:
				v = regs[lane][instr.X] * regs[lane][instr.Y]
			case expr.OpDiv:
				v = regs[lane][instr.X] / regs[lane][instr.Y]
			case expr.OpMin:
				v = math.Min(regs[lane][instr.X], regs[lane][instr.Y])
			case expr.OpMax:
				v = math.Max(regs[lane][instr.X], regs[lane][instr.Y])
			}
			regs[lane][r] = v
		}
	}

	var out [ArraySize]float64
	for lane := 0; lane < ArraySize; lane++ {
		out[lane] = regs[lane][in.tape.Out]
	}
	return out, nil
}

// EvalInterval evaluates the tape over a box, recording into choices the
// dominance verdict of every min/max instruction encountered.
func (in *Interpreter) EvalInterval(x, y, z Interval, choices tape.ChoiceBitmap) (Interval, error) {
	regs := make([]Interval, in.tape.Len())
	for r, instr := range in.tape.Instrs {
		var v Interval
		switch instr.Op {
		case expr.OpConst:
			v = Point(instr.Imm)
		case expr.OpVar:
			switch instr.VarSlot {
			case expr.VarX:
				v = x
			case expr.VarY:
				v = y
			case expr.VarZ:
				v = z
			}
		case expr.OpNeg:
			v = regs[instr.X].Neg()
		case expr.OpAbs:
			v = regs[instr.X].Abs()
		case expr.OpRecip:
			v = regs[instr.X].Recip()
		case expr.OpSqrt:
			v = regs[instr.X].Sqrt()
		case expr.OpSquare:
			v = regs[instr.X].Square()
		case expr.OpSin:
			v = regs[instr.X].Sin()
		case expr.OpCos:
			v = regs[instr.X].Cos()
		case expr.OpAdd:
			v = regs[instr.X].Add(regs[instr.Y])
		case expr.OpSub:
			v = regs[instr.X].Sub(regs[instr.Y])
		case expr.OpMul:
			v = regs[instr.X].Mul(regs[instr.Y])
		case expr.OpDiv:
			v = regs[instr.X].Div(regs[instr.Y])
		case expr.OpMin:
			var winner tape.Winner
			v, winner = regs[instr.X].Min(regs[instr.Y])
			choices.Set(instr.Choice, winner)
		case expr.OpMax:
			var winner tape.Winner
			v, winner = regs[instr.X].Max(regs[instr.Y])
			choices.Set(instr.Choice, winner)
		}
		regs[r] = v
	}
	return regs[in.tape.Out], nil
}

// Simplify specializes the bound tape under choices and returns a fresh
// Interpreter bound to the result.
func (in *Interpreter) Simplify(choices tape.ChoiceBitmap) (Backend, *tape.Tape, error) {
	simplified := tape.Simplify(in.tape, choices)
	next, err := NewInterpreter(simplified)
	if err != nil {
		return nil, nil, err
	}
	return next, simplified, nil
}
