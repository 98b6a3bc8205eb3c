package tape

import "github.com/fieldcarve/fieldcarve/expr"

// Simplify specializes t under decided, a ChoiceBitmap produced by an
// interval evaluator's EvalInterval pass. A min/max instruction whose
// choice is WinnerLeft or WinnerRight is replaced by a direct reference
// to its winning operand; WinnerUndecided or WinnerEither leave the
// instruction in place. The result is then dead-code eliminated: any
// instruction not on the path from Out is dropped.
//
// Because t.Instrs is topologically ordered, all three passes run
// straight through the slice with no recursion:
//
//  1. resolve (forward): for each instruction, compute the Reg it
//     ultimately evaluates to once decided choices are substituted.
//     Since an instruction's operands are always earlier in the slice,
//     their resolved Reg is already known by the time we reach it.
//  2. mark (backward): starting from resolved[t.Out], sweep from the
//     last instruction to the first, marking an instruction kept if
//     some already-kept instruction resolves to it. Because a later
//     instruction can only reference earlier ones, a single backward
//     sweep sees every kept instruction's operands before it needs to
//     decide whether they too are kept.
//  3. compact (forward): build the output tape, renumbering kept
//     instructions' operands through resolved + a fresh remap table.
func Simplify(t *Tape, decided ChoiceBitmap) *Tape {
	n := len(t.Instrs)
	resolved := make([]Reg, n)

	for r := 0; r < n; r++ {
		instr := t.Instrs[r]
		resolved[r] = Reg(r)

		if !instr.Op.IsChoice() {
			continue
		}
		switch decided.Get(instr.Choice) {
		case WinnerLeft:
			resolved[r] = resolved[instr.X]
		case WinnerRight:
			resolved[r] = resolved[instr.Y]
		}
	}

	keep := make([]bool, n)
	keep[resolved[t.Out]] = true
	for r := n - 1; r >= 0; r-- {
		if !keep[r] {
			continue
		}
		instr := t.Instrs[r]
		if instr.Op.IsUnary() || instr.Op.IsBinary() || instr.Op.IsChoice() {
			keep[resolved[instr.X]] = true
		}
		if instr.Op.IsBinary() || instr.Op.IsChoice() {
			keep[resolved[instr.Y]] = true
		}
	}

	remap := make([]Reg, n)
	instrs := make([]Instr, 0, n)
	source := make([]expr.NodeIndex, 0, n)

	for r := 0; r < n; r++ {
		if !keep[r] {
			continue
		}
		instr := t.Instrs[r]
		out := Instr{Op: instr.Op, Imm: instr.Imm, VarSlot: instr.VarSlot, Choice: instr.Choice}
		if instr.Op.IsUnary() || instr.Op.IsBinary() || instr.Op.IsChoice() {
			out.X = remap[resolved[instr.X]]
		}
		if instr.Op.IsBinary() || instr.Op.IsChoice() {
			out.Y = remap[resolved[instr.Y]]
		}
		remap[r] = Reg(len(instrs))
		instrs = append(instrs, out)
		if r < len(t.source) {
			source = append(source, t.source[r])
		}
	}

	return &Tape{
		Instrs: instrs,
		Out:    remap[resolved[t.Out]],
		source: source,
	}
}
