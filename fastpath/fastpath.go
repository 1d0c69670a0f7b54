// Package fastpath provides machine patches that replace common asmbunny
// loops with their closed form.
//
// Every patch checks the loop's preconditions against the live machine
// state and declines when they do not hold, so a patched run always ends
// in the same state as an unpatched run, only in fewer ticks.
package fastpath

import (
	"github.com/ezrec/asmbunny/asm"
	"github.com/ezrec/asmbunny/machine"
)

// Default is the set of all patches in this package.
var Default = Chain(Multiply, Add)

// Chain applies the first patch in the list that accepts the machine state.
func Chain(patches ...machine.Patch) machine.Patch {
	return func(m *machine.Machine) (running bool, ok bool) {
		for _, patch := range patches {
			if patch == nil {
				continue
			}
			running, ok = patch(m)
			if ok {
				return
			}
		}
		return
	}
}

// window fetches n instructions starting at the instruction pointer.
func window(m *machine.Machine, n int) (code []asm.Instruction, ok bool) {
	code = make([]asm.Instruction, n)
	for i := range n {
		code[i], ok = m.Fetch(m.Ip + int64(i))
		if !ok {
			return nil, false
		}
	}

	return
}

// distinct returns true if all operands are different registers.
func distinct(ops ...asm.Operand) bool {
	for i, op := range ops {
		if !op.IsRegister() {
			return false
		}
		for _, other := range ops[:i] {
			if op == other {
				return false
			}
		}
	}

	return true
}

// addLoop matches either ordering of:
//
//	inc A
//	dec C
//	jnz C -2
func addLoop(code []asm.Instruction) (a, c asm.Operand, ok bool) {
	if len(code) < 3 {
		return
	}

	switch {
	case code[0].Op == asm.OP_INC && code[1].Op == asm.OP_DEC:
		a, c = code[0].X, code[1].X
	case code[0].Op == asm.OP_DEC && code[1].Op == asm.OP_INC:
		a, c = code[1].X, code[0].X
	default:
		return
	}

	jnz := code[2]
	if jnz.Op != asm.OP_JNZ || jnz.X != c || jnz.Y != asm.Imm(-2) {
		return
	}

	ok = distinct(a, c)
	return
}

// Add collapses a counted increment loop into an addition:
//
//	inc A       ; A += C
//	dec C       ; C = 0
//	jnz C -2
//
// The loop counter C must be positive.
func Add(m *machine.Machine) (running bool, ok bool) {
	code, ok := window(m, 3)
	if !ok {
		return
	}

	a, c, ok := addLoop(code)
	if !ok {
		return
	}

	count := m.Get(c.Register)
	if count <= 0 {
		return false, false
	}

	m.Set(a.Register, m.Get(a.Register)+count)
	m.Set(c.Register, 0)
	m.Ip += 3

	return true, true
}

// Multiply collapses a nested counted loop into a multiplication:
//
//	cpy B C     ; A += B * D
//	inc A       ; C = 0
//	dec C       ; D = 0
//	jnz C -2
//	dec D
//	jnz D -5
//
// B and the outer counter D must be positive, and B may not be one of the
// modified registers.
func Multiply(m *machine.Machine) (running bool, ok bool) {
	code, ok := window(m, 6)
	if !ok {
		return
	}

	cpy, dec, jnz := code[0], code[4], code[5]
	if cpy.Op != asm.OP_CPY || dec.Op != asm.OP_DEC || jnz.Op != asm.OP_JNZ {
		return false, false
	}

	a, c, ok := addLoop(code[1:4])
	if !ok {
		return
	}

	b, d := cpy.X, dec.X
	if cpy.Y != c || jnz.X != d || jnz.Y != asm.Imm(-5) || !distinct(a, c, d) {
		return false, false
	}

	if b == a || b == c || b == d {
		return false, false
	}

	count, times := m.Value(b), m.Get(d.Register)
	if count <= 0 || times <= 0 {
		return false, false
	}

	m.Set(a.Register, m.Get(a.Register)+count*times)
	m.Set(c.Register, 0)
	m.Set(d.Register, 0)
	m.Ip += 6

	return true, true
}
