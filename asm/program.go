package asm

import (
	"iter"
	"strings"
)

// Statement is a single assembled line of source.
type Statement struct {
	LineNo int    // Source line number, starting at 1.
	Text   string // Source text, after expression expansion.
	Instruction
}

// Program is an assembled asmbunny listing.
type Program struct {
	Statements []Statement
}

// Instructions returns a new copy of the program's instructions.
func (prog *Program) Instructions() (code []Instruction) {
	code = make([]Instruction, 0, len(prog.Statements))
	for _, st := range prog.Statements {
		code = append(code, st.Instruction)
	}

	return
}

// Debug returns the statement for an instruction index.
func (prog *Program) Debug(ip int64) (st *Statement) {
	if ip < 0 || ip >= int64(len(prog.Statements)) {
		return
	}

	return &prog.Statements[ip]
}

// All iterates over the instruction index and statement of each line.
func (prog *Program) All() iter.Seq2[int, Statement] {
	return func(yield func(ip int, st Statement) bool) {
		for ip, st := range prog.Statements {
			if !yield(ip, st) {
				return
			}
		}
	}
}

// String returns the program in canonical assembler syntax.
func (prog *Program) String() string {
	var sb strings.Builder
	for _, st := range prog.Statements {
		sb.WriteString(st.Instruction.String())
		sb.WriteByte('\n')
	}

	return sb.String()
}
