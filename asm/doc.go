// Package asm implements the parser and assembler for the asmbunny language.
//
// An asmbunny program is one instruction per line. Each instruction is a
// mnemonic followed by one or two operands, where an operand is either a
// signed integer literal or a register name:
//
//	cpy <src> <dst>
//	inc <reg>
//	dec <reg>
//	jnz <cond> <offset>
//	tgl <offset>
//
// Jump and toggle offsets are relative to the executing instruction. The
// 'tgl' instruction is only recognized by the toggle dialect.
//
// The assembler additionally supports compile-time $(...) expressions,
// evaluated with Starlark before the line is tokenized.
package asm
