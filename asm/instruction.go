package asm

import (
	"strconv"
)

// Op is an instruction mnemonic.
type Op int

//go:generate go tool stringer -linecomment -type=Op,Dialect -output=op_string.go
const (
	OP_CPY = Op(0) // cpy
	OP_INC = Op(1) // inc
	OP_DEC = Op(2) // dec
	OP_JNZ = Op(3) // jnz
	OP_TGL = Op(4) // tgl
)

// Arity returns the number of operands the op takes.
func (op Op) Arity() int {
	switch op {
	case OP_CPY, OP_JNZ:
		return 2
	default:
		return 1
	}
}

// Dialect selects the instruction repertoire accepted by the parser.
type Dialect int

const (
	DIALECT_TOGGLE = Dialect(0) // toggle
	DIALECT_BASIC  = Dialect(1) // basic
)

// ParseDialect looks up a dialect by name.
func ParseDialect(name string) (dialect Dialect, err error) {
	switch name {
	case DIALECT_TOGGLE.String():
		dialect = DIALECT_TOGGLE
	case DIALECT_BASIC.String():
		dialect = DIALECT_BASIC
	default:
		err = ErrDialectInvalid
	}

	return
}

// Operand is either an immediate value or a register reference.
// The zero Operand is the immediate 0.
type Operand struct {
	Register string // Register name, if non-empty.
	Value    int64  // Immediate value, if Register is empty.
}

// Imm makes an immediate operand.
func Imm(value int64) Operand {
	return Operand{Value: value}
}

// Reg makes a register operand.
func Reg(name string) Operand {
	return Operand{Register: name}
}

// IsRegister returns true if the operand names a register.
func (op Operand) IsRegister() bool {
	return len(op.Register) != 0
}

func (op Operand) String() string {
	if op.IsRegister() {
		return op.Register
	}

	return strconv.FormatInt(op.Value, 10)
}

// ParseOperand parses a token as an integer, and if that fails, as a
// register name.
func ParseOperand(token string) Operand {
	value, err := strconv.ParseInt(token, 10, 64)
	if err != nil {
		return Reg(token)
	}

	return Imm(value)
}

// Instruction is a single decoded asmbunny instruction.
//
//	cpy: X is the source, Y the target
//	inc: X is the target
//	dec: X is the target
//	jnz: X is the condition, Y the offset
//	tgl: X is the offset
type Instruction struct {
	Op Op
	X  Operand
	Y  Operand
}

// Toggled returns the instruction as rewritten by 'tgl'.
// Operands keep their positions; only the op changes.
func (inst Instruction) Toggled() Instruction {
	switch inst.Op {
	case OP_CPY:
		inst.Op = OP_JNZ
	case OP_INC:
		inst.Op = OP_DEC
	case OP_DEC:
		inst.Op = OP_INC
	case OP_JNZ:
		inst.Op = OP_CPY
	case OP_TGL:
		inst.Op = OP_INC
	}

	return inst
}

// String returns the instruction in assembler syntax.
func (inst Instruction) String() string {
	text := inst.Op.String() + " " + inst.X.String()
	if inst.Op.Arity() == 2 {
		text += " " + inst.Y.String()
	}

	return text
}
