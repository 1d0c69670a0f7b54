package asm

import (
	"strconv"
	"strings"
)

// ParseLine decodes a single line of asmbunny into an instruction.
func ParseLine(dialect Dialect, line string) (inst Instruction, err error) {
	var target func(word string) (Operand, error)
	var offset func(word string) (Operand, error)

	switch dialect {
	case DIALECT_TOGGLE:
		target = operandOf
		offset = operandOf
	case DIALECT_BASIC:
		target = registerOf
		offset = numberOf
	default:
		err = ErrDialectInvalid
		return
	}

	words := strings.Fields(line)
	if len(words) == 0 {
		err = ErrInvalidInstruction(line)
		return
	}

	switch {
	case words[0] == "cpy" && len(words) == 3:
		inst.Op = OP_CPY
		inst.X = ParseOperand(words[1])
		inst.Y, err = target(words[2])
	case words[0] == "inc" && len(words) == 2:
		inst.Op = OP_INC
		inst.X, err = target(words[1])
	case words[0] == "dec" && len(words) == 2:
		inst.Op = OP_DEC
		inst.X, err = target(words[1])
	case words[0] == "jnz" && len(words) == 3:
		inst.Op = OP_JNZ
		inst.X = ParseOperand(words[1])
		inst.Y, err = offset(words[2])
	case words[0] == "tgl" && len(words) == 2 && dialect == DIALECT_TOGGLE:
		inst.Op = OP_TGL
		inst.X = ParseOperand(words[1])
	default:
		err = ErrInvalidInstruction(line)
	}

	if err != nil {
		inst = Instruction{}
	}

	return
}

// operandOf accepts any integer or register.
func operandOf(word string) (Operand, error) {
	return ParseOperand(word), nil
}

// registerOf takes the word verbatim as a register name.
func registerOf(word string) (Operand, error) {
	return Reg(word), nil
}

// numberOf requires an integer literal.
func numberOf(word string) (op Operand, err error) {
	value, err := strconv.ParseInt(word, 10, 64)
	if err != nil {
		err = ErrParseNumber(word)
		return
	}

	op = Imm(value)
	return
}
