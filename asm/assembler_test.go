package asm

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssembler(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	prog, err := asm.Parse(strings.NewReader(""))
	assert.NoError(err)
	assert.Equal(0, len(prog.Statements))
	assert.Equal(DIALECT_TOGGLE, asm.Dialect)
	assert.Equal("0", asm.Equate["LINENO"])
}

func TestAssemblerProgram(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	program := []string{
		"cpy 2 a",
		"tgl a",
		"",
		"tgl a",
		"tgl a",
		"cpy 1 a",
		"dec a",
		"dec a",
		"",
	}

	prog, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
	}

	expected := []Statement{
		{1, "cpy 2 a", Instruction{OP_CPY, Imm(2), Reg("a")}},
		{2, "tgl a", Instruction{OP_TGL, Reg("a"), Operand{}}},
		{4, "tgl a", Instruction{OP_TGL, Reg("a"), Operand{}}},
		{5, "tgl a", Instruction{OP_TGL, Reg("a"), Operand{}}},
		{6, "cpy 1 a", Instruction{OP_CPY, Imm(1), Reg("a")}},
		{7, "dec a", Instruction{OP_DEC, Reg("a"), Operand{}}},
		{8, "dec a", Instruction{OP_DEC, Reg("a"), Operand{}}},
	}
	assert.Equal(expected, prog.Statements)

	code := prog.Instructions()
	assert.Equal(7, len(code))
	assert.Equal(expected[1].Instruction, code[1])

	// The returned slice is a copy.
	code[0] = Instruction{OP_INC, Reg("z"), Operand{}}
	assert.Equal(OP_CPY, prog.Statements[0].Op)

	assert.Equal("cpy 2 a\ntgl a\ntgl a\ntgl a\ncpy 1 a\ndec a\ndec a\n", prog.String())
}

func TestProgramDebug(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	prog, err := asm.ParseString("inc a\n\ndec b\n")
	assert.NoError(err)

	st := prog.Debug(1)
	if assert.NotNil(st) {
		assert.Equal(3, st.LineNo)
		assert.Equal(OP_DEC, st.Op)
	}

	assert.Nil(prog.Debug(-1))
	assert.Nil(prog.Debug(2))

	var lines []int
	for ip, st := range prog.All() {
		assert.Equal(prog.Statements[ip], st)
		lines = append(lines, st.LineNo)
	}
	assert.Equal([]int{1, 3}, lines)
}

func TestAssemblerSyntax(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	program := []string{
		"cpy 1 a",
		"inc a",
		"add a b",
		"dec a",
	}

	prog, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	assert.Nil(prog)

	var syntax *ErrSyntax
	if assert.True(errors.As(err, &syntax)) {
		assert.Equal(3, syntax.LineNo)
		assert.Equal("add a b", syntax.Line)
	}

	var invalid ErrInvalidInstruction
	assert.True(errors.As(err, &invalid))
}

func TestAssemblerBasic(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{Dialect: DIALECT_BASIC}

	prog, err := asm.ParseString("cpy 41 a\ninc a\njnz a 2\n")
	assert.NoError(err)
	assert.Equal(3, len(prog.Statements))

	_, err = asm.ParseString("cpy 41 a\njnz a b\n")
	var number ErrParseNumber
	if assert.True(errors.As(err, &number)) {
		assert.Equal("b", string(number))
	}

	_, err = asm.ParseString("tgl a\n")
	var invalid ErrInvalidInstruction
	assert.True(errors.As(err, &invalid))
}

func TestAssemblerExpression(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	asm.Predefine("EGGS", "7")
	asm.Predefine("REG", "a")

	program := []string{
		"cpy $(EGGS) a",
		"cpy $(EGGS * 6) b",
		"jnz 1 $(-(LINENO + 1))",
		"cpy $(1 << 4) c",
	}

	prog, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(Instruction{OP_CPY, Imm(7), Reg("a")}, prog.Statements[0].Instruction)
	assert.Equal(Instruction{OP_CPY, Imm(42), Reg("b")}, prog.Statements[1].Instruction)
	assert.Equal(Instruction{OP_JNZ, Imm(1), Imm(-4)}, prog.Statements[2].Instruction)
	assert.Equal("jnz 1 -4", prog.Statements[2].Text)
	assert.Equal(Instruction{OP_CPY, Imm(16), Reg("c")}, prog.Statements[3].Instruction)
	assert.Equal("7", asm.Equate["EGGS"])
}

func TestAssemblerExpressionInvalid(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	for _, line := range []string{
		"cpy $(\"text\") a",
		"cpy $(UNDEFINED) a",
		"cpy $(1 +) a",
		"cpy $(1 << 70) a",
	} {
		_, err := asm.ParseString(line)
		var expr ErrParseExpression
		assert.True(errors.As(err, &expr), line)
		var syntax *ErrSyntax
		if assert.True(errors.As(err, &syntax), line) {
			assert.Equal(1, syntax.LineNo)
		}
	}
}
