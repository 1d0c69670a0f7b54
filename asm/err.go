package asm

import (
	"errors"

	"github.com/ezrec/asmbunny/translate"
)

var f = translate.From

var (
	// Assembler errors
	ErrDialectInvalid = errors.New(f("dialect invalid"))
)

// ErrParseNumber is returned when a token that must be an integer is not.
type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

// ErrInvalidInstruction is returned for an unknown mnemonic or a mnemonic
// with the wrong number of operands.
type ErrInvalidInstruction string

func (err ErrInvalidInstruction) Error() string {
	return f("invalid instruction '%v'", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

// ErrSyntax locates an assembly error in the source.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}
