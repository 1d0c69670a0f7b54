// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"maps"
	"regexp"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Predefined system equates
var sysEquate = map[string]string{
	"LINENO": "0",
}

// exprRegexp matches a compile-time $(...) expression.
var exprRegexp = regexp.MustCompile(`\$\([^\$]*\)`)

// Assembler is a single pass line assembler for asmbunny.
type Assembler struct {
	Verbose bool    // If set, verbosely logs the assembler actions.
	Dialect Dialect // Instruction repertoire to accept.

	predefine map[string]string // Predefines
	Equate    map[string]string // Map of equates visible to $(...) expressions.
}

// Predefine defines a new equate or redefines an existing equate.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

// parenEval does compile-time $(...) evaluations
func (asm *Assembler) parenEval(expr string) (value int64, err error) {
	thread := starlark.Thread{Name: "asm"}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range asm.Equate {
		equ, _err := strconv.ParseInt(str, 0, 64)
		if _err != nil {
			// Ignore non-integer equates. They may be registers
			// or something else.
			continue
		}
		pred[key] = starlark.MakeInt64(equ)
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		err = fmt.Errorf("%w: %w", ErrParseExpression(expr), err)
		return
	}
	st_int, ok := dict["rc"].(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value, ok = st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	return
}

// expandLine replaces all $(...) expressions in a line with their values.
func (asm *Assembler) expandLine(line string, lineno int) (text string, err error) {
	asm.Equate["LINENO"] = strconv.Itoa(lineno)

	text = exprRegexp.ReplaceAllStringFunc(line, func(str string) string {
		if err != nil {
			return str
		}
		value, _err := asm.parenEval(str[2 : len(str)-1])
		if _err != nil {
			err = _err
			return str
		}
		return strconv.FormatInt(value, 10)
	})

	return
}

// Parse parses an input stream into a Program.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
			prog = nil
		}
	}()

	asm.Equate = maps.Clone(sysEquate)
	for attr, val := range asm.predefine {
		asm.Equate[attr] = val
	}

	prog = &Program{}

	for scanner.Scan() {
		line = scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("asm: %v: %v\n", lineno, line)
		}

		if len(strings.TrimSpace(line)) == 0 {
			continue
		}

		var text string
		text, err = asm.expandLine(line, lineno)
		if err != nil {
			return
		}

		var inst Instruction
		inst, err = ParseLine(asm.Dialect, text)
		if err != nil {
			return
		}

		prog.Statements = append(prog.Statements, Statement{
			LineNo:      lineno,
			Text:        text,
			Instruction: inst,
		})
	}

	err = scanner.Err()

	return
}

// ParseString is a convenience wrapper to parse a program from a string.
func (asm *Assembler) ParseString(text string) (prog *Program, err error) {
	return asm.Parse(strings.NewReader(text))
}
