// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/tebeka/atexit"

	"github.com/ezrec/asmbunny/asm"
	"github.com/ezrec/asmbunny/emulator"
	"github.com/ezrec/asmbunny/fastpath"
)

// keyValue parses a NAME=VALUE argument.
func keyValue(arg string) (key string, value string, err error) {
	key, value, ok := strings.Cut(arg, "=")
	if !ok || len(key) == 0 {
		err = fmt.Errorf("'%v' is not NAME=VALUE", arg)
	}
	return
}

func main() {
	var compile string
	var dialect string
	var turbo bool
	var limit int
	var only string
	var list bool
	var verbose bool

	seed := map[string]int64{}
	assembler := &asm.Assembler{}

	flag.StringVar(&compile, "c", "-", ".asmb file to run")
	flag.StringVar(&dialect, "dialect", "toggle", "Instruction dialect (basic or toggle)")
	flag.BoolVar(&turbo, "t", false, "Enable fast path loop patches")
	flag.IntVar(&limit, "n", 0, "Step limit, 0 for none")
	flag.StringVar(&only, "p", "", "Print only this register")
	flag.BoolVar(&list, "l", false, "List the assembled program, do not execute")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.Func("r", "Seed register `NAME=VALUE` before running", func(arg string) (err error) {
		name, text, err := keyValue(arg)
		if err != nil {
			return
		}
		value, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return
		}
		seed[name] = value
		return
	})
	flag.Func("D", "Predefine `NAME=VALUE` for $(...) expressions", func(arg string) (err error) {
		name, value, err := keyValue(arg)
		if err != nil {
			return
		}
		assembler.Predefine(name, value)
		return
	})

	flag.Parse()

	if flag.NArg() != 0 {
		atexit.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	var err error
	assembler.Verbose = verbose
	assembler.Dialect, err = asm.ParseDialect(dialect)
	if err != nil {
		atexit.Fatalf("%v: %v", dialect, err)
	}

	var inf io.Reader = os.Stdin
	if compile != "-" {
		file, err := os.Open(compile)
		if err != nil {
			atexit.Fatalf("%v: %v", compile, err)
		}
		atexit.Register(func() { file.Close() })
		inf = file
	}

	prog, err := assembler.Parse(inf)
	if err != nil {
		atexit.Fatalf("%v: %v", compile, err)
	}

	if list {
		fmt.Print(prog.String())
		atexit.Exit(0)
	}

	emu := emulator.NewEmulator()
	emu.Program = prog
	emu.Verbose = verbose
	emu.Limit = limit
	if turbo {
		emu.Patch = fastpath.Default
	}

	emu.Reset()
	emu.Seed(seed)

	err = emu.Run()
	if err != nil {
		log.Print(emu.Machine.String())
		atexit.Fatalf("%v: %v", compile, err)
	}

	if verbose {
		log.Printf("%v: %d ticks", compile, emu.Ticks())
	}

	if len(only) != 0 {
		fmt.Println(emu.Get(only))
	} else {
		for name, value := range emu.Registers() {
			fmt.Printf("%v: %d\n", name, value)
		}
	}

	atexit.Exit(0)
}
