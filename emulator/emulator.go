// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"log"

	"github.com/ezrec/asmbunny/asm"
	"github.com/ezrec/asmbunny/machine"
)

// Emulator state. Machine + program listing.
type Emulator struct {
	Verbose          bool          // If set, enables verbose logging.
	*machine.Machine               // Reference to the machine simulation.
	Program          *asm.Program  // Reference to the currently running program listing.
	Patch            machine.Patch // Optional fast path, consulted before every step.
	Limit            int           // Maximum ticks since reset. Zero is unlimited.
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Program: &asm.Program{},
	}

	emu.Reset()

	return
}

// Reset loads a fresh copy of the program into a new machine.
// Registers are cleared, and the instruction pointer is zero.
func (emu *Emulator) Reset() {
	emu.Machine = machine.NewMachine(emu.Program.Instructions())
	emu.Machine.Verbose = emu.Verbose

	if emu.Verbose {
		log.Printf("emulator: reset, %d instructions", len(emu.Machine.Memory))
	}
}

// Seed sets initial register values.
func (emu *Emulator) Seed(registers map[string]int64) {
	for name, value := range registers {
		emu.Machine.Set(name, value)
	}
}

// Ticks returns the total ticks since a reset.
func (emu *Emulator) Ticks() int {
	return emu.Machine.Ticks
}

// Ip returns current instruction pointer.
func (emu *Emulator) Ip() int64 {
	return emu.Machine.Ip
}

// LineNo returns the source line number of the current instruction,
// or zero if the machine is halted.
func (emu *Emulator) LineNo() int {
	st := emu.Program.Debug(emu.Machine.Ip)
	if st == nil {
		return 0
	}

	return st.LineNo
}

// Tick performs a single tick of the emulator.
func (emu *Emulator) Tick() (done bool, err error) {
	emu.Machine.Verbose = emu.Verbose

	if emu.Limit > 0 && emu.Machine.Ticks >= emu.Limit && !emu.Machine.Halted() {
		err = &ErrRuntime{LineNo: emu.LineNo(), Err: ErrStepLimit}
		return
	}

	done = !emu.Machine.StepWithOverride(emu.Patch)

	return
}

// Run ticks the emulator until the program halts.
func (emu *Emulator) Run() (err error) {
	for done, err := emu.Tick(); !done; done, err = emu.Tick() {
		if err != nil {
			return err
		}
	}

	if emu.Verbose {
		log.Printf("emulator: halted at %d after %d ticks", emu.Machine.Ip, emu.Machine.Ticks)
	}

	return
}
