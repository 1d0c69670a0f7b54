// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package machine

import (
	"fmt"
	"iter"
	"log"

	"github.com/ezrec/asmbunny/asm"
	"github.com/ezrec/asmbunny/internal"
)

// Patch may replace the next step of a machine with an equivalent, faster
// computation. If ok is false the patch did not apply, and the machine
// was not modified. Otherwise running reports whether execution may
// continue, as for Step.
type Patch func(m *Machine) (running bool, ok bool)

// Machine is the execution context of an asmbunny program.
type Machine struct {
	Verbose bool // Set to enable verbose logging.

	Ip       int64             // Current instruction pointer.
	Register map[string]int64  // Register bank. Missing registers are zero.
	Memory   []asm.Instruction // Instruction memory.

	Ticks int // Steps executed.
}

// NewMachine creates a machine with a private copy of the instructions.
func NewMachine(code []asm.Instruction) (m *Machine) {
	m = &Machine{
		Register: make(map[string]int64),
		Memory:   append([]asm.Instruction(nil), code...),
	}

	return
}

// Get returns the value of a register.
func (m *Machine) Get(name string) int64 {
	return m.Register[name]
}

// Set sets the value of a register.
func (m *Machine) Set(name string, value int64) {
	if m.Register == nil {
		m.Register = make(map[string]int64)
	}
	m.Register[name] = value
}

// Value evaluates an operand.
func (m *Machine) Value(op asm.Operand) int64 {
	if op.IsRegister() {
		return m.Get(op.Register)
	}

	return op.Value
}

// store writes to an operand, if it is a register.
func (m *Machine) store(op asm.Operand, value int64) {
	if !op.IsRegister() {
		if m.Verbose {
			log.Printf("machine: %d: write to immediate %v ignored", m.Ip, op)
		}
		return
	}

	m.Set(op.Register, value)
}

// Fetch returns the instruction at an index, if it is in memory.
func (m *Machine) Fetch(ip int64) (inst asm.Instruction, ok bool) {
	if ip < 0 || ip >= int64(len(m.Memory)) {
		return
	}

	return m.Memory[ip], true
}

// Halted returns true if the instruction pointer is outside of memory.
func (m *Machine) Halted() bool {
	_, ok := m.Fetch(m.Ip)
	return !ok
}

// Step executes a single instruction.
// Returns false, without changing state, if the machine is halted.
func (m *Machine) Step() bool {
	inst, ok := m.Fetch(m.Ip)
	if !ok {
		return false
	}

	if m.Verbose {
		log.Printf("machine: %3d %v", m.Ip, inst)
	}

	m.Ticks++

	switch inst.Op {
	case asm.OP_CPY:
		m.store(inst.Y, m.Value(inst.X))
	case asm.OP_INC:
		m.store(inst.X, m.Value(inst.X)+1)
	case asm.OP_DEC:
		m.store(inst.X, m.Value(inst.X)-1)
	case asm.OP_JNZ:
		if m.Value(inst.X) != 0 {
			m.Ip += m.Value(inst.Y)
			return true
		}
	case asm.OP_TGL:
		m.toggle(m.Ip + m.Value(inst.X))
	}

	m.Ip++

	return true
}

// toggle rewrites the instruction at an index, if it is in memory.
func (m *Machine) toggle(target int64) {
	inst, ok := m.Fetch(target)
	if !ok {
		if m.Verbose {
			log.Printf("machine: %d: toggle of %d outside of memory", m.Ip, target)
		}
		return
	}

	m.Memory[target] = inst.Toggled()
}

// StepWithOverride offers the next step to a patch before executing it.
// A nil patch always steps normally.
func (m *Machine) StepWithOverride(patch Patch) bool {
	if patch != nil && !m.Halted() {
		ip := m.Ip
		running, ok := patch(m)
		if ok {
			if m.Verbose {
				log.Printf("machine: %3d patched, now at %d", ip, m.Ip)
			}
			m.Ticks++
			return running
		}
	}

	return m.Step()
}

// Registers iterates over the set registers in name order.
func (m *Machine) Registers() iter.Seq2[string, int64] {
	return internal.IterSorted2(m.Register)
}

// String returns the current machine state as a string.
func (m *Machine) String() (text string) {
	text = fmt.Sprintf("% 5s: %d\n", "ip", m.Ip)
	for name, value := range m.Registers() {
		text += fmt.Sprintf("% 5s: %d\n", name, value)
	}

	return
}
