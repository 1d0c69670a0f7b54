// Package machine executes asmbunny instructions.
//
// A Machine owns its instruction memory and a bank of named 64-bit
// registers. Each Step fetches the instruction at the instruction pointer,
// executes it, and advances the pointer. The machine halts when the pointer
// leaves the instruction memory, in either direction. There are no runtime
// faults: unset registers read as zero, writes to immediate operands are
// dropped, and toggles outside of memory do nothing.
package machine
