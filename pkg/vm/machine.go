// Package vm contains the LC-3 execution core.
//
// A Machine owns eight general registers, a 65536-word memory, an
// instruction pointer, a single current condition code, a halt latch,
// and the host's character input/output streams. State changes only
// through Step and RunUntilHalt; construction copies a program image
// into memory starting at its origin and zero-fills the gap below it.
//
// The VM is not goroutine safe; a single goroutine should drive it for
// the duration of a run, matching the single-threaded, cooperative
// execution model spec.md describes: the only suspension points are
// the host I/O calls a trap makes, and those block synchronously on
// whatever io.Reader/io.Writer the embedder supplied.
package vm

import (
	"io"

	"github.com/reverset/lc3vm/pkg/lc3"
)

// MemorySize is the number of addressable 16-bit words: the LC-3's
// entire 2^16 word address space.
const MemorySize = 1 << 16

// Machine is an LC-3 virtual machine instance.
type Machine struct {
	Reg [lc3.NumRegisters]int16
	Mem [MemorySize]int16

	IP   uint16
	Cond lc3.ConditionCode

	Halted bool

	Stdin  io.Reader
	Stdout io.Writer
}

// NewMachine builds a Machine with program placed at memory[origin:]
// and everything below origin zeroed. The condition code starts at Z
// and the instruction pointer starts at origin, per spec.md §3.
func NewMachine(stdin io.Reader, stdout io.Writer, origin uint16, program []int16) *Machine {
	m := &Machine{
		IP:     origin,
		Cond:   lc3.CondZero,
		Stdin:  stdin,
		Stdout: stdout,
	}
	m.WriteSpan(origin, program)
	return m
}

// Register reads a general register by index.
func (m *Machine) Register(r lc3.Register) int16 {
	return m.Reg[r]
}

// SetRegister writes a general register and updates the condition code
// from its new signed value.
func (m *Machine) SetRegister(r lc3.Register, v int16) {
	m.Reg[r] = v
	m.Cond = lc3.ConditionCodeFor(v)
}

// setRegisterNoFlags writes a general register without touching the
// condition code, for the handful of opcodes (JSR/JSRR linking R7,
// trap handlers writing R0) that the ISA does not document as flag
// setters.
func (m *Machine) setRegisterNoFlags(r lc3.Register, v int16) {
	m.Reg[r] = v
}

// ReadMemory reads one word. Addresses wrap modulo 2^16; an address
// never previously written reads as zero, since Mem is a plain zeroed
// array.
func (m *Machine) ReadMemory(addr uint16) int16 {
	return m.Mem[addr]
}

// WriteWord writes one word at addr.
func (m *Machine) WriteWord(addr uint16, w int16) {
	m.Mem[addr] = w
}

// WriteSpan writes a contiguous run of words starting at addr.
func (m *Machine) WriteSpan(addr uint16, words []int16) {
	for _, w := range words {
		m.Mem[addr] = w
		addr++
	}
}

// WriteCString writes one word per byte of s, followed by a zero
// terminator word, starting at addr.
func (m *Machine) WriteCString(addr uint16, s string) {
	for i := 0; i < len(s); i++ {
		m.Mem[addr] = int16(s[i])
		addr++
	}
	m.Mem[addr] = 0
}
