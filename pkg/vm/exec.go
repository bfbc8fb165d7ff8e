package vm

import (
	"github.com/reverset/lc3vm/pkg/lc3"
)

// addOffset adds a signed narrow offset to a 16-bit base address,
// wrapping modulo 2^16. Converting a signed Go integer to uint16 sign
// extends first and then truncates, so this reproduces two's-complement
// address arithmetic without an explicit cast to a wider type.
func addOffset(base uint16, offset int16) uint16 {
	return base + uint16(offset)
}

// Step fetches the instruction at ip, advances ip, decodes, and
// executes exactly one instruction. It returns a non-nil *ExecError
// only for a fatal execution error (Reserved, ReturnFromInterrupt, an
// unrecognized trap vector, or I/O failure during a trap); wrapping and
// halting are not errors.
func (m *Machine) Step() error {
	fetchIP := m.IP
	word := uint16(m.Mem[m.IP])
	m.IP++
	instr := lc3.Decode(word)
	if err := m.execute(instr); err != nil {
		return &ExecError{IP: fetchIP, Op: instr.Op, Err: err}
	}
	return nil
}

// RunUntilHalt steps the machine until the halt latch is set by TRAP
// 0x25, or until a fatal execution error occurs.
func (m *Machine) RunUntilHalt() error {
	for !m.Halted {
		if err := m.Step(); err != nil {
			return err
		}
	}
	return nil
}

// execute dispatches one decoded instruction. Effective addresses for
// PC-relative forms use m.IP as already advanced past the current
// instruction, per spec.md §4.3.
func (m *Machine) execute(instr lc3.Instruction) error {
	switch instr.Op {
	case lc3.OpAdd:
		m.SetRegister(instr.DR, m.Reg[instr.SR1]+m.Reg[instr.SR2])
	case lc3.OpAddImm:
		m.SetRegister(instr.DR, m.Reg[instr.SR1]+int16(instr.Imm5))
	case lc3.OpAnd:
		m.SetRegister(instr.DR, m.Reg[instr.SR1]&m.Reg[instr.SR2])
	case lc3.OpAndImm:
		m.SetRegister(instr.DR, m.Reg[instr.SR1]&int16(instr.Imm5))
	case lc3.OpNot:
		m.SetRegister(instr.DR, ^m.Reg[instr.SR])
	case lc3.OpBranch:
		if instr.Flags.Matches(m.Cond) {
			m.IP = addOffset(m.IP, int16(instr.PCOffset9))
		}
	case lc3.OpJump:
		m.IP = uint16(m.Reg[instr.Base])
	case lc3.OpJsr:
		link := m.IP
		m.IP = addOffset(m.IP, int16(instr.PCOffset11))
		m.setRegisterNoFlags(lc3.R7, int16(link))
	case lc3.OpJsrr:
		target := uint16(m.Reg[instr.Base]) // read before R7 is overwritten, so Jsrr(R7) still links
		link := m.IP
		m.IP = target
		m.setRegisterNoFlags(lc3.R7, int16(link))
	case lc3.OpLoad:
		addr := addOffset(m.IP, int16(instr.PCOffset9))
		m.SetRegister(instr.DR, m.Mem[addr])
	case lc3.OpLoadIndirect:
		addr := addOffset(m.IP, int16(instr.PCOffset9))
		m.SetRegister(instr.DR, m.Mem[uint16(m.Mem[addr])])
	case lc3.OpLoadRegister:
		addr := addOffset(uint16(m.Reg[instr.Base]), int16(instr.Offset6))
		m.SetRegister(instr.DR, m.Mem[addr])
	case lc3.OpLoadEffectiveAddress:
		m.SetRegister(instr.DR, int16(addOffset(m.IP, int16(instr.PCOffset9))))
	case lc3.OpStore:
		addr := addOffset(m.IP, int16(instr.PCOffset9))
		m.Mem[addr] = m.Reg[instr.SR]
	case lc3.OpStoreIndirect:
		addr := addOffset(m.IP, int16(instr.PCOffset9))
		m.Mem[uint16(m.Mem[addr])] = m.Reg[instr.SR]
	case lc3.OpStoreRegister:
		addr := addOffset(uint16(m.Reg[instr.Base]), int16(instr.Offset6))
		m.Mem[addr] = m.Reg[instr.SR]
	case lc3.OpTrap:
		return m.execTrap(instr.Vector)
	case lc3.OpReturnFromInterrupt, lc3.OpReserved:
		return fatalf("%s is not implemented by this core", instr.Op)
	}
	return nil
}
