package vm

import (
	"io"

	"github.com/reverset/lc3vm/pkg/lc3"
)

// flusher is implemented by host output streams (such as *bufio.Writer)
// that buffer writes. PUTS and GETC flush before returning control to
// the program; plain io.Writer values that don't buffer are a no-op.
type flusher interface {
	Flush() error
}

func (m *Machine) flushStdout() error {
	if f, ok := m.Stdout.(flusher); ok {
		return f.Flush()
	}
	return nil
}

// execTrap implements the trap vectors recognized by this core. None of
// them update the condition code: TRAP's register writes (R0 for GETC
// and IN) are OS-service side effects, not the ALU/load results the
// condition code tracks. This core also does not save ip into R7 before
// dispatching a trap, matching the source implementation this spec was
// distilled from.
func (m *Machine) execTrap(vector uint8) error {
	switch vector {
	case lc3.TrapGetc:
		if err := m.flushStdout(); err != nil {
			return fatalf("getc: flush stdout: %v", err)
		}
		var buf [1]byte
		if _, err := io.ReadFull(m.Stdin, buf[:]); err != nil {
			return fatalf("getc: read stdin: %v", err)
		}
		m.setRegisterNoFlags(lc3.R0, int16(buf[0]))
		return nil

	case lc3.TrapOut:
		b := byte(m.Reg[lc3.R0])
		if _, err := m.Stdout.Write([]byte{b}); err != nil {
			return fatalf("out: write stdout: %v", err)
		}
		return nil

	case lc3.TrapPuts:
		addr := uint16(m.Reg[lc3.R0])
		for m.Mem[addr] != 0 {
			if _, err := m.Stdout.Write([]byte{byte(m.Mem[addr])}); err != nil {
				return fatalf("puts: write stdout: %v", err)
			}
			addr++
		}
		if err := m.flushStdout(); err != nil {
			return fatalf("puts: flush stdout: %v", err)
		}
		return nil

	case lc3.TrapIn:
		const prompt = "Input a character> "
		if _, err := io.WriteString(m.Stdout, prompt); err != nil {
			return fatalf("in: write prompt: %v", err)
		}
		var buf [1]byte
		if _, err := io.ReadFull(m.Stdin, buf[:]); err != nil {
			return fatalf("in: read stdin: %v", err)
		}
		if _, err := m.Stdout.Write(buf[:]); err != nil {
			return fatalf("in: echo: %v", err)
		}
		if err := m.flushStdout(); err != nil {
			return fatalf("in: flush stdout: %v", err)
		}
		m.setRegisterNoFlags(lc3.R0, int16(buf[0]))
		return nil

	case lc3.TrapHalt:
		m.Halted = true
		return nil

	default:
		return fatalf("unrecognized trap vector 0x%02x", vector)
	}
}
