package vm

import (
	"errors"
	"fmt"

	"github.com/reverset/lc3vm/pkg/lc3"
)

// ErrFatal is the sentinel wrapped by every fatal execution error: the
// Reserved and ReturnFromInterrupt instructions, an unrecognized trap
// vector, and host I/O failures encountered while servicing a trap. The
// LC-3 has no arithmetic traps and wrapping is always defined, so this
// is the only error class Step/RunUntilHalt can return.
var ErrFatal = errors.New("vm: fatal execution error")

// ExecError reports a fatal execution error together with the
// diagnostic context spec.md §7 asks for: the address the faulting
// instruction was fetched from and its decoded opcode.
type ExecError struct {
	IP  uint16
	Op  lc3.Op
	Err error
}

func (e *ExecError) Error() string {
	return fmt.Sprintf("vm: fatal error at ip=0x%04x (op=%s): %s", e.IP, e.Op, e.Err)
}

func (e *ExecError) Unwrap() error {
	return e.Err
}

// fatalf wraps ErrFatal with a formatted message.
func fatalf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrFatal, fmt.Sprintf(format, args...))
}
