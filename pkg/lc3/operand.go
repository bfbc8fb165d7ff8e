package lc3

import (
	"errors"
	"fmt"
)

// ErrConstruction indicates that a narrow signed field was built from a
// literal outside its declared range.
var ErrConstruction = errors.New("lc3: value out of range for field")

// Imm5 is a signed 5-bit immediate, range [-16, 15].
type Imm5 int8

// Offset6 is a signed 6-bit offset, range [-32, 31].
type Offset6 int8

// PcOffset9 is a signed 9-bit PC-relative offset, range [-256, 255].
type PcOffset9 int16

// PcOffset11 is a signed 11-bit PC-relative offset, range [-1024, 1023].
type PcOffset11 int16

// NewImm5 builds an Imm5 from a signed literal, rejecting anything
// outside [-16, 15].
func NewImm5(v int) (Imm5, error) {
	if v < -16 || v > 15 {
		return 0, fmt.Errorf("%w: imm5 %d", ErrConstruction, v)
	}
	return Imm5(v), nil
}

// NewOffset6 builds an Offset6 from a signed literal, rejecting anything
// outside [-32, 31].
func NewOffset6(v int) (Offset6, error) {
	if v < -32 || v > 31 {
		return 0, fmt.Errorf("%w: offset6 %d", ErrConstruction, v)
	}
	return Offset6(v), nil
}

// NewPcOffset9 builds a PcOffset9 from a signed literal, rejecting
// anything outside [-256, 255].
func NewPcOffset9(v int) (PcOffset9, error) {
	if v < -256 || v > 255 {
		return 0, fmt.Errorf("%w: pcoffset9 %d", ErrConstruction, v)
	}
	return PcOffset9(v), nil
}

// NewPcOffset11 builds a PcOffset11 from a signed literal, rejecting
// anything outside [-1024, 1023].
func NewPcOffset11(v int) (PcOffset11, error) {
	if v < -1024 || v > 1023 {
		return 0, fmt.Errorf("%w: pcoffset11 %d", ErrConstruction, v)
	}
	return PcOffset11(v), nil
}

// signExtend5 sign-extends the low 5 bits of v to an Imm5.
func signExtend5(v uint16) Imm5 {
	v &= 0b1_1111
	if v&0b1_0000 != 0 {
		v |= 0xFFFF &^ 0b1_1111
	}
	return Imm5(int16(v))
}

// signExtend6 sign-extends the low 6 bits of v to an Offset6.
func signExtend6(v uint16) Offset6 {
	v &= 0b11_1111
	if v&0b10_0000 != 0 {
		v |= 0xFFFF &^ 0b11_1111
	}
	return Offset6(int16(v))
}

// signExtend9 sign-extends the low 9 bits of v to a PcOffset9.
func signExtend9(v uint16) PcOffset9 {
	v &= 0b1_1111_1111
	if v&0b1_0000_0000 != 0 {
		v |= 0xFFFF &^ 0b1_1111_1111
	}
	return PcOffset9(int16(v))
}

// signExtend11 sign-extends the low 11 bits of v to a PcOffset11.
func signExtend11(v uint16) PcOffset11 {
	v &= 0b111_1111_1111
	if v&0b100_0000_0000 != 0 {
		v |= 0xFFFF &^ 0b111_1111_1111
	}
	return PcOffset11(int16(v))
}
