// Package lc3 contains the LC-3 instruction set: the bit-exact codec
// between a 16-bit instruction word and a tagged Instruction value, plus
// the narrow signed operand types (Imm5, Offset6, PcOffset9, PcOffset11)
// the ISA's fields are carved from.
//
// Instruction format
//
// Every instruction is 16 bits wide. Bits 15-12 select the opcode; the
// remaining bits are interpreted according to that opcode, as follows
// (bit 15 is the MSB):
//
//	ADD reg   | 0001 | DR  | SR1 | 0 00 SR2  |
//	ADD imm   | 0001 | DR  | SR1 | 1 imm5    |
//	AND reg   | 0101 | DR  | SR1 | 0 00 SR2  |
//	AND imm   | 0101 | DR  | SR1 | 1 imm5    |
//	BR        | 0000 | NZP | pcoffset9     |
//	JMP       | 1100 | 000 | Base | 000000 |
//	JSR       | 0100 | 1   | pcoffset11    |
//	JSRR      | 0100 | 0 00 | Base | 000000|
//	LD        | 0010 | DR  | pcoffset9     |
//	LDI       | 1010 | DR  | pcoffset9     |
//	LDR       | 0110 | DR  | Base | offset6|
//	LEA       | 1110 | DR  | pcoffset9     |
//	NOT       | 1001 | DR  | SR  | 111111  |
//	RTI       | 1000 | 000000000000       |
//	ST        | 0011 | SR  | pcoffset9     |
//	STI       | 1011 | SR  | pcoffset9     |
//	STR       | 0111 | SR  | Base | offset6|
//	TRAP      | 1111 | 0000 | trapvect8   |
//	Reserved  | 1101 | unconstrained      |
//
// Decode is total: every 16-bit word decodes to some Instruction, with
// opcode 0b1101 decoding to Reserved and opcode 0b1000 decoding to
// ReturnFromInterrupt. Encode is the inverse on the salient bits of a
// given Instruction; Encode(Decode(w)) == w for every w whose opcode is
// not Reserved and whose fixed bits (the literal 0s and 1s in the table
// above, such as the 00 of ADD reg or the 111111 of NOT) hold the values
// shown. Decode ignores those fixed bits and Encode always writes the
// table's values, so a word with other values there does not round-trip.
package lc3
