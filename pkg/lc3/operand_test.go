package lc3

import (
	"errors"
	"testing"
)

func TestNarrowFieldRangeRoundTrip(t *testing.T) {
	if v, err := NewImm5(-16); err != nil || v != -16 {
		t.Fatalf("NewImm5(-16) = %v, %v", v, err)
	}
	if v, err := NewImm5(15); err != nil || v != 15 {
		t.Fatalf("NewImm5(15) = %v, %v", v, err)
	}
	if v, err := NewOffset6(-32); err != nil || v != -32 {
		t.Fatalf("NewOffset6(-32) = %v, %v", v, err)
	}
	if v, err := NewOffset6(31); err != nil || v != 31 {
		t.Fatalf("NewOffset6(31) = %v, %v", v, err)
	}
	if v, err := NewPcOffset9(-256); err != nil || v != -256 {
		t.Fatalf("NewPcOffset9(-256) = %v, %v", v, err)
	}
	if v, err := NewPcOffset9(255); err != nil || v != 255 {
		t.Fatalf("NewPcOffset9(255) = %v, %v", v, err)
	}
	if v, err := NewPcOffset11(-1024); err != nil || v != -1024 {
		t.Fatalf("NewPcOffset11(-1024) = %v, %v", v, err)
	}
	if v, err := NewPcOffset11(1023); err != nil || v != 1023 {
		t.Fatalf("NewPcOffset11(1023) = %v, %v", v, err)
	}
}

func TestNarrowFieldOutOfRangeRejected(t *testing.T) {
	cases := []func() error{
		func() error { _, err := NewImm5(16); return err },
		func() error { _, err := NewImm5(-17); return err },
		func() error { _, err := NewOffset6(32); return err },
		func() error { _, err := NewOffset6(-33); return err },
		func() error { _, err := NewPcOffset9(256); return err },
		func() error { _, err := NewPcOffset9(-257); return err },
		func() error { _, err := NewPcOffset11(1024); return err },
		func() error { _, err := NewPcOffset11(-1025); return err },
		func() error { _, err := NewRegister(8); return err },
	}
	for i, f := range cases {
		if err := f(); !errors.Is(err, ErrConstruction) {
			t.Fatalf("case %d: expected ErrConstruction, got %v", i, err)
		}
	}
}

func TestSignExtendBoundaries(t *testing.T) {
	if got := signExtend5(0b10000); got != -16 {
		t.Fatalf("signExtend5(0b10000) = %d, want -16", got)
	}
	if got := signExtend5(0b01111); got != 15 {
		t.Fatalf("signExtend5(0b01111) = %d, want 15", got)
	}
	if got := signExtend6(0b100000); got != -32 {
		t.Fatalf("signExtend6(0b100000) = %d, want -32", got)
	}
	if got := signExtend6(0b011111); got != 31 {
		t.Fatalf("signExtend6(0b011111) = %d, want 31", got)
	}
	if got := signExtend9(0b1_0000_0000); got != -256 {
		t.Fatalf("signExtend9(0x100) = %d, want -256", got)
	}
	if got := signExtend9(0b0_1111_1111); got != 255 {
		t.Fatalf("signExtend9(0x0FF) = %d, want 255", got)
	}
	if got := signExtend11(0b100_0000_0000); got != -1024 {
		t.Fatalf("signExtend11(0x400) = %d, want -1024", got)
	}
	if got := signExtend11(0b011_1111_1111); got != 1023 {
		t.Fatalf("signExtend11(0x3FF) = %d, want 1023", got)
	}
}

func TestConditionCodeFor(t *testing.T) {
	if ConditionCodeFor(-1) != CondNegative {
		t.Fatal("expected negative")
	}
	if ConditionCodeFor(0) != CondZero {
		t.Fatal("expected zero")
	}
	if ConditionCodeFor(1) != CondPositive {
		t.Fatal("expected positive")
	}
}

func TestConditionMaskMatches(t *testing.T) {
	if !(MaskNegative | MaskZero).Matches(CondZero) {
		t.Fatal("expected NZ mask to match Z")
	}
	if MaskPositive.Matches(CondNegative) {
		t.Fatal("expected P mask to not match N")
	}
}
