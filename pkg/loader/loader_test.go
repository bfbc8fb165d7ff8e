package loader

import (
	"bytes"
	"strings"
	"testing"
)

func TestLoadRaw(t *testing.T) {
	var buf bytes.Buffer
	for _, w := range []uint16{0x3000, 0x1001, 0x1002} {
		buf.WriteByte(byte(w >> 8))
		buf.WriteByte(byte(w))
	}
	origin, words, err := LoadRaw(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if origin != 0x3000 {
		t.Fatalf("origin = 0x%04x, want 0x3000", origin)
	}
	if len(words) != 2 || words[0] != 0x1001 || words[1] != 0x1002 {
		t.Fatalf("words = %v", words)
	}
}

func TestLoadRawEmpty(t *testing.T) {
	if _, _, err := LoadRaw(&bytes.Buffer{}); err != ErrEmptyImage {
		t.Fatalf("expected ErrEmptyImage, got %v", err)
	}
}

func TestLoadObject(t *testing.T) {
	src := strings.Join([]string{
		"LC-3 OBJ FILE",
		".symbol",
		"main 3000",
		".text",
		"3000",
		"1021",
		"f025",
		".debug",
		"irrelevant",
	}, "\n")

	origin, words, err := LoadObject(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	if origin != 0x3000 {
		t.Fatalf("origin = 0x%04x, want 0x3000", origin)
	}
	if len(words) != 2 || words[0] != 0x1021 || uint16(words[1]) != 0xf025 {
		t.Fatalf("words = %v", words)
	}
}

func TestLoadObjectCaseInsensitiveSections(t *testing.T) {
	src := strings.Join([]string{
		"LC-3 OBJ FILE",
		".TEXT",
		"3000",
		"f025",
	}, "\n")
	origin, words, err := LoadObject(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	if origin != 0x3000 || len(words) != 1 {
		t.Fatalf("origin=0x%04x words=%v", origin, words)
	}
}

func TestDetect(t *testing.T) {
	format, r, err := Detect(strings.NewReader("LC-3 OBJ FILE\n.text\n3000\n"))
	if err != nil {
		t.Fatal(err)
	}
	if format != FormatObject {
		t.Fatalf("format = %v, want FormatObject", format)
	}
	if _, _, err := LoadObject(r); err != nil {
		t.Fatal(err)
	}
}

func TestDetectRaw(t *testing.T) {
	var buf bytes.Buffer
	buf.WriteByte(0x30)
	buf.WriteByte(0x00)
	format, _, err := Detect(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if format != FormatRaw {
		t.Fatalf("format = %v, want FormatRaw", format)
	}
}
