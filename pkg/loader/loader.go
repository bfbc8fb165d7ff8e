// Package loader reduces the two LC-3 program image formats described
// in spec.md §6 to an (origin, words) pair the vm package can run. It
// is an external collaborator to the execution core, not part of it:
// the core never reads a file or a wire format, only memory words.
package loader

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// objHeader is the ASCII marker identifying the textual object format.
const objHeader = "LC-3 OBJ FILE"

// ErrEmptyImage indicates a program image contained no words at all.
var ErrEmptyImage = errors.New("loader: empty program image")

// Format names one of the two program image formats.
type Format int

const (
	// FormatRaw is a big-endian stream of 16-bit words; the first word
	// is the origin, the remainder is the image.
	FormatRaw Format = iota
	// FormatObject is the line-oriented, case-insensitive textual
	// object format introduced by the ASCII header "LC-3 OBJ FILE".
	FormatObject
)

// Detect peeks at the start of r to decide which format it holds,
// returning a reader that still has the peeked bytes queued up so the
// caller can pass it straight to LoadRaw or LoadObject.
func Detect(r io.Reader) (Format, io.Reader, error) {
	br := bufio.NewReader(r)
	peeked, err := br.Peek(len(objHeader))
	if err != nil && err != io.EOF {
		return FormatRaw, br, fmt.Errorf("loader: detect format: %w", err)
	}
	if bytes.Equal(peeked, []byte(objHeader)) {
		return FormatObject, br, nil
	}
	return FormatRaw, br, nil
}

// LoadRaw reads a raw binary image: a big-endian uint16 stream whose
// first word is the origin and whose remaining words are the program.
func LoadRaw(r io.Reader) (origin uint16, words []int16, err error) {
	var all []uint16
	for {
		var w uint16
		if err := binary.Read(r, binary.BigEndian, &w); err != nil {
			if err == io.EOF {
				break
			}
			return 0, nil, fmt.Errorf("loader: read raw image: %w", err)
		}
		all = append(all, w)
	}
	if len(all) == 0 {
		return 0, nil, ErrEmptyImage
	}
	origin = all[0]
	words = make([]int16, len(all)-1)
	for i, w := range all[1:] {
		words[i] = int16(w)
	}
	return origin, words, nil
}

// LoadObject reads the textual object format: line-oriented and
// case-insensitive, with sections introduced by ".text", ".symbol",
// ".linker_info", and ".debug". Only ".text" is consumed; its first
// hexadecimal word is the origin and the rest is the program image.
// Every other section is skipped.
func LoadObject(r io.Reader) (origin uint16, words []int16, err error) {
	scanner := bufio.NewScanner(r)

	var inText bool
	var sawText bool
	var all []uint16

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, ".") {
			inText = strings.EqualFold(line, ".text")
			if inText {
				sawText = true
			}
			continue
		}
		if !inText {
			continue
		}
		v, err := strconv.ParseUint(line, 16, 16)
		if err != nil {
			return 0, nil, fmt.Errorf("loader: parse .text word %q: %w", line, err)
		}
		all = append(all, uint16(v))
	}
	if err := scanner.Err(); err != nil {
		return 0, nil, fmt.Errorf("loader: scan object file: %w", err)
	}
	if !sawText || len(all) == 0 {
		return 0, nil, ErrEmptyImage
	}

	origin = all[0]
	words = make([]int16, len(all)-1)
	for i, w := range all[1:] {
		words[i] = int16(w)
	}
	return origin, words, nil
}

// Load detects the image format and loads it, returning origin and
// words ready to hand to vm.NewMachine.
func Load(r io.Reader) (origin uint16, words []int16, err error) {
	format, r, err := Detect(r)
	if err != nil {
		return 0, nil, err
	}
	switch format {
	case FormatObject:
		return LoadObject(r)
	default:
		return LoadRaw(r)
	}
}
