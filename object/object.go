package object

import (
	"encoding/binary"
	"fmt"
	"iter"
	"maps"
	"os"
)

// HEADER_SIZE is the fixed RGVM header length in bytes.
const HEADER_SIZE = 24

// Magic identifies an RGVM object file.
var Magic = [4]byte{'R', 'G', 'V', 'M'}

// Header is the RGVM object file header. All integers are
// little-endian on the wire.
type Header struct {
	Magic       [4]byte
	Version     uint16
	Reserved    uint16
	EntryOffset uint32
	CodeSize    uint32
	DataSize    uint32
	Reserved2   uint32
}

// Object is a parsed RGVM object file.
type Object struct {
	Header Header

	code []byte
	data []byte
}

// Parse parses an RGVM object from raw bytes. The total length must be
// exactly header + code + data or the object is rejected.
func Parse(raw []byte) (obj *Object, err error) {
	if len(raw) < HEADER_SIZE {
		err = ErrTruncated
		return
	}

	var header Header
	copy(header.Magic[:], raw[0:4])
	if header.Magic != Magic {
		err = ErrMagic
		return
	}

	header.Version = binary.LittleEndian.Uint16(raw[4:6])
	header.Reserved = binary.LittleEndian.Uint16(raw[6:8])
	header.EntryOffset = binary.LittleEndian.Uint32(raw[8:12])
	header.CodeSize = binary.LittleEndian.Uint32(raw[12:16])
	header.DataSize = binary.LittleEndian.Uint32(raw[16:20])
	header.Reserved2 = binary.LittleEndian.Uint32(raw[20:24])

	if uint64(len(raw)) != HEADER_SIZE+uint64(header.CodeSize)+uint64(header.DataSize) {
		err = ErrSize
		return
	}

	codeEnd := uint64(HEADER_SIZE) + uint64(header.CodeSize)
	obj = &Object{
		Header: header,
		code:   raw[HEADER_SIZE:codeEnd],
		data:   raw[codeEnd:],
	}

	return
}

// Load reads and parses an RGVM object file from disk.
func Load(path string) (obj *Object, err error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return
	}

	return Parse(raw)
}

// Code returns the code section.
func (obj *Object) Code() []byte {
	return obj.code
}

// Data returns the data section.
func (obj *Object) Data() []byte {
	return obj.data
}

// Entry returns the entry point offset into the code section.
func (obj *Object) Entry() uint32 {
	return obj.Header.EntryOffset
}

// Words iterates the code section as (offset, little-endian word)
// pairs. A trailing partial word is not yielded.
func (obj *Object) Words() iter.Seq2[uint32, uint32] {
	return func(yield func(offset, word uint32) bool) {
		for offset := 0; offset+4 <= len(obj.code); offset += 4 {
			if !yield(uint32(offset), binary.LittleEndian.Uint32(obj.code[offset:])) {
				return
			}
		}
	}
}

// Defines for the object header fields.
func (obj *Object) Defines() iter.Seq2[string, string] {
	defines := map[string]string{
		"VERSION":      fmt.Sprintf("%v", obj.Header.Version),
		"ENTRY_OFFSET": fmt.Sprintf("%#x", obj.Header.EntryOffset),
		"CODE_SIZE":    fmt.Sprintf("%v", obj.Header.CodeSize),
		"DATA_SIZE":    fmt.Sprintf("%v", obj.Header.DataSize),
	}

	return maps.All(defines)
}
