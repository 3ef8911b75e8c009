package object

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
)

// build assembles a valid RGVM image from code and data sections.
func build(entry uint32, code, data []byte) (raw []byte) {
	raw = make([]byte, HEADER_SIZE)
	copy(raw[0:4], Magic[:])
	binary.LittleEndian.PutUint16(raw[4:6], 1)
	binary.LittleEndian.PutUint32(raw[8:12], entry)
	binary.LittleEndian.PutUint32(raw[12:16], uint32(len(code)))
	binary.LittleEndian.PutUint32(raw[16:20], uint32(len(data)))
	raw = append(raw, code...)
	raw = append(raw, data...)
	return
}

func TestParse(t *testing.T) {
	assert := assert.New(t)

	code := []byte{
		0x00, 0x03, 0x02, 0x01, // add r2 r3 r0
		0x00, 0x01, 0x00, 0x0B, // set r0 $100
	}
	data := []byte{0xDE, 0xAD}

	obj, err := Parse(build(4, code, data))
	assert.NoError(err)
	assert.Equal(uint16(1), obj.Header.Version)
	assert.Equal(uint32(4), obj.Entry())
	assert.Equal(code, obj.Code())
	assert.Equal(data, obj.Data())
}

func TestParseEmptySections(t *testing.T) {
	assert := assert.New(t)

	obj, err := Parse(build(0, nil, nil))
	assert.NoError(err)
	assert.Empty(obj.Code())
	assert.Empty(obj.Data())
}

func TestParseErrors(t *testing.T) {
	assert := assert.New(t)

	raw := build(0, []byte{1, 2, 3, 4}, nil)

	_, err := Parse(raw[:HEADER_SIZE-1])
	assert.ErrorIs(err, ErrTruncated)

	// Wrong magic
	bad := append([]byte{}, raw...)
	bad[0] = 'X'
	_, err = Parse(bad)
	assert.ErrorIs(err, ErrMagic)

	// Total length must equal header + code + data exactly.
	_, err = Parse(raw[:len(raw)-1])
	assert.ErrorIs(err, ErrSize)

	_, err = Parse(append(raw, 0x00))
	assert.ErrorIs(err, ErrSize)
}

func TestWords(t *testing.T) {
	assert := assert.New(t)

	code := []byte{
		0x00, 0x03, 0x02, 0x01,
		0x00, 0x01, 0x00, 0x0B,
		0xFF, // trailing partial word is dropped
	}

	// Size fields are byte-exact, so the partial byte still counts.
	obj, err := Parse(build(0, code, nil))
	assert.NoError(err)

	var offsets []uint32
	var words []uint32
	for offset, word := range obj.Words() {
		offsets = append(offsets, offset)
		words = append(words, word)
	}

	assert.Equal([]uint32{0, 4}, offsets)
	assert.Equal([]uint32{0x01020300, 0x0B000100}, words)
}

func TestDefines(t *testing.T) {
	assert := assert.New(t)

	obj, err := Parse(build(0x10, []byte{1, 2, 3, 4}, []byte{5}))
	assert.NoError(err)

	defines := map[string]string{}
	for key, value := range obj.Defines() {
		defines[key] = value
	}

	assert.Equal("0x10", defines["ENTRY_OFFSET"])
	assert.Equal("4", defines["CODE_SIZE"])
	assert.Equal("1", defines["DATA_SIZE"])
	assert.Equal("1", defines["VERSION"])
}
