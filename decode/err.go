package decode

import (
	"errors"

	"github.com/ezrec/irre2/translate"
)

var f = translate.From

var (
	// Decode errors
	ErrOpcodeUnknown   = errors.New(f("opcode unknown"))
	ErrRegisterInvalid = errors.New(f("register invalid"))
	ErrTruncated       = errors.New(f("input truncated"))
)
