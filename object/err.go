package object

import (
	"errors"

	"github.com/ezrec/irre2/translate"
)

var f = translate.From

var (
	// Object file errors
	ErrMagic     = errors.New(f("bad magic"))
	ErrTruncated = errors.New(f("object truncated"))
	ErrSize      = errors.New(f("object size mismatch"))
)
