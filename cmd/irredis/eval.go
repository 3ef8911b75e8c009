package main

import (
	"fmt"
	"iter"
	"strconv"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// evalExpr evaluates a compile-time integer expression, with the given
// defines available as predefined values. Non-integer defines are
// skipped.
func evalExpr(expr string, defines iter.Seq2[string, string]) (value uint32, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}

	pred := starlark.StringDict{}
	for key, str := range defines {
		v64, verr := strconv.ParseInt(str, 0, 64)
		if verr != nil {
			continue
		}
		pred[key] = starlark.MakeInt(int(v64))
	}

	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}

	st_rc, ok := dict["rc"]
	if !ok {
		err = fmt.Errorf("%q is not a valid expression", expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = fmt.Errorf("%q is not an integer expression", expr)
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok {
		err = fmt.Errorf("%q is not an integer expression", expr)
		return
	}

	value = uint32(st_int64)
	return
}

// clampCode truncates a code section to limit bytes. A zero limit
// means the whole section.
func clampCode(code []byte, limit uint32) []byte {
	if limit != 0 && uint64(limit) < uint64(len(code)) {
		code = code[:limit]
	}

	return code
}
