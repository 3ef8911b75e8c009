// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/davecgh/go-spew/spew"

	"github.com/ezrec/irre2/disasm"
	"github.com/ezrec/irre2/internal"
	"github.com/ezrec/irre2/isa"
	"github.com/ezrec/irre2/lift"
	"github.com/ezrec/irre2/object"
)

func main() {
	var raw bool
	var org string
	var length string
	var dump bool
	var output string
	var verbose bool

	flag.BoolVar(&raw, "raw", false, "Input is raw code, not an RGVM object")
	flag.StringVar(&org, "org", "0", "Load address (expression)")
	flag.StringVar(&length, "len", "0", "Code bytes to disassemble (expression, 0 for all)")
	flag.BoolVar(&dump, "lift", false, "Dump lifted IR for each instruction")
	flag.StringVar(&output, "o", "-", "Listing output")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatalf("%v: expected exactly one input file", os.Args[0])
	}
	input := flag.Arg(0)

	data, err := os.ReadFile(input)
	if err != nil {
		log.Fatalf("%v: %v", input, err)
	}

	code := data
	defines := isa.Defines()

	if !raw {
		obj, err := object.Parse(data)
		if err != nil {
			log.Fatalf("%v: %v", input, err)
		}

		if verbose {
			spew.Dump(obj.Header)
		}

		code = obj.Code()
		defines = internal.IterSeq2Concat(obj.Defines(), isa.Defines())
	}

	base, err := evalExpr(org, defines)
	if err != nil {
		log.Fatalf("%v: -org: %v", os.Args[0], err)
	}

	limit, err := evalExpr(length, defines)
	if err != nil {
		log.Fatalf("%v: -len: %v", os.Args[0], err)
	}
	code = clampCode(code, limit)

	ouf := os.Stdout
	if output != "-" {
		ouf, err = os.Create(output)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		defer ouf.Close()
	}

	sc := disasm.NewScanner(base)
	sc.Verbose = verbose

	lines := sc.Scan(code)
	fmt.Fprint(ouf, sc.Listing(lines))

	if dump {
		for _, line := range lines {
			if !line.Valid {
				continue
			}
			fmt.Fprintf(ouf, "\n%08x %v\n%v", line.Addr, line.Text, lift.Tree(line.Ops).String())
		}
	}
}
