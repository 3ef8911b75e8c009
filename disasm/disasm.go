package disasm

import (
	"encoding/binary"
	"fmt"
	"log"
	"strings"

	"github.com/ezrec/irre2/decode"
	"github.com/ezrec/irre2/isa"
	"github.com/ezrec/irre2/lift"
)

// Line is one scanned instruction site.
type Line struct {
	Addr  uint32
	Word  uint32
	Valid bool
	Text  string // Assembly text, or the invalid placeholder.

	In    decode.Instruction
	Ops   []lift.Op
	Edges []lift.Edge
}

// Scanner walks code sections through the decode/lift pipeline.
type Scanner struct {
	Verbose bool   // Set to enable verbose logging.
	Org     uint32 // Load address of the first code byte.
	Labels  *LabelTable
}

// NewScanner creates a scanner for code loaded at org.
func NewScanner(org uint32) (sc *Scanner) {
	sc = &Scanner{
		Org:    org,
		Labels: NewLabelTable(),
	}

	return
}

// Scan decodes and lifts every word of the code section. A word that
// fails to decode produces an invalid Line and the scan advances to
// the next word; scanning never aborts.
func (sc *Scanner) Scan(code []byte) (lines []Line) {
	for offset := 0; offset+isa.INSTRUCTION_SIZE <= len(code); offset += isa.INSTRUCTION_SIZE {
		addr := sc.Org + uint32(offset)
		word := binary.LittleEndian.Uint32(code[offset:])

		line := Line{
			Addr: addr,
			Word: word,
			Text: "???",
		}

		in, err := decode.DecodeBytes(code, offset)
		if err != nil {
			if sc.Verbose {
				log.Printf("disasm: %08x: %08x: %v", addr, word, err)
			}
			lines = append(lines, line)
			continue
		}

		out := lift.Lift(in, addr, sc.Labels)

		line.Valid = true
		line.Text = in.String()
		line.In = in
		line.Ops = out.Ops
		line.Edges = out.Edges

		lines = append(lines, line)
	}

	return
}

// Listing renders scanned lines as text, annotating labeled addresses.
func (sc *Scanner) Listing(lines []Line) string {
	var sb strings.Builder

	for _, line := range lines {
		if sc.Labels.Has(line.Addr) {
			fmt.Fprintf(&sb, "%v:\n", sc.Labels.Name(line.Addr))
		}
		fmt.Fprintf(&sb, "  %08x: %08x  %v\n", line.Addr, line.Word, line.Text)
	}

	return sb.String()
}
