// Package printer holds the architecture-specific formatting collaborators
// consumed by the renderer: they turn segments, symbols and operands into
// display text, nothing more.
package printer

import (
	"fmt"
	"strings"

	"disview/listing"
)

// M6502 formats listings for the MOS 6502 family. Bits controls the hex
// width used in segment header ranges.
type M6502 struct {
	Bits int
}

func NewM6502(bits int) *M6502 {
	if bits <= 0 {
		bits = 16
	}
	return &M6502{Bits: bits}
}

// SegmentLines renders a segment header. A nil segment still produces a
// header so the listing never has a silent hole.
func (p *M6502) SegmentLines(seg *listing.Segment) []string {
	if seg == nil {
		return []string{"; segment ???"}
	}
	digits := p.Bits / 4
	header := fmt.Sprintf("; segment %s  %0*x-%0*x", seg.Name, digits, seg.Start, digits, seg.End-1)
	return []string{header}
}

// FunctionParts decomposes a function label into prefix, name and suffix.
// 6502 listings use bare "name:" labels, so the prefix stays empty.
func (p *M6502) FunctionParts(sym *listing.Symbol) (string, string, string) {
	if sym == nil {
		return "", "sub_????", ":"
	}
	return "", sym.Name, ":"
}

// OperandStrings returns the instruction's operands in index order. Display
// text and size hints are produced at decode time; the printer only
// normalizes casing so listings stay uniform across sources.
func (p *M6502) OperandStrings(ins *listing.Instruction) []listing.Operand {
	if len(ins.Operands) == 0 {
		return nil
	}
	out := make([]listing.Operand, len(ins.Operands))
	copy(out, ins.Operands)
	for i := range out {
		out[i].Text = strings.ToLower(out[i].Text)
	}
	return out
}
