// Package disasm is a linear-sweep MOS 6502 decoder that builds a
// listing.Document from a flat memory image. It exists so the viewer has a
// working document source; the renderer does not depend on it.
package disasm

import (
	"fmt"

	"disview/listing"
)

func flagsFor(mnemonic string) listing.InstrFlag {
	switch mnemonic {
	case "brk", "rts", "rti":
		return listing.FlagStop
	case "nop":
		return listing.FlagNop
	case "jsr":
		return listing.FlagCall
	case "jmp":
		return listing.FlagJump
	case "bcc", "bcs", "beq", "bmi", "bne", "bpl", "bvc", "bvs":
		return listing.FlagJump | listing.FlagConditional
	}
	return 0
}

func operandFor(mode addrMode, pc uint16, raw []byte) (listing.Operand, bool) {
	byteAt := func(i int) byte {
		if i < 0 || i >= len(raw) {
			return 0
		}
		return raw[i]
	}
	wordAt := func(i int) uint16 {
		return uint16(byteAt(i)) | uint16(byteAt(i+1))<<8
	}

	op := listing.Operand{Index: 0}
	switch mode {
	case modImp:
		return op, false
	case modAcc:
		op.Kind = listing.OpRegister
		op.Text = "a"
	case modImm:
		op.Kind = listing.OpNumeric
		op.Value = uint64(byteAt(1))
		op.Text = fmt.Sprintf("#$%02x", byteAt(1))
	case modZpg:
		op.Kind = listing.OpNumeric | listing.OpMemory
		op.Value = uint64(byteAt(1))
		op.Text = fmt.Sprintf("$%02x", byteAt(1))
	case modZpx:
		op.Kind = listing.OpDisplacement
		op.Value = uint64(byteAt(1))
		op.Text = fmt.Sprintf("$%02x,x", byteAt(1))
	case modZpy:
		op.Kind = listing.OpDisplacement
		op.Value = uint64(byteAt(1))
		op.Text = fmt.Sprintf("$%02x,y", byteAt(1))
	case modAbs:
		op.Kind = listing.OpNumeric | listing.OpMemory
		op.Size = "word"
		op.Value = uint64(wordAt(1))
		op.Text = fmt.Sprintf("$%04x", wordAt(1))
	case modAbx:
		op.Kind = listing.OpDisplacement
		op.Size = "word"
		op.Value = uint64(wordAt(1))
		op.Text = fmt.Sprintf("$%04x,x", wordAt(1))
	case modAby:
		op.Kind = listing.OpDisplacement
		op.Size = "word"
		op.Value = uint64(wordAt(1))
		op.Text = fmt.Sprintf("$%04x,y", wordAt(1))
	case modInd:
		op.Kind = listing.OpDisplacement
		op.Size = "word"
		op.Value = uint64(wordAt(1))
		op.Text = fmt.Sprintf("($%04x)", wordAt(1))
	case modInx:
		op.Kind = listing.OpDisplacement
		op.Value = uint64(byteAt(1))
		op.Text = fmt.Sprintf("($%02x,x)", byteAt(1))
	case modIny:
		op.Kind = listing.OpDisplacement
		op.Value = uint64(byteAt(1))
		op.Text = fmt.Sprintf("($%02x),y", byteAt(1))
	case modRel:
		target := uint16(int(pc) + 2 + int(int8(byteAt(1))))
		op.Kind = listing.OpNumeric | listing.OpMemory
		op.Value = uint64(target)
		op.Text = fmt.Sprintf("$%04x", target)
	}
	return op, true
}

// Decode sweeps data linearly from org, one instruction per decoded opcode.
// Undocumented opcodes become single-byte invalid instructions rather than
// stopping the sweep.
func Decode(org uint16, data []byte) []*listing.Instruction {
	if len(data) == 0 {
		return nil
	}

	out := make([]*listing.Instruction, 0, len(data)/2)
	pc := org
	consumed := 0
	for consumed < len(data) {
		opcode := data[consumed]
		info, known := opcodes[opcode]

		size := 1
		if known {
			size = modeSize(info.mode)
		}
		if remain := len(data) - consumed; size > remain {
			size = remain
		}
		raw := make([]byte, size)
		copy(raw, data[consumed:consumed+size])

		ins := &listing.Instruction{Address: uint64(pc), Bytes: raw}
		if !known || size < modeSize(info.mode) {
			ins.Mnemonic = "???"
			ins.Flags = listing.FlagInvalid
			ins.Operands = []listing.Operand{{
				Index: 0,
				Kind:  listing.OpNumeric,
				Value: uint64(opcode),
				Text:  fmt.Sprintf("$%02x", opcode),
			}}
		} else {
			ins.Mnemonic = info.mnemonic
			ins.Flags = flagsFor(info.mnemonic)
			if op, ok := operandFor(info.mode, pc, raw); ok {
				ins.Operands = []listing.Operand{op}
			}
		}

		out = append(out, ins)
		consumed += size
		pc = uint16(int(pc) + size)
	}
	return out
}

// flowTarget returns the address a call or jump transfers to, if the operand
// encodes one directly.
func flowTarget(ins *listing.Instruction) (uint64, bool) {
	if !ins.Is(listing.FlagCall) && !ins.Is(listing.FlagJump) {
		return 0, false
	}
	if len(ins.Operands) == 0 {
		return 0, false
	}
	// Only direct targets: indirect and indexed forms resolve at runtime.
	op := ins.Operands[0]
	if !op.Kind.Is(listing.OpNumeric) || !op.Kind.Is(listing.OpMemory) {
		return 0, false
	}
	return op.Value, true
}

// Build decodes data into a complete document: one segment covering the
// image, sub_<addr> function headers at call targets, and flow-target
// comments on transfer instructions.
func Build(name string, org uint16, data []byte) *listing.Document {
	decoded := Decode(org, data)

	targets := make(map[uint64]bool)
	for _, ins := range decoded {
		if !ins.Is(listing.FlagCall) {
			continue
		}
		if target, ok := flowTarget(ins); ok {
			targets[target] = true
		}
	}

	doc := listing.NewDocument(name)
	doc.AddSegment("text", uint64(org), uint64(org)+uint64(len(data)))

	for _, ins := range decoded {
		if targets[ins.Address] {
			doc.AddFunction(fmt.Sprintf("sub_%04x", ins.Address), ins.Address)
		}
		doc.AddInstruction(ins)
		if target, ok := flowTarget(ins); ok {
			doc.Comment(ins.Address, fmt.Sprintf("-> $%04x", target))
		}
	}
	return doc
}
