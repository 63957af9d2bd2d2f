package disasm

import (
	"testing"

	"disview/listing"
)

func TestDecodeBasicProgram(t *testing.T) {
	// lda #$01; sta $0200; jmp $0600
	data := []byte{0xa9, 0x01, 0x8d, 0x00, 0x02, 0x4c, 0x00, 0x06}
	out := Decode(0x0600, data)

	if len(out) != 3 {
		t.Fatalf("decoded %d instructions, want 3", len(out))
	}

	tests := []struct {
		addr     uint64
		mnemonic string
		text     string
		kind     listing.OperandKind
	}{
		{0x0600, "lda", "#$01", listing.OpNumeric},
		{0x0602, "sta", "$0200", listing.OpNumeric | listing.OpMemory},
		{0x0605, "jmp", "$0600", listing.OpNumeric | listing.OpMemory},
	}
	for i, tt := range tests {
		ins := out[i]
		if ins.Address != tt.addr {
			t.Fatalf("instruction %d at %#x, want %#x", i, ins.Address, tt.addr)
		}
		if ins.Mnemonic != tt.mnemonic {
			t.Fatalf("instruction %d mnemonic %q, want %q", i, ins.Mnemonic, tt.mnemonic)
		}
		if len(ins.Operands) != 1 {
			t.Fatalf("instruction %d has %d operands", i, len(ins.Operands))
		}
		if ins.Operands[0].Text != tt.text {
			t.Fatalf("instruction %d operand %q, want %q", i, ins.Operands[0].Text, tt.text)
		}
		if ins.Operands[0].Kind != tt.kind {
			t.Fatalf("instruction %d operand kind %#x, want %#x", i, ins.Operands[0].Kind, tt.kind)
		}
	}
}

func TestDecodeFlags(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want listing.InstrFlag
	}{
		{"jsr is call", []byte{0x20, 0x00, 0x06}, listing.FlagCall},
		{"jmp is jump", []byte{0x4c, 0x00, 0x06}, listing.FlagJump},
		{"bne is conditional jump", []byte{0xd0, 0xfe}, listing.FlagJump | listing.FlagConditional},
		{"rts is stop", []byte{0x60}, listing.FlagStop},
		{"brk is stop", []byte{0x00}, listing.FlagStop},
		{"nop is nop", []byte{0xea}, listing.FlagNop},
		{"undocumented is invalid", []byte{0x02}, listing.FlagInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Decode(0x0600, tt.data)
			if len(out) == 0 {
				t.Fatal("nothing decoded")
			}
			if out[0].Flags != tt.want {
				t.Fatalf("flags %#x, want %#x", out[0].Flags, tt.want)
			}
		})
	}
}

func TestDecodeBranchTarget(t *testing.T) {
	// beq -2 at $0600 branches to $0600
	out := Decode(0x0600, []byte{0xf0, 0xfe})
	if len(out) != 1 {
		t.Fatalf("decoded %d instructions, want 1", len(out))
	}
	op := out[0].Operands[0]
	if op.Text != "$0600" || op.Value != 0x0600 {
		t.Fatalf("branch operand %q value %#x, want $0600", op.Text, op.Value)
	}
}

func TestDecodeTruncatedTail(t *testing.T) {
	// lda absolute with its address cut off: decoded as invalid, not dropped
	out := Decode(0x0600, []byte{0xad, 0x00})
	if len(out) != 1 {
		t.Fatalf("decoded %d instructions, want 1", len(out))
	}
	if !out[0].Is(listing.FlagInvalid) {
		t.Fatalf("truncated instruction flags %#x, want invalid", out[0].Flags)
	}
}

func TestDecodeAddressingModes(t *testing.T) {
	tests := []struct {
		data []byte
		text string
		kind listing.OperandKind
		size string
	}{
		{[]byte{0xb5, 0x10}, "$10,x", listing.OpDisplacement, ""},
		{[]byte{0xbd, 0x00, 0x02}, "$0200,x", listing.OpDisplacement, "word"},
		{[]byte{0x6c, 0x00, 0x03}, "($0300)", listing.OpDisplacement, "word"},
		{[]byte{0xb1, 0x20}, "($20),y", listing.OpDisplacement, ""},
		{[]byte{0x4a}, "a", listing.OpRegister, ""},
	}
	for _, tt := range tests {
		out := Decode(0x0600, tt.data)
		if len(out) == 0 || len(out[0].Operands) != 1 {
			t.Fatalf("decode %x: no operand", tt.data)
		}
		op := out[0].Operands[0]
		if op.Text != tt.text || op.Kind != tt.kind || op.Size != tt.size {
			t.Fatalf("decode %x: operand %q kind %#x size %q, want %q %#x %q",
				tt.data, op.Text, op.Kind, op.Size, tt.text, tt.kind, tt.size)
		}
	}
}

func TestDecodeImpliedHasNoOperand(t *testing.T) {
	out := Decode(0x0600, []byte{0x78})
	if len(out) != 1 || out[0].Mnemonic != "sei" {
		t.Fatalf("unexpected decode: %+v", out)
	}
	if len(out[0].Operands) != 0 {
		t.Fatalf("implied instruction has %d operands", len(out[0].Operands))
	}
}

func TestBuildDocument(t *testing.T) {
	// jsr $0605; rts; [pad]; lda #$00; rts
	data := []byte{
		0x20, 0x05, 0x06, // 0600 jsr $0605
		0x60,       // 0603 rts
		0xea,       // 0604 nop
		0xa9, 0x00, // 0605 lda #$00
		0x60, // 0607 rts
	}
	doc := Build("demo", 0x0600, data)

	// segment + function at 0605 + 5 instructions
	if doc.Size() != 7 {
		t.Fatalf("document has %d items, want 7", doc.Size())
	}
	if doc.ItemAt(0).Kind != listing.KindSegment {
		t.Fatal("first item is not the segment header")
	}

	sym := doc.Symbol(0x0605)
	if sym == nil || sym.Name != "sub_0605" {
		t.Fatalf("call target symbol missing: %+v", sym)
	}

	jsr := doc.Instruction(0x0600)
	if jsr == nil {
		t.Fatal("jsr instruction missing")
	}
	if len(jsr.Comments) != 1 || jsr.Comments[0] != "-> $0605" {
		t.Fatalf("jsr comments %v, want flow target", jsr.Comments)
	}

	seg := doc.Segment(0x0604)
	if seg == nil || seg.Name != "text" {
		t.Fatalf("segment lookup failed: %+v", seg)
	}
	if doc.Segment(0x1000) != nil {
		t.Fatal("address outside image resolved to a segment")
	}
}
