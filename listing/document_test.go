package listing

import "testing"

func buildDoc() *Document {
	doc := NewDocument("t")
	doc.AddSegment("text", 0x100, 0x200)
	doc.AddFunction("start", 0x100)
	doc.AddInstruction(&Instruction{Address: 0x100, Mnemonic: "sei"})
	doc.AddInstruction(&Instruction{Address: 0x101, Mnemonic: "cld"})
	doc.AddInstruction(&Instruction{Address: 0x102, Mnemonic: "rts", Flags: FlagStop})
	return doc
}

func TestDocumentLookups(t *testing.T) {
	doc := buildDoc()

	if doc.Size() != 5 {
		t.Fatalf("size %d, want 5", doc.Size())
	}
	if seg := doc.Segment(0x150); seg == nil || seg.Name != "text" {
		t.Fatalf("segment lookup: %+v", seg)
	}
	if doc.Segment(0x200) != nil {
		t.Fatal("segment end is exclusive")
	}
	if sym := doc.Symbol(0x100); sym == nil || sym.Name != "start" {
		t.Fatalf("symbol lookup: %+v", sym)
	}
	if doc.Symbol(0x101) != nil {
		t.Fatal("symbol lookup at non-function address")
	}
	if ins := doc.Instruction(0x102); ins == nil || ins.Mnemonic != "rts" {
		t.Fatalf("instruction lookup: %+v", ins)
	}
	if doc.Instruction(0x999) != nil {
		t.Fatal("instruction lookup outside document")
	}
}

func TestItemAtOutOfRange(t *testing.T) {
	doc := buildDoc()
	if it := doc.ItemAt(-1); it.Kind != KindUnknown {
		t.Fatalf("negative index returned %+v", it)
	}
	if it := doc.ItemAt(doc.Size()); it.Kind != KindUnknown {
		t.Fatalf("past-end index returned %+v", it)
	}
}

func TestItemIndexKeepsFirst(t *testing.T) {
	doc := buildDoc()
	// 0x100 hosts the segment header, the function and an instruction; the
	// index points at the first of them.
	if i := doc.ItemIndex(0x100); i != 0 {
		t.Fatalf("ItemIndex(0x100) = %d, want 0", i)
	}
	if i := doc.ItemIndex(0x102); i != 4 {
		t.Fatalf("ItemIndex(0x102) = %d, want 4", i)
	}
	if i := doc.ItemIndex(0x999); i != -1 {
		t.Fatalf("ItemIndex(0x999) = %d, want -1", i)
	}
}

func TestNearestIndex(t *testing.T) {
	doc := buildDoc()
	if i := doc.NearestIndex(0x101); i != 3 {
		t.Fatalf("exact hit = %d, want 3", i)
	}
	// No item right at 0x1b0: fall back to the last one before it.
	if i := doc.NearestIndex(0x1b0); i != 4 {
		t.Fatalf("between items = %d, want 4", i)
	}
	if i := doc.NearestIndex(0x0); i != 0 {
		t.Fatalf("before first = %d, want 0", i)
	}
}

func TestCommentAppends(t *testing.T) {
	doc := buildDoc()
	doc.Comment(0x101, "first")
	doc.Comment(0x101, "second")
	doc.Comment(0x999, "dropped silently")

	ins := doc.Instruction(0x101)
	if len(ins.Comments) != 2 || ins.Comments[0] != "first" || ins.Comments[1] != "second" {
		t.Fatalf("comments %v", ins.Comments)
	}
}

func TestSymbolsSorted(t *testing.T) {
	doc := NewDocument("t")
	doc.AddFunction("b", 0x300)
	doc.AddFunction("a", 0x100)
	doc.AddFunction("c", 0x200)

	syms := doc.Symbols()
	if len(syms) != 3 {
		t.Fatalf("got %d symbols", len(syms))
	}
	if syms[0].Address != 0x100 || syms[1].Address != 0x200 || syms[2].Address != 0x300 {
		t.Fatalf("symbols not sorted by address: %+v", syms)
	}
}
