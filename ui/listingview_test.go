package ui

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"disview/listing"
	"disview/printer"
)

func testDoc() *listing.Document {
	doc := listing.NewDocument("prog.bin")
	doc.AddSegment("text", 0x0600, 0x0605)
	doc.AddFunction("start", 0x0600)
	doc.AddInstruction(&listing.Instruction{
		Address:  0x0600,
		Mnemonic: "lda",
		Operands: []listing.Operand{{Kind: listing.OpNumeric, Text: "#$01"}},
		Bytes:    []byte{0xa9, 0x01},
	})
	doc.AddInstruction(&listing.Instruction{
		Address:  0x0602,
		Mnemonic: "rts",
		Flags:    listing.FlagStop,
		Bytes:    []byte{0x60},
	})
	return doc
}

func testView() *ListingView {
	return NewListingView(testDoc(), printer.NewM6502(16), 16)
}

func TestLineTextMatchesScreenLayout(t *testing.T) {
	lv := testView()

	want := []string{
		"; segment text  0600-0604",
		"          start:",
		"text:0600  lda #$01",
		"text:0602  rts",
	}
	for i, w := range want {
		if got := lv.LineText(i); got != w {
			t.Fatalf("line %d: got %q, want %q", i, got, w)
		}
	}
}

func TestJumpToMovesCursorToAddress(t *testing.T) {
	lv := testView()

	lv.JumpTo(0x0602)
	if lv.CursorAddress() != 0x0602 {
		t.Fatalf("expected cursor at $0602, got $%04x", lv.CursorAddress())
	}

	// Address between items snaps to the item before it
	lv.JumpTo(0x0601)
	if lv.CursorAddress() != 0x0600 {
		t.Fatalf("expected cursor at $0600 for in-between address, got $%04x", lv.CursorAddress())
	}
}

func TestListingKeyNavigation(t *testing.T) {
	lv := testView()
	lv.height = 24

	lv.HandleKey(tcell.NewEventKey(tcell.KeyEnd, 0, tcell.ModNone))
	if lv.CursorLine() != 3 {
		t.Fatalf("expected End to move to last line, got %d", lv.CursorLine())
	}

	lv.HandleKey(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone))
	if lv.CursorLine() != 2 {
		t.Fatalf("expected Up to move cursor to line 2, got %d", lv.CursorLine())
	}

	lv.HandleKey(tcell.NewEventKey(tcell.KeyHome, 0, tcell.ModNone))
	if lv.CursorLine() != 0 {
		t.Fatalf("expected Home to move to line 0, got %d", lv.CursorLine())
	}
}

func TestListingRenderToScreen(t *testing.T) {
	lv := testView()

	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init failed: %v", err)
	}
	defer screen.Fini()

	lv.Render(screen, 0, 0, 80, 24)

	r, _, _, _ := screen.GetContent(0, 0)
	if r != ';' {
		t.Fatalf("expected segment header at top-left, got %q", r)
	}
	r, _, _, _ = screen.GetContent(0, 2)
	if r != 't' {
		t.Fatalf("expected instruction address at line 2, got %q", r)
	}
}

func TestGotoBarSubmitsHexAddress(t *testing.T) {
	g := NewGotoBar()
	g.SetFocused(true)

	var got uint64
	submitted := false
	g.OnSubmit = func(addr uint64) {
		got = addr
		submitted = true
	}

	for _, r := range "0602" {
		g.HandleKey(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone))
	}
	g.HandleKey(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))

	if !submitted {
		t.Fatalf("expected submit after Enter")
	}
	if got != 0x0602 {
		t.Fatalf("expected address $0602, got $%04x", got)
	}
}

func TestGotoBarPrefillAcceptsOnlyHexAddresses(t *testing.T) {
	tests := []struct {
		name string
		text string
		want uint64
		ok   bool
	}{
		{"bare hex", "0602", 0x0602, true},
		{"dollar prefix", "$c000", 0xc000, true},
		{"0x prefix with spaces", "  0x1a2b  ", 0x1a2b, true},
		{"listing line", "text:0600  lda #$01", 0, false},
		{"empty", "", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGotoBar()
			g.SetFocused(true)

			var got uint64
			submitted := false
			g.OnSubmit = func(addr uint64) {
				got = addr
				submitted = true
			}
			g.OnCancel = func() {}

			g.Prefill(tt.text)
			g.HandleKey(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))

			if submitted != tt.ok {
				t.Fatalf("submitted = %v, want %v", submitted, tt.ok)
			}
			if tt.ok && got != tt.want {
				t.Fatalf("submitted $%04x, want $%04x", got, tt.want)
			}
		})
	}
}

func TestGotoBarEscapeCancels(t *testing.T) {
	g := NewGotoBar()
	g.SetFocused(true)

	canceled := false
	g.OnCancel = func() { canceled = true }
	g.OnSubmit = func(addr uint64) { t.Fatalf("unexpected submit") }

	g.HandleKey(tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone))
	g.HandleKey(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone))

	if !canceled {
		t.Fatalf("expected cancel after Escape")
	}
}

func TestSymbolPaneJumpsOnEnter(t *testing.T) {
	sp := NewSymbolPane(testDoc())
	sp.SetFocused(true)

	var got uint64
	sp.OnJump = func(addr uint64) { got = addr }

	// First selectable entry is the "text" segment
	sp.HandleKey(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
	if got != 0x0600 {
		t.Fatalf("expected jump to $0600, got $%04x", got)
	}
}
