package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"disview/config"
	"disview/listing"
)

type symbolEntry struct {
	label   string
	addr    uint64
	header  bool // section headers are not selectable
}

// SymbolPane lists segments and functions with jump-to-address on Enter.
type SymbolPane struct {
	entries  []symbolEntry
	selected int
	scroll   int
	focused  bool

	Theme  *config.ColorScheme
	OnJump func(addr uint64)
}

func NewSymbolPane(doc *listing.Document) *SymbolPane {
	sp := &SymbolPane{}
	sp.Reload(doc)
	return sp
}

// Reload rebuilds the entry list from the document.
func (sp *SymbolPane) Reload(doc *listing.Document) {
	sp.entries = sp.entries[:0]

	segs := doc.Segments()
	if len(segs) > 0 {
		sp.entries = append(sp.entries, symbolEntry{label: "SEGMENTS", header: true})
		for _, s := range segs {
			sp.entries = append(sp.entries, symbolEntry{
				label: fmt.Sprintf("%s %04x", s.Name, s.Start),
				addr:  s.Start,
			})
		}
	}

	syms := doc.Symbols()
	if len(syms) > 0 {
		sp.entries = append(sp.entries, symbolEntry{label: "FUNCTIONS", header: true})
		for _, s := range syms {
			sp.entries = append(sp.entries, symbolEntry{label: s.Name, addr: s.Address})
		}
	}

	sp.selected = sp.firstSelectable(0, 1)
	sp.scroll = 0
}

func (sp *SymbolPane) firstSelectable(from, dir int) int {
	for i := from; i >= 0 && i < len(sp.entries); i += dir {
		if !sp.entries[i].header {
			return i
		}
	}
	return -1
}

func (sp *SymbolPane) Render(screen tcell.Screen, x, y, w, h int) {
	theme := sp.Theme
	if theme == nil {
		theme = config.Themes["monokai"]
	}
	if w <= 1 || h <= 0 {
		return
	}

	bg := tcell.StyleDefault.Background(theme.Background)
	headerStyle := bg.Foreground(theme.PaneHeaderFg).Bold(true)
	itemStyle := bg.Foreground(theme.PaneItemFg)
	selStyle := itemStyle.Background(theme.PaneSelectionBg)
	borderStyle := bg.Foreground(theme.PaneBorder)

	// keep selection in view
	if sp.selected >= 0 {
		if sp.selected < sp.scroll {
			sp.scroll = sp.selected
		}
		if sp.selected >= sp.scroll+h {
			sp.scroll = sp.selected - h + 1
		}
	}

	textW := w - 1 // last column is the border
	for row := 0; row < h; row++ {
		for col := x; col < x+textW; col++ {
			screen.SetContent(col, y+row, ' ', nil, bg)
		}
		screen.SetContent(x+w-1, y+row, '│', nil, borderStyle)

		idx := sp.scroll + row
		if idx >= len(sp.entries) {
			continue
		}
		e := sp.entries[idx]

		st := itemStyle
		label := e.label
		switch {
		case e.header:
			st = headerStyle
		case idx == sp.selected && sp.focused:
			st = selStyle
		default:
			label = "  " + label
		}
		if !e.header && idx == sp.selected && sp.focused {
			label = "> " + e.label
		}

		label = runewidth.Truncate(label, textW, "…")
		col := x
		for _, r := range label {
			if col >= x+textW {
				break
			}
			screen.SetContent(col, y+row, r, nil, st)
			col += runewidth.RuneWidth(r)
		}
	}
}

func (sp *SymbolPane) HandleKey(ev *tcell.EventKey) bool {
	if !sp.focused {
		return false
	}

	switch ev.Key() {
	case tcell.KeyUp:
		if next := sp.firstSelectable(sp.selected-1, -1); next >= 0 {
			sp.selected = next
		}
		return true
	case tcell.KeyDown:
		if next := sp.firstSelectable(sp.selected+1, 1); next >= 0 {
			sp.selected = next
		}
		return true
	case tcell.KeyEnter:
		if sp.selected >= 0 && sp.OnJump != nil {
			sp.OnJump(sp.entries[sp.selected].addr)
		}
		return true
	}
	return false
}

func (sp *SymbolPane) HandleMouse(ev *tcell.EventMouse) bool { return false }
func (sp *SymbolPane) IsFocused() bool                       { return sp.focused }
func (sp *SymbolPane) SetFocused(f bool)                     { sp.focused = f }
