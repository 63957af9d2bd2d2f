package ui

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"disview/config"
	"disview/listing"
	"disview/render"
)

// cellFont is the terminal font model: one cell wide, one cell high. The
// renderer's cursor units are then screen columns directly.
type cellFont struct{}

func (cellFont) Unit() (int, int) { return 1, 1 }

// screenPaint is the per-pass draw target handed to the renderer as
// userdata: where on the tcell screen this pass lands and how styles
// resolve.
type screenPaint struct {
	screen    tcell.Screen
	x, y      int
	w, h      int
	cursorRow int
	theme     *config.ColorScheme
}

// linePaint captures one rendered line as plain text, for clipboard copy.
type linePaint struct {
	cells []rune
}

// ListingView scrolls a rendered disassembly listing. It owns the renderer
// instance, so the comment column keeps its alignment for the lifetime of
// the view no matter where the user scrolls.
type ListingView struct {
	doc      *listing.Document
	renderer *render.Renderer

	Theme *config.ColorScheme

	scroll  int
	cursor  int
	height  int // rows of the last Render, for paging
	focused bool
}

func NewListingView(doc *listing.Document, p render.Printer, bits int) *ListingView {
	lv := &ListingView{doc: doc}
	lv.renderer = render.New(doc, p, cellFont{}, lv.drawRun, bits)
	return lv
}

// SetDocument swaps the underlying document, keeping scroll position sane.
// The renderer is rebuilt: a new document means a new listing, but comment
// alignment is per renderer, so it starts fresh too.
func (lv *ListingView) SetDocument(doc *listing.Document, p render.Printer, bits int) {
	lv.doc = doc
	lv.renderer = render.New(doc, p, cellFont{}, lv.drawRun, bits)
	lv.clampCursor()
}

func (lv *ListingView) Document() *listing.Document { return lv.doc }

// CursorLine returns the selected line index.
func (lv *ListingView) CursorLine() int { return lv.cursor }

// CursorAddress returns the address of the selected item.
func (lv *ListingView) CursorAddress() uint64 {
	return lv.doc.ItemAt(lv.cursor).Address
}

// JumpTo moves the cursor to the item at or before addr and scrolls it into
// view.
func (lv *ListingView) JumpTo(addr uint64) {
	lv.cursor = lv.doc.NearestIndex(addr)
	lv.ensureVisible()
}

func (lv *ListingView) drawRun(x, y int, style render.Style, text string, userdata any) {
	switch p := userdata.(type) {
	case *screenPaint:
		lv.drawToScreen(p, x, y, style, text)
	case *linePaint:
		p.place(x, text)
	}
}

func (lv *ListingView) drawToScreen(p *screenPaint, x, y int, style render.Style, text string) {
	if y < 0 || y >= p.h {
		return
	}
	st := p.theme.RunStyle(style)
	if y == p.cursorRow {
		st = st.Background(p.theme.Selection)
	}
	col := p.x + x
	for _, r := range text {
		if runewidth.RuneWidth(r) == 0 {
			continue
		}
		if col >= p.x+p.w {
			break
		}
		if col >= p.x {
			p.screen.SetContent(col, p.y+y, r, nil, st)
		}
		col++
	}
}

func (p *linePaint) place(x int, text string) {
	for len(p.cells) < x {
		p.cells = append(p.cells, ' ')
	}
	for i, r := range []rune(text) {
		pos := x + i
		for len(p.cells) <= pos {
			p.cells = append(p.cells, ' ')
		}
		p.cells[pos] = r
	}
}

// LineText renders one listing line into a plain string, exactly as the
// screen would show it. Used for clipboard copy.
func (lv *ListingView) LineText(line int) string {
	p := &linePaint{}
	lv.renderer.Render(line, 1, p)
	return strings.TrimRight(string(p.cells), " ")
}

func (lv *ListingView) Render(screen tcell.Screen, x, y, w, h int) {
	theme := lv.Theme
	if theme == nil {
		theme = config.Themes["monokai"]
	}
	if w <= 0 || h <= 0 {
		return
	}
	lv.height = h
	lv.ensureVisible()

	bg := tcell.StyleDefault.Background(theme.Background).Foreground(theme.Foreground)
	sel := bg.Background(theme.Selection)
	for row := 0; row < h; row++ {
		st := bg
		if lv.scroll+row == lv.cursor && lv.scroll+row < lv.doc.Size() {
			st = sel
		}
		for col := x; col < x+w; col++ {
			screen.SetContent(col, y+row, ' ', nil, st)
		}
	}

	p := &screenPaint{
		screen:    screen,
		x:         x,
		y:         y,
		w:         w,
		h:         h,
		cursorRow: lv.cursor - lv.scroll,
		theme:     theme,
	}
	lv.renderer.Render(lv.scroll, h, p)
}

func (lv *ListingView) HandleKey(ev *tcell.EventKey) bool {
	page := lv.height - 1
	if page < 1 {
		page = 1
	}

	switch ev.Key() {
	case tcell.KeyUp:
		lv.moveCursor(-1)
	case tcell.KeyDown:
		lv.moveCursor(1)
	case tcell.KeyPgUp:
		lv.moveCursor(-page)
	case tcell.KeyPgDn:
		lv.moveCursor(page)
	case tcell.KeyHome:
		lv.cursor = 0
		lv.ensureVisible()
	case tcell.KeyEnd:
		lv.cursor = lv.doc.Size() - 1
		lv.clampCursor()
		lv.ensureVisible()
	default:
		return false
	}
	return true
}

func (lv *ListingView) HandleMouse(ev *tcell.EventMouse) bool {
	switch {
	case ev.Buttons()&tcell.WheelUp != 0:
		lv.scrollBy(-3)
	case ev.Buttons()&tcell.WheelDown != 0:
		lv.scrollBy(3)
	default:
		return false
	}
	return true
}

func (lv *ListingView) IsFocused() bool   { return lv.focused }
func (lv *ListingView) SetFocused(f bool) { lv.focused = f }
func (lv *ListingView) ScrollOffset() int { return lv.scroll }

func (lv *ListingView) moveCursor(delta int) {
	lv.cursor += delta
	lv.clampCursor()
	lv.ensureVisible()
}

func (lv *ListingView) scrollBy(delta int) {
	lv.scroll += delta
	maxScroll := lv.doc.Size() - lv.height
	if maxScroll < 0 {
		maxScroll = 0
	}
	if lv.scroll > maxScroll {
		lv.scroll = maxScroll
	}
	if lv.scroll < 0 {
		lv.scroll = 0
	}
	// keep the cursor inside the window
	if lv.cursor < lv.scroll {
		lv.cursor = lv.scroll
	}
	if lv.height > 0 && lv.cursor >= lv.scroll+lv.height {
		lv.cursor = lv.scroll + lv.height - 1
	}
	lv.clampCursor()
}

func (lv *ListingView) clampCursor() {
	if lv.cursor >= lv.doc.Size() {
		lv.cursor = lv.doc.Size() - 1
	}
	if lv.cursor < 0 {
		lv.cursor = 0
	}
	if lv.scroll < 0 {
		lv.scroll = 0
	}
}

func (lv *ListingView) ensureVisible() {
	if lv.height <= 0 {
		return
	}
	if lv.cursor < lv.scroll {
		lv.scroll = lv.cursor
	}
	if lv.cursor >= lv.scroll+lv.height {
		lv.scroll = lv.cursor - lv.height + 1
	}
	if lv.scroll < 0 {
		lv.scroll = 0
	}
}
