package ui

import (
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"

	"disview/config"
)

// GotoBar is a one-line hex address prompt drawn over the listing.
type GotoBar struct {
	input   string
	focused bool

	Theme    *config.ColorScheme
	OnSubmit func(addr uint64)
	OnCancel func()
}

func NewGotoBar() *GotoBar {
	return &GotoBar{focused: true}
}

// Prefill seeds the input from pasted text. Anything that does not look like
// a hex address is ignored.
func (g *GotoBar) Prefill(text string) {
	t := strings.ToLower(strings.TrimSpace(text))
	t = strings.TrimPrefix(t, "$")
	t = strings.TrimPrefix(t, "0x")
	if t == "" || len(t) > 16 {
		return
	}
	if _, err := strconv.ParseUint(t, 16, 64); err != nil {
		return
	}
	g.input = t
}

func (g *GotoBar) Render(screen tcell.Screen, x, y, width, height int) {
	theme := g.Theme
	if theme == nil {
		theme = config.Themes["monokai"]
	}

	style := tcell.StyleDefault.Background(theme.StatusBarBg).Foreground(theme.StatusBarFg)
	label := " goto: $" + g.input

	col := x
	for _, ch := range label {
		if col >= x+width {
			break
		}
		screen.SetContent(col, y, ch, nil, style)
		col++
	}
	for ; col < x+width; col++ {
		screen.SetContent(col, y, ' ', nil, style)
	}
	screen.ShowCursor(x+len([]rune(label)), y)
}

func (g *GotoBar) HandleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape:
		if g.OnCancel != nil {
			g.OnCancel()
		}
		return true
	case tcell.KeyEnter:
		if g.input == "" {
			if g.OnCancel != nil {
				g.OnCancel()
			}
			return true
		}
		addr, err := strconv.ParseUint(g.input, 16, 64)
		if err == nil && g.OnSubmit != nil {
			g.OnSubmit(addr)
		}
		return true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(g.input) > 0 {
			g.input = g.input[:len(g.input)-1]
		}
		return true
	case tcell.KeyRune:
		r := ev.Rune()
		if strings.ContainsRune("0123456789abcdefABCDEF", r) && len(g.input) < 16 {
			g.input += strings.ToLower(string(r))
		}
		return true
	}
	return true // modal: swallow everything while open
}

func (g *GotoBar) HandleMouse(ev *tcell.EventMouse) bool { return true }
func (g *GotoBar) IsFocused() bool                       { return g.focused }
func (g *GotoBar) SetFocused(f bool)                     { g.focused = f }
