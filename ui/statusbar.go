package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"disview/config"
)

type StatusBar struct {
	Arch     string // architecture label, e.g. "6502"
	Filename string
	Address  uint64
	Line     int
	Total    int
	Bits     int
	Message  string // temporary status message
	Theme    *config.ColorScheme
}

func NewStatusBar() *StatusBar {
	return &StatusBar{Arch: "6502", Bits: 16}
}

func (s *StatusBar) Render(screen tcell.Screen, x, y, width, height int) {
	theme := s.Theme
	if theme == nil {
		theme = config.Themes["monokai"]
	}

	style := tcell.StyleDefault.Background(theme.StatusBarBg).Foreground(theme.StatusBarFg)
	modeStyle := tcell.StyleDefault.Background(theme.StatusBarModeBg).Foreground(tcell.ColorBlack).Bold(true)

	// Clear the line
	for cx := x; cx < x+width; cx++ {
		screen.SetContent(cx, y, ' ', nil, style)
	}

	col := x

	arch := " " + s.Arch + " "
	for _, ch := range arch {
		if col < x+width {
			screen.SetContent(col, y, ch, nil, modeStyle)
			col++
		}
	}

	if col < x+width {
		screen.SetContent(col, y, ' ', nil, style)
		col++
	}

	// If there's a temporary message, show that instead
	if s.Message != "" {
		for _, ch := range s.Message {
			if col < x+width {
				screen.SetContent(col, y, ch, nil, style)
				col++
			}
		}
		return
	}

	fname := s.Filename
	if fname == "" {
		fname = "untitled"
	}
	fname = runewidth.Truncate(fname, width/2, "…")
	for _, ch := range fname {
		if col < x+width {
			screen.SetContent(col, y, ch, nil, style)
			col++
		}
	}

	right := fmt.Sprintf("$%0*x │ line %d/%d │ %d-bit ",
		s.Bits/4, s.Address, s.Line+1, s.Total, s.Bits)
	rightRunes := []rune(right)
	rightStart := x + width - len(rightRunes)
	if rightStart > col+2 {
		for i, ch := range rightRunes {
			screen.SetContent(rightStart+i, y, ch, nil, style)
		}
	}
}

func (s *StatusBar) HandleKey(ev *tcell.EventKey) bool     { return false }
func (s *StatusBar) HandleMouse(ev *tcell.EventMouse) bool { return false }
func (s *StatusBar) IsFocused() bool                       { return false }
func (s *StatusBar) SetFocused(f bool)                     {}
