package viewer

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"disview/clipboardx"
	"disview/config"
	"disview/disasm"
	"disview/listing"
	"disview/printer"
	"disview/ui"

	"github.com/fsnotify/fsnotify"
	"github.com/gdamore/tcell/v2"
)

type Component interface {
	Render(screen tcell.Screen, x, y, width, height int)
	HandleKey(ev *tcell.EventKey) bool
	HandleMouse(ev *tcell.EventMouse) bool
	IsFocused() bool
	SetFocused(bool)
}

type Viewer struct {
	screen tcell.Screen
	cfg    *config.Config

	path string // watched binary, "" for the built-in demo
	name string
	doc  *listing.Document

	listingView *ui.ListingView
	symbolPane  *ui.SymbolPane
	statusBar   *ui.StatusBar
	gotoBar     *ui.GotoBar

	paneOpen  bool
	paneWidth int

	quit        bool
	focusTarget string // "listing", "pane"

	// File watching
	fileWatcher *fsnotify.Watcher

	// Temporary status messages
	statusMessageTime time.Time
}

// FileWatchEvent carries file system change notifications to the main event loop.
type FileWatchEvent struct {
	tcell.EventTime
	Path string
	Op   fsnotify.Op
}

func New(cfg *config.Config) *Viewer {
	return &Viewer{
		cfg:         cfg,
		paneOpen:    true,
		paneWidth:   cfg.PaneWidth,
		focusTarget: "listing",
	}
}

func (v *Viewer) Run(path string, data []byte) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}

	screen.EnableMouse()
	screen.SetStyle(tcell.StyleDefault)
	screen.Clear()

	v.screen = screen
	v.path = path
	v.name = "demo"
	if path != "" {
		v.name = filepath.Base(path)
	}

	v.doc = disasm.Build(v.name, uint16(v.cfg.Org), data)

	p := printer.NewM6502(v.cfg.Bits)
	v.listingView = ui.NewListingView(v.doc, p, v.cfg.Bits)

	v.symbolPane = ui.NewSymbolPane(v.doc)
	v.symbolPane.OnJump = func(addr uint64) {
		v.listingView.JumpTo(addr)
		v.focusTarget = "listing"
		v.updateFocus()
	}

	v.statusBar = ui.NewStatusBar()
	v.statusBar.Filename = v.name
	v.statusBar.Bits = v.cfg.Bits

	if v.path != "" {
		v.setupFileWatcher(screen)
	}

	v.updateFocus()

	for !v.quit {
		v.clearExpiredMessage()
		v.render()

		ev := screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			v.handleKey(ev)
		case *tcell.EventMouse:
			v.handleMouse(ev)
		case *FileWatchEvent:
			v.handleFileWatchEvent(ev)
		}
	}

	if v.fileWatcher != nil {
		v.fileWatcher.Close()
	}

	screen.Clear()
	screen.Fini()

	return nil
}

func (v *Viewer) render() {
	theme := v.cfg.GetTheme()

	defaultStyle := tcell.StyleDefault.Background(theme.Background).Foreground(theme.Foreground)
	v.screen.SetStyle(defaultStyle)
	v.screen.Clear()

	screenW, screenH := v.screen.Size()

	v.listingView.Theme = theme
	v.symbolPane.Theme = theme
	v.statusBar.Theme = theme

	if v.paneOpen {
		v.symbolPane.Render(v.screen, 0, 0, v.paneWidth, screenH-1)
	}

	lx, ly, lw, lh := v.listingLayout()
	v.listingView.Render(v.screen, lx, ly, lw, lh)

	v.updateStatus()
	v.statusBar.Render(v.screen, 0, screenH-1, screenW, 1)

	if v.gotoBar != nil {
		v.gotoBar.Theme = theme
		v.gotoBar.Render(v.screen, lx, ly, lw, 1)
	}

	v.screen.Show()
}

func (v *Viewer) handleKey(ev *tcell.EventKey) {
	// Goto bar swallows everything while open
	if v.gotoBar != nil {
		v.gotoBar.HandleKey(ev)
		return
	}

	switch {
	case ev.Key() == tcell.KeyCtrlC:
		v.quit = true
		return
	case ev.Key() == tcell.KeyTab:
		v.cycleFocus()
		return
	}

	if ev.Key() == tcell.KeyRune {
		switch ev.Rune() {
		case 'q':
			v.quit = true
			return
		case 'g':
			v.openGotoBar()
			return
		case 's':
			v.togglePane()
			return
		case 'y':
			v.copyLine()
			return
		}
	}

	if v.focusTarget == "pane" && v.paneOpen {
		if v.symbolPane.HandleKey(ev) {
			return
		}
	}
	v.listingView.HandleKey(ev)
}

func (v *Viewer) handleMouse(ev *tcell.EventMouse) {
	x, _ := ev.Position()
	if v.paneOpen && x < v.paneWidth {
		v.symbolPane.HandleMouse(ev)
		return
	}
	v.listingView.HandleMouse(ev)
}

func (v *Viewer) cycleFocus() {
	if !v.paneOpen {
		return
	}
	if v.focusTarget == "listing" {
		v.focusTarget = "pane"
	} else {
		v.focusTarget = "listing"
	}
	v.updateFocus()
}

func (v *Viewer) updateFocus() {
	v.listingView.SetFocused(v.focusTarget == "listing")
	v.symbolPane.SetFocused(v.focusTarget == "pane")
}

func (v *Viewer) togglePane() {
	v.paneOpen = !v.paneOpen
	if !v.paneOpen && v.focusTarget == "pane" {
		v.focusTarget = "listing"
		v.updateFocus()
	}
}

func (v *Viewer) openGotoBar() {
	g := ui.NewGotoBar()
	g.Prefill(clipboardx.Read())
	g.OnSubmit = func(addr uint64) {
		v.listingView.JumpTo(addr)
		v.gotoBar = nil
	}
	g.OnCancel = func() { v.gotoBar = nil }
	g.SetFocused(true)
	v.gotoBar = g
}

func (v *Viewer) copyLine() {
	text := v.listingView.LineText(v.listingView.CursorLine())
	if text == "" {
		return
	}
	if clipboardx.Write(text) {
		v.setTemporaryMessage("Copied line to clipboard")
	} else {
		v.setTemporaryMessage("Copied line (internal clipboard only)")
	}
}

func (v *Viewer) listingLayout() (x, y, w, h int) {
	screenW, screenH := v.screen.Size()
	left := 0
	if v.paneOpen {
		left = v.paneWidth
	}
	return left, 0, screenW - left, screenH - 1
}

func (v *Viewer) updateStatus() {
	v.statusBar.Address = v.listingView.CursorAddress()
	v.statusBar.Line = v.listingView.CursorLine()
	v.statusBar.Total = v.doc.Size()
}

func (v *Viewer) setTemporaryMessage(msg string) {
	v.statusBar.Message = msg
	v.statusMessageTime = time.Now()
}

func (v *Viewer) clearExpiredMessage() {
	if v.statusBar.Message != "" && !v.statusMessageTime.IsZero() {
		if time.Since(v.statusMessageTime) > 3*time.Second {
			v.statusBar.Message = ""
			v.statusMessageTime = time.Time{}
		}
	}
}

func (v *Viewer) setupFileWatcher(screen tcell.Screen) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		// Graceful degradation - continue without watching
		return
	}
	v.fileWatcher = watcher

	// Watch the directory, not the file: editors replace files on save and
	// a watch on the old inode goes stale.
	watcher.Add(filepath.Dir(v.path))

	go func() {
		// Debounce: collect events and send after quiet period
		debounceTimer := time.NewTimer(100 * time.Millisecond)
		debounceTimer.Stop()
		var pending []fsnotify.Event

		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Name != v.path {
					continue
				}
				pending = append(pending, event)
				debounceTimer.Reset(100 * time.Millisecond)

			case <-debounceTimer.C:
				for _, event := range pending {
					ev := &FileWatchEvent{
						Path: event.Name,
						Op:   event.Op,
					}
					ev.SetEventNow()
					screen.PostEvent(ev)
				}
				pending = nil

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				_ = err
			}
		}
	}()
}

func (v *Viewer) handleFileWatchEvent(ev *FileWatchEvent) {
	if ev.Op&fsnotify.Remove != 0 {
		v.setTemporaryMessage("Warning: " + v.name + " was deleted externally")
		return
	}
	if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
		return
	}

	data, err := os.ReadFile(v.path)
	if err != nil {
		v.setTemporaryMessage("Reload failed: " + err.Error())
		return
	}

	addr := v.listingView.CursorAddress()
	v.doc = disasm.Build(v.name, uint16(v.cfg.Org), data)
	v.listingView.SetDocument(v.doc, printer.NewM6502(v.cfg.Bits), v.cfg.Bits)
	v.symbolPane.Reload(v.doc)
	v.listingView.JumpTo(addr)
	v.setTemporaryMessage(fmt.Sprintf("Reloaded %s (%d bytes)", v.name, len(data)))
}
