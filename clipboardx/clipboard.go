// Package clipboardx copies text to the system clipboard with fallbacks for
// environments where no native clipboard is reachable (SSH sessions,
// minimal containers): OSC52 escape for capable terminals, plus an
// in-process buffer as the last resort.
package clipboardx

import (
	"encoding/base64"
	"fmt"
	"os"

	"github.com/atotto/clipboard"
)

var internalClipboard string

// Write pushes text through every available channel and reports whether at
// least one external one worked. The internal buffer is always updated.
func Write(text string) bool {
	internalClipboard = text
	ok := false

	if err := clipboard.WriteAll(text); err == nil {
		ok = true
	}
	if writeOSC52(text) {
		ok = true
	}
	return ok
}

// Read prefers the system clipboard and falls back to whatever Write last
// stored in-process.
func Read() string {
	if text, err := clipboard.ReadAll(); err == nil && text != "" {
		return text
	}
	return internalClipboard
}

// writeOSC52 emits the clipboard escape sequence when stdout is a terminal.
// Terminal emulators that support OSC52 forward the copy to the local
// machine, which is the only thing that works over SSH.
func writeOSC52(text string) bool {
	if text == "" {
		return false
	}
	if fi, err := os.Stdout.Stat(); err != nil || (fi.Mode()&os.ModeCharDevice) == 0 {
		return false
	}

	encoded := base64.StdEncoding.EncodeToString([]byte(text))
	_, err := fmt.Fprintf(os.Stdout, "\x1b]52;c;%s\x07", encoded)
	return err == nil
}
