package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/alecthomas/kong"

	"disview/config"
	"disview/viewer"
)

type cliArgs struct {
	File  string `arg:"" optional:"" help:"Raw 6502 binary to disassemble. Omit for the built-in demo."`
	Org   string `short:"o" help:"Load address in hex, e.g. 0600."`
	Bits  int    `short:"b" help:"Address width in bits (hex digits = bits/4)."`
	Theme string `short:"t" help:"Color theme: dark, monokai, gruvbox, nord."`
}

// demoImage is a tiny self-contained program shown when no file is given:
// a fill loop over $0200 that bumps the value through a subroutine.
var demoImage = []byte{
	0xa2, 0x00, // ldx #$00
	0xa9, 0x00, // lda #$00
	0x20, 0x10, 0x06, // jsr $0610
	0x9d, 0x00, 0x02, // sta $0200,x
	0xe8,       // inx
	0xd0, 0xf7, // bne $0604
	0x4c, 0x0d, 0x06, // jmp $060d
	0xea, // nop
	0x18,       // clc
	0x69, 0x01, // adc #$01
	0xea, // nop
	0x60, // rts
}

func main() {
	var args cliArgs
	kong.Parse(
		&args,
		kong.Name("disview"),
		kong.Description("Terminal disassembly listing viewer for 6502 binaries."),
		kong.UsageOnError(),
	)

	cfg, err := config.Load()
	if err != nil {
		cfg = config.Default()
	}
	if args.Org != "" {
		org, err := parseHex(args.Org)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: bad --org %q: %v\n", args.Org, err)
			os.Exit(2)
		}
		cfg.Org = org
	}
	if args.Bits != 0 {
		cfg.Bits = args.Bits
	}
	if args.Theme != "" {
		cfg.Theme = args.Theme
	}

	path := ""
	data := demoImage
	if args.File != "" {
		data, err = os.ReadFile(args.File)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		path = args.File
	}

	v := viewer.New(cfg)
	if err := v.Run(path, data); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func parseHex(s string) (uint64, error) {
	if len(s) > 1 && (s[0:2] == "0x" || s[0:2] == "0X") {
		s = s[2:]
	} else if len(s) > 0 && s[0] == '$' {
		s = s[1:]
	}
	return strconv.ParseUint(s, 16, 64)
}
