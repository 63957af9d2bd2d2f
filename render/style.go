package render

import "disview/listing"

// Style is an abstract tag naming how a text run should be decorated by the
// host. The empty style means "default". The renderer never deals in colors.
type Style string

const (
	StyleDefault      Style = ""
	StyleSegment      Style = "segment_fg"
	StyleFunction     Style = "function_fg"
	StyleAddress      Style = "address_fg"
	StyleInvalid      Style = "instruction_invalid"
	StyleStop         Style = "instruction_stop"
	StyleNop          Style = "instruction_nop"
	StyleCall         Style = "instruction_call"
	StyleJumpCond     Style = "instruction_jmp_c"
	StyleJump         Style = "instruction_jmp"
	StyleMemory       Style = "memory_fg"
	StyleImmediate    Style = "immediate_fg"
	StyleDisplacement Style = "displacement_fg"
	StyleRegister     Style = "register_fg"
	StyleComment      Style = "comment_fg"
)

// Style selection is an ordered first-match-wins walk so the precedence rules
// stay auditable in one place.

type flagStyle struct {
	match func(*listing.Instruction) bool
	style Style
}

var mnemonicStyles = []flagStyle{
	{func(i *listing.Instruction) bool { return i.Is(listing.FlagInvalid) }, StyleInvalid},
	{func(i *listing.Instruction) bool { return i.Is(listing.FlagStop) }, StyleStop},
	{func(i *listing.Instruction) bool { return i.Is(listing.FlagNop) }, StyleNop},
	{func(i *listing.Instruction) bool { return i.Is(listing.FlagCall) }, StyleCall},
	{func(i *listing.Instruction) bool {
		return i.Is(listing.FlagJump) && i.Is(listing.FlagConditional)
	}, StyleJumpCond},
	{func(i *listing.Instruction) bool { return i.Is(listing.FlagJump) }, StyleJump},
}

// MnemonicStyle picks the style for an instruction mnemonic. An instruction
// flagged both invalid and jump is invalid: earlier entries win.
func MnemonicStyle(ins *listing.Instruction) Style {
	for _, fs := range mnemonicStyles {
		if fs.match(ins) {
			return fs.style
		}
	}
	return StyleDefault
}

type kindStyle struct {
	match func(listing.OperandKind) bool
	style Style
}

var operandStyles = []kindStyle{
	{func(k listing.OperandKind) bool { return k.Is(listing.OpNumeric) && k.Is(listing.OpMemory) }, StyleMemory},
	{func(k listing.OperandKind) bool { return k.Is(listing.OpNumeric) }, StyleImmediate},
	{func(k listing.OperandKind) bool { return k.Is(listing.OpDisplacement) }, StyleDisplacement},
	{func(k listing.OperandKind) bool { return k.Is(listing.OpRegister) }, StyleRegister},
}

// OperandStyle picks the style for an operand by its kind flags.
func OperandStyle(kind listing.OperandKind) Style {
	for _, ks := range operandStyles {
		if ks.match(kind) {
			return ks.style
		}
	}
	return StyleDefault
}
