package render

import (
	"fmt"
	"strconv"
	"strings"

	"disview/listing"
)

// indentUnit is the fixed indent width, in characters.
const indentUnit = 2

// Document supplies listing items and address lookups. Lookups are expected
// to be total: nil results are handled, panics are not.
type Document interface {
	Size() int
	ItemAt(i int) listing.Item
	Segment(addr uint64) *listing.Segment
	Symbol(addr uint64) *listing.Symbol
	Instruction(addr uint64) *listing.Instruction
}

// Printer converts document entities into display text for one architecture
// or file format. OperandStrings returns operands in index order, with the
// size hint and display text filled in.
type Printer interface {
	SegmentLines(seg *listing.Segment) []string
	FunctionParts(sym *listing.Symbol) (prefix, name, suffix string)
	OperandStrings(ins *listing.Instruction) []listing.Operand
}

// FontMetrics reports the dimensions of one character cell. The renderer
// assumes a fixed-width font: every character is exactly one unit wide.
type FontMetrics interface {
	Unit() (width, height int)
}

// DrawFunc receives one positioned, styled text run. Calls arrive in visible
// line order, and left to right within a line.
type DrawFunc func(x, y int, style Style, text string, userdata any)

// Context is the cursor state for one render pass: current position, active
// style, pending text and the cached font unit. It is created per pass and
// mutated in place as each item advances the cursor.
type Context struct {
	X, Y       int
	Style      Style
	Text       string
	FontWidth  int
	FontHeight int
	Userdata   any
}

// Renderer walks a visible window of listing items and emits styled text runs
// through a draw callback. The only state that survives a pass is the comment
// column: the rightmost end-of-code position seen so far, used to align
// trailing comments. It grows for the lifetime of the renderer and is never
// reset, so alignment stays put while the user scrolls.
type Renderer struct {
	doc           Document
	printer       Printer
	font          FontMetrics
	draw          DrawFunc
	bits          int
	commentColumn int
}

// New builds a renderer for a bits-wide address space (addresses format as
// bits/4 hex digits). A Renderer is not safe for concurrent use.
func New(doc Document, printer Printer, font FontMetrics, draw DrawFunc, bits int) *Renderer {
	if bits <= 0 {
		bits = 32
	}
	return &Renderer{doc: doc, printer: printer, font: font, draw: draw, bits: bits}
}

// Render emits draw calls for count lines starting at line start. Row y
// positions are relative to start, not absolute in the document. Ranges past
// the end of the document are clamped silently.
func (r *Renderer) Render(start, count int, userdata any) {
	if start < 0 || count <= 0 {
		return
	}
	end := start + count
	if size := r.doc.Size(); end > size {
		end = size
	}

	ctx := &Context{Userdata: userdata}
	ctx.FontWidth, ctx.FontHeight = r.font.Unit()

	for i, line := 0, start; line < end; i, line = i+1, line+1 {
		item := r.doc.ItemAt(line)

		ctx.X = 0
		ctx.Y = i * ctx.FontHeight

		switch item.Kind {
		case listing.KindSegment:
			r.renderSegment(item, ctx)
		case listing.KindFunction:
			r.renderFunction(item, ctx)
		case listing.KindInstruction:
			r.renderInstruction(item, ctx)
		default:
			ctx.Style = StyleDefault
			ctx.Text = "Unknown Type: " + strconv.Itoa(int(item.Kind))
			r.renderText(ctx)
		}
	}
}

// MeasureString returns the width of s under the fixed-width font model:
// every rune is exactly one font unit wide. All column math in the renderer
// relies on this, so hosts must not substitute proportional measurement.
func (r *Renderer) MeasureString(s string) int {
	w, _ := r.font.Unit()
	return len([]rune(s)) * w
}

// CommentColumn reports the current comment alignment column, in cursor
// units. It never decreases.
func (r *Renderer) CommentColumn() int {
	return r.commentColumn
}

// Bits reports the configured address width in bits.
func (r *Renderer) Bits() int {
	return r.bits
}

func (r *Renderer) renderText(ctx *Context) {
	r.draw(ctx.X, ctx.Y, ctx.Style, ctx.Text, ctx.Userdata)
}

func measure(ctx *Context, s string) int {
	return len([]rune(s)) * ctx.FontWidth
}

func (r *Renderer) renderSegment(item listing.Item, ctx *Context) {
	seg := r.doc.Segment(item.Address)
	for _, line := range r.printer.SegmentLines(seg) {
		ctx.Style = StyleSegment
		ctx.Text = line
		r.renderText(ctx)
	}
}

func (r *Renderer) renderFunction(item listing.Item, ctx *Context) {
	r.renderAddressIndent(item, ctx)

	sym := r.doc.Symbol(item.Address)
	pre, name, post := r.printer.FunctionParts(sym)

	ctx.Style = StyleFunction
	if pre != "" {
		ctx.Text = pre
		r.renderText(ctx)
		ctx.X += measure(ctx, pre)
	}

	ctx.Text = name
	r.renderText(ctx)
	ctx.X += measure(ctx, name)

	if post != "" {
		ctx.Text = post
		r.renderText(ctx)
	}
}

func (r *Renderer) renderInstruction(item listing.Item, ctx *Context) {
	ins := r.doc.Instruction(item.Address)
	if ins == nil {
		return
	}

	r.renderAddress(item, ctx)
	r.renderMnemonic(ins, ctx)
	r.renderOperands(ins, ctx)

	if ctx.X > r.commentColumn {
		r.commentColumn = ctx.X
	}

	if len(ins.Comments) == 0 {
		return
	}

	r.renderComments(ins, ctx)
}

func (r *Renderer) renderAddress(item listing.Item, ctx *Context) {
	name := "unk"
	if seg := r.doc.Segment(item.Address); seg != nil {
		name = seg.Name
	}

	ctx.Style = StyleAddress
	ctx.Text = name + ":" + r.hexAddress(item.Address)

	r.renderText(ctx)
	ctx.X += measure(ctx, ctx.Text)
	r.renderIndent(ctx, 1)
}

func (r *Renderer) renderMnemonic(ins *listing.Instruction, ctx *Context) {
	ctx.Style = MnemonicStyle(ins)
	ctx.Text = ins.Mnemonic + " "
	r.renderText(ctx)
	ctx.X += measure(ctx, ctx.Text)
}

func (r *Renderer) renderOperands(ins *listing.Instruction, ctx *Context) {
	for _, op := range r.printer.OperandStrings(ins) {
		if op.Index > 0 {
			ctx.Style = StyleDefault
			ctx.Text = ", "
			r.renderText(ctx)
			// Fixed two-unit advance keeps separators uniform.
			ctx.X += ctx.FontWidth * 2
		}

		ctx.Style = OperandStyle(op.Kind)
		ctx.Text = op.Text
		if op.Size != "" {
			ctx.Text = op.Size + " " + op.Text
		}
		r.renderText(ctx)
		ctx.X += measure(ctx, ctx.Text)
	}
}

func (r *Renderer) renderComments(ins *listing.Instruction, ctx *Context) {
	ctx.X = (r.commentColumn + indentUnit) * ctx.FontWidth
	ctx.Style = StyleComment
	ctx.Text = CommentString(ins)
	r.renderText(ctx)
}

// renderAddressIndent pads a line to the width of the address column, so
// function headers line up with the instruction addresses below them.
func (r *Renderer) renderAddressIndent(item listing.Item, ctx *Context) {
	count := r.bits / 4
	if seg := r.doc.Segment(item.Address); seg != nil {
		count += len(seg.Name)
	}

	ctx.Style = StyleDefault
	ctx.Text = strings.Repeat(" ", count+indentUnit)

	r.renderText(ctx)
	ctx.X += measure(ctx, ctx.Text)
}

func (r *Renderer) renderIndent(ctx *Context, n int) {
	ctx.Style = StyleDefault
	ctx.Text = strings.Repeat(" ", n*indentUnit)

	r.renderText(ctx)
	ctx.X += measure(ctx, ctx.Text)
}

func (r *Renderer) hexAddress(addr uint64) string {
	return fmt.Sprintf("%0*x", r.bits/4, addr)
}

// CommentString joins an instruction's comments as "# first | second | ...".
func CommentString(ins *listing.Instruction) string {
	var sb strings.Builder
	sb.WriteString("# ")

	for i, s := range ins.Comments {
		if i > 0 {
			sb.WriteString(" | ")
		}
		sb.WriteString(s)
	}

	return sb.String()
}
