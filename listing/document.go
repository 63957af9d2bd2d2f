package listing

import "sort"

// Document is the ordered sequence of listing items plus the address-keyed
// lookups the renderer needs. All lookups are total: a missing address yields
// nil, never a panic.
type Document struct {
	Name string

	items        []Item
	segments     []*Segment
	symbols      map[uint64]*Symbol
	instructions map[uint64]*Instruction
	indexByAddr  map[uint64]int
}

func NewDocument(name string) *Document {
	return &Document{
		Name:         name,
		symbols:      make(map[uint64]*Symbol),
		instructions: make(map[uint64]*Instruction),
		indexByAddr:  make(map[uint64]int),
	}
}

func (d *Document) Size() int {
	return len(d.items)
}

func (d *Document) ItemAt(i int) Item {
	if i < 0 || i >= len(d.items) {
		return Item{}
	}
	return d.items[i]
}

// Segment returns the segment containing addr, or nil.
func (d *Document) Segment(addr uint64) *Segment {
	for _, s := range d.segments {
		if s.Contains(addr) {
			return s
		}
	}
	return nil
}

func (d *Document) Symbol(addr uint64) *Symbol {
	return d.symbols[addr]
}

func (d *Document) Instruction(addr uint64) *Instruction {
	return d.instructions[addr]
}

// ItemIndex returns the line index of the item at addr, or -1. When several
// items share an address (segment, function and instruction can coincide) it
// returns the first.
func (d *Document) ItemIndex(addr uint64) int {
	if i, ok := d.indexByAddr[addr]; ok {
		return i
	}
	return -1
}

// NearestIndex returns the line index of the item at addr or, failing that,
// the closest item before it. Used for goto-address navigation.
func (d *Document) NearestIndex(addr uint64) int {
	if i, ok := d.indexByAddr[addr]; ok {
		return i
	}
	i := sort.Search(len(d.items), func(i int) bool {
		return d.items[i].Address > addr
	})
	if i == 0 {
		return 0
	}
	return i - 1
}

// Segments returns the document's segments in insertion order.
func (d *Document) Segments() []*Segment {
	return d.segments
}

// Symbols returns all symbols sorted by address.
func (d *Document) Symbols() []*Symbol {
	out := make([]*Symbol, 0, len(d.symbols))
	for _, s := range d.symbols {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Address < out[j].Address })
	return out
}

func (d *Document) appendItem(it Item) {
	if _, ok := d.indexByAddr[it.Address]; !ok {
		d.indexByAddr[it.Address] = len(d.items)
	}
	d.items = append(d.items, it)
}

// AddSegment appends a segment header item and registers the range.
func (d *Document) AddSegment(name string, start, end uint64) *Segment {
	s := &Segment{Name: name, Start: start, End: end}
	d.segments = append(d.segments, s)
	d.appendItem(Item{Address: start, Kind: KindSegment})
	return s
}

// AddFunction appends a function header item and registers its symbol.
func (d *Document) AddFunction(name string, addr uint64) *Symbol {
	sym := &Symbol{Name: name, Address: addr}
	d.symbols[addr] = sym
	d.appendItem(Item{Address: addr, Kind: KindFunction})
	return sym
}

// AddInstruction appends an instruction item. The instruction keeps its
// identity: later Comment calls mutate the same value the renderer sees.
func (d *Document) AddInstruction(ins *Instruction) {
	d.instructions[ins.Address] = ins
	d.appendItem(Item{Address: ins.Address, Kind: KindInstruction})
}

// Comment appends a free-text comment to the instruction at addr, if any.
func (d *Document) Comment(addr uint64, text string) {
	if ins := d.instructions[addr]; ins != nil {
		ins.Comments = append(ins.Comments, text)
	}
}
