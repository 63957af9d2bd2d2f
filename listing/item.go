package listing

// ItemKind tags one addressable line-level entity in a listing.
type ItemKind int

const (
	KindUnknown ItemKind = iota
	KindSegment
	KindFunction
	KindInstruction
)

// Item is a reference into the document: an address plus a kind tag.
type Item struct {
	Address uint64
	Kind    ItemKind
}

// Segment is a named address range. End is exclusive.
type Segment struct {
	Name  string
	Start uint64
	End   uint64
}

func (s *Segment) Contains(addr uint64) bool {
	return addr >= s.Start && addr < s.End
}

// Symbol names an address (function entry points, mostly).
type Symbol struct {
	Name    string
	Address uint64
}
