package listing

// InstrFlag classifies an instruction. Flags compose: a conditional branch
// carries FlagJump|FlagConditional.
type InstrFlag uint16

const (
	FlagInvalid InstrFlag = 1 << iota
	FlagStop
	FlagNop
	FlagCall
	FlagJump
	FlagConditional
)

func (f InstrFlag) Is(flag InstrFlag) bool { return f&flag != 0 }

// OperandKind classifies an operand for styling purposes. Kinds compose:
// an absolute memory reference is Numeric|Memory.
type OperandKind uint16

const (
	OpNumeric OperandKind = 1 << iota
	OpMemory
	OpDisplacement
	OpRegister
)

func (k OperandKind) Is(kind OperandKind) bool { return k&kind != 0 }

// Operand is one operand of an instruction. Index is its 0-based position.
// Size is a rendered-size hint such as "word" and may be empty. Text is the
// display string produced at decode time.
type Operand struct {
	Index int
	Kind  OperandKind
	Size  string
	Text  string
	Value uint64
}

// Instruction is read-only to the renderer; the document owns it.
type Instruction struct {
	Address  uint64
	Mnemonic string
	Operands []Operand
	Flags    InstrFlag
	Comments []string
	Bytes    []byte
}

func (i *Instruction) Is(flag InstrFlag) bool { return i.Flags.Is(flag) }
