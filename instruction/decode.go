package instruction

const (
	opcodeMask   = 0xFC000000
	jumpMask     = 0x08000000
	jumpLinkMask = 0x0C000000
	halfMask     = 0xFFFF

	registerMask = 0x1F
	functMask    = 0x3F
)

// Decode classifies a machine word and extracts its fields. Every word decodes to exactly one format.
//
//	   6      5     5     5     5      6 bits
//	[  op  |  rs |  rt |  rd |shamt| funct]  R-type
//	[  op  |  rs |  rt | address/immediate]  I-type
//	[  op  |        target address        ]  J-type
//
// A zero opcode field is always R-type and is checked before the jump mask.
func Decode(w Word) Instruction {
	if w&opcodeMask == 0 {
		return RType{
			Raw:   w,
			RS:    uint8((w >> 21) & registerMask),
			RT:    uint8((w >> 16) & registerMask),
			RD:    uint8((w >> 11) & registerMask),
			Shamt: uint8((w >> 6) & registerMask),
			Funct: uint8(w & functMask),
		}
	}
	if isJump(w) {
		return JType{
			Raw:     w,
			Opcode:  uint8(w >> 26),
			Address: uint32(w & halfMask),
		}
	}
	return IType{
		Raw:       w,
		Opcode:    uint8(w >> 26),
		RS:        uint8((w >> 21) & registerMask),
		RT:        uint8((w >> 16) & registerMask),
		Immediate: uint16(w & halfMask),
	}
}

// isJump reports whether bit 27 is set, or bits 27 and 26 are both set.
func isJump(w Word) bool {
	return w&jumpMask == jumpMask || w&jumpLinkMask == jumpLinkMask
}

// DecodeAll decodes words in order.
func DecodeAll(words []Word) []Instruction {
	instrs := make([]Instruction, len(words))
	for i, w := range words {
		instrs[i] = Decode(w)
	}
	return instrs
}
