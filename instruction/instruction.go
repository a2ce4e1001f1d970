// Package instruction decodes raw 32-bit MIPS machine words into their R, I or J format fields.
package instruction

import "fmt"

// Word is a raw 32-bit MIPS machine word.
type Word uint32

// Format defines MIPS instruction categories
type Format string

const (
	FormatR Format = "R-Type"
	FormatI Format = "I-Type"
	FormatJ Format = "J-Type"
)

// Instruction is a decoded machine word. It is implemented only by RType, IType and JType.
type Instruction interface {
	Format() Format
	Word() Word
	fmt.Stringer

	sealed()
}

// RType is a register format instruction.
//
//	[ 000000 |  rs |  rt |  rd |shamt| funct]
type RType struct {
	Raw   Word
	RS    uint8
	RT    uint8
	RD    uint8
	Shamt uint8
	Funct uint8
}

func (RType) Format() Format { return FormatR }
func (i RType) Word() Word { return i.Raw }
func (RType) sealed() {}

func (i RType) String() string {
	return fmt.Sprintf("0x%08X  %-8s rs=%d rt=%d rd=%d shamt=%d funct=0x%X",
		uint32(i.Raw), i.Format(), i.RS, i.RT, i.RD, i.Shamt, i.Funct)
}

// IType is an immediate format instruction. The immediate is not sign extended.
//
//	[  op  |  rs |  rt |     immediate     ]
type IType struct {
	Raw       Word
	Opcode    uint8
	RS        uint8
	RT        uint8
	Immediate uint16
}

func (IType) Format() Format { return FormatI }
func (i IType) Word() Word { return i.Raw }
func (IType) sealed() {}

func (i IType) String() string {
	return fmt.Sprintf("0x%08X  %-8s op=0x%X rs=%d rt=%d imm=0x%04X",
		uint32(i.Raw), i.Format(), i.Opcode, i.RS, i.RT, i.Immediate)
}

// JType is a jump format instruction. Address holds only the low 16 bits of the word.
//
//	[  op  |        target address        ]
type JType struct {
	Raw     Word
	Opcode  uint8
	Address uint32
}

func (JType) Format() Format { return FormatJ }
func (i JType) Word() Word { return i.Raw }
func (JType) sealed() {}

func (i JType) String() string {
	return fmt.Sprintf("0x%08X  %-8s op=0x%X addr=0x%04X",
		uint32(i.Raw), i.Format(), i.Opcode, i.Address)
}
