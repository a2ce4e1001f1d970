package stats

import (
	"fmt"

	"github.com/ChainSafe/mips-stats/instruction"
)

// OpcodeSlots is the number of tracked opcodes. Opcode 0x3F has no slot and is never counted.
const OpcodeSlots = 0x3F

// Opcodes counts I-Type and J-Type instructions per opcode, one row per slot in ascending order.
// R-Type instructions carry no opcode and are skipped.
func Opcodes(instrs []instruction.Instruction) *Table {
	var counts [OpcodeSlots]int
	count := func(op uint8) {
		if int(op) < OpcodeSlots {
			counts[op]++
		}
	}

	for _, ins := range instrs {
		switch ins := ins.(type) {
		case instruction.JType:
			count(ins.Opcode)
		case instruction.IType:
			count(ins.Opcode)
		case instruction.RType:
		default:
			panic(unhandled(ins))
		}
	}

	t := newTable(ModeOpcodes, len(instrs), "OPCODE", "COUNT", "PERCENT")
	for op, c := range counts {
		t.addRow(fmt.Sprintf("0x%X", op), c, c)
	}
	return t
}
