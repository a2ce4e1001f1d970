package stats

import (
	"fmt"

	"github.com/ChainSafe/mips-stats/instruction"
)

// Registers counts register operand usage. R-Type instructions count rs, rt and rd,
// I-Type instructions count rs and rt, and J-Type instructions count nothing.
// A register named twice by one instruction is counted twice.
func Registers(instrs []instruction.Instruction, humanReadable bool) *Table {
	var rCounts, iCounts [instruction.RegisterCount]int

	for _, ins := range instrs {
		switch ins := ins.(type) {
		case instruction.RType:
			rCounts[ins.RS]++
			rCounts[ins.RT]++
			rCounts[ins.RD]++
		case instruction.IType:
			iCounts[ins.RS]++
			iCounts[ins.RT]++
		case instruction.JType:
		default:
			panic(unhandled(ins))
		}
	}

	t := newTable(ModeRegisters, len(instrs), "REG", "USE", "R-TYPE", "I-TYPE", "PERCENT")
	for idx := range rCounts {
		use := rCounts[idx] + iCounts[idx]
		t.addRow(registerLabel(idx, humanReadable), use, use, rCounts[idx], iCounts[idx])
	}
	return t
}

func registerLabel(idx int, humanReadable bool) string {
	if humanReadable {
		if name, err := instruction.RegisterName(idx); err == nil {
			return "$" + name
		}
	}
	return fmt.Sprintf("0x%X", idx)
}
