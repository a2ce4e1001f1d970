package stats

import "github.com/ChainSafe/mips-stats/instruction"

// Formats counts instructions per format. Rows are always I-Type, J-Type, R-Type.
func Formats(instrs []instruction.Instruction) *Table {
	var rType, iType, jType int
	for _, ins := range instrs {
		switch ins.(type) {
		case instruction.RType:
			rType++
		case instruction.IType:
			iType++
		case instruction.JType:
			jType++
		default:
			panic(unhandled(ins))
		}
	}

	t := newTable(ModeFormats, len(instrs), "TYPE", "COUNT", "PERCENT")
	t.addRow(string(instruction.FormatI), iType, iType)
	t.addRow(string(instruction.FormatJ), jType, jType)
	t.addRow(string(instruction.FormatR), rType, rType)
	return t
}
