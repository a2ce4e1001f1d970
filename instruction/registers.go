package instruction

import "fmt"

// RegisterCount is the number of general purpose registers.
const RegisterCount = 32

var registerNames = [RegisterCount]string{
	"zero", "at", "v0", "v1", "a0", "a1", "a2", "a3",
	"t0", "t1", "t2", "t3", "t4", "t5", "t6", "t7",
	"s0", "s1", "s2", "s3", "s4", "s5", "s6", "s7",
	"t8", "t9", "k0", "k1", "gp", "fp", "sp", "ra",
}

// RegisterName returns the conventional mnemonic of register idx, without the `$` sigil.
func RegisterName(idx int) (string, error) {
	if idx < 0 || idx >= RegisterCount {
		return "", fmt.Errorf("register index out of range: %d", idx)
	}
	return registerNames[idx], nil
}
