// Package stats aggregates decoded instructions into format, opcode and register usage tables.
package stats

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ChainSafe/mips-stats/instruction"
)

// Mode selects which statistics table is computed.
type Mode int

const (
	ModeNone Mode = iota
	ModeFormats
	ModeOpcodes
	ModeRegisters
)

var ErrUnknownMode = errors.New("unknown statistics mode")

func (m Mode) String() string {
	switch m {
	case ModeFormats:
		return "instructions"
	case ModeOpcodes:
		return "opcodes"
	case ModeRegisters:
		return "registers"
	default:
		return "none"
	}
}

// ParseMode maps a mode name to a Mode. The empty string is ModeNone.
func ParseMode(name string) (Mode, error) {
	switch strings.ToLower(name) {
	case "", "none":
		return ModeNone, nil
	case "instructions", "formats":
		return ModeFormats, nil
	case "opcodes":
		return ModeOpcodes, nil
	case "registers":
		return ModeRegisters, nil
	default:
		return ModeNone, fmt.Errorf("%w: %s", ErrUnknownMode, name)
	}
}

// Row is a single labelled line of a Table.
type Row struct {
	Label   string  `json:"label" yaml:"label"`
	Counts  []int   `json:"counts" yaml:"counts"`
	Percent float32 `json:"percent" yaml:"percent"`
}

// Table is the result of one aggregation pass.
type Table struct {
	Mode    Mode     `json:"-" yaml:"-"`
	Name    string   `json:"mode" yaml:"mode"`
	Columns []string `json:"columns" yaml:"columns"`
	Total   int      `json:"total" yaml:"total"`
	Rows    []Row    `json:"rows" yaml:"rows"`
}

func newTable(mode Mode, total int, columns ...string) *Table {
	return &Table{
		Mode:    mode,
		Name:    mode.String(),
		Columns: columns,
		Total:   total,
		Rows:    make([]Row, 0),
	}
}

func (t *Table) addRow(label string, percentOf int, counts ...int) {
	t.Rows = append(t.Rows, Row{
		Label:   label,
		Counts:  counts,
		Percent: percentage(percentOf, t.Total),
	})
}

// percentage is computed in single precision. An empty trace yields 0.
func percentage(count, total int) float32 {
	if total == 0 {
		return 0
	}
	return float32(count) / float32(total) * 100.0
}

// Options carries the presentation settings the aggregation depends on.
type Options struct {
	HumanReadable bool
}

// Compute builds the table selected by mode. ModeNone yields a nil table.
func Compute(mode Mode, instrs []instruction.Instruction, opts Options) (*Table, error) {
	switch mode {
	case ModeNone:
		return nil, nil
	case ModeFormats:
		return Formats(instrs), nil
	case ModeOpcodes:
		return Opcodes(instrs), nil
	case ModeRegisters:
		return Registers(instrs, opts.HumanReadable), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownMode, mode)
	}
}

func unhandled(ins instruction.Instruction) string {
	return fmt.Sprintf("unhandled instruction type %T", ins)
}
