package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/ChainSafe/mips-stats/stats"
)

// columnWidth is the minimum width of every column. Wider values are not truncated.
const columnWidth = 10

// TextRenderer writes left aligned fixed width columns.
type TextRenderer struct {
	humanReadable bool
}

// NewTextRenderer creates a new instance of TextRenderer. The column header is only written when humanReadable is set.
func NewTextRenderer(humanReadable bool) Renderer {
	return &TextRenderer{humanReadable: humanReadable}
}

// Render writes the header and one line per row.
func (r *TextRenderer) Render(table *stats.Table, output io.Writer) error {
	if table == nil {
		return nil
	}

	var report strings.Builder
	if r.humanReadable {
		writeLine(&report, table.Columns)
	}
	for _, row := range table.Rows {
		writeLine(&report, cells(row))
	}

	// Print the complete report at once
	_, err := output.Write([]byte(report.String()))
	return err
}

func writeLine(b *strings.Builder, columns []string) {
	for _, c := range columns {
		fmt.Fprintf(b, "%-*s", columnWidth, c)
	}
	b.WriteString("\n")
}

// Format returns the format type.
func (r *TextRenderer) Format() string {
	return "text"
}
