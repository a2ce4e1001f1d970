package renderer

import (
	"io"

	"github.com/ChainSafe/mips-stats/stats"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// TableRenderer draws a boxed table with a header and a total footer.
type TableRenderer struct{}

func NewTableRenderer() Renderer {
	return &TableRenderer{}
}

func (r *TableRenderer) Render(t *stats.Table, output io.Writer) error {
	if t == nil {
		return nil
	}

	tw := table.NewWriter()
	tw.AppendHeader(toRow(t.Columns))

	configs := make([]table.ColumnConfig, 0, len(t.Columns))
	for i := 1; i < len(t.Columns); i++ {
		configs = append(configs, table.ColumnConfig{Number: i + 1, Align: text.AlignRight})
	}
	tw.SetColumnConfigs(configs)

	for _, row := range t.Rows {
		tw.AppendRow(toRow(cells(row)))
	}
	tw.AppendSeparator()
	tw.AppendFooter(table.Row{"TOTAL", t.Total})

	_, err := io.WriteString(output, tw.Render()+"\n")
	return err
}

func toRow(values []string) table.Row {
	row := make(table.Row, len(values))
	for i, v := range values {
		row[i] = v
	}
	return row
}

func (r *TableRenderer) Format() string {
	return "table"
}
