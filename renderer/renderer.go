// Package renderer provides a way to render statistics tables in different formats.
package renderer

import (
	"errors"
	"fmt"
	"io"

	"github.com/ChainSafe/mips-stats/stats"
)

var ErrUnknownFormat = errors.New("invalid format")

// Renderer defines the interface for rendering statistics tables in different formats.
type Renderer interface {
	// Render takes a statistics table and outputs it in the desired format to the provided writer.
	Render(table *stats.Table, output io.Writer) error

	// Format returns the name of the output format (e.g., "json", "text", "yaml").
	Format() string
}

// Formats lists the accepted output formats.
var Formats = []string{"text", "json", "yaml", "table"}

// New returns the renderer for format. humanReadable only affects the text layout.
func New(format string, humanReadable bool) (Renderer, error) {
	switch format {
	case "", "text":
		return NewTextRenderer(humanReadable), nil
	case "json":
		return NewJSONRenderer(), nil
	case "yaml":
		return NewYAMLRenderer(), nil
	case "table":
		return NewTableRenderer(), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
}

func formatPercent(p float32) string {
	return fmt.Sprintf("%.2f%%", p)
}

// cells flattens a row into its printed columns.
func cells(row stats.Row) []string {
	out := make([]string, 0, len(row.Counts)+2)
	out = append(out, row.Label)
	for _, c := range row.Counts {
		out = append(out, fmt.Sprintf("%d", c))
	}
	return append(out, formatPercent(row.Percent))
}
