package renderer

import (
	"encoding/json"
	"io"

	"github.com/ChainSafe/mips-stats/stats"
)

// JSONRenderer renders tables in JSON format.
type JSONRenderer struct{}

func NewJSONRenderer() Renderer {
	return &JSONRenderer{}
}

func (r *JSONRenderer) Render(table *stats.Table, output io.Writer) error {
	if table == nil {
		return nil
	}
	return json.NewEncoder(output).Encode(table)
}

func (r *JSONRenderer) Format() string {
	return "json"
}
