package renderer

import (
	"fmt"
	"io"

	"github.com/ChainSafe/mips-stats/stats"
	"gopkg.in/yaml.v3"
)

// YAMLRenderer renders tables as a YAML document.
type YAMLRenderer struct{}

func NewYAMLRenderer() Renderer {
	return &YAMLRenderer{}
}

func (r *YAMLRenderer) Render(table *stats.Table, output io.Writer) error {
	if table == nil {
		return nil
	}
	enc := yaml.NewEncoder(output)
	enc.SetIndent(2)
	if err := enc.Encode(table); err != nil {
		return fmt.Errorf("failed to encode yaml: %w", err)
	}
	return enc.Close()
}

func (r *YAMLRenderer) Format() string {
	return "yaml"
}
