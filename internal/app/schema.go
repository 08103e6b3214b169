package app

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/vk/remapc/internal/render"
)

// WriteSchema writes the JSON Schema of the compiled document to w.
func WriteSchema(w io.Writer) error {
	data, err := json.MarshalIndent(render.Schema(), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode schema: %w", err)
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write schema: %w", err)
	}
	return nil
}
