package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/Avi18971911/diagviewer/internal/pipeline/layout"
)

// JSON writes the canvas geometry, groups and ordered leaf descriptors of result.
func JSON(w io.Writer, result *layout.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		return fmt.Errorf("failed to encode layout: %w", err)
	}
	return nil
}
