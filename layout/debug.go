package layout

import (
	"encoding/json"
	"io"
)

// WriteDebugJSON writes the page description as indented JSON, for debugging
// or visual inspection of a layout.
func WriteDebugJSON(res *Result, w io.Writer) error {
	if res == nil {
		return nil
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}
