package report

import (
	"encoding/json"
	"fmt"
	"io"

	"cratedig/internal/scan"
)

// WriteJSON emits records as an indented array. A nil slice still renders
// as an empty array, never null.
func WriteJSON(w io.Writer, records []scan.Record) error {
	if records == nil {
		records = []scan.Record{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	return nil
}
