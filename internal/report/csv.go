package report

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"

	"cratedig/internal/scan"
)

// WriteCSV emits records with the fixed header derived from Record tags.
func WriteCSV(w io.Writer, records []scan.Record) error {
	if records == nil {
		records = []scan.Record{}
	}
	if err := gocsv.Marshal(&records, w); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return nil
}
