package render

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/vegasq/godap/model"
)

// CSVFormatter renders sequence rows as CSV with a header row.
type CSVFormatter struct {
	writer io.Writer
}

// NewCSVFormatter creates a new CSV formatter.
func NewCSVFormatter(w io.Writer) *CSVFormatter {
	return &CSVFormatter{writer: w}
}

// SetOutput sets the output writer.
func (c *CSVFormatter) SetOutput(w io.Writer) {
	c.writer = w
}

// Format writes the rows as CSV.
func (c *CSVFormatter) Format(seq *model.SequenceType) error {
	csvWriter := csv.NewWriter(c.writer)

	if err := csvWriter.Write(headers(seq)); err != nil {
		return err
	}
	for i, r := range seq.Rows() {
		row, err := rowTuple(r, i)
		if err != nil {
			return err
		}
		record := make([]string, len(row))
		for j, v := range row {
			record[j] = formatValue(v)
		}
		if err := csvWriter.Write(record); err != nil {
			return err
		}
	}

	csvWriter.Flush()
	if err := csvWriter.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV writer: %w", err)
	}
	return nil
}

// formatValue converts one cell to a string. Strings stay bare; the CSV
// writer handles its own quoting.
func formatValue(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	default:
		return model.Encode(val)
	}
}
