package render

import (
	"encoding/json"
	"io"

	"github.com/vegasq/godap/model"
)

// JSONFormatter renders sequence rows as JSON Lines, one object per row
// keyed by column name.
type JSONFormatter struct {
	writer io.Writer
}

// NewJSONFormatter creates a new JSON Lines formatter.
func NewJSONFormatter(w io.Writer) *JSONFormatter {
	return &JSONFormatter{writer: w}
}

// SetOutput sets the output writer.
func (j *JSONFormatter) SetOutput(w io.Writer) {
	j.writer = w
}

// Format writes the rows as JSON Lines.
func (j *JSONFormatter) Format(seq *model.SequenceType) error {
	encoder := json.NewEncoder(j.writer)
	names := headers(seq)
	for i, r := range seq.Rows() {
		row, err := rowTuple(r, i)
		if err != nil {
			return err
		}
		obj := make(map[string]interface{}, len(names))
		for k, name := range names {
			if k < len(row) {
				obj[name] = row[k]
			}
		}
		if err := encoder.Encode(obj); err != nil {
			return err
		}
	}
	return nil
}
