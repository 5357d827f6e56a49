package render

import (
	"fmt"
	"io"

	"github.com/vegasq/godap/model"
)

// Formatter defines the interface for sequence renderers.
type Formatter interface {
	// Format writes the rows of seq in the formatter's specific format.
	Format(seq *model.SequenceType) error

	// SetOutput changes the output writer.
	SetOutput(w io.Writer)
}

// headers returns the sequence's column names, unquoted for display.
func headers(seq *model.SequenceType) []string {
	keys := seq.Keys()
	out := make([]string, len(keys))
	for i, key := range keys {
		out[i] = model.Unquote(key)
	}
	return out
}

// rowTuple asserts one row into its field values.
func rowTuple(r interface{}, i int) ([]interface{}, error) {
	row, ok := r.([]interface{})
	if !ok {
		return nil, fmt.Errorf("row %d is not a tuple: %v", i, r)
	}
	return row, nil
}
