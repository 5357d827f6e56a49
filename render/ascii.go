package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/vegasq/godap/model"
)

// ASCIIFormatter renders sequence rows as an aligned text table.
type ASCIIFormatter struct {
	writer io.Writer
}

// NewASCIIFormatter creates a new ASCII table formatter.
func NewASCIIFormatter(w io.Writer) *ASCIIFormatter {
	return &ASCIIFormatter{writer: w}
}

// SetOutput sets the output writer.
func (a *ASCIIFormatter) SetOutput(w io.Writer) {
	a.writer = w
}

// Format writes the rows as a table, one column per child.
func (a *ASCIIFormatter) Format(seq *model.SequenceType) error {
	table := tablewriter.NewWriter(a.writer)
	table.SetHeader(headers(seq))
	for i, r := range seq.Rows() {
		row, err := rowTuple(r, i)
		if err != nil {
			return err
		}
		record := make([]string, len(row))
		for j, v := range row {
			record[j] = model.Encode(v)
		}
		table.Append(record)
	}
	table.Render()
	return nil
}

// Describe writes a one-line-per-variable summary of a tree: id, kind,
// shape, dimensions and attribute count.
func Describe(w io.Writer, node model.Node) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Variable", "Kind", "Shape", "Dimensions", "Attributes"})
	for _, n := range model.Walk(node) {
		table.Append([]string{
			n.ID(),
			kind(n),
			shapeOf(n),
			dimensionsOf(n),
			fmt.Sprintf("%d", n.Attributes().Len()),
		})
	}
	table.Render()
}

// kind names a variable's type the way a dataset descriptor would.
func kind(n model.Node) string {
	switch v := n.(type) {
	case *model.DatasetType:
		return "Dataset"
	case *model.GridType:
		return "Grid"
	case *model.SequenceType:
		return "Sequence"
	case *model.StructureType:
		return "Structure"
	case *model.BaseType:
		if t := v.Dtype(); t != "" {
			return t
		}
		return "Array"
	default:
		return fmt.Sprintf("%T", n)
	}
}

func shapeOf(n model.Node) string {
	b, ok := n.(*model.BaseType)
	if !ok {
		return ""
	}
	shape := b.Shape()
	parts := make([]string, len(shape))
	for i, s := range shape {
		parts[i] = fmt.Sprintf("%d", s)
	}
	return strings.Join(parts, " x ")
}

func dimensionsOf(n model.Node) string {
	b, ok := n.(*model.BaseType)
	if !ok {
		return ""
	}
	names := make([]string, len(b.Dimensions))
	for i, d := range b.Dimensions {
		names[i] = model.Unquote(d)
	}
	return strings.Join(names, ", ")
}
