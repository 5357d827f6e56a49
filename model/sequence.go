package model

import "fmt"

// SequenceType is a record-stream container. Unlike StructureType it owns
// one composite row-oriented value itself, with one column per child.
//
// All derivations (Select, Filter, Slice) are non-mutating: they return a
// new detached sequence and leave the receiver untouched. Field selection
// and row filtering compose in either order.
type SequenceType struct {
	StructureType
	data interface{}
}

// NewSequenceType creates an empty sequence. The name is quoted.
func NewSequenceType(name string) *SequenceType {
	return &SequenceType{StructureType: *NewStructureType(name)}
}

// Data returns the rows.
func (s *SequenceType) Data() interface{} { return s.data }

// SetData stores the rows and distributes one column into each
// descendant, following its relative path into the value. Fields that are
// themselves record containers receive their columns one nesting level
// deeper, transposed with UnpackRows.
func (s *SequenceType) SetData(v interface{}) error {
	s.data = v
	return scatterColumns(s.Children(), v, 1)
}

// scatterColumns splits row-oriented data into one column per child and
// assigns each column to the matching child. depth is the nesting level
// of the rows being split.
func scatterColumns(children []Node, data interface{}, depth int) error {
	if len(children) == 0 {
		return nil
	}
	rows, ok := data.([]interface{})
	if !ok {
		return fmt.Errorf("%w: rows must be a slice, got %T", ErrBadData, data)
	}
	var cols []interface{}
	if len(rows) == 0 {
		cols = make([]interface{}, len(children))
		for i := range cols {
			cols[i] = []interface{}{}
		}
	} else {
		cols, _ = UnpackRows(rows, depth).([]interface{})
	}
	if len(cols) != len(children) {
		return fmt.Errorf("%w: %d columns for %d fields", ErrBadData, len(cols), len(children))
	}
	for i, child := range children {
		switch c := child.(type) {
		case *BaseType:
			c.data = cols[i]
		case *SequenceType:
			c.data = cols[i]
			if err := scatterColumns(c.Children(), cols[i], depth+1); err != nil {
				return err
			}
		case *StructureType:
			if err := scatterColumns(c.Children(), cols[i], depth); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: cannot assign a column to %T", ErrBadData, child)
		}
	}
	return nil
}

// Len returns the number of rows.
func (s *SequenceType) Len() int {
	return len(s.Rows())
}

// Rows returns the rows for iteration.
func (s *SequenceType) Rows() []interface{} {
	rows, _ := s.data.([]interface{})
	return rows
}

// Row returns the row at index i.
func (s *SequenceType) Row(i int) (interface{}, error) {
	rows := s.Rows()
	if i < 0 || i >= len(rows) {
		return nil, fmt.Errorf("row %d out of range for %s (%d rows)", i, s.id, len(rows))
	}
	return rows[i], nil
}

// Select returns a new sequence holding only the named children, cloned,
// with the columns reordered and co-selected to match. Names follow the
// same quoting scheme as keys.
func (s *SequenceType) Select(names ...string) (*SequenceType, error) {
	out := NewSequenceType(s.name)
	out.id = s.id
	out.attrs = s.attrs.Clone()

	indexes := make([]int, len(names))
	for i, name := range names {
		name = Quote(name)
		pos := indexOfKey(s.keys, name)
		if pos < 0 {
			return nil, fmt.Errorf("%w: %q in %s", ErrNoSuchChild, name, s.id)
		}
		indexes[i] = pos
		if err := out.Set(name, s.children[name].Clone()); err != nil {
			return nil, err
		}
	}

	rows := s.Rows()
	projected := make([]interface{}, len(rows))
	for i, r := range rows {
		row, ok := r.([]interface{})
		if !ok {
			return nil, fmt.Errorf("%w: row %d is not a tuple", ErrBadData, i)
		}
		picked := make([]interface{}, len(indexes))
		for j, idx := range indexes {
			if idx >= len(row) {
				return nil, fmt.Errorf("%w: row %d has %d fields", ErrBadData, i, len(row))
			}
			picked[j] = row[idx]
		}
		projected[i] = picked
	}
	if err := out.SetData(projected); err != nil {
		return nil, err
	}
	return out, nil
}

// Filter returns a new sequence keeping the rows where mask is true. The
// mask must have one entry per row.
func (s *SequenceType) Filter(mask []bool) (*SequenceType, error) {
	rows := s.Rows()
	if len(mask) != len(rows) {
		return nil, fmt.Errorf("%w: mask length %d for %d rows", ErrBadData, len(mask), len(rows))
	}
	kept := []interface{}{}
	for i, row := range rows {
		if mask[i] {
			kept = append(kept, row)
		}
	}
	out := s.Clone().(*SequenceType)
	if err := out.SetData(kept); err != nil {
		return nil, err
	}
	return out, nil
}

// Slice returns a new sequence with the rows restricted to sl.
func (s *SequenceType) Slice(sl Slice) (*SequenceType, error) {
	sliced, err := applySlices(s.Rows(), []Slice{sl})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.id, err)
	}
	out := s.Clone().(*SequenceType)
	if err := out.SetData(sliced); err != nil {
		return nil, err
	}
	return out, nil
}

// Clone returns an independent copy of the sequence and its children. The
// row data is shared by reference.
func (s *SequenceType) Clone() Node {
	out := NewSequenceType(s.name)
	out.id = s.id
	out.attrs = s.attrs.Clone()
	out.data = s.data
	for _, child := range s.Children() {
		_ = out.Set(child.Name(), child.Clone())
	}
	return out
}

func indexOfKey(keys []string, key string) int {
	for i, k := range keys {
		if k == key {
			return i
		}
	}
	return -1
}
