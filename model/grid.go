package model

import "fmt"

// GridType pairs an n-dimensional array with one coordinate map per axis.
//
// The first child must be the array; each further child is a
// one-dimensional map, in axis order. The shape is a documented
// precondition, not enforced at construction: violations surface as
// ErrMalformedGrid when the grid is accessed.
type GridType struct {
	StructureType
}

// NewGridType creates an empty grid. The name is quoted.
func NewGridType(name string) *GridType {
	return &GridType{StructureType: *NewStructureType(name)}
}

// Array returns the grid's data array, its first child.
func (g *GridType) Array() (Node, error) {
	if len(g.keys) == 0 {
		return nil, fmt.Errorf("%w: %s has no array", ErrMalformedGrid, g.id)
	}
	return g.children[g.keys[0]], nil
}

// Maps returns the coordinate maps in axis order.
func (g *GridType) Maps() ([]Node, error) {
	if len(g.keys) == 0 {
		return nil, fmt.Errorf("%w: %s has no array", ErrMalformedGrid, g.id)
	}
	out := make([]Node, 0, len(g.keys)-1)
	for _, key := range g.keys[1:] {
		out = append(out, g.children[key])
	}
	return out, nil
}

// Dimensions returns the map names in axis order.
func (g *GridType) Dimensions() ([]string, error) {
	if len(g.keys) == 0 {
		return nil, fmt.Errorf("%w: %s has no array", ErrMalformedGrid, g.id)
	}
	return append([]string(nil), g.keys[1:]...), nil
}

// Slice returns a new grid with the first slice applied to the array and
// each remaining slice to the corresponding map, in axis order. A single
// slice leaves the maps untouched. The receiver is not modified.
func (g *GridType) Slice(slices ...Slice) (*GridType, error) {
	if len(g.keys) == 0 {
		return nil, fmt.Errorf("%w: %s has no array", ErrMalformedGrid, g.id)
	}
	if len(slices) > len(g.keys) {
		return nil, fmt.Errorf("%w: %d slices for an array and %d maps",
			ErrMalformedGrid, len(slices), len(g.keys)-1)
	}
	out := g.Clone().(*GridType)
	children := out.Children()
	for i, sl := range slices {
		target, ok := children[i].(*BaseType)
		if !ok {
			return nil, fmt.Errorf("%w: %s is not an array", ErrMalformedGrid, children[i].ID())
		}
		sliced, err := applySlices(target.data, []Slice{sl})
		if err != nil {
			return nil, fmt.Errorf("%s: %w", target.id, err)
		}
		target.data = sliced
	}
	return out, nil
}

// Clone returns an independent copy of the grid and its children.
func (g *GridType) Clone() Node {
	out := NewGridType(g.name)
	out.id = g.id
	out.attrs = g.attrs.Clone()
	for _, child := range g.Children() {
		_ = out.Set(child.Name(), child.Clone())
	}
	return out
}
