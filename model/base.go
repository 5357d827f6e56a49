package model

import (
	"fmt"
)

// BaseType is a leaf variable: a thin wrapper over array-like data.
//
// Data is either a scalar or arbitrarily nested []interface{} values, one
// level per axis. The wrapper adds a name, an id, metadata and names for
// the axes.
type BaseType struct {
	dapNode
	data       interface{}
	Dimensions []string
}

// NewBaseType creates a leaf variable. The name is quoted; dimensions
// name the data axes and may be omitted.
func NewBaseType(name string, data interface{}, dimensions ...string) *BaseType {
	return &BaseType{dapNode: newDapNode(name), data: data, Dimensions: dimensions}
}

// Children returns no children; BaseType is a leaf.
func (b *BaseType) Children() []Node { return nil }

// Data returns the wrapped value.
func (b *BaseType) Data() interface{} { return b.data }

// SetData replaces the wrapped value.
func (b *BaseType) SetData(v interface{}) error {
	b.data = v
	return nil
}

func (b *BaseType) rebase(parentID string) { b.setID(parentID) }

// Clone returns a copy with its own attributes and dimension list but a
// shared view of the data.
func (b *BaseType) Clone() Node {
	return &BaseType{
		dapNode:    dapNode{name: b.name, id: b.id, attrs: b.attrs.Clone()},
		data:       b.data,
		Dimensions: append([]string(nil), b.Dimensions...),
	}
}

// Shape returns the size of each axis.
func (b *BaseType) Shape() []int {
	var shape []int
	v := b.data
	for {
		xs, ok := v.([]interface{})
		if !ok {
			return shape
		}
		shape = append(shape, len(xs))
		if len(xs) == 0 {
			return shape
		}
		v = xs[0]
	}
}

// Dtype reports the Go type of the leaf elements, empty when unknown.
func (b *BaseType) Dtype() string {
	v := b.data
	for {
		xs, ok := v.([]interface{})
		if !ok {
			break
		}
		if len(xs) == 0 {
			return ""
		}
		v = xs[0]
	}
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%T", v)
}

// Len returns the size of the first axis, zero for scalars.
func (b *BaseType) Len() int {
	if xs, ok := b.data.([]interface{}); ok {
		return len(xs)
	}
	return 0
}

// Index returns the element at i on the first axis.
func (b *BaseType) Index(i int) (interface{}, error) {
	xs, ok := b.data.([]interface{})
	if !ok {
		return nil, fmt.Errorf("%w: %s holds a scalar", ErrBadData, b.id)
	}
	if i < 0 || i >= len(xs) {
		return nil, fmt.Errorf("index %d out of range for %s (length %d)", i, b.id, len(xs))
	}
	return xs[i], nil
}

// Values returns the first-axis elements for iteration, nil for scalars.
func (b *BaseType) Values() []interface{} {
	xs, _ := b.data.([]interface{})
	return xs
}

// Slice returns a clone with the data restricted to the given hyperslab,
// one slice per axis. The receiver is untouched.
func (b *BaseType) Slice(slices ...Slice) (*BaseType, error) {
	data, err := applySlices(b.data, slices)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", b.id, err)
	}
	out := b.Clone().(*BaseType)
	out.data = data
	return out, nil
}
