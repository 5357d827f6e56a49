package model

import (
	"errors"
	"reflect"
	"testing"
)

// newRainGrid builds a grid with a 2x3 array and one map per axis.
func newRainGrid(t *testing.T) *GridType {
	t.Helper()
	rain := NewGridType("rain")
	array := NewBaseType("rain", []interface{}{
		[]interface{}{0, 1, 2},
		[]interface{}{3, 4, 5},
	}, "y", "x")
	if err := rain.Set("rain", array); err != nil {
		t.Fatalf("Set(rain) error = %v", err)
	}
	y := NewBaseType("y", []interface{}{0, 1})
	y.Attributes().Set("units", "degrees_north")
	if err := rain.Set("y", y); err != nil {
		t.Fatalf("Set(y) error = %v", err)
	}
	x := NewBaseType("x", []interface{}{0, 1, 2})
	x.Attributes().Set("units", "degrees_east")
	if err := rain.Set("x", x); err != nil {
		t.Fatalf("Set(x) error = %v", err)
	}
	return rain
}

func TestGrid_ArrayMapsDimensions(t *testing.T) {
	rain := newRainGrid(t)

	array, err := rain.Array()
	if err != nil {
		t.Fatalf("Array() error = %v", err)
	}
	if array.Name() != "rain" {
		t.Errorf("Array().Name() = %q, want rain", array.Name())
	}

	maps, err := rain.Maps()
	if err != nil {
		t.Fatalf("Maps() error = %v", err)
	}
	if len(maps) != 2 || maps[0].Name() != "y" || maps[1].Name() != "x" {
		t.Errorf("Maps() = %v", maps)
	}

	dims, err := rain.Dimensions()
	if err != nil {
		t.Fatalf("Dimensions() error = %v", err)
	}
	if !reflect.DeepEqual(dims, []string{"y", "x"}) {
		t.Errorf("Dimensions() = %v, want [y x]", dims)
	}
}

func TestGrid_Slice(t *testing.T) {
	rain := newRainGrid(t)
	out, err := rain.Slice(
		Slice{Start: Int(0), Stop: Int(1)},
		Slice{Start: Int(0), Stop: Int(1)},
	)
	if err != nil {
		t.Fatalf("Slice() error = %v", err)
	}

	array, _ := out.Array()
	if got := array.(*BaseType).Shape(); !reflect.DeepEqual(got, []int{1, 3}) {
		t.Errorf("array shape = %v, want [1 3]", got)
	}
	maps, _ := out.Maps()
	if got := maps[0].(*BaseType).Len(); got != 1 {
		t.Errorf("first map length = %d, want 1", got)
	}
	// Only the first map had a matching slice; the second is untouched.
	if got := maps[1].(*BaseType).Len(); got != 3 {
		t.Errorf("second map length = %d, want 3", got)
	}

	// The source grid is untouched.
	srcArray, _ := rain.Array()
	if got := srcArray.(*BaseType).Shape(); !reflect.DeepEqual(got, []int{2, 3}) {
		t.Errorf("source array shape = %v, want [2 3]", got)
	}
}

func TestGrid_BareIndexLeavesMaps(t *testing.T) {
	rain := newRainGrid(t)
	out, err := rain.Slice(Slice{Start: Int(1), Stop: Int(2)})
	if err != nil {
		t.Fatalf("Slice() error = %v", err)
	}
	array, _ := out.Array()
	if got := array.(*BaseType).Shape(); !reflect.DeepEqual(got, []int{1, 3}) {
		t.Errorf("array shape = %v, want [1 3]", got)
	}
	maps, _ := out.Maps()
	if maps[0].(*BaseType).Len() != 2 || maps[1].(*BaseType).Len() != 3 {
		t.Errorf("maps were sliced by a bare index")
	}
}

func TestGrid_Malformed(t *testing.T) {
	empty := NewGridType("empty")
	if _, err := empty.Array(); !errors.Is(err, ErrMalformedGrid) {
		t.Errorf("Array() error = %v, want ErrMalformedGrid", err)
	}
	if _, err := empty.Maps(); !errors.Is(err, ErrMalformedGrid) {
		t.Errorf("Maps() error = %v, want ErrMalformedGrid", err)
	}
	if _, err := empty.Slice(Slice{}); !errors.Is(err, ErrMalformedGrid) {
		t.Errorf("Slice() error = %v, want ErrMalformedGrid", err)
	}

	rain := newRainGrid(t)
	if _, err := rain.Slice(Slice{}, Slice{}, Slice{}, Slice{}); !errors.Is(err, ErrMalformedGrid) {
		t.Errorf("Slice(too many) error = %v, want ErrMalformedGrid", err)
	}
}
