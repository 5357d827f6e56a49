package model

import (
	"reflect"
	"testing"
)

func TestPackRows_Flat(t *testing.T) {
	cols := []interface{}{
		[]interface{}{1, 2, 3},
		[]interface{}{10, 20, 30},
		[]interface{}{1, 1, 1},
	}
	want := []interface{}{
		[]interface{}{1, 10, 1},
		[]interface{}{2, 20, 1},
		[]interface{}{3, 30, 1},
	}
	if got := PackRows(cols, 1); !reflect.DeepEqual(got, interface{}(want)) {
		t.Errorf("PackRows() = %v, want %v", got, want)
	}
}

func TestPackRows_Nested(t *testing.T) {
	d := []interface{}{
		[]interface{}{"a", "b", "c"},
		[]interface{}{"d"},
		[]interface{}{"e", "f"},
	}
	e := []interface{}{
		[]interface{}{1, 2, 3},
		[]interface{}{4},
		[]interface{}{5, 6},
	}
	want := []interface{}{
		[]interface{}{[]interface{}{"a", 1}, []interface{}{"b", 2}, []interface{}{"c", 3}},
		[]interface{}{[]interface{}{"d", 4}},
		[]interface{}{[]interface{}{"e", 5}, []interface{}{"f", 6}},
	}
	if got := PackRows([]interface{}{d, e}, 2); !reflect.DeepEqual(got, interface{}(want)) {
		t.Errorf("PackRows() = %v, want %v", got, want)
	}
}

func TestUnpackRows_Flat(t *testing.T) {
	rows := []interface{}{
		[]interface{}{1, 10, 1},
		[]interface{}{2, 20, 1},
	}
	want := []interface{}{
		[]interface{}{1, 2},
		[]interface{}{10, 20},
		[]interface{}{1, 1},
	}
	if got := UnpackRows(rows, 1); !reflect.DeepEqual(got, interface{}(want)) {
		t.Errorf("UnpackRows() = %v, want %v", got, want)
	}
}

func TestRows_RoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		data  interface{}
		level int
	}{
		{
			name:  "depth zero is identity",
			data:  []interface{}{1, 2, 3},
			level: 0,
		},
		{
			name: "flat",
			data: []interface{}{
				[]interface{}{1, 2, 3},
				[]interface{}{10, 20, 30},
			},
			level: 1,
		},
		{
			name: "nested",
			data: []interface{}{
				[]interface{}{[]interface{}{"a", "b"}, []interface{}{"c"}},
				[]interface{}{[]interface{}{1, 2}, []interface{}{3}},
			},
			level: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := UnpackRows(PackRows(tt.data, tt.level), tt.level)
			if !reflect.DeepEqual(got, tt.data) {
				t.Errorf("round trip = %v, want %v", got, tt.data)
			}
		})
	}
}
