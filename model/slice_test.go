package model

import (
	"reflect"
	"testing"
)

func sliceOf(start, stop, step int) Slice {
	return Slice{Start: Int(start), Stop: Int(stop), Step: Int(step)}
}

func TestFixSlice(t *testing.T) {
	tests := []struct {
		name   string
		slices []Slice
		shape  []int
		want   []Slice
	}{
		{
			name:   "negative start",
			slices: []Slice{{Start: Int(-2), Stop: Int(10)}},
			shape:  []int{10},
			want:   []Slice{sliceOf(8, 10, 1)},
		},
		{
			name:   "negative step",
			slices: []Slice{{Start: Int(-3), Stop: Int(3), Step: Int(-1)}},
			shape:  []int{10},
			want:   []Slice{sliceOf(7, 3, -1)},
		},
		{
			name:   "open stop",
			slices: []Slice{{Start: Int(5)}},
			shape:  []int{10},
			want:   []Slice{sliceOf(5, 10, 1)},
		},
		{
			name:   "pad missing axes",
			slices: []Slice{{Start: Int(1), Stop: Int(2)}},
			shape:  []int{2, 3, 1},
			want:   []Slice{sliceOf(1, 2, 1), sliceOf(0, 3, 1), sliceOf(0, 1, 1)},
		},
		{
			name:   "clamp overshoot",
			slices: []Slice{{Start: Int(0), Stop: Int(99)}},
			shape:  []int{4},
			want:   []Slice{sliceOf(0, 4, 1)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FixSlice(tt.slices, tt.shape)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("FixSlice() = %s, want %s", Hyperslab(got...), Hyperslab(tt.want...))
			}
		})
	}
}

func TestCombineSlices(t *testing.T) {
	data := make([]interface{}, 10)
	for i := range data {
		data[i] = i
	}

	tests := []struct {
		name string
		a, b []Slice
	}{
		{"step then range", []Slice{sliceOf(0, 10, 2)}, []Slice{sliceOf(1, 4, 1)}},
		{"range then step", []Slice{sliceOf(2, 9, 1)}, []Slice{sliceOf(0, 7, 2)}},
		{"open stops", []Slice{{Start: Int(3)}}, []Slice{{Step: Int(2)}}},
		{"nested steps", []Slice{sliceOf(1, 10, 2)}, []Slice{sliceOf(1, 5, 2)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sequential, err := applySlices(data, tt.a)
			if err != nil {
				t.Fatalf("applySlices(a) error = %v", err)
			}
			sequential, err = applySlices(sequential, tt.b)
			if err != nil {
				t.Fatalf("applySlices(b) error = %v", err)
			}
			combined, err := applySlices(data, CombineSlices(tt.a, tt.b))
			if err != nil {
				t.Fatalf("applySlices(combined) error = %v", err)
			}
			if !reflect.DeepEqual(combined, sequential) {
				t.Errorf("x[combine(a,b)] = %v, x[a][b] = %v", combined, sequential)
			}
		})
	}
}

func TestHyperslab(t *testing.T) {
	tests := []struct {
		name   string
		slices []Slice
		want   string
	}{
		{"empty", nil, ""},
		{"full axes trimmed", []Slice{{}, {}}, ""},
		{"step", []Slice{sliceOf(0, 10, 2)}, "[0:2:9]"},
		{"open stop", []Slice{{Start: Int(5)}}, "[5:1:]"},
		{"two axes", []Slice{sliceOf(1, 3, 1), sliceOf(0, 2, 1)}, "[1:1:2][0:1:1]"},
		{"trailing full", []Slice{sliceOf(1, 3, 1), {}}, "[1:1:2]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Hyperslab(tt.slices...); got != tt.want {
				t.Errorf("Hyperslab() = %q, want %q", got, tt.want)
			}
		})
	}
}
