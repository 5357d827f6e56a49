package model

import (
	"errors"
	"reflect"
	"testing"
)

func newTestDataset(t *testing.T) *DatasetType {
	t.Helper()
	dataset := NewDatasetType("d")
	s := NewStructureType("s")
	if err := dataset.Set("s", s); err != nil {
		t.Fatalf("Set(s) error = %v", err)
	}
	if err := s.Set("foo", NewBaseType("foo", []interface{}{1})); err != nil {
		t.Fatalf("Set(foo) error = %v", err)
	}
	if err := dataset.Set("bar", NewBaseType("bar", []interface{}{2})); err != nil {
		t.Fatalf("Set(bar) error = %v", err)
	}
	return dataset
}

func TestWalk(t *testing.T) {
	dataset := newTestDataset(t)
	var ids []string
	for _, n := range Walk(dataset) {
		ids = append(ids, n.ID())
	}
	want := []string{"d", "s", "s.foo", "bar"}
	if !reflect.DeepEqual(ids, want) {
		t.Errorf("Walk() ids = %v, want %v", ids, want)
	}
}

func TestGetVar(t *testing.T) {
	dataset := newTestDataset(t)

	foo, err := GetVar(dataset, "s.foo")
	if err != nil {
		t.Fatalf("GetVar() error = %v", err)
	}
	if foo.ID() != "s.foo" {
		t.Errorf("GetVar() id = %q, want s.foo", foo.ID())
	}

	if _, err := GetVar(dataset, "s.nope"); !errors.Is(err, ErrNoSuchChild) {
		t.Errorf("GetVar(missing) error = %v, want ErrNoSuchChild", err)
	}
	if _, err := GetVar(dataset, "bar.deeper"); !errors.Is(err, ErrNoSuchChild) {
		t.Errorf("GetVar(through leaf) error = %v, want ErrNoSuchChild", err)
	}
}

func TestEncode(t *testing.T) {
	tests := []struct {
		name  string
		value interface{}
		want  string
	}{
		{"int", 10, "10"},
		{"float", 15.2, "15.2"},
		{"precision", 3.14159265, "3.14159"},
		{"string", "Diamond_St", `"Diamond_St"`},
		{"embedded quote", `say "hi"`, `"say \"hi\""`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Encode(tt.value); got != tt.want {
				t.Errorf("Encode(%v) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}
