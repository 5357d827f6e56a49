package model

import "fmt"

// Attributes is the insertion-ordered metadata map attached to every
// variable. It is deliberately separate from child lookup: a child name
// never shadows a metadata key and vice versa.
type Attributes struct {
	keys   []string
	values map[string]interface{}
}

// NewAttributes creates an empty attribute map.
func NewAttributes() *Attributes {
	return &Attributes{values: make(map[string]interface{})}
}

// Set stores value under key. Re-setting an existing key keeps its
// position in the order.
func (a *Attributes) Set(key string, value interface{}) {
	if _, ok := a.values[key]; !ok {
		a.keys = append(a.keys, key)
	}
	a.values[key] = value
}

// Get returns the value stored under key.
func (a *Attributes) Get(key string) (interface{}, error) {
	v, ok := a.values[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoSuchAttribute, key)
	}
	return v, nil
}

// Delete removes key and its value.
func (a *Attributes) Delete(key string) error {
	if _, ok := a.values[key]; !ok {
		return fmt.Errorf("%w: %q", ErrNoSuchAttribute, key)
	}
	delete(a.values, key)
	for i, k := range a.keys {
		if k == key {
			a.keys = append(a.keys[:i], a.keys[i+1:]...)
			break
		}
	}
	return nil
}

// Keys returns the keys in insertion order.
func (a *Attributes) Keys() []string {
	return append([]string(nil), a.keys...)
}

// Len returns the number of attributes.
func (a *Attributes) Len() int {
	return len(a.keys)
}

// Clone returns an independent copy. Values are copied by reference.
func (a *Attributes) Clone() *Attributes {
	out := NewAttributes()
	for _, k := range a.keys {
		out.Set(k, a.values[k])
	}
	return out
}
