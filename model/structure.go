package model

import "fmt"

// StructureType is an ordered container of named variables. Keys are
// unique and always equal to the child's quoted name; re-inserting an
// existing key moves it to the tail of the order.
type StructureType struct {
	dapNode
	keys     []string
	children map[string]Node
}

// NewStructureType creates an empty structure. The name is quoted.
func NewStructureType(name string) *StructureType {
	return &StructureType{dapNode: newDapNode(name), children: make(map[string]Node)}
}

// Set inserts child under key. The key is quoted with the same scheme as
// variable names and must match the child's own name; validation happens
// before any mutation, so a failed insert leaves the container unchanged.
// On success the child and all of its descendants get their ids
// recomputed from the container's id.
func (s *StructureType) Set(key string, child Node) error {
	return s.attach(key, child, s.id)
}

// attach implements Set with an explicit parent id, so DatasetType can
// exclude its own name from descendant ids.
func (s *StructureType) attach(key string, child Node, parentID string) error {
	key = Quote(key)
	if key != child.Name() {
		return fmt.Errorf("%w: key %q, variable name %q", ErrKeyMismatch, key, child.Name())
	}
	if _, ok := s.children[key]; ok {
		s.keys = removeKey(s.keys, key)
	}
	s.keys = append(s.keys, key)
	s.children[key] = child
	child.rebase(parentID)
	return nil
}

// Get returns the child stored under key.
func (s *StructureType) Get(key string) (Node, error) {
	child, ok := s.children[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q in %s", ErrNoSuchChild, key, s.id)
	}
	return child, nil
}

// Has reports whether a child is stored under key.
func (s *StructureType) Has(key string) bool {
	_, ok := s.children[key]
	return ok
}

// Delete removes the child stored under key. The detached subtree keeps
// its ids; they only matter once it is attached somewhere again.
func (s *StructureType) Delete(key string) error {
	if _, ok := s.children[key]; !ok {
		return fmt.Errorf("%w: %q in %s", ErrNoSuchChild, key, s.id)
	}
	delete(s.children, key)
	s.keys = removeKey(s.keys, key)
	return nil
}

// Keys returns the child keys in insertion order.
func (s *StructureType) Keys() []string {
	return append([]string(nil), s.keys...)
}

// Len returns the number of children.
func (s *StructureType) Len() int {
	return len(s.keys)
}

// Children returns the children in key order.
func (s *StructureType) Children() []Node {
	out := make([]Node, 0, len(s.keys))
	for _, key := range s.keys {
		out = append(out, s.children[key])
	}
	return out
}

func (s *StructureType) rebase(parentID string) {
	s.setID(parentID)
	for _, key := range s.keys {
		s.children[key].rebase(s.id)
	}
}

// Data gathers the children's data in key order.
func (s *StructureType) Data() interface{} {
	out := make([]interface{}, 0, len(s.keys))
	for _, child := range s.Children() {
		out = append(out, child.Data())
	}
	return out
}

// SetData scatters one element per child, in key order.
func (s *StructureType) SetData(v interface{}) error {
	cols, ok := v.([]interface{})
	if !ok || len(cols) != len(s.keys) {
		return fmt.Errorf("%w: %s wants %d elements", ErrBadData, s.id, len(s.keys))
	}
	for i, child := range s.Children() {
		if err := child.SetData(cols[i]); err != nil {
			return err
		}
	}
	return nil
}

// Clone returns an independent copy of the structure and its children.
func (s *StructureType) Clone() Node {
	out := NewStructureType(s.name)
	out.id = s.id
	out.attrs = s.attrs.Clone()
	for _, child := range s.Children() {
		_ = out.Set(child.Name(), child.Clone())
	}
	return out
}

func removeKey(keys []string, key string) []string {
	for i, k := range keys {
		if k == key {
			return append(keys[:i], keys[i+1:]...)
		}
	}
	return keys
}

// DatasetType is the root of a tree. It behaves like StructureType except
// that its own name never shows up in descendant ids: a variable directly
// under the root has its bare name as id.
type DatasetType struct {
	StructureType
}

// NewDatasetType creates an empty dataset. The name is quoted.
func NewDatasetType(name string) *DatasetType {
	return &DatasetType{StructureType: *NewStructureType(name)}
}

// Set inserts child under key, rebasing it with an empty parent id so the
// dataset name stays out of the descendant ids.
func (d *DatasetType) Set(key string, child Node) error {
	return d.attach(key, child, "")
}

func (d *DatasetType) rebase(parentID string) {
	d.setID(parentID)
	for _, key := range d.keys {
		d.children[key].rebase("")
	}
}

// Clone returns an independent copy of the dataset and its children.
func (d *DatasetType) Clone() Node {
	out := NewDatasetType(d.name)
	out.id = d.id
	out.attrs = d.attrs.Clone()
	for _, child := range d.Children() {
		_ = out.Set(child.Name(), child.Clone())
	}
	return out
}
