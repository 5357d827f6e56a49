package model

// Node is implemented by every variable in a tree.
//
// Trees are built for single-writer access: attaching a child mutates the
// container and cascades id recomputation through the subtree. Concurrent
// readers must work on independent clones; clones share leaf data buffers,
// so published buffers should be treated as immutable.
type Node interface {
	// Name returns the quoted variable name.
	Name() string
	// ID returns the dotted path of the variable inside its tree.
	ID() string
	// Attributes returns the variable's metadata map.
	Attributes() *Attributes
	// Children returns the direct children in key order, empty for leaves.
	Children() []Node
	// Data returns the variable's data; containers derive it from their
	// children unless they own it, like SequenceType does.
	Data() interface{}
	// SetData assigns data to the variable, distributing it to children
	// where applicable.
	SetData(v interface{}) error
	// Clone returns an independent copy of the subtree. Leaf data buffers
	// are shared by reference.
	Clone() Node

	// rebase recomputes the id from the parent id and cascades into the
	// children. It is the only id mutation path, invoked on attach.
	rebase(parentID string)
}

// dapNode carries the state shared by every variable type.
type dapNode struct {
	name  string
	id    string
	attrs *Attributes
}

func newDapNode(name string) dapNode {
	name = Quote(name)
	return dapNode{name: name, id: name, attrs: NewAttributes()}
}

// Name returns the quoted variable name.
func (n *dapNode) Name() string { return n.name }

// ID returns the dotted path of the variable inside its tree.
func (n *dapNode) ID() string { return n.id }

// Attributes returns the variable's metadata map.
func (n *dapNode) Attributes() *Attributes { return n.attrs }

// setID recomputes the id from the parent id. An empty parent id means
// the variable sits directly under the dataset root.
func (n *dapNode) setID(parentID string) {
	if parentID == "" {
		n.id = n.name
	} else {
		n.id = parentID + "." + n.name
	}
}
