package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Walk returns node and all of its descendants in depth-first pre-order.
func Walk(node Node) []Node {
	out := []Node{node}
	for _, child := range node.Children() {
		out = append(out, Walk(child)...)
	}
	return out
}

// GetVar resolves a dotted id against a tree by repeated child lookup.
// An empty id returns the node itself.
func GetVar(node Node, id string) (Node, error) {
	if id == "" {
		return node, nil
	}
	current := node
	for _, token := range strings.Split(id, ".") {
		container, ok := current.(interface {
			Get(key string) (Node, error)
		})
		if !ok {
			return nil, fmt.Errorf("%w: %s is not a container", ErrNoSuchChild, current.ID())
		}
		child, err := container.Get(token)
		if err != nil {
			return nil, err
		}
		current = child
	}
	return current, nil
}

// Encode renders a scalar in its DAP textual form: %.6g for numbers, a
// quoted string with escaped quotes otherwise.
func Encode(v interface{}) string {
	if f, ok := toFloat64(v); ok {
		return strconv.FormatFloat(f, 'g', 6, 64)
	}
	s, ok := toString(v)
	if !ok {
		s = fmt.Sprintf("%v", v)
	}
	return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
}
