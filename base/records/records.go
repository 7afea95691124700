// Package records converts between the flat dotted-key record maps stored by
// resolver contracts and nested record trees.
package records

import (
	"sort"
	"strings"
)

// Tree is a nested record tree. Leaves are strings, inner nodes are Tree.
type Tree map[string]interface{}

// Structure expands flat into a freshly allocated Tree. Keys are processed in
// sorted order so the result never depends on map iteration. A key that has an
// empty segment, or that collides with a leaf or inner node already placed, is
// left out of the tree and returned in skipped.
func Structure(flat map[string]string) (tree Tree, skipped []string) {
	keys := make([]string, 0, len(flat))
	for k := range flat {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	tree = Tree{}
	for _, key := range keys {
		if !tree.set(key, flat[key]) {
			skipped = append(skipped, key)
		}
	}
	return tree, skipped
}

// set places value at key, leaving the tree untouched when the path is
// blocked.
func (t Tree) set(key, value string) bool {
	path := strings.Split(key, ".")
	for _, seg := range path {
		if seg == "" {
			return false
		}
	}
	node := t
	for _, seg := range path[:len(path)-1] {
		switch next := node[seg].(type) {
		case nil:
			child := Tree{}
			node[seg] = child
			node = child
		case Tree:
			node = next
		default:
			return false
		}
	}
	last := path[len(path)-1]
	if _, exists := node[last]; exists {
		return false
	}
	node[last] = value
	return true
}

// Flatten is the inverse of Structure.
func Flatten(tree Tree) map[string]string {
	flat := map[string]string{}
	flatten(tree, "", flat)
	return flat
}

func flatten(tree Tree, prefix string, out map[string]string) {
	for k, v := range tree {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch val := v.(type) {
		case string:
			out[key] = val
		case Tree:
			flatten(val, key, out)
		}
	}
}

// Select projects keys out of flat. Keys missing from flat are omitted.
func Select(keys []string, flat map[string]string) map[string]string {
	res := make(map[string]string, len(keys))
	for _, k := range keys {
		if v, ok := flat[k]; ok {
			res[k] = v
		}
	}
	return res
}

// Lookup walks a dotted path through the tree and returns the leaf.
func (t Tree) Lookup(key string) (string, bool) {
	node := t
	path := strings.Split(key, ".")
	for i, seg := range path {
		v, ok := node[seg]
		if !ok {
			return "", false
		}
		if i == len(path)-1 {
			s, ok := v.(string)
			return s, ok
		}
		if node, ok = v.(Tree); !ok {
			return "", false
		}
	}
	return "", false
}

// Subtree returns the inner node at key, or nil.
func (t Tree) Subtree(key string) Tree {
	node, ok := t[key].(Tree)
	if !ok {
		return nil
	}
	return node
}
