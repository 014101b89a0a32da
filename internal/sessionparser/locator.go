package sessionparser

import (
	"fmt"
	"io"
	"strings"
)

// Locate returns the first node under root, root included, whose effective
// name equals target. Nodes are visited before their children and children
// in document order. It returns nil when nothing matches.
func Locate(root *Node, target string) *Node {
	var found *Node
	root.Walk(func(n *Node, _ int) bool {
		if n.EffectiveName() == target {
			found = n
			return false
		}
		return true
	})
	return found
}

// Dump writes the structure of the subtree rooted at n to w, one
// "Tag: name" line per node, indented four spaces per level.
func Dump(w io.Writer, n *Node) error {
	var err error
	n.Walk(func(node *Node, depth int) bool {
		_, err = fmt.Fprintf(w, "%s%s: %s\n", strings.Repeat(" ", depth*4), node.Tag, strings.TrimSpace(node.EffectiveName()))
		return err == nil
	})
	return err
}
