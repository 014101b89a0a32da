// =============================================================================
// VisIt Color Table Converter - Session Parser Module
// =============================================================================
//
// This module loads a VisIt session file into an in-memory element tree.
// VisIt stores its state as nested <Object> and <Field> elements:
//
//   <Object name="ColorControlPointList">
//     <Object name="ColorControlPoint">
//       <Field name="colors" type="unsignedCharArray" length="4">255 0 0 255</Field>
//       <Field name="position" type="float">0.5</Field>
//     </Object>
//   </Object>
//
// The whole document is kept in memory; session files are small.
//
// =============================================================================

package sessionparser

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/net/html/charset"
)

// =============================================================================
// TREE STRUCTURE
// =============================================================================

// Node is one element of a loaded session document. Nodes are read-only once
// Parse returns.
type Node struct {
	// Tag is the local element name, e.g. "Object" or "Field".
	Tag string

	// Attrs maps local attribute names to their values.
	Attrs map[string]string

	// Text is the character data directly inside the element, excluding the
	// text of its children.
	Text string

	// Children are the child elements in document order.
	Children []*Node
}

// Attr returns the value of the named attribute and whether it was present.
func (n *Node) Attr(name string) (string, bool) {
	v, ok := n.Attrs[name]
	return v, ok
}

// EffectiveName resolves the identifier of a node: the "name" attribute when
// present, otherwise the node's text content.
func (n *Node) EffectiveName() string {
	if name, ok := n.Attr("name"); ok {
		return name
	}
	return n.Text
}

// Field returns the first immediate child with the given tag whose "name"
// attribute equals name, or nil.
func (n *Node) Field(tag, name string) *Node {
	for _, child := range n.Children {
		if child.Tag != tag {
			continue
		}
		if v, ok := child.Attr("name"); ok && v == name {
			return child
		}
	}
	return nil
}

// Walk visits n and its descendants in pre-order, passing each node's depth
// relative to n. Returning false from fn stops the walk. Walk reports whether
// the walk ran to completion.
func (n *Node) Walk(fn func(node *Node, depth int) bool) bool {
	return walk(n, 0, fn)
}

func walk(n *Node, depth int, fn func(*Node, int) bool) bool {
	if !fn(n, depth) {
		return false
	}
	for _, child := range n.Children {
		if !walk(child, depth+1, fn) {
			return false
		}
	}
	return true
}

// =============================================================================
// LOADING FUNCTIONS
// =============================================================================

// Load reads and parses the session file at path.
func Load(path string) (*Node, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open session file: %w", err)
	}
	defer file.Close()

	root, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return root, nil
}

// Parse builds the element tree of the XML document read from r. Documents
// declaring a non UTF-8 encoding are transcoded while reading.
func Parse(r io.Reader) (*Node, error) {
	decoder := xml.NewDecoder(r)
	decoder.CharsetReader = charset.NewReaderLabel

	var root *Node
	var stack []*Node
	var text [][]byte

	for {
		t, err := decoder.Token()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, err
		}

		switch tok := t.(type) {
		case xml.StartElement:
			if root != nil && len(stack) == 0 {
				return nil, errors.New("multiple root elements")
			}
			node := &Node{
				Tag:   tok.Name.Local,
				Attrs: make(map[string]string, len(tok.Attr)),
			}
			for _, attr := range tok.Attr {
				node.Attrs[attr.Name.Local] = attr.Value
			}
			if len(stack) == 0 {
				root = node
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, node)
			}
			stack = append(stack, node)
			text = append(text, nil)

		case xml.EndElement:
			// The decoder rejects mismatched end tags, so the stack is never empty here.
			top := len(stack) - 1
			stack[top].Text = string(text[top])
			stack = stack[:top]
			text = text[:top]

		case xml.CharData:
			if len(stack) > 0 {
				top := len(text) - 1
				text[top] = append(text[top], tok...)
			}
		}
	}

	if root == nil {
		return nil, errors.New("document has no root element")
	}
	return root, nil
}
