// Package xml reads and writes trees of typed XML nodes, delegating
// parsing and printing to beevik/etree. A document is a []*Node slice,
// so declarations, comments and processing instructions can sit next
// to the root element.
package xml

import "fmt"

// NodeType identifies the kind of a node.
type NodeType uint8

const (
	Element NodeType = iota
	CData
	Comment
	Declaration
	DocType
	ProcInst
)

func (t NodeType) String() string {
	switch t {
	case Element:
		return "element"
	case CData:
		return "cdata"
	case Comment:
		return "comment"
	case Declaration:
		return "declaration"
	case DocType:
		return "doctype"
	case ProcInst:
		return "procinst"
	}
	return "unknown"
}

// Node is one node of a document. Which properties a node carries
// depends on its type: a name on Element and ProcInst, a value on
// everything except Declaration (the value of an Element is its direct
// text), attributes on Element and Declaration, children on Element
// only. Accessing a property outside that matrix panics.
type Node struct {
	typ     NodeType
	name    string
	value   string
	attribs map[string]string
	nodes   []*Node
}

// NewNode creates an empty node of the given type.
func NewNode(t NodeType) *Node {
	return &Node{typ: t}
}

// NewElement creates an element node with the given name.
func NewElement(name string) *Node {
	return &Node{typ: Element, name: name}
}

// Type reports the kind of the node.
func (n *Node) Type() NodeType { return n.typ }

// Name returns the node name and panics unless the node is an Element
// or ProcInst.
func (n *Node) Name() string {
	if n.typ != Element && n.typ != ProcInst {
		panic(n.typ.String() + " node has no name")
	}
	return n.name
}

// SetName renames the node; same validity as Name. It returns the
// receiver for chaining.
func (n *Node) SetName(name string) *Node {
	if n.typ != Element && n.typ != ProcInst {
		panic(n.typ.String() + " node has no name")
	}
	n.name = name
	return n
}

// Value returns the node value and panics for Declaration nodes, the
// only kind without one.
func (n *Node) Value() string {
	if n.typ == Declaration {
		panic("declaration node has no value")
	}
	return n.value
}

// SetValue replaces the node value; same validity as Value.
func (n *Node) SetValue(value string) *Node {
	if n.typ == Declaration {
		panic("declaration node has no value")
	}
	n.value = value
	return n
}

func (n *Node) attrs() map[string]string {
	if n.typ != Element && n.typ != Declaration {
		panic(n.typ.String() + " node has no attributes")
	}
	if n.attribs == nil {
		n.attribs = map[string]string{}
	}
	return n.attribs
}

// Attr returns the attribute value for key, panicking when the node
// kind carries no attributes or the key is missing.
func (n *Node) Attr(key string) string {
	v, ok := n.attrs()[key]
	if !ok {
		panic(fmt.Sprintf("node has no attribute %q", key))
	}
	return v
}

// LookupAttr is the non-panicking form of Attr.
func (n *Node) LookupAttr(key string) (string, bool) {
	v, ok := n.attrs()[key]
	return v, ok
}

// SetAttr inserts or replaces an attribute.
func (n *Node) SetAttr(key, value string) *Node {
	n.attrs()[key] = value
	return n
}

// DelAttr removes an attribute and reports whether it was present.
func (n *Node) DelAttr(key string) bool {
	m := n.attrs()
	_, ok := m[key]
	delete(m, key)
	return ok
}

// Attrs returns the attribute map itself; mutations are visible in
// the node.
func (n *Node) Attrs() map[string]string {
	return n.attrs()
}

// Add appends child nodes and panics unless the node is an Element.
// Nil children are skipped.
func (n *Node) Add(children ...*Node) *Node {
	if n.typ != Element {
		panic(n.typ.String() + " node has no children")
	}
	for _, child := range children {
		if child == nil {
			continue
		}
		n.nodes = append(n.nodes, child)
	}
	return n
}

// Children returns the child slice of an Element.
func (n *Node) Children() []*Node {
	if n.typ != Element {
		panic(n.typ.String() + " node has no children")
	}
	return n.nodes
}

// Len reports the number of children of an Element.
func (n *Node) Len() int {
	return len(n.Children())
}

// Clone returns a deep copy of the node and everything under it.
func (n *Node) Clone() *Node {
	out := *n
	if n.attribs != nil {
		out.attribs = make(map[string]string, len(n.attribs))
		for k, v := range n.attribs {
			out.attribs[k] = v
		}
	}
	if n.nodes != nil {
		out.nodes = make([]*Node, len(n.nodes))
		for i, child := range n.nodes {
			out.nodes[i] = child.Clone()
		}
	}
	return &out
}

// Equal reports deep equality of two nodes, attributes and children
// included.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.typ != b.typ || a.name != b.name || a.value != b.value {
		return false
	}
	if len(a.attribs) != len(b.attribs) || len(a.nodes) != len(b.nodes) {
		return false
	}
	for k, av := range a.attribs {
		if bv, ok := b.attribs[k]; !ok || av != bv {
			return false
		}
	}
	for i := range a.nodes {
		if !Equal(a.nodes[i], b.nodes[i]) {
			return false
		}
	}
	return true
}

// EqualAll reports element-wise equality of two node lists.
func EqualAll(a, b []*Node) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}
