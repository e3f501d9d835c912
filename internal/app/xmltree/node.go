// xmltree is a minimal, order-preserving XML element tree and an
// indenting encoder for it. Unlike encoding/xml it keeps attributes
// in insertion order, supports raw CDATA bodies and never
// self-closes empty elements.
package xmltree

// Attr is a single attribute. Attribute order within a Node is the
// order they were added in.
type Attr struct {
	Name  string
	Value string
}

// Node is an XML element. Content is either Text (escaped on
// output), Text wrapped in a CDATA section when CDATA is true, or
// Children. A node with children ignores Text.
type Node struct {
	Name     string
	Attrs    []Attr
	Text     string
	CDATA    bool
	Children []*Node
}

// Element returns a node named name with the given attributes and no
// content.
func Element(name string, attrs ...Attr) *Node {
	return &Node{Name: name, Attrs: attrs}
}

// TextElement returns a node with an escaped text body.
func TextElement(name, text string, attrs ...Attr) *Node {
	return &Node{Name: name, Attrs: attrs, Text: text}
}

// CDATAElement returns a node whose body is emitted verbatim inside a
// CDATA section.
func CDATAElement(name, text string, attrs ...Attr) *Node {
	return &Node{Name: name, Attrs: attrs, Text: text, CDATA: true}
}

// Append adds children in order and returns n.
func (n *Node) Append(children ...*Node) *Node {
	n.Children = append(n.Children, children...)
	return n
}

// A returns a required attribute.
func A(name, value string) Attr {
	return Attr{Name: name, Value: value}
}

// Attrs builds an attribute list from required followed by optional
// attributes. Optional attributes with an empty value are dropped.
func Attrs(required []Attr, optional ...Attr) []Attr {
	out := make([]Attr, 0, len(required)+len(optional))
	out = append(out, required...)
	for _, a := range optional {
		if a.Value != "" {
			out = append(out, a)
		}
	}
	return out
}
