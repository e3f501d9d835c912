package xmltree

import (
	"strings"
	"unicode/utf8"
)

// Indent is the number of spaces per nesting level.
const Indent = 2

// Escape replaces the five predefined XML entities in s. Characters
// outside the XML Char production and invalid UTF-8 become U+FFFD.
func Escape(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, width := utf8.DecodeRuneInString(s[i:])
		i += width
		switch {
		case r == '&':
			b.WriteString("&amp;")
		case r == '<':
			b.WriteString("&lt;")
		case r == '>':
			b.WriteString("&gt;")
		case r == '"':
			b.WriteString("&quot;")
		case r == '\'':
			b.WriteString("&apos;")
		case !isChar(r) || (r == utf8.RuneError && width == 1):
			b.WriteRune(utf8.RuneError)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// CDATA wraps s in a CDATA section without escaping anything but
// characters XML does not allow, which become U+FFFD. A "]]>" inside
// s ends the section early and breaks the document.
func CDATA(s string) string {
	return "<![CDATA[" + strings.Map(func(r rune) rune {
		if isChar(r) {
			return r
		}
		return utf8.RuneError
	}, s) + "]]>"
}

// isChar reports whether r is in the Char production of XML 1.0.
func isChar(r rune) bool {
	return r == 0x09 ||
		r == 0x0A ||
		r == 0x0D ||
		r >= 0x20 && r <= 0xD7FF ||
		r >= 0xE000 && r <= 0xFFFD ||
		r >= 0x10000 && r <= 0x10FFFF
}

// Encode renders n as an indented XML string without prolog and
// without a trailing newline. The same tree always yields the same
// bytes.
func Encode(n *Node) string {
	var b strings.Builder
	writeNode(&b, n, 0)
	return b.String()
}

func writeNode(b *strings.Builder, n *Node, depth int) {
	pad := strings.Repeat(" ", depth*Indent)
	b.WriteString(pad)
	b.WriteByte('<')
	b.WriteString(n.Name)
	for _, a := range n.Attrs {
		b.WriteByte(' ')
		b.WriteString(a.Name)
		b.WriteString(`="`)
		b.WriteString(Escape(a.Value))
		b.WriteByte('"')
	}
	b.WriteByte('>')

	if len(n.Children) == 0 {
		if n.CDATA {
			b.WriteString(CDATA(n.Text))
		} else {
			b.WriteString(Escape(n.Text))
		}
		writeEnd(b, n.Name)
		return
	}

	for _, c := range n.Children {
		b.WriteByte('\n')
		writeNode(b, c, depth+1)
	}
	b.WriteByte('\n')
	b.WriteString(pad)
	writeEnd(b, n.Name)
}

func writeEnd(b *strings.Builder, name string) {
	b.WriteString("</")
	b.WriteString(name)
	b.WriteByte('>')
}
