package emitter

import "strings"

const indent = "    "

// method is one generated Java method: a javadoc block, an optional
// @Override marker, the signature without braces, and the body lines.
// Body lines carry their own nesting beyond the two base indents.
type method struct {
	doc       []string
	override  bool
	signature string
	body      []string
}

// render appends the method to b at one indent level, followed by a
// blank separator line.
func (m method) render(b *strings.Builder) {
	b.WriteString(indent + "/**\n")
	for _, d := range m.doc {
		if d == "" {
			b.WriteString(indent + " *\n")
			continue
		}
		b.WriteString(indent + " * " + d + "\n")
	}
	b.WriteString(indent + " */\n")
	if m.override {
		b.WriteString(indent + "@Override\n")
	}
	b.WriteString(indent + m.signature + " {\n")
	for _, line := range m.body {
		b.WriteString(indent + indent + line + "\n")
	}
	b.WriteString(indent + "}\n\n")
}
