package emitter

import (
	"fmt"
	"strings"

	"github.com/soda3x/barista/internal/model"
)

// Getters emits one getter per field, in declaration order. Getters
// return the field value unmodified.
func Getters(c *model.Class, cfg Config) string {
	var b strings.Builder
	for _, f := range c.Fields {
		n := Resolve(f, cfg)
		m := method{
			doc: []string{
				fmt.Sprintf("Gets the value of %s.", f.Name),
				"",
				fmt.Sprintf("@return the value of %s", f.Name),
			},
			signature: fmt.Sprintf("public %s %s()", f.Type, n.Getter),
			body:      []string{fmt.Sprintf("return %s;", f.Name)},
		}
		m.render(&b)
	}
	return b.String()
}

// Setters emits one setter per field, in declaration order. The
// parameter is named after the plain field name and assigned through an
// explicit this reference; no validation is performed.
func Setters(c *model.Class, cfg Config) string {
	var b strings.Builder
	for _, f := range c.Fields {
		n := Resolve(f, cfg)
		m := method{
			doc: []string{
				fmt.Sprintf("Sets the value of %s.", f.Name),
				"",
				fmt.Sprintf("@param %s the new value", n.Plain),
			},
			signature: fmt.Sprintf("public void %s(%s %s)", n.Setter, f.Type, n.Plain),
			body:      []string{fmt.Sprintf("this.%s = %s;", f.Name, n.Plain)},
		}
		m.render(&b)
	}
	return b.String()
}
