package emitter

import (
	"fmt"
	"strings"

	"github.com/jinzhu/inflection"

	"github.com/soda3x/barista/internal/model"
)

// Adders emits an append method for each array-typed field, growing the
// array by one via java.util.Arrays.copyOf. The method stem is the
// singular form of the plain field name, so int[] scores gets
// addScore(int score).
func Adders(c *model.Class, cfg Config) string {
	var b strings.Builder
	for _, f := range c.Fields {
		if !f.IsArray() {
			continue
		}
		n := Resolve(f, cfg)
		singular := lowerFirst(inflection.Singular(n.Pascal))
		m := method{
			doc: []string{
				fmt.Sprintf("Appends a value to %s.", f.Name),
				"",
				fmt.Sprintf("@param %s the value to append", singular),
			},
			signature: fmt.Sprintf("public void add%s(%s %s)", upperFirst(singular), f.ElemType(), singular),
			body: []string{
				fmt.Sprintf("if (this.%s == null) {", f.Name),
				fmt.Sprintf("    this.%s = new %s[1];", f.Name, f.ElemType()),
				"} else {",
				fmt.Sprintf("    this.%s = java.util.Arrays.copyOf(this.%s, this.%s.length + 1);", f.Name, f.Name, f.Name),
				"}",
				fmt.Sprintf("this.%s[this.%s.length - 1] = %s;", f.Name, f.Name, singular),
			},
		}
		m.render(&b)
	}
	return b.String()
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
