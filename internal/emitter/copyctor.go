package emitter

import (
	"fmt"
	"strings"

	"github.com/soda3x/barista/internal/model"
)

// CopyConstructor emits a constructor taking one parameter of the
// class type and copying every field, in declaration order:
//
//   - primitives and String are copied by value,
//   - arrays are null-guarded and duplicated with
//     java.util.Arrays.copyOf (container copy; elements by value),
//   - other references are null-guarded and rebuilt with new T(value),
//     assuming T exposes a single-argument copy constructor. That
//     assumption is not verified.
func CopyConstructor(c *model.Class, cfg Config) string {
	var b strings.Builder
	m := method{
		doc: []string{
			fmt.Sprintf("Copy constructor. Creates a deep copy of the given %s.", c.Name),
			"",
			"@param other the instance to copy",
		},
		signature: fmt.Sprintf("public %s(%s other)", c.Name, c.Name),
	}
	for _, f := range c.Fields {
		m.body = append(m.body, copyAssign(f))
	}
	m.render(&b)
	return b.String()
}

// copyAssign is the per-type copy formula for one field.
func copyAssign(f *model.Field) string {
	switch f.Kind() {
	case model.KindArray:
		return fmt.Sprintf("this.%s = other.%s == null ? null : java.util.Arrays.copyOf(other.%s, other.%s.length);",
			f.Name, f.Name, f.Name, f.Name)
	case model.KindObject:
		return fmt.Sprintf("this.%s = other.%s == null ? null : new %s(other.%s);",
			f.Name, f.Name, f.Type, f.Name)
	default:
		// Primitives and String carry their value.
		return fmt.Sprintf("this.%s = other.%s;", f.Name, f.Name)
	}
}
