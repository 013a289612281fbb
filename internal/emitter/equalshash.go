package emitter

import (
	"fmt"
	"strings"

	"github.com/soda3x/barista/internal/model"
)

// EqualsHash emits equals(Object) and hashCode() over the eligible
// fields, both walking the fields in declaration order and both going
// through the derived getters rather than direct field access.
//
// Boolean fields contribute to the hash as an explicit ternary 1/0;
// that policy is fixed here rather than configurable.
func EqualsHash(c *model.Class, cfg Config) string {
	var b strings.Builder
	equalsMethod(c, cfg).render(&b)
	hashMethod(c, cfg).render(&b)
	return b.String()
}

// equalsMethod builds equals(Object): identity short-circuit,
// instanceof guard, cast, then one AND-joined comparison term per
// field. With no fields the conjunction degenerates to true.
func equalsMethod(c *model.Class, cfg Config) method {
	m := method{
		doc: []string{
			"Indicates whether some other object is equal to this one.",
			"",
			"@param obj the object to compare against",
			"@return true if the objects are equal",
		},
		override:  true,
		signature: "public boolean equals(Object obj)",
		body: []string{
			"if (this == obj) {",
			"    return true;",
			"}",
			fmt.Sprintf("if (!(obj instanceof %s)) {", c.Name),
			"    return false;",
			"}",
			fmt.Sprintf("%s other = (%s) obj;", c.Name, c.Name),
		},
	}

	if len(c.Fields) == 0 {
		m.body = append(m.body, "return true;")
		return m
	}

	for i, f := range c.Fields {
		n := Resolve(f, cfg)
		term := equalsTerm(f, n.Getter)
		switch {
		case i == 0 && len(c.Fields) == 1:
			m.body = append(m.body, "return "+term+";")
		case i == 0:
			m.body = append(m.body, "return "+term)
		case i == len(c.Fields)-1:
			m.body = append(m.body, "        && "+term+";")
		default:
			m.body = append(m.body, "        && "+term)
		}
	}
	return m
}

// equalsTerm is the per-type comparison formula for one field, phrased
// over its getter.
func equalsTerm(f *model.Field, getter string) string {
	mine := getter + "()"
	theirs := "other." + mine
	switch f.Kind() {
	case model.KindFloat:
		return fmt.Sprintf("Float.compare(%s, %s) == 0", mine, theirs)
	case model.KindDouble:
		return fmt.Sprintf("Double.compare(%s, %s) == 0", mine, theirs)
	case model.KindArray:
		return fmt.Sprintf("java.util.Arrays.equals(%s, %s)", mine, theirs)
	case model.KindString, model.KindObject:
		return fmt.Sprintf("java.util.Objects.equals(%s, %s)", mine, theirs)
	default:
		return fmt.Sprintf("%s == %s", mine, theirs)
	}
}

// hashMethod builds hashCode(): seed 1, then one accumulation step per
// field with the configured multiplier. A shared long temp is declared
// once when any double field needs bit folding.
func hashMethod(c *model.Class, cfg Config) method {
	m := method{
		doc: []string{
			fmt.Sprintf("Computes a hash code from the fields of this %s.", c.Name),
			"",
			"@return the hash code",
		},
		override:  true,
		signature: "public int hashCode()",
		body:      []string{"int result = 1;"},
	}

	hasDouble := false
	for _, f := range c.Fields {
		if f.Kind() == model.KindDouble {
			hasDouble = true
			break
		}
	}
	if hasDouble {
		m.body = append(m.body, "long temp;")
	}

	for _, f := range c.Fields {
		n := Resolve(f, cfg)
		m.body = append(m.body, hashSteps(f, n.Getter, cfg.HashMultiplier)...)
	}
	m.body = append(m.body, "return result;")
	return m
}

// hashSteps is the per-type accumulation formula for one field. Every
// kind funnels into result = mult * result + <int term>.
func hashSteps(f *model.Field, getter string, mult int) []string {
	mine := getter + "()"
	acc := func(term string) string {
		return fmt.Sprintf("result = %d * result + %s;", mult, term)
	}
	switch f.Kind() {
	case model.KindNarrow:
		return []string{acc("(int) " + mine)}
	case model.KindBoolean:
		return []string{acc("(" + mine + " ? 1 : 0)")}
	case model.KindLong:
		return []string{acc(fmt.Sprintf("(int) (%s ^ (%s >>> 32))", mine, mine))}
	case model.KindFloat:
		return []string{acc("Float.floatToIntBits(" + mine + ")")}
	case model.KindDouble:
		return []string{
			fmt.Sprintf("temp = Double.doubleToLongBits(%s);", mine),
			acc("(int) (temp ^ (temp >>> 32))"),
		}
	case model.KindArray:
		return []string{acc("java.util.Arrays.hashCode(" + mine + ")")}
	case model.KindString, model.KindObject:
		return []string{acc("java.util.Objects.hashCode(" + mine + ")")}
	default:
		return []string{acc(mine)}
	}
}
