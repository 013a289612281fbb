package model

import "strings"

// Kind classifies a Java field type into the buckets that drive the
// equality, hash, and copy formulas. Arrays are classified before
// anything else; everything that is not a primitive or String is an
// opaque object reference.
type Kind int

const (
	KindInvalid Kind = iota
	KindInt          // int
	KindNarrow       // short, byte, char; widened to int when hashed
	KindBoolean      // boolean
	KindLong         // long
	KindFloat        // float
	KindDouble       // double
	KindString       // java.lang.String, immutable
	KindObject       // any other reference type
	KindArray        // T[]
)

// Field is one eligible class member as declared in the source: the
// type exactly as written (possibly array-suffixed) and the identifier,
// including any variable-prefix convention such as m_make. Both are
// non-empty and Name never contains whitespace. A Field is never
// mutated after extraction.
type Field struct {
	Type string
	Name string
}

// IsArray reports whether the declared type is array-suffixed.
func (f *Field) IsArray() bool {
	return strings.HasSuffix(f.Type, "[]")
}

// ElemType returns the array element type, or the type itself for
// non-array fields.
func (f *Field) ElemType() string {
	return strings.TrimSuffix(f.Type, "[]")
}

// Kind returns the classification of the field's declared type.
func (f *Field) Kind() Kind {
	return KindOf(f.Type)
}

// Class is the resolved unit of work: the class name used for the
// copy-constructor parameter and the equals cast, plus the eligible
// fields in declaration order. Declaration order is load-bearing: it
// fixes the sequence of equality terms and hash accumulation steps.
type Class struct {
	Name   string
	Fields []*Field
}

// KindOf classifies a Java type string written in source form.
func KindOf(typ string) Kind {
	if strings.HasSuffix(typ, "[]") {
		return KindArray
	}
	switch typ {
	case "int":
		return KindInt
	case "short", "byte", "char":
		return KindNarrow
	case "boolean":
		return KindBoolean
	case "long":
		return KindLong
	case "float":
		return KindFloat
	case "double":
		return KindDouble
	case "String", "java.lang.String":
		return KindString
	default:
		return KindObject
	}
}

// IsPrimitive reports whether k is one of the Java primitive kinds.
func (k Kind) IsPrimitive() bool {
	switch k {
	case KindInt, KindNarrow, KindBoolean, KindLong, KindFloat, KindDouble:
		return true
	}
	return false
}
