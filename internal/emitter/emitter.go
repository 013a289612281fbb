// Package emitter renders Java accessor and identity boilerplate from
// an extracted class model. Each emitter builds small method values
// (doc block, signature, body lines) and renders them with four-space
// indentation; the per-type equality, hash, and copy formulas are pure
// functions keyed by the model's type classification. Generated code
// references java.util.Objects and java.util.Arrays by their qualified
// names so fragments can be pasted without import management.
package emitter

// Config is the resolved naming and hashing configuration shared by
// the name resolver and every emitter. Emitters read no ambient state.
type Config struct {
	// Prefix is the variable-name prefix to strip when deriving
	// accessor names, e.g. "m_". Empty means no prefix convention.
	Prefix string
	// BoolStyle is the getter prefix for boolean fields, "is" or "get".
	BoolStyle string
	// HashMultiplier is the constant applied to every hash
	// accumulation step. It must render as a positive integer literal.
	HashMultiplier int
}
