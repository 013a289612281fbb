package emitter

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/soda3x/barista/internal/model"
)

// Names holds every derived name for one field.
//
// Pascal carries the getter-side special case: for a boolean field
// whose plain name already reads is<Upper>, the leading "is" is
// stripped so the configured boolean prefix does not double up. The
// setter never applies that stripping; it is always "set" plus the
// capitalized plain name, so m_isElectric becomes
// setIsElectric(boolean isElectric).
type Names struct {
	// Plain is the field name with the configured prefix removed; it
	// doubles as the setter parameter name.
	Plain string
	// Pascal is the capitalized fragment used to build the getter.
	Pascal string
	// Getter and Setter are the final method names.
	Getter string
	Setter string
}

// Resolve derives the accessor names for f under cfg.
func Resolve(f *model.Field, cfg Config) Names {
	plain := f.Name
	if cfg.Prefix != "" {
		plain = strings.TrimPrefix(plain, cfg.Prefix)
	}

	boolean := f.Kind() == model.KindBoolean

	pascal := upperFirst(plain)
	if boolean && hasIsPrefix(plain) {
		pascal = plain[len("is"):]
	}

	var getter string
	switch {
	case boolean && hasIsPrefix(f.Name):
		// The declared name is already a well-formed boolean getter;
		// reusing it verbatim avoids names like isIsReady.
		getter = plain
	case boolean:
		getter = cfg.BoolStyle + pascal
	default:
		getter = "get" + pascal
	}

	return Names{
		Plain:  plain,
		Pascal: pascal,
		Getter: getter,
		Setter: "set" + upperFirst(plain),
	}
}

// hasIsPrefix reports whether s reads is<Upper>..., i.e. is already
// named like a boolean getter.
func hasIsPrefix(s string) bool {
	if !strings.HasPrefix(s, "is") || len(s) == len("is") {
		return false
	}
	r, _ := utf8.DecodeRuneInString(s[len("is"):])
	return unicode.IsUpper(r)
}

// upperFirst returns s with its first rune upper-cased.
func upperFirst(s string) string {
	if s == "" {
		return s
	}
	r, n := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[n:]
}
