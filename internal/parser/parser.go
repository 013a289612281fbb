// Package parser extracts the class name and eligible field
// declarations from the raw source of a single Java class. It is a
// statement-oriented scanner over the grammar subset
//
//	modifier* type name ';'
//
// Declarations that carry an initializer are truncated at the '='.
// Declarations the subset cannot represent (multiple declarators on
// one statement, unbalanced generic parameters) are flagged as
// warnings and skipped rather than silently mis-split.
package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/soda3x/barista/internal/model"
)

// ErrNoClassDecl is returned when the source contains no class,
// interface, or enum declaration to name the unit of work.
var ErrNoClassDecl = errors.New("no class, interface, or enum declaration found")

// Scan is the result of one extraction pass: the resolved class with
// its eligible fields in declaration order, plus one warning per
// private declaration the scanner refused to guess at.
type Scan struct {
	Class    *model.Class
	Warnings []string
}

// javaModifiers are the declaration modifiers the scanner consumes
// before the type. Only private makes a declaration eligible; static,
// final, and transient disqualify it outright.
var javaModifiers = map[string]bool{
	"public":       true,
	"protected":    true,
	"private":      true,
	"static":       true,
	"final":        true,
	"transient":    true,
	"volatile":     true,
	"abstract":     true,
	"synchronized": true,
	"native":       true,
	"strictfp":     true,
}

// Extract scans src for eligible field declarations. A declaration
// qualifies when it carries the private modifier, carries none of
// static, final, or transient, terminates with a semicolon, and, when
// prefix is non-empty, declares a name starting with prefix. An empty
// field list is a valid outcome, not an error.
func Extract(src, prefix string) (*Scan, error) {
	clean := stripComments(src)

	name, err := className(clean)
	if err != nil {
		return nil, err
	}

	scan := &Scan{Class: &model.Class{Name: name}}

	stmts := strings.Split(clean, ";")
	// The trailing chunk has no semicolon terminator and can never be
	// a field declaration.
	for _, stmt := range stmts[:len(stmts)-1] {
		f, warn, ok := parseFieldDecl(stmt)
		if warn != "" {
			scan.Warnings = append(scan.Warnings, warn)
		}
		if !ok {
			continue
		}
		if prefix != "" && !strings.HasPrefix(f.Name, prefix) {
			continue
		}
		scan.Class.Fields = append(scan.Class.Fields, f)
	}

	return scan, nil
}

// className resolves the identifier of the first class, interface, or
// enum declaration in the comment-stripped source.
func className(src string) (string, error) {
	toks := strings.Fields(src)
	for i := 0; i < len(toks)-1; i++ {
		switch toks[i] {
		case "class", "interface", "enum":
			name := toks[i+1]
			if j := strings.IndexAny(name, "<{("); j >= 0 {
				name = name[:j]
			}
			if isIdentifier(name) {
				return name, nil
			}
		}
	}
	return "", ErrNoClassDecl
}

// parseFieldDecl attempts to read one semicolon-terminated statement as
// a field declaration. ok is false when the statement is not an
// eligible declaration; warn is non-empty only when the statement is a
// private declaration the grammar subset cannot represent.
func parseFieldDecl(stmt string) (f *model.Field, warn string, ok bool) {
	toks := strings.Fields(stmt)

	// A brace ends whatever block context preceded this statement;
	// only the tokens after the last one can belong to the declaration.
	for i := len(toks) - 1; i >= 0; i-- {
		if strings.ContainsAny(toks[i], "{}") {
			toks = toks[i+1:]
			break
		}
	}

	// Truncate at the initializer, if any.
	for i, t := range toks {
		if j := strings.IndexByte(t, '='); j >= 0 {
			head := toks[:i:i]
			if j > 0 {
				head = append(head, t[:j])
			}
			toks = head
			break
		}
	}

	// Consume annotations and modifiers.
	private := false
	i := 0
	for ; i < len(toks); i++ {
		t := toks[i]
		if strings.HasPrefix(t, "@") {
			continue
		}
		if !javaModifiers[t] {
			break
		}
		switch t {
		case "private":
			private = true
		case "static", "final", "transient":
			return nil, "", false
		}
	}
	if !private {
		return nil, "", false
	}

	decl := toks[i:]
	if len(decl) < 2 {
		return nil, "", false
	}
	joined := strings.Join(decl, " ")

	if !balancedAngles(joined) {
		return nil, fmt.Sprintf("unbalanced generic parameters in %q", joined), false
	}
	if strings.ContainsRune(stripAngles(joined), ',') {
		return nil, fmt.Sprintf("multiple declarators in %q", joined), false
	}

	name := decl[len(decl)-1]
	typ := strings.Join(decl[:len(decl)-1], " ")
	// Fold C-style trailing brackets into the type.
	for strings.HasSuffix(name, "[]") {
		name = strings.TrimSuffix(name, "[]")
		typ += "[]"
	}
	if typ == "" || !isIdentifier(name) {
		return nil, fmt.Sprintf("declaration %q does not match 'modifier* type name'", joined), false
	}

	return &model.Field{Type: typ, Name: name}, "", true
}

// balancedAngles reports whether every '<' in s closes before the end.
func balancedAngles(s string) bool {
	depth := 0
	for _, r := range s {
		switch r {
		case '<':
			depth++
		case '>':
			depth--
			if depth < 0 {
				return false
			}
		}
	}
	return depth == 0
}

// stripAngles removes balanced '<...>' spans so that commas inside
// generic parameter lists are not mistaken for declarator separators.
func stripAngles(s string) string {
	var b strings.Builder
	depth := 0
	for _, r := range s {
		switch r {
		case '<':
			depth++
		case '>':
			if depth > 0 {
				depth--
			}
		default:
			if depth == 0 {
				b.WriteRune(r)
			}
		}
	}
	return b.String()
}

// isIdentifier reports whether s is a plausible Java identifier.
func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '_', r == '$':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

const (
	stateCode = iota
	stateLineComment
	stateBlockComment
	stateString
	stateChar
)

// stripComments removes line and block comments from src, leaving
// string and character literals intact and preserving newlines so that
// statement boundaries survive.
func stripComments(src string) string {
	var b strings.Builder
	b.Grow(len(src))

	state := stateCode
	for i := 0; i < len(src); i++ {
		c := src[i]
		switch state {
		case stateCode:
			if c == '/' && i+1 < len(src) {
				switch src[i+1] {
				case '/':
					state = stateLineComment
					i++
					continue
				case '*':
					state = stateBlockComment
					i++
					continue
				}
			}
			if c == '"' {
				state = stateString
			} else if c == '\'' {
				state = stateChar
			}
			b.WriteByte(c)
		case stateLineComment:
			if c == '\n' {
				state = stateCode
				b.WriteByte(c)
			}
		case stateBlockComment:
			if c == '*' && i+1 < len(src) && src[i+1] == '/' {
				state = stateCode
				i++
			} else if c == '\n' {
				b.WriteByte(c)
			}
		case stateString:
			if c == '\\' && i+1 < len(src) {
				b.WriteByte(c)
				i++
				b.WriteByte(src[i])
				continue
			}
			if c == '"' {
				state = stateCode
			}
			b.WriteByte(c)
		case stateChar:
			if c == '\\' && i+1 < len(src) {
				b.WriteByte(c)
				i++
				b.WriteByte(src[i])
				continue
			}
			if c == '\'' {
				state = stateCode
			}
			b.WriteByte(c)
		}
	}
	return b.String()
}
