package generator

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/soda3x/barista/internal/emitter"
	"github.com/soda3x/barista/internal/parser"
)

// Generator turns the source text of one Java class into accessor and
// identity boilerplate. A Generator is stateless across runs: each
// Generate call is an independent single-pass transformation of its
// input, and two runs over identical input and options produce
// identical output.
type Generator struct {
	Opts Options
}

// FieldInfo is the externally visible description of one eligible
// field, including the accessor names the configured naming rules
// derive for it.
type FieldInfo struct {
	Type   string `json:"type"`
	Name   string `json:"name"`
	Getter string `json:"getter"`
	Setter string `json:"setter"`
}

// New builds a Generator from functional options.
func New(opts ...Option) (*Generator, error) {
	o := NewOptions()
	for _, fn := range opts {
		fn(o)
	}
	return NewWithOpts(o)
}

// NewWithOpts builds a Generator from a resolved Options value.
func NewWithOpts(opts *Options) (*Generator, error) {
	if err := opts.Normalize(); err != nil {
		return nil, err
	}
	return &Generator{Opts: *opts}, nil
}

// Generate extracts the eligible fields from src and returns the
// concatenated output of every enabled emitter, in the fixed order
// getters, setters, adders, copy constructor, equals/hash. The two
// degenerate cases (no emitters enabled, no eligible fields) return
// a single informational line and no error.
func (g *Generator) Generate(src string) (string, error) {
	_, out, err := g.Run(src)
	return out, err
}

// Run is Generate plus the resolved class name, scanning src once.
func (g *Generator) Run(src string) (string, string, error) {
	scan, err := g.scan(src)
	if err != nil {
		return "", "", err
	}
	return scan.Class.Name, g.emit(scan), nil
}

func (g *Generator) emit(scan *parser.Scan) string {
	if !g.Opts.AnyEmitter() {
		return "Nothing selected to generate; run 'barista generate --help' to see what can be brewed.\n"
	}
	if len(scan.Class.Fields) == 0 {
		return fmt.Sprintf("No eligible fields found in %s; nothing to generate.\n", scan.Class.Name)
	}

	cfg := emitter.Config{
		Prefix:         g.Opts.Prefix,
		BoolStyle:      g.Opts.BoolStyle,
		HashMultiplier: g.Opts.HashMultiplier,
	}

	var b strings.Builder
	if g.Opts.Getters {
		b.WriteString(emitter.Getters(scan.Class, cfg))
	}
	if g.Opts.Setters {
		b.WriteString(emitter.Setters(scan.Class, cfg))
	}
	if g.Opts.Adders {
		b.WriteString(emitter.Adders(scan.Class, cfg))
	}
	if g.Opts.CopyConstructor {
		b.WriteString(emitter.CopyConstructor(scan.Class, cfg))
	}
	if g.Opts.EqualsHash {
		b.WriteString(emitter.EqualsHash(scan.Class, cfg))
	}
	return b.String()
}

// Fields extracts the eligible fields from src and resolves their
// accessor names without emitting anything.
func (g *Generator) Fields(src string) ([]FieldInfo, error) {
	scan, err := g.scan(src)
	if err != nil {
		return nil, err
	}
	cfg := emitter.Config{
		Prefix:         g.Opts.Prefix,
		BoolStyle:      g.Opts.BoolStyle,
		HashMultiplier: g.Opts.HashMultiplier,
	}
	out := make([]FieldInfo, 0, len(scan.Class.Fields))
	for _, f := range scan.Class.Fields {
		n := emitter.Resolve(f, cfg)
		out = append(out, FieldInfo{
			Type:   f.Type,
			Name:   f.Name,
			Getter: n.Getter,
			Setter: n.Setter,
		})
	}
	return out, nil
}

func (g *Generator) scan(src string) (*parser.Scan, error) {
	scan, err := parser.Extract(src, g.Opts.Prefix)
	if err != nil {
		return nil, err
	}
	for _, w := range scan.Warnings {
		slog.Warn("skipping declaration", "class", scan.Class.Name, "reason", w)
	}
	return scan, nil
}
