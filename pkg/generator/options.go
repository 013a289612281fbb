package generator

import "fmt"

// Options control extraction, naming, and which emitters run.
//
// SourceFile      – Java source file to read (CLI glue only; the core
//                   consumes already-loaded text)
// OutFile         – optional output file; empty writes to stdout
// Prefix          – variable-name prefix to strip, e.g. "m_"; doubles
//                   as the extraction filter when non-empty
// BoolStyle       – getter prefix for boolean fields, "is" or "get"
// HashMultiplier  – constant applied to every hash accumulation step
// Getters ...     – emitter switches; at least one must be set for any
//                   emission to happen
// SnapshotVersion – when set together with OutFile, record the output
//                   in the snapshot manifest under this version
// ManifestFile    – snapshot manifest location
type Options struct {
	SourceFile      string `json:"source_file,omitempty" yaml:"source_file,omitempty" toml:"source_file,omitempty" mapstructure:"source_file,omitempty"`
	OutFile         string `json:"out_file,omitempty" yaml:"out_file,omitempty" toml:"out_file,omitempty" mapstructure:"out_file,omitempty"`
	Prefix          string `json:"prefix,omitempty" yaml:"prefix,omitempty" toml:"prefix,omitempty" mapstructure:"prefix,omitempty"`
	BoolStyle       string `json:"bool_style,omitempty" yaml:"bool_style,omitempty" toml:"bool_style,omitempty" mapstructure:"bool_style,omitempty"`
	HashMultiplier  int    `json:"hash_multiplier,omitempty" yaml:"hash_multiplier,omitempty" toml:"hash_multiplier,omitempty" mapstructure:"hash_multiplier,omitempty"`
	Getters         bool   `json:"getters,omitempty" yaml:"getters,omitempty" toml:"getters,omitempty" mapstructure:"getters,omitempty"`
	Setters         bool   `json:"setters,omitempty" yaml:"setters,omitempty" toml:"setters,omitempty" mapstructure:"setters,omitempty"`
	Adders          bool   `json:"adders,omitempty" yaml:"adders,omitempty" toml:"adders,omitempty" mapstructure:"adders,omitempty"`
	CopyConstructor bool   `json:"copy_constructor,omitempty" yaml:"copy_constructor,omitempty" toml:"copy_constructor,omitempty" mapstructure:"copy_constructor,omitempty"`
	EqualsHash      bool   `json:"equals_hash,omitempty" yaml:"equals_hash,omitempty" toml:"equals_hash,omitempty" mapstructure:"equals_hash,omitempty"`
	SnapshotVersion string `json:"snapshot_version,omitempty" yaml:"snapshot_version,omitempty" toml:"snapshot_version,omitempty" mapstructure:"snapshot_version,omitempty"`
	ManifestFile    string `json:"manifest_file,omitempty" yaml:"manifest_file,omitempty" toml:"manifest_file,omitempty" mapstructure:"manifest_file,omitempty"`
}

// BoolStyleIs and BoolStyleGet are the two accepted boolean-getter
// prefixes.
const (
	BoolStyleIs  = "is"
	BoolStyleGet = "get"

	DefaultHashMultiplier = 31
	DefaultManifestFile   = "barista.manifest.yaml"
)

func NewOptions() *Options {
	return &Options{
		BoolStyle:      BoolStyleIs,
		HashMultiplier: DefaultHashMultiplier,
		ManifestFile:   DefaultManifestFile,
	}
}

// Normalize fills unset values with defaults and validates the rest.
func (o *Options) Normalize() error {
	if o.BoolStyle == "" {
		o.BoolStyle = BoolStyleIs
	}
	if o.BoolStyle != BoolStyleIs && o.BoolStyle != BoolStyleGet {
		return fmt.Errorf("bool style must be %q or %q, got %q", BoolStyleIs, BoolStyleGet, o.BoolStyle)
	}
	if o.HashMultiplier == 0 {
		o.HashMultiplier = DefaultHashMultiplier
	}
	if o.HashMultiplier < 0 {
		return fmt.Errorf("hash multiplier must be positive, got %d", o.HashMultiplier)
	}
	if o.ManifestFile == "" {
		o.ManifestFile = DefaultManifestFile
	}
	return nil
}

// AnyEmitter reports whether at least one emitter switch is set.
func (o *Options) AnyEmitter() bool {
	return o.Getters || o.Setters || o.Adders || o.CopyConstructor || o.EqualsHash
}

// EnabledEmitters lists the enabled switches in emission order, for
// logging and the snapshot manifest.
func (o *Options) EnabledEmitters() []string {
	var out []string
	if o.Getters {
		out = append(out, "getters")
	}
	if o.Setters {
		out = append(out, "setters")
	}
	if o.Adders {
		out = append(out, "adders")
	}
	if o.CopyConstructor {
		out = append(out, "copy-constructor")
	}
	if o.EqualsHash {
		out = append(out, "equals-hash")
	}
	return out
}

// functional option pattern ---------------------------------------------------

type Option func(*Options)

func WithSourceFile(f string) Option    { return func(o *Options) { o.SourceFile = f } }
func WithOutFile(f string) Option       { return func(o *Options) { o.OutFile = f } }
func WithPrefix(p string) Option        { return func(o *Options) { o.Prefix = p } }
func WithBoolStyle(s string) Option     { return func(o *Options) { o.BoolStyle = s } }
func WithHashMultiplier(m int) Option   { return func(o *Options) { o.HashMultiplier = m } }
func WithGetters() Option               { return func(o *Options) { o.Getters = true } }
func WithSetters() Option               { return func(o *Options) { o.Setters = true } }
func WithAdders() Option                { return func(o *Options) { o.Adders = true } }
func WithCopyConstructor() Option       { return func(o *Options) { o.CopyConstructor = true } }
func WithEqualsHash() Option            { return func(o *Options) { o.EqualsHash = true } }
func WithManifestFile(f string) Option  { return func(o *Options) { o.ManifestFile = f } }
func WithSnapshotVersion(v string) Option {
	return func(o *Options) { o.SnapshotVersion = v }
}
