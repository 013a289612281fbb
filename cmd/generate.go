package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/soda3x/barista/pkg/action/generate"
	"github.com/soda3x/barista/pkg/action/snapshot"
	"github.com/soda3x/barista/pkg/generator"
)

func init() {
	rootCmd.AddCommand(NewGenerateCommand())
}

func NewGenerateCommand() *cobra.Command {
	options := generator.NewOptions()

	// generateCmd represents the barista generate command
	var generateCmd = &cobra.Command{
		Use:   "generate",
		Short: "generate boilerplate for a Java class",
		Long: `Generate accessor and identity boilerplate for the private fields of a
Java class. At least one of --getters, --setters, --adders,
--copy-constructor, or --equals-hash must be enabled for anything to be
brewed; output order is fixed as getters, setters, adders, copy
constructor, equals/hashCode.`,
		RunE: func(c *cobra.Command, args []string) error {
			applyConfigDefaults(c, options)
			if err := options.Normalize(); err != nil {
				return err
			}
			if options.SnapshotVersion != "" {
				_, err := snapshot.Generate(options)
				return err
			}
			_, err := generate.Run(options)
			return err
		},
	}
	generateCmd.PersistentFlags().StringVarP(&options.SourceFile, "file", "f", "", "Java source file containing the class definition")
	generateCmd.PersistentFlags().StringVarP(&options.OutFile, "output", "o", "", "file to write generated code to (default stdout)")
	generateCmd.PersistentFlags().StringVarP(&options.Prefix, "prefix", "p", "", "variable prefix to strip from field names, ex: m_")
	generateCmd.PersistentFlags().StringVarP(&options.BoolStyle, "bool-style", "b", generator.BoolStyleIs, "getter prefix for boolean fields (is or get)")
	generateCmd.PersistentFlags().IntVarP(&options.HashMultiplier, "hash-multiplier", "m", generator.DefaultHashMultiplier, "multiplier applied to each hashCode accumulation step")
	generateCmd.PersistentFlags().BoolVarP(&options.Getters, "getters", "g", false, "generate getters")
	generateCmd.PersistentFlags().BoolVarP(&options.Setters, "setters", "s", false, "generate setters")
	generateCmd.PersistentFlags().BoolVarP(&options.Adders, "adders", "a", false, "generate append methods for array fields")
	generateCmd.PersistentFlags().BoolVarP(&options.CopyConstructor, "copy-constructor", "c", false, "generate a deep-copy constructor")
	generateCmd.PersistentFlags().BoolVarP(&options.EqualsHash, "equals-hash", "e", false, "generate equals and hashCode")
	generateCmd.PersistentFlags().StringVar(&options.SnapshotVersion, "snapshot-version", "", "record the generated output in the snapshot manifest under this version (requires --output)")
	generateCmd.PersistentFlags().StringVar(&options.ManifestFile, "manifest", generator.DefaultManifestFile, "snapshot manifest file")

	return generateCmd
}

// applyConfigDefaults overlays values from the viper config onto flags
// the user left untouched, so a .barista.yaml can carry a project's
// naming conventions.
func applyConfigDefaults(c *cobra.Command, o *generator.Options) {
	flags := c.Flags()
	if !flags.Changed("prefix") && viper.IsSet("generate.prefix") {
		o.Prefix = viper.GetString("generate.prefix")
	}
	if !flags.Changed("bool-style") && viper.IsSet("generate.bool_style") {
		o.BoolStyle = viper.GetString("generate.bool_style")
	}
	if !flags.Changed("hash-multiplier") && viper.IsSet("generate.hash_multiplier") {
		o.HashMultiplier = viper.GetInt("generate.hash_multiplier")
	}
	if !flags.Changed("manifest") && viper.IsSet("generate.manifest") {
		o.ManifestFile = viper.GetString("generate.manifest")
	}
}
