package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/soda3x/barista/pkg/generator"
)

func init() {
	rootCmd.AddCommand(NewFieldsCommand())
}

func NewFieldsCommand() *cobra.Command {
	var (
		options = generator.NewOptions()
		asJSON  bool
	)

	// fieldsCmd represents the barista fields command
	var fieldsCmd = &cobra.Command{
		Use:   "fields",
		Short: "list the eligible fields of a Java class",
		Long: `List the private fields of a Java class that would drive generation,
together with the getter and setter names the naming rules derive for
them. Useful for checking what a generate run would cover.`,
		RunE: func(c *cobra.Command, args []string) error {
			if options.SourceFile == "" {
				return fmt.Errorf("no source file provided")
			}
			data, err := os.ReadFile(options.SourceFile)
			if err != nil {
				return fmt.Errorf("read source: %w", err)
			}
			gen, err := generator.NewWithOpts(options)
			if err != nil {
				return err
			}
			fields, err := gen.Fields(string(data))
			if err != nil {
				return fmt.Errorf("%s: %w", options.SourceFile, err)
			}

			if asJSON {
				out, err := json.MarshalIndent(fields, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(c.OutOrStdout(), string(out))
				return nil
			}

			w := tabwriter.NewWriter(c.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "TYPE\tNAME\tGETTER\tSETTER")
			for _, f := range fields {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", f.Type, f.Name, f.Getter, f.Setter)
			}
			return w.Flush()
		},
	}
	fieldsCmd.PersistentFlags().StringVarP(&options.SourceFile, "file", "f", "", "Java source file containing the class definition")
	fieldsCmd.PersistentFlags().StringVarP(&options.Prefix, "prefix", "p", "", "variable prefix to strip from field names, ex: m_")
	fieldsCmd.PersistentFlags().StringVarP(&options.BoolStyle, "bool-style", "b", generator.BoolStyleIs, "getter prefix for boolean fields (is or get)")
	fieldsCmd.PersistentFlags().BoolVar(&asJSON, "json", false, "render the field list as JSON")

	return fieldsCmd
}
