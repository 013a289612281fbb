package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/soda3x/barista/pkg/action/snapshot"
	"github.com/soda3x/barista/pkg/generator"
)

func init() {
	rootCmd.AddCommand(NewSnapshotsCommand())
}

func NewSnapshotsCommand() *cobra.Command {
	var (
		manifestFile string
		diff         bool
	)

	// snapshotsCmd represents the barista snapshots command
	var snapshotsCmd = &cobra.Command{
		Use:   "snapshots",
		Short: "list or diff recorded generation snapshots",
		Long: `List the generation snapshots recorded in the manifest, or diff the
current snapshot against the previous one. Snapshots are recorded by
'barista generate --output FILE --snapshot-version vN'.`,
		RunE: func(c *cobra.Command, args []string) error {
			if diff {
				d, err := snapshot.DiffCurrentWithPrevious(manifestFile)
				if err != nil {
					return err
				}
				if d == "" {
					fmt.Fprintln(c.OutOrStdout(), "current and previous snapshots are identical")
					return nil
				}
				fmt.Fprintln(c.OutOrStdout(), d)
				return nil
			}

			m, err := snapshot.List(manifestFile)
			if err != nil {
				return err
			}
			if len(m.Snapshots) == 0 {
				fmt.Fprintln(c.OutOrStdout(), "no snapshots recorded")
				return nil
			}
			fmt.Fprintf(c.OutOrStdout(), "current: %s  previous: %s\n", m.CurrentVersion, m.PreviousVersion)
			for _, s := range m.Snapshots {
				fmt.Fprintf(c.OutOrStdout(), "%s\t%s\t%s\t[%s]\n", s.Version, s.Class, s.File, strings.Join(s.Emitters, ", "))
			}
			return nil
		},
	}
	snapshotsCmd.PersistentFlags().StringVar(&manifestFile, "manifest", generator.DefaultManifestFile, "snapshot manifest file")
	snapshotsCmd.PersistentFlags().BoolVar(&diff, "diff", false, "diff the current snapshot against the previous one")

	return snapshotsCmd
}
