package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cmmoran/copytogen/pkg/action/snapshot"
	"github.com/cmmoran/copytogen/pkg/generator"
)

func init() {
	rootCmd.AddCommand(NewSnapshotCommand())
}

func NewSnapshotCommand() *cobra.Command {
	var manifestPath string

	// snapshotCmd represents the copytogen snapshot command
	var snapshotCmd = &cobra.Command{
		Use:   "snapshot",
		Short: "manage copy method snapshots",
		Long:  "Record, list and compare versioned snapshots of generated copy methods",
	}
	snapshotCmd.PersistentFlags().StringVar(&manifestPath, "manifest", filepath.Join("copyto", "manifest.yaml"), "snapshot manifest file")

	snapshotCmd.AddCommand(
		newSnapshotCreateCommand(&manifestPath),
		newSnapshotListCommand(&manifestPath),
		newSnapshotDiffCommand(&manifestPath),
	)
	return snapshotCmd
}

func newSnapshotCreateCommand(manifestPath *string) *cobra.Command {
	var (
		options = generator.NewOptions()
		name    string
		ver     string
	)

	createCmd := &cobra.Command{
		Use:   "create [descriptor files or directories...]",
		Short: "generate and record a snapshot",
		PreRunE: func(c *cobra.Command, _ []string) error {
			return bindGeneratorFlags(c.Flags())
		},
		RunE: func(c *cobra.Command, args []string) error {
			opts, err := loadOptions(options, args)
			if err != nil {
				return err
			}
			snapshotName := name
			if snapshotName == "" {
				snapshotName = ver
			}
			files, err := snapshot.Generate(opts, *manifestPath, snapshotName, ver)
			if err != nil {
				return err
			}
			for _, f := range files {
				_, _ = fmt.Fprintln(c.OutOrStdout(), f)
			}
			return nil
		},
	}
	addGeneratorFlags(createCmd.Flags(), options)
	createCmd.Flags().StringVarP(&name, "name", "n", "", "snapshot name (defaults to the version)")
	createCmd.Flags().StringVarP(&ver, "version", "v", "", "snapshot semantic version")
	_ = createCmd.MarkFlagRequired("version")

	return createCmd
}

func newSnapshotListCommand(manifestPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "list recorded snapshots",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			m, err := snapshot.List(*manifestPath)
			if err != nil {
				return err
			}
			for _, s := range m.Sorted() {
				marker := " "
				if s.Version == m.CurrentVersion {
					marker = "*"
				}
				_, _ = fmt.Fprintf(c.OutOrStdout(), "%s %s\t%s\t%d file(s)\n", marker, s.Version, s.Name, len(s.Files))
			}
			return nil
		},
	}
}

func newSnapshotDiffCommand(manifestPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "diff",
		Short: "diff the current snapshot against the previous one",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			diff, err := snapshot.DiffCurrentWithPrevious(*manifestPath)
			if err != nil {
				return err
			}
			if diff == "" {
				_, _ = fmt.Fprintln(c.OutOrStdout(), "no changes")
				return nil
			}
			_, _ = fmt.Fprint(c.OutOrStdout(), diff)
			return nil
		},
	}
}
