package cmd

import (
	"github.com/spf13/cobra"

	"github.com/bnema/pyme-segmenter/internal/adapters/render/segments"
)

func newTreeCmd(app *app) *cobra.Command {
	var search string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Show the Residential resource tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.start(cmd); err != nil {
				return err
			}

			vm := app.engine.ViewModel()
			section := segments.ResidentialSection(vm, search)
			if asJSON {
				return writeJSON(cmd, section.Root)
			}
			return writeSections(cmd, app, []segments.Section{section}, segments.OptionsFrom(vm))
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "Keep only resources whose id or name contains this text")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func newPymeCmd(app *app) *cobra.Command {
	var group bool
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "pyme",
		Short: "List resources currently in the PYME pool",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.start(cmd); err != nil {
				return err
			}

			vm := app.engine.ViewModel()
			section := segments.PymeSection(vm, group)
			if asJSON {
				if group {
					return writeJSON(cmd, section.Root)
				}
				return writeJSON(cmd, section.List)
			}
			return writeSections(cmd, app, []segments.Section{section}, segments.OptionsFrom(vm))
		},
	}

	cmd.Flags().BoolVar(&group, "group", false, "Group resources under their parent")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}
