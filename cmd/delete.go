package cmd

import (
	"github.com/mouse-blink/jsoned/internal/domain"
	m "github.com/mouse-blink/jsoned/internal/model"
	"github.com/spf13/cobra"
)

// deleteCmd represents the delete command.
var deleteCmd = newDeleteCmd()

func newDeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "delete FILE PATH",
		Aliases: []string{"rm"},
		Short:   "Remove the value at a path",
		Long:    "Remove the value at PATH and save the file. Later array elements shift down by one.",
		Args:    cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.Delete(domain.DeleteArgs{File: m.FilePath(args[0]), Path: args[1]})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
