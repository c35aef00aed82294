package cmd

import (
	"github.com/mouse-blink/jsoned/internal/domain"
	m "github.com/mouse-blink/jsoned/internal/model"
	"github.com/spf13/cobra"
)

var newForceFlag bool

// newCmd represents the new command.
var newCmd = newNewCmd()

func newNewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "new FILE",
		Short: "Write an empty JSON object to a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.New(domain.NewArgs{File: m.FilePath(args[0]), Force: newForceFlag})
		},
	}
	cmd.Flags().BoolVarP(&newForceFlag, "force", "f", false, "overwrite an existing file")

	return cmd
}

func init() {
	rootCmd.AddCommand(newCmd)
}
