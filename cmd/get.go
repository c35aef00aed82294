package cmd

import (
	"github.com/mouse-blink/jsoned/internal/domain"
	m "github.com/mouse-blink/jsoned/internal/model"
	"github.com/spf13/cobra"
)

// getCmd represents the get command.
var getCmd = newGetCmd()

func newGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get FILE PATH",
		Short: "Print the value at a path",
		Long: `Print the value at PATH as indented JSON.

A path that does not exist prints "undefined"; a stored null prints "null".`,
		Args: cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.Get(domain.GetArgs{File: m.FilePath(args[0]), Path: args[1]})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(getCmd)
}
