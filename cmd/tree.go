package cmd

import (
	"github.com/mouse-blink/jsoned/internal/domain"
	m "github.com/mouse-blink/jsoned/internal/model"
	"github.com/spf13/cobra"
)

// treeCmd represents the tree command.
var treeCmd = newTreeCmd()

func newTreeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tree FILE",
		Short: "Print every path of a document with its type and value",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.Tree(domain.TreeArgs{File: m.FilePath(args[0])})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(treeCmd)
}
