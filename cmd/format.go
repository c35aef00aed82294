package cmd

import (
	"github.com/mouse-blink/jsoned/internal/domain"
	m "github.com/mouse-blink/jsoned/internal/model"
	"github.com/spf13/cobra"
)

var fmtParallelFlag int

// fmtCmd represents the fmt command.
var fmtCmd = newFmtCmd()

func newFmtCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fmt FILES...",
		Short: "Rewrite files with consistent indentation",
		Long: `Decode and re-encode each file with --indent spaces per level, keeping
object key order. Files are processed in parallel; the first invalid file
stops the run.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			files := make([]m.FilePath, 0, len(args))
			for _, arg := range args {
				files = append(files, m.FilePath(arg))
			}

			return workflow.Format(domain.FormatArgs{Files: files, Threads: fmtParallelFlag})
		},
	}
	cmd.Flags().IntVarP(&fmtParallelFlag, "parallel", "p", 1, "number of files formatted at the same time")

	return cmd
}

func init() {
	rootCmd.AddCommand(fmtCmd)
}
