package cmd

import (
	"github.com/mouse-blink/jsoned/internal/domain"
	m "github.com/mouse-blink/jsoned/internal/model"
	"github.com/spf13/cobra"
)

var setTypeFlag string

// setCmd represents the set command.
var setCmd = newSetCmd()

func newSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set FILE PATH [VALUE]",
		Short: "Write a value at a path, creating missing parents",
		Long: `Write VALUE at PATH and save the file.

Missing parents are created: an array when the next segment is an index,
an object otherwise. Scalars in the way are replaced.

VALUE is read as --type: numbers keep their leading numeric part (0 when
there is none), booleans are true only for "true", and null, object and
array ignore VALUE.`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(_ *cobra.Command, args []string) error {
			typ, err := parseInputType(setTypeFlag)
			if err != nil {
				return err
			}

			var text string
			if len(args) == 3 {
				text = args[2]
			}

			return workflow.Set(domain.SetArgs{
				File: m.FilePath(args[0]),
				Path: args[1],
				Type: typ,
				Text: text,
			})
		},
	}
	cmd.Flags().StringVarP(&setTypeFlag, "type", "t", string(m.InputString), "value type: string, number, boolean, null, object or array")

	return cmd
}

func init() {
	rootCmd.AddCommand(setCmd)
}
