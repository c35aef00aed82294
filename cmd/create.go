package cmd

import (
	"github.com/mouse-blink/jsoned/internal/domain"
	m "github.com/mouse-blink/jsoned/internal/model"
	"github.com/spf13/cobra"
)

var createTypeFlag string
var createParentFlag string

// createCmd represents the create command.
var createCmd = newCreateCmd()

func newCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create FILE KEY [VALUE]",
		Short: "Add a key under a parent path",
		Long: `Add KEY under --parent and save the file.

An object, or a string with an empty VALUE, creates an object. With
--template it is pre-filled with every --template-field set to "".`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(_ *cobra.Command, args []string) error {
			typ, err := parseInputType(createTypeFlag)
			if err != nil {
				return err
			}

			var text string
			if len(args) == 3 {
				text = args[2]
			}

			return workflow.Create(domain.CreateArgs{
				File: m.FilePath(args[0]),
				CreateArgs: m.CreateArgs{
					Parent:        createParentFlag,
					Key:           args[1],
					Type:          typ,
					Text:          text,
					ApplyTemplate: settings.ApplyTemplate,
				},
			})
		},
	}
	cmd.Flags().StringVarP(&createTypeFlag, "type", "t", string(m.InputString), "value type: string, number, boolean, null, object or array")
	cmd.Flags().StringVarP(&createParentFlag, "parent", "P", "", "path of the parent container, empty for the root")

	return cmd
}

func init() {
	rootCmd.AddCommand(createCmd)
}
