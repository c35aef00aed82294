// Package cmd provides the root command and CLI setup for jsoned.
package cmd

import (
	"fmt"
	"os"

	"github.com/mouse-blink/jsoned/internal/adapter"
	"github.com/mouse-blink/jsoned/internal/config"
	"github.com/mouse-blink/jsoned/internal/controller"
	"github.com/mouse-blink/jsoned/internal/domain"
	"github.com/mouse-blink/jsoned/internal/log"
	m "github.com/mouse-blink/jsoned/internal/model"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// workflow is built from the loaded configuration before a command runs,
// unless it was already set.
var workflow domain.Workflow
var settings = config.Default()
var logger = zap.NewNop()

const rootLongDescription = `jsoned is a JSON document editor for the terminal.

Values are addressed with dotted paths where array elements use brackets:
  user.name              key "name" of object "user"
  user.addresses[0].city first element of array "addresses"

Run without a subcommand to browse and edit a file interactively. Missing
files are created on the first save.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "jsoned [file]",
		Short:         "Browse and edit JSON documents",
		Long:          rootLongDescription,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return setup(cmd)
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			_ = logger.Sync()
		},
		RunE: func(_ *cobra.Command, args []string) error {
			var file m.FilePath
			if len(args) == 1 {
				file = m.FilePath(args[0])
			}

			return workflow.Edit(domain.EditArgs{
				File:          file,
				ApplyTemplate: settings.ApplyTemplate,
			})
		},
	}

	flags := cmd.PersistentFlags()
	flags.String("config", "", "config file (default is ./.jsoned.yaml or $HOME/.jsoned.yaml)")
	flags.Int("indent", config.DefaultIndent, "spaces per indentation level when saving, 0 for compact output")
	flags.Bool("debug", false, "enable debug logging")
	flags.String("log-file", "", "write logs to this file")
	flags.StringArray("template-field", nil, "field added to new objects when templates apply (can be repeated)")
	flags.Bool("template", false, "pre-fill new objects with the template fields")

	return cmd
}

// setup loads the configuration and logger for cmd and builds the workflow.
func setup(cmd *cobra.Command) error {
	loaded, err := config.Load(viper.New(), cmd.Flags())
	if err != nil {
		return err
	}

	settings = loaded

	// The interactive editor owns the terminal, so it only logs to a file.
	lg, err := log.New(log.Options{
		File:  settings.LogFile,
		Debug: settings.Debug,
		Quiet: !cmd.HasParent(),
	})
	if err != nil {
		return err
	}

	logger = lg
	logger.Debug("configuration loaded",
		zap.String("config", settings.ConfigPath),
		zap.Int("indent", settings.Indent),
		zap.Strings("templateFields", settings.TemplateFields),
	)

	if workflow == nil {
		workflow = newWorkflow(cmd)
	}

	return nil
}

func newWorkflow(cmd *cobra.Command) domain.Workflow {
	ui := controller.NewUI(cmd, controller.IsTTY(cmd.OutOrStdout()))

	return domain.NewWorkflow(
		adapter.NewLocalDocumentStore(settings.Indent),
		ui,
		logger,
		domain.WithTemplateFields(settings.TemplateFields...),
		domain.WithPreviewIndent(settings.Indent),
	)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func parseInputType(name string) (m.InputType, error) {
	typ, err := m.ParseInputType(name)
	if err != nil {
		return "", fmt.Errorf("invalid --type: %w", err)
	}

	return typ, nil
}
