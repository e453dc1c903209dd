package main

import (
	"github.com/spf13/cobra"

	"tidy/internal/apperr"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var opts organizeOptions

	ctx := newCommandContext(&configFlag)

	rootCmd := &cobra.Command{
		Use:   "tidy [directory]",
		Short: "Sort the files of a directory into category folders",
		Long: "tidy moves every regular file at the top level of a directory into a\n" +
			"subdirectory named after its category (Images, Documents, ...).\n" +
			"Existing files are never overwritten; name collisions get a \" (n)\" suffix.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			if _, err := ctx.ensureConfig(); err != nil {
				return apperr.Wrap(apperr.ErrConfiguration, "cli", "load config", "", err)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOrganize(cmd, ctx, opts, args)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")

	flags := rootCmd.Flags()
	flags.BoolVarP(&opts.dryRun, "dry-run", "n", false, "Show what would be moved without changing anything")
	flags.BoolVarP(&opts.yes, "yes", "y", false, "Do not ask for confirmation")
	flags.BoolVar(&opts.report, "report", false, "Write a report file into the directory after a real run")
	flags.BoolVar(&opts.json, "json", false, "Print the run result as JSON")

	rootCmd.AddCommand(newCategoriesCommand(ctx))
	rootCmd.AddCommand(newHistoryCommand(ctx))
	rootCmd.AddCommand(newUndoCommand(ctx))
	rootCmd.AddCommand(newLogsCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}
