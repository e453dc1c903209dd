package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tidy/internal/organizer"
)

func newCategoriesCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Show the active category table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			rules, err := organizer.NewRules(cfg.Categories, cfg.Organize.FallbackCategory)
			if err != nil {
				return err
			}

			if asJSON {
				table := make(map[string][]string, len(cfg.Categories))
				for _, label := range rules.Categories() {
					table[label] = rules.Extensions(label)
				}
				return writeJSON(cmd, map[string]any{
					"categories": table,
					"fallback":   rules.Fallback(),
				})
			}

			rows := make([][]string, 0, len(cfg.Categories)+1)
			for _, label := range rules.Categories() {
				exts := rules.Extensions(label)
				listed := strings.Join(exts, " ")
				if label == rules.Fallback() && len(exts) == 0 {
					listed = "(anything unmatched)"
				}
				rows = append(rows, []string{label, listed})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(tableSpec{
				headers: []string{"Category", "Extensions"},
				rows:    rows,
			}))
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the table as JSON")
	return cmd
}
