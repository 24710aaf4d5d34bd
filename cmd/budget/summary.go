package main

import (
	"encoding/json"
	"os"

	"github.com/Veraticus/monthly-budget/internal/cli"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func summaryCmd(opts *rootOptions) *cobra.Command {
	var (
		asJSON  bool
		noColor bool
		width   int
	)

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show totals, expense percentage and advice",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withBudget(cmd, opts, func(a *app) error {
				summary := a.store.Summary()
				out := cmd.OutOrStdout()

				if asJSON {
					enc := json.NewEncoder(out)
					enc.SetIndent("", "  ")
					return enc.Encode(summary)
				}

				return cli.WriteSummary(out, summary, cli.ReportOptions{
					Language: a.lang,
					Color:    !noColor && isTerminal(out),
					BarWidth: width,
				})
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the summary as JSON")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable colors in the expense bar")
	cmd.Flags().IntVar(&width, "width", 40, "width of the expense bar")

	return cmd
}

func isTerminal(w any) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
