package main

import (
	"fmt"

	"github.com/Veraticus/monthly-budget/internal/budget"
	"github.com/Veraticus/monthly-budget/internal/cli"
	"github.com/Veraticus/monthly-budget/internal/finance"
	"github.com/spf13/cobra"
)

func salaryCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "salary",
		Short: "Show or set the monthly net salary",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd.Context(), opts, appOptions{budget: true}, func(a *app) error {
				if err := a.requireAccess(); err != nil {
					return err
				}
				state := a.store.State()
				fmt.Fprintf(cmd.OutOrStdout(), "%s %q (%s)\n",
					cli.MoneyIcon, state.NetSalary, finance.FormatCurrency(finance.ParseAmount(state.NetSalary)))
				return nil
			})
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "set <amount>",
		Short: "Set the monthly net salary",
		Long: `Set the monthly net salary. The text is stored as typed; it is read as a
number when totals are computed and counts as zero when it is not one.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), opts, appOptions{budget: true}, func(a *app) error {
				if err := a.requireAccess(); err != nil {
					return err
				}
				a.store.Dispatch(budget.SetSalary{Value: args[0]})
				fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess("Net salary set to "+finance.FormatCurrency(finance.ParseAmount(args[0]))))
				return nil
			})
		},
	})

	return cmd
}
