package main

import (
	"fmt"
	"strconv"

	"github.com/Veraticus/monthly-budget/internal/budget"
	"github.com/Veraticus/monthly-budget/internal/cli"
	"github.com/Veraticus/monthly-budget/internal/common"
	"github.com/Veraticus/monthly-budget/internal/model"
	"github.com/spf13/cobra"
)

type itemsGroup struct {
	kind  model.CollectionKind
	use   string
	short string
	noun  string
}

var (
	itemsExpenses = itemsGroup{
		kind:  model.KindExpenses,
		use:   "expenses",
		short: "Manage fixed monthly expenses",
		noun:  "expense",
	}
	itemsIncomes = itemsGroup{
		kind:  model.KindIncomes,
		use:   "incomes",
		short: "Manage additional income lines",
		noun:  "income",
	}
)

func itemsCmd(opts *rootOptions, group itemsGroup) *cobra.Command {
	cmd := &cobra.Command{
		Use:     group.use,
		Aliases: []string{group.noun},
		Short:   group.short,
	}

	cmd.AddCommand(itemsListCmd(opts, group))
	cmd.AddCommand(itemsAddCmd(opts, group))
	cmd.AddCommand(itemsSetCmd(opts, group))
	cmd.AddCommand(itemsRemoveCmd(opts, group))

	return cmd
}

// withBudget opens the app with the budget loaded and access checked.
func withBudget(cmd *cobra.Command, opts *rootOptions, fn func(*app) error) error {
	return withApp(cmd.Context(), opts, appOptions{budget: true}, func(a *app) error {
		if err := a.requireAccess(); err != nil {
			return err
		}
		return fn(a)
	})
}

func itemsListCmd(opts *rootOptions, group itemsGroup) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   fmt.Sprintf("List %s lines", group.noun),
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withBudget(cmd, opts, func(a *app) error {
				return cli.WriteItems(cmd.OutOrStdout(), group.kind, a.store.State().Items(group.kind), a.lang)
			})
		},
	}
}

func itemsAddCmd(opts *rootOptions, group itemsGroup) *cobra.Command {
	var category, amount string

	cmd := &cobra.Command{
		Use:   "add",
		Short: fmt.Sprintf("Add an %s line", group.noun),
		Long: fmt.Sprintf(`Add an %s line. The new line gets the next free id; category and
amount may be left blank and filled in later with 'set'.`, group.noun),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withBudget(cmd, opts, func(a *app) error {
				change := a.store.Dispatch(budget.AddItem{Kind: group.kind})
				items := change.Next.Items(group.kind)
				id := items[len(items)-1].ID

				if category != "" {
					a.store.Dispatch(budget.UpdateItem{Kind: group.kind, ID: id, Field: model.FieldCategory, Value: category})
				}
				if amount != "" {
					a.store.Dispatch(budget.UpdateItem{Kind: group.kind, ID: id, Field: model.FieldAmount, Value: amount})
				}

				fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(fmt.Sprintf("Added %s #%d", group.noun, id)))
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "category label")
	cmd.Flags().StringVarP(&amount, "amount", "a", "", "monthly amount")

	return cmd
}

func itemsSetCmd(opts *rootOptions, group itemsGroup) *cobra.Command {
	var category, amount string

	cmd := &cobra.Command{
		Use:   "set <id>",
		Short: fmt.Sprintf("Edit an %s line", group.noun),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			categorySet := cmd.Flags().Changed("category")
			amountSet := cmd.Flags().Changed("amount")
			if !categorySet && !amountSet {
				return common.NewUserError("Nothing to change: pass --category and/or --amount", nil)
			}

			return withBudget(cmd, opts, func(a *app) error {
				_, found := budget.Find(a.store.State().Items(group.kind), id)
				if categorySet {
					a.store.Dispatch(budget.UpdateItem{Kind: group.kind, ID: id, Field: model.FieldCategory, Value: category})
				}
				if amountSet {
					a.store.Dispatch(budget.UpdateItem{Kind: group.kind, ID: id, Field: model.FieldAmount, Value: amount})
				}
				if !found {
					fmt.Fprintln(cmd.OutOrStdout(), cli.FormatInfo(fmt.Sprintf("No %s with id %d, nothing changed", group.noun, id)))
					return nil
				}
				fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(fmt.Sprintf("Updated %s #%d", group.noun, id)))
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "new category label")
	cmd.Flags().StringVarP(&amount, "amount", "a", "", "new monthly amount")

	return cmd
}

func itemsRemoveCmd(opts *rootOptions, group itemsGroup) *cobra.Command {
	return &cobra.Command{
		Use:     "remove <id>",
		Aliases: []string{"rm"},
		Short:   fmt.Sprintf("Remove an %s line", group.noun),
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			return withBudget(cmd, opts, func(a *app) error {
				_, found := budget.Find(a.store.State().Items(group.kind), id)
				a.store.Dispatch(budget.RemoveItem{Kind: group.kind, ID: id})
				if !found {
					fmt.Fprintln(cmd.OutOrStdout(), cli.FormatInfo(fmt.Sprintf("No %s with id %d, nothing changed", group.noun, id)))
					return nil
				}
				fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(fmt.Sprintf("Removed %s #%d", group.noun, id)))
				return nil
			})
		},
	}
}

func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, common.NewUserError(fmt.Sprintf("Invalid id %q: expected a positive number", arg), err)
	}
	return id, nil
}
