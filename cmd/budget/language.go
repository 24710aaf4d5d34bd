package main

import (
	"fmt"

	"github.com/Veraticus/monthly-budget/internal/cli"
	"github.com/Veraticus/monthly-budget/internal/common"
	"github.com/Veraticus/monthly-budget/internal/i18n"
	"github.com/spf13/cobra"
)

func languageCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:       "language [en|it]",
		Short:     "Show, set or toggle the display language",
		Long:      "Without an argument the language switches to the next one. The choice is remembered on this device.",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{string(i18n.English), string(i18n.Italian)},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return withApp(ctx, opts, appOptions{}, func(a *app) error {
				next := a.lang.Next()
				if len(args) == 1 {
					if !i18n.Valid(args[0]) {
						return common.NewUserError(fmt.Sprintf("Unsupported language %q", args[0]), common.ErrInvalidConfig)
					}
					next = i18n.Language(args[0])
				}
				i18n.Save(ctx, a.storage, next)
				fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess("Language: "+string(next)))
				return nil
			})
		},
	}
}
