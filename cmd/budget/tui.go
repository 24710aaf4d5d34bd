package main

import (
	"github.com/Veraticus/monthly-budget/internal/tui"
	"github.com/Veraticus/monthly-budget/internal/tui/themes"
	"github.com/spf13/cobra"
)

func tuiCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:         "tui",
		Short:       "Open the interactive budget editor",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationLogToFile: "true"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd, opts)
		},
	}
}

func runTUI(cmd *cobra.Command, opts *rootOptions) error {
	ctx := cmd.Context()

	urls := make(chan string, 1)
	ao := appOptions{budget: true}
	google := opts.cfg.Auth.Google.Enabled()
	if google {
		ao.onConsentURL = func(url string) {
			select {
			case urls <- url:
			default:
			}
			openBrowser(url)
		}
	}

	return withApp(ctx, opts, ao, func(a *app) error {
		tuiOpts := []tui.Option{
			tui.WithStore(a.store),
			tui.WithSession(a.gate),
			tui.WithKeyValue(a.storage),
			tui.WithLanguage(a.lang),
			tui.WithTheme(themes.GetTheme(opts.cfg.Theme)),
		}
		if google {
			tuiOpts = append(tuiOpts, tui.WithGoogle(urls))
		}
		return tui.Run(ctx, tuiOpts...)
	})
}
