package main

import (
	"fmt"
	"log/slog"
	"os/exec"
	"runtime"

	"github.com/Veraticus/monthly-budget/internal/auth"
	"github.com/Veraticus/monthly-budget/internal/cli"
	"github.com/Veraticus/monthly-budget/internal/common"
	"github.com/spf13/cobra"
)

func authCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Sign in, sign up or use guest mode",
		Long: `Manage how you access your budget: a local account with email and
password, Google sign-in, or guest mode where nothing leaves this device.`,
	}

	cmd.AddCommand(authCredentialsCmd(opts, true))
	cmd.AddCommand(authCredentialsCmd(opts, false))
	cmd.AddCommand(authGoogleCmd(opts))
	cmd.AddCommand(authGuestCmd(opts))
	cmd.AddCommand(authLogoutCmd(opts))
	cmd.AddCommand(authStatusCmd(opts))

	return cmd
}

// authFailure wraps an identity error with its localized message.
func authFailure(a *app, err error) error {
	return common.NewUserError(cli.ErrorIcon+" "+auth.Message(a.lang, err), err)
}

func authCredentialsCmd(opts *rootOptions, signUp bool) *cobra.Command {
	var email string

	use, short := "login", "Sign in with email and password"
	if signUp {
		use, short = "signup", "Create an account with email and password"
	}

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			handler := cli.NewInterruptHandler(cmd.ErrOrStderr(), "\n"+cli.FormatWarning("Cancelled"))
			ctx, stop := handler.HandleInterrupts(cmd.Context())
			defer stop()

			return withApp(ctx, opts, appOptions{}, func(a *app) error {
				prompter := cli.NewCredentialPrompter(cmd.InOrStdin(), cmd.ErrOrStderr())
				t := a.translations()

				if email == "" {
					var err error
					if email, err = prompter.Ask(ctx, t.Email+": "); err != nil {
						return err
					}
				}
				password, err := prompter.AskSecret(ctx, t.Password+": ")
				if err != nil {
					return err
				}

				var identity *auth.Identity
				if signUp {
					identity, err = a.gate.SignUp(ctx, email, password)
				} else {
					identity, err = a.gate.SignIn(ctx, email, password)
				}
				if err != nil {
					return authFailure(a, err)
				}

				fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(t.Welcome+", "+identity.Email))
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&email, "email", "e", "", "account email (prompted when omitted)")

	return cmd
}

func authGoogleCmd(opts *rootOptions) *cobra.Command {
	var noBrowser bool

	cmd := &cobra.Command{
		Use:   "google",
		Short: "Sign in with Google",
		Long: `Sign in with Google. A consent page opens in your browser and the
result is received on a local callback address.

Requires auth.google.client_id and auth.google.client_secret in the config
file, or GOOGLE_CLIENT_ID and GOOGLE_CLIENT_SECRET in the environment.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !opts.cfg.Auth.Google.Enabled() {
				return common.NewUserError("Google sign-in is not configured", common.ErrMissingConfig)
			}

			handler := cli.NewInterruptHandler(cmd.ErrOrStderr(), "\n"+cli.FormatWarning("Cancelled"))
			ctx, stop := handler.HandleInterrupts(cmd.Context())
			defer stop()

			onURL := func(url string) {
				fmt.Fprintln(cmd.ErrOrStderr(), cli.FormatInfo("Open this address to continue:"))
				fmt.Fprintln(cmd.ErrOrStderr(), url)
				if !noBrowser {
					openBrowser(url)
				}
			}

			return withApp(ctx, opts, appOptions{onConsentURL: onURL}, func(a *app) error {
				identity, err := a.gate.SignInFederated(ctx)
				if err != nil {
					return authFailure(a, err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(a.translations().Welcome+", "+identity.Email))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&noBrowser, "no-browser", false, "print the consent address without opening a browser")

	return cmd
}

func authGuestCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "guest",
		Short: "Continue without an account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd.Context(), opts, appOptions{}, func(a *app) error {
				a.gate.ContinueAsGuest(cmd.Context())
				t := a.translations()
				fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(t.GuestMode))
				fmt.Fprintln(cmd.OutOrStdout(), cli.SubtleStyle.Render(t.DataSavedLocally))
				return nil
			})
		},
	}
}

func authLogoutCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out, or leave guest mode",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd.Context(), opts, appOptions{}, func(a *app) error {
				t := a.translations()
				message := t.Logout
				if a.gate.Mode() == auth.ModeGuest {
					message = t.ExitGuestMode
				}
				if err := a.gate.Logout(cmd.Context()); err != nil {
					return authFailure(a, err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(message))
				return nil
			})
		},
	}
}

func authStatusCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show how you are signed in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd.Context(), opts, appOptions{}, func(a *app) error {
				out := cmd.OutOrStdout()
				switch a.gate.Mode() {
				case auth.ModeAuthenticated:
					identity := a.gate.Identity()
					fmt.Fprintf(out, "%s (%s, %s)\n", auth.ModeAuthenticated, identity.Email, identity.Provider)
				case auth.ModeGuest:
					fmt.Fprintln(out, auth.ModeGuest)
				default:
					fmt.Fprintln(out, auth.ModeUnauthenticated)
				}
				return nil
			})
		},
	}
}

func openBrowser(url string) {
	var err error
	switch runtime.GOOS {
	case "linux":
		err = exec.Command("xdg-open", url).Start() //nolint:gosec
	case "windows":
		err = exec.Command("rundll32", "url.dll,FileProtocolHandler", url).Start() //nolint:gosec
	case "darwin":
		err = exec.Command("open", url).Start() //nolint:gosec
	}
	if err != nil {
		slog.Debug("Failed to open browser", "error", err)
	}
}

