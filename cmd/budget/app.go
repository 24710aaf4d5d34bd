package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/Veraticus/monthly-budget/internal/auth"
	"github.com/Veraticus/monthly-budget/internal/budget"
	"github.com/Veraticus/monthly-budget/internal/common"
	"github.com/Veraticus/monthly-budget/internal/i18n"
	"github.com/Veraticus/monthly-budget/internal/persist"
	"github.com/Veraticus/monthly-budget/internal/storage"
)

// app is the set of collaborators one command works with.
type app struct {
	storage  *storage.SQLiteStorage
	writer   *persist.Writer
	store    *budget.Store
	provider *auth.LocalProvider
	gate     *auth.Gate
	lang     i18n.Language
}

type appOptions struct {
	// onConsentURL receives the Google consent URL. Nil disables Google
	// sign-in even when it is configured.
	onConsentURL func(string)
	// budget loads the budget state and starts the persistence writer.
	budget bool
}

// openApp opens storage, runs migrations and wires the gate and, when
// requested, the budget store.
func openApp(ctx context.Context, opts *rootOptions, ao appOptions) (*app, error) {
	store, err := storage.NewSQLiteStorage(opts.cfg.DatabasePath)
	if err != nil {
		return nil, err
	}
	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	a := &app{storage: store}
	a.lang = resolveLanguage(ctx, store, opts)

	secret, err := auth.SessionSecret(ctx, store, opts.cfg.Auth.SessionSecret)
	if err != nil {
		a.Close()
		return nil, err
	}

	providerOpts := []auth.Option{auth.WithSessionTTL(opts.cfg.Auth.SessionTTL)}
	if google := opts.cfg.Auth.Google; google.Enabled() && ao.onConsentURL != nil {
		federator := auth.NewGoogleFederator(auth.GoogleConfig{
			ClientID:     google.ClientID,
			ClientSecret: google.ClientSecret,
			RedirectURL:  google.RedirectURL,
		}, auth.WithURLHandler(ao.onConsentURL))
		providerOpts = append(providerOpts, auth.WithFederator(federator))
	}

	a.provider, err = auth.NewLocalProvider(ctx, store, store, secret, providerOpts...)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.gate = auth.NewGate(ctx, a.provider, store)

	if ao.budget {
		a.store = budget.NewStore(budget.LoadState(ctx, store, a.lang))
		a.writer = persist.NewWriter(ctx, store)
		a.store.Subscribe(budget.PersistListener(a.writer))
	}

	return a, nil
}

// resolveLanguage picks the --lang flag, then the stored preference, then
// the configured language.
func resolveLanguage(ctx context.Context, kv persist.Getter, opts *rootOptions) i18n.Language {
	if opts.lang != "" {
		return i18n.Parse(opts.lang)
	}
	if raw, ok, err := kv.Get(ctx, i18n.StorageKey); err == nil && ok && i18n.Valid(raw) {
		return i18n.Language(raw)
	}
	if opts.cfg.Language != "" {
		return i18n.Parse(opts.cfg.Language)
	}
	return i18n.DefaultLanguage
}

// requireAccess fails unless the user has signed in or chosen guest mode.
func (a *app) requireAccess() error {
	if err := a.gate.Require(); err != nil {
		return common.NewUserError("Sign in with 'budget auth login' or run 'budget auth guest' first", err)
	}
	return nil
}

// Close flushes pending budget writes and closes storage.
func (a *app) Close() {
	var errs []error
	if a.writer != nil {
		errs = append(errs, a.writer.Close())
	}
	if a.gate != nil {
		a.gate.Close()
	}
	errs = append(errs, a.storage.Close())
	if err := errors.Join(errs...); err != nil {
		common.LogError(err, "Failed to close storage", nil)
	}
}

// withApp runs fn against an opened app and closes it afterwards.
func withApp(ctx context.Context, opts *rootOptions, ao appOptions, fn func(*app) error) error {
	a, err := openApp(ctx, opts, ao)
	if err != nil {
		return err
	}
	defer a.Close()
	return fn(a)
}

func (a *app) translations() i18n.Translations {
	return i18n.For(a.lang)
}
