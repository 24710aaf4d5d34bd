package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	goauth2 "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"
)

// DefaultRedirectURL receives the authorization code on this machine.
const DefaultRedirectURL = "http://localhost:8085/callback"

// DefaultSignInTimeout bounds how long the browser flow may take.
const DefaultSignInTimeout = 5 * time.Minute

// GoogleConfig holds the OAuth2 client registration.
type GoogleConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
}

// GoogleFederator signs users in through Google with the authorization
// code flow and a short-lived callback server on the redirect address.
type GoogleFederator struct {
	openURL     func(string)
	oauth       *oauth2.Config
	serviceOpts []option.ClientOption
	timeout     time.Duration
}

// GoogleOption configures a GoogleFederator.
type GoogleOption func(*GoogleFederator)

// WithURLHandler sets how the authorization URL is shown to the user.
func WithURLHandler(fn func(string)) GoogleOption {
	return func(g *GoogleFederator) {
		g.openURL = fn
	}
}

// WithSignInTimeout bounds the browser flow.
func WithSignInTimeout(d time.Duration) GoogleOption {
	return func(g *GoogleFederator) {
		g.timeout = d
	}
}

// WithOAuthEndpoint replaces Google's authorization and token endpoints.
func WithOAuthEndpoint(endpoint oauth2.Endpoint) GoogleOption {
	return func(g *GoogleFederator) {
		g.oauth.Endpoint = endpoint
	}
}

// WithUserinfoOptions adds client options for the userinfo API.
func WithUserinfoOptions(opts ...option.ClientOption) GoogleOption {
	return func(g *GoogleFederator) {
		g.serviceOpts = append(g.serviceOpts, opts...)
	}
}

// NewGoogleFederator returns a federator for cfg.
func NewGoogleFederator(cfg GoogleConfig, opts ...GoogleOption) *GoogleFederator {
	redirect := cfg.RedirectURL
	if redirect == "" {
		redirect = DefaultRedirectURL
	}

	g := &GoogleFederator{
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			Endpoint:     google.Endpoint,
			RedirectURL:  redirect,
			Scopes:       []string{goauth2.UserinfoEmailScope, goauth2.OpenIDScope},
		},
		timeout: DefaultSignInTimeout,
		openURL: func(authURL string) {
			slog.Info("Please visit this URL to sign in", "url", authURL)
		},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

type callbackResult struct {
	err  error
	code string
}

// Authenticate runs the flow. Denial in the browser, cancellation of ctx
// and timeout all yield ErrSignInCancelled.
func (g *GoogleFederator) Authenticate(ctx context.Context) (FederatedProfile, error) {
	if g.oauth.ClientID == "" {
		return FederatedProfile{}, fmt.Errorf("%w: google client id is not configured", ErrAuthFailed)
	}

	redirect, err := url.Parse(g.oauth.RedirectURL)
	if err != nil {
		return FederatedProfile{}, fmt.Errorf("%w: redirect url: %w", ErrAuthFailed, err)
	}
	if redirect.Path == "" {
		redirect.Path = "/"
	}

	listener, err := net.Listen("tcp", redirect.Host)
	if err != nil {
		return FederatedProfile{}, fmt.Errorf("%w: failed to start callback server: %w", ErrAuthFailed, err)
	}
	// Port 0 picks a free port; the redirect has to name the real one.
	redirect.Host = listener.Addr().String()
	conf := *g.oauth
	conf.RedirectURL = redirect.String()

	state, err := randomState()
	if err != nil {
		_ = listener.Close()
		return FederatedProfile{}, fmt.Errorf("%w: %w", ErrAuthFailed, err)
	}

	results := make(chan callbackResult, 1)
	mux := http.NewServeMux()
	mux.HandleFunc(redirect.Path, func(w http.ResponseWriter, r *http.Request) {
		result := parseCallback(r, state)
		select {
		case results <- result:
		default:
		}
		if result.err != nil {
			_, _ = fmt.Fprint(w, callbackFailedPage)
			return
		}
		_, _ = fmt.Fprint(w, callbackSucceededPage)
	})

	server := &http.Server{Handler: mux, ReadHeaderTimeout: 10 * time.Second}
	go func() {
		if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			select {
			case results <- callbackResult{err: fmt.Errorf("%w: callback server: %w", ErrAuthFailed, err)}:
			default:
			}
		}
	}()
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Warn("Error shutting down callback server", "error", err)
		}
	}()

	g.openURL(conf.AuthCodeURL(state, oauth2.AccessTypeOnline))
	slog.Debug("Waiting for sign-in callback", "redirect", conf.RedirectURL)

	timer := time.NewTimer(g.timeout)
	defer timer.Stop()

	var result callbackResult
	select {
	case result = <-results:
	case <-ctx.Done():
		return FederatedProfile{}, fmt.Errorf("%w: %w", ErrSignInCancelled, ctx.Err())
	case <-timer.C:
		return FederatedProfile{}, fmt.Errorf("%w: no response within %s", ErrSignInCancelled, g.timeout)
	}
	if result.err != nil {
		return FederatedProfile{}, result.err
	}

	token, err := conf.Exchange(ctx, result.code)
	if err != nil {
		return FederatedProfile{}, fmt.Errorf("%w: failed to exchange authorization code: %w", ErrAuthFailed, err)
	}

	return g.profile(ctx, conf.TokenSource(ctx, token))
}

func (g *GoogleFederator) profile(ctx context.Context, ts oauth2.TokenSource) (FederatedProfile, error) {
	opts := append([]option.ClientOption{option.WithTokenSource(ts)}, g.serviceOpts...)
	service, err := goauth2.NewService(ctx, opts...)
	if err != nil {
		return FederatedProfile{}, fmt.Errorf("%w: failed to create userinfo client: %w", ErrAuthFailed, err)
	}

	info, err := service.Userinfo.Get().Context(ctx).Do()
	if err != nil {
		return FederatedProfile{}, fmt.Errorf("%w: failed to fetch profile: %w", ErrAuthFailed, err)
	}
	if info.VerifiedEmail != nil && !*info.VerifiedEmail {
		return FederatedProfile{}, fmt.Errorf("%w: google email %s is not verified", ErrAuthFailed, info.Email)
	}

	return FederatedProfile{Subject: info.Id, Email: info.Email}, nil
}

func parseCallback(r *http.Request, state string) callbackResult {
	query := r.URL.Query()
	if reason := query.Get("error"); reason != "" {
		if reason == "access_denied" {
			return callbackResult{err: ErrSignInCancelled}
		}
		return callbackResult{err: fmt.Errorf("%w: %s", ErrAuthFailed, reason)}
	}
	if query.Get("state") != state {
		return callbackResult{err: fmt.Errorf("%w: state mismatch", ErrAuthFailed)}
	}
	code := query.Get("code")
	if code == "" {
		return callbackResult{err: fmt.Errorf("%w: no authorization code received", ErrAuthFailed)}
	}
	return callbackResult{code: code}
}

func randomState() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate state: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

const callbackSucceededPage = `<html><body>
	<h1>Signed in</h1>
	<p>You can close this window and return to the terminal.</p>
	<script>window.setTimeout(function(){window.close();}, 3000);</script>
</body></html>`

const callbackFailedPage = `<html><body>
	<h1>Sign-in failed</h1>
	<p>Return to the terminal and try again.</p>
	<script>window.setTimeout(function(){window.close();}, 3000);</script>
</body></html>`
