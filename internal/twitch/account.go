// Package twitch holds the Twitch account session and the Helix stream
// status checker.
package twitch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

// ErrAccountIncomplete is returned when an account lacks required credentials.
var ErrAccountIncomplete = errors.New("twitch account is incomplete")

// Account is the persisted Twitch session.
type Account struct {
	Username        string `json:"username"`
	UserID          string `json:"user_id"`
	ClientID        Secret `json:"client_id"`
	ClientSecret    Secret `json:"client_secret"`
	UserAccessToken Secret `json:"user_access_token"`
	RefreshToken    Secret `json:"refresh_token"`
	RedirectURLPort uint16 `json:"redirect_url_port"`
}

// Fields are the values collected by the account setup prompts.
type Fields struct {
	Username     string
	UserID       string
	ClientID     string
	ClientSecret string
	Port         uint16
}

// Validate checks that the credentials needed for API calls are present.
func (a *Account) Validate() error {
	var missing []string
	if strings.TrimSpace(a.Username) == "" {
		missing = append(missing, "username")
	}
	if a.ClientID.Empty() {
		missing = append(missing, "client_id")
	}
	if a.ClientSecret.Empty() {
		missing = append(missing, "client_secret")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrAccountIncomplete, strings.Join(missing, ", "))
	}
	return nil
}

// LoadAccount reads and validates the account file.
func LoadAccount(path string) (*Account, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read account: %w", err)
	}

	var account Account
	if err := json.Unmarshal(data, &account); err != nil {
		return nil, fmt.Errorf("decode account: %w", err)
	}
	if err := account.Validate(); err != nil {
		return nil, err
	}
	return &account, nil
}

// Save writes the account file with owner-only permissions.
func (a *Account) Save(path string) error {
	data, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return fmt.Errorf("encode account: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create account dir: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, append(data, '\n'), 0o600); err != nil {
		return fmt.Errorf("write account: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replace account: %w", err)
	}
	return nil
}

// AuthOptions locates the token endpoint.
type AuthOptions struct {
	TokenURL string
}

// NewAccount builds an account from the setup prompts, confirms the client
// credentials against the token endpoint and saves it to path.
func NewAccount(ctx context.Context, fields Fields, opts AuthOptions, path string) (*Account, error) {
	account := &Account{
		Username:        strings.TrimSpace(fields.Username),
		UserID:          strings.TrimSpace(fields.UserID),
		ClientID:        NewSecret(strings.TrimSpace(fields.ClientID)),
		ClientSecret:    NewSecret(strings.TrimSpace(fields.ClientSecret)),
		RedirectURLPort: fields.Port,
	}
	if err := account.Validate(); err != nil {
		return nil, err
	}

	if _, err := account.appCredentials(opts).Token(ctx); err != nil {
		return nil, fmt.Errorf("verify client credentials: %w", err)
	}

	if err := account.Save(path); err != nil {
		return nil, err
	}
	return account, nil
}

func (a *Account) appCredentials(opts AuthOptions) *clientcredentials.Config {
	return &clientcredentials.Config{
		ClientID:     a.ClientID.Expose(),
		ClientSecret: a.ClientSecret.Expose(),
		TokenURL:     opts.TokenURL,
	}
}

// TokenSource returns the user token source when the account holds a user
// token (refreshing it through the refresh token), otherwise an app access
// token source using client credentials.
func (a *Account) TokenSource(ctx context.Context, opts AuthOptions) oauth2.TokenSource {
	if !a.UserAccessToken.Empty() {
		cfg := &oauth2.Config{
			ClientID:     a.ClientID.Expose(),
			ClientSecret: a.ClientSecret.Expose(),
			Endpoint: oauth2.Endpoint{
				TokenURL:  opts.TokenURL,
				AuthStyle: oauth2.AuthStyleInParams,
			},
		}
		return cfg.TokenSource(ctx, &oauth2.Token{
			AccessToken:  a.UserAccessToken.Expose(),
			RefreshToken: a.RefreshToken.Expose(),
			TokenType:    "Bearer",
		})
	}
	return a.appCredentials(opts).TokenSource(ctx)
}

// HTTPClient returns a client that authenticates Helix requests.
func (a *Account) HTTPClient(ctx context.Context, opts AuthOptions) *http.Client {
	client := oauth2.NewClient(ctx, a.TokenSource(ctx, opts))
	client.Transport = &clientIDTransport{
		clientID: a.ClientID.Expose(),
		base:     client.Transport,
	}
	return client
}

// clientIDTransport adds the Client-Id header Helix requires next to the bearer token.
type clientIDTransport struct {
	clientID string
	base     http.RoundTripper
}

func (t *clientIDTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set("Client-Id", t.clientID)
	return t.base.RoundTrip(req)
}
