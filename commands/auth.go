package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/inabooth/inabooth-app-sheets/config"
	"github.com/inabooth/inabooth-app-sheets/menu"
)

// authenticator supplies an authorised HTTP client for the Google Sheets API.
type authenticator interface {
	Client(ctx context.Context) (*http.Client, error)
}

// serviceAccount authenticates with a service account key file, e.g. for a CI pipeline.
type serviceAccount struct {
	credentials string
}

// oauthToken authenticates as a user with an OAuth client file and a previously authorised
// (cached) token.
type oauthToken struct {
	credentials string
	tokens      string
}

func newAuthenticator(auth config.Auth) (authenticator, error) {
	switch strings.ToLower(strings.TrimSpace(auth.Method)) {
	case config.ServiceAccount, "":
		return &serviceAccount{credentials: auth.Credentials}, nil

	case config.OAuth:
		return &oauthToken{credentials: auth.Credentials, tokens: auth.Tokens}, nil
	}

	return nil, fmt.Errorf("Invalid authentication method '%v' - expected '%v' or '%v'", auth.Method, config.ServiceAccount, config.OAuth)
}

func (a *serviceAccount) Client(ctx context.Context) (*http.Client, error) {
	if strings.TrimSpace(a.credentials) == "" {
		return nil, fmt.Errorf("%w: service account credentials not configured", menu.ErrAuthentication)
	}

	b, err := os.ReadFile(a.credentials)
	if err != nil {
		return nil, fmt.Errorf("%w: service account credentials not found (%v)", menu.ErrAuthentication, err)
	}

	conf, err := google.JWTConfigFromJSON(b, SHEETS)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid service account credentials (%v)", menu.ErrAuthentication, err)
	}

	tokens := oauth2.ReuseTokenSource(nil, conf.TokenSource(ctx))
	if _, err := tokens.Token(); err != nil {
		return nil, fmt.Errorf("%w: unable to retrieve access token (%v)", menu.ErrAuthentication, err)
	}

	return oauth2.NewClient(ctx, tokens), nil
}

func (a *oauthToken) Client(ctx context.Context) (*http.Client, error) {
	b, err := os.ReadFile(a.credentials)
	if err != nil {
		return nil, fmt.Errorf("%w: OAuth client credentials not found (%v)", menu.ErrAuthentication, err)
	}

	conf, err := google.ConfigFromJSON(b, SHEETS)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid OAuth client credentials (%v)", menu.ErrAuthentication, err)
	}

	token, err := tokenFromFile(a.tokens)
	if err != nil {
		return nil, fmt.Errorf("%w: token invalid or missing - authorise access first (%v)", menu.ErrAuthentication, err)
	}

	tokens := conf.TokenSource(ctx, token)
	refreshed, err := tokens.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: unable to refresh token (%v)", menu.ErrAuthentication, err)
	}

	if refreshed.AccessToken != token.AccessToken {
		if err := saveToken(a.tokens, refreshed); err != nil {
			warnf("Unable to cache refreshed OAuth token (%v)", err)
		}
	}

	return oauth2.NewClient(ctx, tokens), nil
}

// Retrieves a token from a local file.
func tokenFromFile(file string) (*oauth2.Token, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	token := &oauth2.Token{}
	if err := json.NewDecoder(f).Decode(token); err != nil {
		return nil, err
	}

	return token, nil
}

// Saves a token to a file path.
func saveToken(path string, token *oauth2.Token) error {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	defer f.Close()

	return json.NewEncoder(f).Encode(token)
}
