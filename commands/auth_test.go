package commands

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/inabooth/inabooth-app-sheets/config"
	"github.com/inabooth/inabooth-app-sheets/menu"
)

const oauthClient = `{
  "installed": {
    "client_id": "123456789.apps.googleusercontent.com",
    "client_secret": "qwerty",
    "auth_uri": "https://accounts.google.com/o/oauth2/auth",
    "token_uri": "https://oauth2.googleapis.com/token",
    "redirect_uris": ["http://localhost"]
  }
}`

const cachedToken = `{"access_token":"ya29.access","token_type":"Bearer","refresh_token":"","expiry":"2099-01-01T00:00:00Z"}`

func TestNewAuthenticator(t *testing.T) {
	tests := map[string]any{
		"":                &serviceAccount{},
		"service-account": &serviceAccount{},
		" OAuth ":         &oauthToken{},
	}

	for method, expected := range tests {
		auth, err := newAuthenticator(config.Auth{Method: method})
		if err != nil {
			t.Fatalf("Unexpected error for method '%v' (%v)", method, err)
		}

		switch expected.(type) {
		case *serviceAccount:
			if _, ok := auth.(*serviceAccount); !ok {
				t.Errorf("Incorrect authenticator for '%v' - expected:%T, got:%T", method, expected, auth)
			}

		case *oauthToken:
			if _, ok := auth.(*oauthToken); !ok {
				t.Errorf("Incorrect authenticator for '%v' - expected:%T, got:%T", method, expected, auth)
			}
		}
	}

	if _, err := newAuthenticator(config.Auth{Method: "api-key"}); err == nil {
		t.Errorf("Expected error for invalid authentication method")
	}
}

func TestServiceAccountWithoutCredentials(t *testing.T) {
	dir := t.TempDir()
	invalid := filepath.Join(dir, "credentials.json")

	if err := os.WriteFile(invalid, []byte(`{"type":"service_account"`), 0600); err != nil {
		t.Fatalf("%v", err)
	}

	for _, credentials := range []string{"", filepath.Join(dir, "missing.json"), invalid} {
		auth := serviceAccount{credentials: credentials}

		if _, err := auth.Client(context.Background()); !errors.Is(err, menu.ErrAuthentication) {
			t.Errorf("Expected authentication error for credentials '%v', got %v", credentials, err)
		}
	}
}

func TestOAuthWithCachedToken(t *testing.T) {
	dir := t.TempDir()
	auth := oauthToken{
		credentials: filepath.Join(dir, "credentials.json"),
		tokens:      filepath.Join(dir, "token.json"),
	}

	if err := os.WriteFile(auth.credentials, []byte(oauthClient), 0600); err != nil {
		t.Fatalf("%v", err)
	}

	if err := os.WriteFile(auth.tokens, []byte(cachedToken), 0600); err != nil {
		t.Fatalf("%v", err)
	}

	c, err := auth.Client(context.Background())
	if err != nil {
		t.Fatalf("Unexpected error authenticating with cached token (%v)", err)
	} else if c == nil {
		t.Fatalf("Expected HTTP client, got %v", c)
	}
}

func TestOAuthWithoutToken(t *testing.T) {
	dir := t.TempDir()
	auth := oauthToken{
		credentials: filepath.Join(dir, "credentials.json"),
		tokens:      filepath.Join(dir, "token.json"),
	}

	if err := os.WriteFile(auth.credentials, []byte(oauthClient), 0600); err != nil {
		t.Fatalf("%v", err)
	}

	if _, err := auth.Client(context.Background()); !errors.Is(err, menu.ErrAuthentication) {
		t.Errorf("Expected authentication error for missing token, got %v", err)
	}

	// ... expired token that cannot be refreshed
	expired := `{"access_token":"ya29.access","token_type":"Bearer","expiry":"2001-01-01T00:00:00Z"}`
	if err := os.WriteFile(auth.tokens, []byte(expired), 0600); err != nil {
		t.Fatalf("%v", err)
	}

	if _, err := auth.Client(context.Background()); !errors.Is(err, menu.ErrAuthentication) {
		t.Errorf("Expected authentication error for expired token, got %v", err)
	}
}
