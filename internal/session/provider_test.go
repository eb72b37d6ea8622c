package session

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/oauth2"
)

func TestStaticProvider(t *testing.T) {
	p := NewStaticProvider("id-token-123")
	token, err := p.Token(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token != "id-token-123" {
		t.Errorf("Token() = %q, want %q", token, "id-token-123")
	}
}

func TestStaticProviderEmpty(t *testing.T) {
	p := NewStaticProvider("")
	_, err := p.Token(context.Background())

	var authErr *AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("expected *AuthError, got %v", err)
	}
	if authErr.Error() != "no id token available" {
		t.Errorf("unexpected message: %q", authErr.Error())
	}
}

func TestFileProviderReadsFreshEachCall(t *testing.T) {
	path := filepath.Join(t.TempDir(), "taskdeck.token")
	if err := os.WriteFile(path, []byte("first-token\n"), 0600); err != nil {
		t.Fatal(err)
	}

	p := NewFileProvider(path)

	token, err := p.Token(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token != "first-token" {
		t.Errorf("Token() = %q, want %q", token, "first-token")
	}

	// Signing out removes the file; the provider must not serve the
	// previous token.
	if err := os.Remove(path); err != nil {
		t.Fatal(err)
	}

	_, err = p.Token(context.Background())
	var authErr *AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("expected *AuthError after sign-out, got %v", err)
	}
}

func TestFileProviderEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "taskdeck.token")
	if err := os.WriteFile(path, []byte("  \n"), 0600); err != nil {
		t.Fatal(err)
	}

	_, err := NewFileProvider(path).Token(context.Background())
	var authErr *AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("expected *AuthError for empty token file, got %v", err)
	}
}

type failingSource struct{ err error }

func (s failingSource) Token() (*oauth2.Token, error) {
	return nil, s.err
}

func TestOAuthProvider(t *testing.T) {
	source := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: "oauth-token"})
	p := NewOAuthProvider(source)

	token, err := p.Token(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token != "oauth-token" {
		t.Errorf("Token() = %q, want %q", token, "oauth-token")
	}
}

func TestOAuthProviderSourceFailure(t *testing.T) {
	cause := errors.New("refresh token revoked")
	p := NewOAuthProvider(failingSource{err: cause})

	_, err := p.Token(context.Background())
	var authErr *AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("expected *AuthError, got %v", err)
	}
	if !errors.Is(err, cause) {
		t.Error("expected wrapped source error to be preserved")
	}
}

func TestOAuthProviderNilSource(t *testing.T) {
	_, err := NewOAuthProvider(nil).Token(context.Background())
	var authErr *AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("expected *AuthError, got %v", err)
	}
}
