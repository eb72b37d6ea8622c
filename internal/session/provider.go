package session

import (
	"context"
	"fmt"
	"os"
	"strings"

	"golang.org/x/oauth2"
)

// TokenProvider is an interface for supplying the bearer token of the
// current session. This abstraction allows different token sources
// (static, file-based, OAuth token source).
type TokenProvider interface {
	// Token returns the credential for the active session, or an
	// *AuthError when no session is active. Implementations must ask
	// their source fresh on every call.
	Token(ctx context.Context) (string, error)
}

// AuthError indicates that no session is active and no credential is
// available. It is raised before any network call is made.
type AuthError struct {
	Err error
}

func (e *AuthError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("no id token available: %v", e.Err)
	}
	return "no id token available"
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// StaticProvider supplies a fixed token, typically from a flag or
// environment variable.
type StaticProvider struct {
	token string
}

// NewStaticProvider creates a provider for a fixed token.
func NewStaticProvider(token string) *StaticProvider {
	return &StaticProvider{token: token}
}

// Token implements TokenProvider.
func (p *StaticProvider) Token(ctx context.Context) (string, error) {
	if p.token == "" {
		return "", &AuthError{}
	}
	return p.token, nil
}

// FileProvider reads the session token from a file on every call.
// Removing the file signs the session out; a request issued afterwards
// fails with an *AuthError instead of reusing a stale credential.
type FileProvider struct {
	path string
}

// NewFileProvider creates a provider reading the token from path.
func NewFileProvider(path string) *FileProvider {
	return &FileProvider{path: path}
}

// Token implements TokenProvider.
func (p *FileProvider) Token(ctx context.Context) (string, error) {
	slurp, err := os.ReadFile(p.path)
	if err != nil {
		return "", &AuthError{Err: err}
	}
	token := strings.TrimSpace(string(slurp))
	if token == "" {
		return "", &AuthError{Err: fmt.Errorf("token file %s is empty", p.path)}
	}
	return token, nil
}

// OAuthProvider adapts an oauth2.TokenSource to the TokenProvider
// interface. The source is consulted on every call; refresh and expiry
// handling stay with the oauth2 package.
type OAuthProvider struct {
	source oauth2.TokenSource
}

// NewOAuthProvider creates a provider backed by the given token source.
func NewOAuthProvider(source oauth2.TokenSource) *OAuthProvider {
	return &OAuthProvider{source: source}
}

// Token implements TokenProvider.
func (p *OAuthProvider) Token(ctx context.Context) (string, error) {
	if p.source == nil {
		return "", &AuthError{}
	}
	tok, err := p.source.Token()
	if err != nil {
		return "", &AuthError{Err: err}
	}
	if !tok.Valid() {
		return "", &AuthError{Err: fmt.Errorf("token expired")}
	}
	return tok.AccessToken, nil
}
