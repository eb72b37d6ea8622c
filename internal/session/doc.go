// Package session supplies the bearer credential for the signed-in
// identity.
//
// The task API client consults a TokenProvider before every request.
// Providers never cache beyond a single call: each Token call asks the
// underlying source again, so a token revoked by sign-out is not
// reused. When no session is active, Token fails with an *AuthError
// and the request is never sent.
package session
