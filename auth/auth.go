// Package auth acquires and caches the Literal session token.
package auth

import (
	"context"
	"errors"

	"github.com/conatus/literal-tools/literal"
	"github.com/conatus/literal-tools/log"
)

// Credentials are the email and password typed by the user.
type Credentials struct {
	Email    string
	Password string
}

// Prompter asks the user for credentials.
type Prompter interface {
	Credentials() (Credentials, error)
}

// LoginClient exchanges credentials for a session.
type LoginClient interface {
	Login(ctx context.Context, email, password string) (*literal.Session, error)
}

// Authenticator hands out a session token, logging in interactively only when none is cached.
type Authenticator struct {
	store    Store
	client   LoginClient
	prompter Prompter
}

// New creates an Authenticator.
func New(store Store, client LoginClient, prompter Prompter) *Authenticator {
	return &Authenticator{store: store, client: client, prompter: prompter}
}

// Token returns the cached token, or logs in and caches a new one when none is stored.
// A cached token is returned as is; its validity is only discovered by the next API call.
func (a *Authenticator) Token(ctx context.Context) (string, error) {
	token, err := a.store.Load()
	if err == nil {
		log.Info("Using cached session token")
		return token, nil
	}

	if !errors.Is(err, ErrNoToken) {
		log.Warnf("Ignoring unreadable token cache: %v", err)
	}

	return a.Login(ctx)
}

// Login prompts for credentials once, logs in, and overwrites the cached token.
// Nothing is written when the login fails; a failure to write is logged and the token is still returned.
func (a *Authenticator) Login(ctx context.Context) (string, error) {
	creds, err := a.prompter.Credentials()
	if err != nil {
		return "", err
	}

	session, err := a.client.Login(ctx, creds.Email, creds.Password)
	if err != nil {
		return "", err
	}

	// An unsaved token still serves this invocation.
	if err := a.store.Save(session.Token); err != nil {
		log.Warnf("Could not save token: %v", err)
	}

	return session.Token, nil
}

// Logout forgets the cached token.
func (a *Authenticator) Logout() error {
	return a.store.Delete()
}
