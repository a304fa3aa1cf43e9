// Package cmd implements the command-line interface for literal.
package cmd

import (
	"context"

	"github.com/conatus/literal-tools/auth"
	"github.com/conatus/literal-tools/key"
	"github.com/conatus/literal-tools/literal"
	"github.com/conatus/literal-tools/prompt"
	"github.com/spf13/viper"
)

// newAuthenticator wires the configured token store to client and the terminal prompter.
func newAuthenticator(client *literal.Client) (*auth.Authenticator, error) {
	store, err := auth.NewStore(viper.GetString(key.AuthStore))
	if err != nil {
		return nil, err
	}

	return auth.New(store, client, prompt.New()), nil
}

// session returns an API client and a bearer token, logging in first when no token is cached.
func session(ctx context.Context) (*literal.Client, string, error) {
	client := literal.NewFromConfig()

	authenticator, err := newAuthenticator(client)
	if err != nil {
		return nil, "", err
	}

	token, err := authenticator.Token(ctx)
	if err != nil {
		return nil, "", err
	}

	return client, token, nil
}
