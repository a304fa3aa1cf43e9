// Package literal provides a client for the Literal.club GraphQL API.
package literal

import (
	"context"
	"errors"
	"fmt"

	"github.com/conatus/literal-tools/log"
)

// Login exchanges credentials for a session token.
// Credentials rejected by the API yield an error matching ErrAuthentication.
func (c *Client) Login(ctx context.Context, email, password string) (*Session, error) {
	if email == "" || password == "" {
		return nil, validationError("email and password are required")
	}

	log.Infof("Logging in to Literal as %s", email)

	var response struct {
		Login *Session `json:"login"`
	}

	err := c.do(ctx, "", loginMutation, map[string]any{
		"email":    email,
		"password": password,
	}, &response)

	var respErr *ResponseError
	if errors.As(err, &respErr) {
		return nil, fmt.Errorf("%w: %w", ErrAuthentication, respErr)
	}
	if err != nil {
		return nil, err
	}

	if response.Login == nil || response.Login.Token == "" {
		return nil, fmt.Errorf("%w: login returned no token", ErrAuthentication)
	}

	log.Infof("Logged in as %s", response.Login.Profile.Handle)
	return response.Login, nil
}

// Me returns the account the token belongs to.
func (c *Client) Me(ctx context.Context, token string) (*User, error) {
	var response struct {
		Me *User `json:"me"`
	}

	if err := c.do(ctx, token, meQuery, nil, &response); err != nil {
		return nil, err
	}

	if response.Me == nil {
		return nil, fmt.Errorf("%w: session is not associated with an account", ErrAuthentication)
	}

	return response.Me, nil
}
