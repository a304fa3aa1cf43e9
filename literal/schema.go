// Package literal provides a client for the Literal.club GraphQL API.
package literal

import (
	"context"

	"github.com/samber/lo"
)

type schemaField struct {
	Name string `json:"name"`
}

// Mutations lists the mutation names the API exposes, via schema introspection.
func (c *Client) Mutations(ctx context.Context, token string) ([]string, error) {
	var response struct {
		Schema struct {
			MutationType *struct {
				Fields []schemaField `json:"fields"`
			} `json:"mutationType"`
		} `json:"__schema"`
	}

	if err := c.do(ctx, token, mutationsQuery, nil, &response); err != nil {
		return nil, err
	}

	if response.Schema.MutationType == nil {
		return []string{}, nil
	}

	return lo.Map(response.Schema.MutationType.Fields, func(f schemaField, _ int) string {
		return f.Name
	}), nil
}
