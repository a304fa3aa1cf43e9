// Package literal provides a client for the Literal.club GraphQL API.
package literal

import (
	"context"
	"fmt"

	"github.com/conatus/literal-tools/log"
	"github.com/samber/mo"
)

// CreateBook creates a new book record. When cover is present the image is uploaded first and
// the returned reference is attached to the book.
//
// Input is validated before any request is made. Calling CreateBook twice with the same input
// creates two records.
func (c *Client) CreateBook(ctx context.Context, token string, input BookInput, cover mo.Option[string]) (*Book, error) {
	input = input.Normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if path, ok := cover.Get(); ok {
		if err := CheckCover(path); err != nil {
			return nil, err
		}

		ref, err := c.UploadImage(ctx, token, path)
		if err != nil {
			return nil, err
		}
		input.Cover = ref
	}

	log.Infof("Creating book %q by %v", input.Title, input.Authors)

	var response struct {
		CreateBook *Book `json:"createBook"`
	}

	if err := c.do(ctx, token, createBookMutation, input.variables(), &response); err != nil {
		return nil, err
	}

	if response.CreateBook == nil {
		return nil, fmt.Errorf("%w: createBook returned no book", ErrAPI)
	}

	return response.CreateBook, nil
}
