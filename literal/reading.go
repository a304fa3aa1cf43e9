// Package literal provides a client for the Literal.club GraphQL API.
package literal

import (
	"context"

	"github.com/conatus/literal-tools/log"
	"github.com/samber/lo"
)

// CurrentlyReading returns the books the authenticated user is reading, in the order the API returns them.
// Each book carries its latest reading progress when the API has one.
func (c *Client) CurrentlyReading(ctx context.Context, token string) ([]*Book, error) {
	me, err := c.Me(ctx, token)
	if err != nil {
		return nil, err
	}

	books, err := c.BooksByReadingState(ctx, token, me.Profile.ID, ReadingStatusReading)
	if err != nil {
		return nil, err
	}

	if len(books) == 0 {
		return books, nil
	}

	progresses, err := c.readingProgresses(ctx, token, lo.Map(books, func(b *Book, _ int) string {
		return b.ID
	}))
	if err != nil {
		return nil, err
	}

	for _, book := range books {
		if p, ok := progresses[book.ID]; ok {
			book.Progress = p
		}
	}

	return books, nil
}

// BooksByReadingState returns one page of books on the given shelf of a profile.
func (c *Client) BooksByReadingState(ctx context.Context, token, profileID string, status ReadingStatus) ([]*Book, error) {
	log.Infof("Fetching %s books for profile %s", status, profileID)

	var response struct {
		Books []*Book `json:"booksByReadingStateAndProfile"`
	}

	err := c.do(ctx, token, booksByReadingStateQuery, map[string]any{
		"limit":         c.readingLimit,
		"offset":        0,
		"readingStatus": status,
		"profileId":     profileID,
	}, &response)
	if err != nil {
		return nil, err
	}

	books := lo.Compact(response.Books)
	log.Infof("Got %d books from Literal", len(books))
	return books, nil
}

// readingProgresses returns the latest progress keyed by book id.
func (c *Client) readingProgresses(ctx context.Context, token string, bookIDs []string) (map[string]*ReadingProgress, error) {
	var response struct {
		Progresses []struct {
			BookID string `json:"bookId"`
			ReadingProgress
		} `json:"getReadingProgresses"`
	}

	err := c.do(ctx, token, readingProgressesQuery, map[string]any{
		"bookIds": bookIDs,
	}, &response)
	if err != nil {
		return nil, err
	}

	progresses := make(map[string]*ReadingProgress, len(response.Progresses))
	for _, p := range response.Progresses {
		progress := p.ReadingProgress
		progresses[p.BookID] = &progress
	}

	return progresses, nil
}
