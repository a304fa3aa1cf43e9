// Package literal provides a client for the Literal.club GraphQL API.
package literal

import (
	"regexp"
	"strings"

	"github.com/samber/lo"
)

// ReadingStatus is the shelf a book sits on for a profile.
type ReadingStatus string

const (
	ReadingStatusReading  ReadingStatus = "IS_READING"
	ReadingStatusWants    ReadingStatus = "WANTS_TO_READ"
	ReadingStatusFinished ReadingStatus = "FINISHED"
	ReadingStatusDropped  ReadingStatus = "DROPPED"
)

// Profile is the public profile attached to an account.
type Profile struct {
	ID     string `json:"id" jsonschema:"description=ID of the profile on Literal."`
	Handle string `json:"handle" jsonschema:"description=Handle of the profile, as shown in profile URLs."`
	Name   string `json:"name" jsonschema:"description=Display name of the profile."`
}

// User is the authenticated account.
type User struct {
	Email   string  `json:"email"`
	Profile Profile `json:"profile"`
}

// Session is the result of a successful login.
type Session struct {
	Token string `json:"token"`
	User
}

// Author is a contributor credited on a book.
type Author struct {
	// ID is the unique identifier for the author on Literal.
	ID string `json:"id" jsonschema:"description=ID of the author on Literal."`
	// Name is the full name of the author.
	Name string `json:"name" jsonschema:"description=Full name of the author."`
}

// ReadingProgress is the latest progress update for a book.
type ReadingProgress struct {
	// Progress is the current position, in Unit.
	Progress int `json:"progress" jsonschema:"description=Current position in the book, measured in unit."`
	// Capacity is the total length of the book, in Unit.
	Capacity int `json:"capacity" jsonschema:"description=Total length of the book, measured in unit."`
	// Unit is either PAGES or PERCENTAGE.
	Unit string `json:"unit" jsonschema:"enum=PAGES,enum=PERCENTAGE"`
	// Completed is set once the book was finished.
	Completed bool `json:"completed" jsonschema:"description=Whether the book was finished."`
}

// Percent returns progress as a whole percentage in [0, 100].
func (p *ReadingProgress) Percent() int {
	if p == nil {
		return 0
	}

	if p.Completed {
		return 100
	}

	var pct int
	switch {
	case p.Unit == "PERCENTAGE":
		pct = p.Progress
	case p.Capacity > 0:
		pct = p.Progress * 100 / p.Capacity
	}

	return lo.Clamp(pct, 0, 100)
}

// Book is a book record as returned by the Literal API.
type Book struct {
	ID          string   `json:"id" jsonschema:"description=ID of the book on Literal."`
	Slug        string   `json:"slug" jsonschema:"description=URL slug of the book."`
	Title       string   `json:"title" jsonschema:"description=Title of the book."`
	Subtitle    string   `json:"subtitle,omitempty" jsonschema:"description=Subtitle of the book."`
	Description string   `json:"description,omitempty" jsonschema:"description=Description of the book."`
	ISBN10      string   `json:"isbn10,omitempty" jsonschema:"description=ISBN-10 identifier."`
	ISBN13      string   `json:"isbn13,omitempty" jsonschema:"description=ISBN-13 identifier."`
	Cover       string   `json:"cover,omitempty" jsonschema:"description=URL of the cover image."`
	PageCount   int      `json:"pageCount,omitempty" jsonschema:"description=Number of pages."`
	Authors     []Author `json:"authors" jsonschema:"description=Authors of the book."`
	// Progress is only set for books returned by CurrentlyReading.
	Progress *ReadingProgress `json:"progress,omitempty" jsonschema:"description=Latest reading progress."`
}

// AuthorNames joins the names of all authors.
func (b *Book) AuthorNames() string {
	return strings.Join(lo.Map(b.Authors, func(a Author, _ int) string {
		return a.Name
	}), ", ")
}

// URL returns the public page of the book.
func (b *Book) URL() string {
	if b.Slug == "" {
		return ""
	}
	return "https://literal.club/book/" + b.Slug
}

var isbn13Pattern = regexp.MustCompile(`^\d{13}$`)

// BookInput holds the metadata sent when creating a book.
type BookInput struct {
	Title       string
	Subtitle    string
	Description string
	Authors     []string
	ISBN13      string
	PageCount   int
	// Cover is a reference returned by UploadImage.
	Cover string
}

// Normalize trims every field, drops blank authors and strips ISBN separators.
func (in BookInput) Normalize() BookInput {
	in.Title = strings.TrimSpace(in.Title)
	in.Subtitle = strings.TrimSpace(in.Subtitle)
	in.Description = strings.TrimSpace(in.Description)
	in.Authors = lo.Compact(lo.Map(in.Authors, func(a string, _ int) string {
		return strings.TrimSpace(a)
	}))
	in.ISBN13 = strings.NewReplacer("-", "", " ", "").Replace(strings.TrimSpace(in.ISBN13))
	return in
}

// Validate reports the first problem with the input, wrapped in ErrValidation.
func (in BookInput) Validate() error {
	var missing []string
	if in.Title == "" {
		missing = append(missing, "title")
	}
	if len(in.Authors) == 0 {
		missing = append(missing, "author")
	}
	if len(missing) > 0 {
		return validationError("missing required %s", strings.Join(missing, " and "))
	}

	if in.ISBN13 != "" && !isbn13Pattern.MatchString(in.ISBN13) {
		return validationError("isbn %q must have 13 digits", in.ISBN13)
	}

	if in.PageCount < 0 {
		return validationError("page count must not be negative")
	}

	return nil
}

func (in BookInput) variables() map[string]any {
	vars := map[string]any{
		"title":   in.Title,
		"authors": in.Authors,
	}

	optional := map[string]string{
		"subtitle":    in.Subtitle,
		"description": in.Description,
		"isbn13":      in.ISBN13,
		"cover":       in.Cover,
	}
	for k, v := range optional {
		if v != "" {
			vars[k] = v
		}
	}

	if in.PageCount > 0 {
		vars["pageCount"] = in.PageCount
	}

	return vars
}
