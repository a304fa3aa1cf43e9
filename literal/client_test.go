package literal

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/conatus/literal-tools/filesystem"
	"github.com/samber/lo"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

const (
	meResponse = `{"data":{"me":{"email":"reader@example.com","profile":{"id":"p1","handle":"reader","name":"Reader"}}}}`

	booksResponse = `{"data":{"booksByReadingStateAndProfile":[
		{"id":"b1","slug":"dune","title":"Dune","authors":[{"id":"a1","name":"Frank Herbert"}]},
		{"id":"b2","slug":"piranesi","title":"Piranesi","authors":[{"id":"a2","name":"Susanna Clarke"}]},
		{"id":"b3","slug":"middlemarch","title":"Middlemarch","authors":[{"id":"a3","name":"George Eliot"}]}
	]}}`

	progressResponse = `{"data":{"getReadingProgresses":[
		{"bookId":"b3","progress":40,"capacity":100,"unit":"PERCENTAGE","completed":false},
		{"bookId":"b1","progress":150,"capacity":600,"unit":"PAGES","completed":false}
	]}}`

	createResponse = `{"data":{"createBook":{"id":"new","slug":"the-book","title":"The Book","authors":[{"id":"a9","name":"Ann Author"}]}}}`
	uploadResponse = `{"data":{"uploadImage":{"url":"https://assets.literal.club/covers/abc.png"}}}`
)

func TestLogin(t *testing.T) {
	Convey("Given a Literal API", t, func() {
		api, srv := newFakeAPI()
		defer srv.Close()
		client := New(Options{Endpoint: srv.URL})
		ctx := context.Background()

		Convey("When the credentials are accepted", func() {
			api.on("login", http.StatusOK, `{"data":{"login":{"token":"tok-123","email":"reader@example.com","profile":{"id":"p1","handle":"reader","name":"Reader"}}}}`)

			session, err := client.Login(ctx, "reader@example.com", "hunter2")

			Convey("Then the session carries the token and profile", func() {
				So(err, ShouldBeNil)
				So(session.Token, ShouldEqual, "tok-123")
				So(session.Profile.Handle, ShouldEqual, "reader")
				So(session.Email, ShouldEqual, "reader@example.com")
			})

			Convey("And the request is unauthenticated and carries the credentials", func() {
				call, ok := api.call("login")
				So(ok, ShouldBeTrue)
				So(call.Authorization, ShouldBeEmpty)
				So(call.Variables["email"], ShouldEqual, "reader@example.com")
				So(call.Variables["password"], ShouldEqual, "hunter2")
			})
		})

		Convey("When the credentials are rejected", func() {
			api.on("login", http.StatusOK, `{"data":null,"errors":[{"message":"Invalid email or password"}]}`)

			_, err := client.Login(ctx, "reader@example.com", "wrong")

			Convey("Then the error is an authentication error", func() {
				So(errors.Is(err, ErrAuthentication), ShouldBeTrue)
				So(err.Error(), ShouldContainSubstring, "Invalid email or password")
			})
		})

		Convey("When credentials are blank", func() {
			_, err := client.Login(ctx, "", "")

			Convey("Then nothing is sent", func() {
				So(errors.Is(err, ErrValidation), ShouldBeTrue)
				So(api.operations(), ShouldBeEmpty)
			})
		})
	})
}

func TestCurrentlyReading(t *testing.T) {
	Convey("Given a user reading three books", t, func() {
		api, srv := newFakeAPI()
		defer srv.Close()
		client := New(Options{Endpoint: srv.URL, ReadingLimit: 10})

		api.on("me", http.StatusOK, meResponse)
		api.on("booksByReadingStateAndProfile", http.StatusOK, booksResponse)
		api.on("getReadingProgresses", http.StatusOK, progressResponse)

		books, err := client.CurrentlyReading(context.Background(), "tok-123")

		Convey("Then all books come back in API order", func() {
			So(err, ShouldBeNil)
			So(len(books), ShouldEqual, 3)
			So(lo.Map(books, func(b *Book, _ int) string { return b.ID }), ShouldResemble, []string{"b1", "b2", "b3"})
		})

		Convey("And progress is attached where known", func() {
			So(books[0].Progress.Percent(), ShouldEqual, 25)
			So(books[1].Progress, ShouldBeNil)
			So(books[2].Progress.Percent(), ShouldEqual, 40)
		})

		Convey("And every request is authenticated", func() {
			So(api.operations(), ShouldResemble, []string{"me", "booksByReadingStateAndProfile", "getReadingProgresses"})
			for _, op := range api.operations() {
				call, _ := api.call(op)
				So(call.Authorization, ShouldEqual, "Bearer tok-123")
			}
		})

		Convey("And the query is filtered to books being read", func() {
			call, _ := api.call("booksByReadingStateAndProfile")
			So(call.Variables["readingStatus"], ShouldEqual, string(ReadingStatusReading))
			So(call.Variables["profileId"], ShouldEqual, "p1")
			So(call.Variables["limit"], ShouldEqual, float64(10))
		})
	})

	Convey("Given a user reading nothing", t, func() {
		api, srv := newFakeAPI()
		defer srv.Close()
		client := New(Options{Endpoint: srv.URL})

		api.on("me", http.StatusOK, meResponse)
		api.on("booksByReadingStateAndProfile", http.StatusOK, `{"data":{"booksByReadingStateAndProfile":[]}}`)

		books, err := client.CurrentlyReading(context.Background(), "tok-123")

		Convey("Then an empty list is returned without a progress lookup", func() {
			So(err, ShouldBeNil)
			So(books, ShouldBeEmpty)
			So(api.operations(), ShouldResemble, []string{"me", "booksByReadingStateAndProfile"})
		})
	})
}

func TestErrors(t *testing.T) {
	Convey("Given a Literal API", t, func() {
		api, srv := newFakeAPI()
		client := New(Options{Endpoint: srv.URL})
		ctx := context.Background()

		Convey("A GraphQL error payload is an API error", func() {
			defer srv.Close()
			api.on("me", http.StatusOK, meResponse)
			api.on("booksByReadingStateAndProfile", http.StatusOK, `{"data":null,"errors":[{"message":"limit too large"}]}`)

			_, err := client.CurrentlyReading(ctx, "tok")
			So(errors.Is(err, ErrAPI), ShouldBeTrue)
			So(errors.Is(err, ErrAuthentication), ShouldBeFalse)

			var respErr *ResponseError
			So(errors.As(err, &respErr), ShouldBeTrue)
			So(respErr.Errors[0].Message, ShouldEqual, "limit too large")
		})

		Convey("A non-2xx response without a GraphQL body is an API error", func() {
			defer srv.Close()
			api.on("me", http.StatusBadGateway, `<html>bad gateway</html>`)

			_, err := client.Me(ctx, "tok")
			So(errors.Is(err, ErrAPI), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, "502")
		})

		Convey("A 401 is both an authentication and an API error", func() {
			defer srv.Close()
			api.on("me", http.StatusUnauthorized, `{"errors":[{"message":"jwt expired"}]}`)

			_, err := client.Me(ctx, "stale")
			So(errors.Is(err, ErrAuthentication), ShouldBeTrue)
			So(errors.Is(err, ErrAPI), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, "jwt expired")
		})

		Convey("An UNAUTHENTICATED GraphQL error is both an authentication and an API error", func() {
			defer srv.Close()
			api.on("me", http.StatusOK, `{"data":null,"errors":[{"message":"denied","extensions":{"code":"UNAUTHENTICATED"}}]}`)

			_, err := client.Me(ctx, "stale")
			So(errors.Is(err, ErrAuthentication), ShouldBeTrue)
			So(errors.Is(err, ErrAPI), ShouldBeTrue)
		})

		Convey("A null me is an authentication error", func() {
			defer srv.Close()
			api.on("me", http.StatusOK, `{"data":{"me":null}}`)

			_, err := client.Me(ctx, "stale")
			So(errors.Is(err, ErrAuthentication), ShouldBeTrue)
		})

		Convey("A transport failure is a network error", func() {
			srv.Close()

			_, err := client.Me(ctx, "tok")
			So(errors.Is(err, ErrNetwork), ShouldBeTrue)
		})
	})
}

func TestCreateBook(t *testing.T) {
	Convey("Given a Literal API", t, func() {
		api, srv := newFakeAPI()
		defer srv.Close()
		client := New(Options{Endpoint: srv.URL})
		ctx := context.Background()

		api.on("uploadImage", http.StatusOK, uploadResponse)
		api.on("createBook", http.StatusOK, createResponse)

		input := BookInput{Title: " The Book ", Authors: []string{"Ann Author", " "}, ISBN13: "978-0-00-000000-2"}

		Convey("When a cover image is supplied", func() {
			So(filesystem.API().WriteFile("/covers/front.png", []byte("png-bytes"), 0o644), ShouldBeNil)

			book, err := client.CreateBook(ctx, "tok", input, mo.Some("/covers/front.png"))

			Convey("Then the upload happens strictly before the creation", func() {
				So(err, ShouldBeNil)
				So(book.ID, ShouldEqual, "new")
				So(api.operations(), ShouldResemble, []string{"uploadImage", "createBook"})
			})

			Convey("And the image bytes are sent", func() {
				So(string(api.upload), ShouldEqual, "png-bytes")
			})

			Convey("And the book references the uploaded image", func() {
				call, _ := api.call("createBook")
				So(call.Variables["cover"], ShouldEqual, "https://assets.literal.club/covers/abc.png")
				So(call.Variables["title"], ShouldEqual, "The Book")
				So(call.Variables["authors"], ShouldResemble, []any{"Ann Author"})
				So(call.Variables["isbn13"], ShouldEqual, "9780000000002")
			})
		})

		Convey("When no cover is supplied", func() {
			_, err := client.CreateBook(ctx, "tok", input, mo.None[string]())

			Convey("Then only the creation is sent, without a cover", func() {
				So(err, ShouldBeNil)
				So(api.operations(), ShouldResemble, []string{"createBook"})
				call, _ := api.call("createBook")
				So(call.Variables, ShouldNotContainKey, "cover")
			})
		})

		Convey("When the same book is created twice", func() {
			_, err1 := client.CreateBook(ctx, "tok", input, mo.None[string]())
			_, err2 := client.CreateBook(ctx, "tok", input, mo.None[string]())

			Convey("Then two creations are sent", func() {
				So(err1, ShouldBeNil)
				So(err2, ShouldBeNil)
				So(api.operations(), ShouldResemble, []string{"createBook", "createBook"})
			})
		})

		Convey("When the title is missing", func() {
			_, err := client.CreateBook(ctx, "tok", BookInput{Authors: []string{"Ann"}}, mo.Some("/covers/front.png"))

			Convey("Then validation fails and nothing is sent", func() {
				So(errors.Is(err, ErrValidation), ShouldBeTrue)
				So(err.Error(), ShouldContainSubstring, "title")
				So(api.operations(), ShouldBeEmpty)
			})
		})

		Convey("When the author is missing", func() {
			_, err := client.CreateBook(ctx, "tok", BookInput{Title: "Solo"}, mo.None[string]())

			Convey("Then validation fails and nothing is sent", func() {
				So(errors.Is(err, ErrValidation), ShouldBeTrue)
				So(err.Error(), ShouldContainSubstring, "author")
				So(api.operations(), ShouldBeEmpty)
			})
		})

		Convey("When the cover file does not exist", func() {
			_, err := client.CreateBook(ctx, "tok", input, mo.Some("/covers/missing.jpg"))

			Convey("Then validation fails and nothing is sent", func() {
				So(errors.Is(err, ErrValidation), ShouldBeTrue)
				So(api.operations(), ShouldBeEmpty)
			})
		})

		Convey("When the upload is rejected", func() {
			So(filesystem.API().WriteFile("/covers/front.png", []byte("png-bytes"), 0o644), ShouldBeNil)
			api.on("uploadImage", http.StatusOK, `{"data":null,"errors":[{"message":"file too large"}]}`)

			_, err := client.CreateBook(ctx, "tok", input, mo.Some("/covers/front.png"))

			Convey("Then the book is not created", func() {
				So(errors.Is(err, ErrAPI), ShouldBeTrue)
				So(api.operations(), ShouldResemble, []string{"uploadImage"})
			})
		})
	})
}

func TestMutations(t *testing.T) {
	Convey("Given an introspectable API", t, func() {
		api, srv := newFakeAPI()
		defer srv.Close()
		client := New(Options{Endpoint: srv.URL})

		api.on("mutations", http.StatusOK, `{"data":{"__schema":{"mutationType":{"fields":[{"name":"login"},{"name":"createBook"}]}}}}`)

		names, err := client.Mutations(context.Background(), "tok")

		Convey("Then mutation names are listed in schema order", func() {
			So(err, ShouldBeNil)
			So(names, ShouldResemble, []string{"login", "createBook"})
		})
	})
}
