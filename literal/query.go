// Package literal provides a client for the Literal.club GraphQL API.
package literal

import "fmt"

// bookSubquery defines the common GraphQL selection set for book records.
var bookSubquery = `
id
slug
title
subtitle
description
isbn10
isbn13
cover
pageCount
authors {
	id
	name
}
`

// profileSubquery defines the selection set shared by login and me.
var profileSubquery = `
email
profile {
	id
	handle
	name
}
`

var loginMutation = fmt.Sprintf(`
mutation login($email: String!, $password: String!) {
	login(email: $email, password: $password) {
		token
		%s
	}
}`, profileSubquery)

var meQuery = fmt.Sprintf(`
query me {
	me {
		%s
	}
}`, profileSubquery)

var booksByReadingStateQuery = fmt.Sprintf(`
query booksByReadingStateAndProfile($limit: Int!, $offset: Int!, $readingStatus: ReadingStatus!, $profileId: String!) {
	booksByReadingStateAndProfile(limit: $limit, offset: $offset, readingStatus: $readingStatus, profileId: $profileId) {
		%s
	}
}`, bookSubquery)

var readingProgressesQuery = `
query getReadingProgresses($bookIds: [String!]!) {
	getReadingProgresses(bookIds: $bookIds) {
		bookId
		progress
		capacity
		unit
		completed
	}
}`

var createBookMutation = fmt.Sprintf(`
mutation createBook($title: String!, $authors: [String!]!, $subtitle: String, $description: String, $isbn13: String, $pageCount: Int, $cover: String) {
	createBook(title: $title, authors: $authors, subtitle: $subtitle, description: $description, isbn13: $isbn13, pageCount: $pageCount, cover: $cover) {
		%s
	}
}`, bookSubquery)

// uploadImageMutation is sent as the "operations" part of a GraphQL multipart request.
var uploadImageMutation = `
mutation uploadImage($file: Upload!) {
	uploadImage(file: $file) {
		url
	}
}`

var mutationsQuery = `
query mutations {
	__schema {
		mutationType {
			fields {
				name
			}
		}
	}
}`
