package models

import "time"

// Book is the single CRUD resource exposed by the API.
// Updates are a full overwrite of Title and Author; there is no versioning
// and no soft delete.
type Book struct {
	// ID is the internal unique identifier of the book, assigned by the
	// database on creation.
	ID int64 `json:"id"`

	// Title is the book title.
	Title string `json:"title"`

	// Author is the book author's display name.
	Author string `json:"author"`

	// CreatedAt is the timestamp when the record was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Book model.
func (b Book) TableName() string {
	return "books"
}

// BookRequest is the request body of POST /books and PUT /books/{id}.
type BookRequest struct {
	Title  string `json:"title"`
	Author string `json:"author"`
}
