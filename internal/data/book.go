// Package data provides the book entity and the in-memory store
// backing the bookshelf API.
package data

import "github.com/aoideee/bookshelf-api/internal/validator"

// Book represents a single book record held by the store.
// Optional attributes the client never sent are omitted from JSON; attributes
// sent as null are written back as null.
type Book struct {
	ID         string            `json:"id"`                 // Opaque identifier assigned on insert
	Name       string            `json:"name"`               // Title of the book, always non-empty
	Year       Optional[float64] `json:"year,omitzero"`      // Publication year
	Author     Optional[string]  `json:"author,omitzero"`    // Author name
	Summary    Optional[string]  `json:"summary,omitzero"`   // Short description
	Publisher  Optional[string]  `json:"publisher,omitzero"` // Publishing company
	PageCount  Optional[float64] `json:"pageCount,omitzero"` // Total pages
	ReadPage   Optional[float64] `json:"readPage,omitzero"`  // Pages read so far
	Finished   bool              `json:"finished"`           // Derived: readPage equals pageCount
	Reading    Optional[bool]    `json:"reading,omitzero"`   // Client-declared reading flag
	InsertedAt string            `json:"insertedAt"`         // ISO 8601, set once on insert
	UpdatedAt  string            `json:"updatedAt"`          // ISO 8601, refreshed on every update
}

// BookSummary is the reduced projection returned by the list endpoint.
type BookSummary struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	Publisher Optional[string] `json:"publisher,omitzero"`
}

// Brief reduces b to its list projection.
func (b *Book) Brief() BookSummary {
	return BookSummary{ID: b.ID, Name: b.Name, Publisher: b.Publisher}
}

// BookInput holds the fields a client may supply when creating or replacing
// a book. Server-owned fields (id, finished, timestamps) are not part of it.
type BookInput struct {
	Name      string            `json:"name"`
	Year      Optional[float64] `json:"year"`
	Author    Optional[string]  `json:"author"`
	Summary   Optional[string]  `json:"summary"`
	Publisher Optional[string]  `json:"publisher"`
	PageCount Optional[float64] `json:"pageCount"`
	ReadPage  Optional[float64] `json:"readPage"`
	Reading   Optional[bool]    `json:"reading"`
}

// Book maps the input onto a fresh Book with no server-owned fields set.
func (in BookInput) Book() *Book {
	return &Book{
		Name:      in.Name,
		Year:      in.Year,
		Author:    in.Author,
		Summary:   in.Summary,
		Publisher: in.Publisher,
		PageCount: in.PageCount,
		ReadPage:  in.ReadPage,
		Reading:   in.Reading,
	}
}

// ValidateBookInput runs the name and page checks in order. action is the
// verb used in the messages ("menambahkan" for create, "memperbarui" for update).
func ValidateBookInput(v *validator.Validator, in BookInput, action string) {
	v.Check(in.Name != "", "name", "Gagal "+action+" buku. Mohon isi nama buku")
	v.Check(!readPastEnd(in.ReadPage, in.PageCount), "readPage",
		"Gagal "+action+" buku. readPage tidak boleh lebih besar dari pageCount")
}

// readPastEnd reports readPage > pageCount. An absent side is NaN and never
// compares greater; a null side counts as 0.
func readPastEnd(readPage, pageCount Optional[float64]) bool {
	return number(readPage) > number(pageCount)
}

// isFinished compares the counts with strict equality: absent equals absent,
// null equals null, and numbers compare by value.
func isFinished(pageCount, readPage Optional[float64]) bool {
	return strictEqual(pageCount, readPage)
}
