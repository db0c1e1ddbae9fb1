// cmd/api/handlers.go
// This file contains all HTTP request handlers for the books resource.
// Each handler is a method on *applicationDependencies so it has access
// to the logger and the book store.
package main

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/aoideee/bookshelf-api/internal/data"
	"github.com/aoideee/bookshelf-api/internal/validator"
)

// listBooksHandler handles GET /books.
// Filters are mutually exclusive and checked in the order name, reading,
// finished. Only id, name and publisher are returned per book.
func (app *applicationDependencies) listBooksHandler(w http.ResponseWriter, r *http.Request) {
	filters := app.readFilters(r.URL.Query())

	books := app.models.Books.GetAll(filters)

	summaries := make([]data.BookSummary, 0, len(books))
	for _, b := range books {
		summaries = append(summaries, b.Brief())
	}

	err := app.writeJSON(w, http.StatusOK, successEnvelope("", envelope{"books": summaries}), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err, genericServerError)
	}
}

// createBookHandler handles POST /books.
// It validates the body, stores the new book and responds 201 with its id.
func (app *applicationDependencies) createBookHandler(w http.ResponseWriter, r *http.Request) {
	const failedInsert = "Buku gagal ditambahkan"

	var input data.BookInput
	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	v := validator.New()
	data.ValidateBookInput(v, input, "menambahkan")
	if !v.Valid() {
		app.failResponse(w, r, http.StatusBadRequest, v.First())
		return
	}

	book := input.Book()
	err = app.models.Books.Insert(book)
	if err != nil {
		app.serverErrorResponse(w, r, err, failedInsert)
		return
	}

	// Confirm the book is retrievable before reporting success.
	_, err = app.models.Books.Get(book.ID)
	if err != nil {
		app.serverErrorResponse(w, r, fmt.Errorf("book %s missing after insert: %w", book.ID, err), failedInsert)
		return
	}

	headers := make(http.Header)
	headers.Set("Location", "/books/"+book.ID)

	env := successEnvelope("Buku berhasil ditambahkan", envelope{"bookId": book.ID})
	err = app.writeJSON(w, http.StatusCreated, env, headers)
	if err != nil {
		app.serverErrorResponse(w, r, err, failedInsert)
	}
}

// showBookHandler handles GET /books/:bookId.
// It responds with the full book record, or 404 if the id is unknown.
func (app *applicationDependencies) showBookHandler(w http.ResponseWriter, r *http.Request) {
	id := app.readBookIDParam(r)

	book, err := app.models.Books.Get(id)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrRecordNotFound):
			app.failResponse(w, r, http.StatusNotFound, "Buku tidak ditemukan")
		default:
			app.serverErrorResponse(w, r, err, genericServerError)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, successEnvelope("", envelope{"book": book}), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err, genericServerError)
	}
}

// updateBookHandler handles PUT /books/:bookId.
// The body replaces every client-owned field; fields left out are cleared.
// Validation runs before the id lookup, so a bad body on an unknown id is a 400.
func (app *applicationDependencies) updateBookHandler(w http.ResponseWriter, r *http.Request) {
	id := app.readBookIDParam(r)

	var input data.BookInput
	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	v := validator.New()
	data.ValidateBookInput(v, input, "memperbarui")
	if !v.Valid() {
		app.failResponse(w, r, http.StatusBadRequest, v.First())
		return
	}

	err = app.models.Books.Update(id, input.Book())
	if err != nil {
		switch {
		case errors.Is(err, data.ErrRecordNotFound):
			app.failResponse(w, r, http.StatusNotFound, "Gagal memperbarui buku. Id tidak ditemukan")
		default:
			app.serverErrorResponse(w, r, err, genericServerError)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, successEnvelope("Buku berhasil diperbarui", nil), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err, genericServerError)
	}
}

// deleteBookHandler handles DELETE /books/:bookId.
// Responds 404 if no book with that id exists.
func (app *applicationDependencies) deleteBookHandler(w http.ResponseWriter, r *http.Request) {
	id := app.readBookIDParam(r)

	err := app.models.Books.Delete(id)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrRecordNotFound):
			app.failResponse(w, r, http.StatusNotFound, "Buku gagal dihapus. Id tidak ditemukan")
		default:
			app.serverErrorResponse(w, r, err, genericServerError)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, successEnvelope("Buku berhasil dihapus", nil), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err, genericServerError)
	}
}
