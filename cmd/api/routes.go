// cmd/api/routes.go
package main

import (
	"context"
	"net/http"

	"github.com/julienschmidt/httprouter"
)

// routes registers all HTTP endpoints and returns the configured router
// wrapped in the middleware chain. ctx bounds the lifetime of background
// work started by the middleware.
//
// Middleware chain (outermost → innermost):
//
//	recoverPanic → requestID → logRequest → rateLimit → router
//
// Current endpoints, in declaration order:
//
//	GET    /books            – list books, optionally filtered by name, reading or finished
//	HEAD   /books            – headers of the list, the server drops the body
//	GET    /books/:bookId    – retrieve a single book
//	HEAD   /books/:bookId    – headers of a single book
//	PUT    /books/:bookId    – replace a book's fields
//	DELETE /books/:bookId    – delete a book
//	POST   /books            – create a new book
//	*      anything else     – "Page Not Found"
func (app *applicationDependencies) routes(ctx context.Context) http.Handler {
	router := httprouter.New()

	// Every unmatched method or path, including a known path with an unknown
	// method, falls through to the catch-all.
	router.NotFound = http.HandlerFunc(app.notFoundResponse)
	router.HandleMethodNotAllowed = false
	router.HandleOPTIONS = false
	router.RedirectTrailingSlash = false
	router.RedirectFixedPath = false

	router.HandlerFunc(http.MethodGet, "/books", app.listBooksHandler)
	router.HandlerFunc(http.MethodHead, "/books", app.listBooksHandler)
	router.HandlerFunc(http.MethodGet, "/books/:bookId", app.showBookHandler)
	router.HandlerFunc(http.MethodHead, "/books/:bookId", app.showBookHandler)
	router.HandlerFunc(http.MethodPut, "/books/:bookId", app.updateBookHandler)
	router.HandlerFunc(http.MethodDelete, "/books/:bookId", app.deleteBookHandler)
	router.HandlerFunc(http.MethodPost, "/books", app.createBookHandler)

	return app.recoverPanic(app.requestID(app.logRequest(app.rateLimit(ctx, router))))
}
