// cmd/api/errors.go
// This file contains all error-response helpers for the application.
// Client errors are reported as "fail" envelopes, server errors as "error".
package main

import (
	"io"
	"log/slog"
	"net/http"
)

// pageNotFound is the body returned by the fallback route.
const pageNotFound = "Page Not Found"

// genericServerError is sent in place of internal error details.
const genericServerError = "the server encountered a problem and could not process your request"

// logError logs an internal error at ERROR level with the request method and URL for context.
func (app *applicationDependencies) logError(r *http.Request, err error) {
	app.logger.Error(err.Error(),
		slog.String("request_method", r.Method),
		slog.String("request_url", r.URL.String()),
		slog.String("request_id", requestIDFromContext(r.Context())),
	)
}

// failResponse sends a client-error envelope. These are expected outcomes
// and are not logged.
func (app *applicationDependencies) failResponse(w http.ResponseWriter, r *http.Request, status int, message string) {
	data := envelope{"status": "fail", "message": message}
	err := app.writeJSON(w, status, data, nil)
	if err != nil {
		app.logError(r, err)
		w.WriteHeader(http.StatusInternalServerError)
	}
}

// errorResponse sends a server-error envelope with the given status code and message.
func (app *applicationDependencies) errorResponse(w http.ResponseWriter, r *http.Request, status int, message string) {
	data := envelope{"status": "error", "message": message}
	err := app.writeJSON(w, status, data, nil)
	if err != nil {
		app.logError(r, err)
		w.WriteHeader(http.StatusInternalServerError)
	}
}

// serverErrorResponse logs a 500-level error and sends message to the client.
// Internal error details never reach the client.
func (app *applicationDependencies) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error, message string) {
	app.logError(r, err)
	app.errorResponse(w, r, http.StatusInternalServerError, message)
}

// badRequestResponse sends a 400 fail envelope carrying err's message.
func (app *applicationDependencies) badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.failResponse(w, r, http.StatusBadRequest, err.Error())
}

// notFoundResponse is the catch-all route. Any method or path that no other
// route matches gets the plain-text "Page Not Found" body with a 200 status.
func (app *applicationDependencies) notFoundResponse(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, err := io.WriteString(w, pageNotFound)
	if err != nil {
		app.logError(r, err)
	}
}

// rateLimitExceededResponse sends a 429 Too Many Requests error.
func (app *applicationDependencies) rateLimitExceededResponse(w http.ResponseWriter, r *http.Request) {
	app.failResponse(w, r, http.StatusTooManyRequests, "rate limit exceeded")
}
