// cmd/api/helpers.go
// This file contains general-purpose helper functions for the application.
// Error-response helpers live in errors.go; only non-error utilities are here.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/julienschmidt/httprouter"

	"github.com/aoideee/bookshelf-api/internal/data"
)

// envelope is the top-level JSON wrapper type used for all API responses.
// Every envelope carries a "status" of success, fail or error, plus an
// optional "message" and "data".
type envelope map[string]any

// successEnvelope builds {"status":"success"} with the optional message and data.
func successEnvelope(message string, payload envelope) envelope {
	env := envelope{"status": "success"}
	if message != "" {
		env["message"] = message
	}
	if payload != nil {
		env["data"] = payload
	}
	return env
}

// readBookIDParam extracts the ":bookId" URL parameter added by httprouter.
// Ids are opaque, so no format check is applied.
func (app *applicationDependencies) readBookIDParam(r *http.Request) string {
	params := httprouter.ParamsFromContext(r.Context())
	return params.ByName("bookId")
}

// readFilters reads the list filters from the query string. An empty value
// counts as not supplied.
func (app *applicationDependencies) readFilters(qs url.Values) data.Filters {
	return data.Filters{
		Name:     qs.Get("name"),
		Reading:  qs.Get("reading"),
		Finished: qs.Get("finished"),
	}
}

// writeJSON marshals payload to indented JSON, applies any custom headers,
// sets Content-Type to "application/json", writes the status code, and
// streams the body to the client.
func (app *applicationDependencies) writeJSON(w http.ResponseWriter, status int, payload any, headers http.Header) error {
	js, err := json.MarshalIndent(payload, "", "\t")
	if err != nil {
		return err
	}
	js = append(js, '\n') // Trailing newline makes curl output nicer.

	for key, value := range headers {
		w.Header()[key] = value
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(js)
	return nil
}

// readJSON decodes a single JSON value from the request body into dst.
// It enforces a 1 MB size limit and ensures the body contains exactly one
// JSON value. Unknown fields are ignored so clients may echo server-owned
// fields such as id or finished without being rejected.
func (app *applicationDependencies) readJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	const maxBytes = 1_048_576
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)

	dec := json.NewDecoder(r.Body)

	err := dec.Decode(dst)
	if err != nil {
		var (
			syntaxError        *json.SyntaxError
			unmarshalTypeError *json.UnmarshalTypeError
			maxBytesError      *http.MaxBytesError
		)

		switch {
		case errors.As(err, &syntaxError):
			return fmt.Errorf("body contains badly-formed JSON (at character %d)", syntaxError.Offset)
		case errors.Is(err, io.ErrUnexpectedEOF):
			return errors.New("body contains badly-formed JSON")
		case errors.As(err, &unmarshalTypeError):
			if unmarshalTypeError.Field != "" {
				return fmt.Errorf("body contains incorrect JSON type for field %q", unmarshalTypeError.Field)
			}
			return fmt.Errorf("body contains incorrect JSON type (at character %d)", unmarshalTypeError.Offset)
		case errors.Is(err, io.EOF):
			return errors.New("body must not be empty")
		case errors.As(err, &maxBytesError):
			return fmt.Errorf("body must not be larger than %d bytes", maxBytesError.Limit)
		default:
			return err
		}
	}

	// Ensure there is no second JSON value in the body.
	err = dec.Decode(&struct{}{})
	if !errors.Is(err, io.EOF) {
		return errors.New("body must only contain a single JSON value")
	}

	return nil
}
