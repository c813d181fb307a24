package apiclient

import (
	"errors"
	"net/http"
	"net/url"
	"strings"
)

var errConflictingBody = errors.New("request cannot carry both a JSON and a multipart body")

// Request describes one outbound call before transport.
// JSON and Form are mutually exclusive; both nil means no body.
type Request struct {
	Method string
	// Path is appended to the resource base path, e.g. "/" + PathEscape(id).
	Path  string
	Query url.Values

	JSON any
	Form *Form

	// Anonymous marks calls that must not carry a credential (login).
	Anonymous bool

	// Fallback is the operation-specific message used when the backend gives none.
	Fallback string
}

func (r Request) validate() error {
	if r.JSON != nil && r.Form != nil {
		return errConflictingBody
	}
	switch r.method() {
	case http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return nil
	default:
		return errors.New("unsupported method " + r.Method)
	}
}

func (r Request) method() string {
	if r.Method == "" {
		return http.MethodGet
	}
	return strings.ToUpper(r.Method)
}

// RequiresAuth reports whether the executor attaches the bearer credential.
func (r Request) RequiresAuth() bool { return !r.Anonymous }

// PathEscape applies standard path-segment encoding to an identifier.
func PathEscape(segment string) string {
	return url.PathEscape(segment)
}

// Get builds a GET request.
func Get(path, fallback string) Request {
	return Request{Method: http.MethodGet, Path: path, Fallback: fallback}
}

// Post builds a POST request with a JSON body.
func Post(path string, body any, fallback string) Request {
	return Request{Method: http.MethodPost, Path: path, JSON: body, Fallback: fallback}
}

// Put builds a PUT request with a JSON body.
func Put(path string, body any, fallback string) Request {
	return Request{Method: http.MethodPut, Path: path, JSON: body, Fallback: fallback}
}

// Patch builds a PATCH request with a JSON body.
func Patch(path string, body any, fallback string) Request {
	return Request{Method: http.MethodPatch, Path: path, JSON: body, Fallback: fallback}
}

// Delete builds a DELETE request.
func Delete(path, fallback string) Request {
	return Request{Method: http.MethodDelete, Path: path, Fallback: fallback}
}

// Upload builds a multipart request.
func Upload(method, path string, form *Form, fallback string) Request {
	return Request{Method: method, Path: path, Form: form, Fallback: fallback}
}
