// Package errs defines custom error types and utilities.
//
// Its purpose is to give every failure that reaches a client the same
// JSON shape (HTTPError), with optional field-level detail for
// validation failures, so the frontend can render meaningful messages.
package errs
