// Package storeerr specifically handles document store driver errors.
//
// It classifies errors coming from the mongo driver and converts them
// into user-friendly HTTP errors (e.g., a duplicate key becomes a
// "Bad Request" naming the offending field).
package storeerr
