// Package service contains the business logic.
//
// It sits between the handler and repository layers. It receives
// validated requests from the handlers, turns them into documents,
// calls the repositories and serializes what comes back. Store errors
// leave this layer already converted to *errs.HTTPError.
package service
