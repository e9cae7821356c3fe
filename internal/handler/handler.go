// Package handler is the HTTP entry point for business logic, right
// after the router.
//
// Handlers receive requests already bound and validated by Handle,
// call the service layer and return what should be written back.
package handler
