// Package errs defines the error type the API returns to clients.
//
// Every failure that reaches a client is an HTTPError: an HTTP status plus a
// message, serialized as {"error": message}. The service layer builds these
// for business-rule violations (not-found, missing fields, wrong-typed
// values); the global error handler in the middleware package writes them.
package errs
