// Package errs defines the error types surfaced by the data-access layer.
//
// Two families live here:
//   - store errors (StoreUnavailableError, DuplicateEmailError,
//     QueryConstructionError) returned by repositories and services
//   - HTTPError, the consistent shape an API layer renders to clients
//
// sqlerr.HandleError bridges the first family into the second.
package errs
