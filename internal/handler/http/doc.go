// Package http exposes an [service.ItemStore] over HTTP.
//
// Every storage call is a POST to /api/storage/<rpc_name> with a JSON body
// holding the matching models request. Failures are answered with
// models.ErrorResponse, an HTTP status derived from the error kind and the
// X-Error-Code header. Tracing, logging, metrics, rate limiting, request
// timeouts, compression, bearer authentication and body integrity checks
// are handled here before a call reaches the item store.
package http
