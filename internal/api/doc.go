// Package api provides the request dispatcher for the Elastic Email HTTP API.
// It turns an endpoint name and a parameter mapping into an HTTP request,
// sends it, and decodes the response envelope into a typed result or an error.
//
// # Client Creation
//
// The package provides two ways to create a client:
//
//   - [NewClient]: Struct-based configuration for explicit, type-safe setup.
//   - [New]: Functional options pattern for flexible configuration.
//
// The API key is sent as the apikey parameter on every request.
//
// # Encoding
//
// Parameters are collected in a [Params] mapping, which owns every encoding
// rule: lists are joined with ";" and dropped when empty, empty optional
// scalars are dropped, booleans are sent as "true" or "false", and the
// headers_ and merge_ prefixes are applied to custom headers and merge fields.
//
// GET requests carry the parameters in the query string. POST requests use an
// application/x-www-form-urlencoded body, or multipart/form-data as soon as a
// request carries at least one [File].
//
// # Error Handling
//
// Two failure kinds exist:
//
//   - [apierrors.NetworkError]: the request never produced a response
//     (connection failure, timeout, cancelled context).
//   - [apierrors.APIError]: the service answered with a non-2xx status or an
//     envelope whose success flag is false. The provider's message is kept verbatim.
//
// The client never retries. Repeating a send would deliver the message twice.
//
// # Thread Safety
//
// The [Client] type is safe for concurrent use. Multiple goroutines may call
// methods on a single Client simultaneously.
package api
