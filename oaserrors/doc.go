// Package oaserrors provides structured error types for iqspec.
//
// Every failure the tool can hit while fetching, decoding or writing a
// specification is reported as one of the types below. Callers can branch
// on the category with [errors.Is] and pull out details with [errors.As].
//
// # Error Types
//
//   - [UsageError]: wrong command-line invocation
//   - [ConfigError]: invalid options passed to a package
//   - [FetchError]: network failure or non-2xx response from the IQ Server
//   - [ParseError]: response body that is not a JSON object
//   - [WriteError]: output that could not be marshaled or written
//
// # Sentinel Errors
//
// Each type matches its sentinel: [ErrUsage], [ErrConfig], [ErrFetch],
// [ErrParse] and [ErrWrite].
//
//	fetched, err := fetcher.FetchWithOptions(fetcher.WithServerURL(url))
//	if errors.Is(err, oaserrors.ErrFetch) {
//	    var fetchErr *oaserrors.FetchError
//	    if errors.As(err, &fetchErr) && fetchErr.StatusCode == http.StatusUnauthorized {
//	        // the public spec endpoint should not need credentials
//	    }
//	}
package oaserrors
