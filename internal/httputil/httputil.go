// Package httputil provides HTTP method, media type and status constants
// shared by the fetcher and the patch rules.
package httputil

// HTTP methods as they appear as keys under an OpenAPI path item.
const (
	MethodGet     = "get"
	MethodPut     = "put"
	MethodPost    = "post"
	MethodDelete  = "delete"
	MethodOptions = "options"
	MethodHead    = "head"
	MethodPatch   = "patch"
	MethodTrace   = "trace"
)

// Media types.
const (
	MediaTypeJSON = "application/json"
)

// Response keys used in OpenAPI responses maps.
const (
	ResponseDefault = "default"
	StatusOK        = "200"
	StatusNoContent = "204"
)

// operationMethods lists every key of a path item that holds an operation.
var operationMethods = map[string]bool{
	MethodGet:     true,
	MethodPut:     true,
	MethodPost:    true,
	MethodDelete:  true,
	MethodOptions: true,
	MethodHead:    true,
	MethodPatch:   true,
	MethodTrace:   true,
}

// IsOperationMethod reports whether key names an operation under a path item,
// as opposed to "parameters", "summary", "servers" or an extension.
func IsOperationMethod(key string) bool {
	return operationMethods[key]
}

// IsSuccess reports whether an HTTP status code is in the 2xx range.
func IsSuccess(statusCode int) bool {
	return statusCode >= 200 && statusCode <= 299
}
