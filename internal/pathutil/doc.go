// Package pathutil builds JSON pointer references and report locations for
// OpenAPI documents.
//
// # Reference Builders
//
//	ref := pathutil.SchemaRef("Pet")        // "#/components/schemas/Pet"
//	ref := pathutil.SchemaRef("a/b")        // "#/components/schemas/a~1b"
//
// [SchemaRefForms] also returns the percent-encoded spelling, which IQ
// Server emits for schema names containing spaces.
//
// # Locations
//
// [Location] joins path segments with dots for fix reports:
//
//	pathutil.Location("components", "schemas", "SystemConfig")
//	// "components.schemas.SystemConfig"
package pathutil
