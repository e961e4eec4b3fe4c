package pathutil

import (
	"net/url"
	"strings"
)

// RefPrefixSchemas is the local JSON pointer prefix of component schemas.
const RefPrefixSchemas = "#/components/schemas/"

// EscapeToken escapes a JSON pointer reference token (RFC 6901).
func EscapeToken(token string) string {
	token = strings.ReplaceAll(token, "~", "~0")
	return strings.ReplaceAll(token, "/", "~1")
}

// SchemaRef builds "#/components/schemas/{name}" with name escaped.
func SchemaRef(name string) string {
	return RefPrefixSchemas + EscapeToken(name)
}

// SchemaRefForms returns every spelling of the reference to a schema found
// in generated documents: the raw pointer and, when it differs, the
// percent-encoded one.
func SchemaRefForms(name string) []string {
	raw := SchemaRef(name)
	encoded := RefPrefixSchemas + url.PathEscape(EscapeToken(name))
	if encoded == raw {
		return []string{raw}
	}
	return []string{raw, encoded}
}

// Location joins segments into the dotted form used in fix reports, for
// example "paths./api/v2/config.get.responses".
func Location(segments ...string) string {
	return strings.Join(segments, ".")
}
