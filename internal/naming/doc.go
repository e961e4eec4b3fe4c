// Package naming converts free-form names into OpenAPI component names.
//
// [ToPascalCase] treats every character that is not an ASCII letter or digit
// as a word separator and capitalizes the first letter of each word, keeping
// capitals already present. [IsIdentifier] reports whether a name already
// satisfies the component key pattern ^[a-zA-Z0-9.\-_]+$.
package naming
