package naming

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ToPascalCase converts s to PascalCase. Non-ASCII letters are dropped.
//
//	"SBOM vulnerability analysis request" -> "SBOMVulnerabilityAnalysisRequest"
//	"page of (Application)"               -> "PageOfApplication"
func ToPascalCase(s string) string {
	if s == "" {
		return ""
	}
	titleCaser := cases.Title(language.English, cases.NoLower)

	var b strings.Builder
	b.Grow(len(s))

	capitalizeNext := true
	for _, r := range s {
		if !isASCIIAlnum(r) {
			// Non-ASCII letters are dropped without starting a new word.
			if r <= unicode.MaxASCII || !unicode.IsLetter(r) && !unicode.IsDigit(r) {
				capitalizeNext = true
			}
			continue
		}
		if capitalizeNext {
			b.WriteString(titleCaser.String(string(r)))
			capitalizeNext = false
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IsIdentifier reports whether name is non-empty and made only of ASCII
// letters, digits, '.', '-' and '_'.
func IsIdentifier(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		if !isASCIIAlnum(r) && r != '.' && r != '-' && r != '_' {
			return false
		}
	}
	return true
}

func isASCIIAlnum(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9'
}
