package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToPascalCase(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty string", input: "", want: ""},
		{name: "single lowercase letter", input: "a", want: "A"},
		{name: "single digit", input: "1", want: "1"},
		{name: "spaces", input: "SBOM vulnerability analysis request", want: "SBOMVulnerabilityAnalysisRequest"},
		{name: "parentheses", input: "page of (Application)", want: "PageOfApplication"},
		{name: "digits between words", input: "name with 2 parts", want: "NameWith2Parts"},
		{name: "snake_case", input: "snake_case_name", want: "SnakeCaseName"},
		{name: "kebab-case", input: "api-client", want: "ApiClient"},
		{name: "dots and slashes", input: "com.example/api", want: "ComExampleApi"},
		{name: "already pascal", input: "AlreadyPascal", want: "AlreadyPascal"},
		{name: "capitals kept", input: "the DTO list", want: "TheDTOList"},
		{name: "only punctuation", input: "!!!", want: ""},
		{name: "non-ascii letters dropped", input: "café menu", want: "CafMenu"},
		{name: "non-ascii inside word", input: "naïve", want: "Nave"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToPascalCase(tt.input)
			assert.Equal(t, tt.want, got)
			if got != "" {
				assert.True(t, IsIdentifier(got))
			}
		})
	}
}

func TestIsIdentifier(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"ApiApplicationDTO", true},
		{"a.b-c_d", true},
		{"1x", true},
		{"", false},
		{"has space", false},
		{"a/b", false},
		{"page of (Application)", false},
		{"Ünicode", false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, IsIdentifier(tt.input))
		})
	}
}
