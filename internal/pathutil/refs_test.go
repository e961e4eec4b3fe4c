package pathutil

import "testing"

func TestSchemaRef(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"Pet", "#/components/schemas/Pet"},
		{"a/b", "#/components/schemas/a~1b"},
		{"a~b", "#/components/schemas/a~0b"},
		{"~/", "#/components/schemas/~0~1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SchemaRef(tt.name); got != tt.expected {
				t.Errorf("SchemaRef(%q) = %q, want %q", tt.name, got, tt.expected)
			}
		})
	}
}

func TestSchemaRefForms(t *testing.T) {
	forms := SchemaRefForms("Pet")
	if len(forms) != 1 || forms[0] != "#/components/schemas/Pet" {
		t.Errorf("SchemaRefForms(Pet) = %v", forms)
	}

	forms = SchemaRefForms("SBOM request")
	want := []string{"#/components/schemas/SBOM request", "#/components/schemas/SBOM%20request"}
	if len(forms) != len(want) {
		t.Fatalf("SchemaRefForms = %v, want %v", forms, want)
	}
	for i := range want {
		if forms[i] != want[i] {
			t.Errorf("SchemaRefForms[%d] = %q, want %q", i, forms[i], want[i])
		}
	}
}

func TestLocation(t *testing.T) {
	if got := Location("paths", "/api/v2/config", "get", "responses"); got != "paths./api/v2/config.get.responses" {
		t.Errorf("Location() = %q", got)
	}
	if got := Location(); got != "" {
		t.Errorf("Location() with no segments = %q, want empty", got)
	}
}
