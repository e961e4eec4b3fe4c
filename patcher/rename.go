package patcher

import (
	"fmt"
	"reflect"
	"slices"

	"github.com/sonatype-nexus-community/iqspec/internal/naming"
)

// SchemaRename moves a component schema from one name to another.
type SchemaRename struct {
	From string
	To   string
}

// DefaultSchemaRenames returns the renames applied by RuleTypeRenameSchemas
// when Patcher.SchemaRenames is not set.
func DefaultSchemaRenames() []SchemaRename {
	return []SchemaRename{
		{From: "SBOM vulnerability analysis request", To: "SBOMVulnerabilityAnalysisRequest"},
	}
}

type moveOutcome int

const (
	moveSkipped moveOutcome = iota
	moveDone
	moveConflict
)

// moveSchema moves schemas[from] to schemas[to] and rewrites references
// across the document. An existing target with identical content counts as
// an earlier move; an existing target with different content is a conflict
// and nothing changes.
func moveSchema(doc Document, schemas map[string]any, from, to string) (moveOutcome, int) {
	content, exists := schemas[from]
	if !exists || from == to {
		return moveSkipped, 0
	}
	if existing, taken := schemas[to]; taken && !reflect.DeepEqual(existing, content) {
		return moveConflict, 0
	}
	delete(schemas, from)
	schemas[to] = content
	return moveDone, RewriteSchemaRefs(doc, from, to)
}

func (p *Patcher) renameSchemas(doc Document, result *PatchResult) {
	schemas, ok := doc.Schemas()
	if !ok {
		return
	}
	for _, rename := range p.schemaRenames() {
		p.applyMove(doc, schemas, rename.From, rename.To, RuleTypeRenameSchemas, result)
	}
}

// normalizeSchemaNames renames every schema whose name is not a valid
// component name to its PascalCase form.
func (p *Patcher) normalizeSchemaNames(doc Document, result *PatchResult) {
	schemas, ok := doc.Schemas()
	if !ok {
		return
	}
	names := make([]string, 0, len(schemas))
	for name := range schemas {
		if !IsValidSchemaName(name) {
			names = append(names, name)
		}
	}
	slices.Sort(names)

	for _, name := range names {
		target := ToSchemaName(name)
		if target == "" {
			p.log().Warn("cannot derive a schema name", "schema", name)
			continue
		}
		p.applyMove(doc, schemas, name, target, RuleTypeNormalizeSchemaNames, result)
	}
}

func (p *Patcher) applyMove(doc Document, schemas map[string]any, from, to string, ruleType RuleType, result *PatchResult) {
	outcome, refs := moveSchema(doc, schemas, from, to)
	switch outcome {
	case moveConflict:
		p.log().Warn("schema rename target already exists with different content",
			"from", from, "to", to)
	case moveDone:
		p.record(result, Fix{
			Type:        ruleType,
			Path:        schemaPath(from),
			Description: fmt.Sprintf("Replacing schema %s with %s (%d reference(s) updated)", from, to, refs),
			Before:      from,
			After:       to,
		})
	}
}

// IsValidSchemaName reports whether name matches ^[a-zA-Z0-9.\-_]+$, the
// pattern OpenAPI 3 requires for component keys.
func IsValidSchemaName(name string) bool {
	return naming.IsIdentifier(name)
}

// ToSchemaName converts a free-form schema name to PascalCase, dropping
// every character that is not an ASCII letter or digit. Existing capitals
// are kept.
func ToSchemaName(s string) string {
	return naming.ToPascalCase(s)
}
