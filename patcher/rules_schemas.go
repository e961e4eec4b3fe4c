package patcher

import (
	"fmt"

	"github.com/sonatype-nexus-community/iqspec/internal/pathutil"
)

// Schema names used by the schema rules.
const (
	SystemConfigPropertySchema = "SystemConfigProperty"
	SystemConfigSchema         = "SystemConfig"
	ScanTicketSchema           = "ApiThirdPartyScanTicketDTO"
)

// nullableProperties lists properties the generator emits without
// nullable: true although the server returns null for them.
var nullableProperties = []struct {
	Schema     string
	Properties []string
}{
	{"ApiComponentDetailsDTOV2", []string{"hygieneRating", "integrityRating", "relativePopularity"}},
	{"ApiComponentEvaluationResultDTOV2", []string{"errorMessage"}},
}

// passwordSchemas lists schemas whose write-only password property is
// dropped by the generator.
var passwordSchemas = []string{
	"ApiMailConfigurationDTO",
	"ApiProxyServerConfigurationDTO",
}

func systemConfigPropertyDefinition() map[string]any {
	return map[string]any{
		"type": "string",
		"enum": []any{"baseUrl", "forceBaseUrl"},
	}
}

func systemConfigDefinition() map[string]any {
	return map[string]any{
		"properties": map[string]any{
			"baseUrl": map[string]any{
				"nullable": true,
				"type":     "string",
			},
			"forceBaseUrl": map[string]any{
				"nullable": true,
				"type":     "boolean",
			},
		},
	}
}

func scanTicketDefinition() map[string]any {
	return map[string]any{
		"properties": map[string]any{
			"statusUrl": map[string]any{"type": "string"},
		},
	}
}

// injectConfigSchemas adds the schemas used by the /api/v2/config fixes.
// It runs only while SystemConfig is missing.
func (p *Patcher) injectConfigSchemas(doc Document, result *PatchResult) {
	schemas, ok := doc.Schemas()
	if !ok {
		return
	}
	if _, exists := schemas[SystemConfigSchema]; exists {
		return
	}

	property := systemConfigPropertyDefinition()
	if setIfChanged(schemas, SystemConfigPropertySchema, property) {
		p.record(result, Fix{
			Type:        RuleTypeInjectConfigSchemas,
			Path:        schemaPath(SystemConfigPropertySchema),
			Description: "Injecting schema: " + SystemConfigPropertySchema,
			After:       property,
		})
	}

	config := systemConfigDefinition()
	schemas[SystemConfigSchema] = config
	p.record(result, Fix{
		Type:        RuleTypeInjectConfigSchemas,
		Path:        schemaPath(SystemConfigSchema),
		Description: "Injecting schema: " + SystemConfigSchema,
		After:       config,
	})
}

func (p *Patcher) fixNullableFields(doc Document, result *PatchResult) {
	for _, entry := range nullableProperties {
		schema, ok := doc.Schema(entry.Schema)
		if !ok {
			continue
		}
		props, ok := childMap(schema, "properties")
		if !ok {
			continue
		}
		for _, name := range entry.Properties {
			prop, ok := childMap(props, name)
			if !ok {
				continue
			}
			if !setIfChanged(prop, "nullable", true) {
				continue
			}
			p.record(result, Fix{
				Type:        RuleTypeNullableFields,
				Path:        pathutil.Location(schemaPath(entry.Schema), "properties", name),
				Description: fmt.Sprintf("Fixing schema: %s (%s is nullable)", entry.Schema, name),
				After:       true,
			})
		}
	}
}

func (p *Patcher) addPasswordFields(doc Document, result *PatchResult) {
	for _, name := range passwordSchemas {
		schema, ok := doc.Schema(name)
		if !ok {
			continue
		}
		props, ok := childMap(schema, "properties")
		if !ok {
			props = map[string]any{}
			schema["properties"] = props
		}
		if !setIfChanged(props, "password", map[string]any{"type": "string"}) {
			continue
		}
		p.record(result, Fix{
			Type:        RuleTypeAddPasswordField,
			Path:        pathutil.Location(schemaPath(name), "properties", "password"),
			Description: fmt.Sprintf("Fixing schema: %s (adding password)", name),
			After:       props["password"],
		})
	}
}

func (p *Patcher) addMissingSchemas(doc Document, result *PatchResult) {
	schemas, ok := doc.Schemas()
	if !ok {
		return
	}
	if _, exists := schemas[ScanTicketSchema]; exists {
		return
	}
	def := scanTicketDefinition()
	schemas[ScanTicketSchema] = def
	p.record(result, Fix{
		Type:        RuleTypeAddMissingSchema,
		Path:        schemaPath(ScanTicketSchema),
		Description: "Adding schema: " + ScanTicketSchema,
		After:       def,
	})
}

// schemaPath formats the location of a component schema for Fix.Path.
func schemaPath(name string) string {
	return pathutil.Location("components", "schemas", name)
}
