package patcher

import (
	"fmt"
	"strings"

	"github.com/sonatype-nexus-community/iqspec/internal/httputil"
	"github.com/sonatype-nexus-community/iqspec/internal/pathutil"
)

// Operation paths touched by the operation rules.
const (
	ApplicationsPath = "/api/v2/applications"
	ConfigPath       = "/api/v2/config"
	ScanSourcesPath  = "/api/v2/scan/applications/{applicationId}/sources/{source}"
)

// applicationListSchemas are the candidate targets for the GET
// /api/v2/applications response, newest first. The first one present in
// components.schemas wins; the last one is used when none is present.
var applicationListSchemas = []string{
	"ApiApplicationListDTOV2",
	"ApiApplicationListDTO",
}

// schemaRef returns a $ref object pointing at a component schema.
func schemaRef(name string) map[string]any {
	return map[string]any{"$ref": pathutil.SchemaRef(name)}
}

// jsonContent returns a content map with a single application/json entry.
func jsonContent(schema map[string]any) map[string]any {
	return map[string]any{
		httputil.MediaTypeJSON: map[string]any{"schema": schema},
	}
}

// opPath formats the location of an operation field for Fix.Path.
func opPath(path, method, field string) string {
	return pathutil.Location("paths", path, method, field)
}

// applicationListSchema picks the response schema for GET /api/v2/applications.
func applicationListSchema(doc Document) string {
	schemas, _ := doc.Schemas()
	for _, name := range applicationListSchemas {
		if _, ok := schemas[name]; ok {
			return name
		}
	}
	return applicationListSchemas[len(applicationListSchemas)-1]
}

func (p *Patcher) fixApplicationsResponse(doc Document, result *PatchResult) {
	op, ok := doc.Operation(ApplicationsPath, httputil.MethodGet)
	if !ok {
		return
	}
	target := applicationListSchema(doc)
	before := op["responses"]
	responses := map[string]any{
		httputil.ResponseDefault: map[string]any{
			"description": "default response",
			"content":     jsonContent(schemaRef(target)),
		},
	}
	if !setIfChanged(op, "responses", responses) {
		return
	}
	p.record(result, Fix{
		Type:        RuleTypeFixApplicationsResponse,
		Path:        opPath(ApplicationsPath, httputil.MethodGet, "responses"),
		Description: fmt.Sprintf("Fixing GET %s (response schema %s)", ApplicationsPath, target),
		Before:      before,
		After:       responses,
	})
}

// configParameterSchema is the schema of the "property" query parameter of
// GET and DELETE /api/v2/config.
func configParameterSchema() map[string]any {
	return map[string]any{
		"items":       schemaRef(SystemConfigPropertySchema),
		"type":        "array",
		"uniqueItems": true,
	}
}

// setFirstParameterSchema replaces the schema of the operation's first
// parameter. It reports false when the operation has no parameters.
func setFirstParameterSchema(op map[string]any, schema map[string]any) bool {
	params, ok := op["parameters"].([]any)
	if !ok || len(params) == 0 {
		return false
	}
	first, ok := asMap(params[0])
	if !ok {
		return false
	}
	return setIfChanged(first, "schema", schema)
}

// fieldEdit is one changed field of an operation, relative to the operation.
type fieldEdit struct {
	field string
	value any
}

// recordOperationFix records a single fix for the edits made to an
// operation. Path and After point at the edited field, or at the whole
// operation when several fields changed.
func (p *Patcher) recordOperationFix(result *PatchResult, ruleType RuleType, path, method string, op map[string]any, edits []fieldEdit) {
	if len(edits) == 0 {
		return
	}
	location := pathutil.Location("paths", path, method)
	var after any = op
	if len(edits) == 1 {
		location = pathutil.Location(location, edits[0].field)
		after = edits[0].value
	}
	p.record(result, Fix{
		Type:        ruleType,
		Path:        location,
		Description: fmt.Sprintf("Fixing %s %s", strings.ToUpper(method), path),
		After:       after,
	})
}

func (p *Patcher) fixConfigOperations(doc Document, result *PatchResult) {
	if op, ok := doc.Operation(ConfigPath, httputil.MethodDelete); ok {
		var edits []fieldEdit
		if param := configParameterSchema(); setFirstParameterSchema(op, param) {
			edits = append(edits, fieldEdit{"parameters.0.schema", param})
		}
		responses := map[string]any{
			httputil.StatusNoContent: map[string]any{
				"description": "System Configuration removed",
				"content":     map[string]any{},
			},
		}
		if setIfChanged(op, "responses", responses) {
			edits = append(edits, fieldEdit{"responses", responses})
		}
		p.recordOperationFix(result, RuleTypeFixConfigOperations, ConfigPath, httputil.MethodDelete, op, edits)
	}

	if op, ok := doc.Operation(ConfigPath, httputil.MethodGet); ok {
		var edits []fieldEdit
		if param := configParameterSchema(); setFirstParameterSchema(op, param) {
			edits = append(edits, fieldEdit{"parameters.0.schema", param})
		}
		responses := map[string]any{
			httputil.StatusOK: map[string]any{
				"description": "System Configuration retrieved",
				"content":     jsonContent(schemaRef(SystemConfigSchema)),
			},
		}
		if setIfChanged(op, "responses", responses) {
			edits = append(edits, fieldEdit{"responses", responses})
		}
		p.recordOperationFix(result, RuleTypeFixConfigOperations, ConfigPath, httputil.MethodGet, op, edits)
	}

	if op, ok := doc.Operation(ConfigPath, httputil.MethodPut); ok {
		var edits []fieldEdit
		body := map[string]any{
			"content": jsonContent(schemaRef(SystemConfigSchema)),
		}
		if setIfChanged(op, "requestBody", body) {
			edits = append(edits, fieldEdit{"requestBody", body})
		}
		responses := map[string]any{
			httputil.StatusNoContent: map[string]any{
				"description": "System Configuration updated",
				"content":     map[string]any{},
			},
		}
		if setIfChanged(op, "responses", responses) {
			edits = append(edits, fieldEdit{"responses", responses})
		}
		p.recordOperationFix(result, RuleTypeFixConfigOperations, ConfigPath, httputil.MethodPut, op, edits)
	}
}

// fixScanTicketResponse points the default JSON response of the third-party
// scan endpoint at ApiThirdPartyScanTicketDTO. The response must already
// declare application/json content.
func (p *Patcher) fixScanTicketResponse(doc Document, result *PatchResult) {
	op, ok := doc.Operation(ScanSourcesPath, httputil.MethodPost)
	if !ok {
		return
	}
	responses, ok := childMap(op, "responses")
	if !ok {
		return
	}
	defaultResp, ok := childMap(responses, httputil.ResponseDefault)
	if !ok {
		return
	}
	content, ok := childMap(defaultResp, "content")
	if !ok {
		return
	}
	media, ok := childMap(content, httputil.MediaTypeJSON)
	if !ok {
		return
	}
	before := media["schema"]
	if !setIfChanged(media, "schema", schemaRef(ScanTicketSchema)) {
		return
	}
	p.record(result, Fix{
		Type:        RuleTypeFixScanTicketResponse,
		Path:        opPath(ScanSourcesPath, httputil.MethodPost, "responses.default.content.application/json.schema"),
		Description: "Fixing POST " + ScanSourcesPath,
		Before:      before,
		After:       media["schema"],
	})
}
