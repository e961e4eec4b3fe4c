/*
Package patcher rewrites the public OpenAPI specification of a Sonatype IQ
Server into a document that client generators accept.

The document is patched in place by a fixed, ordered list of rules. Each rule
checks whether its change is still needed, so patching an already patched
document changes nothing and reports no fixes.

# Rules

The rules run in this order:

  - add-info: insert the info block (title, description, contact, license,
    version) when it is missing. An existing info block is kept as is.
  - add-security-scheme: declare the BasicAuth HTTP basic scheme.
  - add-global-security: require BasicAuth for every operation.
  - fix-applications-response: point GET /api/v2/applications at the
    application list schema.
  - inject-config-schemas: add SystemConfigProperty and SystemConfig.
  - fix-config-operations: type GET, PUT and DELETE /api/v2/config.
  - nullable-fields: mark properties the server returns as null.
  - add-password-field: add the write-only password properties.
  - add-missing-schema: add ApiThirdPartyScanTicketDTO.
  - fix-scan-ticket-response: return ApiThirdPartyScanTicketDTO from the
    third-party scan endpoint.
  - remove-paths: drop paths and methods whose definitions are unusable.
  - dedupe-tags: keep the first tag for each name.
  - rename-schemas: move schemas to valid names and rewrite every $ref.
  - normalize-schema-names: rename every remaining invalid schema name to
    PascalCase. This rule only runs when enabled explicitly.

A rule whose target is absent does nothing.

# Quick Start

	result, err := patcher.PatchWithOptions(
	    patcher.WithFetchResult(fetched),
	    patcher.WithVersion("1.185.0"),
	)
	if err != nil {
	    log.Fatal(err)
	}
	for _, fix := range result.Fixes {
	    fmt.Printf("%s: %s\n", fix.Type, fix.Description)
	}

Or use a reusable Patcher:

	p := patcher.New()
	p.Version = "1.185.0"
	p.EnabledRules = []patcher.RuleType{patcher.RuleTypeAddInfo}
	result, _ := p.Patch(doc)

# Fix Reporting

Every change is returned as a Fix and, when a Logger is configured, logged
at info level with the rule name and document location.
*/
package patcher
