package patcher

// Values written by the metadata rules.
const (
	InfoTitle       = "Sonatype IQ Server"
	InfoDescription = "This documents the available APIs into [Sonatype IQ Server]" +
		"(https://www.sonatype.com/products/open-source-security-dependency-management)."
	ContactName = "Sonatype Community Maintainers"
	ContactURL  = "https://github.com/sonatype-nexus-community"
	LicenseName = "Apache 2.0"
	LicenseURL  = "http://www.apache.org/licenses/LICENSE-2.0.html"

	// SecuritySchemeName is the name of the HTTP basic security scheme.
	SecuritySchemeName = "BasicAuth"
)

func infoBlock(version string) map[string]any {
	return map[string]any{
		"title":       InfoTitle,
		"description": InfoDescription,
		"contact": map[string]any{
			"name": ContactName,
			"url":  ContactURL,
		},
		"license": map[string]any{
			"name": LicenseName,
			"url":  LicenseURL,
		},
		"version": version,
	}
}

// addInfo inserts the info block. An existing info block is left alone,
// even when its version differs.
func (p *Patcher) addInfo(doc Document, result *PatchResult) {
	if doc.Has("info") {
		return
	}
	info := infoBlock(p.Version)
	doc["info"] = info
	p.record(result, Fix{
		Type:        RuleTypeAddInfo,
		Path:        "info",
		Description: "Adding `info`",
		After:       info,
	})
}

func (p *Patcher) addSecurityScheme(doc Document, result *PatchResult) {
	components, ok := doc.Components()
	if !ok {
		return
	}
	if _, exists := components["securitySchemes"]; exists {
		return
	}
	schemes := map[string]any{
		SecuritySchemeName: map[string]any{
			"type":   "http",
			"scheme": "basic",
		},
	}
	components["securitySchemes"] = schemes
	p.record(result, Fix{
		Type:        RuleTypeAddSecurityScheme,
		Path:        "components.securitySchemes",
		Description: "Adding `securitySchemes`",
		After:       schemes,
	})
}

func (p *Patcher) addGlobalSecurity(doc Document, result *PatchResult) {
	if doc.Has("security") {
		return
	}
	security := []any{
		map[string]any{SecuritySchemeName: []any{}},
	}
	doc["security"] = security
	p.record(result, Fix{
		Type:        RuleTypeAddGlobalSecurity,
		Path:        "security",
		Description: "Adding global `security` requirement",
		After:       security,
	})
}
