package patcher

import (
	"fmt"
	"slices"

	"github.com/sonatype-nexus-community/iqspec/fetcher"
	"github.com/sonatype-nexus-community/iqspec/internal/options"
	"github.com/sonatype-nexus-community/iqspec/logging"
	"github.com/sonatype-nexus-community/iqspec/oaserrors"
)

// RuleType identifies a patch rule
type RuleType string

const (
	// RuleTypeAddInfo inserts the info block when it is missing
	RuleTypeAddInfo RuleType = "add-info"
	// RuleTypeAddSecurityScheme inserts the BasicAuth security scheme
	RuleTypeAddSecurityScheme RuleType = "add-security-scheme"
	// RuleTypeAddGlobalSecurity inserts the global BasicAuth requirement
	RuleTypeAddGlobalSecurity RuleType = "add-global-security"
	// RuleTypeFixApplicationsResponse fixes the GET /api/v2/applications response
	RuleTypeFixApplicationsResponse RuleType = "fix-applications-response"
	// RuleTypeInjectConfigSchemas adds SystemConfigProperty and SystemConfig
	RuleTypeInjectConfigSchemas RuleType = "inject-config-schemas"
	// RuleTypeFixConfigOperations fixes GET/PUT/DELETE /api/v2/config
	RuleTypeFixConfigOperations RuleType = "fix-config-operations"
	// RuleTypeNullableFields marks generator-omitted nullable properties
	RuleTypeNullableFields RuleType = "nullable-fields"
	// RuleTypeAddPasswordField adds write-only password properties
	RuleTypeAddPasswordField RuleType = "add-password-field"
	// RuleTypeAddMissingSchema adds ApiThirdPartyScanTicketDTO
	RuleTypeAddMissingSchema RuleType = "add-missing-schema"
	// RuleTypeFixScanTicketResponse points the third-party scan response at ApiThirdPartyScanTicketDTO
	RuleTypeFixScanTicketResponse RuleType = "fix-scan-ticket-response"
	// RuleTypeRemovePaths removes paths and methods with unusable definitions
	RuleTypeRemovePaths RuleType = "remove-paths"
	// RuleTypeDedupeTags keeps the first tag for each name
	RuleTypeDedupeTags RuleType = "dedupe-tags"
	// RuleTypeRenameSchemas renames schemas and rewrites references to them
	RuleTypeRenameSchemas RuleType = "rename-schemas"
	// RuleTypeNormalizeSchemaNames renames every schema whose name is not a
	// valid identifier. It only runs when enabled explicitly.
	RuleTypeNormalizeSchemaNames RuleType = "normalize-schema-names"
)

// rule pairs a RuleType with the function that applies it
type rule struct {
	Type  RuleType
	apply func(p *Patcher, doc Document, result *PatchResult)
}

// rules is the fixed application order
var rules = []rule{
	{RuleTypeAddInfo, (*Patcher).addInfo},
	{RuleTypeAddSecurityScheme, (*Patcher).addSecurityScheme},
	{RuleTypeAddGlobalSecurity, (*Patcher).addGlobalSecurity},
	{RuleTypeFixApplicationsResponse, (*Patcher).fixApplicationsResponse},
	{RuleTypeInjectConfigSchemas, (*Patcher).injectConfigSchemas},
	{RuleTypeFixConfigOperations, (*Patcher).fixConfigOperations},
	{RuleTypeNullableFields, (*Patcher).fixNullableFields},
	{RuleTypeAddPasswordField, (*Patcher).addPasswordFields},
	{RuleTypeAddMissingSchema, (*Patcher).addMissingSchemas},
	{RuleTypeFixScanTicketResponse, (*Patcher).fixScanTicketResponse},
	{RuleTypeRemovePaths, (*Patcher).removePaths},
	{RuleTypeDedupeTags, (*Patcher).dedupeTags},
	{RuleTypeRenameSchemas, (*Patcher).renameSchemas},
	{RuleTypeNormalizeSchemaNames, (*Patcher).normalizeSchemaNames},
}

// AllRules returns every rule type in application order.
func AllRules() []RuleType {
	out := make([]RuleType, len(rules))
	for i, r := range rules {
		out[i] = r.Type
	}
	return out
}

// IsValidRule reports whether name is a known rule type.
func IsValidRule(name string) bool {
	return slices.Contains(AllRules(), RuleType(name))
}

// Fix represents a single change made to the document
type Fix struct {
	// Type is the rule that made the change
	Type RuleType
	// Path is the location of the change (e.g., "paths./api/v2/config.get.responses")
	Path string
	// Description is a human-readable description of the change
	Description string
	// Before is the value before the change (nil if the element was added)
	Before any
	// After is the value after the change (nil if the element was removed)
	After any
}

// PatchResult contains the results of a patch operation
type PatchResult struct {
	// Document is the patched document. It is the same map that was passed in.
	Document Document
	// Version is the IQ Server version written to info.version
	Version string
	// Fixes contains every change made, in order
	Fixes []Fix
	// FixCount is the number of changes made
	FixCount int
	// Stats describes the document after patching
	Stats DocumentStats
}

// HasFixes returns true if any change was made
func (r *PatchResult) HasFixes() bool {
	return r.FixCount > 0
}

// FixesByRule returns the fixes made by one rule.
func (r *PatchResult) FixesByRule(t RuleType) []Fix {
	var out []Fix
	for _, f := range r.Fixes {
		if f.Type == t {
			out = append(out, f)
		}
	}
	return out
}

// Patcher applies the IQ Server patch rules to a document
type Patcher struct {
	// Version is the IQ Server version used for info.version. Required.
	Version string
	// EnabledRules restricts which rules run. If empty, every rule except
	// RuleTypeNormalizeSchemaNames runs.
	EnabledRules []RuleType
	// NormalizeSchemaNames also enables RuleTypeNormalizeSchemaNames.
	NormalizeSchemaNames bool
	// SchemaRenames lists explicit renames applied by RuleTypeRenameSchemas.
	// Defaults to DefaultSchemaRenames.
	SchemaRenames []SchemaRename
	// Logger receives one info line per change. Nil disables logging.
	Logger logging.Logger
}

// New creates a new Patcher instance with default settings
func New() *Patcher {
	return &Patcher{
		SchemaRenames: DefaultSchemaRenames(),
	}
}

// Option is a function that configures a patch operation
type Option func(*patchConfig) error

// patchConfig holds configuration for a patch operation
type patchConfig struct {
	// Input source (exactly one must be set)
	document *Document
	fetched  *fetcher.FetchResult

	version              string
	enabledRules         []RuleType
	normalizeSchemaNames bool
	logger               logging.Logger
}

// PatchWithOptions patches a document using functional options.
//
// Example:
//
//	result, err := patcher.PatchWithOptions(
//	    patcher.WithFetchResult(fetched),
//	    patcher.WithVersion("1.185.0"),
//	)
func PatchWithOptions(opts ...Option) (*PatchResult, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("patcher: invalid options: %w", err)
	}

	p := New()
	p.Version = cfg.version
	p.EnabledRules = cfg.enabledRules
	p.NormalizeSchemaNames = cfg.normalizeSchemaNames
	p.Logger = cfg.logger

	if cfg.fetched != nil {
		return p.Patch(Document(cfg.fetched.Document))
	}
	return p.Patch(*cfg.document)
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*patchConfig, error) {
	cfg := &patchConfig{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if err := options.ValidateSingleInputSource("input",
		"no input source specified: use WithDocument or WithFetchResult",
		"multiple input sources specified: use only one of WithDocument or WithFetchResult",
		cfg.document != nil, cfg.fetched != nil,
	); err != nil {
		return nil, err
	}

	return cfg, nil
}

// WithDocument specifies the document to patch in place
func WithDocument(doc Document) Option {
	return func(cfg *patchConfig) error {
		if doc == nil {
			return &oaserrors.ConfigError{Option: "document", Message: "cannot be nil"}
		}
		cfg.document = &doc
		return nil
	}
}

// WithFetchResult patches the document of a fetch result in place
func WithFetchResult(result *fetcher.FetchResult) Option {
	return func(cfg *patchConfig) error {
		if result == nil || result.Document == nil {
			return &oaserrors.ConfigError{Option: "fetch result", Message: "has no document"}
		}
		cfg.fetched = result
		return nil
	}
}

// WithVersion sets the IQ Server version used for info.version
func WithVersion(version string) Option {
	return func(cfg *patchConfig) error {
		cfg.version = version
		return nil
	}
}

// WithEnabledRules restricts patching to the given rules
func WithEnabledRules(ruleTypes ...RuleType) Option {
	return func(cfg *patchConfig) error {
		for _, rt := range ruleTypes {
			if !IsValidRule(string(rt)) {
				return &oaserrors.ConfigError{Option: "enabled rules", Value: rt, Message: "unknown rule"}
			}
		}
		cfg.enabledRules = ruleTypes
		return nil
	}
}

// WithNormalizeSchemaNames enables renaming of schemas with invalid names
func WithNormalizeSchemaNames(enabled bool) Option {
	return func(cfg *patchConfig) error {
		cfg.normalizeSchemaNames = enabled
		return nil
	}
}

// WithLogger sets the logger that receives progress lines
func WithLogger(logger logging.Logger) Option {
	return func(cfg *patchConfig) error {
		cfg.logger = logger
		return nil
	}
}

// Patch applies every enabled rule, in order, to doc. The document is
// modified in place and also returned in the result.
func (p *Patcher) Patch(doc Document) (*PatchResult, error) {
	if doc == nil {
		return nil, fmt.Errorf("patcher: %w", &oaserrors.ConfigError{Option: "document", Message: "cannot be nil"})
	}
	if err := options.RequireNonEmpty("version", p.Version); err != nil {
		return nil, fmt.Errorf("patcher: %w", err)
	}

	result := &PatchResult{
		Document: doc,
		Version:  p.Version,
		Fixes:    make([]Fix, 0),
	}

	for _, r := range rules {
		if !p.isRuleEnabled(r.Type) {
			continue
		}
		p.log().Debug("applying rule", "rule", string(r.Type))
		r.apply(p, doc, result)
	}

	result.FixCount = len(result.Fixes)
	result.Stats = doc.Stats()
	return result, nil
}

// isRuleEnabled checks if a rule type is enabled
func (p *Patcher) isRuleEnabled(ruleType RuleType) bool {
	if ruleType == RuleTypeNormalizeSchemaNames && p.NormalizeSchemaNames {
		return true
	}
	if len(p.EnabledRules) == 0 {
		return ruleType != RuleTypeNormalizeSchemaNames
	}
	return slices.Contains(p.EnabledRules, ruleType)
}

// log returns the configured logger, or a no-op logger if none is set.
func (p *Patcher) log() logging.Logger {
	return logging.OrNop(p.Logger)
}

// record appends a fix to the result and reports it as a progress line.
func (p *Patcher) record(result *PatchResult, fix Fix) {
	result.Fixes = append(result.Fixes, fix)
	p.log().Info(fix.Description, "rule", string(fix.Type), "path", fix.Path)
}

func (p *Patcher) schemaRenames() []SchemaRename {
	if p.SchemaRenames == nil {
		return DefaultSchemaRenames()
	}
	return p.SchemaRenames
}
