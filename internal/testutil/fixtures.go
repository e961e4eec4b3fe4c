// Package testutil provides test utilities and fixtures for unit tests.
package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"go.yaml.in/yaml/v4"

	"github.com/sonatype-nexus-community/iqspec/fetcher"
)

// PublicSpecPath is the path NewSpecServer answers on.
const PublicSpecPath = fetcher.PublicSpecPath

// IQDocumentJSON is a trimmed public specification as served by an IQ
// Server, before any patching. Every patch rule has something to change.
const IQDocumentJSON = `{
  "openapi": "3.0.1",
  "paths": {
    "/api/v2/applications": {
      "get": {
        "tags": ["Applications"],
        "operationId": "getApplications",
        "parameters": [
          {"name": "publicId", "in": "query", "schema": {"type": "array", "items": {"type": "string"}}}
        ],
        "responses": {
          "default": {
            "description": "default response",
            "content": {"application/json": {"schema": {"type": "object"}}}
          }
        }
      }
    },
    "/api/v2/config": {
      "get": {
        "tags": ["Configuration"],
        "operationId": "getConfiguration",
        "parameters": [
          {"name": "property", "in": "query", "required": true, "schema": {"type": "array", "items": {"type": "string"}}}
        ],
        "responses": {
          "default": {"description": "default response", "content": {"application/json": {}}}
        }
      },
      "put": {
        "tags": ["Configuration"],
        "operationId": "setConfiguration",
        "requestBody": {"content": {"application/json": {"schema": {"type": "object"}}}},
        "responses": {"default": {"description": "default response"}}
      },
      "delete": {
        "tags": ["Configuration"],
        "operationId": "deleteConfiguration",
        "parameters": [
          {"name": "property", "in": "query", "required": true, "schema": {"type": "array", "items": {"type": "string"}}}
        ],
        "responses": {"default": {"description": "default response"}}
      }
    },
    "/api/v2/config/saml": {
      "get": {
        "tags": ["SAML"],
        "operationId": "getSamlConfiguration",
        "responses": {"default": {"description": "default response"}}
      },
      "put": {
        "tags": ["SAML"],
        "operationId": "insertOrUpdateSamlConfiguration",
        "requestBody": {"content": {"multipart/form-data": {"schema": {"type": "object"}}}},
        "responses": {"default": {"description": "default response"}}
      }
    },
    "/api/v2/licenseLegalMetadata/customMultiApplication/report": {
      "post": {
        "tags": ["License Legal Metadata"],
        "operationId": "getLicenseLegalCustomMultiApplicationReport",
        "responses": {"default": {"description": "default response"}}
      }
    },
    "/api/v2/product/license": {
      "get": {
        "tags": ["Product License"],
        "operationId": "getLicense",
        "responses": {"default": {"description": "default response"}}
      }
    },
    "/api/v2/scan/applications/{applicationId}/sources/{source}": {
      "post": {
        "tags": ["Third-Party Analysis"],
        "operationId": "scanComponents",
        "parameters": [
          {"name": "applicationId", "in": "path", "required": true, "schema": {"type": "string"}},
          {"name": "source", "in": "path", "required": true, "schema": {"type": "string"}}
        ],
        "responses": {
          "default": {
            "description": "default response",
            "content": {"application/json": {"schema": {"type": "string"}}}
          }
        }
      }
    },
    "/api/v2/sbom/vulnerabilities": {
      "post": {
        "tags": ["SBOM"],
        "operationId": "analyzeVulnerabilities",
        "requestBody": {
          "content": {
            "application/json": {
              "schema": {"$ref": "#/components/schemas/SBOM vulnerability analysis request"}
            },
            "application/xml": {
              "schema": {"$ref": "#/components/schemas/SBOM%20vulnerability%20analysis%20request"}
            }
          }
        },
        "responses": {"default": {"description": "default response"}}
      }
    }
  },
  "components": {
    "schemas": {
      "ApiApplicationDTO": {
        "type": "object",
        "properties": {"id": {"type": "string"}, "publicId": {"type": "string"}, "name": {"type": "string"}}
      },
      "ApiApplicationListDTO": {
        "type": "object",
        "properties": {
          "applications": {"type": "array", "items": {"$ref": "#/components/schemas/ApiApplicationDTO"}}
        }
      },
      "ApiComponentDetailsDTOV2": {
        "type": "object",
        "properties": {
          "hygieneRating": {"type": "string"},
          "integrityRating": {"type": "string"},
          "relativePopularity": {"type": "integer", "format": "int32"},
          "matchState": {"type": "string"}
        }
      },
      "ApiComponentEvaluationResultDTOV2": {
        "type": "object",
        "properties": {"errorMessage": {"type": "string"}}
      },
      "ApiMailConfigurationDTO": {
        "type": "object",
        "properties": {"hostname": {"type": "string"}, "port": {"type": "integer", "format": "int32"}}
      },
      "ApiProxyServerConfigurationDTO": {
        "type": "object"
      },
      "SBOM vulnerability analysis request": {
        "type": "object",
        "properties": {
          "sbom": {"type": "string"},
          "parent": {"$ref": "#/components/schemas/SBOM vulnerability analysis request/properties/sbom"}
        }
      }
    }
  },
  "tags": [
    {"name": "Applications"},
    {"name": "Configuration"},
    {"name": "Applications", "description": "duplicate"},
    {"name": "SBOM"},
    {"name": "Configuration"}
  ]
}`

// NewIQDocument decodes IQDocumentJSON into a fresh document through
// fetcher.Decode, so values have the types a fetched document has.
func NewIQDocument(t *testing.T) map[string]any {
	t.Helper()

	doc, err := fetcher.Decode([]byte(IQDocumentJSON), "fixture")
	if err != nil {
		t.Fatalf("Failed to decode IQ document fixture: %v", err)
	}
	return doc
}

// NewSimpleIQDocument creates a minimal document with empty paths and
// schemas. No rule other than the metadata rules applies to it.
func NewSimpleIQDocument() map[string]any {
	return map[string]any{
		"openapi": "3.0.1",
		"paths":   map[string]any{},
		"components": map[string]any{
			"schemas": map[string]any{},
		},
	}
}

// NewSpecServer starts a server that answers PublicSpecPath with body and
// status, and 404 for every other path. It is closed when the test ends.
func NewSpecServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != PublicSpecPath {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

// WriteTempJSON marshals a document to JSON and writes it to a temporary file.
// Returns the path to the temporary file.
// The file is automatically cleaned up when the test completes (via t.TempDir).
func WriteTempJSON(t *testing.T, doc any) string {
	t.Helper()

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		t.Fatalf("Failed to marshal document to JSON: %v", err)
	}

	tmpFile := filepath.Join(t.TempDir(), "test.json")
	if err := os.WriteFile(tmpFile, data, 0600); err != nil {
		t.Fatalf("Failed to write temporary JSON file: %v", err)
	}

	return tmpFile
}

// ReadYAML reads a YAML file into a generic map.
func ReadYAML(t *testing.T, path string) map[string]any {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read %s: %v", path, err)
	}

	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		t.Fatalf("Failed to unmarshal YAML from %s: %v", path, err)
	}
	return doc
}
