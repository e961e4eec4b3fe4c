package testutil

import (
	"encoding/json"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v4"
)

// TestNewIQDocument verifies the fixture decodes and carries the shapes the
// patch rules look for.
func TestNewIQDocument(t *testing.T) {
	doc := NewIQDocument(t)

	assert.Equal(t, "3.0.1", doc["openapi"])
	assert.NotContains(t, doc, "info", "Fixture should start without info")
	assert.NotContains(t, doc, "security", "Fixture should start without security")

	paths, ok := doc["paths"].(map[string]any)
	require.True(t, ok, "paths should be an object")
	assert.Contains(t, paths, "/api/v2/applications")
	assert.Contains(t, paths, "/api/v2/config")
	assert.Contains(t, paths, "/api/v2/product/license")

	components := doc["components"].(map[string]any)
	schemas := components["schemas"].(map[string]any)
	assert.Contains(t, schemas, "SBOM vulnerability analysis request")
	assert.NotContains(t, schemas, "SystemConfig")

	tags := doc["tags"].([]any)
	assert.Len(t, tags, 5)
}

// TestNewIQDocumentIsFresh verifies each call returns an independent copy.
func TestNewIQDocumentIsFresh(t *testing.T) {
	first := NewIQDocument(t)
	second := NewIQDocument(t)

	delete(first, "paths")
	assert.Contains(t, second, "paths")
}

func TestNewSimpleIQDocument(t *testing.T) {
	doc := NewSimpleIQDocument()

	assert.Equal(t, "3.0.1", doc["openapi"])
	assert.Empty(t, doc["paths"])
	components := doc["components"].(map[string]any)
	assert.Empty(t, components["schemas"])
}

func TestNewSpecServer(t *testing.T) {
	srv := NewSpecServer(t, http.StatusOK, `{"openapi":"3.0.1"}`)

	resp, err := http.Get(srv.URL + PublicSpecPath)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"openapi":"3.0.1"}`, string(body))

	other, err := http.Get(srv.URL + "/api/v2/applications")
	require.NoError(t, err)
	defer func() { _ = other.Body.Close() }()
	assert.Equal(t, http.StatusNotFound, other.StatusCode)
}

// TestWriteTempJSON verifies that documents can be written to temporary JSON files.
func TestWriteTempJSON(t *testing.T) {
	doc := NewSimpleIQDocument()

	path := WriteTempJSON(t, doc)

	assert.FileExists(t, path, "Temporary JSON file should exist")
	assert.Equal(t, ".json", filepath.Ext(path), "File should have .json extension")
	assert.True(t, filepath.IsAbs(path), "Path should be absolute")

	data, err := os.ReadFile(path)
	require.NoError(t, err, "Should be able to read temp file")

	var parsed map[string]any
	require.NoError(t, json.Unmarshal(data, &parsed), "Should be able to unmarshal JSON")
	assert.Equal(t, "3.0.1", parsed["openapi"], "OpenAPI version should match")
	assert.Contains(t, string(data), "\n", "JSON should be indented with newlines")
}

func TestReadYAML(t *testing.T) {
	data, err := yaml.Marshal(map[string]any{
		"openapi": "3.0.1",
		"info":    map[string]any{"version": "1.185.0"},
	})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "openapi.yaml")
	require.NoError(t, os.WriteFile(path, data, 0600))

	doc := ReadYAML(t, path)
	assert.Equal(t, "3.0.1", doc["openapi"])
	info, ok := doc["info"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "1.185.0", info["version"])
}
