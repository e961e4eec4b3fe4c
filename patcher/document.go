package patcher

import (
	"reflect"

	"github.com/sonatype-nexus-community/iqspec/internal/httputil"
)

// Document is a decoded OpenAPI 3.x specification. Objects are
// map[string]any, arrays are []any and scalars are string, bool, int64,
// uint64 or float64, as produced by fetcher.Decode.
//
// Patch rules read the document through the accessors below. Each accessor
// returns false when a key is missing or holds a value of the wrong shape,
// and the calling rule treats that as "does not apply".
type Document map[string]any

// DocumentStats summarizes the size of a document.
type DocumentStats struct {
	PathCount      int
	OperationCount int
	SchemaCount    int
	TagCount       int
}

// Has reports whether the top-level key is present, whatever its value.
func (d Document) Has(key string) bool {
	_, ok := d[key]
	return ok
}

// Components returns the components object.
func (d Document) Components() (map[string]any, bool) {
	return childMap(d, "components")
}

// Schemas returns components.schemas.
func (d Document) Schemas() (map[string]any, bool) {
	components, ok := d.Components()
	if !ok {
		return nil, false
	}
	return childMap(components, "schemas")
}

// Schema returns the named schema under components.schemas.
func (d Document) Schema(name string) (map[string]any, bool) {
	schemas, ok := d.Schemas()
	if !ok {
		return nil, false
	}
	return childMap(schemas, name)
}

// Paths returns the paths object.
func (d Document) Paths() (map[string]any, bool) {
	return childMap(d, "paths")
}

// PathItem returns the path item for a path template.
func (d Document) PathItem(path string) (map[string]any, bool) {
	paths, ok := d.Paths()
	if !ok {
		return nil, false
	}
	return childMap(paths, path)
}

// Operation returns the operation for a path template and lower-case method.
func (d Document) Operation(path, method string) (map[string]any, bool) {
	item, ok := d.PathItem(path)
	if !ok {
		return nil, false
	}
	return childMap(item, method)
}

// Tags returns the top-level tags array.
func (d Document) Tags() ([]any, bool) {
	tags, ok := d["tags"].([]any)
	return tags, ok
}

// Stats counts paths, operations, schemas and tags.
func (d Document) Stats() DocumentStats {
	var stats DocumentStats
	if paths, ok := d.Paths(); ok {
		stats.PathCount = len(paths)
		for _, item := range paths {
			itemMap, ok := asMap(item)
			if !ok {
				continue
			}
			for key := range itemMap {
				if httputil.IsOperationMethod(key) {
					stats.OperationCount++
				}
			}
		}
	}
	if schemas, ok := d.Schemas(); ok {
		stats.SchemaCount = len(schemas)
	}
	if tags, ok := d.Tags(); ok {
		stats.TagCount = len(tags)
	}
	return stats
}

// Clone returns a deep copy of the document.
func (d Document) Clone() Document {
	if d == nil {
		return nil
	}
	return Document(deepCopyMap(d))
}

// asMap returns v as an object when it is one.
func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, m != nil
	case Document:
		return m, m != nil
	}
	return nil, false
}

// childMap returns parent[key] as an object when it is one.
func childMap(parent map[string]any, key string) (map[string]any, bool) {
	v, ok := parent[key]
	if !ok {
		return nil, false
	}
	return asMap(v)
}

// setIfChanged stores value under key and reports whether the stored value
// differs from what was there before.
func setIfChanged(m map[string]any, key string, value any) bool {
	if before, ok := m[key]; ok && reflect.DeepEqual(before, value) {
		return false
	}
	m[key] = value
	return true
}

func deepCopyMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = deepCopyValue(v)
	}
	return out
}

func deepCopyValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		return deepCopyMap(val)
	case Document:
		return deepCopyMap(val)
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = deepCopyValue(item)
		}
		return out
	default:
		return val
	}
}
