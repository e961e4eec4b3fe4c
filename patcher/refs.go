package patcher

import (
	"strings"

	"github.com/sonatype-nexus-community/iqspec/internal/pathutil"
)

// refRewriter rewrites $ref values that point at one schema so they point
// at another. Both the raw and the percent-encoded form of the old pointer
// are recognized, as are pointers into the schema ("<old>/properties/x").
type refRewriter struct {
	from []string
	to   string
}

func newRefRewriter(oldName, newName string) refRewriter {
	return refRewriter{from: pathutil.SchemaRefForms(oldName), to: pathutil.SchemaRef(newName)}
}

// rewrite returns the rewritten ref and whether it changed.
func (r refRewriter) rewrite(ref string) (string, bool) {
	for _, old := range r.from {
		if ref == old {
			return r.to, true
		}
		if strings.HasPrefix(ref, old+"/") {
			return r.to + ref[len(old):], true
		}
	}
	return ref, false
}

// walk rewrites every matching "$ref" string under node and returns the
// number of references changed. node is any decoded JSON value.
func (r refRewriter) walk(node any) int {
	count := 0
	switch v := node.(type) {
	case map[string]any:
		count += r.walkMap(v)
	case Document:
		count += r.walkMap(v)
	case []any:
		for _, item := range v {
			count += r.walk(item)
		}
	}
	return count
}

func (r refRewriter) walkMap(m map[string]any) int {
	count := 0
	for key, value := range m {
		if key == "$ref" {
			if ref, ok := value.(string); ok {
				if rewritten, changed := r.rewrite(ref); changed {
					m[key] = rewritten
					count++
				}
			}
			continue
		}
		count += r.walk(value)
	}
	return count
}

// RewriteSchemaRefs rewrites every reference to schema oldName found
// anywhere under node so that it points at newName, and returns the number
// of references changed.
func RewriteSchemaRefs(node any, oldName, newName string) int {
	return newRefRewriter(oldName, newName).walk(node)
}
