package patcher

import (
	"fmt"
	"strings"

	"github.com/sonatype-nexus-community/iqspec/internal/httputil"
	"github.com/sonatype-nexus-community/iqspec/internal/pathutil"
)

// PathRemoval names a path to remove. With no Methods the whole path goes;
// otherwise only the listed methods are removed.
type PathRemoval struct {
	Path    string
	Methods []string
}

// pathRemovals lists endpoints whose definitions are too incomplete to
// generate clients from.
var pathRemovals = []PathRemoval{
	{Path: "/api/v2/licenseLegalMetadata/customMultiApplication/report"},
	{Path: "/api/v2/product/license"},
	{Path: "/api/v2/config/saml", Methods: []string{httputil.MethodPut}},
}

// PathRemovals returns the paths and methods removed by RuleTypeRemovePaths.
func PathRemovals() []PathRemoval {
	out := make([]PathRemoval, len(pathRemovals))
	copy(out, pathRemovals)
	return out
}

func (p *Patcher) removePaths(doc Document, result *PatchResult) {
	paths, ok := doc.Paths()
	if !ok {
		return
	}
	for _, removal := range pathRemovals {
		item, exists := paths[removal.Path]
		if !exists {
			continue
		}
		if len(removal.Methods) == 0 {
			delete(paths, removal.Path)
			p.record(result, Fix{
				Type:        RuleTypeRemovePaths,
				Path:        pathutil.Location("paths", removal.Path),
				Description: "Removing: " + removal.Path,
				Before:      item,
			})
			continue
		}

		itemMap, ok := asMap(item)
		if !ok {
			continue
		}
		var removed []string
		for _, method := range removal.Methods {
			if _, exists := itemMap[method]; !exists {
				continue
			}
			delete(itemMap, method)
			removed = append(removed, method)
		}
		if len(removed) == 0 {
			continue
		}
		p.record(result, Fix{
			Type:        RuleTypeRemovePaths,
			Path:        pathutil.Location("paths", removal.Path),
			Description: fmt.Sprintf("Removing: %s : [%s]", removal.Path, strings.Join(removed, ", ")),
		})
	}
}

// dedupeTags keeps the first tag for each name, preserving order. Entries
// without a string name are kept as they are.
func (p *Patcher) dedupeTags(doc Document, result *PatchResult) {
	tags, ok := doc.Tags()
	if !ok {
		return
	}

	seen := make(map[string]bool, len(tags))
	unique := make([]any, 0, len(tags))
	var dropped []string
	for _, tag := range tags {
		tagMap, ok := asMap(tag)
		if !ok {
			unique = append(unique, tag)
			continue
		}
		name, ok := tagMap["name"].(string)
		if !ok {
			unique = append(unique, tag)
			continue
		}
		if seen[name] {
			dropped = append(dropped, name)
			continue
		}
		seen[name] = true
		unique = append(unique, tag)
	}

	if len(dropped) == 0 {
		return
	}
	doc["tags"] = unique
	p.record(result, Fix{
		Type:        RuleTypeDedupeTags,
		Path:        "tags",
		Description: fmt.Sprintf("Ensuring tags are unique (dropped %d duplicate(s): %s)", len(dropped), strings.Join(dropped, ", ")),
		Before:      len(tags),
		After:       len(unique),
	})
}
