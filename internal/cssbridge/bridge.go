// Package cssbridge maps the builder's component vocabulary onto the class
// names of a CSS framework.
package cssbridge

import (
	"strings"

	"github.com/alexisbeaulieu97/forgeui/internal/model"
)

// DefaultVariant is the entry used when a requested variant is absent.
const DefaultVariant = "default"

// Table maps component type to variant to class string.
type Table map[string]map[string]string

// Lookup resolves a class string. A missing variant falls back to the type's
// default entry; an unknown type yields "".
func Lookup(table Table, componentType, variant string) string {
	variants, ok := table[componentType]
	if !ok {
		return ""
	}
	if variant != "" {
		if class, ok := variants[variant]; ok {
			return class
		}
	}
	return variants[DefaultVariant]
}

// Bridge holds the class tables of every supported CSS framework.
type Bridge struct {
	tables map[model.CSSFramework]Table
}

// New returns a bridge over the given tables. The map is copied; tables are
// treated as read-only.
func New(tables map[model.CSSFramework]Table) *Bridge {
	copied := make(map[model.CSSFramework]Table, len(tables))
	for fw, table := range tables {
		copied[fw] = table
	}
	return &Bridge{tables: copied}
}

// ClassFor returns the class string for a component part under fw. Vanilla
// output and unknown frameworks yield "".
func (b *Bridge) ClassFor(fw model.CSSFramework, componentType, variant string) string {
	if b == nil || fw.IsVanilla() {
		return ""
	}
	table, ok := b.tables[fw]
	if !ok {
		return ""
	}
	return strings.TrimSpace(Lookup(table, componentType, variant))
}

// Supports reports whether a class table is registered for fw.
func (b *Bridge) Supports(fw model.CSSFramework) bool {
	if b == nil {
		return false
	}
	_, ok := b.tables[fw]
	return ok
}
