// Package icons builds name -> icon URL lookups from reference tables and
// layers fixed fallbacks on top of them.
package icons

import (
	"strings"

	"github.com/aramps/internal/table"
	"github.com/aramps/internal/textnorm"
)

// IconMap is an immutable name -> icon URL lookup. It keeps the raw
// (trimmed) names and the normalized names in separate indexes so a lookup
// can try an exact match before a fuzzy one. On duplicate keys the last row
// of the source table wins in both indexes.
type IconMap struct {
	raw        map[string]string
	normalized map[string]string
}

// NewIconMap builds a map from parallel name/icon pairs.
func NewIconMap(pairs map[string]string) *IconMap {
	m := empty()
	for name, icon := range pairs {
		m.put(name, icon)
	}
	return m
}

func empty() *IconMap {
	return &IconMap{
		raw:        make(map[string]string),
		normalized: make(map[string]string),
	}
}

func (m *IconMap) put(name, icon string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}
	m.raw[name] = icon
	m.normalized[textnorm.Normalize(name)] = icon
}

// BuildIconMap sniffs a name column and an icon column in t and indexes
// every row. A nil table or a missing column yields an empty map.
func BuildIconMap(t *table.Table, name, icon []table.Strategy) *IconMap {
	nameCol, ok := table.First(t, name...)
	if !ok {
		return empty()
	}
	iconCol, ok := table.First(t, icon...)
	if !ok {
		return empty()
	}
	return fromColumns(t, nameCol, iconCol)
}

// BuildPairedIconMap is BuildIconMap with the positional fallback of
// table.FindPairedColumns.
func BuildPairedIconMap(t *table.Table, name, icon []table.Strategy) *IconMap {
	nameCol, iconCol, ok := table.FindPairedColumns(t, name, icon)
	if !ok {
		return empty()
	}
	return fromColumns(t, nameCol, iconCol)
}

func fromColumns(t *table.Table, nameCol, iconCol string) *IconMap {
	m := empty()
	for i := 0; i < t.Len(); i++ {
		m.put(t.Value(i, nameCol), strings.TrimSpace(t.Value(i, iconCol)))
	}
	return m
}

// Lookup returns the icon for name, trying the raw trimmed name first and
// the normalized name second.
func (m *IconMap) Lookup(name string) (string, bool) {
	if m == nil {
		return "", false
	}
	if icon, ok := m.raw[strings.TrimSpace(name)]; ok {
		return icon, true
	}
	icon, ok := m.normalized[textnorm.Normalize(name)]
	return icon, ok
}

// Get is Lookup without the presence flag.
func (m *IconMap) Get(name string) string {
	icon, _ := m.Lookup(name)
	return icon
}

// Len returns the number of distinct raw names.
func (m *IconMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.raw)
}
