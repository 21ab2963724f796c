package planner

import "strings"

// CatalogSnapshotItem is the slice of a catalog exercise the resolver
// needs: its identity, display name, and the names of its
// sub-exercise breakdown records.
type CatalogSnapshotItem struct {
	ID       string
	Name     string
	SubNames []string
}

// CatalogIndex resolves a preview exercise entry back to its catalog
// identity. Entries created by this package carry the catalog id
// explicitly, so resolution is a direct lookup; entries arriving from
// older previews without one fall back to name matching, first
// against sub-exercise names, then against top-level catalog names.
type CatalogIndex struct {
	byID      map[string]CatalogSnapshotItem
	bySubName map[string]string // normalized sub-exercise name -> owning catalog id
	byName    map[string]string // normalized catalog name -> catalog id
}

// NewCatalogIndex builds an index over a catalog snapshot. When two
// items collide on a name, the first one wins; catalog names are
// expected to be unique upstream.
func NewCatalogIndex(items []CatalogSnapshotItem) *CatalogIndex {
	ix := &CatalogIndex{
		byID:      make(map[string]CatalogSnapshotItem, len(items)),
		bySubName: make(map[string]string),
		byName:    make(map[string]string, len(items)),
	}
	for _, item := range items {
		ix.byID[item.ID] = item
		if _, dup := ix.byName[normalizeName(item.Name)]; !dup {
			ix.byName[normalizeName(item.Name)] = item.ID
		}
		for _, sub := range item.SubNames {
			key := normalizeName(sub)
			if _, dup := ix.bySubName[key]; !dup {
				ix.bySubName[key] = item.ID
			}
		}
	}
	return ix
}

// Resolve returns the catalog id for a preview entry, or ok=false
// when the entry matches nothing in the snapshot. Match order:
// explicit catalog reference on the entry, then sub-exercise name,
// then top-level catalog name.
func (ix *CatalogIndex) Resolve(entry PreviewExercise) (string, bool) {
	if entry.CatalogID != "" {
		if _, ok := ix.byID[entry.CatalogID]; ok {
			return entry.CatalogID, true
		}
	}
	key := normalizeName(entry.Name)
	if id, ok := ix.bySubName[key]; ok {
		return id, true
	}
	if id, ok := ix.byName[key]; ok {
		return id, true
	}
	return "", false
}

func normalizeName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
