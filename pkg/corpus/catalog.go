package corpus

import (
	"strings"
)

// CatalogItem is one venue derived from a corpus record. Several items may
// share a normalized name (chains with multiple outlets); lookups
// disambiguate by concourse at match time.
type CatalogItem struct {
	ID          string   // primary location code, may be blank
	LocationIDs []string // all location codes, in corpus order
	Name        string
	Description string
	Concourse   string // decoded label of the primary location
	Categories  []string
	Image       string
}

// Index maps normalized English titles to their variant lists.
// Built once at startup, read-only afterwards: safe for concurrent use.
type Index struct {
	byKey map[string][]CatalogItem
	items []CatalogItem
}

// NewIndex builds the name lookup over the corpus. Only content blocks tagged
// language "en" are indexed; multi-lingual titles are never catalog-matched.
func NewIndex(records []Record) *Index {
	idx := &Index{byKey: make(map[string][]CatalogItem)}

	for _, record := range records {
		primary := ""
		concourse := ""
		if len(record.MapLocations) > 0 {
			primary = record.MapLocations[0]
			concourse = DecodeLocationCode(primary)
		}

		for _, block := range record.Content {
			if !strings.EqualFold(block.Language, "en") {
				continue
			}
			name := strings.TrimSpace(block.Title)
			if name == "" {
				continue
			}
			item := CatalogItem{
				ID:          primary,
				LocationIDs: record.MapLocations,
				Name:        name,
				Description: ReplaceLocationCodes(strings.TrimSpace(StripHTML(block.Body))),
				Concourse:   concourse,
				Categories:  record.Categories,
				Image:       block.Logo,
			}
			key := normalizeKey(name)
			idx.byKey[key] = append(idx.byKey[key], item)
			idx.items = append(idx.items, item)
		}
	}

	return idx
}

// MatchByName returns the variant list for the exact normalized key, or nil
func (idx *Index) MatchByName(name string) []CatalogItem {
	return idx.byKey[normalizeKey(name)]
}

// BestMatch resolves a model-proposed place name to a catalog item. Matching
// falls from exact normalized key through case-insensitive equality to
// substring containment; multiple variants are disambiguated by the gate's
// concourse letter, defaulting to the first variant in corpus order. A nil
// return is a valid outcome, not an error: the caller falls back to
// unstructured data.
func (idx *Index) BestMatch(place string, gate string) *CatalogItem {
	candidates := idx.MatchByName(place)

	if len(candidates) == 0 {
		for _, item := range idx.items {
			if strings.EqualFold(item.Name, place) {
				candidates = append(candidates, item)
			}
		}
	}
	if len(candidates) == 0 {
		lowered := strings.ToLower(place)
		for _, item := range idx.items {
			if strings.Contains(strings.ToLower(item.Name), lowered) {
				candidates = append(candidates, item)
			}
		}
	}

	if len(candidates) == 0 {
		return nil
	}
	if len(candidates) == 1 {
		return &candidates[0]
	}

	letter := ConcourseLetter(InferConcourse(gate))
	if letter != "" {
		for i := range candidates {
			if strings.Contains(candidates[i].Concourse, "Concourse "+letter) {
				return &candidates[i]
			}
		}
	}

	// Deterministic tie-break: first variant in corpus order
	return &candidates[0]
}

// Items returns every indexed catalog item in corpus order
func (idx *Index) Items() []CatalogItem {
	return idx.items
}

func normalizeKey(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
