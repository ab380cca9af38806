package itinerary

import (
	"strings"

	"github.com/bibincs/hackathonchatbot/pkg/rag/intent"
	"github.com/bibincs/hackathonchatbot/pkg/store"
)

// New returns an itinerary with the three canonical category buckets present.
// The buckets exist even before any save; callers rely on that invariant.
func New() map[string][]store.ItineraryEntry {
	return map[string][]store.ItineraryEntry{
		store.CategoryDining:   {},
		store.CategoryShopping: {},
		store.CategoryRelax:    {},
	}
}

// Add appends an entry to a category bucket, creating the bucket if absent.
// Adding an entry whose normalized name and id both match an existing entry
// in the bucket is a no-op, so repeated saves stay idempotent. Returns true
// when the entry was actually appended.
func Add(it map[string][]store.ItineraryEntry, category string, entry store.ItineraryEntry) bool {
	category = intent.TitleCase(category)

	bucket, ok := it[category]
	if !ok {
		bucket = []store.ItineraryEntry{}
	}

	name := strings.ToLower(entry.Name)
	for _, existing := range bucket {
		if strings.ToLower(existing.Name) == name && existing.ID == entry.ID {
			return false
		}
	}

	it[category] = append(bucket, entry)
	return true
}

// Remove deletes the entry at index from a category bucket, preserving the
// order of the remaining entries. Absent categories and out-of-bounds
// indexes are silent no-ops.
func Remove(it map[string][]store.ItineraryEntry, category string, index int) {
	category = intent.TitleCase(category)

	bucket, ok := it[category]
	if !ok || index < 0 || index >= len(bucket) {
		return
	}

	it[category] = append(bucket[:index], bucket[index+1:]...)
}
