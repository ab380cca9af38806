package itinerary

import (
	"testing"

	"github.com/bibincs/hackathonchatbot/pkg/store"
)

func TestNewHasCanonicalBuckets(t *testing.T) {
	it := New()

	for _, category := range []string{store.CategoryDining, store.CategoryShopping, store.CategoryRelax} {
		bucket, ok := it[category]
		if !ok {
			t.Errorf("bucket %q missing from a fresh itinerary", category)
		}
		if len(bucket) != 0 {
			t.Errorf("bucket %q should start empty, has %d entries", category, len(bucket))
		}
	}
}

func TestAddIsIdempotent(t *testing.T) {
	it := New()
	entry := store.ItineraryEntry{ID: "B01-UL001-IDA0100", Name: "Café Crema"}

	if !Add(it, store.CategoryDining, entry) {
		t.Fatal("first Add should append")
	}
	if Add(it, store.CategoryDining, entry) {
		t.Error("repeated Add of the same entry should be a no-op")
	}
	// Name match is case-insensitive
	if Add(it, store.CategoryDining, store.ItineraryEntry{ID: "B01-UL001-IDA0100", Name: "CAFÉ CREMA"}) {
		t.Error("case-variant duplicate should be a no-op")
	}
	if len(it[store.CategoryDining]) != 1 {
		t.Errorf("bucket has %d entries, want 1", len(it[store.CategoryDining]))
	}

	// Same name under a different id is a distinct venue
	if !Add(it, store.CategoryDining, store.ItineraryEntry{ID: "B01-UL002-IDC0200", Name: "Café Crema"}) {
		t.Error("same name with different id should append")
	}
}

func TestAddNormalizesAndCreatesBuckets(t *testing.T) {
	it := New()

	Add(it, "dining", store.ItineraryEntry{Name: "Sora Sushi"})
	if len(it[store.CategoryDining]) != 1 {
		t.Errorf("lowercase category should land in the Dining bucket")
	}

	Add(it, "wellness", store.ItineraryEntry{Name: "Quiet Spa"})
	if len(it["Wellness"]) != 1 {
		t.Errorf("unknown category should get its own title-cased bucket")
	}
}

func TestRemove(t *testing.T) {
	it := New()
	Add(it, store.CategoryShopping, store.ItineraryEntry{Name: "First"})
	Add(it, store.CategoryShopping, store.ItineraryEntry{Name: "Second"})
	Add(it, store.CategoryShopping, store.ItineraryEntry{Name: "Third"})

	Remove(it, "shopping", 1)

	bucket := it[store.CategoryShopping]
	if len(bucket) != 2 || bucket[0].Name != "First" || bucket[1].Name != "Third" {
		t.Errorf("Remove(1) left %+v, want [First Third]", bucket)
	}

	// Out-of-range and unknown categories are silent no-ops
	Remove(it, store.CategoryShopping, 5)
	Remove(it, store.CategoryShopping, -1)
	Remove(it, "nonexistent", 0)
	if len(it[store.CategoryShopping]) != 2 {
		t.Errorf("no-op removes changed the bucket: %+v", it[store.CategoryShopping])
	}
}
