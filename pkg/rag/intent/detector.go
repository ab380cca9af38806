package intent

import (
	"regexp"
	"strings"

	"github.com/bibincs/hackathonchatbot/pkg/store"
)

// Confirmation is the reading of a reply to a yes/no question
type Confirmation int

const (
	ConfirmUnclear Confirmation = iota
	ConfirmYes
	ConfirmNo
)

var addCommandPattern = regexp.MustCompile(
	`(?i)^\s*add\s+(.+?)\s+(?:to|into)\s+my\s+(dining|shopping|relax)\s+itinerary\s*[.!]*\s*$`,
)

var digitsPattern = regexp.MustCompile(`^\d+$`)

var affirmativeWords = []string{
	"yes", "yeah", "yep", "sure", "okay", "ok", "go ahead", "why not", "sounds good", "please do",
}

var negativeWords = []string{
	"no", "nope", "nah", "don't", "dont", "not really",
}

// Cuisine vocabulary for availability gating. Plain substring containment,
// so "thai" also fires inside longer tokens; that behavior is intentional.
var cuisineVocabulary = []string{
	"italian", "mexican", "american", "indian", "chinese", "japanese", "thai",
	"mediterranean", "asian", "arabic", "lebanese", "turkish", "french", "korean",
	"vegetarian", "vegan", "seafood", "steakhouse", "sushi",
}

var shoppingKeywords = []string{
	"shop", "store", "boutique", "retail", "perfume", "electronics", "gifts",
	"duty free", "watches", "clothes", "apparel", "shoes", "jewelry", "bags",
	"cosmetics", "accessories", "fashion", "toys", "books", "souvenirs",
	"luxury", "pharmacy", "newsstand", "liquor", "candy", "gadgets",
}

var diningKeywords = []string{
	"restaurant", "cafe", "bistro", "dine", "dining", "food", "bar", "lounge",
	"food court", "coffee", "snack", "breakfast", "lunch", "dinner", "eat",
	"hungry", "drink", "dessert", "pastries", "bakery", "grill", "buffet",
}

var relaxKeywords = []string{
	"sleep", "prayer", "spa", "rest", "massage", "relax", "quiet", "meditation",
	"yoga", "wellness", "fitness", "shower", "nap", "unwind", "sauna", "pool",
	"quiet room", "reading room",
}

// ParseAddCommand matches "add <place> to/into my <category> itinerary",
// case-insensitively. The returned category is in canonical title case.
func ParseAddCommand(message string) (place string, category string, ok bool) {
	m := addCommandPattern.FindStringSubmatch(message)
	if m == nil {
		return "", "", false
	}
	return strings.TrimSpace(m[1]), canonicalCategory(m[2]), true
}

// ParseNumericSelection reports whether the message is purely digits
func ParseNumericSelection(message string) (int, bool) {
	trimmed := strings.TrimSpace(message)
	if !digitsPattern.MatchString(trimmed) {
		return 0, false
	}
	n := 0
	for _, r := range trimmed {
		n = n*10 + int(r-'0')
	}
	return n, true
}

// ClassifyConfirmation reads a reply to a pending yes/no question by
// substring membership against fixed word sets, affirmative checked first
func ClassifyConfirmation(message string) Confirmation {
	lowered := strings.ToLower(message)
	for _, w := range affirmativeWords {
		if strings.Contains(lowered, w) {
			return ConfirmYes
		}
	}
	for _, w := range negativeWords {
		if strings.Contains(lowered, w) {
			return ConfirmNo
		}
	}
	return ConfirmUnclear
}

// DetectCuisine returns the first cuisine term found in the message, or ""
func DetectCuisine(message string) string {
	lowered := strings.ToLower(message)
	for _, cuisine := range cuisineVocabulary {
		if strings.Contains(lowered, cuisine) {
			return cuisine
		}
	}
	return ""
}

// DetectCategory infers the itinerary category implied by the user's wording.
// Unmatched messages fall back to the previous category; a blank previous
// category defaults to Dining.
func DetectCategory(message string, previous string) string {
	lowered := strings.ToLower(message)
	for _, kw := range shoppingKeywords {
		if strings.Contains(lowered, kw) {
			return store.CategoryShopping
		}
	}
	for _, kw := range diningKeywords {
		if strings.Contains(lowered, kw) {
			return store.CategoryDining
		}
	}
	for _, kw := range relaxKeywords {
		if strings.Contains(lowered, kw) {
			return store.CategoryRelax
		}
	}
	if previous != "" {
		return previous
	}
	return store.CategoryDining
}

// MatchCategory classifies arbitrary venue text into a canonical category,
// with no fallback: ok is false when nothing matches
func MatchCategory(text string) (string, bool) {
	lowered := strings.ToLower(text)
	for _, kw := range shoppingKeywords {
		if strings.Contains(lowered, kw) {
			return store.CategoryShopping, true
		}
	}
	for _, kw := range diningKeywords {
		if strings.Contains(lowered, kw) {
			return store.CategoryDining, true
		}
	}
	for _, kw := range relaxKeywords {
		if strings.Contains(lowered, kw) {
			return store.CategoryRelax, true
		}
	}
	return "", false
}

func canonicalCategory(raw string) string {
	switch strings.ToLower(raw) {
	case "dining":
		return store.CategoryDining
	case "shopping":
		return store.CategoryShopping
	case "relax":
		return store.CategoryRelax
	}
	// Permissive: unknown categories become their own title-cased bucket
	return TitleCase(raw)
}

// TitleCase uppercases the first letter and lowercases the rest
func TitleCase(s string) string {
	if s == "" {
		return s
	}
	lowered := strings.ToLower(s)
	return strings.ToUpper(lowered[:1]) + lowered[1:]
}
