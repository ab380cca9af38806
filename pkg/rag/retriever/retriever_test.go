package retriever

import (
	"log"
	"os"
	"strings"
	"testing"

	"github.com/bibincs/hackathonchatbot/pkg/rag/vector"
)

// identityEmbedder gives every text the same vector, so ranking reduces to
// input order and tests can reason about the filter tiers alone
type identityEmbedder struct{}

func (identityEmbedder) Generate(text string) ([]float32, error) {
	return []float32{1, 0}, nil
}

func buildRetriever(t *testing.T, texts []string) *Retriever {
	t.Helper()
	logger := log.New(os.Stderr, "", 0)
	store := vector.NewStore(identityEmbedder{}, logger)
	if err := store.Build(texts); err != nil {
		t.Fatalf("building test store: %v", err)
	}
	return NewRetriever(store, logger)
}

func TestRetrieveCuisineFilterWins(t *testing.T) {
	r := buildRetriever(t, []string{
		"Type: Dine\nTitle: Bangkok Spice\nLocations: Concourse B, Level 1\nContent: thai curries",
		"Type: Dine\nTitle: Roma\nLocations: Concourse A, Level 1\nContent: italian pasta",
		"Type: Shop\nTitle: Gift Stop\nLocations: Concourse A, Level 1\nContent: souvenirs",
	})

	got, err := r.Retrieve("somewhere to eat", "A3", "thai")
	if err != nil {
		t.Fatalf("Retrieve() error = %v", err)
	}
	if !strings.Contains(got, "Bangkok Spice") {
		t.Errorf("cuisine tier should keep the thai chunk, got:\n%s", got)
	}
	if strings.Contains(got, "Roma") || strings.Contains(got, "Gift Stop") {
		t.Errorf("cuisine tier should exclude non-matching chunks, got:\n%s", got)
	}
}

func TestRetrieveConcourseFilter(t *testing.T) {
	r := buildRetriever(t, []string{
		"Title: Near Gate\nLocations: Concourse A, Level 1\nContent: coffee",
		"Title: Far Away\nLocations: Concourse D, Level 2\nContent: coffee",
	})

	got, err := r.Retrieve("coffee", "A3", "")
	if err != nil {
		t.Fatalf("Retrieve() error = %v", err)
	}
	if !strings.Contains(got, "Near Gate") || strings.Contains(got, "Far Away") {
		t.Errorf("concourse tier should keep only Concourse A chunks, got:\n%s", got)
	}
}

func TestRetrieveFallsBackToWholeCorpus(t *testing.T) {
	r := buildRetriever(t, []string{
		"Title: Alpha\nLocations: Concourse A, Level 1\nContent: coffee",
		"Title: Beta\nLocations: Concourse B, Level 1\nContent: tea",
	})

	// Cuisine and gate both miss everything: the whole corpus is ranked
	got, err := r.Retrieve("klingon food", "Z99", "klingon")
	if err != nil {
		t.Fatalf("Retrieve() error = %v", err)
	}
	if !strings.Contains(got, "Alpha") || !strings.Contains(got, "Beta") {
		t.Errorf("full-corpus fallback should cover every chunk, got:\n%s", got)
	}
}

func TestRetrieveJoinsTopThree(t *testing.T) {
	r := buildRetriever(t, []string{"one", "two", "three", "four"})

	got, err := r.Retrieve("anything", "", "")
	if err != nil {
		t.Fatalf("Retrieve() error = %v", err)
	}
	if parts := strings.Split(got, "\n\n"); len(parts) != 3 {
		t.Errorf("Retrieve should return top 3 chunks joined by blank lines, got %d parts", len(parts))
	}
}

func TestCuisineAvailable(t *testing.T) {
	r := buildRetriever(t, []string{
		"Title: Bangkok Spice\nLocations: Concourse B, Level 1\nContent: thai curries",
	})

	if !r.CuisineAvailable("thai", "Concourse B") {
		t.Error("thai should be available on Concourse B")
	}
	if r.CuisineAvailable("thai", "Concourse A") {
		t.Error("thai should not be available on Concourse A")
	}
	if r.CuisineAvailable("sushi", "Concourse B") {
		t.Error("sushi is nowhere in the corpus")
	}
}
