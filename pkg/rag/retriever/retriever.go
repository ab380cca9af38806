package retriever

import (
	"log"
	"strings"

	"github.com/bibincs/hackathonchatbot/pkg/corpus"
	"github.com/bibincs/hackathonchatbot/pkg/rag/vector"
)

const topK = 3

// Retriever narrows the corpus by conversational context before similarity
// ranking. Filters fall through in tiers so a non-empty corpus always yields
// a non-empty context string.
type Retriever struct {
	store  *vector.Store
	logger *log.Logger
}

func NewRetriever(store *vector.Store, logger *log.Logger) *Retriever {
	return &Retriever{
		store:  store,
		logger: logger,
	}
}

// Retrieve builds the context string for a turn: top-3 ranked chunk texts
// joined by a blank line. Candidate tiers, first non-empty wins:
//  1. chunks containing the cuisine term (when a cuisine is given)
//  2. chunks containing the concourse label inferred from the gate
//  3. the whole corpus
func (r *Retriever) Retrieve(query, gate, cuisine string) (string, error) {
	chunks := r.store.Chunks()

	candidates := r.selectCandidates(chunks, gate, cuisine)

	queryVec, err := r.store.EmbedQuery(query)
	if err != nil {
		return "", err
	}

	top := vector.Rank(queryVec, candidates, topK)
	return strings.Join(top, "\n\n"), nil
}

func (r *Retriever) selectCandidates(chunks []vector.Chunk, gate, cuisine string) []vector.Chunk {
	if cuisine != "" {
		filtered := filterContaining(chunks, cuisine)
		if len(filtered) > 0 {
			r.logger.Printf("[RETRIEVE] Cuisine filter %q kept %d of %d chunks", cuisine, len(filtered), len(chunks))
			return filtered
		}
	}

	concourse := corpus.InferConcourse(gate)
	if concourse != "Unknown" {
		filtered := filterContaining(chunks, concourse)
		if len(filtered) > 0 {
			r.logger.Printf("[RETRIEVE] Concourse filter %q kept %d of %d chunks", concourse, len(filtered), len(chunks))
			return filtered
		}
	}

	return chunks
}

// CuisineAvailable reports whether any chunk mentions both the cuisine term
// and the concourse label. Plain substring containment, as the rest of the
// cuisine handling: it can match inside longer tokens.
func (r *Retriever) CuisineAvailable(cuisine, concourse string) bool {
	cuisine = strings.ToLower(cuisine)
	concourse = strings.ToLower(concourse)
	for _, c := range r.store.Chunks() {
		text := strings.ToLower(c.Text)
		if strings.Contains(text, cuisine) && strings.Contains(text, concourse) {
			return true
		}
	}
	return false
}

func filterContaining(chunks []vector.Chunk, term string) []vector.Chunk {
	term = strings.ToLower(term)
	var filtered []vector.Chunk
	for _, c := range chunks {
		if strings.Contains(strings.ToLower(c.Text), term) {
			filtered = append(filtered, c)
		}
	}
	return filtered
}
