package vector

import (
	"fmt"
	"log"
	"math"
	"sort"

	"github.com/bibincs/hackathonchatbot/pkg/embedding"
)

// Chunk is one embeddable unit of corpus text with its vector
type Chunk struct {
	Text      string
	Embedding []float32
}

// Store holds the embedded corpus in memory. It is built once at startup and
// never mutated afterwards, so concurrent reads need no synchronization.
type Store struct {
	provider embedding.EmbeddingProvider
	chunks   []Chunk
	logger   *log.Logger
}

func NewStore(provider embedding.EmbeddingProvider, logger *log.Logger) *Store {
	return &Store{
		provider: provider,
		logger:   logger,
	}
}

// Build embeds every chunk text in order, one provider call per chunk. Any
// failure aborts the whole build: a partially-embedded corpus is unusable.
func (s *Store) Build(texts []string) error {
	chunks := make([]Chunk, 0, len(texts))
	for i, text := range texts {
		vec, err := s.provider.Generate(text)
		if err != nil {
			return fmt.Errorf("embedding corpus chunk %d of %d: %w", i+1, len(texts), err)
		}
		chunks = append(chunks, Chunk{Text: text, Embedding: vec})
	}
	s.chunks = chunks
	s.logger.Printf("[STORE] Embedded %d corpus chunks", len(chunks))
	return nil
}

// Chunks returns the embedded corpus in build order
func (s *Store) Chunks() []Chunk {
	return s.chunks
}

// EmbedQuery embeds a single query string
func (s *Store) EmbedQuery(query string) ([]float32, error) {
	vec, err := s.provider.Generate(query)
	if err != nil {
		return nil, fmt.Errorf("embedding query: %w", err)
	}
	return vec, nil
}

// Rank returns the texts of the k candidates most similar to the query
// vector, highest similarity first. The sort is stable: ties keep the
// original candidate order.
func Rank(query []float32, candidates []Chunk, k int) []string {
	type scored struct {
		text  string
		score float64
	}

	results := make([]scored, len(candidates))
	for i, c := range candidates {
		results[i] = scored{text: c.Text, score: CosineSimilarity(query, c.Embedding)}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].score > results[j].score
	})

	if k > len(results) {
		k = len(results)
	}
	top := make([]string, k)
	for i := 0; i < k; i++ {
		top[i] = results[i].text
	}
	return top
}

// CosineSimilarity computes the cosine of the angle between two vectors.
// Mismatched or zero-magnitude vectors score 0.
func CosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
