package textindex

import (
	"math"
	"sort"
	"strings"
	"unicode"
)

// MaxVocabulary caps the vocabulary at the highest-frequency terms so
// memory and query cost stay constant regardless of catalog growth.
const MaxVocabulary = 1000

// Index is a term-frequency-inverse-document-frequency vector space fitted
// over a document corpus. It is built once per catalog load and is
// read-only afterwards, so concurrent queries need no synchronization.
type Index struct {
	vocabulary map[string]int // term -> vector column
	idf        []float64      // per-column inverse document frequency
	docVectors [][]float64    // l2-normalized, in corpus order
}

// Build fits an index over the given documents. Tokens are lowercased runs
// of letters and digits at least two characters long; stop words are
// dropped; the vocabulary keeps the MaxVocabulary terms with the highest
// total frequency (ties broken alphabetically).
func Build(docs []string) *Index {
	tokenized := make([][]string, len(docs))
	totalFreq := make(map[string]int)
	for i, doc := range docs {
		tokens := tokenize(doc)
		tokenized[i] = tokens
		for _, t := range tokens {
			totalFreq[t]++
		}
	}

	idx := &Index{
		vocabulary: buildVocabulary(totalFreq),
		docVectors: make([][]float64, len(docs)),
	}

	// Document frequency per vocabulary term.
	df := make([]int, len(idx.vocabulary))
	for _, tokens := range tokenized {
		seen := make(map[int]struct{}, len(tokens))
		for _, t := range tokens {
			if col, ok := idx.vocabulary[t]; ok {
				seen[col] = struct{}{}
			}
		}
		for col := range seen {
			df[col]++
		}
	}

	// Smoothed idf, as if one extra document contained every term.
	n := float64(len(docs))
	idx.idf = make([]float64, len(df))
	for col, d := range df {
		idx.idf[col] = math.Log((1+n)/(1+float64(d))) + 1
	}

	for i, tokens := range tokenized {
		idx.docVectors[i] = idx.vectorize(tokens)
	}

	return idx
}

// buildVocabulary assigns a vector column to each kept term. Columns are
// ordered alphabetically for determinism.
func buildVocabulary(totalFreq map[string]int) map[string]int {
	terms := make([]string, 0, len(totalFreq))
	for t := range totalFreq {
		terms = append(terms, t)
	}
	sort.Slice(terms, func(i, j int) bool {
		if totalFreq[terms[i]] != totalFreq[terms[j]] {
			return totalFreq[terms[i]] > totalFreq[terms[j]]
		}
		return terms[i] < terms[j]
	})
	if len(terms) > MaxVocabulary {
		terms = terms[:MaxVocabulary]
	}
	sort.Strings(terms)

	vocabulary := make(map[string]int, len(terms))
	for col, t := range terms {
		vocabulary[t] = col
	}
	return vocabulary
}

// vectorize produces the l2-normalized tf-idf vector for a token sequence.
// Out-of-vocabulary tokens contribute zero.
func (idx *Index) vectorize(tokens []string) []float64 {
	vec := make([]float64, len(idx.vocabulary))
	for _, t := range tokens {
		if col, ok := idx.vocabulary[t]; ok {
			vec[col] += idx.idf[col]
		}
	}

	var norm float64
	for _, v := range vec {
		norm += v * v
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for col := range vec {
			vec[col] /= norm
		}
	}
	return vec
}

// Query projects arbitrary text into the fitted vocabulary space.
func (idx *Index) Query(text string) []float64 {
	return idx.vectorize(tokenize(text))
}

// Similarities returns the cosine similarity between the query vector and
// every document vector, in corpus order. Vectors are normalized at build
// time so cosine reduces to a dot product; an all-zero vector scores 0.
func (idx *Index) Similarities(query []float64) []float64 {
	sims := make([]float64, len(idx.docVectors))
	for i, doc := range idx.docVectors {
		var dot float64
		for col, q := range query {
			dot += q * doc[col]
		}
		sims[i] = dot
	}
	return sims
}

// Len returns the number of documents the index was fitted over. Callers
// must treat a mismatch with their candidate set as a defect rather than
// padding scores silently.
func (idx *Index) Len() int {
	return len(idx.docVectors)
}

// VocabularySize returns the number of terms kept in the vocabulary.
func (idx *Index) VocabularySize() int {
	return len(idx.vocabulary)
}

// tokenize lowercases the text and splits it into runs of letters and
// digits, dropping single-character tokens and stop words.
func tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	tokens := fields[:0]
	for _, f := range fields {
		if len([]rune(f)) < 2 {
			continue
		}
		if _, ok := stopWords[f]; ok {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}
