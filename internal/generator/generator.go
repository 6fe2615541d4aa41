// Package generator builds practice word sequences.
package generator

import (
	"math/rand"
	"time"

	"github.com/verte-zerg/fiasco/internal/model"
	"github.com/verte-zerg/fiasco/internal/wordlist"
)

// Generator produces randomized word lists from tiered vocabularies.
type Generator struct {
	rnd   *rand.Rand
	tiers wordlist.Tiers
}

// New returns a Generator over the built-in tiers seeded with the current time.
func New() *Generator {
	return NewWithSeed(time.Now().UnixNano())
}

// NewWithSeed returns a deterministic Generator.
func NewWithSeed(seed int64) *Generator {
	return &Generator{
		rnd:   rand.New(rand.NewSource(seed)),
		tiers: wordlist.DefaultTiers(),
	}
}

// WithTiers replaces the vocabulary and returns g.
func (g *Generator) WithTiers(t wordlist.Tiers) *Generator {
	g.tiers = t
	return g
}

// GenerateWordList draws count words uniformly, with replacement, from the
// vocabulary of difficulty d.
func (g *Generator) GenerateWordList(d model.Difficulty, count int) []string {
	return g.Generate(g.tiers.Vocabulary(d), count)
}

// Generate selects count words uniformly from words.
func (g *Generator) Generate(words []string, count int) []string {
	if count <= 0 || len(words) == 0 {
		return []string{}
	}
	result := make([]string, 0, count)
	for i := 0; i < count; i++ {
		result = append(result, words[g.rnd.Intn(len(words))])
	}
	return result
}
