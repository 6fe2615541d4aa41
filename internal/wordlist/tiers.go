package wordlist

import "github.com/verte-zerg/fiasco/internal/model"

var baseWords = []string{
	"time", "world", "game", "fast", "type", "learn", "focus", "challenge",
	"speed", "accurate", "keyboard", "practice", "score", "timer", "random",
	"sharp", "skill", "round", "target", "clean", "mobile", "desktop",
	"script", "design", "shadow", "button", "letter", "space", "press",
	"update", "reset", "start", "finish", "record", "smooth", "sound",
	"player", "level", "hard", "easy", "medium", "number", "punctuation",
	"planet", "galaxy", "ocean", "forest", "mountain", "desert",
}

var mediumWords = []string{
	"studio", "syntax", "browser", "pointer", "dynamic", "network", "latency",
	"storage", "render", "battery", "bundle", "module", "feature", "version",
}

var hardWords = []string{
	"synchronize", "asynchronous", "characteristic", "compatibility", "architecture",
	"configuration", "microarchitecture", "bioluminescence", "interoperability",
}

// Tiers holds the additive vocabulary sets.
type Tiers struct {
	Base   []string
	Medium []string
	Hard   []string
}

// DefaultTiers returns the built-in vocabulary.
func DefaultTiers() Tiers {
	return Tiers{
		Base:   append([]string(nil), baseWords...),
		Medium: append([]string(nil), mediumWords...),
		Hard:   append([]string(nil), hardWords...),
	}
}

// WithBase returns a copy of t whose base tier is replaced by words.
func (t Tiers) WithBase(words []string) Tiers {
	t.Base = append([]string(nil), words...)
	return t
}

// Vocabulary returns the deduplicated word set eligible for a difficulty.
// Higher tiers are supersets of lower ones; unknown tiers get the base set.
func (t Tiers) Vocabulary(d model.Difficulty) []string {
	sets := [][]string{t.Base}
	switch d {
	case model.Medium:
		sets = append(sets, t.Medium)
	case model.Hard:
		sets = append(sets, t.Medium, t.Hard)
	}
	seen := map[string]struct{}{}
	var out []string
	for _, set := range sets {
		for _, w := range set {
			if _, ok := seen[w]; ok {
				continue
			}
			seen[w] = struct{}{}
			out = append(out, w)
		}
	}
	return out
}
