package session

import (
	"strings"

	"github.com/verte-zerg/fiasco/internal/model"
)

// Classify annotates each rune of target against the in-progress buffer.
// Positions past the end of buffer are pending. Runes typed beyond the target
// length are not annotated; they only count once the word is committed.
func Classify(target, buffer string) []model.CharClass {
	want := []rune(target)
	got := []rune(buffer)
	out := make([]model.CharClass, len(want))
	for i, r := range want {
		switch {
		case i >= len(got):
			out[i] = model.CharPending
		case got[i] == r:
			out[i] = model.CharCorrect
		default:
			out[i] = model.CharWrong
		}
	}
	return out
}

// ScoreWord scores a committed buffer against target. Surrounding whitespace,
// including the separator, is stripped first. Every typed rune that does not
// match, and every target rune left untyped, counts as wrong.
func ScoreWord(target, buffer string) model.WordResult {
	typed := strings.TrimSpace(buffer)
	want := []rune(target)
	got := []rune(typed)

	overlap := min(len(want), len(got))
	match := 0
	for i := 0; i < overlap; i++ {
		if got[i] == want[i] {
			match++
		}
	}
	return model.WordResult{
		Target:       target,
		Typed:        typed,
		Correct:      match,
		Wrong:        (len(got) - match) + max(0, len(want)-len(got)),
		FullyCorrect: typed == target,
	}
}
