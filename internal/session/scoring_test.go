package session

import (
	"testing"

	"github.com/verte-zerg/fiasco/internal/model"
)

func TestScoreWordTrimsSeparator(t *testing.T) {
	res := ScoreWord("time", "time ")
	if res.Typed != "time" || !res.FullyCorrect {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestScoreWordRunes(t *testing.T) {
	res := ScoreWord("naïve", "naive ")
	if res.Correct != 4 || res.Wrong != 1 {
		t.Fatalf("expected rune-wise scoring, got %+v", res)
	}
}

func TestClassifyEmptyBuffer(t *testing.T) {
	got := Classify("abc", "")
	for i, c := range got {
		if c != model.CharPending {
			t.Fatalf("position %d: expected pending, got %s", i, c)
		}
	}
}
