package stats

import (
	"bytes"
	"strings"
	"testing"

	"github.com/verte-zerg/fiasco/internal/model"
)

func TestAlignRows(t *testing.T) {
	lines := alignRows([]row{
		{"Metric", "Value"},
		{"WPM", "72"},
		{"Accuracy", "97%"},
	})
	want := []string{
		"Metric   Value",
		"WPM         72",
		"Accuracy   97%",
	}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %d", len(want), len(lines))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d: got %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestAlignRowsWideRunes(t *testing.T) {
	lines := alignRows([]row{{"語", "1"}, {"abc", "10"}})
	if lines[0] != "語   1" || lines[1] != "abc 10" {
		t.Fatalf("unexpected wide-rune alignment: %q", lines)
	}
}

func TestRenderSummary(t *testing.T) {
	var buf bytes.Buffer
	err := RenderSummary(&buf, Result{
		Config:   model.Config{DurationSeconds: 30, Difficulty: model.Hard},
		Metrics:  model.Metrics{WPM: 64, AccuracyPercent: 93, Score: 150},
		Counters: model.Counters{TotalTyped: 160, Correct: 150, Wrong: 11},
		Words:    28,
		Best:     64,
		NewBest:  true,
	})
	if err != nil {
		t.Fatalf("render summary: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"WPM", "64", "93%", "hard", "30s", "64 WPM (new)"} {
		if !strings.Contains(out, want) {
			t.Fatalf("summary missing %q:\n%s", want, out)
		}
	}
}

func TestRenderBest(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderBest(&buf, 88); err != nil {
		t.Fatalf("render best: %v", err)
	}
	if !strings.Contains(buf.String(), "Best WPM") || !strings.Contains(buf.String(), "88") {
		t.Fatalf("unexpected output: %q", buf.String())
	}
}
