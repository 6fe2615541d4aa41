package stats

import (
	"fmt"
	"io"

	"github.com/verte-zerg/fiasco/internal/model"
)

// Result is a finished session as shown to the player.
type Result struct {
	Config   model.Config
	Metrics  model.Metrics
	Counters model.Counters
	Words    int
	Best     int
	NewBest  bool
}

// SummaryLines formats a finished session as an aligned table.
func SummaryLines(r Result) []string {
	best := fmt.Sprintf("%d WPM", r.Best)
	if r.NewBest {
		best += " (new)"
	}
	return alignRows([]row{
		{"WPM", fmt.Sprintf("%d", r.Metrics.WPM)},
		{"Accuracy", fmt.Sprintf("%d%%", r.Metrics.AccuracyPercent)},
		{"Score", fmt.Sprintf("%d", r.Metrics.Score)},
		{"Words", fmt.Sprintf("%d", r.Words)},
		{"Correct", fmt.Sprintf("%d", r.Counters.Correct)},
		{"Wrong", fmt.Sprintf("%d", r.Counters.Wrong)},
		{"Duration", fmt.Sprintf("%ds", r.Config.DurationSeconds)},
		{"Difficulty", string(r.Config.Difficulty)},
		{"Best", best},
	})
}

// RenderSummary writes the summary table to w.
func RenderSummary(w io.Writer, r Result) error {
	for _, line := range SummaryLines(r) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// RenderBest writes the stored best score.
func RenderBest(w io.Writer, best int) error {
	lines := alignRows([]row{{"Record", "Value"}, {"Best WPM", fmt.Sprintf("%d", best)}})
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
