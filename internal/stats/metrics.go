// Package stats contains metric calculations and result reporting.
package stats

import (
	"math"

	"github.com/verte-zerg/fiasco/internal/model"
)

// charsPerWord is the conventional word length used for WPM.
const charsPerWord = 5.0

// WPM returns typed characters per five, normalized to elapsed minutes and
// rounded. elapsedSeconds is floored at 1.
func WPM(totalTyped, elapsedSeconds int) int {
	if elapsedSeconds < 1 {
		elapsedSeconds = 1
	}
	minutes := float64(elapsedSeconds) / 60.0
	return int(math.Round((float64(totalTyped) / charsPerWord) / minutes))
}

// AccuracyPercent returns the rounded share of correct characters. With nothing
// scored yet the accuracy is 100.
func AccuracyPercent(correct, wrong int) int {
	total := correct + wrong
	if total <= 0 {
		return 100
	}
	return int(math.Round(100 * float64(correct) / float64(total)))
}

// Snapshot derives HUD metrics for a session of durationSeconds with
// remainingSeconds left.
func Snapshot(durationSeconds, remainingSeconds int, c model.Counters) model.Metrics {
	elapsed := durationSeconds - remainingSeconds
	return model.Metrics{
		RemainingSeconds: remainingSeconds,
		WPM:              WPM(c.TotalTyped, elapsed),
		AccuracyPercent:  AccuracyPercent(c.Correct, c.Wrong),
		Score:            c.Correct,
	}
}
