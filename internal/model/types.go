// Package model defines shared data structures.
package model

import "strings"

// DefaultDurationSeconds is the session length used when none is configured.
const DefaultDurationSeconds = 60

// Difficulty selects the vocabulary tier.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// Difficulties lists the tiers from lowest to highest.
var Difficulties = []Difficulty{Easy, Medium, Hard}

// ParseDifficulty maps a name to a tier. Unknown names fall back to Easy.
func ParseDifficulty(s string) Difficulty {
	switch Difficulty(strings.ToLower(strings.TrimSpace(s))) {
	case Medium:
		return Medium
	case Hard:
		return Hard
	default:
		return Easy
	}
}

// Valid reports whether d names a known tier.
func (d Difficulty) Valid() bool {
	return d == Easy || d == Medium || d == Hard
}

// Config defines session settings.
type Config struct {
	DurationSeconds int
	Difficulty      Difficulty
}

// DefaultConfig returns a one minute easy session.
func DefaultConfig() Config {
	return Config{DurationSeconds: DefaultDurationSeconds, Difficulty: Easy}
}

// Normalize fills a non-positive duration and an unknown difficulty with defaults.
func (c Config) Normalize() Config {
	if c.DurationSeconds <= 0 {
		c.DurationSeconds = DefaultDurationSeconds
	}
	c.Difficulty = ParseDifficulty(string(c.Difficulty))
	return c
}

// Status is the session lifecycle state.
type Status string

const (
	StatusIdle     Status = "idle"
	StatusRunning  Status = "running"
	StatusFinished Status = "finished"
)

// CharClass classifies one character of the current word.
type CharClass string

const (
	CharPending CharClass = "pending"
	CharCorrect CharClass = "correct"
	CharWrong   CharClass = "wrong"
)

// Counters holds the committed character tallies of a session.
type Counters struct {
	TotalTyped int
	Correct    int
	Wrong      int
}

// Metrics is a HUD snapshot.
type Metrics struct {
	RemainingSeconds int
	WPM              int
	AccuracyPercent  int
	Score            int
}

// WordResult describes one committed word.
type WordResult struct {
	Target       string
	Typed        string
	Correct      int
	Wrong        int
	FullyCorrect bool
}
