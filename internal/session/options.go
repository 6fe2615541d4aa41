package session

import "github.com/rs/zerolog"

// Option configures an Engine.
type Option func(*Engine)

// WithBestScore attaches the best-score boundary. Without it finished
// sessions only update the in-memory best.
func WithBestScore(b *BestScore) Option {
	return func(e *Engine) {
		e.best = b
	}
}

// WithLogger sets the engine logger.
func WithLogger(l zerolog.Logger) Option {
	return func(e *Engine) {
		e.log = l
	}
}

// WithWordCount sets how many words are generated per session.
func WithWordCount(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.wordCount = n
		}
	}
}
