// Package session implements the timed typing session: word scoring, the
// countdown, derived metrics and best-score reconciliation.
//
// An Engine is owned by a single caller. None of its methods block, and they
// must not be called concurrently.
package session

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/verte-zerg/fiasco/internal/model"
	"github.com/verte-zerg/fiasco/internal/stats"
)

// DefaultWordCount is the number of words drawn per session.
const DefaultWordCount = 200

// WordSupply generates the words for a session.
type WordSupply interface {
	GenerateWordList(d model.Difficulty, count int) []string
}

// Engine is the typing session state machine.
type Engine struct {
	supply    WordSupply
	best      *BestScore
	log       zerolog.Logger
	wordCount int

	cfg       model.Config
	id        string
	status    model.Status
	words     []string
	index     int
	remaining int
	counters  model.Counters
	pending   string

	last     model.WordResult
	hasLast  bool
	finalWPM int
	bestWPM  int
	newBest  bool
}

// New returns an idle Engine. If a best-score boundary is attached its
// stored value is loaded immediately.
func New(supply WordSupply, opts ...Option) *Engine {
	e := &Engine{
		supply:    supply,
		log:       zerolog.Nop(),
		wordCount: DefaultWordCount,
		cfg:       model.DefaultConfig(),
		status:    model.StatusIdle,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.best != nil {
		best, err := e.best.Load(context.Background())
		if err != nil {
			e.log.Warn().Err(err).Msg("best score unavailable, starting from zero")
		}
		e.bestWPM = best
	}
	return e
}

// Start begins a new session with cfg. A running session is discarded first.
func (e *Engine) Start(cfg model.Config) {
	if e.status == model.StatusRunning {
		e.log.Debug().Str("session", e.id).Msg("session superseded")
	}
	e.cfg = cfg.Normalize()
	e.id = uuid.NewString()
	e.words = e.supply.GenerateWordList(e.cfg.Difficulty, e.wordCount)
	e.index = 0
	e.remaining = e.cfg.DurationSeconds
	e.counters = model.Counters{}
	e.pending = ""
	e.last = model.WordResult{}
	e.hasLast = false
	e.finalWPM = 0
	e.newBest = false
	e.status = model.StatusRunning

	e.log.Info().
		Str("session", e.id).
		Int("duration", e.cfg.DurationSeconds).
		Str("difficulty", string(e.cfg.Difficulty)).
		Int("words", len(e.words)).
		Msg("session started")
}

// Restart starts again with the last configuration.
func (e *Engine) Restart() {
	e.Start(e.cfg)
}

// OnKeystrokeBuffer classifies the current word against the in-progress
// buffer. It returns nil unless a session is running and never changes the
// committed counters.
func (e *Engine) OnKeystrokeBuffer(buffer string) []model.CharClass {
	if e.status != model.StatusRunning {
		return nil
	}
	e.pending = buffer
	return Classify(e.CurrentWord(), buffer)
}

// CommitWord scores buffer against the current word and advances to the next
// one. It reports false when no session is running.
func (e *Engine) CommitWord(buffer string) (model.WordResult, bool) {
	if e.status != model.StatusRunning {
		return model.WordResult{}, false
	}
	return e.commit(buffer), true
}

func (e *Engine) commit(buffer string) model.WordResult {
	res := ScoreWord(e.CurrentWord(), buffer)
	e.counters.TotalTyped += len([]rune(res.Typed))
	e.counters.Correct += res.Correct
	e.counters.Wrong += res.Wrong
	e.index++
	e.pending = ""
	e.last = res
	e.hasLast = true
	return res
}

// Tick advances the countdown by one second and finishes the session when it
// reaches zero. It is a no-op unless a session is running.
func (e *Engine) Tick() {
	if e.status != model.StatusRunning {
		return
	}
	e.remaining--
	if e.remaining <= 0 {
		e.remaining = 0
		e.finish("timeout")
	}
}

// TickSession ticks only if id names the running session. Ticks armed for a
// superseded session report false and change nothing.
func (e *Engine) TickSession(id string) bool {
	if id == "" || id != e.id || e.status != model.StatusRunning {
		return false
	}
	e.Tick()
	return true
}

// Stop ends a running session early.
func (e *Engine) Stop() {
	if e.status != model.StatusRunning {
		return
	}
	e.finish("stopped")
}

func (e *Engine) finish(reason string) {
	if strings.TrimSpace(e.pending) != "" {
		e.commit(e.pending)
	}
	e.status = model.StatusFinished
	e.finalWPM = e.Metrics().WPM
	e.reconcileBest()

	e.log.Info().
		Str("session", e.id).
		Str("reason", reason).
		Int("wpm", e.finalWPM).
		Int("correct", e.counters.Correct).
		Int("wrong", e.counters.Wrong).
		Int("words", e.index).
		Msg("session finished")
}

// reconcileBest compares the final WPM with the stored best. When a store is
// attached it is authoritative: another process may have raised the value
// since it was loaded.
func (e *Engine) reconcileBest() {
	if e.best == nil {
		e.reconcileLocal()
		return
	}
	ctx := context.Background()
	changed, err := e.best.Record(ctx, e.finalWPM)
	if err != nil {
		e.log.Error().Err(err).Str("session", e.id).Msg("failed to persist best score")
		e.reconcileLocal()
		return
	}
	if changed {
		e.bestWPM = e.finalWPM
		e.newBest = true
		e.log.Info().Str("session", e.id).Int("best", e.finalWPM).Msg("new best score")
		return
	}
	e.newBest = false
	stored, err := e.best.Load(ctx)
	if err != nil {
		e.log.Warn().Err(err).Str("session", e.id).Msg("failed to reload best score")
		return
	}
	e.bestWPM = stored
}

func (e *Engine) reconcileLocal() {
	if e.finalWPM <= e.bestWPM {
		return
	}
	e.bestWPM = e.finalWPM
	e.newBest = true
}

// Metrics returns the current HUD snapshot.
func (e *Engine) Metrics() model.Metrics {
	return stats.Snapshot(e.cfg.DurationSeconds, e.remaining, e.counters)
}

// Status returns the lifecycle state.
func (e *Engine) Status() model.Status {
	return e.status
}

// Config returns the configuration of the current or last session.
func (e *Engine) Config() model.Config {
	return e.cfg
}

// SessionID identifies the current session. It is empty before the first start.
func (e *Engine) SessionID() string {
	return e.id
}

// Words returns a copy of the session word list.
func (e *Engine) Words() []string {
	return append([]string(nil), e.words...)
}

// CurrentWordIndex is the number of words committed so far.
func (e *Engine) CurrentWordIndex() int {
	return e.index
}

// CurrentWord returns the word being typed, or "" past the end of the list.
func (e *Engine) CurrentWord() string {
	if e.index < 0 || e.index >= len(e.words) {
		return ""
	}
	return e.words[e.index]
}

// Counters returns the committed character tallies.
func (e *Engine) Counters() model.Counters {
	return e.counters
}

// LastResult returns the most recently committed word.
func (e *Engine) LastResult() (model.WordResult, bool) {
	return e.last, e.hasLast
}

// FinalWPM is the WPM computed when the last session finished.
func (e *Engine) FinalWPM() int {
	return e.finalWPM
}

// Best returns the best WPM known to the engine and whether the last finished
// session set it.
func (e *Engine) Best() (int, bool) {
	return e.bestWPM, e.newBest
}

// Result summarizes the current or last session.
func (e *Engine) Result() stats.Result {
	return stats.Result{
		Config:   e.cfg,
		Metrics:  e.Metrics(),
		Counters: e.counters,
		Words:    e.index,
		Best:     e.bestWPM,
		NewBest:  e.newBest,
	}
}
