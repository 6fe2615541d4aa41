package tui

import (
	"reflect"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/verte-zerg/fiasco/internal/model"
	"github.com/verte-zerg/fiasco/internal/session"
)

type fixedSupply []string

func (f fixedSupply) GenerateWordList(_ model.Difficulty, count int) []string {
	out := make([]string, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, f[i%len(f)])
	}
	return out
}

func newTestModel(t *testing.T) (*Model, *session.Engine) {
	t.Helper()
	engine := session.New(fixedSupply{"time", "game"})
	m := NewModel(engine, model.Config{DurationSeconds: 15, Difficulty: model.Easy}, zerolog.Nop())
	return m, engine
}

func TestEnterStartsSession(t *testing.T) {
	m, engine := newTestModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatalf("expected start to arm the clock")
	}
	if engine.Status() != model.StatusRunning {
		t.Fatalf("expected running, got %s", engine.Status())
	}
	if engine.Config().DurationSeconds != 15 {
		t.Fatalf("expected selected duration, got %d", engine.Config().DurationSeconds)
	}
	if len(m.classes) != 4 {
		t.Fatalf("expected classes for the first word, got %v", m.classes)
	}
}

func TestSetBufferCommitsOnSpace(t *testing.T) {
	m, engine := newTestModel(t)
	m.start()

	m.setBuffer("tim")
	want := []model.CharClass{model.CharCorrect, model.CharCorrect, model.CharCorrect, model.CharPending}
	if !reflect.DeepEqual(m.classes, want) {
		t.Fatalf("expected %v, got %v", want, m.classes)
	}
	if engine.Counters() != (model.Counters{}) {
		t.Fatalf("live feedback changed counters")
	}

	m.input.SetValue("time ")
	m.setBuffer("time ")
	if engine.CurrentWordIndex() != 1 {
		t.Fatalf("expected index 1, got %d", engine.CurrentWordIndex())
	}
	if m.input.Value() != "" {
		t.Fatalf("expected input cleared, got %q", m.input.Value())
	}
	if c := engine.Counters(); c.Correct != 4 || c.Wrong != 0 {
		t.Fatalf("unexpected counters %+v", c)
	}
	for _, c := range m.classes {
		if c != model.CharPending {
			t.Fatalf("expected next word pending, got %v", m.classes)
		}
	}
}

func TestTypingThroughKeys(t *testing.T) {
	m, engine := newTestModel(t)
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	for _, r := range "tame" {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	if m.input.Value() != "tame" {
		t.Fatalf("expected buffer tame, got %q", m.input.Value())
	}
	if m.classes[1] != model.CharWrong {
		t.Fatalf("expected second char wrong, got %v", m.classes)
	}
	m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if engine.CurrentWordIndex() != 1 {
		t.Fatalf("expected word committed on space")
	}
	if c := engine.Counters(); c.Correct != 3 || c.Wrong != 1 {
		t.Fatalf("unexpected counters %+v", c)
	}
}

func TestStaleTickIgnored(t *testing.T) {
	m, engine := newTestModel(t)
	m.start()
	stale := engine.SessionID()
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlR})

	_, cmd := m.Update(tickMsg{session: stale})
	if cmd != nil {
		t.Fatalf("expected stale tick not to re-arm")
	}
	if engine.Metrics().RemainingSeconds != 15 {
		t.Fatalf("stale tick changed remaining time")
	}

	_, cmd = m.Update(tickMsg{session: engine.SessionID()})
	if cmd == nil {
		t.Fatalf("expected current tick to re-arm")
	}
	if engine.Metrics().RemainingSeconds != 14 {
		t.Fatalf("expected 14 seconds remaining, got %d", engine.Metrics().RemainingSeconds)
	}
}

func TestTicksFinishSession(t *testing.T) {
	m, engine := newTestModel(t)
	m.start()
	id := engine.SessionID()
	var cmd tea.Cmd
	for i := 0; i < 15; i++ {
		_, cmd = m.Update(tickMsg{session: id})
	}
	if cmd != nil {
		t.Fatalf("expected clock to stop after the last tick")
	}
	if engine.Status() != model.StatusFinished {
		t.Fatalf("expected finished, got %s", engine.Status())
	}
	if m.input.Focused() {
		t.Fatalf("expected input disabled after finish")
	}
	out := m.View()
	for _, want := range []string{"Accuracy", "Best", "enter start"} {
		if !strings.Contains(out, want) {
			t.Fatalf("finished view missing %q", want)
		}
	}
}

func TestEscStopsSession(t *testing.T) {
	m, engine := newTestModel(t)
	m.start()
	m.setBuffer("ti")
	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if engine.Status() != model.StatusFinished {
		t.Fatalf("expected finished after esc, got %s", engine.Status())
	}
	if engine.CurrentWordIndex() != 1 {
		t.Fatalf("expected pending word committed on stop")
	}
}

func TestIdleKeysCycleSettings(t *testing.T) {
	m, _ := newTestModel(t)
	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if m.cfg.DurationSeconds != 30 {
		t.Fatalf("expected 30, got %d", m.cfg.DurationSeconds)
	}
	m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	if m.cfg.DurationSeconds != 120 {
		t.Fatalf("expected wrap to 120, got %d", m.cfg.DurationSeconds)
	}
	m.Update(tea.KeyMsg{Type: tea.KeyUp})
	if m.cfg.Difficulty != model.Medium {
		t.Fatalf("expected medium, got %s", m.cfg.Difficulty)
	}
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	if m.cfg.Difficulty != model.Hard {
		t.Fatalf("expected wrap to hard, got %s", m.cfg.Difficulty)
	}
}

func TestRenderHUDIdle(t *testing.T) {
	m, _ := newTestModel(t)
	out := m.renderHUD()
	for _, want := range []string{"Time", "15s", "WPM", "Accuracy", "100%", "Best", "0 WPM", "easy"} {
		if !strings.Contains(out, want) {
			t.Fatalf("hud missing %q: %s", want, out)
		}
	}
}

func TestRenderWordsLimitsLines(t *testing.T) {
	m, _ := newTestModel(t)
	m.width = 20
	m.start()
	out := m.renderWords()
	if n := len(strings.Split(out, "\n")); n > visibleLines {
		t.Fatalf("expected at most %d lines, got %d", visibleLines, n)
	}
}
