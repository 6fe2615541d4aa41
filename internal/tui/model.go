// Package tui provides the Bubble Tea typing interface.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/verte-zerg/fiasco/internal/model"
	"github.com/verte-zerg/fiasco/internal/session"
	"github.com/verte-zerg/fiasco/internal/stats"
)

// Durations are the selectable session lengths in seconds.
var Durations = []int{15, 30, 60, 120}

const (
	visibleWords = 40
	visibleLines = 3
)

// tickMsg is the 1 Hz clock. It carries the session it was armed for.
type tickMsg struct {
	session string
}

// Model implements the Bubble Tea typing UI.
type Model struct {
	engine *session.Engine
	input  textinput.Model
	cfg    model.Config
	log    zerolog.Logger

	classes []model.CharClass

	width  int
	height int
}

var (
	correctStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	incorrectStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	pendingStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	currentWordStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	cursorStyle      = currentWordStyle.Underline(true)
	footerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	hudLabelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	hudValueStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	titleStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
)

// NewModel constructs a typing TUI model. cfg preselects duration and difficulty.
func NewModel(engine *session.Engine, cfg model.Config, log zerolog.Logger) *Model {
	in := textinput.New()
	in.Prompt = "› "
	in.Placeholder = "press enter to start"
	in.Width = 30
	return &Model{
		engine: engine,
		input:  in,
		cfg:    cfg.Normalize(),
		log:    log,
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tickMsg:
		return m, m.handleTick(msg)
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.engine.Status() == model.StatusRunning {
			return m, m.handleRunningKey(msg)
		}
		return m, m.handleIdleKey(msg)
	default:
		if m.engine.Status() == model.StatusRunning {
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
		return m, nil
	}
}

func (m *Model) handleTick(msg tickMsg) tea.Cmd {
	if !m.engine.TickSession(msg.session) {
		return nil
	}
	if m.engine.Status() == model.StatusRunning {
		return tick(msg.session)
	}
	m.endInput()
	return nil
}

func (m *Model) handleRunningKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEsc:
		m.engine.Stop()
		m.endInput()
		return nil
	case tea.KeyCtrlR:
		return m.start()
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.setBuffer(m.input.Value())
	return cmd
}

func (m *Model) handleIdleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEnter, tea.KeyCtrlR:
		return m.start()
	case tea.KeyLeft:
		m.cycleDuration(-1)
	case tea.KeyRight:
		m.cycleDuration(1)
	case tea.KeyUp:
		m.cycleDifficulty(1)
	case tea.KeyDown:
		m.cycleDifficulty(-1)
	case tea.KeyEsc:
		return tea.Quit
	case tea.KeyRunes:
		if string(msg.Runes) == "q" {
			return tea.Quit
		}
	}
	return nil
}

// start begins a session with the selected settings and arms its clock.
func (m *Model) start() tea.Cmd {
	m.engine.Start(m.cfg)
	m.input.Reset()
	m.input.Placeholder = ""
	m.classes = m.engine.OnKeystrokeBuffer("")
	return tea.Batch(m.input.Focus(), tick(m.engine.SessionID()))
}

// setBuffer routes an input change: a trailing space commits the word,
// anything else refreshes the live feedback.
func (m *Model) setBuffer(value string) {
	if strings.HasSuffix(value, " ") {
		if res, ok := m.engine.CommitWord(value); ok {
			m.log.Debug().
				Str("session", m.engine.SessionID()).
				Str("target", res.Target).
				Str("typed", res.Typed).
				Bool("exact", res.FullyCorrect).
				Msg("word committed")
		}
		m.input.Reset()
		value = ""
	}
	m.classes = m.engine.OnKeystrokeBuffer(value)
}

func (m *Model) endInput() {
	m.input.Blur()
	m.input.Reset()
	m.input.Placeholder = "press enter to play again"
	m.classes = nil
}

func (m *Model) cycleDuration(delta int) {
	idx := 0
	for i, d := range Durations {
		if d == m.cfg.DurationSeconds {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(Durations)) % len(Durations)
	m.cfg.DurationSeconds = Durations[idx]
}

func (m *Model) cycleDifficulty(delta int) {
	idx := 0
	for i, d := range model.Difficulties {
		if d == m.cfg.Difficulty {
			idx = i
			break
		}
	}
	n := len(model.Difficulties)
	m.cfg.Difficulty = model.Difficulties[(idx+delta+n)%n]
}

func tick(sessionID string) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return tickMsg{session: sessionID}
	})
}

// View implements tea.Model.
func (m *Model) View() string {
	sections := []string{titleStyle.Render("Finger Fiasco"), m.renderHUD(), ""}
	switch m.engine.Status() {
	case model.StatusRunning:
		sections = append(sections, m.renderWords(), "", m.input.View())
	case model.StatusFinished:
		sections = append(sections, strings.Join(stats.SummaryLines(m.engine.Result()), "\n"), "", m.input.View())
	default:
		sections = append(sections, m.input.View())
	}
	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	footer := footerStyle.Render(m.renderHelp())
	if m.width == 0 || m.height == 0 {
		return content + "\n\n" + footer
	}
	if m.height < 3 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	body := lipgloss.Place(m.width, m.height-1, lipgloss.Center, lipgloss.Center, content)
	footerLine := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, footer)
	return body + "\n" + footerLine
}

func (m *Model) renderHUD() string {
	metrics := m.engine.Metrics()
	cfg := m.engine.Config()
	if m.engine.Status() == model.StatusIdle {
		metrics.RemainingSeconds = m.cfg.DurationSeconds
		cfg = m.cfg
	}
	best, _ := m.engine.Best()
	segments := []string{
		hudSegment("Time", fmt.Sprintf("%ds", metrics.RemainingSeconds)),
		hudSegment("WPM", fmt.Sprintf("%d", metrics.WPM)),
		hudSegment("Accuracy", fmt.Sprintf("%d%%", metrics.AccuracyPercent)),
		hudSegment("Score", fmt.Sprintf("%d", metrics.Score)),
		hudSegment("Best", fmt.Sprintf("%d WPM", best)),
	}
	if m.engine.Status() != model.StatusRunning {
		segments = append(segments,
			hudSegment("Next", fmt.Sprintf("%ds · %s", m.cfg.DurationSeconds, m.cfg.Difficulty)))
	} else {
		segments = append(segments, hudSegment("Level", string(cfg.Difficulty)))
	}
	return strings.Join(segments, "  ")
}

func hudSegment(label, value string) string {
	return hudLabelStyle.Render(label+" ") + hudValueStyle.Render(value)
}

func (m *Model) renderWords() string {
	words := m.engine.Words()
	idx := m.engine.CurrentWordIndex()
	if idx >= len(words) {
		return pendingStyle.Render("(out of words)")
	}
	end := min(idx+visibleWords, len(words))
	cursor := len([]rune(m.input.Value()))
	styled := buildStyledWords(words[idx:end], m.classes, cursor)

	width := 60
	if m.width > 0 {
		width = max(int(float64(m.width)*0.70), 1)
	}
	lines := strings.Split(wrapStyledRunes(styled, width), "\n")
	if len(lines) > visibleLines {
		lines = lines[:visibleLines]
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderHelp() string {
	if m.engine.Status() == model.StatusRunning {
		return "space next word · esc stop · ctrl+r restart · ctrl+c quit"
	}
	return "enter start · ←/→ duration · ↑/↓ difficulty · q quit"
}
