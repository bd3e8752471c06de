package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/manav03panchal/murmur/internal/config"
	"github.com/manav03panchal/murmur/internal/model"
	"github.com/manav03panchal/murmur/internal/output"
	"github.com/manav03panchal/murmur/internal/timer"
	"github.com/manav03panchal/murmur/internal/validate"
)

// ConfirmPrompt is shown before erasing everything.
const ConfirmPrompt = "ERASE ALL RECORDINGS? (y/N)"

// Session is what the recorder drives. *session.Session satisfies it.
type Session interface {
	Open()
	Submit(text string) (model.Entry, bool, error)
	ToggleMute() bool
	DeleteAll(confirm func() bool) (bool, error)
	Count() int
	Preview(n int) []model.Entry
	Muted() bool
}

// tickMsg is sent when the clock ticks.
type tickMsg time.Time

// bannerExpiredMsg hides the RECORDED banner it was armed for.
type bannerExpiredMsg struct {
	seq int
}

// openedMsg is sent once the session has been opened.
type openedMsg struct{}

// Model is the bubbletea model for the recorder.
type Model struct {
	sess  Session
	input textinput.Model

	// Configuration
	maxLength     int
	previewCount  int
	clockInterval time.Duration
	bannerFor     time.Duration

	// UI state
	width      int
	height     int
	clock      time.Time
	banner     bool
	bannerSeq  int
	confirming bool
	notice     string
	err        error

	// Overlays
	glitch  string
	whisper *model.Entry
}

// New creates the recorder model.
func New(sess Session, cfg config.UIConfig) *Model {
	if cfg.MaxLength <= 0 {
		cfg.MaxLength = validate.MaxConfessionLength
	}
	if cfg.PreviewCount <= 0 {
		cfg.PreviewCount = 5
	}
	if cfg.ClockInterval <= 0 {
		cfg.ClockInterval = time.Second
	}
	if cfg.ConfirmationDuration <= 0 {
		cfg.ConfirmationDuration = 3 * time.Second
	}

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "confess something..."
	ti.CharLimit = cfg.MaxLength
	ti.Focus()

	return &Model{
		sess:          sess,
		input:         ti,
		maxLength:     cfg.MaxLength,
		previewCount:  cfg.PreviewCount,
		clockInterval: cfg.ClockInterval,
		bannerFor:     cfg.ConfirmationDuration,
		clock:         time.Now(),
	}
}

// Init opens the session and starts the clock.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		m.tickCmd(),
		m.openCmd(),
	)
}

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = max(msg.Width-8, 10)
		return m, nil

	case tickMsg:
		m.clock = time.Time(msg)
		return m, m.tickCmd()

	case bannerExpiredMsg:
		if msg.seq == m.bannerSeq {
			m.banner = false
		}
		return m, nil

	case openedMsg:
		return m, nil

	case GlitchMsg:
		m.glitch = msg.Text
		return m, nil

	case GlitchHideMsg:
		m.glitch = ""
		return m, nil

	case WhisperMsg:
		e := msg.Entry
		m.whisper = &e
		return m, nil

	case WhisperHideMsg:
		m.whisper = nil
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleKeyPress handles keyboard input.
func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.confirming {
		return m.handleConfirm(msg)
	}

	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit

	case "ctrl+s", "enter":
		return m, m.submit()

	case "ctrl+t":
		if m.sess.ToggleMute() {
			m.notice = "MUTED"
		} else {
			m.notice = ""
		}
		return m, nil

	case "ctrl+x":
		m.confirming = true
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleConfirm resolves the erase prompt. Only y erases.
func (m *Model) handleConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.confirming = false
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	accepted := msg.String() == "y" || msg.String() == "Y"
	erased, err := m.sess.DeleteAll(func() bool { return accepted })
	m.err = err
	if erased {
		m.notice = "ERASED"
		m.banner = false
	}
	return m, nil
}

// submit records the input, if any.
func (m *Model) submit() tea.Cmd {
	if !m.canSubmit() {
		return nil
	}

	_, ok, err := m.sess.Submit(m.input.Value())
	m.err = err
	if !ok {
		return nil
	}

	m.input.Reset()
	m.notice = ""
	m.banner = true
	m.bannerSeq++
	seq := m.bannerSeq
	return tea.Tick(m.bannerFor, func(time.Time) tea.Msg {
		return bannerExpiredMsg{seq: seq}
	})
}

func (m *Model) canSubmit() bool {
	value := m.input.Value()
	return !validate.IsBlank(value) && validate.Length(value) <= m.maxLength
}

// tickCmd returns a command that sends a tick message.
func (m *Model) tickCmd() tea.Cmd {
	return tea.Tick(m.clockInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// openCmd opens the session once the program is running.
func (m *Model) openCmd() tea.Cmd {
	return func() tea.Msg {
		m.sess.Open()
		return openedMsg{}
	}
}

// View renders the recorder.
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	if m.glitch != "" {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			StyleGlitch.Render(m.glitch))
	}

	var sections []string
	sections = append(sections, m.renderHeader())

	if m.whisper != nil {
		sections = append(sections, m.renderWhisper(*m.whisper))
	}

	sections = append(sections, StyleInputBox.Width(max(m.width-4, 20)).Render(m.input.View()))
	sections = append(sections, m.renderStatus())

	if m.err != nil {
		sections = append(sections, StyleError.Render(fmt.Sprintf("Error: %v", m.err)))
	}

	if preview := m.renderPreview(); preview != "" {
		sections = append(sections, preview)
	}

	sections = append(sections, HelpBar(m.helpKeys()))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderHeader renders the REC clock and the stored counter.
func (m *Model) renderHeader() string {
	clock := StyleClock.Render("● " + timer.FormatClock(m.clock))
	counter := StyleCounter.Render(output.Count(m.sess.Count()))
	return lipgloss.JoinHorizontal(lipgloss.Top, clock, "   ", counter) + "\n"
}

// renderWhisper renders a replayed confession and its recording date.
func (m *Model) renderWhisper(e model.Entry) string {
	text := StyleWhisperText.Render(`"` + e.Text + `"`)
	date := e.CreatedAt
	if t, err := e.Time(); err == nil {
		date = timer.FormatRecorded(t)
	}
	box := StyleWhisperBox
	if m.width > 8 {
		box = box.MaxWidth(m.width)
	}
	return box.Render(lipgloss.JoinVertical(lipgloss.Left, text, StyleWhisperDate.Render(date)))
}

// renderStatus renders the character counter and transient messages.
func (m *Model) renderStatus() string {
	count := fmt.Sprintf("%d/%d", validate.Length(m.input.Value()), m.maxLength)

	record := StyleHelpKey.Render("ctrl+s") + " " + StyleHelpDesc.Render("RECORD")
	if !m.canSubmit() {
		record = StyleDisabled.Render("ctrl+s RECORD")
	}

	parts := []string{StyleCounter.Render(count), record}
	switch {
	case m.confirming:
		parts = append(parts, StyleWarning.Render(ConfirmPrompt))
	case m.banner:
		parts = append(parts, StyleBanner.Render("RECORDED"))
	case m.notice != "":
		parts = append(parts, StyleWarning.Render(m.notice))
	}
	return strings.Join(parts, "   ")
}

// renderPreview renders the most recent entries, newest first.
func (m *Model) renderPreview() string {
	entries := m.sess.Preview(m.previewCount)
	if len(entries) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(StyleHeading.Render("PREVIOUS RECORDINGS:"))
	for _, e := range entries {
		b.WriteString("\n")
		b.WriteString(StylePreview.Render("  " + e.Text))
	}
	return b.String()
}

func (m *Model) helpKeys() []helpKey {
	mute := "MUTE"
	if m.sess.Muted() {
		mute = "UNMUTE"
	}
	return []helpKey{
		{"ctrl+t", mute},
		{"ctrl+x", "ERASE"},
		{"esc", "QUIT"},
	}
}

// Run starts the recorder TUI. The presenter is attached before the session
// opens, so no whisper is lost.
func Run(sess Session, presenter *Presenter, cfg config.UIConfig) error {
	m := New(sess, cfg)
	p := tea.NewProgram(m, tea.WithAltScreen())
	presenter.Attach(p)
	_, err := p.Run()
	return err
}
