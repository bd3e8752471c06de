package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/manav03panchal/murmur/internal/model"
)

// GlitchMsg shows the glitch overlay.
type GlitchMsg struct {
	Text string
}

// GlitchHideMsg hides the glitch overlay.
type GlitchHideMsg struct{}

// WhisperMsg shows the whisper overlay.
type WhisperMsg struct {
	Entry model.Entry
}

// WhisperHideMsg hides the whisper overlay.
type WhisperHideMsg struct{}

// Sender delivers messages into a running program. *tea.Program satisfies it.
type Sender interface {
	Send(msg tea.Msg)
}

// Presenter forwards scheduler display calls to the program's event loop.
// Calls made before Attach are dropped.
type Presenter struct {
	mu     sync.Mutex
	sender Sender
}

// NewPresenter creates a detached presenter.
func NewPresenter() *Presenter {
	return &Presenter{}
}

// Attach connects the presenter to a program.
func (p *Presenter) Attach(s Sender) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.sender = s
}

func (p *Presenter) send(msg tea.Msg) {
	p.mu.Lock()
	s := p.sender
	p.mu.Unlock()
	if s != nil {
		s.Send(msg)
	}
}

// ShowGlitch implements whisper.Presenter.
func (p *Presenter) ShowGlitch(text string) { p.send(GlitchMsg{Text: text}) }

// HideGlitch implements whisper.Presenter.
func (p *Presenter) HideGlitch() { p.send(GlitchHideMsg{}) }

// ShowWhisper implements whisper.Presenter.
func (p *Presenter) ShowWhisper(e model.Entry) { p.send(WhisperMsg{Entry: e}) }

// HideWhisper implements whisper.Presenter.
func (p *Presenter) HideWhisper() { p.send(WhisperHideMsg{}) }
