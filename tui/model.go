// Package tui is the terminal front panel: it maps the keyboard onto
// the control surface and renders the engine status, pattern grid and
// status LED. It never touches engine state directly; everything goes
// through the control surface and the published status snapshot.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"go-beatbox/audio"
	"go-beatbox/control"
	"go-beatbox/debug"
	"go-beatbox/engine"
	"go-beatbox/theme"
)

const (
	knobStep = 0.02
	fps      = 30
)

type tickMsg time.Time

type Model struct {
	stream  *audio.Stream
	surface *control.Surface

	tempoBar  progress.Model
	volumeBar progress.Model
	symbols   theme.Symbols

	frame    int
	quitting bool
}

func NewModel(stream *audio.Stream, surface *control.Surface) Model {
	tempoBar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	tempoBar.Width = 24
	volumeBar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	volumeBar.Width = 24
	return Model{
		stream:    stream,
		surface:   surface,
		tempoBar:  tempoBar,
		volumeBar: volumeBar,
		symbols:   theme.DefaultSymbols(),
	}
}

func tick() tea.Cmd {
	return tea.Tick(time.Second/fps, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "a":
			m.surface.PressKick()
		case "s":
			m.surface.PressSnare()
		case "e", "enter":
			m.surface.PressEncoder()

		case "[":
			m.surface.Turn(-1)
		case "]":
			m.surface.Turn(1)

		case "left":
			m.surface.SetTempo(m.surface.Tempo() - knobStep)
		case "right":
			m.surface.SetTempo(m.surface.Tempo() + knobStep)
		case "down":
			m.surface.SetVolume(m.surface.Volume() - knobStep)
		case "up":
			m.surface.SetVolume(m.surface.Volume() + knobStep)
		}

	case tickMsg:
		m.frame++
		st := m.stream.Status()
		debug.LogEvery(fps*10, "tui", "bpm=%.0f mode=%s playing=%v step=%d kit=%d",
			st.BPM, st.Mode, st.Playing, st.Step, st.Kit)
		return m, tick()
	}

	return m, nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	st := m.stream.Status()
	kitColor := theme.RGB(st.KitColor)
	led := theme.RGB(st.LED)
	if st.Playing && m.frame%fps < fps/4 {
		// quarter-second pulse while the pattern runs
		led = theme.Blend(led, theme.RGB{255, 255, 255}, 0.6)
	}

	headerStyle := lipgloss.NewStyle().Foreground(theme.Color(kitColor)).Bold(true)
	dimStyle := lipgloss.NewStyle().Faint(true)

	playState := "stopped"
	if st.Playing {
		playState = fmt.Sprintf("step %02d/%02d", st.Step, st.StepCount)
	}
	header := headerStyle.Render(fmt.Sprintf("go-beatbox  %3.0f bpm  %s  kit %d/%d %s",
		st.BPM, st.Mode, st.Kit+1, len(engine.Kits), st.KitName))
	statusLine := fmt.Sprintf("%s led  %s  %s", theme.Swatch(led), st.Mode, playState)

	var out strings.Builder
	out.WriteString("\n")
	out.WriteString(header)
	out.WriteString("\n")
	out.WriteString(statusLine)
	out.WriteString("\n\n")

	out.WriteString(m.grid(st))
	out.WriteString("\n")

	out.WriteString(fmt.Sprintf("tempo  %s\n", m.tempoBar.ViewAs(float64((st.BPM-60)/120))))
	out.WriteString(fmt.Sprintf("volume %s\n", m.volumeBar.ViewAs(float64(st.Volume))))

	out.WriteString("\n")
	out.WriteString(dimStyle.Render("a:kick  s:snare  e:mode  [/]:kit  ←/→:tempo  ↑/↓:volume  q:quit"))
	out.WriteString("\n")
	return out.String()
}

// grid renders one line per pattern row, sixteen steps per bar. While
// stopped partway or at the end of a run, the already-played region is
// shown dimmed with done markers.
func (m Model) grid(st engine.Status) string {
	pat := engine.Patterns[st.Pattern]
	activeStyle := lipgloss.NewStyle().Foreground(theme.Color(theme.RGB(st.KitColor)))
	playedStyle := lipgloss.NewStyle().Foreground(theme.Color(theme.Dim(theme.RGB(st.KitColor), 0.4)))
	headStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Bold(true)
	dimStyle := lipgloss.NewStyle().Faint(true)

	rows := []struct {
		name string
		role engine.Role
	}{
		{"kick ", engine.RoleKick},
		{"snare", engine.RoleSnare},
		{"hihat", engine.RoleHiHat},
	}

	var out strings.Builder
	for _, row := range rows {
		out.WriteString(dimStyle.Render(row.name))
		out.WriteString(" ")
		for step := 0; step < pat.Steps(); step++ {
			if step > 0 && step%16 == 0 {
				out.WriteString(" ")
			}
			played := !st.Playing && step < st.Step
			switch {
			case st.Playing && step == st.Step:
				out.WriteString(headStyle.Render(string(m.symbols.StepPlayhead)))
			case pat.Hit(row.role, step) && played:
				out.WriteString(playedStyle.Render(string(m.symbols.StepActive)))
			case pat.Hit(row.role, step):
				out.WriteString(activeStyle.Render(string(m.symbols.StepActive)))
			case played:
				out.WriteString(dimStyle.Render(string(m.symbols.StepDone)))
			default:
				out.WriteString(dimStyle.Render(string(m.symbols.StepEmpty)))
			}
		}
		out.WriteString("\n")
	}
	return out.String()
}
