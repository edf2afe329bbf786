package timer

import (
	"fmt"
	"strings"

	"github.com/ayoisaiah/pomo/internal/clock"
)

func (t *Timer) phaseView() string {
	phase := t.engine.Phase()

	label := t.style.session
	if phase == clock.Break {
		label = t.style.brk
	}

	var s strings.Builder

	s.WriteString(label.Render(phase.String()))

	if !t.engine.Running() {
		s.WriteString(t.style.secondary.Render("[Paused]"))
	}

	return s.String()
}

func (t *Timer) lengthsView() string {
	return t.style.hint.Render(fmt.Sprintf(
		"Session length: %d min · Break length: %d min",
		t.engine.Session().Minutes(),
		t.engine.Break().Minutes(),
	))
}

func (t *Timer) helpView() string {
	if t.engine.Running() {
		return t.help.ShortHelpView(defaultKeymap.runningHelp())
	}

	return t.help.ShortHelpView(defaultKeymap.pausedHelp())
}

func (t *Timer) View() string {
	var s strings.Builder

	s.WriteString(t.phaseView())
	s.WriteString("\n\n")
	s.WriteString(t.style.main.Render(t.engine.Format()))
	s.WriteString("\n\n")
	s.WriteString(t.progress.ViewAs(t.engine.Progress()))
	s.WriteString("\n\n")
	s.WriteString(t.lengthsView())
	s.WriteString("\n\n")
	s.WriteString(t.helpView())

	if t.err != nil {
		s.WriteString("\n\n")
		s.WriteString(t.style.err.Render(t.err.Error()))
	}

	return t.style.base.Render(s.String())
}
