package timer

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/adrg/xdg"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/gen2brain/beeep"
	"github.com/kballard/go-shellquote"

	"github.com/ayoisaiah/pomo/internal/clock"
	"github.com/ayoisaiah/pomo/internal/models"
)

const (
	hookNotify  = "notification"
	hookCommand = "session command"
	hookHistory = "history"

	envPhase = "POMO_PHASE"
)

var messages = map[clock.Phase]string{
	clock.Session: "Focus on your task",
	clock.Break:   "Take a breather",
}

// desktopNotify sends a desktop notification using the bundled icon when one
// is installed.
func desktopNotify(title, message string) error {
	// pathToIcon will be an empty string if file is not found
	pathToIcon, _ := xdg.SearchDataFile(filepath.Join("pomo", "icon.png"))

	return beeep.Notify(title, message, pathToIcon)
}

// runSessionCmd executes command with the phase that just ended exposed in
// the environment.
func runSessionCmd(command string, ended clock.Phase) error {
	cmdSlice, err := shellquote.Split(command)
	if err != nil {
		return fmt.Errorf("unable to parse session command: %w", err)
	}

	if len(cmdSlice) == 0 {
		return nil
	}

	cmd := exec.Command(cmdSlice[0], cmdSlice[1:]...)
	cmd.Env = append(os.Environ(), envPhase+"="+ended.String())

	return cmd.Run()
}

// phaseEnded returns the commands that run after ended gives way to the next
// phase. None of them touch the engine.
func (t *Timer) phaseEnded(ended clock.Phase) tea.Cmd {
	now := t.now()

	var cmds []tea.Cmd

	if t.db != nil {
		rec := &models.Record{
			Phase:     ended.String(),
			StartTime: t.phaseStart,
			EndTime:   now,
			Minutes:   t.engine.Setter(ended).Minutes(),
		}

		if rec.StartTime.IsZero() {
			rec.StartTime = now
		}

		cmds = append(cmds, func() tea.Msg {
			return hookMsg{hook: hookHistory, err: t.db.AddRecord(rec)}
		})
	}

	if t.opts.Notifications.Enabled && t.notify != nil {
		next := ended.Next()
		title := ended.String() + " is finished"
		msg := messages[next]

		cmds = append(cmds, func() tea.Msg {
			return hookMsg{hook: hookNotify, err: t.notify(title, msg)}
		})
	}

	if command := t.opts.Settings.Cmd; command != "" && t.run != nil {
		cmds = append(cmds, func() tea.Msg {
			return hookMsg{hook: hookCommand, err: t.run(command, ended)}
		})
	}

	t.phaseStart = now

	return tea.Batch(cmds...)
}
