package config

import (
	"errors"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
)

const asciiLogo = `
██████╗  ██████╗ ███╗   ███╗ ██████╗
██╔══██╗██╔═══██╗████╗ ████║██╔═══██╗
██████╔╝██║   ██║██╔████╔██║██║   ██║
██╔═══╝ ██║   ██║██║╚██╔╝██║██║   ██║
██║     ╚██████╔╝██║ ╚═╝ ██║╚██████╔╝
╚═╝      ╚═════╝ ╚═╝     ╚═╝ ╚═════╝`

// PromptOptions holds the user's responses to the first-run prompts.
type PromptOptions struct {
	Sound  bool
	Notify bool
}

// Prompter asks the first-run questions.
type Prompter func() (PromptOptions, error)

// WithPromptConfig returns an Option that asks the first-run questions when
// no config file exists at configPath. A nil ask uses the interactive form.
func WithPromptConfig(configPath string, ask Prompter) Option {
	return func(c *Config) error {
		_, err := os.Stat(configPath)
		if err == nil || !errors.Is(err, os.ErrNotExist) {
			return err
		}

		if ask == nil {
			ask = promptUser
		}

		opts, err := ask()
		if err != nil {
			return errPrompt.Wrap(err)
		}

		applyPromptOptions(c, opts)

		return nil
	}
}

// promptUser handles the interactive configuration process.
func promptUser() (PromptOptions, error) {
	opts := PromptOptions{
		Sound:  true,
		Notify: true,
	}

	pterm.Println(asciiLogo)

	_ = putils.BulletListFromString(`Answer the questions below to set up pomo for the first time.
Press ENTER to accept the defaults.
Edit the config file with 'pomo edit-config' to change any settings.`, " ").
		Render()

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Play a bell when a session or break ends?").
				Value(&opts.Sound),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Show a desktop notification when a session or break ends?").
				Value(&opts.Notify),
		),
	)

	if err := form.Run(); err != nil {
		return opts, err
	}

	return opts, nil
}

// applyPromptOptions applies the user's prompt responses to the configuration.
func applyPromptOptions(c *Config, opts PromptOptions) {
	c.Settings.Sound = opts.Sound
	c.Notifications.Enabled = opts.Notify
}
