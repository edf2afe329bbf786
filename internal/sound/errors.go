package sound

import "github.com/ayoisaiah/pomo/internal/apperr"

var (
	errSpeakerInit = &apperr.Error{
		Message: "unable to initialise the speaker",
	}

	errSynthesise = &apperr.Error{
		Message: "unable to synthesise the bell",
	}

	errSeek = &apperr.Error{
		Message: "unable to seek the bell",
	}
)
