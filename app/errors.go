package app

import "github.com/ayoisaiah/pomo/internal/apperr"

var (
	errParseSince = &apperr.Error{
		Message: "unable to understand --since value %q",
	}

	errInvalidRange = &apperr.Error{
		Message: "--since must not be in the future",
	}

	errOpenHistory = &apperr.Error{
		Message: "unable to open the history database",
	}

	errEncodeHistory = &apperr.Error{
		Message: "unable to encode history as JSON",
	}

	errEditor = &apperr.Error{
		Message: "editor %q exited with an error",
	}
)
