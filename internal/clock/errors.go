package clock

import "github.com/ayoisaiah/pomo/internal/apperr"

var (
	errAlertPlay = &apperr.Error{
		Message: "unable to play the alert at the end of the %s phase",
	}

	errAlertReset = &apperr.Error{
		Message: "unable to rewind the alert",
	}
)
