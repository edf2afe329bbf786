package models

import (
	"time"
)

// Record is a completed session or break as stored in the history.
type Record struct {
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Phase     string    `json:"phase"`
	// Minutes is the configured length at the time the phase ended
	Minutes int `json:"minutes"`
}

// Duration returns the wall-clock time the phase took, including pauses.
func (r *Record) Duration() time.Duration {
	return r.EndTime.Sub(r.StartTime)
}
