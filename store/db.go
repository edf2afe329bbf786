package store

import (
	"time"

	"github.com/ayoisaiah/pomo/internal/models"
)

// DB is the history storage interface.
type DB interface {
	// AddRecord stores a completed phase keyed by its end time
	AddRecord(r *models.Record) error
	// GetRecords returns the phases that ended within [since, until], oldest
	// first
	GetRecords(since, until time.Time) ([]*models.Record, error)
	// DeleteRecords removes the phases that ended within [since, until] and
	// reports how many were removed
	DeleteRecords(since, until time.Time) (int, error)
}
