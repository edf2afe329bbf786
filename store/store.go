// Package store keeps the history of completed phases in a Bolt database
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/ayoisaiah/pomo/internal/apperr"
	"github.com/ayoisaiah/pomo/internal/models"
	"github.com/ayoisaiah/pomo/internal/timeutil"
)

const (
	historyBucket = "history"

	fileMode    fs.FileMode = 0o600
	lockTimeout             = 1 * time.Second
)

var (
	errDBLocked = &apperr.Error{
		Message: "the history database is locked by another process",
	}

	errOpenDB = &apperr.Error{
		Message: "unable to open the history database",
	}

	errEncodeRecord = &apperr.Error{
		Message: "unable to encode history record",
	}

	errDecodeRecord = &apperr.Error{
		Message: "unable to decode history record %s",
	}
)

// Client is a BoltDB history client. The database file is opened for the
// duration of each call only, so that several instances can share it.
type Client struct {
	path string
}

// NewClient returns a client for the database at dbPath, creating the file
// and its bucket if they do not exist.
func NewClient(dbPath string) (*Client, error) {
	c := &Client{path: dbPath}

	err := c.update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(historyBucket))
		return err
	})
	if err != nil {
		return nil, err
	}

	return c, nil
}

// AddRecord stores r keyed by its end time, overwriting any record that
// ended at the same instant.
func (c *Client) AddRecord(r *models.Record) error {
	value, err := json.Marshal(r)
	if err != nil {
		return errEncodeRecord.Wrap(err)
	}

	return c.update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(historyBucket)).Put(timeutil.ToKey(r.EndTime), value)
	})
}

// GetRecords returns the records that ended within [since, until], oldest
// first.
func (c *Client) GetRecords(since, until time.Time) ([]*models.Record, error) {
	var records []*models.Record

	err := c.view(func(tx *bolt.Tx) error {
		return scan(tx, since, until, func(k, v []byte) error {
			r := &models.Record{}

			if err := json.Unmarshal(v, r); err != nil {
				return errDecodeRecord.Fmt(string(k)).Wrap(err)
			}

			records = append(records, r)

			return nil
		})
	})

	return records, err
}

// DeleteRecords removes the records that ended within [since, until].
func (c *Client) DeleteRecords(since, until time.Time) (int, error) {
	var n int

	err := c.update(func(tx *bolt.Tx) error {
		var keys [][]byte

		err := scan(tx, since, until, func(k, _ []byte) error {
			keys = append(keys, bytes.Clone(k))
			return nil
		})
		if err != nil {
			return err
		}

		b := tx.Bucket([]byte(historyBucket))

		for _, k := range keys {
			if err := b.Delete(k); err != nil {
				return err
			}

			n++
		}

		return nil
	})

	return n, err
}

// scan calls fn for every record whose key falls in [since, until].
func scan(tx *bolt.Tx, since, until time.Time, fn func(k, v []byte) error) error {
	cur := tx.Bucket([]byte(historyBucket)).Cursor()

	lower := timeutil.ToKey(since)
	upper := timeutil.ToKey(until)

	for k, v := cur.Seek(lower); k != nil && bytes.Compare(k, upper) <= 0; k, v = cur.Next() {
		if err := fn(k, v); err != nil {
			return err
		}
	}

	return nil
}

func (c *Client) view(fn func(tx *bolt.Tx) error) error {
	db, err := openDB(c.path)
	if err != nil {
		return err
	}

	defer db.Close()

	return db.View(fn)
}

func (c *Client) update(fn func(tx *bolt.Tx) error) error {
	db, err := openDB(c.path)
	if err != nil {
		return err
	}

	defer db.Close()

	return db.Update(fn)
}

// openDB opens the database and locks it.
func openDB(pathToDB string) (*bolt.DB, error) {
	db, err := bolt.Open(
		pathToDB,
		fileMode,
		&bolt.Options{Timeout: lockTimeout},
	)
	if err != nil {
		if errors.Is(err, bolt.ErrDatabaseOpen) ||
			errors.Is(err, bolt.ErrTimeout) {
			return nil, errDBLocked.Wrap(err)
		}

		return nil, errOpenDB.Wrap(err)
	}

	return db, nil
}
