// Package history persists scan results so waste can be tracked across
// runs.
package history

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.etcd.io/bbolt"

	"github.com/thefrederiksen/azprune/types"
)

var (
	bucketScans = []byte("scans")
	bucketMeta  = []byte("meta")
)

// Entry is one stored scan.
type Entry struct {
	RunID            string         `json:"run_id"`
	Timestamp        time.Time      `json:"timestamp"`
	SubscriptionID   string         `json:"subscription_id"`
	SubscriptionName string         `json:"subscription_name"`
	RecordCount      int            `json:"record_count"`
	TotalWaste       float64        `json:"total_waste"`
	Records          []types.Record `json:"records"`
}

// Store keeps scan history in a bbolt database.
type Store struct {
	db *bbolt.DB
}

// Open opens or creates the history database in dir.
func Open(dir string) (*Store, error) {
	dbPath := filepath.Join(dir, "azprune.db")

	db, err := bbolt.Open(dbPath, 0600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		for _, bucket := range [][]byte{bucketScans, bucketMeta} {
			if _, err := tx.CreateBucketIfNotExists(bucket); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveScan stores one scan result and returns its run ID. Keys are
// timestamp-prefixed so a cursor walks them in chronological order.
func (s *Store) SaveScan(subscriptionID, subscriptionName string, records []types.Record) (string, error) {
	entry := Entry{
		RunID:            uuid.New().String(),
		Timestamp:        time.Now().UTC(),
		SubscriptionID:   subscriptionID,
		SubscriptionName: subscriptionName,
		RecordCount:      len(records),
		TotalWaste:       types.TotalCost(records),
		Records:          records,
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return "", fmt.Errorf("encoding scan entry: %w", err)
	}

	key := fmt.Sprintf("%s/%s", entry.Timestamp.Format(time.RFC3339Nano), entry.RunID)
	err = s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketScans).Put([]byte(key), data)
	})
	if err != nil {
		return "", fmt.Errorf("storing scan: %w", err)
	}
	return entry.RunID, nil
}

// ListScans returns stored scans, newest first, up to limit. A limit of
// 0 returns everything. Records are included; callers that only need
// the summary can ignore them.
func (s *Store) ListScans(limit int) ([]Entry, error) {
	var entries []Entry

	err := s.db.View(func(tx *bbolt.Tx) error {
		c := tx.Bucket(bucketScans).Cursor()
		for k, v := c.Last(); k != nil; k, v = c.Prev() {
			if limit > 0 && len(entries) >= limit {
				break
			}
			var entry Entry
			if err := json.Unmarshal(v, &entry); err != nil {
				return fmt.Errorf("decoding scan entry %s: %w", k, err)
			}
			entries = append(entries, entry)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// GetScan returns one scan by run ID, nil when not found.
func (s *Store) GetScan(runID string) (*Entry, error) {
	var found *Entry

	err := s.db.View(func(tx *bbolt.Tx) error {
		c := tx.Bucket(bucketScans).Cursor()
		for k, v := c.Last(); k != nil; k, v = c.Prev() {
			var entry Entry
			if err := json.Unmarshal(v, &entry); err != nil {
				return err
			}
			if entry.RunID == runID {
				found = &entry
				return nil
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}
