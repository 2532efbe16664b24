// Package cache memoizes exact TSP results on disk.
//
// Solving is exponential in n, so the CLI keeps every outcome (including
// "no tour") in a bolthold store keyed by a BLAKE2b-256 digest of the
// validated matrix and its start node. Identical instances are answered
// without rebuilding the DP tables.
package cache

import (
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/timshannon/bolthold"
	"go.etcd.io/bbolt"
	"golang.org/x/crypto/blake2b"

	"github.com/katalvlaran/tspdp/tsp"
)

// Entry is one stored outcome.
type Entry struct {
	Key       string   `json:"key" boltholdIndex:"Key"`
	N         int      `json:"n"`
	Start     int      `json:"start"`
	Found     bool     `json:"found"`
	Cost      tsp.Cost `json:"cost"`
	Path      []int    `json:"path"`
	CreatedAt int64    `json:"createdAt" boltholdIndex:"CreatedAt"`
}

// Tour returns the stored tour; ok is false for a cached "no tour".
func (e Entry) Tour() (tsp.Tour, bool) {
	if !e.Found {
		return tsp.Tour{}, false
	}
	return tsp.Tour{Cost: e.Cost, Path: append([]int(nil), e.Path...)}, true
}

// Store is an open result cache. It is safe for use by one process at a time;
// a second process blocks on the file lock for up to the open timeout.
type Store struct {
	db     *bolthold.Store
	logger logrus.FieldLogger
}

// Open opens (creating if needed) the store in dir. An empty dir resolves to
// <user cache dir>/tspdp. A nil logger discards output.
func Open(dir string, logger logrus.FieldLogger) (*Store, error) {
	if logger == nil {
		discard := logrus.New()
		discard.Out = io.Discard
		logger = discard
	}
	logger = logger.WithField("module", "cache")

	if dir == "" {
		base, err := os.UserCacheDir()
		if err != nil {
			return nil, errors.Wrap(err, "resolving cache dir")
		}
		dir = filepath.Join(base, "tspdp")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "creating cache dir %s", dir)
	}

	db, err := bolthold.Open(filepath.Join(dir, "results.db"), 0o644, &bolthold.Options{
		Encoder: json.Marshal,
		Decoder: json.Unmarshal,
		Options: &bbolt.Options{
			Timeout:      5 * time.Second,
			NoGrowSync:   bbolt.DefaultOptions.NoGrowSync,
			FreelistType: bbolt.DefaultOptions.FreelistType,
		},
	})
	if err != nil {
		return nil, errors.Wrapf(err, "opening cache in %s", dir)
	}
	logger.Debugf("opened result cache in %s", dir)

	return &Store{db: db, logger: logger}, nil
}

// Close releases the database file.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// Key returns the hex digest identifying m: order, start node and every
// off-diagonal cost. The diagonal is never read by the solver and is left out.
func Key(m *tsp.Matrix) string {
	n := m.N()
	buf := make([]byte, 0, 16+8*n*n)
	buf = binary.LittleEndian.AppendUint64(buf, uint64(n))
	buf = binary.LittleEndian.AppendUint64(buf, uint64(m.Start()))
	for i := 0; i < n; i++ {
		for j, c := range m.Row(i) {
			if i == j {
				continue
			}
			buf = binary.LittleEndian.AppendUint64(buf, uint64(c))
		}
	}
	sum := blake2b.Sum256(buf)
	return hex.EncodeToString(sum[:])
}

// Get looks up the outcome for m. hit is false when nothing is stored.
func (s *Store) Get(m *tsp.Matrix) (e Entry, hit bool, err error) {
	key := Key(m)
	if err = s.db.Get(key, &e); err != nil {
		if errors.Is(err, bolthold.ErrNotFound) {
			s.logger.WithField("key", key[:12]).Debug("cache miss")
			return Entry{}, false, nil
		}
		return Entry{}, false, errors.Wrapf(err, "reading cache entry %s", key)
	}
	s.logger.WithField("key", key[:12]).Debug("cache hit")

	return e, true, nil
}

// Put stores the outcome for m, replacing any previous entry.
func (s *Store) Put(m *tsp.Matrix, t tsp.Tour, found bool) error {
	e := Entry{
		Key:       Key(m),
		N:         m.N(),
		Start:     m.Start(),
		Found:     found,
		CreatedAt: time.Now().Unix(),
	}
	if found {
		e.Cost = t.Cost
		e.Path = append([]int(nil), t.Path...)
	}
	if err := s.db.Upsert(e.Key, &e); err != nil {
		return errors.Wrapf(err, "writing cache entry %s", e.Key)
	}
	s.logger.WithFields(logrus.Fields{"key": e.Key[:12], "found": found}).Debug("cache store")

	return nil
}

// Prune deletes entries created before cutoff and returns how many were removed.
func (s *Store) Prune(cutoff time.Time) (int, error) {
	var old []Entry
	if err := s.db.Find(&old, bolthold.Where("CreatedAt").Lt(cutoff.Unix())); err != nil {
		return 0, errors.Wrap(err, "scanning cache")
	}
	for i := range old {
		if err := s.db.Delete(old[i].Key, &Entry{}); err != nil {
			return i, errors.Wrapf(err, "deleting cache entry %s", old[i].Key)
		}
	}
	if len(old) > 0 {
		s.logger.Infof("pruned %d cache entries", len(old))
	}

	return len(old), nil
}
