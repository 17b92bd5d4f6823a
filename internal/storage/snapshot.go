// Package storage persists pipeline outputs as flat JSON snapshots.
// Every write is a full overwrite through a temp file + rename so a
// mid-run crash never leaves a half-written file visible to readers.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/redis/go-redis/v9"
)

// Snapshot file names, relative to the store directory.
const (
	FileNews          = "news.json"
	FileUpdateSummary = "update-summary.json"
	FileEnhanced      = "processed/articles-enhanced.json"
	FileAnalytics     = "processed/analytics.json"
	FileTrending      = "processed/trending.json"
	FileSourceStats   = "processed/sources-stats.json"
	FileSummary       = "processed/summary.json"
)

const cacheTTL = 5 * time.Minute

// ErrSnapshotMissing marks an absent upstream snapshot; callers
// recover by emitting placeholder output, never by aborting.
var ErrSnapshotMissing = errors.New("snapshot not found")

// IsMissing reports whether err marks an absent snapshot.
func IsMissing(err error) bool {
	return errors.Is(err, ErrSnapshotMissing)
}

// Store reads and writes the snapshot directory. Redis, when
// configured, is a read-through cache for the API layer only; the
// files stay the source of truth.
type Store struct {
	Dir   string
	Redis *redis.Client
}

func NewStore(dir, redisAddr string) (*Store, error) {
	if err := os.MkdirAll(filepath.Join(dir, "processed"), 0o755); err != nil {
		return nil, fmt.Errorf("create snapshot dir: %w", err)
	}

	var rdb *redis.Client
	if redisAddr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: redisAddr})
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Printf("warn: redis ping failed: %v", err)
		}
	}

	return &Store{Dir: dir, Redis: rdb}, nil
}

// WriteJSON atomically replaces one snapshot file with the indented
// JSON encoding of v.
func (s *Store) WriteJSON(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", name, err)
	}

	path := filepath.Join(s.Dir, name)
	tmp, err := os.CreateTemp(filepath.Dir(path), ".snapshot-*")
	if err != nil {
		return fmt.Errorf("temp file for %s: %w", name, err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close %s: %w", name, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace %s: %w", name, err)
	}

	// Best-effort cache refresh; TTL expiry covers the rest.
	if s.Redis != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = s.Redis.Set(ctx, cacheKey(name), data, cacheTTL).Err()
	}
	return nil
}

// ReadJSON decodes one snapshot file into v. A missing file maps to
// ErrSnapshotMissing.
func (s *Store) ReadJSON(name string, v any) error {
	data, err := s.ReadRaw(name)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}

// ReadRaw returns one snapshot's bytes, via the Redis cache when one
// is configured.
func (s *Store) ReadRaw(name string) ([]byte, error) {
	if s.Redis != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if data, err := s.Redis.Get(ctx, cacheKey(name)).Bytes(); err == nil {
			return data, nil
		}
	}

	data, err := os.ReadFile(filepath.Join(s.Dir, name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrSnapshotMissing, name)
		}
		return nil, fmt.Errorf("read %s: %w", name, err)
	}

	if s.Redis != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = s.Redis.Set(ctx, cacheKey(name), data, cacheTTL).Err()
	}
	return data, nil
}

func cacheKey(name string) string {
	return "snapshot:" + name
}
