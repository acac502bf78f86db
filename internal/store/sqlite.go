package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/klauspost/compress/zstd"
	_ "modernc.org/sqlite"

	"github.com/i474232898/india-weather-history/internal/weather"
)

const historySchema = `
	CREATE TABLE IF NOT EXISTS history_cache (
		key TEXT PRIMARY KEY,
		tier TEXT NOT NULL,
		payload BLOB NOT NULL,
		stored_at INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_history_cache_stored_at ON history_cache(stored_at);
`

// SQLiteHistoryCache persists resolution results across restarts. Payloads
// are JSON compressed with zstd. Entries older than the TTL are treated as
// misses and removed by Prune.
type SQLiteHistoryCache struct {
	db      *sql.DB
	ttl     time.Duration
	encoder *zstd.Encoder
	decoder *zstd.Decoder
	now     func() time.Time
}

// OpenSQLiteHistoryCache opens (creating if needed) the cache database at path.
func OpenSQLiteHistoryCache(path string, ttl time.Duration) (*SQLiteHistoryCache, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating cache directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening history cache: %w", err)
	}
	// SQLite serializes writers; a single connection avoids SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(historySchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating history_cache table: %w", err)
	}

	encoder, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating zstd encoder: %w", err)
	}
	decoder, err := zstd.NewReader(nil)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating zstd decoder: %w", err)
	}

	return &SQLiteHistoryCache{
		db:      db,
		ttl:     ttl,
		encoder: encoder,
		decoder: decoder,
		now:     time.Now,
	}, nil
}

func (c *SQLiteHistoryCache) Get(ctx context.Context, key string) (weather.ResolutionResult, bool, error) {
	var (
		payload  []byte
		storedAt int64
	)
	err := c.db.QueryRowContext(ctx,
		`SELECT payload, stored_at FROM history_cache WHERE key = ?`, key,
	).Scan(&payload, &storedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return weather.ResolutionResult{}, false, nil
	}
	if err != nil {
		return weather.ResolutionResult{}, false, fmt.Errorf("reading history cache: %w", err)
	}

	if c.ttl > 0 && c.now().Sub(time.Unix(storedAt, 0)) > c.ttl {
		return weather.ResolutionResult{}, false, nil
	}

	raw, err := c.decoder.DecodeAll(payload, nil)
	if err != nil {
		return weather.ResolutionResult{}, false, fmt.Errorf("zstd decompression failed: %w", err)
	}
	var result weather.ResolutionResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return weather.ResolutionResult{}, false, fmt.Errorf("decoding cached result: %w", err)
	}
	return result, true, nil
}

func (c *SQLiteHistoryCache) Put(ctx context.Context, key string, result weather.ResolutionResult) error {
	raw, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}
	payload := c.encoder.EncodeAll(raw, nil)

	_, err = c.db.ExecContext(ctx, `
		INSERT INTO history_cache (key, tier, payload, stored_at) VALUES (?, ?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET tier = excluded.tier, payload = excluded.payload, stored_at = excluded.stored_at`,
		key, string(result.Tier), payload, c.now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("writing history cache: %w", err)
	}
	return nil
}

// Prune deletes expired entries and returns how many were removed.
func (c *SQLiteHistoryCache) Prune(ctx context.Context) (int64, error) {
	if c.ttl <= 0 {
		return 0, nil
	}
	cutoff := c.now().Add(-c.ttl).Unix()
	res, err := c.db.ExecContext(ctx, `DELETE FROM history_cache WHERE stored_at < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("pruning history cache: %w", err)
	}
	return res.RowsAffected()
}

// Close releases the database and codecs.
func (c *SQLiteHistoryCache) Close() error {
	c.decoder.Close()
	if err := c.encoder.Close(); err != nil {
		c.db.Close()
		return err
	}
	return c.db.Close()
}
