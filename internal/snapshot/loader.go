package snapshot

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/box-office-league/internal/logger"
	"github.com/iliyamo/box-office-league/internal/sheet"
)

// Mode selects the caching behavior of a Load call.  Pure-read pages use
// Cached; anything that just wrote (or is about to write) uses Bypass so the
// caller never sees stale post-write state.
type Mode int

const (
	// Cached serves from the TTL cache when fresh and populates it on a miss.
	Cached Mode = iota
	// Bypass always hits the store and refreshes the cache with the result.
	Bypass
)

// Loader fetches worksheet snapshots through a sheet.Store and memoizes them
// for a fixed TTL.  When a Redis client is available the cache is shared
// across instances, one key per table; otherwise an in-process map does the
// same job for a single instance.  Either way a cache failure degrades to a
// direct store read, never to a request failure.
type Loader struct {
	store sheet.Store
	rdb   *redis.Client
	ttl   time.Duration
	log   *logger.Logger

	mu  sync.Mutex
	mem map[string]memEntry
}

type memEntry struct {
	table     Table
	expiresAt time.Time
}

// NewLoader builds a Loader.  rdb may be nil.
func NewLoader(store sheet.Store, rdb *redis.Client, ttl time.Duration, log *logger.Logger) *Loader {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &Loader{
		store: store,
		rdb:   rdb,
		ttl:   ttl,
		log:   log,
		mem:   make(map[string]memEntry),
	}
}

// Load fetches the named tables as one snapshot.  An unknown table surfaces
// sheet.ErrTableNotFound; an unreachable store surfaces *sheet.ConnectionError.
// No partial snapshot is returned on error, so callers can trust that every
// requested table is present on success.
func (l *Loader) Load(ctx context.Context, mode Mode, tables ...string) (*Snapshot, error) {
	snap := &Snapshot{
		Tables:  make(map[string]Table, len(tables)),
		TakenAt: time.Now().UTC(),
	}
	for _, name := range tables {
		if mode == Cached {
			if t, ok := l.cacheGet(ctx, name); ok {
				snap.Tables[name] = t
				continue
			}
		}
		grid, err := l.store.ReadTable(ctx, name)
		if err != nil {
			return nil, err
		}
		t := FromGrid(grid)
		l.cacheSet(ctx, name, t)
		snap.Tables[name] = t
	}
	return snap, nil
}

// Invalidate drops the cache entries for the named tables so the next Load
// reflects writes that just happened.
func (l *Loader) Invalidate(ctx context.Context, tables ...string) {
	for _, name := range tables {
		if l.rdb != nil {
			if err := l.rdb.Del(ctx, cacheKey(name)).Err(); err != nil {
				l.log.Warn("snapshot cache invalidate failed", "table", name, "error", err)
			}
		}
		l.mu.Lock()
		delete(l.mem, name)
		l.mu.Unlock()
	}
}

// TTL reports the configured snapshot lifetime.
func (l *Loader) TTL() time.Duration { return l.ttl }

func cacheKey(table string) string { return "snapshot:" + table }

func (l *Loader) cacheGet(ctx context.Context, name string) (Table, bool) {
	if l.rdb != nil {
		raw, err := l.rdb.Get(ctx, cacheKey(name)).Bytes()
		if err == nil {
			var t Table
			if jsonErr := json.Unmarshal(raw, &t); jsonErr == nil {
				return t, true
			}
		} else if err != redis.Nil {
			l.log.Debug("snapshot cache read failed", "table", name, "error", err)
		}
		return Table{}, false
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	entry, ok := l.mem[name]
	if !ok || time.Now().After(entry.expiresAt) {
		return Table{}, false
	}
	return entry.table, true
}

func (l *Loader) cacheSet(ctx context.Context, name string, t Table) {
	if l.rdb != nil {
		raw, err := json.Marshal(t)
		if err == nil {
			if setErr := l.rdb.Set(ctx, cacheKey(name), raw, l.ttl).Err(); setErr != nil {
				l.log.Debug("snapshot cache write failed", "table", name, "error", setErr)
			}
		}
		return
	}
	l.mu.Lock()
	l.mem[name] = memEntry{table: t, expiresAt: time.Now().Add(l.ttl)}
	l.mu.Unlock()
}
