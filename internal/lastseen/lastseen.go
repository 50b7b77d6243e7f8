// Package lastseen tracks when the activity feed was last viewed. It is
// stored under its own key, independent of the state snapshot.
package lastseen

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/mmynk/splitbeam/internal/storage"
)

// Tracker reads and writes the last-viewed timestamp.
type Tracker struct {
	kv    storage.KV
	clock func() time.Time
}

// New creates a Tracker over kv. kv may be nil, in which case nothing is
// remembered and Get always reports the zero time.
func New(kv storage.KV, clock func() time.Time) *Tracker {
	if clock == nil {
		clock = time.Now
	}
	return &Tracker{kv: kv, clock: clock}
}

// Get returns the last-viewed time, or the zero time when none is stored or
// the stored value cannot be parsed.
func (t *Tracker) Get(ctx context.Context) time.Time {
	if t.kv == nil {
		return time.Time{}
	}

	raw, ok, err := t.kv.Get(ctx, storage.LastSeenKey)
	if err != nil {
		slog.Warn("Failed to read last-viewed time", "error", err)
		return time.Time{}
	}
	if !ok {
		return time.Time{}
	}

	ts, err := Parse(raw)
	if err != nil {
		slog.Warn("Ignoring unparsable last-viewed time", "value", raw, "error", err)
		return time.Time{}
	}
	return ts
}

// MarkAllViewed records the current time and returns it.
func (t *Tracker) MarkAllViewed(ctx context.Context) (time.Time, error) {
	now := t.clock().UTC()
	return now, t.MarkViewedAt(ctx, now)
}

// MarkViewedAt records ts as the last-viewed time.
func (t *Tracker) MarkViewedAt(ctx context.Context, ts time.Time) error {
	if t.kv == nil {
		return nil
	}
	return t.kv.Set(ctx, storage.LastSeenKey, Format(ts))
}

// Format renders ts as RFC 3339 with nanoseconds in UTC.
func Format(ts time.Time) string {
	return ts.UTC().Format(time.RFC3339Nano)
}

// Parse accepts an RFC 3339 timestamp or a legacy integer count of
// milliseconds since the Unix epoch.
func Parse(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if ms, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return time.UnixMilli(ms).UTC(), nil
	}
	ts, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}, err
	}
	return ts.UTC(), nil
}
