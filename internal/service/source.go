package service

import (
	"bytes"
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/ranjidha/myHealth/internal/cache"
	"github.com/ranjidha/myHealth/internal/logcsv"
	"github.com/ranjidha/myHealth/internal/model"
	"github.com/ranjidha/myHealth/internal/provider/sheets"
)

// DefaultSheetTTL is how long a fetched sheet stays fresh.
const DefaultSheetTTL = 5 * time.Minute

// SheetSource serves the published-sheet collection with short-lived
// caching: an in-process value for repeated loads within one run, and
// an optional sqlite snapshot so separate runs inside the TTL window
// skip the network too. The cache starts empty, refreshes on expiry,
// and has no manual invalidation path. Fetch failures propagate; a
// stale cache is never served in their place.
type SheetSource struct {
	Client    *sheets.Client
	Snapshots *cache.Cache     // nil disables the on-disk snapshot tier
	TTL       time.Duration    // 0 means DefaultSheetTTL
	Logger    *zap.Logger      // nil means no logging
	Now       func() time.Time // nil means time.Now

	mu        sync.Mutex
	fetchedAt time.Time
	logs      []model.DailyLog
}

// Load returns the collection, ascending by date, fetching only when
// the cached value has aged past the TTL.
func (s *SheetSource) Load(ctx context.Context) ([]model.DailyLog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if !s.fetchedAt.IsZero() && now.Sub(s.fetchedAt) < s.ttl() {
		s.logger().Debug("sheet cache hit", zap.Time("fetched_at", s.fetchedAt))
		return copyLogs(s.logs), nil
	}

	if s.Snapshots != nil {
		snap, found, err := s.Snapshots.Get(s.Client.URL)
		if err != nil {
			return nil, err
		}
		if found {
			logs, err := logcsv.Decode(bytes.NewReader(snap.Payload))
			if err != nil {
				return nil, fmt.Errorf("decode sheet snapshot: %w", err)
			}
			s.fetchedAt = snap.FetchedAt
			s.logs = logs
			s.logger().Debug("sheet snapshot hit", zap.Time("fetched_at", snap.FetchedAt))
			return copyLogs(logs), nil
		}
	}

	logs, raw, err := s.Client.FetchLogs(ctx)
	if err != nil {
		return nil, err
	}
	if s.Snapshots != nil {
		if err := s.Snapshots.Put(s.Client.URL, raw, now, s.ttl()); err != nil {
			return nil, err
		}
	}
	s.fetchedAt = now
	s.logs = logs
	s.logger().Debug("sheet fetched", zap.Int("entries", len(logs)))
	return copyLogs(logs), nil
}

func (s *SheetSource) ttl() time.Duration {
	if s.TTL <= 0 {
		return DefaultSheetTTL
	}
	return s.TTL
}

func (s *SheetSource) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}

func (s *SheetSource) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

func copyLogs(logs []model.DailyLog) []model.DailyLog {
	out := make([]model.DailyLog, len(logs))
	copy(out, logs)
	return out
}
