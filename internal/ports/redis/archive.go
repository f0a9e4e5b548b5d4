package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"euchre/internal/app"
	"euchre/internal/ports"

	goredis "github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	// DefaultKey is the list hands are appended to.
	DefaultKey = "euchre:hands"
	// DefaultMaxHands caps the list; older hands are trimmed first.
	DefaultMaxHands = 1000
	// DefaultTTL expires an idle archive.
	DefaultTTL = 7 * 24 * time.Hour
)

// listClient is the subset of *goredis.Client the archive needs.
type listClient interface {
	RPush(ctx context.Context, key string, values ...interface{}) *goredis.IntCmd
	LTrim(ctx context.Context, key string, start, stop int64) *goredis.StatusCmd
	Expire(ctx context.Context, key string, expiration time.Duration) *goredis.BoolCmd
	LRange(ctx context.Context, key string, start, stop int64) *goredis.StringSliceCmd
}

// HandArchive appends hand records as JSON to a capped redis list.
type HandArchive struct {
	client   listClient
	logger   *zap.Logger
	Key      string
	MaxHands int64
	TTL      time.Duration
}

var (
	_ ports.HandArchive = (*HandArchive)(nil)
	_ ports.HandHistory = (*HandArchive)(nil)
)

// NewHandArchive connects to addr. The connection is checked with PING.
func NewHandArchive(ctx context.Context, addr string, logger *zap.Logger) (*HandArchive, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr: addr,
		DB:   0,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping %s: %w", addr, err)
	}
	return newHandArchive(client, logger), nil
}

func newHandArchive(client listClient, logger *zap.Logger) *HandArchive {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HandArchive{
		client:   client,
		logger:   logger,
		Key:      DefaultKey,
		MaxHands: DefaultMaxHands,
		TTL:      DefaultTTL,
	}
}

// SaveHand appends record and trims the list to MaxHands.
func (a *HandArchive) SaveHand(ctx context.Context, record app.HandRecord) error {
	value, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal hand %s: %w", record.ID, err)
	}

	length, err := a.client.RPush(ctx, a.Key, value).Result()
	if err != nil {
		a.logger.Error("archive hand failed", zap.String("hand_id", record.ID), zap.Error(err))
		return fmt.Errorf("archive hand %s: %w", record.ID, err)
	}
	if a.MaxHands > 0 && length > a.MaxHands {
		if err := a.client.LTrim(ctx, a.Key, -a.MaxHands, -1).Err(); err != nil {
			a.logger.Warn("trim hand archive failed", zap.String("key", a.Key), zap.Error(err))
		}
	}
	if a.TTL > 0 {
		if err := a.client.Expire(ctx, a.Key, a.TTL).Err(); err != nil {
			a.logger.Warn("expire hand archive failed", zap.String("key", a.Key), zap.Error(err))
		}
	}

	a.logger.Debug("hand archived",
		zap.String("hand_id", record.ID),
		zap.Stringer("bid", record.Bid),
		zap.Int64("archived", length),
	)
	return nil
}

// RecentHands returns up to n of the newest archived hands, oldest first.
func (a *HandArchive) RecentHands(ctx context.Context, n int64) ([]app.HandRecord, error) {
	if n <= 0 {
		return nil, nil
	}
	values, err := a.client.LRange(ctx, a.Key, -n, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("read hand archive: %w", err)
	}
	out := make([]app.HandRecord, 0, len(values))
	for _, v := range values {
		var rec app.HandRecord
		if err := json.Unmarshal([]byte(v), &rec); err != nil {
			return nil, fmt.Errorf("decode archived hand: %w", err)
		}
		out = append(out, rec)
	}
	return out, nil
}
