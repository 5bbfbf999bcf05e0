package profile

import (
	"context"
	"fmt"

	"github.com/2beens/fitquest/internal/progression"
	"github.com/2beens/fitquest/internal/telemetry/tracing"

	"github.com/go-redis/redis/v8"
	"go.opentelemetry.io/otel/attribute"
)

const leaderboardKey = "fitquest::leaderboard::xp"

// Leaderboard is a redis sorted set of user XP. It is derived data,
// the profile documents stay authoritative and can rebuild it.
type Leaderboard struct {
	rdb *redis.Client
}

func NewLeaderboard(rdb *redis.Client) *Leaderboard {
	return &Leaderboard{
		rdb: rdb,
	}
}

func (l *Leaderboard) SetXP(ctx context.Context, userID string, xp int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "leaderboard.setxp")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("user-id", userID))

	return l.rdb.ZAdd(ctx, leaderboardKey, &redis.Z{
		Score:  float64(xp),
		Member: userID,
	}).Err()
}

func (l *Leaderboard) Top(ctx context.Context, n int) (_ []LeaderboardEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "leaderboard.top")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	if n <= 0 {
		return []LeaderboardEntry{}, nil
	}

	members, err := l.rdb.ZRevRangeWithScores(ctx, leaderboardKey, 0, int64(n-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("zrevrange: %w", err)
	}

	entries := make([]LeaderboardEntry, 0, len(members))
	for i, m := range members {
		userID, ok := m.Member.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected leaderboard member type %T", m.Member)
		}
		xp := int(m.Score)
		entries = append(entries, LeaderboardEntry{
			Rank:   i + 1,
			UserID: userID,
			XP:     xp,
			Level:  progression.LevelFromXP(xp),
		})
	}
	return entries, nil
}

// Rebuild replaces the whole set with entries.
func (l *Leaderboard) Rebuild(ctx context.Context, entries []LeaderboardEntry) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "leaderboard.rebuild")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.Int("count", len(entries)))

	members := make([]*redis.Z, 0, len(entries))
	for _, e := range entries {
		members = append(members, &redis.Z{Score: float64(e.XP), Member: e.UserID})
	}

	_, err = l.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, leaderboardKey)
		if len(members) > 0 {
			pipe.ZAdd(ctx, leaderboardKey, members...)
		}
		return nil
	})
	return err
}
