package profile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/fitquest/internal/progression"
	"github.com/2beens/fitquest/internal/telemetry/tracing"
	"github.com/2beens/fitquest/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS public.fitquest_profile
(
    user_id    VARCHAR PRIMARY KEY,
    doc        JSONB       NOT NULL,
    xp         INTEGER     NOT NULL DEFAULT 0,
    created_at TIMESTAMPTZ NOT NULL,
    updated_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS ix_fitquest_profile_xp ON public.fitquest_profile (xp DESC);
`

// Repo stores one profile document per user.
type Repo struct {
	db  *pgxpool.Pool
	now func() time.Time
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db:  db,
		now: time.Now,
	}
}

func (r *Repo) EnsureSchema(ctx context.Context) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profile.ensureschema")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	if _, err = r.db.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("create profile table: %w", err)
	}
	return nil
}

func (r *Repo) Create(ctx context.Context, p *Profile) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profile.create")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("user-id", p.UserID))

	doc, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO fitquest_profile (user_id, doc, xp, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`,
		p.UserID, doc, p.XP, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return fmt.Errorf("%w: %s", ErrProfileExists, p.UserID)
		}
		return err
	}
	return nil
}

func (r *Repo) Get(ctx context.Context, userID string) (_ *Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profile.get")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("user-id", userID))

	var doc []byte
	err = r.db.
		QueryRow(ctx, `
			SELECT doc
			FROM fitquest_profile
			WHERE user_id = $1
		`, userID).
		Scan(&doc)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", ErrProfileNotFound, userID)
		}
		return nil, err
	}

	return unmarshalProfile(doc)
}

// Update runs mutate against the row-locked profile and stores the result, all in one transaction.
// When mutate returns an error nothing is written.
func (r *Repo) Update(ctx context.Context, userID string, mutate func(p *Profile) error) (_ *Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profile.update")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("user-id", userID))

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
				err = fmt.Errorf("failed to rollback transaction: %w: %w", rollbackErr, err)
			}
		} else {
			err = tx.Commit(ctx)
		}
	}()

	var doc []byte
	err = tx.QueryRow(ctx, `
		SELECT doc
		FROM fitquest_profile
		WHERE user_id = $1
		FOR UPDATE
	`, userID).Scan(&doc)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", ErrProfileNotFound, userID)
		}
		return nil, err
	}

	p, err := unmarshalProfile(doc)
	if err != nil {
		return nil, err
	}

	if err = mutate(p); err != nil {
		return nil, err
	}
	p.UpdatedAt = r.now()

	doc, err = json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("marshal profile: %w", err)
	}

	_, err = tx.Exec(ctx, `
		UPDATE fitquest_profile
		SET doc = $2, xp = $3, updated_at = $4
		WHERE user_id = $1
	`, userID, doc, p.XP, p.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return p, nil
}

func (r *Repo) ListUserIDs(ctx context.Context) (_ []string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profile.listuserids")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	rows, err := r.db.Query(ctx, `
		SELECT user_id
		FROM fitquest_profile
		ORDER BY user_id
	`)
	if err != nil {
		return nil, err
	}

	userIDs, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.Int("count", len(userIDs)))
	return userIDs, nil
}

// TopByXP reads the ranking straight from postgres, used to rebuild the redis leaderboard.
func (r *Repo) TopByXP(ctx context.Context, limit int) (_ []LeaderboardEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profile.topbyxp")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	rows, err := r.db.Query(ctx, `
		SELECT user_id, xp
		FROM fitquest_profile
		ORDER BY xp DESC, user_id
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]LeaderboardEntry, 0, limit)
	for rows.Next() {
		var e LeaderboardEntry
		if err := rows.Scan(&e.UserID, &e.XP); err != nil {
			return nil, err
		}
		e.Rank = len(entries) + 1
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

func unmarshalProfile(doc []byte) (*Profile, error) {
	p := &Profile{}
	if err := json.Unmarshal(doc, p); err != nil {
		return nil, fmt.Errorf("unmarshal profile: %w", err)
	}
	if p.Goals == nil {
		p.Goals = []progression.Goal{}
	}
	if p.Workouts == nil {
		p.Workouts = []ActivityEntry{}
	}
	return p, nil
}
