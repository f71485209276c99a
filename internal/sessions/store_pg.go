package sessions

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// PGStore implements Store using the sessions table.
type PGStore struct {
	DB  *sql.DB
	TTL time.Duration
}

// Load fetches an unexpired session.
func (s *PGStore) Load(ctx context.Context, id string) (*State, error) {
	const query = `
SELECT data
FROM sessions
WHERE id = $1 AND expires_at > now()`

	var data []byte
	if err := s.DB.QueryRowContext(ctx, query, id).Scan(&data); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("load session: %w", err)
	}
	st, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return st, nil
}

// Save upserts the session and pushes its expiry forward.
func (s *PGStore) Save(ctx context.Context, st *State) error {
	const query = `
INSERT INTO sessions (id, user_id, data, updated_at, expires_at)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (id) DO UPDATE SET
    user_id = EXCLUDED.user_id,
    data = EXCLUDED.data,
    updated_at = EXCLUDED.updated_at,
    expires_at = EXCLUDED.expires_at`

	data, err := encode(st)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	now := time.Now().UTC()
	var uid sql.NullString
	if id := userID(st); id != "" {
		uid = sql.NullString{String: id, Valid: true}
	}
	if _, err := s.DB.ExecContext(ctx, query, st.ID, uid, data, now, now.Add(s.TTL)); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// Delete removes the session row.
func (s *PGStore) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM sessions WHERE id = $1`
	if _, err := s.DB.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// PurgeExpired removes sessions past their expiry and returns how many went.
func (s *PGStore) PurgeExpired(ctx context.Context) (int64, error) {
	const query = `DELETE FROM sessions WHERE expires_at <= now()`
	res, err := s.DB.ExecContext(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("purge sessions: %w", err)
	}
	n, _ := res.RowsAffected()
	return n, nil
}
