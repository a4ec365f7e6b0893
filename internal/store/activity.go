package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"
)

// eventRepo implements EventRepo over the activity table.
type eventRepo struct {
	db        *sql.DB
	seq       *sequenceCounter
	sessionID string
}

func (r *eventRepo) Append(ctx context.Context, a Activity) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}
	if a.SessionID == "" {
		a.SessionID = r.sessionID
	}
	if a.Timestamp.IsZero() {
		a.Timestamp = time.Now()
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO activity (seq, session_id, module, action, detail, score, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		seqNum, a.SessionID, a.Module, a.Action, a.Detail, a.Score, a.Timestamp.UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("save activity: %w", err)
	}
	return nil
}

func (r *eventRepo) Recent(ctx context.Context, opts QueryOpts) ([]Activity, error) {
	var (
		where []string
		args  []any
	)
	if opts.Module != "" {
		where = append(where, "module = ?")
		args = append(args, opts.Module)
	}
	if opts.After > 0 {
		where = append(where, "seq > ?")
		args = append(args, opts.After)
	}
	if opts.Before > 0 {
		where = append(where, "seq < ?")
		args = append(args, opts.Before)
	}
	if !opts.From.IsZero() {
		where = append(where, "created_at >= ?")
		args = append(args, opts.From.UnixNano())
	}
	if !opts.To.IsZero() {
		where = append(where, "created_at <= ?")
		args = append(args, opts.To.UnixNano())
	}

	q := `SELECT seq, session_id, module, action, detail, score, created_at FROM activity`
	if len(where) > 0 {
		q += " WHERE " + strings.Join(where, " AND ")
	}
	q += " ORDER BY seq DESC"
	if opts.Limit > 0 {
		q += " LIMIT ?"
		args = append(args, opts.Limit)
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query activity: %w", err)
	}
	defer rows.Close()

	var out []Activity
	for rows.Next() {
		var (
			a  Activity
			ts int64
		)
		if err := rows.Scan(&a.Sequence, &a.SessionID, &a.Module, &a.Action, &a.Detail, &a.Score, &ts); err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		a.Timestamp = time.Unix(0, ts)
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate activity: %w", err)
	}
	return out, nil
}

func (r *eventRepo) CountByAction(ctx context.Context, module string) (map[string]int, error) {
	return r.countBy(ctx,
		`SELECT action, COUNT(*) FROM activity WHERE module = ? GROUP BY action`,
		module,
	)
}

func (r *eventRepo) DetailCounts(ctx context.Context, module, action string) (map[string]int, error) {
	return r.countBy(ctx,
		`SELECT detail, COUNT(*) FROM activity WHERE module = ? AND action = ? GROUP BY detail`,
		module, action,
	)
}

func (r *eventRepo) countBy(ctx context.Context, q string, args ...any) (map[string]int, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("count activity: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var (
			key string
			n   int
		)
		if err := rows.Scan(&key, &n); err != nil {
			return nil, fmt.Errorf("scan count: %w", err)
		}
		counts[key] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate counts: %w", err)
	}
	return counts, nil
}
