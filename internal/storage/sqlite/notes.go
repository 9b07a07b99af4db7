package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/olegsv/membot/internal/core"
)

// NotesRepo is the durable knowledge sink: it stores suggestions the user
// explicitly approved.
type NotesRepo struct {
	db *sql.DB
}

func NewNotesRepo(db *sql.DB) *NotesRepo {
	return &NotesRepo{db: db}
}

func (r *NotesRepo) Save(ctx context.Context, s core.Suggestion) (core.Note, error) {
	createdAt := s.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	query := `INSERT INTO notes (target, update_type, payload, reason, confidence, created_at) VALUES (?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query, s.Target, s.UpdateType, s.Payload, s.Reason, s.Confidence, createdAt)
	if err != nil {
		return core.Note{}, fmt.Errorf("failed to insert note: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return core.Note{}, err
	}

	return core.Note{
		ID:         id,
		Target:     s.Target,
		UpdateType: s.UpdateType,
		Payload:    s.Payload,
		Reason:     s.Reason,
		Confidence: s.Confidence,
		CreatedAt:  createdAt,
	}, nil
}

func (r *NotesRepo) List(ctx context.Context, limit int) ([]core.Note, error) {
	query := `SELECT id, target, update_type, payload, reason, confidence, created_at FROM notes ORDER BY id DESC LIMIT ?`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query notes: %w", err)
	}
	defer rows.Close()

	var notes []core.Note
	for rows.Next() {
		var n core.Note
		var reason sql.NullString
		if err := rows.Scan(&n.ID, &n.Target, &n.UpdateType, &n.Payload, &reason, &n.Confidence, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}
		n.Reason = reason.String
		notes = append(notes, n)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	// newest-first from the query, flip to chronological order
	for i, j := 0, len(notes)-1; i < j; i, j = i+1, j-1 {
		notes[i], notes[j] = notes[j], notes[i]
	}
	return notes, nil
}
