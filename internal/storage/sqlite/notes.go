package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/sandevgo/notebot/internal/core"
)

type NotesRepo struct {
	conn
}

func NewNotesRepo(db *sql.DB) *NotesRepo {
	return &NotesRepo{conn{db: db}}
}

// Create inserts a note. Content is expected to be non-empty after trimming;
// the interpreter enforces that before calling here.
func (r *NotesRepo) Create(ctx context.Context, ownerID int64, chatID, content string) error {
	if r.offline(ctx, "notes.create") {
		return nil
	}

	query := `INSERT INTO notes (owner_id, chat_id, content) VALUES (?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, query, ownerID, chatID, content); err != nil {
		return fmt.Errorf("failed to insert note: %w", err)
	}
	return nil
}

func (r *NotesRepo) ListAll(ctx context.Context, ownerID int64) ([]core.Note, error) {
	if r.offline(ctx, "notes.list") {
		return nil, nil
	}

	query := `SELECT id, owner_id, chat_id, content, created_at, updated_at
		FROM notes WHERE owner_id = ? ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query notes: %w", err)
	}
	defer rows.Close()

	var notes []core.Note
	for rows.Next() {
		var n core.Note
		if err := rows.Scan(&n.ID, &n.OwnerID, &n.ChatID, &n.Content, &n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}
		notes = append(notes, n)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return notes, nil
}

// Search filters the owner's full note list in memory, case-insensitively.
// Fine while per-owner note counts stay small; a known scalability ceiling,
// not a correctness problem.
func (r *NotesRepo) Search(ctx context.Context, ownerID int64, query string) ([]core.Note, error) {
	notes, err := r.ListAll(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(query)
	var matched []core.Note
	for _, n := range notes {
		if strings.Contains(strings.ToLower(n.Content), q) {
			matched = append(matched, n)
		}
	}
	return matched, nil
}

// DeleteAll removes every note for the owner. Deleting with none present is a
// no-op success.
func (r *NotesRepo) DeleteAll(ctx context.Context, ownerID int64) error {
	if r.offline(ctx, "notes.delete_all") {
		return nil
	}

	if _, err := r.db.ExecContext(ctx, `DELETE FROM notes WHERE owner_id = ?`, ownerID); err != nil {
		return fmt.Errorf("failed to delete notes: %w", err)
	}
	return nil
}
