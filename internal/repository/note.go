package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/notedeck/notedeck-go/internal/model"
)

var ErrNoteNotFound = errors.New("note not found")

// NoteRepository handles note persistence operations. Every query is
// filtered by user_id so a note is unreachable outside its owner.
type NoteRepository struct {
	db *sql.DB
}

// NewNoteRepository creates a new NoteRepository.
func NewNoteRepository(db *sql.DB) *NoteRepository {
	return &NoteRepository{db: db}
}

const noteColumns = `note_id, user_id, title, content, created_at, updated_at`

// ListByUser retrieves all notes owned by the user in store-default order.
func (r *NoteRepository) ListByUser(ctx context.Context, userID int64) ([]model.Note, error) {
	query := `SELECT ` + noteColumns + ` FROM notes WHERE user_id = ?`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notes []model.Note
	for rows.Next() {
		var n model.Note
		if err := rows.Scan(
			&n.ID, &n.UserID, &n.Title, &n.Content, &n.CreatedAt, &n.UpdatedAt,
		); err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}

	return notes, rows.Err()
}

// Create inserts a new note and sets the generated ID on the note struct.
func (r *NoteRepository) Create(ctx context.Context, note *model.Note) error {
	query := `INSERT INTO notes (user_id, title, content) VALUES (?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query, note.UserID, note.Title, note.Content)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	note.ID = id
	return nil
}

// GetByID retrieves a note by its ID, scoped to the owning user.
func (r *NoteRepository) GetByID(ctx context.Context, userID, noteID int64) (*model.Note, error) {
	query := `SELECT ` + noteColumns + ` FROM notes WHERE note_id = ? AND user_id = ?`

	note := &model.Note{}
	err := r.db.QueryRowContext(ctx, query, noteID, userID).Scan(
		&note.ID, &note.UserID, &note.Title, &note.Content, &note.CreatedAt, &note.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoteNotFound
		}
		return nil, err
	}

	return note, nil
}

// Update sets a note's title and content, scoped to the owning user.
// Existence is checked with GetByID first; MySQL reports zero affected rows
// for a no-op update, so RowsAffected cannot distinguish "missing" here.
func (r *NoteRepository) Update(ctx context.Context, userID, noteID int64, title, content string) error {
	query := `UPDATE notes SET title = ?, content = ? WHERE note_id = ? AND user_id = ?`

	_, err := r.db.ExecContext(ctx, query, title, content, noteID, userID)
	return err
}

// Delete removes a note, scoped to the owning user.
func (r *NoteRepository) Delete(ctx context.Context, userID, noteID int64) error {
	query := `DELETE FROM notes WHERE note_id = ? AND user_id = ?`

	result, err := r.db.ExecContext(ctx, query, noteID, userID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrNoteNotFound
	}

	return nil
}
