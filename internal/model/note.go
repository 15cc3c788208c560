package model

import "time"

// Note represents a note row in the database. Notes are always scoped to
// their owning user; the ID alone is never enough to reach one.
type Note struct {
	ID        int64     `json:"note_id"`
	UserID    int64     `json:"user_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NoteRequest represents a note create or update request body.
type NoteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// DeleteNoteResponse is returned on successful deletion, carrying the
// deleted row as confirmation.
type DeleteNoteResponse struct {
	Message string `json:"message"`
	Note    Note   `json:"note"`
}
