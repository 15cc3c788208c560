package service

import (
	"context"
	"errors"

	"github.com/notedeck/notedeck-go/internal/model"
	"github.com/notedeck/notedeck-go/internal/repository"
)

var (
	ErrTitleContentRequired = errors.New("Title and content are required.")
	ErrNoteNotFound         = errors.New("note not found")
)

// NoteService handles note business logic. Every operation takes the
// authenticated user's ID and only ever touches that user's rows.
type NoteService struct {
	repo *repository.NoteRepository
}

// NewNoteService creates a new NoteService.
func NewNoteService(repo *repository.NoteRepository) *NoteService {
	return &NoteService{repo: repo}
}

// List returns all notes owned by the user.
func (s *NoteService) List(ctx context.Context, userID int64) ([]model.Note, error) {
	notes, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if notes == nil {
		notes = []model.Note{}
	}
	return notes, nil
}

// Create persists a new note for the user and returns the created row.
func (s *NoteService) Create(ctx context.Context, userID int64, req model.NoteRequest) (model.Note, error) {
	if req.Title == "" || req.Content == "" {
		return model.Note{}, ErrTitleContentRequired
	}

	note := model.Note{
		UserID:  userID,
		Title:   req.Title,
		Content: req.Content,
	}

	if err := s.repo.Create(ctx, &note); err != nil {
		return model.Note{}, err
	}

	// Re-read for the store-generated timestamps.
	created, err := s.repo.GetByID(ctx, userID, note.ID)
	if err != nil {
		return model.Note{}, err
	}

	return *created, nil
}

// Update replaces a note's title and content. A note owned by someone else
// is indistinguishable from a missing one.
func (s *NoteService) Update(ctx context.Context, userID, noteID int64, req model.NoteRequest) (model.Note, error) {
	if req.Title == "" || req.Content == "" {
		return model.Note{}, ErrTitleContentRequired
	}

	if _, err := s.repo.GetByID(ctx, userID, noteID); err != nil {
		if errors.Is(err, repository.ErrNoteNotFound) {
			return model.Note{}, ErrNoteNotFound
		}
		return model.Note{}, err
	}

	if err := s.repo.Update(ctx, userID, noteID, req.Title, req.Content); err != nil {
		return model.Note{}, err
	}

	updated, err := s.repo.GetByID(ctx, userID, noteID)
	if err != nil {
		return model.Note{}, err
	}

	return *updated, nil
}

// Delete removes a note and returns its prior content as confirmation.
func (s *NoteService) Delete(ctx context.Context, userID, noteID int64) (model.Note, error) {
	note, err := s.repo.GetByID(ctx, userID, noteID)
	if err != nil {
		if errors.Is(err, repository.ErrNoteNotFound) {
			return model.Note{}, ErrNoteNotFound
		}
		return model.Note{}, err
	}

	if err := s.repo.Delete(ctx, userID, noteID); err != nil {
		if errors.Is(err, repository.ErrNoteNotFound) {
			return model.Note{}, ErrNoteNotFound
		}
		return model.Note{}, err
	}

	return *note, nil
}
