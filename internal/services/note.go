package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/monocle-dev/trackr/internal/apperrors"
	"github.com/monocle-dev/trackr/internal/models"
	"github.com/monocle-dev/trackr/internal/repository"
	"github.com/monocle-dev/trackr/internal/types"
)

type NoteInput struct {
	Name    string `json:"name" validate:"required,max=200"`
	Content string `json:"content" validate:"required"`
}

var noteMessages = map[string]string{
	"name":    "Please enter note title",
	"content": "Please enter note content",
}

type NoteService struct {
	store repository.Store
	gate  Gate
}

func NewNoteService(store repository.Store, gate Gate) *NoteService {
	return &NoteService{store: store, gate: gate}
}

func (s *NoteService) Create(ctx context.Context, caller types.Identity, projectID uuid.UUID, input NoteInput) (*models.Note, error) {
	input.Name = strings.TrimSpace(input.Name)
	if err := validateInput(input, noteMessages); err != nil {
		return nil, err
	}
	if _, err := ownedProject(ctx, s.store, s.gate, caller, projectID, ActionWrite); err != nil {
		return nil, err
	}

	note := models.Note{
		Name:      input.Name,
		Content:   input.Content,
		ProjectID: projectID,
	}
	if err := s.store.Notes().Create(ctx, &note); err != nil {
		return nil, apperrors.Internal(err)
	}
	return &note, nil
}

func (s *NoteService) ListForProject(ctx context.Context, caller types.Identity, projectID uuid.UUID) ([]models.Note, error) {
	if _, err := ownedProject(ctx, s.store, s.gate, caller, projectID, ActionRead); err != nil {
		return nil, err
	}
	notes, err := s.store.Notes().FindByProject(ctx, projectID)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	if notes == nil {
		notes = []models.Note{}
	}
	return notes, nil
}

func (s *NoteService) Update(ctx context.Context, caller types.Identity, noteID uuid.UUID, input NoteInput) (*models.Note, error) {
	input.Name = strings.TrimSpace(input.Name)
	if err := validateInput(input, noteMessages); err != nil {
		return nil, err
	}
	note, err := ownedNote(ctx, s.store, s.gate, caller, noteID, ActionWrite)
	if err != nil {
		return nil, err
	}

	note.Name = input.Name
	note.Content = input.Content
	if err := s.store.Notes().Update(ctx, note); err != nil {
		return nil, lookupErr(err, "Note")
	}
	return note, nil
}

func (s *NoteService) Delete(ctx context.Context, caller types.Identity, noteID uuid.UUID) error {
	note, err := ownedNote(ctx, s.store, s.gate, caller, noteID, ActionDelete)
	if err != nil {
		return err
	}
	if err := s.store.Notes().Delete(ctx, note.ID); err != nil {
		return lookupErr(err, "Note")
	}
	return nil
}
