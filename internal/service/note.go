package service

import (
	"context"

	"personal_profile/internal/models"
	"personal_profile/internal/repository"
)

type NoteInput struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type NotePatch struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

type NoteService struct {
	repo repository.Notes
}

func NewNoteService(repo repository.Notes) *NoteService {
	return &NoteService{repo: repo}
}

func (s *NoteService) List(ctx context.Context, userID int64, f models.SearchFilter) ([]models.Note, error) {
	f.Q = normalizeQuery(f.Q)
	return s.repo.List(ctx, userID, f)
}

func (s *NoteService) Create(ctx context.Context, userID int64, in NoteInput) (models.Note, error) {
	title, err := requireText("title", in.Title)
	if err != nil {
		return models.Note{}, err
	}
	content, err := requireText("content", in.Content)
	if err != nil {
		return models.Note{}, err
	}

	return s.repo.Create(ctx, models.Note{
		Title:   title,
		Content: content,
		UserID:  userID,
	})
}

func (s *NoteService) Update(ctx context.Context, userID, id int64, in NotePatch) (models.Note, error) {
	current, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		return models.Note{}, err
	}

	if in.Title != nil {
		if current.Title, err = requireText("title", *in.Title); err != nil {
			return models.Note{}, err
		}
	}
	if in.Content != nil {
		if current.Content, err = requireText("content", *in.Content); err != nil {
			return models.Note{}, err
		}
	}

	if err := s.repo.Update(ctx, current); err != nil {
		return models.Note{}, err
	}
	return current, nil
}

func (s *NoteService) Delete(ctx context.Context, userID, id int64) error {
	return s.repo.Delete(ctx, userID, id)
}
