package service

import (
	"context"

	"personal_profile/internal/models"
	"personal_profile/internal/repository"
)

type AchievementInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	AchievedOn  string `json:"achieved_on"`
}

// AchievementPatch applies only the provided fields.
type AchievementPatch struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	AchievedOn  *string `json:"achieved_on"`
}

type AchievementService struct {
	repo repository.Achievements
}

func NewAchievementService(repo repository.Achievements) *AchievementService {
	return &AchievementService{repo: repo}
}

func (s *AchievementService) List(ctx context.Context, userID int64, f models.SearchFilter) ([]models.Achievement, error) {
	f.Q = normalizeQuery(f.Q)
	return s.repo.List(ctx, userID, f)
}

func (s *AchievementService) Create(ctx context.Context, userID int64, in AchievementInput) (models.Achievement, error) {
	title, err := requireText("title", in.Title)
	if err != nil {
		return models.Achievement{}, err
	}
	description, err := requireText("description", in.Description)
	if err != nil {
		return models.Achievement{}, err
	}
	achievedOn, err := validDate("achieved_on", in.AchievedOn)
	if err != nil {
		return models.Achievement{}, err
	}

	return s.repo.Create(ctx, models.Achievement{
		Title:       title,
		Description: description,
		AchievedOn:  achievedOn,
		UserID:      userID,
	})
}

func (s *AchievementService) Update(ctx context.Context, userID, id int64, in AchievementPatch) (models.Achievement, error) {
	current, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		return models.Achievement{}, err
	}

	if in.Title != nil {
		if current.Title, err = requireText("title", *in.Title); err != nil {
			return models.Achievement{}, err
		}
	}
	if in.Description != nil {
		if current.Description, err = requireText("description", *in.Description); err != nil {
			return models.Achievement{}, err
		}
	}
	if in.AchievedOn != nil {
		if current.AchievedOn, err = validDate("achieved_on", *in.AchievedOn); err != nil {
			return models.Achievement{}, err
		}
	}

	if err := s.repo.Update(ctx, current); err != nil {
		return models.Achievement{}, err
	}
	return current, nil
}

func (s *AchievementService) Delete(ctx context.Context, userID, id int64) error {
	return s.repo.Delete(ctx, userID, id)
}
