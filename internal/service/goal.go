package service

import (
	"context"

	"personal_profile/internal/models"
	"personal_profile/internal/repository"
)

type GoalInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	TargetDate  string `json:"target_date"`
}

type GoalPatch struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
	TargetDate  *string `json:"target_date"`
}

type GoalService struct {
	repo repository.Goals
}

func NewGoalService(repo repository.Goals) *GoalService {
	return &GoalService{repo: repo}
}

func (s *GoalService) List(ctx context.Context, userID int64, f models.GoalFilter) ([]models.Goal, error) {
	f.Q = normalizeQuery(f.Q)
	if f.Status != "" {
		status, err := validGoalStatus(f.Status)
		if err != nil {
			return nil, err
		}
		f.Status = status
	}
	return s.repo.List(ctx, userID, f)
}

func (s *GoalService) Create(ctx context.Context, userID int64, in GoalInput) (models.Goal, error) {
	title, err := requireText("title", in.Title)
	if err != nil {
		return models.Goal{}, err
	}
	description, err := requireText("description", in.Description)
	if err != nil {
		return models.Goal{}, err
	}
	if in.Status == "" {
		in.Status = models.GoalStatusPlanned
	}
	status, err := validGoalStatus(in.Status)
	if err != nil {
		return models.Goal{}, err
	}
	targetDate, err := validDate("target_date", in.TargetDate)
	if err != nil {
		return models.Goal{}, err
	}

	return s.repo.Create(ctx, models.Goal{
		Title:       title,
		Description: description,
		Status:      status,
		TargetDate:  targetDate,
		UserID:      userID,
	})
}

func (s *GoalService) Update(ctx context.Context, userID, id int64, in GoalPatch) (models.Goal, error) {
	current, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		return models.Goal{}, err
	}

	if in.Title != nil {
		if current.Title, err = requireText("title", *in.Title); err != nil {
			return models.Goal{}, err
		}
	}
	if in.Description != nil {
		if current.Description, err = requireText("description", *in.Description); err != nil {
			return models.Goal{}, err
		}
	}
	if in.Status != nil {
		if current.Status, err = validGoalStatus(*in.Status); err != nil {
			return models.Goal{}, err
		}
	}
	if in.TargetDate != nil {
		if current.TargetDate, err = validDate("target_date", *in.TargetDate); err != nil {
			return models.Goal{}, err
		}
	}

	if err := s.repo.Update(ctx, current); err != nil {
		return models.Goal{}, err
	}
	return current, nil
}

func (s *GoalService) Delete(ctx context.Context, userID, id int64) error {
	return s.repo.Delete(ctx, userID, id)
}
