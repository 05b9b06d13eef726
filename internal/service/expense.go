package service

import (
	"context"
	"time"

	"personal_profile/internal/models"
	"personal_profile/internal/repository"
)

type ExpenseInput struct {
	Amount   *float64 `json:"amount"`
	Date     string   `json:"date"`
	Category string   `json:"category"`
	Notes    string   `json:"notes"`
}

type ExpensePatch struct {
	Amount   *float64 `json:"amount"`
	Date     *string  `json:"date"`
	Category *string  `json:"category"`
	Notes    *string  `json:"notes"`
}

type ExpenseService struct {
	repo repository.Expenses
}

func NewExpenseService(repo repository.Expenses) *ExpenseService {
	return &ExpenseService{repo: repo}
}

func (s *ExpenseService) List(ctx context.Context, userID int64, f models.ExpenseFilter) ([]models.Expense, error) {
	f.Q = normalizeQuery(f.Q)
	var err error
	if f.StartDate, err = validDate("start_date", f.StartDate); err != nil {
		return nil, err
	}
	if f.EndDate, err = validDate("end_date", f.EndDate); err != nil {
		return nil, err
	}
	if f.StartDate != "" && f.EndDate != "" && f.StartDate > f.EndDate {
		return nil, invalidf("start_date must be <= end_date")
	}
	if f.MinAmount != nil {
		min, err := validAmount(*f.MinAmount)
		if err != nil {
			return nil, invalidf("min_amount must be a non-negative number")
		}
		f.MinAmount = &min
	}
	if f.MaxAmount != nil {
		max, err := validAmount(*f.MaxAmount)
		if err != nil {
			return nil, invalidf("max_amount must be a non-negative number")
		}
		f.MaxAmount = &max
	}
	return s.repo.List(ctx, userID, f)
}

func (s *ExpenseService) Create(ctx context.Context, userID int64, in ExpenseInput) (models.Expense, error) {
	if in.Amount == nil {
		return models.Expense{}, invalidf("amount is required")
	}
	amount, err := validAmount(*in.Amount)
	if err != nil {
		return models.Expense{}, err
	}
	category, err := requireText("category", in.Category)
	if err != nil {
		return models.Expense{}, err
	}
	date, err := validDate("date", in.Date)
	if err != nil {
		return models.Expense{}, err
	}
	if date == "" {
		date = time.Now().UTC().Format(dateLayout)
	}

	return s.repo.Create(ctx, models.Expense{
		Amount:   amount,
		Date:     date,
		Category: category,
		Notes:    in.Notes,
		UserID:   userID,
	})
}

func (s *ExpenseService) Update(ctx context.Context, userID, id int64, in ExpensePatch) (models.Expense, error) {
	current, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		return models.Expense{}, err
	}

	if in.Amount != nil {
		if current.Amount, err = validAmount(*in.Amount); err != nil {
			return models.Expense{}, err
		}
	}
	if in.Date != nil {
		date, err := validDate("date", *in.Date)
		if err != nil {
			return models.Expense{}, err
		}
		if date == "" {
			return models.Expense{}, invalidf("date is required")
		}
		current.Date = date
	}
	if in.Category != nil {
		if current.Category, err = requireText("category", *in.Category); err != nil {
			return models.Expense{}, err
		}
	}
	if in.Notes != nil {
		current.Notes = *in.Notes
	}

	if err := s.repo.Update(ctx, current); err != nil {
		return models.Expense{}, err
	}
	return current, nil
}

func (s *ExpenseService) Delete(ctx context.Context, userID, id int64) error {
	return s.repo.Delete(ctx, userID, id)
}
