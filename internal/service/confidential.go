package service

import (
	"context"

	"personal_profile/internal/cryptox"
	"personal_profile/internal/models"
	"personal_profile/internal/repository"
)

type ConfidentialInput struct {
	Title string `json:"title"`
	Value string `json:"value"`
}

type ConfidentialPatch struct {
	Title *string `json:"title"`
	Value *string `json:"value"`
}

// ConfidentialService is the encrypted-field pipeline: values are sealed
// before they reach the repository and opened on the way back out. The
// plaintext exists only inside a single request.
type ConfidentialService struct {
	repo repository.ConfidentialDetails
	box  *cryptox.Box
}

func NewConfidentialService(repo repository.ConfidentialDetails, box *cryptox.Box) *ConfidentialService {
	return &ConfidentialService{repo: repo, box: box}
}

// List returns decrypted details. The q filter already ran against titles
// only; a blob that no longer decrypts fails the whole call rather than
// being returned as garbage.
func (s *ConfidentialService) List(ctx context.Context, userID int64, f models.SearchFilter) ([]models.ConfidentialDetail, error) {
	f.Q = normalizeQuery(f.Q)
	items, err := s.repo.List(ctx, userID, f)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if err := s.reveal(&items[i]); err != nil {
			return nil, err
		}
	}
	return items, nil
}

func (s *ConfidentialService) Create(ctx context.Context, userID int64, in ConfidentialInput) (models.ConfidentialDetail, error) {
	title, err := requireText("title", in.Title)
	if err != nil {
		return models.ConfidentialDetail{}, err
	}
	if in.Value == "" {
		return models.ConfidentialDetail{}, invalidf("value is required")
	}

	sealed, err := s.box.Encrypt(in.Value)
	if err != nil {
		return models.ConfidentialDetail{}, err
	}

	created, err := s.repo.Create(ctx, models.ConfidentialDetail{
		Title:          title,
		EncryptedValue: sealed,
		UserID:         userID,
	})
	if err != nil {
		return models.ConfidentialDetail{}, err
	}

	created.Value = in.Value
	created.EncryptedValue = ""
	return created, nil
}

func (s *ConfidentialService) Update(ctx context.Context, userID, id int64, in ConfidentialPatch) (models.ConfidentialDetail, error) {
	current, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		return models.ConfidentialDetail{}, err
	}

	if in.Title != nil {
		if current.Title, err = requireText("title", *in.Title); err != nil {
			return models.ConfidentialDetail{}, err
		}
	}
	if in.Value != nil {
		if *in.Value == "" {
			return models.ConfidentialDetail{}, invalidf("value is required")
		}
		// a new value replaces the old ciphertext wholesale
		if current.EncryptedValue, err = s.box.Encrypt(*in.Value); err != nil {
			return models.ConfidentialDetail{}, err
		}
	}

	if err := s.repo.Update(ctx, current); err != nil {
		return models.ConfidentialDetail{}, err
	}
	if err := s.reveal(&current); err != nil {
		return models.ConfidentialDetail{}, err
	}
	return current, nil
}

func (s *ConfidentialService) Delete(ctx context.Context, userID, id int64) error {
	return s.repo.Delete(ctx, userID, id)
}

func (s *ConfidentialService) reveal(d *models.ConfidentialDetail) error {
	value, err := s.box.Decrypt(d.EncryptedValue)
	if err != nil {
		return err
	}
	d.Value = value
	d.EncryptedValue = ""
	return nil
}
