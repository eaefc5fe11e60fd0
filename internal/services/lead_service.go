package services

import (
	"fmt"
	"strings"

	"leadflow/internal/models"
)

// LeadStore — контракт хранилища лидов. Все выборки ограничены владельцем.
type LeadStore interface {
	Create(lead *models.Lead) error
	ListByOwner(ownerID int) ([]*models.Lead, error)
	GetByOwner(id, ownerID int) (*models.Lead, error)
	UpdateByOwner(id, ownerID int, patch models.LeadPatch) (*models.Lead, error)
	DeleteByOwner(id, ownerID int) error
	CountByOwner(ownerID int) (int, error)
}

type LeadService struct {
	Repo LeadStore
}

func NewLeadService(repo LeadStore) *LeadService {
	return &LeadService{Repo: repo}
}

func (s *LeadService) Create(ownerID int, lead *models.Lead) error {
	if strings.TrimSpace(lead.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if lead.Status == "" {
		lead.Status = models.LeadStatusNew
	}
	if !models.IsValidLeadStatus(lead.Status) {
		return fmt.Errorf("%w: unknown lead status %q", ErrValidation, lead.Status)
	}
	// владелец — всегда из токена, что бы ни пришло в теле
	lead.OwnerID = ownerID
	return s.Repo.Create(lead)
}

func (s *LeadService) List(ownerID int) ([]*models.Lead, error) {
	return s.Repo.ListByOwner(ownerID)
}

func (s *LeadService) Update(ownerID, id int, patch models.LeadPatch) (*models.Lead, error) {
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return nil, fmt.Errorf("%w: name cannot be empty", ErrValidation)
	}
	if patch.Status != nil && !models.IsValidLeadStatus(*patch.Status) {
		return nil, fmt.Errorf("%w: unknown lead status %q", ErrValidation, *patch.Status)
	}

	lead, err := s.Repo.UpdateByOwner(id, ownerID, patch)
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, fmt.Errorf("lead: %w", ErrNotFound)
	}
	return lead, nil
}

func (s *LeadService) Delete(ownerID, id int) error {
	return s.Repo.DeleteByOwner(id, ownerID)
}
