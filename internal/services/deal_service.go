package services

import (
	"fmt"
	"log"
	"strings"

	"leadflow/internal/models"
)

// DealStore — контракт хранилища сделок.
type DealStore interface {
	Create(deal *models.Deal) error
	ConvertFromLead(deal *models.Deal, leadID int) error
	ListByOwner(ownerID int) ([]*models.Deal, error)
	GetByOwner(id, ownerID int) (*models.Deal, error)
	GetByLeadID(leadID, ownerID int) (*models.Deal, error)
	UpdateByOwner(id, ownerID int, patch models.DealPatch) (*models.Deal, error)
	DeleteByOwner(id, ownerID int) error
	CountByOwner(ownerID int) (int, error)
	StageStatsByOwner(ownerID int) ([]models.StageStat, error)
}

// ConversionNotifier получает уведомление после успешной конвертации.
// Уведомление — best effort, на результат запроса не влияет.
type ConversionNotifier interface {
	NotifyConversion(lead *models.Lead, deal *models.Deal)
}

type DealService struct {
	Repo     DealStore
	LeadRepo LeadStore
	Notifier ConversionNotifier
}

func NewDealService(dealRepo DealStore, leadRepo LeadStore, notifier ConversionNotifier) *DealService {
	return &DealService{Repo: dealRepo, LeadRepo: leadRepo, Notifier: notifier}
}

func (s *DealService) Create(ownerID int, deal *models.Deal) error {
	if strings.TrimSpace(deal.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrValidation)
	}
	if deal.Stage == "" {
		deal.Stage = models.StageOpen
	}
	if !models.IsValidStage(deal.Stage) {
		return fmt.Errorf("%w: unknown stage %q", ErrValidation, deal.Stage)
	}
	deal.OwnerID = ownerID
	return s.Repo.Create(deal)
}

// ConvertLead — воронка лид → сделка:
//  1. лид ищется строго в паре (id, owner) — чужой или несуществующий
//     неотличимы снаружи;
//  2. повторная конвертация лида, к которому уже привязана сделка
//     владельца, отклоняется; чужие сделки в guard не попадают;
//  3. создание сделки и статус "Converted" у лида пишутся одной
//     транзакцией хранилища.
func (s *DealService) ConvertLead(ownerID, leadID int, amount float64) (*models.Deal, error) {
	lead, err := s.LeadRepo.GetByOwner(leadID, ownerID)
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, fmt.Errorf("lead: %w", ErrNotFound)
	}

	existing, err := s.Repo.GetByLeadID(leadID, ownerID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: deal already exists for this lead", ErrConflict)
	}

	deal := &models.Deal{
		Title:   "Deal - " + lead.Name,
		Amount:  amount,
		Stage:   models.StageOpen,
		OwnerID: ownerID,
		LeadID:  &lead.ID,
	}
	if err := s.Repo.ConvertFromLead(deal, leadID); err != nil {
		return nil, err
	}

	if s.Notifier != nil {
		s.Notifier.NotifyConversion(lead, deal)
	}
	log.Printf("[deals][convert] lead_id=%d deal_id=%d owner_id=%d amount=%.2f", leadID, deal.ID, ownerID, amount)
	return deal, nil
}

func (s *DealService) List(ownerID int) ([]*models.Deal, error) {
	return s.Repo.ListByOwner(ownerID)
}

func (s *DealService) Update(ownerID, id int, patch models.DealPatch) (*models.Deal, error) {
	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		return nil, fmt.Errorf("%w: title cannot be empty", ErrValidation)
	}
	if patch.Stage != nil && !models.IsValidStage(*patch.Stage) {
		return nil, fmt.Errorf("%w: unknown stage %q", ErrValidation, *patch.Stage)
	}

	deal, err := s.Repo.UpdateByOwner(id, ownerID, patch)
	if err != nil {
		return nil, err
	}
	if deal == nil {
		return nil, fmt.Errorf("deal: %w", ErrNotFound)
	}
	return deal, nil
}

func (s *DealService) Delete(ownerID, id int) error {
	return s.Repo.DeleteByOwner(id, ownerID)
}
