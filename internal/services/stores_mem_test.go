package services

import (
	"sort"
	"time"

	"leadflow/internal/models"
)

// In-memory хранилища для тестов: повторяют контракт репозиториев,
// включая owner-скоупинг и порядок "новые первыми".

type memLeadStore struct {
	nextID int
	leads  map[int]*models.Lead
	err    error // если выставлена — возвращается из всех методов
}

func newMemLeadStore() *memLeadStore {
	return &memLeadStore{leads: map[int]*models.Lead{}}
}

func (s *memLeadStore) Create(lead *models.Lead) error {
	if s.err != nil {
		return s.err
	}
	s.nextID++
	lead.ID = s.nextID
	lead.CreatedAt = time.Unix(int64(1000+s.nextID), 0)
	lead.UpdatedAt = lead.CreatedAt
	cp := *lead
	s.leads[lead.ID] = &cp
	return nil
}

func (s *memLeadStore) ListByOwner(ownerID int) ([]*models.Lead, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []*models.Lead
	for _, l := range s.leads {
		if l.OwnerID == ownerID {
			cp := *l
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *memLeadStore) GetByOwner(id, ownerID int) (*models.Lead, error) {
	if s.err != nil {
		return nil, s.err
	}
	l, ok := s.leads[id]
	if !ok || l.OwnerID != ownerID {
		return nil, nil
	}
	cp := *l
	return &cp, nil
}

func (s *memLeadStore) UpdateByOwner(id, ownerID int, patch models.LeadPatch) (*models.Lead, error) {
	if s.err != nil {
		return nil, s.err
	}
	l, ok := s.leads[id]
	if !ok || l.OwnerID != ownerID {
		return nil, nil
	}
	if patch.Name != nil {
		l.Name = *patch.Name
	}
	if patch.Email != nil {
		l.Email = *patch.Email
	}
	if patch.Phone != nil {
		l.Phone = *patch.Phone
	}
	if patch.Status != nil {
		l.Status = *patch.Status
	}
	l.UpdatedAt = time.Now()
	cp := *l
	return &cp, nil
}

func (s *memLeadStore) DeleteByOwner(id, ownerID int) error {
	if s.err != nil {
		return s.err
	}
	if l, ok := s.leads[id]; ok && l.OwnerID == ownerID {
		delete(s.leads, id)
	}
	return nil
}

func (s *memLeadStore) CountByOwner(ownerID int) (int, error) {
	if s.err != nil {
		return 0, s.err
	}
	n := 0
	for _, l := range s.leads {
		if l.OwnerID == ownerID {
			n++
		}
	}
	return n, nil
}

type memDealStore struct {
	nextID int
	deals  map[int]*models.Deal
	leads  *memLeadStore // для ConvertFromLead
	err    error
}

func newMemDealStore(leads *memLeadStore) *memDealStore {
	return &memDealStore{deals: map[int]*models.Deal{}, leads: leads}
}

func (s *memDealStore) Create(deal *models.Deal) error {
	if s.err != nil {
		return s.err
	}
	s.nextID++
	deal.ID = s.nextID
	deal.CreatedAt = time.Unix(int64(2000+s.nextID), 0)
	deal.UpdatedAt = deal.CreatedAt
	cp := *deal
	s.deals[deal.ID] = &cp
	return nil
}

func (s *memDealStore) ConvertFromLead(deal *models.Deal, leadID int) error {
	if s.err != nil {
		return s.err
	}
	if err := s.Create(deal); err != nil {
		return err
	}
	if l, ok := s.leads.leads[leadID]; ok {
		l.Status = models.LeadStatusConverted
	}
	return nil
}

func (s *memDealStore) ListByOwner(ownerID int) ([]*models.Deal, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []*models.Deal
	for _, d := range s.deals {
		if d.OwnerID == ownerID {
			cp := *d
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *memDealStore) GetByOwner(id, ownerID int) (*models.Deal, error) {
	if s.err != nil {
		return nil, s.err
	}
	d, ok := s.deals[id]
	if !ok || d.OwnerID != ownerID {
		return nil, nil
	}
	cp := *d
	return &cp, nil
}

func (s *memDealStore) GetByLeadID(leadID, ownerID int) (*models.Deal, error) {
	if s.err != nil {
		return nil, s.err
	}
	for _, d := range s.deals {
		if d.LeadID != nil && *d.LeadID == leadID && d.OwnerID == ownerID {
			cp := *d
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *memDealStore) UpdateByOwner(id, ownerID int, patch models.DealPatch) (*models.Deal, error) {
	if s.err != nil {
		return nil, s.err
	}
	d, ok := s.deals[id]
	if !ok || d.OwnerID != ownerID {
		return nil, nil
	}
	if patch.Title != nil {
		d.Title = *patch.Title
	}
	if patch.Amount != nil {
		d.Amount = *patch.Amount
	}
	if patch.Stage != nil {
		d.Stage = *patch.Stage
	}
	d.UpdatedAt = time.Now()
	cp := *d
	return &cp, nil
}

func (s *memDealStore) DeleteByOwner(id, ownerID int) error {
	if s.err != nil {
		return s.err
	}
	if d, ok := s.deals[id]; ok && d.OwnerID == ownerID {
		delete(s.deals, id)
	}
	return nil
}

func (s *memDealStore) CountByOwner(ownerID int) (int, error) {
	if s.err != nil {
		return 0, s.err
	}
	n := 0
	for _, d := range s.deals {
		if d.OwnerID == ownerID {
			n++
		}
	}
	return n, nil
}

func (s *memDealStore) StageStatsByOwner(ownerID int) ([]models.StageStat, error) {
	if s.err != nil {
		return nil, s.err
	}
	byStage := map[string]*models.StageStat{}
	for _, d := range s.deals {
		if d.OwnerID != ownerID {
			continue
		}
		st, ok := byStage[d.Stage]
		if !ok {
			st = &models.StageStat{Stage: d.Stage}
			byStage[d.Stage] = st
		}
		st.Count++
		st.Total += d.Amount
	}
	var out []models.StageStat
	for _, st := range byStage {
		out = append(out, *st)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Stage < out[j].Stage })
	return out, nil
}
