package services

import "leadflow/internal/models"

type ReportService struct {
	LeadRepo LeadStore
	DealRepo DealStore
}

func NewReportService(leadRepo LeadStore, dealRepo DealStore) *ReportService {
	return &ReportService{LeadRepo: leadRepo, DealRepo: dealRepo}
}

// GetDashboard собирает сводку по владельцу. Выручка — только по
// сделкам в этапе Won; этапы без сделок в разбивку не входят.
// Любая ошибка чтения — отказ целиком, частичных сводок не бывает.
func (s *ReportService) GetDashboard(ownerID int) (*models.DashboardSummary, error) {
	totalLeads, err := s.LeadRepo.CountByOwner(ownerID)
	if err != nil {
		return nil, err
	}
	totalDeals, err := s.DealRepo.CountByOwner(ownerID)
	if err != nil {
		return nil, err
	}
	stats, err := s.DealRepo.StageStatsByOwner(ownerID)
	if err != nil {
		return nil, err
	}

	var totalRevenue float64
	for _, st := range stats {
		if st.Stage == models.StageWon {
			totalRevenue += st.Total
		}
	}

	if stats == nil {
		stats = []models.StageStat{}
	}
	return &models.DashboardSummary{
		TotalLeads:   totalLeads,
		TotalDeals:   totalDeals,
		TotalRevenue: totalRevenue,
		DealsByStage: stats,
	}, nil
}
