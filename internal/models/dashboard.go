package models

// StageStat — одна группа сводки по этапам воронки.
type StageStat struct {
	Stage string  `json:"stage"`
	Count int     `json:"count"`
	Total float64 `json:"total"`
}

// DashboardSummary — ответ GET /deals/stats/dashboard.
// Ключи в camelCase — их ждёт клиент.
type DashboardSummary struct {
	TotalLeads   int         `json:"totalLeads"`
	TotalDeals   int         `json:"totalDeals"`
	TotalRevenue float64     `json:"totalRevenue"`
	DealsByStage []StageStat `json:"dealsByStage"`
}
