package models

import "time"

const (
	StageOpen        = "Open"
	StageProposal    = "Proposal"
	StageNegotiation = "Negotiation"
	StageWon         = "Won"
	StageLost        = "Lost"
)

type Deal struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	Amount    float64   `json:"amount"`
	Stage     string    `json:"stage"`
	OwnerID   int       `json:"owner_id"`
	LeadID    *int      `json:"lead_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DealPatch — разрешённые к изменению поля
type DealPatch struct {
	Title  *string  `json:"title"`
	Amount *float64 `json:"amount"`
	Stage  *string  `json:"stage"`
}

func IsValidStage(stage string) bool {
	switch stage {
	case StageOpen, StageProposal, StageNegotiation, StageWon, StageLost:
		return true
	}
	return false
}
