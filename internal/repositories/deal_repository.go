package repositories

import (
	"database/sql"
	"fmt"
	"strings"

	"leadflow/internal/models"
)

type DealRepository struct {
	db *sql.DB
}

func NewDealRepository(db *sql.DB) *DealRepository {
	return &DealRepository{db: db}
}

func nullableLeadID(leadID *int) sql.NullInt64 {
	if leadID == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*leadID), Valid: true}
}

func scanDeal(row interface{ Scan(...interface{}) error }, deal *models.Deal) error {
	var leadID sql.NullInt64
	if err := row.Scan(&deal.ID, &deal.Title, &deal.Amount, &deal.Stage, &deal.OwnerID, &leadID, &deal.CreatedAt, &deal.UpdatedAt); err != nil {
		return err
	}
	if leadID.Valid {
		v := int(leadID.Int64)
		deal.LeadID = &v
	}
	return nil
}

func (r *DealRepository) Create(deal *models.Deal) error {
	const query = `
		INSERT INTO deals (title, amount, stage, owner_id, lead_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRow(query, deal.Title, deal.Amount, deal.Stage, deal.OwnerID, nullableLeadID(deal.LeadID)).
		Scan(&deal.ID, &deal.CreatedAt, &deal.UpdatedAt)
	if err != nil {
		return fmt.Errorf("создание сделки: %w", err)
	}
	return nil
}

// ConvertFromLead создаёт сделку и помечает лид сконвертированным
// одной транзакцией: либо обе записи, либо ни одной.
func (r *DealRepository) ConvertFromLead(deal *models.Deal, leadID int) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("конвертация: begin: %w", err)
	}

	const insertQuery = `
		INSERT INTO deals (title, amount, stage, owner_id, lead_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`
	err = tx.QueryRow(insertQuery, deal.Title, deal.Amount, deal.Stage, deal.OwnerID, nullableLeadID(deal.LeadID)).
		Scan(&deal.ID, &deal.CreatedAt, &deal.UpdatedAt)
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("конвертация: создание сделки: %w", err)
	}

	const updateQuery = `UPDATE leads SET status = $1, updated_at = now() WHERE id = $2`
	if _, err := tx.Exec(updateQuery, models.LeadStatusConverted, leadID); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("конвертация: обновление лида: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("конвертация: commit: %w", err)
	}
	return nil
}

func (r *DealRepository) ListByOwner(ownerID int) ([]*models.Deal, error) {
	const query = `
		SELECT id, title, amount, stage, owner_id, lead_id, created_at, updated_at
		FROM deals
		WHERE owner_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var deals []*models.Deal
	for rows.Next() {
		var d models.Deal
		if err := scanDeal(rows, &d); err != nil {
			return nil, err
		}
		deals = append(deals, &d)
	}
	return deals, rows.Err()
}

func (r *DealRepository) GetByOwner(id, ownerID int) (*models.Deal, error) {
	const query = `
		SELECT id, title, amount, stage, owner_id, lead_id, created_at, updated_at
		FROM deals
		WHERE id = $1 AND owner_id = $2
	`
	deal := &models.Deal{}
	err := scanDeal(r.db.QueryRow(query, id, ownerID), deal)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("получение сделки: %w", err)
	}
	return deal, nil
}

// Последняя сделка владельца по лиду — guard от повторной конвертации.
// Скоупится по owner_id: чужая сделка с тем же lead_id не видна и
// конвертацию не блокирует.
func (r *DealRepository) GetByLeadID(leadID, ownerID int) (*models.Deal, error) {
	const query = `
		SELECT id, title, amount, stage, owner_id, lead_id, created_at, updated_at
		FROM deals
		WHERE lead_id = $1 AND owner_id = $2
		ORDER BY created_at DESC
		LIMIT 1
	`
	deal := &models.Deal{}
	err := scanDeal(r.db.QueryRow(query, leadID, ownerID), deal)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("получение сделки по lead_id: %w", err)
	}
	return deal, nil
}

func (r *DealRepository) UpdateByOwner(id, ownerID int, patch models.DealPatch) (*models.Deal, error) {
	set := []string{}
	args := []interface{}{}
	i := 1

	if patch.Title != nil {
		set = append(set, fmt.Sprintf("title = $%d", i))
		args = append(args, *patch.Title)
		i++
	}
	if patch.Amount != nil {
		set = append(set, fmt.Sprintf("amount = $%d", i))
		args = append(args, *patch.Amount)
		i++
	}
	if patch.Stage != nil {
		set = append(set, fmt.Sprintf("stage = $%d", i))
		args = append(args, *patch.Stage)
		i++
	}
	if len(set) == 0 {
		return r.GetByOwner(id, ownerID)
	}
	set = append(set, "updated_at = now()")

	query := fmt.Sprintf(`
		UPDATE deals SET %s
		WHERE id = $%d AND owner_id = $%d
		RETURNING id, title, amount, stage, owner_id, lead_id, created_at, updated_at
	`, strings.Join(set, ", "), i, i+1)
	args = append(args, id, ownerID)

	deal := &models.Deal{}
	err := scanDeal(r.db.QueryRow(query, args...), deal)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("обновление сделки: %w", err)
	}
	return deal, nil
}

func (r *DealRepository) DeleteByOwner(id, ownerID int) error {
	const query = `DELETE FROM deals WHERE id = $1 AND owner_id = $2`
	_, err := r.db.Exec(query, id, ownerID)
	return err
}

func (r *DealRepository) CountByOwner(ownerID int) (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM deals WHERE owner_id = $1`, ownerID).Scan(&count)
	return count, err
}

// StageStatsByOwner — группировка сделок владельца по этапам.
// Этапы без сделок в выборку не попадают.
func (r *DealRepository) StageStatsByOwner(ownerID int) ([]models.StageStat, error) {
	const query = `
		SELECT stage, COUNT(*), COALESCE(SUM(amount), 0)
		FROM deals
		WHERE owner_id = $1
		GROUP BY stage
	`
	rows, err := r.db.Query(query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []models.StageStat
	for rows.Next() {
		var s models.StageStat
		if err := rows.Scan(&s.Stage, &s.Count, &s.Total); err != nil {
			return nil, err
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}
