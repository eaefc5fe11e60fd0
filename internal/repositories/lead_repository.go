package repositories

import (
	"database/sql"
	"fmt"
	"log"
	"strings"

	"leadflow/internal/models"
)

type LeadRepository struct {
	db *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	if db == nil {
		log.Fatalf("received nil database connection")
	}
	return &LeadRepository{db: db}
}

func (r *LeadRepository) Create(lead *models.Lead) error {
	const query = `
		INSERT INTO leads (name, email, phone, status, owner_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRow(query, lead.Name, lead.Email, lead.Phone, lead.Status, lead.OwnerID).
		Scan(&lead.ID, &lead.CreatedAt, &lead.UpdatedAt)
	if err != nil {
		return fmt.Errorf("создание лида: %w", err)
	}
	return nil
}

// Только лиды владельца, новые — первыми
func (r *LeadRepository) ListByOwner(ownerID int) ([]*models.Lead, error) {
	const query = `
		SELECT id, name, email, phone, status, owner_id, created_at, updated_at
		FROM leads
		WHERE owner_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Lead
	for rows.Next() {
		var l models.Lead
		if err := rows.Scan(&l.ID, &l.Name, &l.Email, &l.Phone, &l.Status, &l.OwnerID, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, &l)
	}
	return out, rows.Err()
}

// GetByOwner — (nil, nil), если записи нет или она принадлежит другому владельцу
func (r *LeadRepository) GetByOwner(id, ownerID int) (*models.Lead, error) {
	const query = `
		SELECT id, name, email, phone, status, owner_id, created_at, updated_at
		FROM leads
		WHERE id = $1 AND owner_id = $2
	`
	lead := &models.Lead{}
	err := r.db.QueryRow(query, id, ownerID).
		Scan(&lead.ID, &lead.Name, &lead.Email, &lead.Phone, &lead.Status, &lead.OwnerID, &lead.CreatedAt, &lead.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("получение лида: %w", err)
	}
	return lead, nil
}

// UpdateByOwner применяет частичный патч к лиду (id, owner_id).
// (nil, nil) — нет совпадения.
func (r *LeadRepository) UpdateByOwner(id, ownerID int, patch models.LeadPatch) (*models.Lead, error) {
	set := []string{}
	args := []interface{}{}
	i := 1

	if patch.Name != nil {
		set = append(set, fmt.Sprintf("name = $%d", i))
		args = append(args, *patch.Name)
		i++
	}
	if patch.Email != nil {
		set = append(set, fmt.Sprintf("email = $%d", i))
		args = append(args, *patch.Email)
		i++
	}
	if patch.Phone != nil {
		set = append(set, fmt.Sprintf("phone = $%d", i))
		args = append(args, *patch.Phone)
		i++
	}
	if patch.Status != nil {
		set = append(set, fmt.Sprintf("status = $%d", i))
		args = append(args, *patch.Status)
		i++
	}
	if len(set) == 0 {
		// пустой патч — отдаём текущее состояние
		return r.GetByOwner(id, ownerID)
	}
	set = append(set, "updated_at = now()")

	query := fmt.Sprintf(`
		UPDATE leads SET %s
		WHERE id = $%d AND owner_id = $%d
		RETURNING id, name, email, phone, status, owner_id, created_at, updated_at
	`, strings.Join(set, ", "), i, i+1)
	args = append(args, id, ownerID)

	lead := &models.Lead{}
	err := r.db.QueryRow(query, args...).
		Scan(&lead.ID, &lead.Name, &lead.Email, &lead.Phone, &lead.Status, &lead.OwnerID, &lead.CreatedAt, &lead.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("обновление лида: %w", err)
	}
	return lead, nil
}

// DeleteByOwner идемпотентен: отсутствие записи — не ошибка
func (r *LeadRepository) DeleteByOwner(id, ownerID int) error {
	const query = `DELETE FROM leads WHERE id = $1 AND owner_id = $2`
	_, err := r.db.Exec(query, id, ownerID)
	return err
}

func (r *LeadRepository) CountByOwner(ownerID int) (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM leads WHERE owner_id = $1`, ownerID).Scan(&count)
	return count, err
}
