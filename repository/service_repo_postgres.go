package repository

import (
	"database/sql"
	"encoding/json"
	"time"

	"meenakshitravels/models"
)

type PostgresServiceRepo struct {
	DB *sql.DB
}

func NewPostgresServiceRepo(db *sql.DB) *PostgresServiceRepo {
	return &PostgresServiceRepo{DB: db}
}

func (r *PostgresServiceRepo) Create(s *models.Service) error {
	if s.ID == "" {
		s.ID = newPostgresID()
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}
	if s.Status == "" {
		s.Status = "active"
	}

	features, err := json.Marshal(s.Features)
	if err != nil {
		return err
	}
	applications, err := json.Marshal(s.Applications)
	if err != nil {
		return err
	}

	_, err = r.DB.Exec(`
		INSERT INTO service(id,title,description,features,applications,status,featured,created_at)
		VALUES($1,$2,$3,$4,$5,$6,$7,$8)
	`, s.ID, s.Title, s.Description, features, applications, s.Status, s.Featured, s.CreatedAt)
	return err
}

func (r *PostgresServiceRepo) List(q models.ListQuery) ([]*models.Service, int64, error) {
	where := " WHERE 1=1"
	args := []interface{}{}
	arg := func(v interface{}) string {
		args = append(args, v)
		return "$" + itoa(len(args))
	}

	if q.Search != "" {
		p := arg(likePattern(q.Search))
		where += " AND (title ILIKE " + p + " OR description ILIKE " + p + ")"
	}
	if q.Status != "" {
		where += " AND status = " + arg(q.Status)
	}
	if q.Featured != nil {
		where += " AND featured = " + arg(*q.Featured)
	}

	var total int64
	if err := r.DB.QueryRow("SELECT COUNT(*) FROM service"+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT id,title,description,features,applications,status,featured,created_at
		FROM service` + where + `
		ORDER BY created_at DESC
		LIMIT ` + arg(q.Limit) + ` OFFSET ` + arg((q.Page-1)*q.Limit)

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []*models.Service
	for rows.Next() {
		s := &models.Service{}
		var features, applications []byte
		if err := rows.Scan(&s.ID, &s.Title, &s.Description, &features,
			&applications, &s.Status, &s.Featured, &s.CreatedAt); err != nil {
			return nil, 0, err
		}
		if err := json.Unmarshal(features, &s.Features); err != nil {
			return nil, 0, err
		}
		if err := json.Unmarshal(applications, &s.Applications); err != nil {
			return nil, 0, err
		}
		out = append(out, s)
	}
	return out, total, rows.Err()
}

func (r *PostgresServiceRepo) GetByID(id string) (*models.Service, error) {
	s := &models.Service{}
	var features, applications []byte
	err := r.DB.QueryRow(`
		SELECT id,title,description,features,applications,status,featured,created_at
		FROM service WHERE id=$1
	`, id).Scan(&s.ID, &s.Title, &s.Description, &features,
		&applications, &s.Status, &s.Featured, &s.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	if err := json.Unmarshal(features, &s.Features); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(applications, &s.Applications); err != nil {
		return nil, err
	}
	return s, nil
}

func (r *PostgresServiceRepo) Update(s *models.Service) error {
	features, err := json.Marshal(s.Features)
	if err != nil {
		return err
	}
	applications, err := json.Marshal(s.Applications)
	if err != nil {
		return err
	}

	res, err := r.DB.Exec(`
		UPDATE service
		SET title=$1, description=$2, features=$3, applications=$4, status=$5, featured=$6
		WHERE id=$7
	`, s.Title, s.Description, features, applications, s.Status, s.Featured, s.ID)
	if err != nil {
		return err
	}
	return checkAffected(res)
}

func (r *PostgresServiceRepo) Delete(id string) error {
	res, err := r.DB.Exec(`DELETE FROM service WHERE id=$1`, id)
	if err != nil {
		return err
	}
	return checkAffected(res)
}

func (r *PostgresServiceRepo) CountByStatus(status string) (int64, error) {
	var n int64
	err := r.DB.QueryRow(`SELECT COUNT(*) FROM service WHERE status=$1`, status).Scan(&n)
	return n, err
}
