package repository

import (
	"database/sql"
	"encoding/json"
	"time"

	"meenakshitravels/models"
)

type PostgresPageRepo struct {
	DB *sql.DB
}

func NewPostgresPageRepo(db *sql.DB) *PostgresPageRepo {
	return &PostgresPageRepo{DB: db}
}

func (r *PostgresPageRepo) Create(p *models.Page) error {
	if p.ID == "" {
		p.ID = newPostgresID()
	}
	p.UpdatedAt = time.Now().UTC()
	if p.Sections == nil {
		p.Sections = []models.PageSection{}
	}

	sections, err := json.Marshal(p.Sections)
	if err != nil {
		return err
	}

	_, err = r.DB.Exec(`
		INSERT INTO page(id,title,slug,sections,updated_at)
		VALUES($1,$2,$3,$4,$5)
	`, p.ID, p.Title, p.Slug, sections, p.UpdatedAt)
	return err
}

func (r *PostgresPageRepo) List(q models.ListQuery) ([]*models.Page, int64, error) {
	where := " WHERE 1=1"
	args := []interface{}{}
	arg := func(v interface{}) string {
		args = append(args, v)
		return "$" + itoa(len(args))
	}

	if q.Search != "" {
		p := arg(likePattern(q.Search))
		where += " AND (title ILIKE " + p + " OR slug ILIKE " + p + ")"
	}

	var total int64
	if err := r.DB.QueryRow("SELECT COUNT(*) FROM page"+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT id,title,slug,sections,updated_at
		FROM page` + where + `
		ORDER BY slug ASC
		LIMIT ` + arg(q.Limit) + ` OFFSET ` + arg((q.Page-1)*q.Limit)

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []*models.Page
	for rows.Next() {
		p := &models.Page{}
		var sections []byte
		if err := rows.Scan(&p.ID, &p.Title, &p.Slug, &sections, &p.UpdatedAt); err != nil {
			return nil, 0, err
		}
		if err := json.Unmarshal(sections, &p.Sections); err != nil {
			return nil, 0, err
		}
		out = append(out, p)
	}
	return out, total, rows.Err()
}

func (r *PostgresPageRepo) scanOne(row *sql.Row) (*models.Page, error) {
	p := &models.Page{}
	var sections []byte
	err := row.Scan(&p.ID, &p.Title, &p.Slug, &sections, &p.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	if err := json.Unmarshal(sections, &p.Sections); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *PostgresPageRepo) GetBySlug(slug string) (*models.Page, error) {
	return r.scanOne(r.DB.QueryRow(`
		SELECT id,title,slug,sections,updated_at FROM page WHERE slug=$1
	`, slug))
}

func (r *PostgresPageRepo) GetByID(id string) (*models.Page, error) {
	return r.scanOne(r.DB.QueryRow(`
		SELECT id,title,slug,sections,updated_at FROM page WHERE id=$1
	`, id))
}

func (r *PostgresPageRepo) Update(p *models.Page) error {
	p.UpdatedAt = time.Now().UTC()
	sections, err := json.Marshal(p.Sections)
	if err != nil {
		return err
	}

	res, err := r.DB.Exec(`
		UPDATE page SET title=$1, slug=$2, sections=$3, updated_at=$4 WHERE id=$5
	`, p.Title, p.Slug, sections, p.UpdatedAt, p.ID)
	if err != nil {
		return err
	}
	return checkAffected(res)
}

func (r *PostgresPageRepo) Delete(id string) error {
	res, err := r.DB.Exec(`DELETE FROM page WHERE id=$1`, id)
	if err != nil {
		return err
	}
	return checkAffected(res)
}
