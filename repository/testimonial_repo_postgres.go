package repository

import (
	"database/sql"
	"time"

	"meenakshitravels/models"
)

type PostgresTestimonialRepo struct {
	DB *sql.DB
}

func NewPostgresTestimonialRepo(db *sql.DB) *PostgresTestimonialRepo {
	return &PostgresTestimonialRepo{DB: db}
}

func (r *PostgresTestimonialRepo) Create(t *models.Testimonial) error {
	if t.ID == "" {
		t.ID = newPostgresID()
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now().UTC()
	}
	if t.Date.IsZero() {
		t.Date = t.CreatedAt
	}
	if t.Status == "" {
		t.Status = models.TestimonialPublished
	}

	_, err := r.DB.Exec(`
		INSERT INTO testimonial(id,name,location,avatar,content,rating,service_type,date,status,created_at)
		VALUES($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
	`, t.ID, t.Name, t.Location, t.Avatar, t.Content, t.Rating, t.ServiceType, t.Date, t.Status, t.CreatedAt)
	return err
}

func (r *PostgresTestimonialRepo) List(q models.ListQuery) ([]*models.Testimonial, int64, error) {
	where := " WHERE 1=1"
	args := []interface{}{}
	arg := func(v interface{}) string {
		args = append(args, v)
		return "$" + itoa(len(args))
	}

	if q.Search != "" {
		p := arg(likePattern(q.Search))
		where += " AND (name ILIKE " + p + " OR location ILIKE " + p + " OR content ILIKE " + p + ")"
	}
	if q.Status != "" {
		where += " AND status = " + arg(q.Status)
	}

	var total int64
	if err := r.DB.QueryRow("SELECT COUNT(*) FROM testimonial"+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT id,name,location,avatar,content,rating,service_type,date,status,created_at
		FROM testimonial` + where + `
		ORDER BY created_at DESC
		LIMIT ` + arg(q.Limit) + ` OFFSET ` + arg((q.Page-1)*q.Limit)

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []*models.Testimonial
	for rows.Next() {
		t := &models.Testimonial{}
		if err := rows.Scan(&t.ID, &t.Name, &t.Location, &t.Avatar, &t.Content,
			&t.Rating, &t.ServiceType, &t.Date, &t.Status, &t.CreatedAt); err != nil {
			return nil, 0, err
		}
		out = append(out, t)
	}
	return out, total, rows.Err()
}

func (r *PostgresTestimonialRepo) GetByID(id string) (*models.Testimonial, error) {
	t := &models.Testimonial{}
	err := r.DB.QueryRow(`
		SELECT id,name,location,avatar,content,rating,service_type,date,status,created_at
		FROM testimonial WHERE id=$1
	`, id).Scan(&t.ID, &t.Name, &t.Location, &t.Avatar, &t.Content,
		&t.Rating, &t.ServiceType, &t.Date, &t.Status, &t.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return t, nil
}

func (r *PostgresTestimonialRepo) Update(t *models.Testimonial) error {
	res, err := r.DB.Exec(`
		UPDATE testimonial
		SET name=$1, location=$2, avatar=$3, content=$4, rating=$5,
			service_type=$6, date=$7, status=$8
		WHERE id=$9
	`, t.Name, t.Location, t.Avatar, t.Content, t.Rating, t.ServiceType, t.Date, t.Status, t.ID)
	if err != nil {
		return err
	}
	return checkAffected(res)
}

func (r *PostgresTestimonialRepo) Delete(id string) error {
	res, err := r.DB.Exec(`DELETE FROM testimonial WHERE id=$1`, id)
	if err != nil {
		return err
	}
	return checkAffected(res)
}

func (r *PostgresTestimonialRepo) CountByStatus(status string) (int64, error) {
	var n int64
	err := r.DB.QueryRow(`SELECT COUNT(*) FROM testimonial WHERE status=$1`, status).Scan(&n)
	return n, err
}
