package repository

import (
	"database/sql"
	"time"

	"meenakshitravels/models"
)

type PostgresLeadRepo struct {
	DB *sql.DB
}

func NewPostgresLeadRepo(db *sql.DB) *PostgresLeadRepo {
	return &PostgresLeadRepo{DB: db}
}

func (r *PostgresLeadRepo) Create(l *models.Lead) error {
	if l.ID == "" {
		l.ID = newPostgresID()
	}
	if l.SubmittedAt.IsZero() {
		l.SubmittedAt = time.Now().UTC()
	}
	if l.Status == "" {
		l.Status = models.LeadNew
	}

	_, err := r.DB.Exec(`
		INSERT INTO lead(id,full_name,email,phone,company,service,message,
			project_description,additional_requirements,form_source,status,quote_pdf_url,submitted_at)
		VALUES($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
	`, l.ID, l.FullName, l.Email, l.Phone, l.Company, l.Service, l.Message,
		l.ProjectDescription, l.AdditionalRequirements, l.FormSource, l.Status, l.QuotePDFURL, l.SubmittedAt)
	return err
}

func (r *PostgresLeadRepo) List(q models.ListQuery) ([]*models.Lead, int64, error) {
	where := " WHERE 1=1"
	args := []interface{}{}
	arg := func(v interface{}) string {
		args = append(args, v)
		return "$" + itoa(len(args))
	}

	if q.Search != "" {
		p := arg(likePattern(q.Search))
		where += " AND (full_name ILIKE " + p + " OR email ILIKE " + p + " OR phone ILIKE " + p + ")"
	}
	if q.Status != "" {
		where += " AND status = " + arg(q.Status)
	}

	var total int64
	if err := r.DB.QueryRow("SELECT COUNT(*) FROM lead"+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT id,full_name,email,phone,company,service,message,
			project_description,additional_requirements,form_source,status,quote_pdf_url,submitted_at
		FROM lead` + where + `
		ORDER BY submitted_at DESC
		LIMIT ` + arg(q.Limit) + ` OFFSET ` + arg((q.Page-1)*q.Limit)

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []*models.Lead
	for rows.Next() {
		l := &models.Lead{}
		if err := rows.Scan(&l.ID, &l.FullName, &l.Email, &l.Phone, &l.Company,
			&l.Service, &l.Message, &l.ProjectDescription, &l.AdditionalRequirements,
			&l.FormSource, &l.Status, &l.QuotePDFURL, &l.SubmittedAt); err != nil {
			return nil, 0, err
		}
		out = append(out, l)
	}
	return out, total, rows.Err()
}

func (r *PostgresLeadRepo) GetByID(id string) (*models.Lead, error) {
	l := &models.Lead{}
	err := r.DB.QueryRow(`
		SELECT id,full_name,email,phone,company,service,message,
			project_description,additional_requirements,form_source,status,quote_pdf_url,submitted_at
		FROM lead WHERE id=$1
	`, id).Scan(&l.ID, &l.FullName, &l.Email, &l.Phone, &l.Company,
		&l.Service, &l.Message, &l.ProjectDescription, &l.AdditionalRequirements,
		&l.FormSource, &l.Status, &l.QuotePDFURL, &l.SubmittedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return l, nil
}

func (r *PostgresLeadRepo) Update(l *models.Lead) error {
	res, err := r.DB.Exec(`
		UPDATE lead
		SET full_name=$1, email=$2, phone=$3, company=$4, service=$5, message=$6,
			project_description=$7, additional_requirements=$8, form_source=$9,
			status=$10, quote_pdf_url=$11
		WHERE id=$12
	`, l.FullName, l.Email, l.Phone, l.Company, l.Service, l.Message,
		l.ProjectDescription, l.AdditionalRequirements, l.FormSource, l.Status, l.QuotePDFURL, l.ID)
	if err != nil {
		return err
	}
	return checkAffected(res)
}

func (r *PostgresLeadRepo) Delete(id string) error {
	res, err := r.DB.Exec(`DELETE FROM lead WHERE id=$1`, id)
	if err != nil {
		return err
	}
	return checkAffected(res)
}

func (r *PostgresLeadRepo) CountByStatus(status string) (int64, error) {
	var n int64
	err := r.DB.QueryRow(`SELECT COUNT(*) FROM lead WHERE status=$1`, status).Scan(&n)
	return n, err
}

func (r *PostgresLeadRepo) Count() (int64, error) {
	var n int64
	err := r.DB.QueryRow(`SELECT COUNT(*) FROM lead`).Scan(&n)
	return n, err
}
