package repository

import (
	"database/sql"
	"encoding/json"
	"time"

	"meenakshitravels/models"
)

type PostgresTariffRepo struct {
	DB *sql.DB
}

func NewPostgresTariffRepo(db *sql.DB) *PostgresTariffRepo {
	return &PostgresTariffRepo{DB: db}
}

func (r *PostgresTariffRepo) Create(t *models.TariffItem) error {
	if t.ID == "" {
		t.ID = newPostgresID()
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now().UTC()
	}
	if t.Status == "" {
		t.Status = "active"
	}
	if t.AdditionalCharges == nil {
		t.AdditionalCharges = []models.AdditionalCharge{}
	}

	charges, err := json.Marshal(t.AdditionalCharges)
	if err != nil {
		return err
	}

	_, err = r.DB.Exec(`
		INSERT INTO tariff_item(id,vehicle_type,rate_per_km,minimum_km,minimum_fare,driver_bata,additional_charges,status,created_at)
		VALUES($1,$2,$3,$4,$5,$6,$7,$8,$9)
	`, t.ID, t.VehicleType, t.RatePerKm, t.MinimumKm, t.MinimumFare, t.DriverBata, charges, t.Status, t.CreatedAt)
	return err
}

func (r *PostgresTariffRepo) List(q models.ListQuery) ([]*models.TariffItem, int64, error) {
	where := " WHERE 1=1"
	args := []interface{}{}
	arg := func(v interface{}) string {
		args = append(args, v)
		return "$" + itoa(len(args))
	}

	if q.Search != "" {
		where += " AND vehicle_type ILIKE " + arg(likePattern(q.Search))
	}
	if q.Status != "" {
		where += " AND status = " + arg(q.Status)
	}

	var total int64
	if err := r.DB.QueryRow("SELECT COUNT(*) FROM tariff_item"+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT id,vehicle_type,rate_per_km,minimum_km,minimum_fare,driver_bata,additional_charges,status,created_at
		FROM tariff_item` + where + `
		ORDER BY vehicle_type ASC
		LIMIT ` + arg(q.Limit) + ` OFFSET ` + arg((q.Page-1)*q.Limit)

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []*models.TariffItem
	for rows.Next() {
		t := &models.TariffItem{}
		var charges []byte
		if err := rows.Scan(&t.ID, &t.VehicleType, &t.RatePerKm, &t.MinimumKm,
			&t.MinimumFare, &t.DriverBata, &charges, &t.Status, &t.CreatedAt); err != nil {
			return nil, 0, err
		}
		if err := json.Unmarshal(charges, &t.AdditionalCharges); err != nil {
			return nil, 0, err
		}
		out = append(out, t)
	}
	return out, total, rows.Err()
}

func (r *PostgresTariffRepo) GetByID(id string) (*models.TariffItem, error) {
	t := &models.TariffItem{}
	var charges []byte
	err := r.DB.QueryRow(`
		SELECT id,vehicle_type,rate_per_km,minimum_km,minimum_fare,driver_bata,additional_charges,status,created_at
		FROM tariff_item WHERE id=$1
	`, id).Scan(&t.ID, &t.VehicleType, &t.RatePerKm, &t.MinimumKm,
		&t.MinimumFare, &t.DriverBata, &charges, &t.Status, &t.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	if err := json.Unmarshal(charges, &t.AdditionalCharges); err != nil {
		return nil, err
	}
	return t, nil
}

func (r *PostgresTariffRepo) Update(t *models.TariffItem) error {
	charges, err := json.Marshal(t.AdditionalCharges)
	if err != nil {
		return err
	}

	res, err := r.DB.Exec(`
		UPDATE tariff_item
		SET vehicle_type=$1, rate_per_km=$2, minimum_km=$3, minimum_fare=$4,
			driver_bata=$5, additional_charges=$6, status=$7
		WHERE id=$8
	`, t.VehicleType, t.RatePerKm, t.MinimumKm, t.MinimumFare, t.DriverBata, charges, t.Status, t.ID)
	if err != nil {
		return err
	}
	return checkAffected(res)
}

func (r *PostgresTariffRepo) Delete(id string) error {
	res, err := r.DB.Exec(`DELETE FROM tariff_item WHERE id=$1`, id)
	if err != nil {
		return err
	}
	return checkAffected(res)
}

func (r *PostgresTariffRepo) Count() (int64, error) {
	var n int64
	err := r.DB.QueryRow(`SELECT COUNT(*) FROM tariff_item`).Scan(&n)
	return n, err
}
