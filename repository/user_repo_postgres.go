package repository

import (
	"database/sql"
	"time"

	"meenakshitravels/models"
)

type PostgresUserRepo struct {
	DB *sql.DB
}

func NewPostgresUserRepo(db *sql.DB) *PostgresUserRepo {
	return &PostgresUserRepo{DB: db}
}

func (r *PostgresUserRepo) CreateUser(user *models.AdminUser) error {
	if user.ID == "" {
		user.ID = newPostgresID()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}
	if user.Role == "" {
		user.Role = "admin"
	}

	_, err := r.DB.Exec(`
		INSERT INTO admin_user(id,name,email,role,password_hash,created_at)
		VALUES($1,$2,$3,$4,$5,$6)
	`, user.ID, user.Name, user.Email, user.Role, user.Password, user.CreatedAt)
	return err
}

func (r *PostgresUserRepo) GetUserByEmail(email string) (*models.AdminUser, error) {
	user := &models.AdminUser{}
	err := r.DB.QueryRow(`
		SELECT id,name,email,role,password_hash,created_at
		FROM admin_user WHERE email=$1
	`, email).Scan(&user.ID, &user.Name, &user.Email, &user.Role, &user.Password, &user.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}
