package repository

import (
	"database/sql"
	"strconv"

	"github.com/google/uuid"
)

func newPostgresID() string {
	return uuid.NewString()
}

func likePattern(term string) string {
	return "%" + term + "%"
}

func itoa(n int) string {
	return strconv.Itoa(n)
}

// checkAffected maps a zero-row update/delete to ErrNotFound.
func checkAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
