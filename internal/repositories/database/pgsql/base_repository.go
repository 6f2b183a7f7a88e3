package pgsql

import (
	"errors"

	"github.com/minsu-kang/postboard_backend/internal/apperrors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// translateError maps pgx-level failures onto the application error taxonomy.
// Unique violations become ErrDuplicate, broken foreign keys and missing rows
// become ErrNotFound; anything else passes through for the caller to wrap.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return apperrors.ErrDuplicate
		case "23503": // foreign_key_violation
			return apperrors.ErrNotFound
		}
	}
	return err
}
