package service

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrDestinationNotFound = errors.New("destination not found")
	ErrHotelNotFound       = errors.New("hotel not found")
	ErrFlightNotFound      = errors.New("flight not found")
	ErrUserValidation      = errors.New("user validation failed")
	ErrBookingValidation   = errors.New("booking validation failed")
	ErrInvalidBookingType  = errors.New("invalid booking type")
	ErrConstraintViolation = errors.New("constraint violation")
)

// ConstraintError carries a store-level rejection (unique key, not null,
// check) with the store's own message.
type ConstraintError struct {
	Code    string
	Message string
	err     error
}

func (e *ConstraintError) Error() string { return e.Message }

func (e *ConstraintError) Unwrap() error { return e.err }

func (e *ConstraintError) Is(target error) bool { return target == ErrConstraintViolation }

// asConstraintError converts integrity violations (SQLSTATE class 23) into a
// ConstraintError and returns every other error untouched.
func asConstraintError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && strings.HasPrefix(pgErr.Code, "23") {
		return &ConstraintError{Code: pgErr.Code, Message: pgErr.Message, err: err}
	}
	return err
}

func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
