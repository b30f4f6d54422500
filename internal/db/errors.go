package db

import (
	"context"
	"errors"
	"net"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/zealand/roombooking/internal/pkg/apperror"
)

// Classify maps an error returned by pgx onto the application error taxonomy.
func Classify(err error) apperror.Kind {
	if err == nil {
		return apperror.KindInternal
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return classifyCode(pgErr.Code)
	}

	var connErr *pgconn.ConnectError
	var netErr net.Error
	switch {
	case errors.As(err, &connErr),
		errors.As(err, &netErr),
		pgconn.Timeout(err),
		errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, context.Canceled):
		return apperror.KindConnectivity
	}

	return apperror.KindInternal
}

func classifyCode(code string) apperror.Kind {
	switch {
	case code == pgerrcode.UniqueViolation,
		code == pgerrcode.ExclusionViolation,
		code == pgerrcode.RaiseException,
		code == pgerrcode.InsufficientPrivilege:
		return apperror.KindConflict
	case code == pgerrcode.NoDataFound,
		code == pgerrcode.ForeignKeyViolation:
		return apperror.KindNotFound
	case code == pgerrcode.InvalidDatetimeFormat,
		code == pgerrcode.DatetimeFieldOverflow,
		code == pgerrcode.InvalidTextRepresentation,
		code == pgerrcode.CheckViolation,
		code == pgerrcode.NotNullViolation:
		return apperror.KindValidation
	case pgerrcode.IsConnectionException(code),
		pgerrcode.IsOperatorIntervention(code),
		pgerrcode.IsInsufficientResources(code):
		return apperror.KindConnectivity
	}
	return apperror.KindInternal
}

// Translate wraps err into an AppError of its classified kind.
// message is the user-facing text; the driver error stays reachable via errors.As.
func Translate(err error, message string) error {
	if err == nil {
		return nil
	}
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return err
	}
	return apperror.Wrap(err, Classify(err), message)
}

// Detail returns the DETAIL field of a Postgres error, if any.
// Stored functions use it to name the entity a no_data_found refers to.
func Detail(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Detail
	}
	return ""
}

// Code returns the SQLSTATE of a Postgres error, if any.
func Code(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}
