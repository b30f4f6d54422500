package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/zealand/roombooking/internal/db"
	"github.com/zealand/roombooking/internal/pkg/apperror"
)

// Repository defines methods for accessing user data from storage.
type Repository interface {
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id int) (*User, error)
}

type pgxUserRepository struct {
	db db.Querier
}

// NewPgxRepository creates a new Repository backed by a pgx pool.
func NewPgxRepository(q db.Querier) Repository {
	return &pgxUserRepository{db: q}
}

func selectUsers() squirrel.SelectBuilder {
	return squirrel.StatementBuilder.
		PlaceholderFormat(squirrel.Dollar).
		Select("user_id", "name", "email", "password_hash", "phone", "user_type_id").
		From("booking.users")
}

func (r *pgxUserRepository) GetByEmail(ctx context.Context, email string) (*User, error) {
	// Emails are matched case-insensitively; the service lowercases its input.
	return r.getOne(ctx, selectUsers().Where(squirrel.Eq{"lower(email)": email}))
}

func (r *pgxUserRepository) GetByID(ctx context.Context, id int) (*User, error) {
	return r.getOne(ctx, selectUsers().Where(squirrel.Eq{"user_id": id}))
}

func (r *pgxUserRepository) getOne(ctx context.Context, b squirrel.SelectBuilder) (*User, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build user query failed: %w", err)
	}

	var (
		u          User
		id, typeID int32
	)
	if err := r.db.QueryRow(ctx, query, args...).Scan(
		&id,
		&u.Name,
		&u.Email,
		&u.PasswordHash,
		&u.Phone,
		&typeID,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		if db.Classify(err) == apperror.KindConnectivity {
			return nil, ErrStoreUnavailable.WithCause(err)
		}
		return nil, db.Translate(err, "user lookup failed")
	}
	u.ID = int(id)
	u.UserTypeID = int(typeID)

	return &u, nil
}
