package filteroption

import (
	"context"
	"fmt"
	"strconv"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/zealand/roombooking/internal/db"
)

type Repository interface {
	// Lookups returns the departments and buildings of the user's departments
	// and the room types the user's type may book.
	Lookups(ctx context.Context, userID int) (*Lookups, error)
}

type pgxRepository struct {
	db db.Querier
}

func NewPgxRepository(q db.Querier) Repository {
	return &pgxRepository{db: q}
}

// lookupQueries builds the three option queries in result-set order.
func lookupQueries(userID int) ([]string, [][]any, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

	builders := []squirrel.SelectBuilder{
		psql.Select("d.department_id", "d.name").
			From("booking.department d").
			Join("booking.user_department ud ON ud.department_id = d.department_id").
			Where(squirrel.Eq{"ud.user_id": userID}).
			OrderBy("d.name"),
		psql.Select("bl.building_id", "bl.name").
			From("booking.building bl").
			Join("booking.user_department ud ON ud.department_id = bl.department_id").
			Where(squirrel.Eq{"ud.user_id": userID}).
			OrderBy("bl.name"),
		psql.Select("rt.room_type_id", "rt.name").
			From("booking.room_type rt").
			Join("booking.room_type_access a ON a.room_type_id = rt.room_type_id").
			Join("booking.users u ON u.user_type_id = a.user_type_id").
			Where(squirrel.Eq{"u.user_id": userID}).
			OrderBy("rt.name"),
	}

	queries := make([]string, 0, len(builders))
	args := make([][]any, 0, len(builders))
	for _, b := range builders {
		q, a, err := b.ToSql()
		if err != nil {
			return nil, nil, fmt.Errorf("build filter option query failed: %w", err)
		}
		queries = append(queries, q)
		args = append(args, a)
	}
	return queries, args, nil
}

// Lookups sends the three queries as one batch and reads the result sets in
// order over a single connection, released when the batch is closed.
func (r *pgxRepository) Lookups(ctx context.Context, userID int) (*Lookups, error) {
	queries, args, err := lookupQueries(userID)
	if err != nil {
		return nil, err
	}

	batch := &pgx.Batch{}
	for i, q := range queries {
		batch.Queue(q, args[i]...)
	}

	br := r.db.SendBatch(ctx, batch)
	defer br.Close()

	out := &Lookups{}
	targets := []*map[string]string{&out.Departments, &out.Buildings, &out.RoomTypes}
	for _, target := range targets {
		m, err := readOptions(br)
		if err != nil {
			return nil, db.Translate(err, "failed to load filter options")
		}
		*target = m
	}

	if err := br.Close(); err != nil {
		return nil, db.Translate(err, "failed to load filter options")
	}
	return out, nil
}

type option struct {
	ID   int32
	Name string
}

func readOptions(br pgx.BatchResults) (map[string]string, error) {
	rows, err := br.Query()
	if err != nil {
		return nil, err
	}
	opts, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (option, error) {
		var o option
		err := row.Scan(&o.ID, &o.Name)
		return o, err
	})
	if err != nil {
		return nil, err
	}

	m := make(map[string]string, len(opts))
	for _, o := range opts {
		m[strconv.Itoa(int(o.ID))] = o.Name
	}
	return m, nil
}
