package booking

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/zealand/roombooking/internal/db"
	"github.com/zealand/roombooking/internal/pkg/apperror"
)

type Repository interface {
	// FilteredSlots returns every slot on filter.Date visible to the acting user
	// that satisfies the filter, booked or free.
	FilteredSlots(ctx context.Context, filter Filter) ([]*Booking, error)
	// AvailableSlots is FilteredSlots restricted to free slots.
	AvailableSlots(ctx context.Context, filter Filter) ([]*Booking, error)
	Create(ctx context.Context, req CreateRequest) (int, error)
	Delete(ctx context.Context, bookingID, userID int) error
	ListByUser(ctx context.Context, userID int) ([]*Booking, error)
}

const (
	filteredSlotsQuery = `
		SELECT * FROM booking.get_filtered_slots($1, $2, $3, $4, $5, $6, $7, $8)
	`
	availableSlotsQuery = `
		SELECT * FROM booking.get_available_slots($1, $2, $3, $4, $5, $6, $7, $8)
	`
	createBookingQuery = `
		SELECT booking.create_booking($1, $2, $3, $4, $5)
	`
	deleteBookingQuery = `
		SELECT booking.delete_booking($1, $2)
	`
)

type pgxRepository struct {
	db db.Querier
}

func NewPgxRepository(q db.Querier) Repository {
	return &pgxRepository{db: q}
}

func (r *pgxRepository) FilteredSlots(ctx context.Context, filter Filter) ([]*Booking, error) {
	return r.querySlots(ctx, filteredSlotsQuery, filter.Args()...)
}

func (r *pgxRepository) AvailableSlots(ctx context.Context, filter Filter) ([]*Booking, error) {
	return r.querySlots(ctx, availableSlotsQuery, filter.Args()...)
}

func (r *pgxRepository) ListByUser(ctx context.Context, userID int) ([]*Booking, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(bookingColumns...).
		From("booking.booking_details").
		Where(squirrel.Eq{colUserID: userID}).
		OrderBy(colDate, colStartTime, colRoomName).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list user bookings query failed: %w", err)
	}

	return r.querySlots(ctx, query, args...)
}

// querySlots runs a slot query and projects every row. Nothing is returned
// unless every row projects cleanly.
func (r *pgxRepository) querySlots(ctx context.Context, query string, args ...any) ([]*Booking, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, translateQueryError(err)
	}
	// CollectRows closes rows on every path.
	raw, err := pgx.CollectRows(rows, pgx.RowToMap)
	if err != nil {
		return nil, translateQueryError(err)
	}

	bookings := make([]*Booking, 0, len(raw))
	for _, m := range raw {
		b, err := ProjectBooking(MapRow(m))
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, nil
}

func (r *pgxRepository) Create(ctx context.Context, req CreateRequest) (int, error) {
	var smartBoard *int32
	if req.SmartBoardID != nil {
		v := int32(*req.SmartBoardID)
		smartBoard = &v
	}

	var id int32
	err := r.db.QueryRow(ctx, createBookingQuery,
		int32(req.UserID),
		int32(req.RoomID),
		pgtype.Date{Time: DateOf(req.Date), Valid: true},
		req.StartTime.PgTime(),
		smartBoard,
	).Scan(&id)
	if err != nil {
		return 0, translateCreateError(err)
	}
	return int(id), nil
}

func (r *pgxRepository) Delete(ctx context.Context, bookingID, userID int) error {
	var deleted int32
	if err := r.db.QueryRow(ctx, deleteBookingQuery, int32(bookingID), int32(userID)).Scan(&deleted); err != nil {
		return translateQueryError(err)
	}
	if deleted == 0 {
		return ErrNotFound
	}
	return nil
}

// translateQueryError maps store errors raised by the read functions.
func translateQueryError(err error) error {
	switch db.Code(err) {
	case pgerrcode.NoDataFound:
		return notFoundFor(err)
	}
	return translateGeneric(err)
}

// translateCreateError maps the rejections raised by booking.create_booking.
func translateCreateError(err error) error {
	switch db.Code(err) {
	case pgerrcode.UniqueViolation, pgerrcode.ExclusionViolation:
		return ErrSlotTaken.WithCause(err)
	case pgerrcode.InsufficientPrivilege:
		return ErrRoomNotAllowed.WithCause(err)
	case pgerrcode.RaiseException:
		return ErrRejected.WithCause(err)
	case pgerrcode.NoDataFound, pgerrcode.ForeignKeyViolation:
		return notFoundFor(err)
	}
	return translateGeneric(err)
}

// notFoundFor picks the sentinel named by the DETAIL of a no_data_found error.
func notFoundFor(err error) error {
	switch db.Detail(err) {
	case "user":
		return ErrUserNotFound.WithCause(err)
	case "room":
		return ErrRoomNotFound.WithCause(err)
	case "smart_board":
		return ErrSmartBoardNotFound.WithCause(err)
	default:
		return ErrNotFound.WithCause(err)
	}
}

func translateGeneric(err error) error {
	switch db.Classify(err) {
	case apperror.KindConnectivity:
		return ErrStoreUnavailable.WithCause(err)
	case apperror.KindValidation:
		return ErrInvalidInput.WithCause(err)
	}
	return db.Translate(err, "booking query failed")
}
