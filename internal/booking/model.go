package booking

import (
	"math"
	"time"

	"github.com/zealand/roombooking/internal/pkg/apperror"
)

var (
	ErrNotFound           = apperror.New(apperror.KindNotFound, "booking not found")
	ErrUserNotFound       = apperror.New(apperror.KindNotFound, "user not found")
	ErrRoomNotFound       = apperror.New(apperror.KindNotFound, "room not found")
	ErrSmartBoardNotFound = apperror.New(apperror.KindNotFound, "smart board not found")
	ErrSlotTaken          = apperror.New(apperror.KindConflict, "time slot already booked")
	ErrRoomNotAllowed     = apperror.New(apperror.KindConflict, "room is not bookable for this user")
	ErrRejected           = apperror.New(apperror.KindConflict, "booking rejected")
	ErrDatePast           = apperror.New(apperror.KindValidation, "cannot book a room for a past date")
	ErrOutsideHours       = apperror.New(apperror.KindValidation, "start time is outside working hours")
	ErrDateRequired       = apperror.New(apperror.KindValidation, "date is required")
	ErrInvalidUser        = apperror.New(apperror.KindValidation, "acting user id is required")
	ErrInvalidInput       = apperror.New(apperror.KindValidation, "invalid input parameters")
	ErrRowIntegrity       = apperror.New(apperror.KindInternal, "booking row failed integrity check")
	ErrStoreUnavailable   = apperror.New(apperror.KindConnectivity, "booking store unavailable")
)

// MaxID is the largest id the store can hold (int4 columns).
const MaxID = math.MaxInt32

// ValidID reports whether id fits an int4 key column.
func ValidID(id int) bool {
	return id > 0 && id <= MaxID
}

// Booking is one room/time slot on a date. A slot is booked iff BookingID is set,
// in which case UserID and UserName are set as well.
type Booking struct {
	BookingID *int
	Date      time.Time
	StartTime TimeOfDay
	UserID    *int
	UserName  *string

	RoomID         int
	RoomName       string
	Level          string
	RoomTypeID     int
	RoomType       string
	Capacity       int
	BuildingID     int
	BuildingName   string
	DepartmentID   int
	DepartmentName string

	SmartBoardID *int
}

// IsBooked is derived from BookingID and never stored.
func (b *Booking) IsBooked() bool {
	return b.BookingID != nil
}

// CreateRequest carries the input of CreateBooking.
type CreateRequest struct {
	UserID       int
	RoomID       int
	Date         time.Time
	StartTime    TimeOfDay
	SmartBoardID *int
}
