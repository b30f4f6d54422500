package booking

import (
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

// Column names produced by the slot functions and the booking_details view.
const (
	colBookingID      = "booking_id"
	colDate           = "date"
	colStartTime      = "start_time"
	colUserID         = "user_id"
	colUserName       = "user_name"
	colRoomID         = "room_id"
	colRoomName       = "room_name"
	colLevel          = "level"
	colRoomTypeID     = "room_type_id"
	colRoomType       = "room_type"
	colCapacity       = "capacity"
	colBuildingID     = "building_id"
	colBuildingName   = "building_name"
	colDepartmentID   = "department_id"
	colDepartmentName = "department_name"
	colSmartBoardID   = "smart_board_id"
)

var bookingColumns = []string{
	colBookingID, colDate, colStartTime, colUserID, colUserName,
	colRoomID, colRoomName, colLevel, colRoomTypeID, colRoomType, colCapacity,
	colBuildingID, colBuildingName, colDepartmentID, colDepartmentName,
	colSmartBoardID,
}

// Row gives access to one result row by column name.
// ok is false when the column is not part of the result at all.
type Row interface {
	Value(column string) (v any, ok bool)
}

// MapRow adapts the output of pgx.RowToMap.
type MapRow map[string]any

func (m MapRow) Value(column string) (any, bool) {
	v, ok := m[column]
	return v, ok
}

// ProjectBooking maps a result row onto a Booking. Mandatory columns that are
// missing or NULL fail the whole row; nullable booking columns map to nil.
func ProjectBooking(r Row) (*Booking, error) {
	var b Booking

	p := projector{row: r}
	b.BookingID = p.optionalInt(colBookingID)
	b.UserID = p.optionalInt(colUserID)
	b.UserName = p.optionalString(colUserName)
	b.SmartBoardID = p.optionalInt(colSmartBoardID)

	b.Date = p.requiredDate(colDate)
	b.StartTime = p.requiredTime(colStartTime)

	b.RoomID = p.requiredInt(colRoomID)
	b.RoomName = p.requiredString(colRoomName)
	b.Level = p.requiredString(colLevel)
	b.RoomTypeID = p.requiredInt(colRoomTypeID)
	b.RoomType = p.requiredString(colRoomType)
	b.Capacity = p.requiredInt(colCapacity)
	b.BuildingID = p.requiredInt(colBuildingID)
	b.BuildingName = p.requiredString(colBuildingName)
	b.DepartmentID = p.requiredInt(colDepartmentID)
	b.DepartmentName = p.requiredString(colDepartmentName)

	if p.err != nil {
		return nil, ErrRowIntegrity.WithCause(p.err)
	}
	if b.Capacity < 0 {
		return nil, ErrRowIntegrity.WithCause(fmt.Errorf("column %q: negative capacity %d", colCapacity, b.Capacity))
	}
	if b.IsBooked() && (b.UserID == nil || b.UserName == nil) {
		return nil, ErrRowIntegrity.WithCause(fmt.Errorf("booking %d has no owner", *b.BookingID))
	}
	if !b.IsBooked() && (b.UserID != nil || b.UserName != nil) {
		return nil, ErrRowIntegrity.WithCause(fmt.Errorf("free slot for room %d carries an owner", b.RoomID))
	}

	return &b, nil
}

// projector reads typed columns and records the first failure.
type projector struct {
	row Row
	err error
}

func (p *projector) fail(column string, format string, args ...any) {
	if p.err == nil {
		p.err = fmt.Errorf("column %q: "+format, append([]any{column}, args...)...)
	}
}

func (p *projector) required(column string) (any, bool) {
	v, ok := p.row.Value(column)
	if !ok {
		p.fail(column, "missing")
		return nil, false
	}
	if v == nil {
		p.fail(column, "unexpected NULL")
		return nil, false
	}
	return v, true
}

func (p *projector) requiredInt(column string) int {
	v, ok := p.required(column)
	if !ok {
		return 0
	}
	n, err := toInt(v)
	if err != nil {
		p.fail(column, "%v", err)
	}
	return n
}

func (p *projector) optionalInt(column string) *int {
	v, ok := p.row.Value(column)
	if !ok {
		p.fail(column, "missing")
		return nil
	}
	if v == nil {
		return nil
	}
	n, err := toInt(v)
	if err != nil {
		p.fail(column, "%v", err)
		return nil
	}
	return &n
}

func (p *projector) requiredString(column string) string {
	v, ok := p.required(column)
	if !ok {
		return ""
	}
	s, isStr := v.(string)
	if !isStr {
		p.fail(column, "want text, got %T", v)
	}
	return s
}

func (p *projector) optionalString(column string) *string {
	v, ok := p.row.Value(column)
	if !ok {
		p.fail(column, "missing")
		return nil
	}
	if v == nil {
		return nil
	}
	s, isStr := v.(string)
	if !isStr {
		p.fail(column, "want text, got %T", v)
		return nil
	}
	return &s
}

func (p *projector) requiredDate(column string) time.Time {
	v, ok := p.required(column)
	if !ok {
		return time.Time{}
	}
	switch d := v.(type) {
	case time.Time:
		return DateOf(d)
	case pgtype.Date:
		if d.Valid {
			return DateOf(d.Time)
		}
		p.fail(column, "unexpected NULL")
	default:
		p.fail(column, "want date, got %T", v)
	}
	return time.Time{}
}

func (p *projector) requiredTime(column string) TimeOfDay {
	v, ok := p.required(column)
	if !ok {
		return TimeOfDay{}
	}
	switch t := v.(type) {
	case pgtype.Time:
		tod, err := timeOfDayFromPg(t)
		if err != nil {
			p.fail(column, "%v", err)
		}
		return tod
	case TimeOfDay:
		return t
	case string:
		tod, err := ParseTimeOfDay(t)
		if err != nil {
			p.fail(column, "%v", err)
		}
		return tod
	default:
		p.fail(column, "want time, got %T", v)
	}
	return TimeOfDay{}
}

func toInt(v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int16:
		return int(n), nil
	case int32:
		return int(n), nil
	case int64:
		return int(n), nil
	case pgtype.Int4:
		if n.Valid {
			return int(n.Int32), nil
		}
	case pgtype.Int8:
		if n.Valid {
			return int(n.Int64), nil
		}
	case string:
		return strconv.Atoi(n)
	}
	return 0, fmt.Errorf("want integer, got %T", v)
}
