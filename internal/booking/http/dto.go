package http

import (
	"github.com/zealand/roombooking/internal/booking"
)

// ListSlotsRequest binds GET /slots. Repeating a parameter adds to its set.
type ListSlotsRequest struct {
	Date          string   `form:"date" binding:"required,isodate"`
	DepartmentIDs []int    `form:"department_id" binding:"omitempty,dive,min=1,max=2147483647"`
	BuildingIDs   []int    `form:"building_id" binding:"omitempty,dive,min=1,max=2147483647"`
	RoomIDs       []int    `form:"room_id" binding:"omitempty,dive,min=1,max=2147483647"`
	RoomTypeIDs   []int    `form:"room_type_id" binding:"omitempty,dive,min=1,max=2147483647"`
	Levels        []string `form:"level"`
	Times         []string `form:"time" binding:"omitempty,dive,timeofday"`
	AvailableOnly bool     `form:"available_only"`
}

// ToFilter converts the request into a booking filter for userID.
func (r *ListSlotsRequest) ToFilter(userID int) (booking.Filter, error) {
	date, err := booking.ParseDate(r.Date)
	if err != nil {
		return booking.Filter{}, booking.ErrInvalidInput.WithCause(err)
	}

	times := make([]booking.TimeOfDay, 0, len(r.Times))
	for _, s := range r.Times {
		t, err := booking.ParseTimeOfDay(s)
		if err != nil {
			return booking.Filter{}, booking.ErrInvalidInput.WithCause(err)
		}
		times = append(times, t)
	}

	return booking.Filter{
		ActingUserID:  userID,
		Date:          date,
		DepartmentIDs: r.DepartmentIDs,
		BuildingIDs:   r.BuildingIDs,
		RoomIDs:       r.RoomIDs,
		RoomTypeIDs:   r.RoomTypeIDs,
		Levels:        r.Levels,
		Times:         times,
	}, nil
}

type CreateBookingRequest struct {
	RoomID       int    `json:"room_id" binding:"required,min=1,max=2147483647"`
	Date         string `json:"date" binding:"required,isodate"`
	StartTime    string `json:"start_time" binding:"required,timeofday"`
	SmartBoardID *int   `json:"smart_board_id" binding:"omitempty,min=1,max=2147483647"`
}

// ToCreateRequest converts the body into a service request for userID.
func (r *CreateBookingRequest) ToCreateRequest(userID int) (booking.CreateRequest, error) {
	date, err := booking.ParseDate(r.Date)
	if err != nil {
		return booking.CreateRequest{}, booking.ErrInvalidInput.WithCause(err)
	}
	start, err := booking.ParseTimeOfDay(r.StartTime)
	if err != nil {
		return booking.CreateRequest{}, booking.ErrInvalidInput.WithCause(err)
	}
	return booking.CreateRequest{
		UserID:       userID,
		RoomID:       r.RoomID,
		Date:         date,
		StartTime:    start,
		SmartBoardID: r.SmartBoardID,
	}, nil
}

type CreateBookingResponse struct {
	ID int `json:"id"`
}

type RoomTag struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Level    string `json:"level"`
	Capacity int    `json:"capacity"`
}

type NamedTag struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type UserTag struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type BookingResponse struct {
	BookingID    *int              `json:"booking_id"`
	IsBooked     bool              `json:"is_booked"`
	Date         string            `json:"date"`
	StartTime    booking.TimeOfDay `json:"start_time"`
	User         *UserTag          `json:"user"`
	Room         RoomTag           `json:"room"`
	RoomType     NamedTag          `json:"room_type"`
	Building     NamedTag          `json:"building"`
	Department   NamedTag          `json:"department"`
	SmartBoardID *int              `json:"smart_board_id"`
}

func NewBookingResponse(b *booking.Booking) BookingResponse {
	resp := BookingResponse{
		BookingID:    b.BookingID,
		IsBooked:     b.IsBooked(),
		Date:         booking.FormatDate(b.Date),
		StartTime:    b.StartTime,
		Room:         RoomTag{ID: b.RoomID, Name: b.RoomName, Level: b.Level, Capacity: b.Capacity},
		RoomType:     NamedTag{ID: b.RoomTypeID, Name: b.RoomType},
		Building:     NamedTag{ID: b.BuildingID, Name: b.BuildingName},
		Department:   NamedTag{ID: b.DepartmentID, Name: b.DepartmentName},
		SmartBoardID: b.SmartBoardID,
	}
	if b.UserID != nil && b.UserName != nil {
		resp.User = &UserTag{ID: *b.UserID, Name: *b.UserName}
	}
	return resp
}

func newBookingResponses(items []*booking.Booking) []BookingResponse {
	out := make([]BookingResponse, len(items))
	for i, b := range items {
		out[i] = NewBookingResponse(b)
	}
	return out
}
