package booking

import (
	"context"
	"time"
)

type Service interface {
	GetFilteredSlots(ctx context.Context, filter Filter) ([]*Booking, error)
	GetAvailableSlotsOnly(ctx context.Context, filter Filter) ([]*Booking, error)
	CreateBooking(ctx context.Context, req CreateRequest) (int, error)
	DeleteBooking(ctx context.Context, bookingID, userID int) error
	GetBookingsForUser(ctx context.Context, userID int) ([]*Booking, error)
}

// Policy holds the local booking rules checked before any store call.
type Policy struct {
	WorkStart TimeOfDay // earliest allowed start, inclusive
	WorkEnd   TimeOfDay // latest allowed start, inclusive
	Location  *time.Location
}

// DefaultPolicy is 07:00 to 18:00 in UTC.
func DefaultPolicy() Policy {
	return Policy{
		WorkStart: MustTimeOfDay(7, 0, 0),
		WorkEnd:   MustTimeOfDay(18, 0, 0),
		Location:  time.UTC,
	}
}

type service struct {
	repo   Repository
	policy Policy
	now    func() time.Time
}

func NewService(repo Repository, policy Policy) Service {
	if policy.Location == nil {
		policy.Location = time.UTC
	}
	return &service{
		repo:   repo,
		policy: policy,
		now:    time.Now,
	}
}

func (s *service) GetFilteredSlots(ctx context.Context, filter Filter) ([]*Booking, error) {
	filter = filter.Normalize()
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	return s.repo.FilteredSlots(ctx, filter)
}

func (s *service) GetAvailableSlotsOnly(ctx context.Context, filter Filter) ([]*Booking, error) {
	filter = filter.Normalize()
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	slots, err := s.repo.AvailableSlots(ctx, filter)
	if err != nil {
		return nil, err
	}

	// The store already filters, but a booked row must never leak through.
	free := slots[:0]
	for _, b := range slots {
		if !b.IsBooked() {
			free = append(free, b)
		}
	}
	return free, nil
}

func (s *service) CreateBooking(ctx context.Context, req CreateRequest) (int, error) {
	if err := s.validateCreate(req); err != nil {
		return 0, err
	}
	req.Date = DateOf(req.Date)
	return s.repo.Create(ctx, req)
}

func (s *service) validateCreate(req CreateRequest) error {
	if !ValidID(req.UserID) {
		return ErrInvalidUser
	}
	if !ValidID(req.RoomID) {
		return ErrInvalidInput
	}
	if req.SmartBoardID != nil && !ValidID(*req.SmartBoardID) {
		return ErrInvalidInput
	}
	if req.Date.IsZero() {
		return ErrDateRequired
	}

	today := DateOf(s.now().In(s.policy.Location))
	if DateOf(req.Date).Before(today) {
		return ErrDatePast
	}

	if req.StartTime.Before(s.policy.WorkStart) || req.StartTime.After(s.policy.WorkEnd) {
		return ErrOutsideHours
	}
	return nil
}

func (s *service) DeleteBooking(ctx context.Context, bookingID, userID int) error {
	if !ValidID(userID) {
		return ErrInvalidUser
	}
	if !ValidID(bookingID) {
		return ErrInvalidInput
	}
	return s.repo.Delete(ctx, bookingID, userID)
}

func (s *service) GetBookingsForUser(ctx context.Context, userID int) ([]*Booking, error) {
	if !ValidID(userID) {
		return nil, ErrInvalidUser
	}
	return s.repo.ListByUser(ctx, userID)
}
