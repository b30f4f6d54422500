package filteroption

import "context"

type Service interface {
	GetFilterOptions(ctx context.Context, userID int) (*FilterOptions, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// GetFilterOptions assembles a fresh FilterOptions for userID.
// A user without departments gets empty lookup maps, not an error.
func (s *service) GetFilterOptions(ctx context.Context, userID int) (*FilterOptions, error) {
	if userID <= 0 {
		return nil, ErrInvalidUser
	}

	l, err := s.repo.Lookups(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &FilterOptions{
		Departments:  orEmpty(l.Departments),
		Buildings:    orEmpty(l.Buildings),
		RoomTypes:    orEmpty(l.RoomTypes),
		TimeSlots:    TimeSlots(),
		LevelOptions: LevelOptions(),
	}, nil
}

func orEmpty(m map[string]string) map[string]string {
	if m == nil {
		return map[string]string{}
	}
	return m
}
