package booking

import (
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

// Filter selects slots for one date as seen by the acting user.
// Every list is optional: nil and empty both leave that dimension unconstrained.
// Non-empty dimensions are AND-ed; within a dimension any entry may match.
type Filter struct {
	ActingUserID int
	Date         time.Time

	DepartmentIDs []int
	BuildingIDs   []int
	RoomIDs       []int
	RoomTypeIDs   []int
	Levels        []string
	Times         []TimeOfDay
}

// Normalize returns a copy with the date reduced to a calendar day, blank levels
// dropped, levels trimmed and duplicates removed. It performs no I/O and never fails.
func (f Filter) Normalize() Filter {
	out := Filter{
		ActingUserID:  f.ActingUserID,
		DepartmentIDs: uniqueInts(f.DepartmentIDs),
		BuildingIDs:   uniqueInts(f.BuildingIDs),
		RoomIDs:       uniqueInts(f.RoomIDs),
		RoomTypeIDs:   uniqueInts(f.RoomTypeIDs),
		Levels:        cleanLevels(f.Levels),
		Times:         uniqueTimes(f.Times),
	}
	if !f.Date.IsZero() {
		out.Date = DateOf(f.Date)
	}
	return out
}

// Validate checks the two required fields and that every id fits the store.
func (f Filter) Validate() error {
	if !ValidID(f.ActingUserID) {
		return ErrInvalidUser
	}
	if f.Date.IsZero() {
		return ErrDateRequired
	}
	for _, ids := range [][]int{f.DepartmentIDs, f.BuildingIDs, f.RoomIDs, f.RoomTypeIDs} {
		for _, id := range ids {
			if !ValidID(id) {
				return ErrInvalidInput
			}
		}
	}
	return nil
}

// Args returns the positional arguments of the slot functions:
// (user, date, departments, buildings, rooms, room types, levels, times).
// Absent lists are sent as empty arrays, never NULL.
func (f Filter) Args() []any {
	times := make([]pgtype.Time, 0, len(f.Times))
	for _, t := range f.Times {
		times = append(times, t.PgTime())
	}
	levels := f.Levels
	if levels == nil {
		levels = []string{}
	}

	return []any{
		int32(f.ActingUserID),
		pgtype.Date{Time: DateOf(f.Date), Valid: true},
		int32s(f.DepartmentIDs),
		int32s(f.BuildingIDs),
		int32s(f.RoomIDs),
		int32s(f.RoomTypeIDs),
		levels,
		times,
	}
}

func uniqueInts(in []int) []int {
	if len(in) == 0 {
		return nil
	}
	seen := make(map[int]struct{}, len(in))
	out := make([]int, 0, len(in))
	for _, v := range in {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

func cleanLevels(in []string) []string {
	var out []string
	seen := make(map[string]struct{}, len(in))
	for _, l := range in {
		l = strings.TrimSpace(l)
		if l == "" {
			continue
		}
		if _, ok := seen[l]; ok {
			continue
		}
		seen[l] = struct{}{}
		out = append(out, l)
	}
	return out
}

func uniqueTimes(in []TimeOfDay) []TimeOfDay {
	if len(in) == 0 {
		return nil
	}
	seen := make(map[TimeOfDay]struct{}, len(in))
	out := make([]TimeOfDay, 0, len(in))
	for _, t := range in {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

func int32s(in []int) []int32 {
	out := make([]int32, 0, len(in))
	for _, v := range in {
		out = append(out, int32(v))
	}
	return out
}
