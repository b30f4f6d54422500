package filteroption

import (
	"maps"

	"github.com/zealand/roombooking/internal/pkg/apperror"
)

var ErrInvalidUser = apperror.New(apperror.KindValidation, "acting user id is required")

// FilterOptions is the reference data for a slot filter panel.
// Every map is keyed by the string form of the value a filter accepts.
type FilterOptions struct {
	Departments  map[string]string `json:"departments"`
	Buildings    map[string]string `json:"buildings"`
	RoomTypes    map[string]string `json:"room_types"`
	TimeSlots    map[string]string `json:"time_slots"`
	LevelOptions map[string]string `json:"level_options"`
}

// Static dictionaries. Never handed out directly; see TimeSlots and LevelOptions.
var (
	timeSlots = map[string]string{
		"8":  "8-10",
		"10": "10-12",
		"12": "12-14",
		"14": "14-16",
	}
	levelOptions = map[string]string{
		"1": "1",
		"2": "2",
		"3": "3",
	}
)

// TimeSlots returns a copy of the slot start hour to label dictionary.
func TimeSlots() map[string]string {
	return maps.Clone(timeSlots)
}

// LevelOptions returns a copy of the level dictionary.
func LevelOptions() map[string]string {
	return maps.Clone(levelOptions)
}

// Lookups holds the store-backed part of FilterOptions.
type Lookups struct {
	Departments map[string]string
	Buildings   map[string]string
	RoomTypes   map[string]string
}
