package filteroption

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStaticDictionaries(t *testing.T) {
	assert.Equal(t, map[string]string{"8": "8-10", "10": "10-12", "12": "12-14", "14": "14-16"}, TimeSlots())
	assert.Equal(t, map[string]string{"1": "1", "2": "2", "3": "3"}, LevelOptions())
}

func TestStaticDictionariesCannotBeMutated(t *testing.T) {
	ts := TimeSlots()
	ts["16"] = "16-18"
	delete(ts, "8")

	lv := LevelOptions()
	lv["4"] = "4"

	assert.Len(t, TimeSlots(), 4)
	assert.Contains(t, TimeSlots(), "8")
	assert.Len(t, LevelOptions(), 3)
}
