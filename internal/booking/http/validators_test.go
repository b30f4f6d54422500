package http

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Date  string   `form:"date" binding:"required,isodate"`
	Times []string `form:"time" binding:"omitempty,dive,timeofday"`
}

func TestCustomTags(t *testing.T) {
	require.NoError(t, RegisterValidators())

	tests := []struct {
		name  string
		in    sample
		valid bool
	}{
		{"plain date", sample{Date: "2025-11-29"}, true},
		{"date with times", sample{Date: "2025-11-29", Times: []string{"8", "10:00", "12:00:00"}}, true},
		{"bad date", sample{Date: "29/11/2025"}, false},
		{"impossible date", sample{Date: "2025-02-30"}, false},
		{"bad time", sample{Date: "2025-11-29", Times: []string{"25:00"}}, false},
		{"signed time", sample{Date: "2025-11-29", Times: []string{"+5:+0"}}, false},
		{"missing date", sample{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := binding.Validator.ValidateStruct(&tt.in)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
