package booking

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		in      string
		want    TimeOfDay
		wantErr bool
	}{
		{in: "8", want: MustTimeOfDay(8, 0, 0)},
		{in: "10:00", want: MustTimeOfDay(10, 0, 0)},
		{in: " 12:30:15 ", want: MustTimeOfDay(12, 30, 15)},
		{in: "24:00", wantErr: true},
		{in: "12:60", wantErr: true},
		{in: "noon", wantErr: true},
		{in: "", wantErr: true},
		{in: "1:2:3:4", wantErr: true},
		{in: "100:00", wantErr: true},
		{in: "+5", wantErr: true},
		{in: "+5:+0", wantErr: true},
		{in: "-0:00", wantErr: true},
		{in: "10:", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTimeOfDay(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeOfDayOfDiscardsDate(t *testing.T) {
	a := TimeOfDayOf(time.Date(2025, 11, 29, 10, 0, 0, 500, time.UTC))
	b := TimeOfDayOf(time.Date(1999, 1, 1, 10, 0, 0, 0, time.Local))

	assert.Equal(t, a, b)
	assert.Equal(t, "10:00", a.String())
}

func TestTimeOfDayJSON(t *testing.T) {
	in := MustTimeOfDay(14, 5, 9)

	b, err := json.Marshal(in)
	require.NoError(t, err)
	assert.Equal(t, `"14:05:09"`, string(b))

	var out TimeOfDay
	require.NoError(t, json.Unmarshal(b, &out))
	assert.Equal(t, in, out)

	assert.Error(t, json.Unmarshal([]byte(`"25:00"`), &out))
}

func TestTimeOfDayPgRoundTrip(t *testing.T) {
	in := MustTimeOfDay(7, 45, 0)

	out, err := timeOfDayFromPg(in.PgTime())
	require.NoError(t, err)
	assert.Equal(t, in, out)

	_, err = timeOfDayFromPg(pgtype.Time{})
	assert.Error(t, err)
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-11-29")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 11, 29, 0, 0, 0, 0, time.UTC), d)
	assert.Equal(t, "2025-11-29", FormatDate(d))

	_, err = ParseDate("29/11/2025")
	assert.Error(t, err)
}

func TestDateOf(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*3600)
	got := DateOf(time.Date(2025, 11, 29, 23, 59, 0, 0, loc))

	assert.Equal(t, time.Date(2025, 11, 29, 0, 0, 0, 0, time.UTC), got)
}
