package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "valid morning", input: "09:00"},
		{name: "valid last minute", input: "23:59"},
		{name: "single digit hour", input: "9:00", wantErr: true},
		{name: "hour overflow", input: "24:00", wantErr: true},
		{name: "seconds", input: "09:00:00", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, ts.String())
		})
	}
}

func TestTimeStringAddMinutes(t *testing.T) {
	ts := TimeString("16:30")

	got, err := ts.AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, TimeString("18:00"), got)

	_, err = TimeString("23:30").AddMinutes(30)
	assert.ErrorIs(t, err, ErrTimeOverflow)
}

func TestTimeStringComparison(t *testing.T) {
	assert.True(t, TimeString("09:30").IsBefore("10:00"))
	assert.False(t, TimeString("10:00").IsBefore("09:30"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))
}

func TestTimeStringOn(t *testing.T) {
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	got, err := TimeString("14:45").On(date)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 10, 14, 45, 0, 0, time.UTC), got)
}

func TestTimeStringScan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan([]byte("08:15:00")))
	assert.Equal(t, TimeString("08:15"), ts)

	require.NoError(t, ts.Scan("17:00"))
	assert.Equal(t, TimeString("17:00"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
}
