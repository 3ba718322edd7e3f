package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHours(t *testing.T) {
	assert.Equal(t, Hours(2), ParseHours("2"))
	assert.Equal(t, Hours(1.5), ParseHours("1.5"))
	assert.Equal(t, Hours(2), ParseHours("  2  "))
	assert.Equal(t, Hours(0), ParseHours("abc"))
	assert.Equal(t, Hours(0), ParseHours(""))
	assert.Equal(t, Hours(-1), ParseHours("-1"))
}

func TestHours_Duration(t *testing.T) {
	assert.Equal(t, 2*time.Hour, Hours(2).Duration())
	assert.Equal(t, 90*time.Minute, Hours(1.5).Duration())
	assert.Equal(t, time.Duration(0), Hours(0).Duration())
}

func TestHours_IsPositive(t *testing.T) {
	assert.True(t, Hours(0.5).IsPositive())
	assert.False(t, Hours(0).IsPositive())
	assert.False(t, Hours(-2).IsPositive())
}

func TestHours_String(t *testing.T) {
	assert.Equal(t, "2", Hours(2).String())
	assert.Equal(t, "1.5", Hours(1.5).String())
	assert.Equal(t, "0", Hours(0).String())
}

func TestHours_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Hours
	}{
		{name: "number", in: `{"timeSlot": 2}`, want: 2},
		{name: "numeric string", in: `{"timeSlot": "2"}`, want: 2},
		{name: "fractional string", in: `{"timeSlot": "1.5"}`, want: 1.5},
		{name: "null", in: `{"timeSlot": null}`, want: 0},
		{name: "garbage string", in: `{"timeSlot": "two"}`, want: 0},
		{name: "missing", in: `{}`, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var payload struct {
				TimeSlot Hours `json:"timeSlot"`
			}
			require.NoError(t, json.Unmarshal([]byte(tt.in), &payload))
			assert.Equal(t, tt.want, payload.TimeSlot)
		})
	}
}

func TestHours_MarshalJSON(t *testing.T) {
	out, err := json.Marshal(struct {
		TimeSlot Hours `json:"timeSlot"`
	}{TimeSlot: 1.5})
	require.NoError(t, err)
	// Число, не строка: ответ API всегда нормализован
	assert.JSONEq(t, `{"timeSlot": 1.5}`, string(out))
}

func TestHours_Scan(t *testing.T) {
	var h Hours

	require.NoError(t, h.Scan("2"))
	assert.Equal(t, Hours(2), h)

	require.NoError(t, h.Scan([]byte("1.5")))
	assert.Equal(t, Hours(1.5), h)

	require.NoError(t, h.Scan(float64(3)))
	assert.Equal(t, Hours(3), h)

	require.NoError(t, h.Scan(int64(4)))
	assert.Equal(t, Hours(4), h)

	require.NoError(t, h.Scan(nil))
	assert.Equal(t, Hours(0), h)

	require.NoError(t, h.Scan("not-a-number"))
	assert.Equal(t, Hours(0), h)

	assert.Error(t, h.Scan(true))
}

func TestHours_Value(t *testing.T) {
	v, err := Hours(1.5).Value()
	require.NoError(t, err)
	assert.Equal(t, "1.5", v)
}
