package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDurationMillisecondTruncation(t *testing.T) {
	// Sub-millisecond precision does not survive the storage encoding.
	fine := 12*time.Hour + 50*time.Minute + 20*time.Second + 700*time.Microsecond
	d := DurationOf(fine)

	assert.Equal(t, (12*time.Hour + 50*time.Minute + 20*time.Second), d.Std())
	assert.Equal(t, DurationOfMillis(d.Millis()), d)
}

func TestDurationComponents(t *testing.T) {
	d := DurationOf(12*time.Hour + 50*time.Minute + 20*time.Second + 300*time.Millisecond)

	hours, minutes, seconds, nanoseconds := d.Components()
	assert.Equal(t, 12, hours)
	assert.Equal(t, 50, minutes)
	assert.Equal(t, 20, seconds)
	assert.Equal(t, int64(300*time.Millisecond), nanoseconds)
}

func TestDurationJSON(t *testing.T) {
	d := DurationOf(12*time.Hour + 50*time.Minute + 20*time.Second)

	encoded, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"12h50m20s"`, string(encoded))

	var decoded Duration
	require.NoError(t, json.Unmarshal(encoded, &decoded))
	assert.Equal(t, d, decoded)

	// A plain millisecond count is accepted too.
	require.NoError(t, json.Unmarshal([]byte(`46220000`), &decoded))
	assert.Equal(t, d, decoded)

	assert.Error(t, json.Unmarshal([]byte(`"not a duration"`), &decoded))
}

func TestParseDuration(t *testing.T) {
	d, err := ParseDuration("2h15m30s")
	require.NoError(t, err)
	assert.Equal(t, DurationOf(2*time.Hour+15*time.Minute+30*time.Second), d)

	_, err = ParseDuration("three hours")
	assert.Error(t, err)
}
