package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateTimeRoundTrip(t *testing.T) {
	dt := NewDateTime(2025, time.March, 14, 9, 26, 53)

	data, err := json.Marshal(dt)
	require.NoError(t, err)
	assert.Equal(t, `"2025-03-14T09:26:53"`, string(data))

	var got DateTime
	require.NoError(t, json.Unmarshal(data, &got))
	assert.True(t, got.Equal(dt.Time))
}

func TestDateTimeUnmarshalRejectsGarbage(t *testing.T) {
	var dt DateTime
	assert.Error(t, json.Unmarshal([]byte(`"not-a-date"`), &dt))
	assert.Error(t, json.Unmarshal([]byte(`12345`), &dt))
}

func TestParseDateTime(t *testing.T) {
	dt, err := ParseDateTime("2024-12-31T23:59:59")
	require.NoError(t, err)
	assert.Equal(t, 2024, dt.Year())
	assert.Equal(t, time.December, dt.Month())
	assert.Equal(t, 59, dt.Second())

	_, err = ParseDateTime("31.12.2024")
	assert.Error(t, err)
}

func TestNowWholeSeconds(t *testing.T) {
	dt := Now()
	assert.False(t, dt.IsZero())
	assert.Zero(t, dt.Nanosecond())
}
