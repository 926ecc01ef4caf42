package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateTime_WireFormat(t *testing.T) {
	d, err := ParseDateTime("2026-07-01 09:30")
	require.NoError(t, err)

	assert.Equal(t, 2026, d.Year())
	assert.Equal(t, 9, d.Hour())
	assert.Equal(t, 30, d.Minute())
	assert.Equal(t, "2026-07-01 09:30", d.String())
}

func TestParseDateTime_RejectsOtherFormats(t *testing.T) {
	for _, raw := range []string{
		"2026-07-01T09:30:00Z",
		"2026-07-01",
		"01-07-2026 09:30",
		"2026-07-01 9:30pm",
		"",
	} {
		_, err := ParseDateTime(raw)
		require.Error(t, err, "input %q must be rejected", raw)
		assert.ErrorContains(t, err, "yyyy-MM-dd HH:mm", "parse failures name the expected pattern")
	}
}

func TestDateTime_JSONRoundTrip(t *testing.T) {
	d, err := ParseDateTime("2026-12-24 18:00")
	require.NoError(t, err)

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2026-12-24 18:00"`, string(data))

	var back DateTime
	require.NoError(t, json.Unmarshal(data, &back))
	assert.True(t, back.Equal(d.Time))
}

func TestDateTime_UnmarshalRejectsBadInput(t *testing.T) {
	var d DateTime
	err := json.Unmarshal([]byte(`"next tuesday"`), &d)
	assert.Error(t, err)
}
