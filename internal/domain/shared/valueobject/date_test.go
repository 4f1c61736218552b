package valueobject

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d := ParseDate("2025-01-10")
	require.False(t, d.IsZero())
	assert.Equal(t, "2025-01-10", d.String())

	assert.True(t, ParseDate("not-a-date").IsZero())
	assert.True(t, ParseDate("").IsZero())
	assert.True(t, ParseDate("2025-13-40").IsZero())
}

func TestDate_PeriodKey(t *testing.T) {
	key, ok := ParseDate("2025-03-31").PeriodKey()
	require.True(t, ok)
	assert.Equal(t, "2025-03", key)

	_, ok = Date{}.PeriodKey()
	assert.False(t, ok)
}

func TestDate_DaysBetween(t *testing.T) {
	a := ParseDate("2025-01-10")
	b := ParseDate("2025-01-08")
	assert.Equal(t, 2, a.DaysBetween(b))
	assert.Equal(t, 2, b.DaysBetween(a))
	assert.Equal(t, 0, a.DaysBetween(a))
}

func TestDate_JSON(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"2025-06-15"`), &d))
	assert.Equal(t, "2025-06-15", d.String())

	// Malformed input decodes to the zero date, not an error.
	require.NoError(t, json.Unmarshal([]byte(`"junk"`), &d))
	assert.True(t, d.IsZero())
	require.NoError(t, json.Unmarshal([]byte(`42`), &d))
	assert.True(t, d.IsZero())

	out, err := json.Marshal(NewDate(2025, time.June, 15))
	require.NoError(t, err)
	assert.Equal(t, `"2025-06-15"`, string(out))
}
