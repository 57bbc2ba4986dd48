package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	ptime "github.com/yaa110/go-persian-calendar"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("1378-2-14")
	require.NoError(t, err)
	assert.Equal(t, 1378, d.Year())
	assert.Equal(t, 2, int(d.Month()))
	assert.Equal(t, 14, d.Day())

	padded, err := ParseDate("1378-02-14")
	require.NoError(t, err)
	assert.Equal(t, d.Time(), padded.Time())
}

func TestParseDateRejectsMalformed(t *testing.T) {
	for _, input := range []string{
		"",
		"not a date",
		"1378-2",
		"1378-2-14-1",
		"1378-x-14",
		"1378-13-1",
		"1378-0-10",
		"1378-1-32",
	} {
		_, err := ParseDate(input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestParseDateTime(t *testing.T) {
	d, err := ParseDateTime("1404-6-16 22:00")
	require.NoError(t, err)
	assert.Equal(t, 1404, d.Year())
	assert.Equal(t, 6, int(d.Month()))
	assert.Equal(t, 16, d.Day())
	assert.Equal(t, 22, d.Hour())
	assert.Equal(t, 0, d.Minute())
}

func TestParseDateTimeRejectsMalformed(t *testing.T) {
	for _, input := range []string{
		"",
		"1404-6-16",
		"1404-6-16 22",
		"1404-6-16 24:00",
		"1404-6-16 22:60",
		"1404-6-16 22:00:00",
		"22:00 1404-6-16",
	} {
		_, err := ParseDateTime(input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestTimestampRoundTrip(t *testing.T) {
	now := ptime.Now()
	formatted := FormatTimestamp(now)

	parsed, err := ParseTimestamp(formatted)
	require.NoError(t, err)
	assert.Equal(t, formatted, FormatTimestamp(parsed))
}

func TestParseTimestampRejectsMalformed(t *testing.T) {
	for _, input := range []string{"", "1404-06-16", "1404-06-16 22:00:00.000000"} {
		_, err := ParseTimestamp(input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestTimeSpanSigned(t *testing.T) {
	earlier := ptime.New(time.Now())
	later := ptime.New(time.Now().Add(48 * time.Hour))

	assert.Equal(t, 48*time.Hour, TimeSpan(earlier, later).Round(time.Hour))
	assert.Equal(t, -48*time.Hour, TimeSpan(later, earlier).Round(time.Hour))
}
