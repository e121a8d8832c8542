package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ymdFromNow(days int) string {
	return time.Now().AddDate(0, 0, days).Format(Layout)
}

func TestToYMD(t *testing.T) {
	d := time.Date(2025, 12, 12, 15, 4, 5, 0, time.Local)

	assert.Equal(t, "2025-12-12", ToYMD(d))
	assert.Equal(t, "2025-12-12", ToYMD(&d))
	assert.Equal(t, "2025-12-12", ToYMD(" 2025-12-12 "))
	assert.Equal(t, "", ToYMD(""))
	assert.Equal(t, "", ToYMD((*time.Time)(nil)))
	assert.Equal(t, "", ToYMD(time.Time{}))
	assert.Equal(t, "", ToYMD(42))
}

func TestParse(t *testing.T) {
	parsed, ok := Parse("2025-12-12")
	require.True(t, ok)
	assert.Equal(t, 2025, parsed.Year())
	assert.Equal(t, time.December, parsed.Month())
	assert.Equal(t, 12, parsed.Day())
	assert.Equal(t, 0, parsed.Hour())

	_, ok = Parse("")
	assert.False(t, ok)
	_, ok = Parse("12/12/2025")
	assert.False(t, ok)
	_, ok = Parse("not a date")
	assert.False(t, ok)
}

func TestDaysLeft(t *testing.T) {
	assert.Equal(t, float64(0), DaysLeft(ymdFromNow(0)))
	assert.Equal(t, float64(1), DaysLeft(ymdFromNow(1)))
	assert.Equal(t, float64(-1), DaysLeft(ymdFromNow(-1)))
	assert.Equal(t, float64(30), DaysLeft(ymdFromNow(30)))

	assert.True(t, IsNever(DaysLeft("")))
	assert.True(t, IsNever(DaysLeft("garbage")))
}

func TestIsExpired(t *testing.T) {
	assert.True(t, IsExpired(ymdFromNow(-1)))
	assert.False(t, IsExpired(ymdFromNow(0)), "today is not expired")
	assert.False(t, IsExpired(ymdFromNow(1)))
	assert.False(t, IsExpired(""), "absent dates never expire")
	assert.False(t, IsExpired("garbage"))
}

func TestTodayYMD(t *testing.T) {
	assert.Equal(t, ymdFromNow(0), TodayYMD())
	assert.Equal(t, float64(0), DaysLeft(TodayYMD()))
}
