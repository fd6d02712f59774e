package timeutil_test

import (
	"testing"
	"time"

	"github.com/pareverse/hrms/internal/shared/timeutil"

	"github.com/stretchr/testify/assert"
)

func TestStamp(t *testing.T) {
	t.Run("renders en-US short format in Manila time", func(t *testing.T) {
		// 2024-01-23 00:05:07 UTC is 08:05:07 in Manila (UTC+8, no DST).
		ts := time.Date(2024, 1, 23, 0, 5, 7, 0, time.UTC)
		assert.Equal(t, "1/23/2024, 8:05:07 AM", timeutil.Stamp(ts))
	})

	t.Run("afternoon uses PM without zero padding", func(t *testing.T) {
		ts := time.Date(2024, 11, 3, 7, 30, 0, 0, time.UTC)
		assert.Equal(t, "11/3/2024, 3:30:00 PM", timeutil.Stamp(ts))
	})
}

func TestStampPtr(t *testing.T) {
	t.Run("nil renders empty", func(t *testing.T) {
		assert.Empty(t, timeutil.StampPtr(nil))
	})

	t.Run("set value matches Stamp", func(t *testing.T) {
		ts := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
		assert.Equal(t, timeutil.Stamp(ts), timeutil.StampPtr(&ts))
	})
}

func TestLocation(t *testing.T) {
	ts := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	_, offset := ts.In(timeutil.Location()).Zone()
	assert.Equal(t, 8*60*60, offset)
}
