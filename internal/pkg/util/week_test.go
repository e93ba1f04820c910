package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestISOWeekKey(t *testing.T) {
	// 2026-01-01 是周四，属于 2026 年第 1 周
	key := ISOWeekKey(time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC))
	assert.Equal(t, "2026-W01", key)

	// 2024-12-30 周一已经进入 2025 年第 1 周
	key = ISOWeekKey(time.Date(2024, 12, 30, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, "2025-W01", key)
}

func TestWeekRange(t *testing.T) {
	// 2026-08-26 是周三
	start, end := WeekRange(time.Date(2026, 8, 26, 15, 30, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC), end)

	// 周日归属当前周的最后一天
	start, end = WeekRange(time.Date(2026, 8, 30, 23, 59, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC), end)

	// 区间内的每一天共享同一个周标识
	for d := start; d.Before(end); d = d.AddDate(0, 0, 1) {
		assert.Equal(t, ISOWeekKey(start), ISOWeekKey(d))
	}
}

func TestParseWeekKey(t *testing.T) {
	monday, err := ParseWeekKey("2026-W35")
	assert.NoError(t, err)
	assert.Equal(t, time.Monday, monday.Weekday())
	assert.Equal(t, "2026-W35", ISOWeekKey(monday))

	// 与 ISOWeekKey 往返一致
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.Local)
	key := ISOWeekKey(now)
	parsed, err := ParseWeekKey(key)
	assert.NoError(t, err)
	assert.Equal(t, key, ISOWeekKey(parsed))

	for _, bad := range []string{"", "2026", "2026-W00", "2026-W54", "abcd-W10"} {
		_, err = ParseWeekKey(bad)
		assert.Error(t, err, bad)
	}
}
