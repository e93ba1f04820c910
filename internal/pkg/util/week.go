package util

import (
	"fmt"
	"time"
)

// ISOWeekKey 返回形如 2026-W35 的周标识
func ISOWeekKey(t time.Time) string {
	year, week := t.ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}

// WeekRange 返回 t 所在 ISO 周的起止时间 [周一 00:00, 下周一 00:00)
func WeekRange(t time.Time) (time.Time, time.Time) {
	t = t.In(t.Location())
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location()).
		AddDate(0, 0, -(weekday - 1))
	return start, start.AddDate(0, 0, 7)
}

// PrevWeek 返回上一个 ISO 周内的任意时刻，用于周报扫描
func PrevWeek(t time.Time) time.Time {
	return t.AddDate(0, 0, -7)
}

// ParseWeekKey 解析 2026-W35 形式的周标识，返回该 ISO 周的周一 00:00。
// 周数与实际历法不一致时报错，防止 2026-W54 这类键入库。
func ParseWeekKey(key string) (time.Time, error) {
	var year, week int
	if _, err := fmt.Sscanf(key, "%d-W%d", &year, &week); err != nil {
		return time.Time{}, fmt.Errorf("invalid week key: %s", key)
	}
	if week < 1 || week > 53 {
		return time.Time{}, fmt.Errorf("invalid week key: %s", key)
	}

	// 1月4日必定落在第一周
	jan4 := time.Date(year, 1, 4, 0, 0, 0, 0, time.Local)
	firstMonday, _ := WeekRange(jan4)
	monday := firstMonday.AddDate(0, 0, (week-1)*7)

	if ISOWeekKey(monday) != fmt.Sprintf("%d-W%02d", year, week) {
		return time.Time{}, fmt.Errorf("invalid week key: %s", key)
	}
	return monday, nil
}
