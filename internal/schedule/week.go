package schedule

import (
	"time"
)

// ── 周界解析 ────────────────────────────────────────────────
//
// 排班与统计都以"周一 00:00 ~ 周日 23:59:59.999…"的七天窗口为单位。
// 所有日期按调用方给定 *time.Location 的自然日解释，全系统只使用
// 一个排班时区（来自配置），不做跨时区换算。
// ─────────────────────────────────────────────────────────────

// DateLayout 日期字符串格式
const DateLayout = "2006-01-02"

// Week 周窗口值对象，Start 为周一零点，End 为周日最后一纳秒
type Week struct {
	Start time.Time
	End   time.Time
}

// WeekOf 计算任意时刻所在的周窗口
// 周日归属于上一个周一开始的那一周，而非下一周
func WeekOf(t time.Time) Week {
	y, m, d := t.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, t.Location())

	offset := int(day.Weekday()) - 1
	if day.Weekday() == time.Sunday {
		offset = 6
	}

	start := day.AddDate(0, 0, -offset)
	end := start.AddDate(0, 0, 7).Add(-time.Nanosecond)
	return Week{Start: start, End: end}
}

// WeekOfDate 按日期字符串计算周窗口
func WeekOfDate(date string, loc *time.Location) (Week, error) {
	t, err := ParseDate(date, loc)
	if err != nil {
		return Week{}, err
	}
	return WeekOf(t), nil
}

// Label 显示用周范围，如 "Jan 15 - Jan 21"
func (w Week) Label() string {
	return w.Start.Format("Jan 2") + " - " + w.End.Format("Jan 2")
}

// Contains 判断时刻是否落在周窗口内（两端含）
func (w Week) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// Days 返回窗口内的七个日期（各自零点）
func (w Week) Days() []time.Time {
	days := make([]time.Time, 0, 7)
	for i := 0; i < 7; i++ {
		days = append(days, w.Start.AddDate(0, 0, i))
	}
	return days
}

// ParseDate 按排班时区解析 YYYY-MM-DD 日期
func ParseDate(date string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DateLayout, date, loc)
}
