package schedule

import (
	"testing"

	"shift-scheduler/backend/internal/model"
)

func TestShiftDuration_Regular(t *testing.T) {
	hours, err := ShiftDuration("09:00", "17:00")
	if err != nil {
		t.Fatalf("不应出错: %v", err)
	}
	if hours != 8 {
		t.Errorf("期望 8 小时，实际=%v", hours)
	}
}

func TestShiftDuration_Overnight(t *testing.T) {
	// 22:00-06:00 跨夜班次回绕 24 小时
	hours, err := ShiftDuration("22:00", "06:00")
	if err != nil {
		t.Fatalf("不应出错: %v", err)
	}
	if hours != 8 {
		t.Errorf("期望 8 小时，实际=%v", hours)
	}
}

func TestShiftDuration_HalfHour(t *testing.T) {
	hours, err := ShiftDuration("08:30", "12:00")
	if err != nil {
		t.Fatalf("不应出错: %v", err)
	}
	if hours != 3.5 {
		t.Errorf("期望 3.5 小时，实际=%v", hours)
	}
}

func TestShiftDuration_Malformed(t *testing.T) {
	for _, clock := range []string{"9am", "25:00", "09:60", ""} {
		if _, err := ShiftDuration(clock, "17:00"); err == nil {
			t.Errorf("非法时刻 %q 应返回错误", clock)
		}
	}
}

func TestAnalyze_WorkloadSumsOvernight(t *testing.T) {
	employees := []model.Employee{{Name: "A", Email: "a@x.com"}}
	shifts := []model.ShiftType{
		{Name: "Day", StartTime: "09:00", EndTime: "17:00"},
		{Name: "Night", StartTime: "22:00", EndTime: "06:00"},
	}
	assignments := []model.Assignment{
		{Date: "2024-01-15", EmployeeName: "A", ShiftName: "Day"},
		{Date: "2024-01-16", EmployeeName: "A", ShiftName: "Night"},
	}

	report := Analyze(assignments, employees, shifts)
	if len(report.Workload) != 1 {
		t.Fatalf("期望 1 个员工的工时，实际=%d", len(report.Workload))
	}
	if report.Workload[0].Hours != 16.0 {
		t.Errorf("白班 8h + 跨夜班 8h 应合计 16.0，实际=%v", report.Workload[0].Hours)
	}
}

func TestAnalyze_WorkloadDescending(t *testing.T) {
	employees := []model.Employee{{Name: "A"}, {Name: "B"}}
	shifts := []model.ShiftType{
		{Name: "Day", StartTime: "09:00", EndTime: "17:00"},
		{Name: "Half", StartTime: "09:00", EndTime: "13:00"},
	}
	assignments := []model.Assignment{
		{Date: "2024-01-15", EmployeeName: "A", ShiftName: "Half"},
		{Date: "2024-01-15", EmployeeName: "B", ShiftName: "Day"},
	}

	report := Analyze(assignments, employees, shifts)
	if report.Workload[0].EmployeeName != "B" {
		t.Errorf("工时应降序排列，实际首位=%s", report.Workload[0].EmployeeName)
	}
}

func TestAnalyze_DistributionDescending(t *testing.T) {
	shifts := []model.ShiftType{
		{Name: "Day", StartTime: "09:00", EndTime: "17:00"},
		{Name: "Evening", StartTime: "17:00", EndTime: "23:00"},
	}
	assignments := []model.Assignment{
		{Date: "2024-01-15", EmployeeName: "A", ShiftName: "Evening"},
		{Date: "2024-01-16", EmployeeName: "A", ShiftName: "Day"},
		{Date: "2024-01-17", EmployeeName: "A", ShiftName: "Evening"},
	}

	report := Analyze(assignments, []model.Employee{{Name: "A"}}, shifts)
	if len(report.Distribution) != 2 {
		t.Fatalf("期望 2 个班次的分布，实际=%d", len(report.Distribution))
	}
	if report.Distribution[0].ShiftName != "Evening" || report.Distribution[0].Count != 2 {
		t.Errorf("分布应降序排列，实际=%+v", report.Distribution)
	}
}

func TestAnalyze_CoverageFiftyPercent(t *testing.T) {
	// 2 名员工 × 7 槽位 = 14，7 条排班 ⇒ 50%
	employees := []model.Employee{{Name: "A"}, {Name: "B"}}
	shifts := []model.ShiftType{{Name: "Day", StartTime: "09:00", EndTime: "17:00"}}
	var assignments []model.Assignment
	for i := 15; i < 22; i++ {
		assignments = append(assignments, model.Assignment{
			Date: "2024-01-" + itoa2(i), EmployeeName: "A", ShiftName: "Day",
		})
	}

	report := Analyze(assignments, employees, shifts)
	if report.CoveragePercent != 50 {
		t.Errorf("期望覆盖率 50，实际=%d", report.CoveragePercent)
	}
}

func TestAnalyze_ZeroEmployees(t *testing.T) {
	// 员工数为 0 不得除零
	report := Analyze(nil, nil, nil)
	if report.CoveragePercent != 0 {
		t.Errorf("期望覆盖率 0，实际=%d", report.CoveragePercent)
	}
}

func TestAnalyze_UnknownShiftSkippedInWorkload(t *testing.T) {
	employees := []model.Employee{{Name: "A"}}
	shifts := []model.ShiftType{{Name: "Day", StartTime: "09:00", EndTime: "17:00"}}
	assignments := []model.Assignment{
		{Date: "2024-01-15", EmployeeName: "A", ShiftName: "Day"},
		{Date: "2024-01-16", EmployeeName: "A", ShiftName: "Ghost"},
	}

	report := Analyze(assignments, employees, shifts)
	if report.Workload[0].Hours != 8.0 {
		t.Errorf("未知班次不应计入工时，实际=%v", report.Workload[0].Hours)
	}
	// 但仍计入分布与覆盖率
	if len(report.Distribution) != 2 {
		t.Errorf("未知班次仍应计入分布，实际=%+v", report.Distribution)
	}
}

func itoa2(n int) string {
	return string([]byte{byte('0' + n/10), byte('0' + n%10)})
}
