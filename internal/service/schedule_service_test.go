package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"shift-scheduler/backend/internal/dto"
	"shift-scheduler/backend/internal/model"
)

// ── 测试辅助 ──

func setupTestScheduleService() (ScheduleService, *testRepos) {
	repos := newTestRepos()
	svc := NewScheduleService(repos.toRepository(), time.UTC, zap.NewNop())
	return svc, repos
}

// seedWeekData 种子数据：2 名员工 + 2 个班次 + 2024-01-15 周内的排班与调休
// 2024-01-15 是周一
func seedWeekData(repos *testRepos) {
	repos.employee.employees["emp-alice"] = &model.Employee{
		EmployeeID: "emp-alice", Name: "Alice", Email: "alice@example.com", Role: "Manager",
	}
	repos.employee.employees["emp-bob"] = &model.Employee{
		EmployeeID: "emp-bob", Name: "Bob", Email: "bob@example.com", Role: "Cashier",
	}
	repos.shiftType.shifts["Day"] = &model.ShiftType{
		ShiftTypeID: "shift-Day", Name: "Day", StartTime: "09:00", EndTime: "17:00",
	}
	repos.shiftType.shifts["Night"] = &model.ShiftType{
		ShiftTypeID: "shift-Night", Name: "Night", StartTime: "22:00", EndTime: "06:00",
	}
	repos.assignment.seed("2024-01-15", "Alice", "Day")
	repos.assignment.seed("2024-01-16", "Alice", "Night")
	repos.assignment.seed("2024-01-15", "Bob", "Day")
	// 上一周的记录，不应出现在本周视图
	repos.assignment.seed("2024-01-08", "Bob", "Day")
	repos.timeOff.requests["req-1"] = &model.TimeOffRequest{
		RequestID: "req-1", EmployeeName: "Bob", EmployeeEmail: "bob@example.com",
		StartDate: "2024-01-17", EndDate: "2024-01-18",
		Status: model.TimeOffStatusApproved, RequestDate: time.Now(),
	}
}

func TestGetWeekSchedule(t *testing.T) {
	svc, repos := setupTestScheduleService()
	seedWeekData(repos)

	resp, err := svc.GetWeekSchedule(context.Background(), "2024-01-15")
	if err != nil {
		t.Fatalf("GetWeekSchedule 失败: %v", err)
	}

	if resp.WeekStart != "2024-01-15" {
		t.Errorf("期望周起点 2024-01-15，实际=%s", resp.WeekStart)
	}
	if resp.WeekRange != "Jan 15 - Jan 21" {
		t.Errorf("期望周标签 Jan 15 - Jan 21，实际=%s", resp.WeekRange)
	}
	if len(resp.Assignments) != 3 {
		t.Errorf("期望本周 3 条排班，实际=%d", len(resp.Assignments))
	}
	if len(resp.ApprovedTimeOff) != 1 {
		t.Errorf("期望 1 条已批准调休，实际=%d", len(resp.ApprovedTimeOff))
	}
	if len(resp.Employees) != 2 || len(resp.Shifts) != 2 {
		t.Errorf("期望 2 员工 2 班次，实际=%d/%d", len(resp.Employees), len(resp.Shifts))
	}

	// 统计：Alice 8h (Day) + 8h (Night 跨夜) = 16h
	found := false
	for _, w := range resp.Analytics.Workload {
		if w.EmployeeName == "Alice" {
			found = true
			if w.Hours != 16.0 {
				t.Errorf("期望 Alice 周工时 16.0，实际=%v", w.Hours)
			}
		}
	}
	if !found {
		t.Error("统计结果中缺少 Alice")
	}
}

func TestGetWeekScheduleNonMondayRollsBack(t *testing.T) {
	svc, repos := setupTestScheduleService()
	seedWeekData(repos)

	// 周四查询仍应落到同一周
	resp, err := svc.GetWeekSchedule(context.Background(), "2024-01-18")
	if err != nil {
		t.Fatalf("GetWeekSchedule 失败: %v", err)
	}
	if resp.WeekStart != "2024-01-15" {
		t.Errorf("期望回退到周一 2024-01-15，实际=%s", resp.WeekStart)
	}
}

func TestGetWeekScheduleInvalidDate(t *testing.T) {
	svc, _ := setupTestScheduleService()

	_, err := svc.GetWeekSchedule(context.Background(), "01/15/2024")
	if !errors.Is(err, ErrScheduleInvalidDate) {
		t.Errorf("期望 ErrScheduleInvalidDate，实际=%v", err)
	}
}

func TestGetMySchedule(t *testing.T) {
	svc, repos := setupTestScheduleService()
	seedWeekData(repos)

	resp, err := svc.GetMySchedule(context.Background(), "bob@example.com", "2024-01-15")
	if err != nil {
		t.Fatalf("GetMySchedule 失败: %v", err)
	}

	// Bob：1 条本周班次 + 2 天调休
	if len(resp.Entries) != 3 {
		t.Fatalf("期望 3 条个人日程，实际=%d", len(resp.Entries))
	}
	if resp.Entries[0].ShiftName != "Day" || resp.Entries[0].Start != "09:00" {
		t.Errorf("期望首条为 Day 09:00 班次，实际=%+v", resp.Entries[0])
	}
	if resp.Entries[1].Kind != "time_off" || resp.Entries[2].Kind != "time_off" {
		t.Errorf("期望后两条为调休，实际=%+v", resp.Entries[1:])
	}
	if len(resp.Warnings) != 0 {
		t.Errorf("期望无告警，实际=%v", resp.Warnings)
	}
}

func TestGetMyScheduleUnknownShiftWarns(t *testing.T) {
	svc, repos := setupTestScheduleService()
	seedWeekData(repos)
	repos.assignment.seed("2024-01-19", "Alice", "Ghost")

	resp, err := svc.GetMySchedule(context.Background(), "alice@example.com", "2024-01-15")
	if err != nil {
		t.Fatalf("GetMySchedule 失败: %v", err)
	}

	// 未知班次条目被省略，但产生告警
	if len(resp.Entries) != 2 {
		t.Errorf("期望 2 条有效日程，实际=%d", len(resp.Entries))
	}
	if len(resp.Warnings) != 1 {
		t.Fatalf("期望 1 条告警，实际=%v", resp.Warnings)
	}
}

func TestAssignShiftReplacesAndReportsConflict(t *testing.T) {
	svc, repos := setupTestScheduleService()
	seedWeekData(repos)

	resp, err := svc.AssignShift(context.Background(), &dto.AssignShiftRequest{
		EmployeeName: "Alice", Date: "2024-01-15", ShiftName: "Night",
	})
	if err != nil {
		t.Fatalf("AssignShift 失败: %v", err)
	}

	if !resp.Assigned {
		t.Error("期望 Assigned=true")
	}
	if len(resp.Conflicts) != 1 || resp.Conflicts[0].ExistingShift != "Day" {
		t.Errorf("期望提示已有 Day 班次冲突，实际=%+v", resp.Conflicts)
	}

	// 软冲突不拦截：旧记录已被替换
	rows, _ := repos.assignment.ListByEmployeeAndDate(context.Background(), "Alice", "2024-01-15")
	if len(rows) != 1 || rows[0].ShiftName != "Night" {
		t.Errorf("期望当日仅剩 Night 班次，实际=%+v", rows)
	}
}

func TestAssignShiftEmptyNameUnassigns(t *testing.T) {
	svc, repos := setupTestScheduleService()
	seedWeekData(repos)

	resp, err := svc.AssignShift(context.Background(), &dto.AssignShiftRequest{
		EmployeeName: "Alice", Date: "2024-01-15", ShiftName: "",
	})
	if err != nil {
		t.Fatalf("AssignShift 失败: %v", err)
	}
	if resp.Assigned {
		t.Error("期望 Assigned=false（取消排班）")
	}

	rows, _ := repos.assignment.ListByEmployeeAndDate(context.Background(), "Alice", "2024-01-15")
	if len(rows) != 0 {
		t.Errorf("期望当日排班已清空，实际=%+v", rows)
	}
}

func TestAssignShiftInvalidDate(t *testing.T) {
	svc, _ := setupTestScheduleService()

	_, err := svc.AssignShift(context.Background(), &dto.AssignShiftRequest{
		EmployeeName: "Alice", Date: "not-a-date", ShiftName: "Day",
	})
	if !errors.Is(err, ErrScheduleInvalidDate) {
		t.Errorf("期望 ErrScheduleInvalidDate，实际=%v", err)
	}
}

func TestCheckConflictsNoWrite(t *testing.T) {
	svc, repos := setupTestScheduleService()
	seedWeekData(repos)

	conflicts, err := svc.CheckConflicts(context.Background(), "Alice", "2024-01-15", "Night")
	if err != nil {
		t.Fatalf("CheckConflicts 失败: %v", err)
	}
	if len(conflicts) != 1 {
		t.Errorf("期望 1 条冲突提示，实际=%+v", conflicts)
	}

	// 纯查询，不改动数据
	rows, _ := repos.assignment.ListByEmployeeAndDate(context.Background(), "Alice", "2024-01-15")
	if len(rows) != 1 || rows[0].ShiftName != "Day" {
		t.Errorf("期望原排班未被改动，实际=%+v", rows)
	}
}
